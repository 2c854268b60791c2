// Package hyperplane models linear equations of the form
//
//	c1·x_1 + c2·x_2 + ... + cD·x_D = k
//
// as a normal vector (c1..cD) paired with a constant term k. D = 2 is
// a line in the plane, D = 3 is a plane in space; any D ≥ 1 works,
// which is what lets the linsys package treat rows of a linear system
// uniformly.
//
// ✨ Key ideas:
//
//   - Basepoint — a representative point satisfying the equation,
//     derived by placing k/c at the first non-near-zero coefficient.
//     It is an explicit optional (comma-ok): an all-zero normal vector
//     has no basepoint, and callers must handle that case rather than
//     dereference a sentinel.
//   - Geometric equality — two equations are Equal when their normals
//     are parallel AND the vector connecting their basepoints is
//     orthogonal to the normal (tolerance 1e-10). This is coincidence
//     of solution sets, not coordinate equality: "x + y = 1" equals
//     "2x + 2y = 2".
//   - Rendering — String produces the human-readable
//     "x_1 + 2x_2 - x_3 = 3" form with near-zero terms omitted and
//     unit coefficients shown without the numeral.
//
// ⚙️ Usage:
//
//	p, _ := hyperplane.FromStrings([]string{"1", "1", "1"}, "1")
//	fmt.Println(p) // x_1 + x_2 + x_3 = 1
//
// Hyperplanes are immutable values; row operations in linsys build
// new ones instead of mutating.
package hyperplane
