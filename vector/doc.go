// Package vector provides immutable coordinate vectors over
// arbitrary-precision decimals (shopspring/decimal).
//
// 🚀 What is vector?
//
//	The leaf data type of the linalg toolkit. A Vector is an ordered,
//	fixed-dimension tuple of decimal coordinates supporting:
//	  • arithmetic: Add, Sub, Scale
//	  • products: Dot, Cross (2D/3D only), parallelogram/triangle areas
//	  • geometry: Magnitude, Normalized, AngleWith, projections
//	  • predicates: Equal (exact), IsZero / IsOrthogonalTo /
//	    IsParallelTo (tolerance-based)
//
// ✨ Two kinds of equality — deliberately distinct:
//
//   - Equal compares coordinates exactly (decimal value equality).
//   - The geometric predicates (IsZero, IsOrthogonalTo, IsParallelTo)
//     use the fixed near-zero Tolerance of 1e-10, so accumulated
//     division residue never flips a geometric answer.
//
// ⚙️ Usage:
//
//	v, _ := vector.FromStrings("1", "2", "3")
//	w, _ := vector.FromStrings("4", "5", "6")
//	d, _ := v.Dot(w) // 32
//
// Pivot scanning for row reduction lives here too: FirstNonzeroIndex
// reports the first coordinate with |c| ≥ 1e-10 and signals
// ErrNoNonzeroElements when there is none — callers treat that as
// "no pivot in this row", a normal case.
//
// Vectors are immutable: every operation returns a fresh Vector and
// construction copies its input, so sharing a Vector is always safe.
package vector
