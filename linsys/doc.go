// Package linsys implements Gaussian elimination over systems of
// hyperplane equations: triangular-form reduction, reduced
// row-echelon form (RREF), and unique-solution extraction.
//
// 🚀 What is linsys?
//
//	A LinearSystem is an ordered, index-addressable sequence of
//	hyperplane.Hyperplane equations sharing one dimension. Row order
//	is semantically significant: elimination proceeds top-to-bottom,
//	RREF back-substitutes bottom-to-top. The package exposes:
//	  • row operations — SwapRows, ScaleRow, AddMultipleOfRowToRow
//	  • FirstNonzeroIndices — the pivot index of every row (−1 = none)
//	  • TriangularForm / RREF — the two reduction algorithms
//	  • Solve — unique solution, or a no/infinitely-many verdict
//
// ✨ Reduction policy (fixed by design):
//
//   - A near-zero pivot candidate (|c| < 1e-10) triggers a swap with
//     the NEAREST row below holding a usable coefficient in the same
//     column; if none exists the algorithm advances to the next column
//     without consuming a row.
//   - Forward elimination never scales rows — only swaps and
//     add-multiple combinations (multiplier −γ/β) clearing strictly
//     below the pivot.
//   - RREF then scales each pivot row to a unit pivot and clears the
//     entries above it, bottom-to-top.
//   - Trailing all-zero rows (dependent or contradictory equations)
//     are expected output, not an error: an inconsistent system shows
//     up as "0 = 1".
//
// 🔒 Copy-on-reduce: TriangularForm, RREF and Solve operate on a deep
// clone, so the caller's system is never observably mutated. The
// in-place row operations, by contrast, mutate the receiver — that is
// their point — but never its dimension or row count.
//
// ⚙️ Usage:
//
//	s, _ := linsys.New([]hyperplane.Hyperplane{p1, p2, p3})
//	r, _ := s.RREF()
//	x, err := s.Solve()
//	switch {
//	case errors.Is(err, linsys.ErrNoSolutions):       // inconsistent
//	case errors.Is(err, linsys.ErrInfiniteSolutions): // underdetermined
//	}
//
// Complexity: TriangularForm and RREF are O(rows² · dimension)
// row-combinations over systems of at most a few dozen rows.
package linsys
