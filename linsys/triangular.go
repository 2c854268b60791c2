package linsys

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/linalg/vector"
)

// TriangularForm reduces the system to row-echelon form and returns
// the result as a fresh system; the receiver is never mutated.
//
// Policy (fixed by design):
//  1. A near-zero pivot candidate triggers a swap with the nearest row
//     below holding a non-near-zero coefficient in the current column;
//     when no such row exists the column cursor advances without
//     consuming a row.
//  2. Forward elimination never scales rows; only swaps and
//     add-multiple combinations are used.
//  3. Entries are cleared strictly below the pivot, one combination
//     per target row, with multiplier −γ/β (β the pivot coefficient,
//     γ the target's coefficient in the pivot column).
//
// More rows than columns, dependent rows, and contradictory rows all
// end up as trailing all-zero (or "0 = k") rows; that is expected
// output, not an error.
func (s *LinearSystem) TriangularForm() (*LinearSystem, error) {
	t := s.Clone() // copy-on-reduce: mutate only the clone

	j := 0 // current column cursor
	for i := 0; i < t.Len() && j < t.dim; i++ {
		for j < t.dim {
			if vector.IsNearZero(t.coefficient(i, j)) {
				if !t.swapWithRowBelow(i, j) {
					// No pivot anywhere in this column; try the next
					// one without moving to the next row.
					j++

					continue
				}
			}
			if err := t.clearBelow(i, j); err != nil {
				return nil, errors.Wrap(err, "linsys: TriangularForm")
			}
			j++

			break
		}
	}

	return t, nil
}

// swapWithRowBelow swaps row with the nearest row below it whose
// coefficient in col is not near-zero. Reports whether a swap
// happened.
func (s *LinearSystem) swapWithRowBelow(row, col int) bool {
	for k := row + 1; k < s.Len(); k++ {
		if !vector.IsNearZero(s.coefficient(k, col)) {
			_ = s.SwapRows(row, k) // both indices are in range

			return true
		}
	}

	return false
}

// clearBelow zeroes the coefficients below (row, col) using one row
// combination per target row.
func (s *LinearSystem) clearBelow(row, col int) error {
	beta := s.coefficient(row, col)
	for k := row + 1; k < s.Len(); k++ {
		gamma := s.coefficient(k, col)
		if vector.IsNearZero(gamma) {
			continue
		}
		if err := s.AddMultipleOfRowToRow(gamma.Neg().Div(beta), row, k); err != nil {
			return err
		}
	}

	return nil
}
