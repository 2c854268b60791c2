package linsys

import (
	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"

	"github.com/katalvlaran/linalg/vector"
)

var one = decimal.NewFromInt(1)

// RREF reduces the system to reduced row-echelon form and returns the
// result as a fresh system; the receiver is never mutated.
//
// Built on TriangularForm's output: rows that have a pivot are
// processed bottom-to-top (rows without one are skipped), each pivot
// is scaled to 1 by multiplying the row with 1/coefficient, and every
// entry above the pivot is cleared with one combination per row. The
// multiplier is just −coefficient, since the pivot row's coefficient
// is already 1.
//
// In the result every pivot column holds exactly one nonzero entry
// (value 1) across the whole system; pivot-free rows remain as
// all-zero equations at the bottom when the input is consistent.
func (s *LinearSystem) RREF() (*LinearSystem, error) {
	t, err := s.TriangularForm()
	if err != nil {
		return nil, err
	}

	pivots := t.FirstNonzeroIndices()
	for i := t.Len() - 1; i >= 0; i-- {
		j := pivots[i]
		if j < 0 {
			continue // no pivot in this row
		}
		if err = t.ScaleRow(one.Div(t.coefficient(i, j)), i); err != nil {
			return nil, errors.Wrap(err, "linsys: RREF")
		}
		if err = t.clearAbove(i, j); err != nil {
			return nil, errors.Wrap(err, "linsys: RREF")
		}
	}

	return t, nil
}

// clearAbove zeroes the coefficients above (row, col). The pivot at
// (row, col) is already 1, so the multiplier is just the negated
// target coefficient.
func (s *LinearSystem) clearAbove(row, col int) error {
	for k := row - 1; k >= 0; k-- {
		gamma := s.coefficient(k, col)
		if vector.IsNearZero(gamma) {
			continue
		}
		if err := s.AddMultipleOfRowToRow(gamma.Neg(), row, k); err != nil {
			return err
		}
	}

	return nil
}
