package linsys

import (
	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"

	"github.com/katalvlaran/linalg/hyperplane"
)

// SwapRows exchanges rows i and j by position. Swapping a row with
// itself is a no-op. SwapRows is its own inverse.
// Returns ErrRowIndex for an invalid position.
func (s *LinearSystem) SwapRows(i, j int) error {
	if err := s.checkRows("SwapRows", i, j); err != nil {
		return err
	}
	s.eqs[i], s.eqs[j] = s.eqs[j], s.eqs[i]

	return nil
}

// ScaleRow replaces row with (normal·c, constant·c). A zero
// coefficient is deliberately accepted: it produces the degenerate
// all-zero equation "0 = 0", which the system must be able to
// represent.
// Returns ErrRowIndex for an invalid position.
func (s *LinearSystem) ScaleRow(c decimal.Decimal, row int) error {
	if err := s.checkRows("ScaleRow", row); err != nil {
		return err
	}
	eq := s.eqs[row]
	s.eqs[row] = hyperplane.New(eq.Normal().Scale(c), eq.Constant().Mul(c))

	return nil
}

// AddMultipleOfRowToRow replaces row dst with
// (src.normal·c + dst.normal, src.constant·c + dst.constant).
// Row src is read-only in this operation.
// Returns ErrRowIndex for an invalid position.
func (s *LinearSystem) AddMultipleOfRowToRow(c decimal.Decimal, src, dst int) error {
	if err := s.checkRows("AddMultipleOfRowToRow", src, dst); err != nil {
		return err
	}
	from, to := s.eqs[src], s.eqs[dst]
	normal, err := from.Normal().Scale(c).Add(to.Normal())
	if err != nil {
		// Unreachable while the dimension invariant holds.
		return errors.Wrap(err, "linsys: AddMultipleOfRowToRow")
	}
	s.eqs[dst] = hyperplane.New(normal, from.Constant().Mul(c).Add(to.Constant()))

	return nil
}
