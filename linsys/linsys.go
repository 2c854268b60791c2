package linsys

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"

	"github.com/katalvlaran/linalg/hyperplane"
)

// LinearSystem is an ordered collection of hyperplane equations
// sharing one dimension. Row order matters: it is the order the
// reduction algorithms process equations in.
//
// Equations are immutable values, so rows are replaced wholesale and
// a Clone shares no mutable state with its source.
type LinearSystem struct {
	eqs []hyperplane.Hyperplane
	dim int
}

// New builds a LinearSystem from a non-empty sequence of equations of
// identical dimension. The slice is copied.
// Returns ErrEmptySystem or ErrDimensionMismatch.
func New(eqs []hyperplane.Hyperplane) (*LinearSystem, error) {
	if len(eqs) == 0 {
		return nil, ErrEmptySystem
	}
	dim := eqs[0].Dimension()
	for i, eq := range eqs {
		if eq.Dimension() != dim {
			return nil, errors.Wrapf(ErrDimensionMismatch,
				"equation %d has dimension %d, want %d", i, eq.Dimension(), dim)
		}
	}
	cp := make([]hyperplane.Hyperplane, len(eqs))
	copy(cp, eqs)

	return &LinearSystem{eqs: cp, dim: dim}, nil
}

// Len returns the number of equations (rows).
func (s *LinearSystem) Len() int {
	return len(s.eqs)
}

// Dimension returns the shared dimension of every equation.
func (s *LinearSystem) Dimension() int {
	return s.dim
}

// Equation returns the equation at row i.
// Returns ErrRowIndex for i outside [0, Len).
func (s *LinearSystem) Equation(i int) (hyperplane.Hyperplane, error) {
	if err := s.checkRows("Equation", i); err != nil {
		return hyperplane.Hyperplane{}, err
	}

	return s.eqs[i], nil
}

// SetEquation replaces row i with eq. Both checks run before any
// mutation, so a rejected call leaves the system untouched.
// Returns ErrRowIndex or ErrDimensionMismatch.
func (s *LinearSystem) SetEquation(i int, eq hyperplane.Hyperplane) error {
	if err := s.checkRows("SetEquation", i); err != nil {
		return err
	}
	if eq.Dimension() != s.dim {
		return errors.Wrapf(ErrDimensionMismatch,
			"SetEquation(%d): dimension %d, want %d", i, eq.Dimension(), s.dim)
	}
	s.eqs[i] = eq

	return nil
}

// Equations returns a copy of the equation slice in row order.
func (s *LinearSystem) Equations() []hyperplane.Hyperplane {
	cp := make([]hyperplane.Hyperplane, len(s.eqs))
	copy(cp, s.eqs)

	return cp
}

// Clone returns an independently-owned copy of the system.
func (s *LinearSystem) Clone() *LinearSystem {
	cp := make([]hyperplane.Hyperplane, len(s.eqs))
	copy(cp, s.eqs)

	return &LinearSystem{eqs: cp, dim: s.dim}
}

// FirstNonzeroIndices returns the pivot index of every row: the first
// column whose coefficient is not near-zero, or −1 for a row whose
// coefficients are all near-zero. Pure; O(rows · dimension).
func (s *LinearSystem) FirstNonzeroIndices() []int {
	indices := make([]int, len(s.eqs))
	for i, eq := range s.eqs {
		idx, err := eq.Normal().FirstNonzeroIndex()
		if err != nil {
			// vector.ErrNoNonzeroElements: no pivot in this row.
			indices[i] = -1

			continue
		}
		indices[i] = idx
	}

	return indices
}

// checkRows validates row positions against [0, Len).
func (s *LinearSystem) checkRows(op string, rows ...int) error {
	for _, r := range rows {
		if r < 0 || r >= len(s.eqs) {
			return errors.Wrapf(ErrRowIndex, "%s: row %d of %d", op, r, len(s.eqs))
		}
	}

	return nil
}

// coefficient reads the coefficient at (row, col); both indices are
// trusted to be in range by the reduction algorithms.
func (s *LinearSystem) coefficient(row, col int) decimal.Decimal {
	d, _ := s.eqs[row].Coefficient(col)

	return d
}

// String renders the system as numbered equations:
//
//	Linear System:
//	Equation 1: x_1 + x_2 + x_3 = 1
//	Equation 2: x_2 + x_3 = 2
func (s *LinearSystem) String() string {
	var sb strings.Builder
	sb.WriteString("Linear System:")
	for i, eq := range s.eqs {
		sb.WriteString(fmt.Sprintf("\nEquation %d: %s", i+1, eq))
	}

	return sb.String()
}
