package linsys_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/hyperplane"
	"github.com/katalvlaran/linalg/linsys"
	"github.com/katalvlaran/linalg/vector"
)

// plane builds a Hyperplane from decimal literals (constant first so
// the coefficient list can be variadic), failing the test on a parse
// error.
func plane(t *testing.T, constant string, coords ...string) hyperplane.Hyperplane {
	t.Helper()
	h, err := hyperplane.FromStrings(coords, constant)
	require.NoError(t, err)

	return h
}

// vec builds a Vector from decimal literals.
func vec(t *testing.T, coords ...string) vector.Vector {
	t.Helper()
	v, err := vector.FromStrings(coords...)
	require.NoError(t, err)

	return v
}

// system builds a LinearSystem, failing the test on construction errors.
func system(t *testing.T, eqs ...hyperplane.Hyperplane) *linsys.LinearSystem {
	t.Helper()
	s, err := linsys.New(eqs)
	require.NoError(t, err)

	return s
}

// coeff reads the coefficient at (row, col), failing the test on
// invalid indices.
func coeff(t *testing.T, s *linsys.LinearSystem, row, col int) decimal.Decimal {
	t.Helper()
	eq, err := s.Equation(row)
	require.NoError(t, err)
	c, err := eq.Coefficient(col)
	require.NoError(t, err)

	return c
}

// constant reads the constant term of a row.
func constant(t *testing.T, s *linsys.LinearSystem, row int) decimal.Decimal {
	t.Helper()
	eq, err := s.Equation(row)
	require.NoError(t, err)

	return eq.Constant()
}

// assertRowExact asserts row i holds exactly the given normal
// coefficients and constant (decimal value equality, no tolerance).
func assertRowExact(t *testing.T, s *linsys.LinearSystem, row int, want hyperplane.Hyperplane) {
	t.Helper()
	eq, err := s.Equation(row)
	require.NoError(t, err)
	assert.True(t, eq.Normal().Equal(want.Normal()),
		"row %d normal: got %s, want %s", row, eq.Normal(), want.Normal())
	assert.True(t, eq.Constant().Equal(want.Constant()),
		"row %d constant: got %s, want %s", row, eq.Constant(), want.Constant())
}

// assertSystemsExact asserts two systems hold exactly equal rows.
func assertSystemsExact(t *testing.T, got *linsys.LinearSystem, want ...hyperplane.Hyperplane) {
	t.Helper()
	require.Equal(t, len(want), got.Len())
	for i, eq := range want {
		assertRowExact(t, got, i, eq)
	}
}

// assertTriangularProperty asserts the row-echelon invariant: below
// every pivot, the pivot column holds only near-zero coefficients.
func assertTriangularProperty(t *testing.T, s *linsys.LinearSystem) {
	t.Helper()
	pivots := s.FirstNonzeroIndices()
	for i, j := range pivots {
		if j < 0 {
			continue
		}
		for k := i + 1; k < s.Len(); k++ {
			assert.True(t, vector.IsNearZero(coeff(t, s, k, j)),
				"row %d must be near-zero in pivot column %d of row %d", k, j, i)
		}
	}
}

// assertRREFProperty asserts the reduced-form invariant: every pivot
// is 1 (within tolerance) and the only non-near-zero entry in its
// column.
func assertRREFProperty(t *testing.T, s *linsys.LinearSystem) {
	t.Helper()
	pivots := s.FirstNonzeroIndices()
	for i, j := range pivots {
		if j < 0 {
			continue
		}
		unit := coeff(t, s, i, j).Sub(decimal.NewFromInt(1))
		assert.True(t, vector.IsNearZero(unit),
			"pivot at (%d,%d) must be 1 within tolerance", i, j)
		for k := 0; k < s.Len(); k++ {
			if k == i {
				continue
			}
			assert.True(t, vector.IsNearZero(coeff(t, s, k, j)),
				"row %d must be near-zero in pivot column %d", k, j)
		}
	}
}
