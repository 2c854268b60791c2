package linsys_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/linsys"
	"github.com/katalvlaran/linalg/vector"
)

// TestSolve_Unique verifies an exactly solvable system returns the
// solution point.
func TestSolve_Unique(t *testing.T) {
	s := system(t,
		plane(t, "3", "1", "1"),
		plane(t, "1", "1", "-1"),
	)

	sol, err := s.Solve()
	require.NoError(t, err)
	assert.True(t, sol.Equal(vec(t, "2", "1")), "want (2, 1), got %s", sol)
}

// TestSolve_UniqueFractional verifies a solution with non-terminating
// coordinates lands within tolerance of the true rationals.
func TestSolve_UniqueFractional(t *testing.T) {
	s := system(t,
		plane(t, "1", "0", "1", "1"),
		plane(t, "2", "1", "-1", "1"),
		plane(t, "3", "1", "2", "-5"),
	)

	sol, err := s.Solve()
	require.NoError(t, err)
	require.Equal(t, 3, sol.Dimension())

	nine := decimal.NewFromInt(9)
	want := []decimal.Decimal{
		decimal.NewFromInt(23).Div(nine),
		decimal.NewFromInt(7).Div(nine),
		decimal.NewFromInt(2).Div(nine),
	}
	for i, w := range want {
		got, err := sol.At(i)
		require.NoError(t, err)
		assert.True(t, vector.IsNearZero(got.Sub(w)),
			"coordinate %d: got %s, want %s", i, got, w)
	}
}

// TestSolve_NoSolutions verifies a contradictory system reports
// ErrNoSolutions.
func TestSolve_NoSolutions(t *testing.T) {
	s := system(t,
		plane(t, "1", "1", "1", "1"),
		plane(t, "2", "1", "1", "1"),
	)

	_, err := s.Solve()
	assert.ErrorIs(t, err, linsys.ErrNoSolutions)
}

// TestSolve_InfiniteSolutions verifies an underdetermined system
// reports ErrInfiniteSolutions.
func TestSolve_InfiniteSolutions(t *testing.T) {
	s := system(t,
		plane(t, "1", "1", "1", "1"),
		plane(t, "2", "2", "2", "2"),
		plane(t, "2", "0", "1", "1"),
		plane(t, "3", "1", "2", "2"),
	)

	_, err := s.Solve()
	assert.ErrorIs(t, err, linsys.ErrInfiniteSolutions)
}

// TestSolve_SourceUntouched verifies solving never mutates the
// receiver.
func TestSolve_SourceUntouched(t *testing.T) {
	s := system(t,
		plane(t, "3", "1", "1"),
		plane(t, "1", "1", "-1"),
	)

	_, err := s.Solve()
	require.NoError(t, err)
	assertSystemsExact(t, s,
		plane(t, "3", "1", "1"),
		plane(t, "1", "1", "-1"),
	)
}
