package vector_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/vector"
)

// vec builds a Vector from decimal literals, failing the test on a
// parse error.
func vec(t *testing.T, coords ...string) vector.Vector {
	t.Helper()
	v, err := vector.FromStrings(coords...)
	require.NoError(t, err)

	return v
}

// TestNew_EmptyCoords verifies that every constructor rejects an
// empty coordinate list with ErrEmptyCoords.
func TestNew_EmptyCoords(t *testing.T) {
	_, err := vector.New(nil)
	assert.ErrorIs(t, err, vector.ErrEmptyCoords, "New(nil) must error")

	_, err = vector.FromStrings()
	assert.ErrorIs(t, err, vector.ErrEmptyCoords, "FromStrings() must error")

	_, err = vector.FromFloats()
	assert.ErrorIs(t, err, vector.ErrEmptyCoords, "FromFloats() must error")
}

// TestFromStrings_BadLiteral verifies parse failures surface as errors.
func TestFromStrings_BadLiteral(t *testing.T) {
	_, err := vector.FromStrings("1", "not-a-number")
	assert.Error(t, err, "malformed decimal literal must error")
}

// TestFromFloats verifies float64 coordinates convert cleanly.
func TestFromFloats(t *testing.T) {
	v, err := vector.FromFloats(1.5, -2, 0)
	require.NoError(t, err)
	assert.True(t, v.Equal(vec(t, "1.5", "-2", "0")))
}

// TestCoords verifies the accessor returns a defensive copy.
func TestCoords(t *testing.T) {
	v := vec(t, "1", "2")

	cs := v.Coords()
	cs[0] = decimal.NewFromInt(99)
	got, err := v.At(0)
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(1)), "mutating the returned slice must not affect the vector")
}

// TestNew_CopiesInput verifies the constructor copies its input slice,
// keeping the Vector immutable.
func TestNew_CopiesInput(t *testing.T) {
	coords := []decimal.Decimal{decimal.NewFromInt(1), decimal.NewFromInt(2)}
	v, err := vector.New(coords)
	require.NoError(t, err)

	coords[0] = decimal.NewFromInt(99)
	got, err := v.At(0)
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(1)), "mutating the input slice must not affect the vector")
}

// TestAt_IndexOutOfRange verifies coordinate indexing bounds.
func TestAt_IndexOutOfRange(t *testing.T) {
	v := vec(t, "1", "2")

	_, err := v.At(-1)
	assert.ErrorIs(t, err, vector.ErrIndexOutOfRange)
	_, err = v.At(2)
	assert.ErrorIs(t, err, vector.ErrIndexOutOfRange)

	got, err := v.At(1)
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(2)))
}

// TestEqual_Exact verifies Equal is exact value equality, not the
// tolerance-based geometric comparison.
func TestEqual_Exact(t *testing.T) {
	assert.True(t, vec(t, "1", "2").Equal(vec(t, "1.0", "2.00")), "decimal value equality ignores trailing zeros")
	assert.False(t, vec(t, "1", "2").Equal(vec(t, "1", "2.0000000001")), "a sub-tolerance difference still breaks exact equality")
	assert.False(t, vec(t, "1", "2").Equal(vec(t, "1", "2", "0")), "different dimensions are never equal")
}

// TestAddSub verifies component-wise arithmetic and its dimension check.
func TestAddSub(t *testing.T) {
	v, w := vec(t, "1", "2", "3"), vec(t, "10", "20", "30")

	sum, err := v.Add(w)
	require.NoError(t, err)
	assert.True(t, sum.Equal(vec(t, "11", "22", "33")))

	diff, err := w.Sub(v)
	require.NoError(t, err)
	assert.True(t, diff.Equal(vec(t, "9", "18", "27")))

	_, err = v.Add(vec(t, "1", "2"))
	assert.ErrorIs(t, err, vector.ErrDimensionMismatch)
	_, err = v.Sub(vec(t, "1", "2"))
	assert.ErrorIs(t, err, vector.ErrDimensionMismatch)
}

// TestScaleNeg verifies scalar multiplication, including by zero.
func TestScaleNeg(t *testing.T) {
	v := vec(t, "1", "-2", "3")

	assert.True(t, v.Scale(decimal.NewFromInt(2)).Equal(vec(t, "2", "-4", "6")))
	assert.True(t, v.Scale(decimal.Zero).Equal(vec(t, "0", "0", "0")), "zero scaling is legal and yields the zero vector")
	assert.True(t, v.Neg().Equal(vec(t, "-1", "2", "-3")))
}

// TestFirstNonzeroIndex verifies pivot scanning against the 1e-10
// tolerance boundary.
func TestFirstNonzeroIndex(t *testing.T) {
	idx, err := vec(t, "0", "0", "5").FirstNonzeroIndex()
	require.NoError(t, err)
	assert.Equal(t, 2, idx)

	// 1e-10 is at the threshold and counts as nonzero; 1e-11 does not.
	idx, err = vec(t, "1e-11", "1e-10").FirstNonzeroIndex()
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	_, err = vec(t, "0", "1e-11").FirstNonzeroIndex()
	assert.ErrorIs(t, err, vector.ErrNoNonzeroElements, "an all-near-zero vector has no pivot")
}

// TestString renders coordinates verbatim.
func TestString(t *testing.T) {
	assert.Equal(t, "Vector: (1, -2.5, 3)", vec(t, "1", "-2.5", "3").String())
}
