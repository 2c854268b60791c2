package vector

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"
)

// Tolerance is the fixed near-zero threshold (1e-10) used by every
// tolerance-based predicate in the toolkit. Treat it as read-only; it
// is a variable only because decimal values cannot be constants.
var Tolerance = decimal.New(1, -10)

// IsNearZero reports whether |d| < Tolerance.
func IsNearZero(d decimal.Decimal) bool {
	return d.Abs().Cmp(Tolerance) < 0
}

// Vector is an immutable ordered tuple of N ≥ 1 decimal coordinates.
// The zero value is not a valid Vector; use New, FromStrings or
// FromFloats.
type Vector struct {
	coords []decimal.Decimal
}

// New builds a Vector from coords. The slice is copied, so later
// mutation of coords does not affect the Vector.
// Returns ErrEmptyCoords when coords is empty.
func New(coords []decimal.Decimal) (Vector, error) {
	if len(coords) == 0 {
		return Vector{}, ErrEmptyCoords
	}
	cs := make([]decimal.Decimal, len(coords))
	copy(cs, coords)

	return Vector{coords: cs}, nil
}

// FromStrings builds a Vector by parsing each coordinate as a decimal
// literal ("1", "-2.5", "1e-3"). Preferred in tests and callers that
// care about exactness: string literals carry no binary-float noise.
func FromStrings(coords ...string) (Vector, error) {
	if len(coords) == 0 {
		return Vector{}, ErrEmptyCoords
	}
	cs := make([]decimal.Decimal, len(coords))
	for i, s := range coords {
		d, err := decimal.NewFromString(s)
		if err != nil {
			return Vector{}, errors.Wrapf(err, "vector: parsing coordinate %d", i)
		}
		cs[i] = d
	}

	return Vector{coords: cs}, nil
}

// FromFloats builds a Vector from float64 coordinates.
// Returns ErrEmptyCoords when coords is empty.
func FromFloats(coords ...float64) (Vector, error) {
	if len(coords) == 0 {
		return Vector{}, ErrEmptyCoords
	}
	cs := make([]decimal.Decimal, len(coords))
	for i, f := range coords {
		cs[i] = decimal.NewFromFloat(f)
	}

	return Vector{coords: cs}, nil
}

// Dimension returns the number of coordinates.
func (v Vector) Dimension() int {
	return len(v.coords)
}

// At returns the i-th coordinate.
// Returns ErrIndexOutOfRange for i outside [0, Dimension).
func (v Vector) At(i int) (decimal.Decimal, error) {
	if i < 0 || i >= len(v.coords) {
		return decimal.Decimal{}, errors.Wrapf(ErrIndexOutOfRange, "At(%d) on dimension %d", i, len(v.coords))
	}

	return v.coords[i], nil
}

// Coords returns a copy of the coordinate slice.
func (v Vector) Coords() []decimal.Decimal {
	cs := make([]decimal.Decimal, len(v.coords))
	copy(cs, v.coords)

	return cs
}

// Equal reports exact coordinate-wise decimal equality (1.0 equals
// 1.00). Geometric, tolerance-based comparison is deliberately a
// separate concern; see IsZero/IsOrthogonalTo/IsParallelTo.
func (v Vector) Equal(o Vector) bool {
	if len(v.coords) != len(o.coords) {
		return false
	}
	for i := range v.coords {
		if !v.coords[i].Equal(o.coords[i]) {
			return false
		}
	}

	return true
}

// Add returns v + o.
// Returns ErrDimensionMismatch when dimensions differ.
func (v Vector) Add(o Vector) (Vector, error) {
	if len(v.coords) != len(o.coords) {
		return Vector{}, errors.Wrapf(ErrDimensionMismatch, "Add: %d vs %d", len(v.coords), len(o.coords))
	}
	cs := make([]decimal.Decimal, len(v.coords))
	for i := range v.coords {
		cs[i] = v.coords[i].Add(o.coords[i])
	}

	return Vector{coords: cs}, nil
}

// Sub returns v − o.
// Returns ErrDimensionMismatch when dimensions differ.
func (v Vector) Sub(o Vector) (Vector, error) {
	if len(v.coords) != len(o.coords) {
		return Vector{}, errors.Wrapf(ErrDimensionMismatch, "Sub: %d vs %d", len(v.coords), len(o.coords))
	}
	cs := make([]decimal.Decimal, len(v.coords))
	for i := range v.coords {
		cs[i] = v.coords[i].Sub(o.coords[i])
	}

	return Vector{coords: cs}, nil
}

// Scale returns v multiplied coordinate-wise by k. A zero k is legal
// and yields the zero vector of the same dimension.
func (v Vector) Scale(k decimal.Decimal) Vector {
	cs := make([]decimal.Decimal, len(v.coords))
	for i := range v.coords {
		cs[i] = v.coords[i].Mul(k)
	}

	return Vector{coords: cs}
}

// Neg returns −v.
func (v Vector) Neg() Vector {
	cs := make([]decimal.Decimal, len(v.coords))
	for i := range v.coords {
		cs[i] = v.coords[i].Neg()
	}

	return Vector{coords: cs}
}

// FirstNonzeroIndex scans coordinates in order and returns the index
// of the first one with |c| ≥ Tolerance.
// Returns ErrNoNonzeroElements when every coordinate is near-zero, an
// expected condition meaning "no pivot in this vector".
func (v Vector) FirstNonzeroIndex() (int, error) {
	for i, c := range v.coords {
		if !IsNearZero(c) {
			return i, nil
		}
	}

	return 0, ErrNoNonzeroElements
}

// String renders the vector as "Vector: (c1, c2, ...)".
func (v Vector) String() string {
	var sb strings.Builder
	sb.WriteString("Vector: (")
	for i, c := range v.coords {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(c.String())
	}
	sb.WriteString(")")

	return sb.String()
}
