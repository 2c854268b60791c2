package vector

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"
)

// cosinePlaces is how many decimal places the cosine is rounded to
// before acos. Floating residue can push |cos| a hair above 1 and
// take acos out of its domain; rounding snaps parallel vectors back
// to exactly ±1.
const cosinePlaces = 3

var one = decimal.NewFromInt(1)

// Magnitude returns the Euclidean length of v. The square root is
// taken in float64 (no decimal transcendentals exist) and re-wrapped.
func (v Vector) Magnitude() decimal.Decimal {
	sum := decimal.Zero
	for _, c := range v.coords {
		sum = sum.Add(c.Mul(c))
	}

	return decimal.NewFromFloat(math.Sqrt(sum.InexactFloat64()))
}

// IsZero reports whether the magnitude of v is below Tolerance.
func (v Vector) IsZero() bool {
	return v.Magnitude().Cmp(Tolerance) < 0
}

// Normalized returns the unit vector pointing in the direction of v.
// Returns ErrZeroVector when v is (near-)zero.
func (v Vector) Normalized() (Vector, error) {
	mag := v.Magnitude()
	if mag.Cmp(Tolerance) < 0 {
		return Vector{}, ErrZeroVector
	}

	return v.Scale(one.Div(mag)), nil
}

// Dot returns the inner product of v and o.
// Returns ErrDimensionMismatch when dimensions differ.
func (v Vector) Dot(o Vector) (decimal.Decimal, error) {
	if len(v.coords) != len(o.coords) {
		return decimal.Decimal{}, errors.Wrapf(ErrDimensionMismatch, "Dot: %d vs %d", len(v.coords), len(o.coords))
	}
	sum := decimal.Zero
	for i := range v.coords {
		sum = sum.Add(v.coords[i].Mul(o.coords[i]))
	}

	return sum, nil
}

// angleRadians returns the angle between v and o as a float64.
// Shared by AngleWith and IsParallelTo so both see the same rounding.
func (v Vector) angleRadians(o Vector) (float64, error) {
	u1, err := v.Normalized()
	if err != nil {
		return 0, ErrZeroVectorAngle
	}
	u2, err := o.Normalized()
	if err != nil {
		return 0, ErrZeroVectorAngle
	}
	dot, err := u1.Dot(u2)
	if err != nil {
		return 0, err
	}
	// Round before acos; see cosinePlaces.
	cos := dot.Round(cosinePlaces).InexactFloat64()

	return math.Acos(cos), nil
}

// AngleWith returns the angle between v and o, in radians by default
// or in degrees when inDegrees is true.
// Returns ErrZeroVectorAngle when either vector is (near-)zero and
// ErrDimensionMismatch when dimensions differ.
func (v Vector) AngleWith(o Vector, inDegrees bool) (decimal.Decimal, error) {
	rad, err := v.angleRadians(o)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if inDegrees {
		return decimal.NewFromFloat(rad * 180 / math.Pi), nil
	}

	return decimal.NewFromFloat(rad), nil
}

// IsOrthogonalTo reports whether |v·o| < Tolerance.
// Returns ErrDimensionMismatch when dimensions differ.
func (v Vector) IsOrthogonalTo(o Vector) (bool, error) {
	dot, err := v.Dot(o)
	if err != nil {
		return false, err
	}

	return IsNearZero(dot), nil
}

// IsParallelTo reports whether v and o point in the same or exactly
// opposite direction. The zero vector is parallel to everything.
// Returns ErrDimensionMismatch when dimensions differ.
func (v Vector) IsParallelTo(o Vector) (bool, error) {
	if len(v.coords) != len(o.coords) {
		return false, errors.Wrapf(ErrDimensionMismatch, "IsParallelTo: %d vs %d", len(v.coords), len(o.coords))
	}
	if v.IsZero() || o.IsZero() {
		return true, nil
	}
	rad, err := v.angleRadians(o)
	if err != nil {
		return false, err
	}

	return rad == 0 || rad == math.Pi, nil
}

// ComponentParallelTo returns the projection of v onto basis.
// Returns ErrNoParallelComponent when basis is (near-)zero.
func (v Vector) ComponentParallelTo(basis Vector) (Vector, error) {
	unit, err := basis.Normalized()
	if err != nil {
		return Vector{}, ErrNoParallelComponent
	}
	weight, err := v.Dot(unit)
	if err != nil {
		return Vector{}, err
	}

	return unit.Scale(weight), nil
}

// ComponentOrthogonalTo returns v minus its projection onto basis.
// Returns ErrNoOrthogonalComponent when basis is (near-)zero.
func (v Vector) ComponentOrthogonalTo(basis Vector) (Vector, error) {
	parallel, err := v.ComponentParallelTo(basis)
	if err != nil {
		if errors.Is(err, ErrNoParallelComponent) {
			return Vector{}, ErrNoOrthogonalComponent
		}

		return Vector{}, err
	}

	return v.Sub(parallel)
}

// Cross returns the cross product of v and o as a 3D vector.
// Defined for dimensions 2 and 3 only; 2D inputs are embedded into R³
// with z = 0. Returns ErrCrossDimension for any other dimension and
// ErrDimensionMismatch when the dimensions differ.
func (v Vector) Cross(o Vector) (Vector, error) {
	if len(v.coords) != len(o.coords) {
		return Vector{}, errors.Wrapf(ErrDimensionMismatch, "Cross: %d vs %d", len(v.coords), len(o.coords))
	}
	switch len(v.coords) {
	case 2:
		a := Vector{coords: []decimal.Decimal{v.coords[0], v.coords[1], decimal.Zero}}
		b := Vector{coords: []decimal.Decimal{o.coords[0], o.coords[1], decimal.Zero}}

		return a.Cross(b)
	case 3:
		x1, y1, z1 := v.coords[0], v.coords[1], v.coords[2]
		x2, y2, z2 := o.coords[0], o.coords[1], o.coords[2]

		return Vector{coords: []decimal.Decimal{
			y1.Mul(z2).Sub(y2.Mul(z1)),
			x1.Mul(z2).Sub(x2.Mul(z1)).Neg(),
			x1.Mul(y2).Sub(x2.Mul(y1)),
		}}, nil
	default:
		return Vector{}, errors.Wrapf(ErrCrossDimension, "Cross: dimension %d", len(v.coords))
	}
}

// AreaOfParallelogramWith returns the area of the parallelogram
// spanned by v and o (the magnitude of their cross product).
func (v Vector) AreaOfParallelogramWith(o Vector) (decimal.Decimal, error) {
	cross, err := v.Cross(o)
	if err != nil {
		return decimal.Decimal{}, err
	}

	return cross.Magnitude(), nil
}

// AreaOfTriangleWith returns half the parallelogram area.
func (v Vector) AreaOfTriangleWith(o Vector) (decimal.Decimal, error) {
	area, err := v.AreaOfParallelogramWith(o)
	if err != nil {
		return decimal.Decimal{}, err
	}

	return area.Div(decimal.NewFromInt(2)), nil
}
