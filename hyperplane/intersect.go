package hyperplane

import (
	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"

	"github.com/katalvlaran/linalg/vector"
)

// IntersectionKind classifies how two lines in the plane relate.
type IntersectionKind int

const (
	// IntersectAtPoint means the lines cross at exactly one point.
	IntersectAtPoint IntersectionKind = iota

	// IntersectNone means the lines are parallel and distinct.
	IntersectNone

	// IntersectCoincident means the lines are the same line.
	IntersectCoincident
)

// Intersection computes the intersection of two lines in 2D by
// Cramer's rule. The returned point is meaningful only when the kind
// is IntersectAtPoint.
// Returns ErrIntersectionDimension unless both equations are 2D.
func Intersection(a, b Hyperplane) (vector.Vector, IntersectionKind, error) {
	if a.Dimension() != 2 || b.Dimension() != 2 {
		return vector.Vector{}, IntersectNone,
			errors.Wrapf(ErrIntersectionDimension, "dimensions %d and %d", a.Dimension(), b.Dimension())
	}

	// Unpack ax + by = k1, cx + dy = k2. Index errors cannot occur in 2D.
	av, _ := a.normal.At(0)
	bv, _ := a.normal.At(1)
	cv, _ := b.normal.At(0)
	dv, _ := b.normal.At(1)
	k1, k2 := a.constant, b.constant

	denom := av.Mul(dv).Sub(bv.Mul(cv))
	if vector.IsNearZero(denom) {
		if a.Equal(b) {
			return vector.Vector{}, IntersectCoincident, nil
		}

		return vector.Vector{}, IntersectNone, nil
	}

	x := dv.Mul(k1).Sub(bv.Mul(k2))
	y := cv.Neg().Mul(k1).Add(av.Mul(k2))
	p, err := vector.New([]decimal.Decimal{x, y})
	if err != nil {
		return vector.Vector{}, IntersectNone, err
	}

	return p.Scale(one.Div(denom)), IntersectAtPoint, nil
}
