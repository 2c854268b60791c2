package hyperplane

import (
	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"

	"github.com/katalvlaran/linalg/vector"
)

// Hyperplane is an immutable linear equation: a normal vector and a
// constant term. The zero value is not valid; use New, FromStrings or
// Zero.
type Hyperplane struct {
	normal   vector.Vector
	constant decimal.Decimal
}

// New builds a Hyperplane from a normal vector and a constant term.
func New(normal vector.Vector, constant decimal.Decimal) Hyperplane {
	return Hyperplane{normal: normal, constant: constant}
}

// FromStrings builds a Hyperplane by parsing decimal literals for the
// normal-vector coefficients and the constant term.
func FromStrings(coords []string, constant string) (Hyperplane, error) {
	n, err := vector.FromStrings(coords...)
	if err != nil {
		return Hyperplane{}, errors.Wrap(err, "hyperplane: normal vector")
	}
	k, err := decimal.NewFromString(constant)
	if err != nil {
		return Hyperplane{}, errors.Wrap(err, "hyperplane: constant term")
	}

	return Hyperplane{normal: n, constant: k}, nil
}

// Zero returns the degenerate equation 0 = 0 in the given dimension.
// Returns ErrBadDimension when dim < 1.
func Zero(dim int) (Hyperplane, error) {
	if dim < 1 {
		return Hyperplane{}, errors.Wrapf(ErrBadDimension, "Zero(%d)", dim)
	}
	coords := make([]decimal.Decimal, dim)
	n, err := vector.New(coords)
	if err != nil {
		return Hyperplane{}, err
	}

	return Hyperplane{normal: n, constant: decimal.Zero}, nil
}

// Normal returns the normal vector.
func (h Hyperplane) Normal() vector.Vector {
	return h.normal
}

// Constant returns the constant term.
func (h Hyperplane) Constant() decimal.Decimal {
	return h.constant
}

// Dimension returns the dimension the equation lives in.
func (h Hyperplane) Dimension() int {
	return h.normal.Dimension()
}

// Coefficient returns the i-th normal-vector coefficient.
// Returns vector.ErrIndexOutOfRange for i outside [0, Dimension).
func (h Hyperplane) Coefficient(i int) (decimal.Decimal, error) {
	return h.normal.At(i)
}

// Basepoint derives a point satisfying the equation: constant/c at
// the first coefficient index whose value is not near-zero, zeros
// elsewhere. The second return is false when the normal vector is
// entirely near-zero — such an equation ("0 = k") has no basepoint.
func (h Hyperplane) Basepoint() (vector.Vector, bool) {
	idx, err := h.normal.FirstNonzeroIndex()
	if err != nil {
		return vector.Vector{}, false
	}
	c, err := h.normal.At(idx)
	if err != nil {
		return vector.Vector{}, false
	}
	coords := make([]decimal.Decimal, h.Dimension())
	coords[idx] = h.constant.Div(c)
	bp, err := vector.New(coords)
	if err != nil {
		return vector.Vector{}, false
	}

	return bp, true
}

// IsParallelTo reports whether the two equations' normal vectors are
// parallel. Equations of different dimensions are never parallel.
func (h Hyperplane) IsParallelTo(o Hyperplane) bool {
	par, err := h.normal.IsParallelTo(o.normal)
	if err != nil {
		return false
	}

	return par
}

// Equal reports geometric coincidence: the normals are parallel and
// the vector connecting the two basepoints is orthogonal to the
// normal. When both equations lack a basepoint (all-zero normals,
// "0 = k"), they are equal iff the constants differ by less than the
// tolerance; when only one lacks a basepoint they are never equal.
func (h Hyperplane) Equal(o Hyperplane) bool {
	if h.Dimension() != o.Dimension() {
		return false
	}
	bp1, ok1 := h.Basepoint()
	bp2, ok2 := o.Basepoint()
	if !ok1 || !ok2 {
		if ok1 != ok2 {
			return false
		}

		return vector.IsNearZero(h.constant.Sub(o.constant))
	}
	if !h.IsParallelTo(o) {
		return false
	}
	connecting, err := bp1.Sub(bp2)
	if err != nil {
		return false
	}
	orth, err := connecting.IsOrthogonalTo(h.normal)
	if err != nil {
		return false
	}

	return orth
}
