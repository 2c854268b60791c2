package linsys

import (
	"github.com/shopspring/decimal"

	"github.com/katalvlaran/linalg/vector"
)

// Solve runs RREF and extracts the unique solution when there is one.
// The receiver is never mutated.
//
// Verdicts:
//   - a reduced row "0 = k" with k not near-zero ⇒ ErrNoSolutions
//   - fewer pivot rows than unknowns ⇒ ErrInfiniteSolutions
//   - otherwise the solution vector, assembled from the reduced
//     constants by pivot position.
func (s *LinearSystem) Solve() (vector.Vector, error) {
	r, err := s.RREF()
	if err != nil {
		return vector.Vector{}, err
	}

	pivots := r.FirstNonzeroIndices()
	for i, p := range pivots {
		if p < 0 && !vector.IsNearZero(r.eqs[i].Constant()) {
			return vector.Vector{}, ErrNoSolutions
		}
	}

	coords := make([]decimal.Decimal, r.dim)
	found := 0
	for i, p := range pivots {
		if p < 0 {
			continue
		}
		coords[p] = r.eqs[i].Constant()
		found++
	}
	if found < r.dim {
		return vector.Vector{}, ErrInfiniteSolutions
	}

	return vector.New(coords)
}
