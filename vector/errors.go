package vector

import "github.com/cockroachdb/errors"

var (
	// ErrEmptyCoords indicates a vector was constructed from zero coordinates.
	ErrEmptyCoords = errors.New("vector: coordinates must be non-empty")

	// ErrIndexOutOfRange indicates a coordinate index outside [0, Dimension).
	ErrIndexOutOfRange = errors.New("vector: coordinate index out of range")

	// ErrDimensionMismatch indicates a binary operation on vectors of
	// different dimensions.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrZeroVector indicates an attempt to normalize the zero vector.
	ErrZeroVector = errors.New("vector: cannot normalize the zero vector")

	// ErrZeroVectorAngle indicates an angle query involving the zero vector.
	ErrZeroVectorAngle = errors.New("vector: cannot compute an angle with the zero vector")

	// ErrNoParallelComponent indicates a projection onto a zero basis.
	ErrNoParallelComponent = errors.New("vector: no unique parallel component")

	// ErrNoOrthogonalComponent indicates an orthogonal decomposition
	// against a zero basis.
	ErrNoOrthogonalComponent = errors.New("vector: no unique orthogonal component")

	// ErrCrossDimension indicates a cross product outside two or three
	// dimensions.
	ErrCrossDimension = errors.New("vector: cross product is only defined in two or three dimensions")

	// ErrNoNonzeroElements signals that every coordinate is near-zero.
	// This is an expected control-flow condition for pivot search, not a
	// fault: callers must branch on it via errors.Is and treat it as
	// "no pivot here".
	ErrNoNonzeroElements = errors.New("vector: no nonzero elements found")
)
