package hyperplane

import "github.com/cockroachdb/errors"

var (
	// ErrBadDimension indicates a requested dimension below 1.
	ErrBadDimension = errors.New("hyperplane: dimension must be at least 1")

	// ErrIntersectionDimension indicates an intersection query on
	// equations that are not both lines in two dimensions.
	ErrIntersectionDimension = errors.New("hyperplane: intersection is only defined for lines in two dimensions")
)
