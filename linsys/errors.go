package linsys

import "github.com/cockroachdb/errors"

var (
	// ErrEmptySystem indicates construction from zero equations.
	ErrEmptySystem = errors.New("linsys: system must contain at least one equation")

	// ErrDimensionMismatch indicates an equation whose dimension differs
	// from the system's, on construction or row replacement. The check
	// runs before any mutation: a rejected call leaves the system intact.
	ErrDimensionMismatch = errors.New("linsys: equations in the system must live in the same dimension")

	// ErrRowIndex indicates a row position outside [0, Len).
	ErrRowIndex = errors.New("linsys: row index out of range")

	// ErrNoSolutions indicates an inconsistent system (a reduced row
	// reads "0 = k" with k nonzero).
	ErrNoSolutions = errors.New("linsys: no solutions")

	// ErrInfiniteSolutions indicates an underdetermined system (fewer
	// pivot rows than unknowns).
	ErrInfiniteSolutions = errors.New("linsys: infinitely many solutions")
)
