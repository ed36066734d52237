package seasonal

import "errors"

// Error kinds. Every failure returned by this package wraps exactly one of
// them, so callers can branch with errors.Is.
var (
	// ErrInvalidInput reports a periodicity below 2, a length that is not a
	// multiple of the periodicity, fewer than two full cycles, a series longer
	// than the configured maximum, or non-finite observations.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDivisionByZero reports a centered moving average or seasonal index
	// value of exactly zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrSingularMatrix reports a trend regression whose normal equations
	// cannot be solved.
	ErrSingularMatrix = errors.New("singular matrix")
)
