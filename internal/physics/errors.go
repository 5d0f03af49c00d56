package physics

import "errors"

// Domain errors for solving and payload handling.
var (
	// ErrParameterBounds indicates a launch parameter outside its valid range.
	ErrParameterBounds = errors.New("physics: launch parameter out of valid bounds")

	// ErrBadPayload indicates a payload that could not be decoded.
	ErrBadPayload = errors.New("physics: malformed trajectory payload")

	// ErrEmptyTrajectory indicates a solution with no flight samples.
	ErrEmptyTrajectory = errors.New("physics: trajectory has no samples")

	// ErrInvalidSample indicates a sample with NaN, Inf, or negative fields.
	ErrInvalidSample = errors.New("physics: invalid trajectory sample")

	// ErrNotTimeOrdered indicates samples whose times are not ascending.
	ErrNotTimeOrdered = errors.New("physics: trajectory samples not time-ascending")
)

// PayloadError wraps a validation failure with the offending sample index.
type PayloadError struct {
	Index   int
	Wrapped error
}

func (e *PayloadError) Error() string {
	return e.Wrapped.Error()
}

func (e *PayloadError) Unwrap() error {
	return e.Wrapped
}
