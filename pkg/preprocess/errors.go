package preprocess

import "errors"

// Predefined errors for the fit/transform lifecycle and matrix handling.
var (
	ErrNotFitted         = errors.New("transformer is not fitted")
	ErrAlreadyFitted     = errors.New("transformer is already fitted")
	ErrDimensionMismatch = errors.New("dimension mismatch")
	ErrInvalidState      = errors.New("invalid transformer state")
)
