package frame

import "errors"

// Predefined errors for table construction.
var (
	ErrLengthMismatch = errors.New("columns must have equal length")
)
