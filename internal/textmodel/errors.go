package textmodel

import "errors"

// Errors returned by edit operations.
var (
	// ErrLineOutOfRange indicates a line number outside the buffer.
	ErrLineOutOfRange = errors.New("line out of range")

	// ErrRangeInvalid indicates a reversed or out-of-bounds range, or a
	// deletion that would remove every line.
	ErrRangeInvalid = errors.New("invalid range")
)
