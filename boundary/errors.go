package boundary

import "errors"

// Errors reported by [View.Bytes].  The entry points map both to their
// failure value (0) instead of dereferencing the region.
var (
	// ErrNilView is returned when a view has a nil pointer but a non-zero length.
	ErrNilView = errors.New("boundary: nil pointer with non-zero length")

	// ErrViewTooLarge is returned when a view is longer than [MaxViewLen].
	ErrViewTooLarge = errors.New("boundary: view exceeds maximum length")
)
