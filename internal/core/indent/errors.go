package indent

import "errors"

var (
	// ErrInvalidRange reports offsets that are out of order, out of bounds or
	// not on a rune boundary.
	ErrInvalidRange = errors.New("invalid range")

	// ErrInvalidOptions reports negative indentation settings.
	ErrInvalidOptions = errors.New("invalid indent options")
)
