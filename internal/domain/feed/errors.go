package feed

import "errors"

var (
	// ErrActivityNotFound indicates the referenced feed entry doesn't exist.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrInvalidInput indicates invalid feed input.
	ErrInvalidInput = errors.New("invalid activity input")
)
