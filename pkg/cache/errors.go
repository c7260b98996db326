package cache

import "errors"

var (
	// ErrNotFound is returned when a key is not present.
	ErrNotFound = errors.New("cache: entry not found")

	// ErrClosed is returned when an operation is attempted on a closed cache.
	ErrClosed = errors.New("cache: closed")
)
