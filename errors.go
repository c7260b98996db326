package gamedata

import "errors"

// Sentinel errors. Match with errors.Is.
var (
	// ErrInvalidArgument is returned for an empty lookup key.
	ErrInvalidArgument = errors.New("gamedata: invalid argument")

	// ErrNotFound is returned by Get lookups that match no entity.
	ErrNotFound = errors.New("gamedata: entity not found")

	// ErrMalformedDocument is returned when the input is not JSON or the root
	// is not an object.
	ErrMalformedDocument = errors.New("gamedata: malformed document")

	// ErrMissingLocale is returned when a gamestrings locale cannot be resolved
	// from the source, the file name or the embedded meta object.
	ErrMissingLocale = errors.New("gamedata: locale could not be resolved")

	// ErrNotInitialized is returned by documents that were not created through
	// Parse, ParseAsync or their gamestrings counterparts.
	ErrNotInitialized = errors.New("gamedata: document not initialized")

	// ErrClosed is returned by documents used after Close.
	ErrClosed = errors.New("gamedata: document closed")

	// ErrNilSource is returned for a Source with no input.
	ErrNilSource = errors.New("gamedata: source has no input")
)
