package locale

import "errors"

var (
	ErrUnknownLocale = errors.New("locale: unknown locale code")
	ErrEmptyCode     = errors.New("locale: code cannot be empty")
)
