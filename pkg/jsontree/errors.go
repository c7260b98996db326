package jsontree

import "errors"

var (
	ErrSyntax       = errors.New("jsontree: invalid JSON")
	ErrTooDeep      = errors.New("jsontree: maximum nesting depth exceeded")
	ErrTrailingData = errors.New("jsontree: unexpected data after top-level value")
	ErrEmptyInput   = errors.New("jsontree: empty input")
)
