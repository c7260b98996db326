package gamedata

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrymomot/gamedata/pkg/locale"
	"github.com/dmitrymomot/gamedata/pkg/storage"
)

type sourceKind uint8

const (
	sourceNone sourceKind = iota
	sourcePath
	sourceBytes
	sourceReader
)

// Source describes where a document is read from. Build one with FromPath,
// FromBytes, FromReader or FromStorage and refine it with the With methods.
type Source struct {
	r                 io.Reader
	owned             io.Closer
	gameStrings       *GameStrings
	gameStringsReader io.Reader
	path              string
	name              string
	data              []byte
	kind              sourceKind
	locale            locale.Locale
}

// FromPath reads the file at path. The locale is inferred from the file name
// unless set with WithLocale.
func FromPath(path string) Source {
	return Source{kind: sourcePath, path: path}
}

// FromBytes parses an in-memory buffer. Pass locale.Unknown to infer the locale
// from the embedded meta object.
func FromBytes(data []byte, loc locale.Locale) Source {
	return Source{kind: sourceBytes, data: data, locale: loc}
}

// FromReader parses a stream. The stream is consumed to the end but not
// closed; the caller keeps ownership.
func FromReader(r io.Reader, loc locale.Locale) Source {
	return Source{kind: sourceReader, r: r}.WithLocale(loc)
}

// FromStorage opens key in store. The object key doubles as the file name for
// locale inference, and the object body is closed once parsing finishes.
func FromStorage(ctx context.Context, store storage.Store, key string) (Source, error) {
	if store == nil {
		return Source{}, fmt.Errorf("%w: nil store", ErrInvalidArgument)
	}
	body, err := store.Get(ctx, key)
	if err != nil {
		return Source{}, fmt.Errorf("opening %q: %w", key, err)
	}
	return Source{kind: sourceReader, r: body, owned: body, name: key}, nil
}

// WithLocale sets the locale explicitly. It takes precedence over the file
// name and the meta object, but not over companion gamestrings.
func (s Source) WithLocale(loc locale.Locale) Source {
	if loc.IsValid() {
		s.locale = loc
	}
	return s
}

// WithName sets a file name used only for locale inference.
func (s Source) WithName(name string) Source {
	s.name = name
	return s
}

// WithGameStrings attaches a parsed gamestrings document. Its locale replaces
// the data document's own.
func (s Source) WithGameStrings(gs *GameStrings) Source {
	s.gameStrings = gs
	return s
}

// WithGameStringsReader attaches a gamestrings stream that is parsed together
// with the data. Its locale comes from its meta object.
func (s Source) WithGameStringsReader(r io.Reader) Source {
	s.gameStringsReader = r
	return s
}

// filename returns the name used for locale inference.
func (s Source) filename() string {
	if s.name != "" {
		return s.name
	}
	return s.path
}

// describe names the source in log records.
func (s Source) describe() string {
	switch s.kind {
	case sourcePath:
		return s.path
	case sourceBytes:
		return "bytes"
	case sourceReader:
		if s.name != "" {
			return s.name
		}
		return "stream"
	default:
		return "none"
	}
}

// open returns a reader over the source and a release func that must be
// called on every exit path.
func (s Source) open() (io.Reader, func() error, error) {
	noop := func() error { return nil }

	switch s.kind {
	case sourcePath:
		f, err := os.Open(s.path)
		if err != nil {
			return nil, nil, fmt.Errorf("opening %q: %w", s.path, err)
		}
		return f, f.Close, nil
	case sourceBytes:
		return bytes.NewReader(s.data), noop, nil
	case sourceReader:
		if s.r == nil {
			return nil, nil, ErrNilSource
		}
		if s.owned != nil {
			return s.r, s.owned.Close, nil
		}
		return s.r, noop, nil
	default:
		return nil, nil, ErrNilSource
	}
}

// Close releases the object body opened by FromStorage. Parsing a source
// closes it already; call Close only for a source that is never parsed.
func (s Source) Close() error {
	if s.owned != nil {
		return s.owned.Close()
	}
	return nil
}
