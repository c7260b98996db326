package gamedata

import (
	"context"
	"errors"
	"fmt"
	"iter"

	"github.com/dmitrymomot/gamedata/pkg/cache"
	"github.com/dmitrymomot/gamedata/pkg/jsontree"
)

// DefaultHyperlinkField is the member holding an entity's hyperlink id.
const DefaultHyperlinkField = "hyperlinkId"

// Extractor materializes an entity from its primary id and raw node. Missing
// members leave the matching fields at their zero value.
type Extractor[T any] func(id string, node *jsontree.Node) T

// ReaderOption configures a Reader.
type ReaderOption func(*readerOptions)

type readerOptions struct {
	hyperlinkField string
}

// WithHyperlinkField sets the member compared by the hyperlink lookups.
// Default: DefaultHyperlinkField.
func WithHyperlinkField(name string) ReaderOption {
	return func(o *readerOptions) {
		if name != "" {
			o.hyperlinkField = name
		}
	}
}

// Reader looks up entities of one kind in a Document. Entities implementing
// Localizable are merged with the document's gamestrings before being returned.
// A Reader is safe for concurrent use.
type Reader[T any] struct {
	doc     *Document
	extract Extractor[T]
	opts    readerOptions
}

// NewReader returns a reader over doc.
func NewReader[T any](doc *Document, extract Extractor[T], opts ...ReaderOption) *Reader[T] {
	o := readerOptions{hyperlinkField: DefaultHyperlinkField}
	for _, opt := range opts {
		opt(&o)
	}
	return &Reader[T]{doc: doc, extract: extract, opts: o}
}

// errNoMatch marks a hyperlink scan without result; it never leaves the package.
var errNoMatch = errors.New("gamedata: no hyperlink match")

// Get returns the entity stored under id, or ErrNotFound.
func (r *Reader[T]) Get(ctx context.Context, id string) (T, error) {
	v, ok, err := r.TryGet(ctx, id)
	if err != nil {
		return v, err
	}
	if !ok {
		return v, fmt.Errorf("%w: id %q", ErrNotFound, id)
	}
	return v, nil
}

// TryGet returns the entity stored under id. A missing entity is reported
// with ok == false and a nil error.
func (r *Reader[T]) TryGet(ctx context.Context, id string) (T, bool, error) {
	var zero T
	if id == "" {
		return zero, false, fmt.Errorf("%w: empty id", ErrInvalidArgument)
	}
	root, err := r.root(ctx)
	if err != nil {
		return zero, false, err
	}
	if id == metaKey {
		return zero, false, nil
	}
	node, ok := root.Get(id)
	if !ok {
		return zero, false, nil
	}
	return r.materialize(id, node), true, nil
}

// GetByHyperlinkID returns the first entity in document order whose hyperlink
// id equals hid, or ErrNotFound.
func (r *Reader[T]) GetByHyperlinkID(ctx context.Context, hid string) (T, error) {
	v, ok, err := r.TryGetByHyperlinkID(ctx, hid)
	if err != nil {
		return v, err
	}
	if !ok {
		return v, fmt.Errorf("%w: hyperlink id %q", ErrNotFound, hid)
	}
	return v, nil
}

// TryGetByHyperlinkID is GetByHyperlinkID reporting a miss with ok == false.
// Matches are memoized per document; misses are rescanned every time.
func (r *Reader[T]) TryGetByHyperlinkID(ctx context.Context, hid string) (T, bool, error) {
	var zero T
	if hid == "" {
		return zero, false, fmt.Errorf("%w: empty hyperlink id", ErrInvalidArgument)
	}
	root, err := r.root(ctx)
	if err != nil {
		return zero, false, err
	}

	key := r.opts.hyperlinkField + "\x00" + hid
	id, err := r.doc.hyperlinks.GetOrLoad(ctx, key, func(context.Context) (string, error) {
		return r.scan(root, hid)
	})
	switch {
	case errors.Is(err, errNoMatch):
		return zero, false, nil
	case errors.Is(err, cache.ErrClosed):
		return zero, false, ErrClosed
	case err != nil:
		return zero, false, err
	}

	node, ok := root.Get(id)
	if !ok {
		return zero, false, nil
	}
	return r.materialize(id, node), true, nil
}

// scan returns the primary id of the first entity whose hyperlink field
// equals hid.
func (r *Reader[T]) scan(root *jsontree.Node, hid string) (string, error) {
	for id, node := range root.Members() {
		if id == metaKey {
			continue
		}
		if v, ok := node.Get(r.opts.hyperlinkField); ok && v.StringEquals(hid) {
			return id, nil
		}
	}
	return "", errNoMatch
}

// All returns every entity in document order. Each entity is materialized
// when the sequence reaches it, so stopping early skips the rest. Ranging
// over the sequence again starts a fresh pass.
func (r *Reader[T]) All(ctx context.Context) (iter.Seq[T], error) {
	root, err := r.root(ctx)
	if err != nil {
		return nil, err
	}
	return func(yield func(T) bool) {
		for id, node := range root.Members() {
			if id == metaKey {
				continue
			}
			if !yield(r.materialize(id, node)) {
				return
			}
		}
	}, nil
}

// IDs returns the primary ids in document order.
func (r *Reader[T]) IDs(ctx context.Context) ([]string, error) {
	root, err := r.root(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, root.Len())
	for id := range root.Members() {
		if id != metaKey {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// Len returns the number of entities in the document.
func (r *Reader[T]) Len(ctx context.Context) (int, error) {
	root, err := r.root(ctx)
	if err != nil {
		return 0, err
	}
	n := root.Len()
	if _, ok := root.Get(metaKey); ok {
		n--
	}
	return n, nil
}

func (r *Reader[T]) root(ctx context.Context) (*jsontree.Node, error) {
	if r.doc == nil || r.extract == nil {
		return nil, ErrNotInitialized
	}
	return r.doc.tree(ctx)
}

func (r *Reader[T]) materialize(id string, node *jsontree.Node) T {
	v := r.extract(id, node)
	if l, ok := any(v).(Localizable); ok {
		r.doc.gameStrings.Merge(l)
	}
	return v
}
