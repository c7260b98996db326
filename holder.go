package gamedata

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrymomot/gamedata/pkg/jsontree"
	"github.com/dmitrymomot/gamedata/pkg/locale"
	"github.com/dmitrymomot/gamedata/pkg/logger"
)

// metaKey names the reserved top-level object carrying document metadata.
const metaKey = "meta"

// holder owns a parsed tree and publishes it once parsing completes.
// Fields written by the parse are read only after done is closed.
type holder struct {
	root   *jsontree.Node
	err    error
	done   chan struct{}
	opts   *options
	id     string
	loc    locale.Locale
	mu     sync.RWMutex
	closed bool
}

func newHolder(opts []Option) holder {
	return holder{
		done: make(chan struct{}),
		opts: newOptions(opts),
		id:   uuid.NewString(),
	}
}

// context attaches the load id for log correlation.
func (h *holder) context(ctx context.Context) context.Context {
	return logger.WithDocumentID(ctx, h.id)
}

// wait blocks until the parse has finished or ctx is done.
func (h *holder) wait(ctx context.Context) error {
	if h.done == nil {
		return ErrNotInitialized
	}
	select {
	case <-h.done:
	case <-ctx.Done():
		return ctx.Err()
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.closed {
		return ErrClosed
	}
	return h.err
}

// tree returns the parsed root once available.
func (h *holder) tree(ctx context.Context) (*jsontree.Node, error) {
	if err := h.wait(ctx); err != nil {
		return nil, err
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.closed {
		return nil, ErrClosed
	}
	return h.root, nil
}

// locale blocks until the parse finishes and returns the resolved locale,
// or locale.Unknown if the parse failed.
func (h *holder) locale() locale.Locale {
	if h.done == nil {
		return locale.Unknown
	}
	<-h.done
	return h.loc
}

// release drops the tree. It is safe after a failed or unfinished parse; an
// unfinished parse publishes into a closed holder and its result is discarded.
func (h *holder) release() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.closed = true
	h.root = nil
	return true
}

// parseTree reads src fully into a tree, releasing the source on every path.
func parseTree(ctx context.Context, src Source, o *options) (*jsontree.Node, error) {
	r, release, err := src.open()
	if err != nil {
		_ = src.Close()
		return nil, err
	}
	defer func() { _ = release() }()

	root, err := jsontree.Parse(ctx, r, jsontree.WithMaxDepth(o.maxDepth))
	if err != nil {
		if isSyntaxError(err) {
			return nil, fmt.Errorf("%w: %s: %w", ErrMalformedDocument, src.describe(), err)
		}
		return nil, fmt.Errorf("reading %s: %w", src.describe(), err)
	}

	if root.Kind() != jsontree.Object {
		return nil, fmt.Errorf("%w: %s: root is %s, want object", ErrMalformedDocument, src.describe(), root.Kind())
	}
	return root, nil
}

func isSyntaxError(err error) bool {
	return errors.Is(err, jsontree.ErrSyntax) ||
		errors.Is(err, jsontree.ErrTooDeep) ||
		errors.Is(err, jsontree.ErrTrailingData) ||
		errors.Is(err, jsontree.ErrEmptyInput)
}

// resolveLocale applies explicit > file name > meta.locale. The string names
// the method used, for logging.
func resolveLocale(src Source, root *jsontree.Node) (locale.Locale, string, bool) {
	if src.locale.IsValid() {
		return src.locale, "explicit", true
	}
	if name := src.filename(); name != "" {
		if loc, ok := locale.FromFilename(name); ok {
			return loc, "filename", true
		}
	}
	if node, ok := root.Path(metaKey, "locale"); ok {
		if loc, err := locale.Parse(node.Str()); err == nil {
			return loc, "meta", true
		}
	}
	return locale.Unknown, "", false
}

// logParsed reports a finished parse from the values the parse produced.
// It never reads the holder's fields, which Close may clear concurrently.
func (h *holder) logParsed(ctx context.Context, kind string, src Source, root *jsontree.Node, loc locale.Locale, how string) {
	h.opts.log.DebugContext(ctx, kind+" parsed",
		slog.String("source", src.describe()),
		slog.String("locale", loc.String()),
		slog.String("locale_from", how),
		slog.Int("members", root.Len()),
	)
}

func (h *holder) logFailed(ctx context.Context, kind string, src Source, err error) {
	h.opts.log.WarnContext(ctx, kind+" parse failed",
		slog.String("source", src.describe()),
		slog.String("error", err.Error()),
	)
}

// publish stores the parse result. A holder closed mid-parse keeps only the error.
func (h *holder) publish(root *jsontree.Node, loc locale.Locale, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.err = err
	if err != nil {
		return
	}
	h.loc = loc
	if !h.closed {
		h.root = root
	}
}
