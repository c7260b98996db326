package gamedata

import (
	"context"
	"fmt"

	"github.com/dmitrymomot/gamedata/pkg/jsontree"
	"github.com/dmitrymomot/gamedata/pkg/locale"
)

// GameStrings is a parsed gamestrings document: entity id -> tag -> text.
// It is safe for concurrent reads once parsing has completed.
type GameStrings struct {
	holder
	version string
}

// ParseGameStrings parses a gamestrings document and blocks until done.
// The locale comes from the source, the file name or meta.locale, in that
// order; ErrMissingLocale is returned when none is usable.
func ParseGameStrings(src Source, opts ...Option) (*GameStrings, error) {
	g := &GameStrings{holder: newHolder(opts)}
	g.load(context.Background(), src)
	if g.err != nil {
		return nil, g.err
	}
	return g, nil
}

// ParseGameStringsAsync starts parsing in the background. Accessors block
// until the parse completes; use Wait to observe its error. Cancelling ctx
// aborts reading the source.
func ParseGameStringsAsync(ctx context.Context, src Source, opts ...Option) *GameStrings {
	g := &GameStrings{holder: newHolder(opts)}
	go g.load(ctx, src)
	return g
}

func (g *GameStrings) load(ctx context.Context, src Source) {
	defer close(g.done)
	ctx = g.context(ctx)

	root, loc, err := parseGameStringsTree(ctx, src, g.opts)
	if err != nil {
		g.logFailed(ctx, "gamestrings", src, err)
		g.publish(nil, locale.Unknown, err)
		return
	}

	g.version = metaVersion(root)
	g.publish(root, loc.locale, nil)
	g.logParsed(ctx, "gamestrings", src, root, loc.locale, loc.how)
}

// metaVersion reads meta.version, which may be a string or a build number.
func metaVersion(root *jsontree.Node) string {
	v, ok := root.Path(metaKey, "version")
	if !ok {
		return ""
	}
	if s, isStr := v.Text(); isStr {
		return s
	}
	if n, isNum := v.Number(); isNum {
		return n
	}
	return ""
}

type resolvedLocale struct {
	how    string
	locale locale.Locale
}

func parseGameStringsTree(ctx context.Context, src Source, o *options) (*jsontree.Node, resolvedLocale, error) {
	root, err := parseTree(ctx, src, o)
	if err != nil {
		return nil, resolvedLocale{}, err
	}
	loc, how, ok := resolveLocale(src, root)
	if !ok {
		return nil, resolvedLocale{}, fmt.Errorf("%w: %s", ErrMissingLocale, src.describe())
	}
	return root, resolvedLocale{locale: loc, how: how}, nil
}

// Wait blocks until parsing completes and returns its error.
func (g *GameStrings) Wait(ctx context.Context) error {
	return g.wait(ctx)
}

// Locale returns the language of the text, blocking until parsed.
func (g *GameStrings) Locale() locale.Locale {
	return g.locale()
}

// Version returns meta.version, or "" when absent.
func (g *GameStrings) Version() string {
	if err := g.wait(context.Background()); err != nil {
		return ""
	}
	return g.version
}

// Root returns the parsed tree.
func (g *GameStrings) Root(ctx context.Context) (*jsontree.Node, error) {
	return g.tree(ctx)
}

// Lookup returns the text stored for (id, tag). Missing entries, non-string
// values and unusable documents all report false.
func (g *GameStrings) Lookup(id, tag string) (string, bool) {
	root, err := g.tree(context.Background())
	if err != nil || id == "" || id == metaKey {
		return "", false
	}
	node, ok := root.Path(id, tag)
	if !ok {
		return "", false
	}
	return node.Text()
}

// Tags returns the tags present for id in document order.
func (g *GameStrings) Tags(id string) []string {
	root, err := g.tree(context.Background())
	if err != nil || id == metaKey {
		return nil
	}
	entry, ok := root.Get(id)
	if !ok {
		return nil
	}
	return entry.Names()
}

// Close releases the parsed tree. Close is idempotent and safe to call while
// an asynchronous parse is still running.
func (g *GameStrings) Close() error {
	g.release()
	return nil
}
