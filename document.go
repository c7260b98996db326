package gamedata

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/gamedata/pkg/cache"
	"github.com/dmitrymomot/gamedata/pkg/jsontree"
	"github.com/dmitrymomot/gamedata/pkg/locale"
)

// Document is a parsed data document whose root members are entities keyed
// by primary id. Use a Reader to materialize entities from it.
type Document struct {
	holder
	gameStrings     *GameStrings
	hyperlinks      *cache.LRU[string]
	ownsGameStrings bool
}

// Parse parses a data document and blocks until done. When the source
// carries a gamestrings stream, both are parsed concurrently.
func Parse(src Source, opts ...Option) (*Document, error) {
	d := newDocument(src, opts)
	d.load(context.Background(), src)
	if d.err != nil {
		_ = d.Close()
		return nil, d.err
	}
	return d, nil
}

// ParseAsync starts parsing in the background and returns immediately.
// Every accessor blocks until the parse completes; Wait reports its error.
// Cancelling ctx aborts reading the source and fails the document.
func ParseAsync(ctx context.Context, src Source, opts ...Option) *Document {
	d := newDocument(src, opts)
	go d.load(ctx, src)
	return d
}

func newDocument(src Source, opts []Option) *Document {
	d := &Document{holder: newHolder(opts)}
	d.hyperlinks = cache.NewLRU[string](cache.WithMaxEntries(d.opts.hyperlinkCacheSize))
	d.gameStrings = src.gameStrings
	return d
}

func (d *Document) load(ctx context.Context, src Source) {
	defer close(d.done)
	ctx = d.context(ctx)

	var (
		root   *jsontree.Node
		gsRoot *jsontree.Node
		gsLoc  resolvedLocale
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		root, err = parseTree(gctx, src, d.opts)
		return err
	})
	if src.gameStringsReader != nil {
		gsSrc := FromReader(src.gameStringsReader, locale.Unknown)
		g.Go(func() error {
			var err error
			gsRoot, gsLoc, err = parseGameStringsTree(gctx, gsSrc, d.opts)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		d.logFailed(ctx, "document", src, err)
		d.publish(nil, locale.Unknown, err)
		return
	}

	if gsRoot != nil {
		d.gameStrings = newParsedGameStrings(gsRoot, gsLoc.locale, d.opts)
		d.ownsGameStrings = true
	}

	loc, how := d.resolveLocale(ctx, src, root)
	d.publish(root, loc, nil)
	d.logParsed(ctx, "document", src, root, loc, how)
}

// resolveLocale lets companion gamestrings override everything else and never
// fails: the default locale is the last resort.
func (d *Document) resolveLocale(ctx context.Context, src Source, root *jsontree.Node) (locale.Locale, string) {
	if d.gameStrings != nil {
		if loc := d.gameStrings.Locale(); loc.IsValid() {
			return loc, "gamestrings"
		}
	}
	if loc, how, ok := resolveLocale(src, root); ok {
		return loc, how
	}
	d.opts.log.DebugContext(ctx, "locale not resolved, using default",
		slog.String("source", src.describe()),
		slog.String("locale", d.opts.defaultLocale.String()),
	)
	return d.opts.defaultLocale, "default"
}

// newParsedGameStrings wraps a tree parsed alongside a data document.
func newParsedGameStrings(root *jsontree.Node, loc locale.Locale, o *options) *GameStrings {
	g := &GameStrings{holder: holder{
		done: make(chan struct{}),
		opts: o,
		root: root,
		loc:  loc,
	}}
	g.version = metaVersion(root)
	close(g.done)
	return g
}

// Wait blocks until parsing completes and returns its error.
func (d *Document) Wait(ctx context.Context) error {
	return d.wait(ctx)
}

// Locale returns the resolved locale, blocking until parsed. It reports
// locale.Unknown when parsing failed.
func (d *Document) Locale() locale.Locale {
	return d.locale()
}

// Root returns the parsed tree.
func (d *Document) Root(ctx context.Context) (*jsontree.Node, error) {
	return d.tree(ctx)
}

// GameStrings returns the attached gamestrings, or nil. It blocks until
// parsed because a companion stream is parsed with the document.
func (d *Document) GameStrings() *GameStrings {
	if d.done == nil {
		return nil
	}
	<-d.done
	return d.gameStrings
}

// Close releases the tree, the hyperlink index and gamestrings parsed from a
// companion stream. Gamestrings passed in with WithGameStrings stay open.
// Close is idempotent and safe while an asynchronous parse is running.
func (d *Document) Close() error {
	if !d.release() {
		return nil
	}
	if d.hyperlinks != nil {
		_ = d.hyperlinks.Close()
	}
	if d.done == nil {
		return nil
	}

	select {
	case <-d.done:
		d.closeCompanion()
	default:
		// A companion parsed after Close must still be released.
		go func() {
			<-d.done
			d.closeCompanion()
		}()
	}
	return nil
}

func (d *Document) closeCompanion() {
	if d.ownsGameStrings && d.gameStrings != nil {
		_ = d.gameStrings.Close()
	}
}
