package gamedata

import (
	"log/slog"

	"github.com/dmitrymomot/gamedata/pkg/cache"
	"github.com/dmitrymomot/gamedata/pkg/jsontree"
	"github.com/dmitrymomot/gamedata/pkg/locale"
	"github.com/dmitrymomot/gamedata/pkg/logger"
)

// Option configures document parsing.
type Option func(*options)

type options struct {
	log                *slog.Logger
	defaultLocale      locale.Locale
	maxDepth           int
	hyperlinkCacheSize int
}

func newOptions(opts []Option) *options {
	o := &options{
		log:                logger.NewNope(),
		defaultLocale:      locale.Default,
		maxDepth:           jsontree.DefaultMaxDepth,
		hyperlinkCacheSize: cache.DefaultMaxEntries,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithLogger sets the logger used for parse diagnostics. Default: discard.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// WithDefaultLocale sets the locale a data document falls back to when none
// can be inferred. Default: locale.ENUS.
func WithDefaultLocale(loc locale.Locale) Option {
	return func(o *options) {
		if loc.IsValid() {
			o.defaultLocale = loc
		}
	}
}

// WithMaxDepth bounds JSON nesting. Default: jsontree.DefaultMaxDepth.
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		if depth > 0 {
			o.maxDepth = depth
		}
	}
}

// WithHyperlinkCacheSize bounds the number of memoized hyperlink id matches
// per document. Default: cache.DefaultMaxEntries.
func WithHyperlinkCacheSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.hyperlinkCacheSize = n
		}
	}
}
