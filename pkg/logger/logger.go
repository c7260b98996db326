package logger

import (
	"io"
	"log/slog"
	"os"
)

// Option configures a logger built by New.
type Option func(*options)

type options struct {
	output     io.Writer
	sentry     *SentryConfig
	extractors []ContextExtractor
	level      slog.Level
	text       bool
}

// WithLevel sets the minimum level written. Default: slog.LevelInfo.
func WithLevel(level slog.Level) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithOutput redirects output. Default: os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.output = w
		}
	}
}

// WithText switches from JSON to logfmt-style text output.
func WithText() Option {
	return func(o *options) {
		o.text = true
	}
}

// WithExtractors adds context extractors applied on every record.
// DocumentIDExtractor is always installed.
func WithExtractors(extractors ...ContextExtractor) Option {
	return func(o *options) {
		o.extractors = append(o.extractors, extractors...)
	}
}

// WithSentry also forwards records to Sentry.
func WithSentry(cfg SentryConfig) Option {
	return func(o *options) {
		o.sentry = &cfg
	}
}

// New creates a logger with the given options.
func New(opts ...Option) *slog.Logger {
	o := &options{
		output: os.Stdout,
		level:  slog.LevelInfo,
	}
	for _, opt := range opts {
		opt(o)
	}

	hopts := &slog.HandlerOptions{Level: o.level}
	var handler slog.Handler
	if o.text {
		handler = slog.NewTextHandler(o.output, hopts)
	} else {
		handler = slog.NewJSONHandler(o.output, hopts)
	}

	if o.sentry != nil {
		if sh, ok := newSentryHandler(*o.sentry, handler); ok {
			handler = newFanout(handler, sh)
		}
	}

	extractors := append([]ContextExtractor{DocumentIDExtractor}, o.extractors...)
	return slog.New(newContextHandler(handler, extractors...))
}

// NewNope creates a logger that discards all output.
func NewNope() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
