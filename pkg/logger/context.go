package logger

import (
	"context"
	"log/slog"
)

// ContextExtractor pulls an attribute from a context. Returning false skips it.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

type documentIDKey struct{}

// WithDocumentID stores the load id of a document on ctx.
func WithDocumentID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, documentIDKey{}, id)
}

// DocumentID returns the load id stored by WithDocumentID.
func DocumentID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(documentIDKey{}).(string)
	return id, ok && id != ""
}

// DocumentIDExtractor adds the document_id attribute.
func DocumentIDExtractor(ctx context.Context) (slog.Attr, bool) {
	id, ok := DocumentID(ctx)
	if !ok {
		return slog.Attr{}, false
	}
	return slog.String("document_id", id), true
}

// contextHandler runs extractors on every record before delegating.
type contextHandler struct {
	next       slog.Handler
	extractors []ContextExtractor
}

func newContextHandler(next slog.Handler, extractors ...ContextExtractor) slog.Handler {
	clean := make([]ContextExtractor, 0, len(extractors))
	for _, ex := range extractors {
		if ex != nil {
			clean = append(clean, ex)
		}
	}
	return &contextHandler{next: next, extractors: clean}
}

func (h *contextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *contextHandler) Handle(ctx context.Context, rec slog.Record) error {
	if ctx != nil {
		for _, ex := range h.extractors {
			if attr, ok := ex(ctx); ok {
				rec.AddAttrs(attr)
			}
		}
	}
	return h.next.Handle(ctx, rec)
}

func (h *contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &contextHandler{next: h.next.WithAttrs(attrs), extractors: h.extractors}
}

func (h *contextHandler) WithGroup(name string) slog.Handler {
	return &contextHandler{next: h.next.WithGroup(name), extractors: h.extractors}
}
