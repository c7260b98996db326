// Package logger builds the structured slog loggers used while loading game data.
//
// Loggers write JSON to stdout by default and can be enriched with context
// extractors. Each document load stores a load id in its context, so every
// record emitted during that load carries a document_id attribute:
//
//	log := logger.New(logger.WithLevel(slog.LevelDebug))
//	ctx := logger.WithDocumentID(ctx, "0b6a...")
//	log.DebugContext(ctx, "locale resolved", slog.String("locale", "kokr"))
//	// {"level":"DEBUG","msg":"locale resolved","locale":"kokr","document_id":"0b6a..."}
//
// # Sentry
//
// WithSentry fans records out to Sentry in addition to the primary handler.
// An empty DSN, or a failed SDK initialization, keeps the primary handler only:
//
//	log := logger.New(logger.WithSentry(logger.SentryConfig{
//		DSN:      os.Getenv("SENTRY_DSN"),
//		MinLevel: slog.LevelWarn,
//	}))
//
// Library code that is not handed a logger should use [NewNope].
package logger
