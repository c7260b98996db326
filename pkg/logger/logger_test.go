package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/gamedata/pkg/logger"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	return rec
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("injects document id", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf))

		ctx := logger.WithDocumentID(context.Background(), "doc-1")
		log.InfoContext(ctx, "parsed", slog.Int("entities", 3))

		rec := decode(t, &buf)
		require.Equal(t, "parsed", rec["msg"])
		require.Equal(t, "doc-1", rec["document_id"])
		require.EqualValues(t, 3, rec["entities"])
	})

	t.Run("omits document id when absent", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf))

		log.InfoContext(context.Background(), "hello")

		rec := decode(t, &buf)
		require.NotContains(t, rec, "document_id")
	})

	t.Run("respects level", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf))
		log.Debug("hidden")
		require.Zero(t, buf.Len())

		log = logger.New(logger.WithOutput(&buf), logger.WithLevel(slog.LevelDebug))
		log.Debug("shown")
		require.NotZero(t, buf.Len())
	})

	t.Run("custom extractors and attrs", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		type key struct{}
		log := logger.New(
			logger.WithOutput(&buf),
			logger.WithExtractors(nil, func(ctx context.Context) (slog.Attr, bool) {
				v, ok := ctx.Value(key{}).(string)
				return slog.String("source", v), ok
			}),
		).With(slog.String("component", "reader"))

		ctx := context.WithValue(context.Background(), key{}, "units.json")
		log.InfoContext(ctx, "loaded")

		rec := decode(t, &buf)
		require.Equal(t, "units.json", rec["source"])
		require.Equal(t, "reader", rec["component"])
	})

	t.Run("sentry without dsn keeps primary handler", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithSentry(logger.SentryConfig{}))
		log.Warn("still logged")
		require.Equal(t, "still logged", decode(t, &buf)["msg"])
	})
}

func TestDocumentID(t *testing.T) {
	t.Parallel()

	_, ok := logger.DocumentID(context.Background())
	require.False(t, ok)

	id, ok := logger.DocumentID(logger.WithDocumentID(context.Background(), "abc"))
	require.True(t, ok)
	require.Equal(t, "abc", id)
}

func TestNewNope(t *testing.T) {
	t.Parallel()

	log := logger.NewNope()
	require.False(t, log.Enabled(context.Background(), slog.LevelError))
}
