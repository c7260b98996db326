package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/gamedata"
	"github.com/dmitrymomot/gamedata/pkg/locale"
	"github.com/dmitrymomot/gamedata/pkg/logger"
	"github.com/dmitrymomot/gamedata/pkg/storage"
)

// gameStringsPrefix starts the base name of every gamestrings document.
const gameStringsPrefix = "gamestrings_"

// ErrNoGameStrings is returned when --lang matches no gamestrings document.
var ErrNoGameStrings = errors.New("cli: no gamestrings document in store")

type flags struct {
	dir         string
	gameStrings string
	lang        string
	s3          bool
	verbose     bool
}

// session carries what every command needs to load documents.
type session struct {
	store storage.Store
	log   *slog.Logger
	opts  []gamedata.Option
	flags *flags
}

func newSession(cmd *cobra.Command, f *flags) (*session, error) {
	cfg, err := gamedata.ConfigFromEnv()
	if err != nil {
		return nil, err
	}
	if f.verbose {
		cfg.LogLevel = slog.LevelDebug
	}
	log := cfg.Logger(logger.WithOutput(cmd.ErrOrStderr()), logger.WithText())

	var store storage.Store
	if f.s3 {
		s3, err := cfg.OpenStore()
		if err != nil {
			return nil, fmt.Errorf("opening bucket: %w", err)
		}
		store = s3
	} else {
		store = storage.NewFS(os.DirFS(f.dir))
	}

	return &session{
		store: store,
		log:   log,
		opts:  append(cfg.Options(), gamedata.WithLogger(log)),
		flags: f,
	}, nil
}

// load parses a data document together with the selected gamestrings. The
// returned func closes both.
func (s *session) load(ctx context.Context, dataKey string) (*gamedata.Document, func(), error) {
	src, err := gamedata.FromStorage(ctx, s.store, dataKey)
	if err != nil {
		return nil, nil, err
	}

	gsKey, err := s.gameStringsKey(ctx)
	if err != nil {
		_ = src.Close()
		return nil, nil, err
	}

	var gs *gamedata.GameStrings
	if gsKey != "" {
		gsSrc, err := gamedata.FromStorage(ctx, s.store, gsKey)
		if err != nil {
			_ = src.Close()
			return nil, nil, err
		}
		gs = gamedata.ParseGameStringsAsync(ctx, gsSrc, s.opts...)
		src = src.WithGameStrings(gs)
	}

	doc := gamedata.ParseAsync(ctx, src, s.opts...)
	closeAll := func() {
		_ = doc.Close()
		if gs != nil {
			_ = gs.Close()
		}
	}

	if err := doc.Wait(ctx); err != nil {
		closeAll()
		return nil, nil, err
	}
	if gs != nil {
		if err := gs.Wait(ctx); err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("gamestrings %s: %w", gsKey, err)
		}
	}
	return doc, closeAll, nil
}

// gameStringsKey resolves --gamestrings, or matches --lang against the
// gamestrings documents in the store.
func (s *session) gameStringsKey(ctx context.Context) (string, error) {
	if s.flags.gameStrings != "" {
		return s.flags.gameStrings, nil
	}
	if s.flags.lang == "" {
		return "", nil
	}

	available, err := s.gameStringsByLocale(ctx)
	if err != nil {
		return "", err
	}
	if len(available) == 0 {
		return "", ErrNoGameStrings
	}

	locales := make([]locale.Locale, 0, len(available))
	for _, loc := range locale.All() {
		if _, ok := available[loc]; ok {
			locales = append(locales, loc)
		}
	}
	picked := locale.Match(s.flags.lang, locales...)
	s.log.DebugContext(ctx, "gamestrings selected",
		slog.String("lang", s.flags.lang),
		slog.String("locale", picked.String()),
		slog.String("key", available[picked]),
	)
	return available[picked], nil
}

// gameStringsByLocale lists gamestrings documents keyed by their file name
// locale. When several share a locale the highest build number wins; keys
// without a build number lose to numbered ones and otherwise compare
// lexically.
func (s *session) gameStringsByLocale(ctx context.Context) (map[locale.Locale]string, error) {
	keys, err := s.store.List(ctx, "")
	if err != nil {
		return nil, err
	}
	out := make(map[locale.Locale]string)
	for _, key := range keys {
		if !strings.HasPrefix(path.Base(key), gameStringsPrefix) {
			continue
		}
		loc, ok := locale.FromFilename(key)
		if !ok {
			continue
		}
		if prev, seen := out[loc]; !seen || newerBuild(key, prev) {
			out[loc] = key
		}
	}
	return out, nil
}

// newerBuild reports whether key should replace prev.
func newerBuild(key, prev string) bool {
	kb, kok := buildNumber(key)
	pb, pok := buildNumber(prev)
	switch {
	case kok && pok && kb != pb:
		return kb > pb
	case kok != pok:
		return kok
	default:
		return key > prev
	}
}

// buildNumber reads the build from gamestrings_<build>_<locale>.json.
func buildNumber(key string) (int, bool) {
	name := strings.TrimSuffix(path.Base(key), path.Ext(key))
	parts := strings.Split(strings.TrimPrefix(name, gameStringsPrefix), "_")
	if len(parts) < 2 {
		return 0, false
	}
	n, err := strconv.Atoi(parts[len(parts)-2])
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
