package gamedata

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/gamedata/pkg/cache"
	"github.com/dmitrymomot/gamedata/pkg/jsontree"
	"github.com/dmitrymomot/gamedata/pkg/locale"
	"github.com/dmitrymomot/gamedata/pkg/logger"
	"github.com/dmitrymomot/gamedata/pkg/storage"
)

// EnvPrefix prefixes every environment variable read by ConfigFromEnv.
const EnvPrefix = "GAMEDATA_"

// Config gathers document settings that are usually deployment specific.
type Config struct {
	Sentry             logger.SentryConfig `yaml:"sentry"`
	Storage            storage.Config      `envPrefix:"S3_" yaml:"storage"`
	DefaultLocale      locale.Locale       `env:"DEFAULT_LOCALE"       envDefault:"ENUS" yaml:"default_locale"`
	MaxDepth           int                 `env:"MAX_DEPTH"            envDefault:"256"  yaml:"max_depth"`
	HyperlinkCacheSize int                 `env:"HYPERLINK_CACHE_SIZE" envDefault:"4096" yaml:"hyperlink_cache_size"`
	LogLevel           slog.Level          `env:"LOG_LEVEL"            envDefault:"INFO" yaml:"log_level"`
}

// DefaultConfig returns the values used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Sentry: logger.SentryConfig{
			Environment: "production",
			MinLevel:    slog.LevelWarn,
		},
		DefaultLocale:      locale.Default,
		MaxDepth:           jsontree.DefaultMaxDepth,
		HyperlinkCacheSize: cache.DefaultMaxEntries,
		LogLevel:           slog.LevelInfo,
	}
}

// ConfigFromEnv reads the configuration from GAMEDATA_* variables,
// e.g. GAMEDATA_DEFAULT_LOCALE=KOKR or GAMEDATA_S3_BUCKET=builds.
func ConfigFromEnv() (Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](env.Options{Prefix: EnvPrefix})
	if err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}
	return cfg, nil
}

// ConfigFromYAML decodes a YAML document over DefaultConfig. Empty input
// yields the defaults.
func ConfigFromYAML(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parsing yaml config: %w", err)
	}
	return cfg, nil
}

// Options converts the configuration into document options. Pass
// WithLogger(c.Logger()) alongside to log through the configured handler.
func (c Config) Options() []Option {
	return []Option{
		WithDefaultLocale(c.DefaultLocale),
		WithMaxDepth(c.MaxDepth),
		WithHyperlinkCacheSize(c.HyperlinkCacheSize),
	}
}

// Logger builds a JSON logger at LogLevel, also reporting to Sentry when a
// DSN is configured. opts are applied last.
func (c Config) Logger(opts ...logger.Option) *slog.Logger {
	base := []logger.Option{logger.WithLevel(c.LogLevel)}
	if c.Sentry.DSN != "" {
		base = append(base, logger.WithSentry(c.Sentry))
	}
	return logger.New(append(base, opts...)...)
}

// OpenStore connects to the configured bucket. It returns
// storage.ErrInvalidConfig when no bucket is set.
func (c Config) OpenStore() (*storage.S3Store, error) {
	if c.Storage.IsZero() {
		return nil, storage.ErrInvalidConfig
	}
	return storage.New(c.Storage)
}
