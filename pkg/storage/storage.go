package storage

import (
	"context"
	"io"
	"path"
	"strings"
)

// Store is a read-only object store.
type Store interface {
	// Get opens an object. The caller must close the returned reader.
	Get(ctx context.Context, key string) (io.ReadCloser, error)

	// Stat returns object metadata without reading the body.
	Stat(ctx context.Context, key string) (*ObjectInfo, error)

	// List returns the keys under prefix in lexical order.
	List(ctx context.Context, prefix string) ([]string, error)
}

// ObjectInfo describes a stored object.
type ObjectInfo struct {
	Key         string
	ContentType string
	Size        int64
}

// Config holds S3-compatible storage configuration.
type Config struct {
	// Bucket is the bucket name (required).
	Bucket string `env:"BUCKET" yaml:"bucket"`

	// AccessKey is the access key ID (required).
	AccessKey string `env:"ACCESS_KEY" yaml:"access_key"`

	// SecretKey is the secret access key (required).
	SecretKey string `env:"SECRET_KEY" yaml:"secret_key"`

	// Endpoint is a custom endpoint URL for MinIO or other S3-compatible services.
	Endpoint string `env:"ENDPOINT" yaml:"endpoint"`

	// Region defaults to us-east-1.
	Region string `env:"REGION" yaml:"region"`

	// Prefix is prepended to every key, e.g. a build number directory.
	Prefix string `env:"PREFIX" yaml:"prefix"`

	// PathStyle enables path-style URLs (required for MinIO).
	PathStyle bool `env:"PATH_STYLE" yaml:"path_style"`
}

// DefaultRegion is used when Config.Region is empty.
const DefaultRegion = "us-east-1"

// IsZero reports whether no bucket is configured.
func (c Config) IsZero() bool {
	return c.Bucket == ""
}

func (c *Config) applyDefaults() {
	if c.Region == "" {
		c.Region = DefaultRegion
	}
	c.Prefix = strings.Trim(c.Prefix, "/")
}

func (c *Config) validate() error {
	if c.Bucket == "" || c.AccessKey == "" || c.SecretKey == "" {
		return ErrInvalidConfig
	}
	return nil
}

// cleanKey rejects empty keys and keys escaping the store root.
func cleanKey(key string) (string, error) {
	key = strings.TrimPrefix(strings.TrimSpace(key), "/")
	if key == "" {
		return "", ErrInvalidKey
	}
	cleaned := path.Clean(key)
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", ErrInvalidKey
	}
	return cleaned, nil
}
