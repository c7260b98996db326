package cache

// Option configures an LRU.
type Option func(*options)

type options struct {
	maxEntries int
}

// DefaultMaxEntries bounds the cache when no limit is configured.
const DefaultMaxEntries = 4096

// WithMaxEntries sets the maximum number of entries. When the limit is reached
// the least recently used entry is evicted. Non-positive values keep the default.
func WithMaxEntries(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxEntries = n
		}
	}
}
