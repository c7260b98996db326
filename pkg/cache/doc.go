// Package cache provides a bounded in-memory LRU used to memoize lookups that
// would otherwise rescan a document.
//
// Entries live as long as the cache; there is no expiry because the cached
// data is derived from an immutable source that shares the cache's lifetime.
//
//	c := cache.NewLRU[string](cache.WithMaxEntries(1024))
//	defer c.Close()
//
//	id, err := c.GetOrLoad(ctx, "hyperlinkId=HeroAbathur", func(ctx context.Context) (string, error) {
//		return scan(ctx)
//	})
//
// GetOrLoad deduplicates concurrent loads of the same key with singleflight,
// scoped to the cache instance. A loader error is returned to every waiter
// and nothing is stored, so "not found" results are never memoized.
package cache
