package cache

import (
	"container/list"
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/singleflight"
)

type entry[V any] struct {
	value V
	key   string
}

// LRU is a size-bounded cache safe for concurrent use.
type LRU[V any] struct {
	items    map[string]*list.Element
	eviction *list.List
	group    singleflight.Group
	max      int
	mu       sync.Mutex
	closed   bool
}

// NewLRU creates an empty cache.
func NewLRU[V any](opts ...Option) *LRU[V] {
	o := &options{maxEntries: DefaultMaxEntries}
	for _, opt := range opts {
		opt(o)
	}
	return &LRU[V]{
		items:    make(map[string]*list.Element),
		eviction: list.New(),
		max:      o.maxEntries,
	}
}

// Get returns the value for key and marks it as recently used.
func (c *LRU[V]) Get(key string) (V, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	if c.closed {
		return zero, ErrClosed
	}

	elem, ok := c.items[key]
	if !ok {
		return zero, ErrNotFound
	}
	c.eviction.MoveToFront(elem)
	return elem.Value.(*entry[V]).value, nil
}

// Set stores value under key, evicting the least recently used entry when full.
func (c *LRU[V]) Set(key string, value V) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}

	if elem, ok := c.items[key]; ok {
		elem.Value.(*entry[V]).value = value
		c.eviction.MoveToFront(elem)
		return nil
	}

	if len(c.items) >= c.max {
		if oldest := c.eviction.Back(); oldest != nil {
			c.eviction.Remove(oldest)
			delete(c.items, oldest.Value.(*entry[V]).key)
		}
	}

	c.items[key] = c.eviction.PushFront(&entry[V]{key: key, value: value})
	return nil
}

// Len returns the number of cached entries.
func (c *LRU[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// GetOrLoad returns the cached value for key or calls load once across
// concurrent callers. Successful results are stored.
func (c *LRU[V]) GetOrLoad(ctx context.Context, key string, load func(ctx context.Context) (V, error)) (V, error) {
	if v, err := c.Get(key); err == nil {
		return v, nil
	} else if errors.Is(err, ErrClosed) {
		return v, err
	}

	res, err, _ := c.group.Do(key, func() (any, error) {
		v, err := load(ctx)
		if err != nil {
			return nil, err
		}
		// Closed caches still hand the loaded value back.
		_ = c.Set(key, v)
		return v, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return res.(V), nil
}

// Close drops all entries. Subsequent operations return ErrClosed.
// Close is idempotent.
func (c *LRU[V]) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	c.items = nil
	c.eviction.Init()
	return nil
}
