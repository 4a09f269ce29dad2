// Package memo provides the append-only memo table behind every complex in homalg.
//
// A Cache maps a key to a value that is produced at most once: concurrent
// callers asking for the same missing key share a single production through
// singleflight, and a produced value is never replaced or evicted.
// Production runs with no lock held, so a producer may read other keys of the
// same Cache. A producer that (transitively) asks for its own key deadlocks;
// that is a cyclic factory and a caller bug.
package memo

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

type entry[K, V any] struct {
	key K
	val V
}

// Cache is a concurrency-safe, append-only memo table from K to V.
// K values are addressed through the string returned by keyFn, which must be
// injective on the keys the caller uses.
type Cache[K, V any] struct {
	mu      sync.RWMutex // guards entries
	entries map[string]entry[K, V]
	keyFn   func(K) string
	group   singleflight.Group
}

// New returns an empty Cache using keyFn to derive map keys.
func New[K, V any](keyFn func(K) string) *Cache[K, V] {
	return &Cache[K, V]{
		entries: make(map[string]entry[K, V]),
		keyFn:   keyFn,
	}
}

// Lookup returns the cached value for k, if any. It never produces.
func (c *Cache[K, V]) Lookup(k K) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[c.keyFn(k)]

	return e.val, ok
}

// Has reports whether k is cached.
func (c *Cache[K, V]) Has(k K) bool {
	_, ok := c.Lookup(k)
	return ok
}

// Len returns the number of cached entries.
func (c *Cache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// Keys returns a snapshot of all cached keys in unspecified order.
func (c *Cache[K, V]) Keys() []K {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]K, 0, len(c.entries))
	for _, e := range c.entries {
		out = append(out, e.key)
	}

	return out
}

// GetOrProduce returns the cached value for k. On a miss it calls produce
// exactly once across all concurrent callers of the same key and stores the
// result if produce succeeds. Errors are returned to every waiting caller and
// nothing is cached, so a later call retries the production.
//
// hit reports whether the value was already cached when this caller arrived.
func (c *Cache[K, V]) GetOrProduce(k K, produce func() (V, error)) (val V, hit bool, err error) {
	sk := c.keyFn(k)
	c.mu.RLock()
	e, ok := c.entries[sk]
	c.mu.RUnlock()
	if ok {
		return e.val, true, nil
	}

	res, err, _ := c.group.Do(sk, func() (interface{}, error) {
		// A previous flight may have finished between our read and Do.
		c.mu.RLock()
		e, ok := c.entries[sk]
		c.mu.RUnlock()
		if ok {
			return e.val, nil
		}
		v, err := produce()
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.entries[sk] = entry[K, V]{key: k, val: v}
		c.mu.Unlock()

		return v, nil
	})
	if err != nil {
		var zero V
		return zero, false, err
	}

	// comma-ok keeps a nil interface-typed V from panicking.
	v, _ := res.(V)

	return v, false, nil
}
