package cache

import (
	"time"

	"github.com/dgraph-io/ristretto/v2"
)

// Cache is a named, cost-bounded in-process cache.
type Cache[T any] struct {
	impl       *ristretto.Cache[string, T]
	name       string
	defaultTTL time.Duration
}

// New creates a cache bounded by maxCost, costing entries with costFunc.
func New[T any](name string, maxCost int64, ttl time.Duration, costFunc func(T) int64) (*Cache[T], error) {
	impl, err := ristretto.NewCache(&ristretto.Config[string, T]{
		NumCounters: maxCost * 10,
		MaxCost:     maxCost,
		BufferItems: 64,
		Metrics:     true,
		Cost:        costFunc,
	})
	if err != nil {
		return nil, err
	}

	return &Cache[T]{
		impl:       impl,
		name:       name,
		defaultTTL: ttl,
	}, nil
}

func (c *Cache[T]) Name() string {
	return c.name
}

func (c *Cache[T]) Get(key string) (T, bool) {
	return c.impl.Get(key)
}

// Set stores a value with the cache's default TTL. A cost of 0 defers to the
// cost function.
func (c *Cache[T]) Set(key string, value T, cost int64) bool {
	return c.impl.SetWithTTL(key, value, cost, c.defaultTTL)
}

func (c *Cache[T]) Delete(key string) {
	c.impl.Del(key)
}

func (c *Cache[T]) Clear() {
	c.impl.Clear()
}

// Wait blocks until buffered writes are applied.
func (c *Cache[T]) Wait() {
	c.impl.Wait()
}

func (c *Cache[T]) Close() {
	c.impl.Close()
}

// Stats returns cache metrics for the admin page.
func (c *Cache[T]) Stats() map[string]any {
	m := c.impl.Metrics

	hitRate := 0.0
	total := m.Hits() + m.Misses()
	if total > 0 {
		hitRate = float64(m.Hits()) / float64(total) * 100
	}

	return map[string]any{
		"cache_type":     c.name,
		"hits":           m.Hits(),
		"misses":         m.Misses(),
		"hit_rate":       hitRate,
		"sets":           m.KeysAdded(),
		"evicted":        m.KeysEvicted(),
		"sets_rejected":  m.SetsRejected(),
		"memory_used_kb": float64(m.CostAdded()-m.CostEvicted()) / 1024,
		"current_items":  int64(m.KeysAdded() - m.KeysEvicted()),
	}
}
