package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) *Cache[[]byte] {
	t.Helper()
	c, err := New[[]byte]("Test Cache", 1<<20, time.Minute, func(v []byte) int64 {
		return int64(len(v))
	})
	require.NoError(t, err)
	t.Cleanup(c.Close)
	return c
}

func TestCache_SetGet(t *testing.T) {
	c := newTestCache(t)

	c.Set("payload", []byte(`{"collections":[]}`), 0)
	c.Wait()

	value, found := c.Get("payload")
	require.True(t, found)
	assert.Equal(t, `{"collections":[]}`, string(value))
	assert.Equal(t, "Test Cache", c.Name())
}

func TestCache_DeleteAndClear(t *testing.T) {
	c := newTestCache(t)

	c.Set("a", []byte("1"), 0)
	c.Set("b", []byte("2"), 0)
	c.Wait()

	c.Delete("a")
	_, found := c.Get("a")
	assert.False(t, found)

	c.Clear()
	_, found = c.Get("b")
	assert.False(t, found)
}

func TestCache_Stats(t *testing.T) {
	c := newTestCache(t)

	c.Set("key1", []byte("value"), 0)
	c.Wait()
	c.Get("key1")
	c.Get("missing")

	stats := c.Stats()

	for _, key := range []string{"cache_type", "hits", "misses", "hit_rate", "sets", "memory_used_kb", "current_items"} {
		assert.Contains(t, stats, key)
	}
	assert.Equal(t, "Test Cache", stats["cache_type"])
	hitRate := stats["hit_rate"].(float64)
	assert.GreaterOrEqual(t, hitRate, 0.0)
	assert.LessOrEqual(t, hitRate, 100.0)
}

func TestCache_StatsEmpty(t *testing.T) {
	c := newTestCache(t)

	stats := c.Stats()
	assert.Equal(t, 0.0, stats["hit_rate"])
	assert.Equal(t, uint64(0), stats["hits"])
}
