package cache

import (
	"fmt"
	"hash/fnv"
	"testing"

	detectrace "github.com/ipfs/go-detect-race"
	"github.com/stretchr/testify/assert"
)

type cacheableT struct {
	Name string
}

func (ct *cacheableT) Hash() uint64 {
	s := fnv.New64()
	_, _ = s.Write([]byte(ct.Name))
	return s.Sum64()
}

func TestCache(t *testing.T) {
	var c *Cache

	var (
		key   = cacheableT{"foo"}
		value = "bar"
	)

	t.Run("New", func(t *testing.T) {
		c = NewCache()
		assert.NotNil(t, c)
	})

	t.Run("ReadNonExistentValue", func(t *testing.T) {
		_, ok := c.Read(&key)
		assert.False(t, ok)
	})

	t.Run("Write", func(t *testing.T) {
		c.Write(&key, value)
		c.Write(&key, value)
	})

	t.Run("ReadExistentValue", func(t *testing.T) {
		v, ok := c.Read(&key)
		assert.True(t, ok)
		assert.Equal(t, value, v)
	})

	t.Run("Clear", func(t *testing.T) {
		c.Clear()
		_, ok := c.Read(&key)
		assert.False(t, ok)
	})
}

func TestCacheEviction(t *testing.T) {
	entries := maxCachedEntries * 2
	if detectrace.WithRace() {
		entries = maxCachedEntries + 16
	}

	c := NewCache()
	for i := 0; i < entries; i++ {
		key := cacheableT{fmt.Sprintf("entry-%d", i)}
		c.Write(&key, "x")
	}

	// The map is dropped whenever the limit is hit, so it can never hold
	// more than maxCachedEntries items.
	assert.LessOrEqual(t, len(c.entries), maxCachedEntries)
}

func BenchmarkNewCache(b *testing.B) {
	for i := 0; i < b.N; i++ {
		NewCache()
	}
}

func BenchmarkReadWrite(b *testing.B) {
	c := NewCache()
	key := cacheableT{"foo"}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Write(&key, "bar")
		_, _ = c.Read(&key)
	}
}
