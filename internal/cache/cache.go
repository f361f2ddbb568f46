// Copyright (c) 2012-present The upper.io/db authors. All rights reserved.
//
// Permission is hereby granted, free of charge, to any person obtaining
// a copy of this software and associated documentation files (the
// "Software"), to deal in the Software without restriction, including
// without limitation the rights to use, copy, modify, merge, publish,
// distribute, sublicense, and/or sell copies of the Software, and to
// permit persons to whom the Software is furnished to do so, subject to
// the following conditions:
//
// The above copyright notice and this permission notice shall be
// included in all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
// EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
// MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
// NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE
// LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION
// OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION
// WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

// Package cache provides a volatile cache for compiled SQL fragments.
package cache

import (
	"sync"
)

const maxCachedEntries = 1024 * 8

// Hashable types can be used as cache keys.
type Hashable interface {
	Hash() uint64
}

// Cache holds a map of volatile key -> value entries.
type Cache struct {
	mu      sync.RWMutex
	entries map[uint64]string
}

// NewCache initializes a new caching space.
func NewCache() *Cache {
	return &Cache{
		entries: make(map[uint64]string),
	}
}

// Read fetches the cached value of h, if any.
func (c *Cache) Read(h Hashable) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	value, ok := c.entries[h.Hash()]
	return value, ok
}

// Write stores the value of h. When the cache grows beyond its limit all
// entries are dropped, a full re-render is cheaper than bookkeeping an
// eviction order.
func (c *Cache) Write(h Hashable, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.entries) >= maxCachedEntries {
		c.entries = make(map[uint64]string)
	}
	c.entries[h.Hash()] = value
}

// Clear removes all entries from the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[uint64]string)
}
