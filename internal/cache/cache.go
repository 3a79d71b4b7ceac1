// Package cache keeps recently computed analyses in memory.
package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Cache defines the interface for caching values of type V
type Cache[V any] interface {
	Get(key string) (V, bool)
	Set(key string, value V, ttl time.Duration)
	Delete(key string)
	Clear()
	Len() int
}

// Key builds the cache key for a normalized word
func Key(word string) string {
	return "turkmenfst:v1:" + word
}

// Memory is an in-memory TTL cache backed by go-cache
type Memory[V any] struct {
	cache *gocache.Cache
}

// NewMemory creates a cache whose entries expire after defaultTTL and
// are swept every cleanupInterval.
func NewMemory[V any](defaultTTL, cleanupInterval time.Duration) *Memory[V] {
	return &Memory[V]{
		cache: gocache.New(defaultTTL, cleanupInterval),
	}
}

// Get retrieves a value from the cache
func (c *Memory[V]) Get(key string) (V, bool) {
	if val, found := c.cache.Get(key); found {
		if v, ok := val.(V); ok {
			return v, true
		}
	}
	var zero V
	return zero, false
}

// Set stores a value; a zero ttl uses the default expiration
func (c *Memory[V]) Set(key string, value V, ttl time.Duration) {
	if ttl == 0 {
		ttl = gocache.DefaultExpiration
	}
	c.cache.Set(key, value, ttl)
}

// Delete removes a value from the cache
func (c *Memory[V]) Delete(key string) {
	c.cache.Delete(key)
}

// Clear removes all values from the cache
func (c *Memory[V]) Clear() {
	c.cache.Flush()
}

// Len returns the number of cached items, expired ones included until
// the next sweep.
func (c *Memory[V]) Len() int {
	return c.cache.ItemCount()
}
