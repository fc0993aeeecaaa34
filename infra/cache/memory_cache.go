package cache

import (
	"context"
	"sync"
	"time"
)

// MemoryCache is an in-memory key/value cache with per-entry TTL.
type MemoryCache[V any] struct {
	cache map[string]*cacheEntry[V]
	mu    sync.RWMutex
	stop  chan struct{}
	once  sync.Once
}

// NewMemoryCache creates a new in-memory cache. A positive interval starts a
// goroutine removing expired entries until Close is called.
func NewMemoryCache[V any](cleanupInterval time.Duration) *MemoryCache[V] {
	cache := &MemoryCache[V]{
		cache: make(map[string]*cacheEntry[V]),
		stop:  make(chan struct{}),
	}

	if cleanupInterval > 0 {
		go cache.cleanup(cleanupInterval)
	}

	return cache
}

// Get retrieves a value from cache
func (c *MemoryCache[V]) Get(_ context.Context, key string) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var zero V
	entry, exists := c.cache[key]
	if !exists {
		return zero, false
	}

	if time.Now().After(entry.expiresAt) {
		return zero, false
	}

	return entry.value, true
}

// Set stores a value in cache with TTL
func (c *MemoryCache[V]) Set(_ context.Context, key string, value V, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache[key] = &cacheEntry[V]{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}
}

// Delete removes a value from cache
func (c *MemoryCache[V]) Delete(_ context.Context, key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.cache, key)
}

// Len returns the number of stored entries, expired ones included until the
// next cleanup.
func (c *MemoryCache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.cache)
}

// Close stops the cleanup goroutine.
func (c *MemoryCache[V]) Close() {
	c.once.Do(func() { close(c.stop) })
}

// cleanup removes expired entries from cache
func (c *MemoryCache[V]) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			c.purge(time.Now())
		}
	}
}

func (c *MemoryCache[V]) purge(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, entry := range c.cache {
		if now.After(entry.expiresAt) {
			delete(c.cache, key)
		}
	}
}

type cacheEntry[V any] struct {
	value     V
	expiresAt time.Time
}
