package memory

import (
	"context"
	"errors"
	"sync"
	"time"
)

var ErrNotFound = errors.New("cache: not found")

// sweepEvery bounds how often a write pays for a full expiry sweep.
const sweepEvery = time.Minute

type entry struct {
	data     []byte
	expireAt time.Time
}

// Cache is the in-process TTL map backing read-mostly roster lookups.
// Expired entries are dropped lazily on read; writes sweep the whole map at
// most once per sweepEvery, so a roster that stops being read does not pin
// stale bytes forever.
type Cache struct {
	mu        sync.RWMutex
	entries   map[string]entry
	nextSweep time.Time
}

func NewCache() *Cache {
	return &Cache{
		entries:   make(map[string]entry),
		nextSweep: time.Now().Add(sweepEvery),
	}
}

func (c *Cache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}
	if time.Now().After(e.expireAt) {
		c.mu.Lock()
		// Re-check under the write lock; a Set may have refreshed the key.
		if cur, still := c.entries[key]; still && time.Now().After(cur.expireAt) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return nil, ErrNotFound
	}
	return e.data, nil
}

func (c *Cache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	now := time.Now()
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry{data: value, expireAt: now.Add(ttl)}
	if now.After(c.nextSweep) {
		for k, e := range c.entries {
			if now.After(e.expireAt) {
				delete(c.entries, k)
			}
		}
		c.nextSweep = now.Add(sweepEvery)
	}
	return nil
}

func (c *Cache) Invalidate(_ context.Context, key string) error {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
	return nil
}
