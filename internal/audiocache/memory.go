package audiocache

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	data      []byte
	createdAt time.Time
}

type MemoryCache struct {
	mu      sync.Mutex
	entries map[string]entry
	ttl     time.Duration
	now     func() time.Time
}

type Option func(*MemoryCache)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(c *MemoryCache) { c.now = now }
}

func NewMemoryCache(ttl time.Duration, opts ...Option) *MemoryCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	c := &MemoryCache{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *MemoryCache) expired(e entry, now time.Time) bool {
	return now.Sub(e.createdAt) > c.ttl
}

// Put purges expired entries and inserts under the same lock.
func (c *MemoryCache) Put(_ context.Context, id string, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	c.purgeLocked(now)
	c.entries[id] = entry{data: data, createdAt: now}
	return nil
}

func (c *MemoryCache) Get(_ context.Context, id string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[id]
	if !ok {
		return nil, ErrNotFound
	}
	if c.expired(e, c.now()) {
		delete(c.entries, id)
		return nil, ErrNotFound
	}
	return e.data, nil
}

func (c *MemoryCache) PurgeExpired(_ context.Context) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.purgeLocked(c.now()), nil
}

func (c *MemoryCache) purgeLocked(now time.Time) int {
	n := 0
	for id, e := range c.entries {
		if c.expired(e, now) {
			delete(c.entries, id)
			n++
		}
	}
	return n
}

func (c *MemoryCache) Reset(_ context.Context) error {
	c.mu.Lock()
	c.entries = make(map[string]entry)
	c.mu.Unlock()
	return nil
}

func (c *MemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
