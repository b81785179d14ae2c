package newsfeed

import (
	"context"
	"sync"
	"time"
)

// Cache serves items from a Source for ttl. Errors and empty results are not
// cached, so the next call retries the source.
type Cache struct {
	mu      sync.RWMutex
	items   []Item
	fetched time.Time
	ttl     time.Duration
	src     Source
	now     func() time.Time
}

// NewCache wraps src. A zero ttl disables caching.
func NewCache(src Source, ttl time.Duration) *Cache {
	return &Cache{src: src, ttl: ttl, now: time.Now}
}

func (c *Cache) valid() bool {
	return c.items != nil && c.now().Sub(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read goes to the source.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.items = nil
	c.mu.Unlock()
}

// Items returns cached items or fetches fresh ones. The fetch runs outside
// the lock on the caller's context, so concurrent misses each go to the
// source and one caller's cancellation never fails another.
func (c *Cache) Items(ctx context.Context) ([]Item, error) {
	c.mu.RLock()
	if c.valid() {
		items := c.items
		c.mu.RUnlock()
		return items, nil
	}
	c.mu.RUnlock()

	items, err := c.src.Items(ctx)
	if err != nil {
		return nil, err
	}
	if len(items) > 0 && c.ttl > 0 {
		c.mu.Lock()
		c.items = items
		c.fetched = c.now()
		c.mu.Unlock()
	}
	return items, nil
}
