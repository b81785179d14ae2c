package pagewire

import (
	"io/fs"
	"sync"
	"time"
)

type shellEntry struct {
	raw     []byte
	fetched time.Time
}

// ShellCache is an in-memory cache of page shells read from the site
// filesystem, with a per-entry TTL.
type ShellCache struct {
	mu      sync.RWMutex
	entries map[string]shellEntry
	ttl     time.Duration
	site    fs.FS
	now     func() time.Time
}

// NewShellCache creates a ShellCache over site. A non-positive ttl disables
// caching.
func NewShellCache(site fs.FS, ttl time.Duration) *ShellCache {
	return &ShellCache{
		entries: make(map[string]shellEntry),
		ttl:     ttl,
		site:    site,
		now:     time.Now,
	}
}

func (c *ShellCache) valid(e shellEntry, ok bool) bool {
	return ok && c.now().Sub(e.fetched) < c.ttl
}

// Invalidate clears the cache so the next read goes to the filesystem.
func (c *ShellCache) Invalidate() {
	c.mu.Lock()
	c.entries = make(map[string]shellEntry)
	c.mu.Unlock()
}

// Get returns the raw markup of the named shell. Callers must not modify the
// returned slice.
func (c *ShellCache) Get(name string) ([]byte, error) {
	if c.ttl <= 0 {
		return fs.ReadFile(c.site, name)
	}

	c.mu.RLock()
	e, ok := c.entries[name]
	c.mu.RUnlock()
	if c.valid(e, ok) {
		return e.raw, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[name]; c.valid(e, ok) {
		return e.raw, nil
	}
	raw, err := fs.ReadFile(c.site, name)
	if err != nil {
		return nil, err
	}
	c.entries[name] = shellEntry{raw: raw, fetched: c.now()}
	return raw, nil
}
