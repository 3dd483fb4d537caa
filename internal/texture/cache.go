package texture

import (
	"sync"

	"soft-raster/internal/imageio"
	"soft-raster/internal/raster"
)

// Resolver resolves a texture name to a decoded pixel buffer.
type Resolver interface {
	Resolve(name string) *raster.Buffer
}

// Cache is a concurrency-safe texture cache.
type Cache struct {
	mu    sync.RWMutex
	items map[string]*cacheEntry
	index *Index
}

type cacheEntry struct {
	buf    *raster.Buffer
	loaded bool // true if we've attempted to load (buf may still be nil)
}

// NewCache creates a new texture cache backed by the given index.
func NewCache(index *Index) *Cache {
	return &Cache{
		items: make(map[string]*cacheEntry),
		index: index,
	}
}

// Resolve loads and caches a texture by name. Returns nil if not found.
func (c *Cache) Resolve(name string) *raster.Buffer {
	path, ok := c.index.ResolvePath(name)
	if !ok {
		return nil
	}

	// Fast path: read lock
	c.mu.RLock()
	if entry, exists := c.items[path]; exists {
		c.mu.RUnlock()
		return entry.buf
	}
	c.mu.RUnlock()

	// Slow path: load from disk
	buf, _ := imageio.Load(path)

	// Write lock with double-check
	c.mu.Lock()
	if entry, exists := c.items[path]; exists {
		c.mu.Unlock()
		return entry.buf
	}
	c.items[path] = &cacheEntry{buf: buf, loaded: true}
	c.mu.Unlock()

	return buf
}
