package texture

import (
	"fmt"
	"sync"

	"softraster/internal/logging"
)

// Resolver resolves a texture name to a decoded image grid.
type Resolver interface {
	Resolve(texName string) (*Image, error)
}

// Cache is a concurrency-safe texture cache. Every path is decoded at most
// once; failures are remembered so they are reported a single time.
type Cache struct {
	mu       sync.RWMutex
	items    map[string]*cacheEntry
	index    *Index
	channels int
}

type cacheEntry struct {
	img *Image
	err error
}

// NewCache creates a cache backed by index. channels is passed to Load.
func NewCache(index *Index, channels int) *Cache {
	return &Cache{
		items:    make(map[string]*cacheEntry),
		index:    index,
		channels: channels,
	}
}

// Resolve loads and caches a texture by name.
func (c *Cache) Resolve(texName string) (*Image, error) {
	path, ok := c.index.ResolvePath(texName)
	if !ok {
		return nil, fmt.Errorf("texture: %q not found in %s", texName, c.index.root)
	}

	// Fast path: read lock
	c.mu.RLock()
	if entry, exists := c.items[path]; exists {
		c.mu.RUnlock()
		return entry.img, entry.err
	}
	c.mu.RUnlock()

	// Slow path: load from disk
	img, err := Load(path, c.channels)

	// Write lock with double-check
	c.mu.Lock()
	if entry, exists := c.items[path]; exists {
		c.mu.Unlock()
		return entry.img, entry.err
	}
	c.items[path] = &cacheEntry{img: img, err: err}
	c.mu.Unlock()

	if err != nil {
		logging.Logger().Warn("texture unavailable", "name", texName, "path", path, "err", err)
	} else {
		logging.Logger().Debug("texture loaded", "path", path, "w", img.Width, "h", img.Height, "channels", img.Channels)
	}
	return img, err
}

// Len returns the number of cached paths, including failed ones.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
