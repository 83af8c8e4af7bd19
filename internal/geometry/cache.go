package geometry

import "sync"

// Source builds primitive meshes. Build is the uncached Source.
type Source interface {
	Build(k Kind, p Params) Mesh
}

// SourceFunc adapts a function to Source.
type SourceFunc func(k Kind, p Params) Mesh

func (f SourceFunc) Build(k Kind, p Params) Mesh {
	return f(k, p)
}

// Cache is a concurrency-safe mesh cache. Cached meshes share their buffers
// between callers, so they must be treated as read-only.
type Cache struct {
	mu    sync.RWMutex
	items map[cacheKey]Mesh
}

type cacheKey struct {
	kind   Kind
	params Params
}

// NewCache creates an empty mesh cache.
func NewCache() *Cache {
	return &Cache{items: make(map[cacheKey]Mesh)}
}

// Build returns the cached mesh for k and p, building it on first use.
func (c *Cache) Build(k Kind, p Params) Mesh {
	key := cacheKey{kind: k, params: p.WithDefaults()}

	// Fast path: read lock
	c.mu.RLock()
	if m, ok := c.items[key]; ok {
		c.mu.RUnlock()
		return m
	}
	c.mu.RUnlock()

	// Slow path: build outside the lock
	m := Build(k, key.params)

	// Write lock with double-check
	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.items[key]; ok {
		return existing
	}
	c.items[key] = m
	return m
}

// Len returns the number of cached meshes.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
