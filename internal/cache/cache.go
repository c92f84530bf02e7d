package cache

import "sync"

// Cache is a concurrency-safe map. It never expires entries; callers
// evict explicitly. Every eviction advances a generation counter so that
// a value loaded before an eviction can be dropped instead of stored.
type Cache[K comparable, V any] struct {
	mu   sync.RWMutex
	data map[K]V
	gen  uint64
}

func New[K comparable, V any]() *Cache[K, V] { return &Cache[K, V]{data: make(map[K]V)} }

func (c *Cache[K, V]) Get(k K) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.data[k]
	return v, ok
}

func (c *Cache[K, V]) Set(k K, v V) {
	c.mu.Lock()
	c.data[k] = v
	c.mu.Unlock()
}

// Gen returns the current eviction generation.
func (c *Cache[K, V]) Gen() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.gen
}

// SetIfGen stores v only if no eviction happened since gen was read.
func (c *Cache[K, V]) SetIfGen(k K, v V, gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen != gen {
		return false
	}
	c.data[k] = v
	return true
}

func (c *Cache[K, V]) Delete(k K) {
	c.mu.Lock()
	delete(c.data, k)
	c.gen++
	c.mu.Unlock()
}

// Clear drops every entry.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	c.data = make(map[K]V)
	c.gen++
	c.mu.Unlock()
}

func (c *Cache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}
