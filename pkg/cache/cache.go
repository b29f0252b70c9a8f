// Package cache provides a thread-safe LRU cache for compiled expressions.
//
// It is used by the [Program] facade when caching is enabled: an edit loop
// that toggles between a handful of recent formulas (or a hover readout
// re-entering the current one) skips re-tokenizing and re-parsing strings
// it has already compiled.
package cache

import (
	"container/list"
	"sync"

	"github.com/helicoid/zplot/pkg/types"
)

// DefaultCapacity is used when a non-positive capacity is requested.
const DefaultCapacity = 64

// entry is a cache entry stored in the doubly-linked list.
type entry struct {
	key  string
	expr *types.Expression
}

// Cache is a thread-safe LRU cache of compiled expressions keyed by their
// source string. Once the capacity is reached, the least recently accessed
// entry is evicted. Safe for concurrent use by multiple goroutines.
type Cache struct {
	mu       sync.Mutex
	capacity int
	ll       *list.List
	items    map[string]*list.Element
}

// New creates a new LRU cache with the given capacity.
func New(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Cache{
		capacity: capacity,
		ll:       list.New(),
		items:    make(map[string]*list.Element, capacity),
	}
}

// Get retrieves a compiled expression and promotes it to most recently
// used. Returns (nil, false) if the source is not cached.
func (c *Cache) Get(source string) (*types.Expression, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[source]
	if !ok {
		return nil, false
	}
	c.ll.MoveToFront(el)
	return el.Value.(*entry).expr, true
}

// Set inserts or replaces a compiled expression. If at capacity, the least
// recently used entry is evicted first.
func (c *Cache) Set(source string, expr *types.Expression) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[source]; ok {
		el.Value.(*entry).expr = expr
		c.ll.MoveToFront(el)
		return
	}

	if c.ll.Len() >= c.capacity {
		c.evictLocked()
	}

	c.items[source] = c.ll.PushFront(&entry{key: source, expr: expr})
}

// GetOrCompile retrieves the expression for source from the cache, or calls
// compile to create it, caches the result, and returns it. Compilation
// errors are not cached.
func (c *Cache) GetOrCompile(source string, compile func() (*types.Expression, error)) (*types.Expression, error) {
	if expr, ok := c.Get(source); ok {
		return expr, nil
	}
	expr, err := compile()
	if err != nil {
		return nil, err
	}
	c.Set(source, expr)
	return expr, nil
}

// Len returns the number of entries currently in the cache.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Capacity returns the maximum number of entries the cache can hold.
func (c *Cache) Capacity() int {
	return c.capacity
}

// Clear removes all entries from the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ll.Init()
	c.items = make(map[string]*list.Element, c.capacity)
}

// evictLocked removes the least recently used entry. Caller holds c.mu.
func (c *Cache) evictLocked() {
	el := c.ll.Back()
	if el == nil {
		return
	}
	c.ll.Remove(el)
	delete(c.items, el.Value.(*entry).key)
}
