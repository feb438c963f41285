// Package lru implements a bounded least-recently-used [Cache]
// as a hashtable over an arena-backed doubly-linked list.
package lru

import (
	"iter"

	arena "github.com/djdv/go-arena"
	"github.com/djdv/go-arena/internal/list"
)

// Cache maps keys to values with O(1) amortized Put/Get and automatic
// eviction of the least-recently-used entry when capacity is exceeded.
// The list orders entries strictly by recency: front is the most
// recently used, rear the least. The index and the list always hold
// the same key set, each key mapping to its current list node.
// Concurrent access must be guarded by the caller.
// Constructed by [New].
type Cache[Key comparable, Value any] struct {
	index    map[Key]arena.Index
	list     list.List[Key, Value]
	capacity int
}

// MinimumCapacity defines the lowest value supported by [New].
// A cache that can hold no entries is rejected as a configuration
// error rather than treated as a degenerate mode.
const MinimumCapacity = 1

// New creates a [Cache] bounded to capacity entries.
// No allocation is performed until first use.
func New[Key comparable, Value any](capacity int) (*Cache[Key, Value], error) {
	if capacity < MinimumCapacity {
		return nil, minCapacityError(capacity)
	}
	return &Cache[Key, Value]{capacity: capacity}, nil
}

// Put inserts or updates key with value and promotes it to
// most-recently-used. If key is new and the cache is full,
// the least-recently-used entry is evicted first.
func (c *Cache[Key, Value]) Put(key Key, value Value) {
	if c.index == nil {
		c.index = make(map[Key]arena.Index, c.capacity)
	}
	if current, hit := c.index[key]; hit {
		// Replace in place: detach, discard the old value,
		// re-insert at the front. Size is unchanged.
		c.list.Remove(current)
	} else if c.list.Len() == c.capacity {
		evictedKey, _, _ := c.list.PopRear()
		delete(c.index, evictedKey)
	}
	c.index[key] = c.list.PushFront(key, value)
}

// Get returns the value stored for key and promotes it to
// most-recently-used; a miss returns (nil, false). The pointer
// references the entry in place, so callers may mutate the cached
// value through it; it is valid until the entry moves or is evicted.
func (c *Cache[Key, Value]) Get(key Key) (*Value, bool) {
	current, hit := c.index[key]
	if !hit {
		return nil, false
	}
	storedKey, value, _ := c.list.Remove(current)
	front := c.list.PushFront(storedKey, value)
	c.index[key] = front
	return c.list.At(front), true
}

// Load returns the cached value for key (if present) without refetching.
// Otherwise it calls fetch, inserts and returns the value on success.
// If fetch returns an error, the value is not cached.
func (c *Cache[Key, Value]) Load(key Key, fetch func() (Value, error)) (Value, error) {
	if value, hit := c.Get(key); hit {
		return *value, nil
	}
	value, err := fetch()
	if err != nil {
		return value, err
	}
	c.Put(key, value)
	return value, nil
}

// Len returns the number of cached entries.
func (c *Cache[Key, Value]) Len() int { return c.list.Len() }

// Iter ranges over the cache's (key, value) pairs in recency order,
// most recent first. Iteration does not promote entries.
func (c *Cache[Key, Value]) Iter() iter.Seq2[Key, Value] {
	return c.list.Iter()
}
