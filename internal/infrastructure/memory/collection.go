package memory

import (
	"sync"
)

// Collection is an insertion-ordered set of documents keyed by id.
// It is safe for concurrent use; callers get copies, never the stored values.
type Collection[T any] struct {
	mu    sync.RWMutex
	order []string
	docs  map[string]T
}

func NewCollection[T any]() *Collection[T] {
	return &Collection[T]{docs: make(map[string]T)}
}

// Get returns the document stored under id.
func (c *Collection[T]) Get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	doc, ok := c.docs[id]
	return doc, ok
}

// All returns every document in insertion order.
func (c *Collection[T]) All() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.docs[id])
	}
	return out
}

// Filter returns the documents matching keep, in insertion order.
func (c *Collection[T]) Filter(keep func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := []T{}
	for _, id := range c.order {
		if doc := c.docs[id]; keep(doc) {
			out = append(out, doc)
		}
	}
	return out
}

// Put inserts or replaces the document under id.
// Replacing keeps the original insertion position.
func (c *Collection[T]) Put(id string, doc T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.docs[id]; !exists {
		c.order = append(c.order, id)
	}
	c.docs[id] = doc
}

// Replace overwrites an existing document and reports whether it existed.
func (c *Collection[T]) Replace(id string, doc T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.docs[id]; !exists {
		return false
	}
	c.docs[id] = doc
	return true
}

// Delete removes the document and returns the number of removed documents (0 or 1).
func (c *Collection[T]) Delete(id string) int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.docs[id]; !exists {
		return 0
	}
	delete(c.docs, id)
	for i, v := range c.order {
		if v == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return 1
}

// Len returns the number of stored documents.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.docs)
}
