package repository

import (
	"errors"
	"sync"
)

// ErrNotFound is returned when no record matches the requested identity.
var ErrNotFound = errors.New("record not found")

// Collection owns a slice of records and a version counter. Every mutation replaces
// the slice and bumps the version; reads hand out copies so callers never alias it.
type Collection[T any] struct {
	mu      sync.RWMutex
	items   []T
	version uint64
	key     func(T) string
	clone   func(T) T
}

// NewCollection seeds a collection. clone may be nil for value types without slices.
func NewCollection[T any](items []T, key func(T) string, clone func(T) T) *Collection[T] {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	c := &Collection[T]{key: key, clone: clone}
	c.items = c.copyAll(items)
	return c
}

// List returns a copy of every record in insertion order.
func (c *Collection[T]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.copyAll(c.items)
}

// Len returns the number of records.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Version returns the mutation counter.
func (c *Collection[T]) Version() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.version
}

// Get returns the record with the given identity.
func (c *Collection[T]) Get(id string) (T, error) {
	return c.Find(func(v T) bool { return c.key(v) == id })
}

// Find returns the first record satisfying pred.
func (c *Collection[T]) Find(pred func(T) bool) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		if pred(item) {
			return c.clone(item), nil
		}
	}
	var zero T
	return zero, ErrNotFound
}

// Filter returns copies of every record satisfying pred.
func (c *Collection[T]) Filter(pred func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, 0, len(c.items))
	for _, item := range c.items {
		if pred(item) {
			out = append(out, c.clone(item))
		}
	}
	return out
}

// Insert appends a record.
func (c *Collection[T]) Insert(item T) T {
	c.mu.Lock()
	defer c.mu.Unlock()
	next := make([]T, 0, len(c.items)+1)
	next = append(next, c.items...)
	next = append(next, c.clone(item))
	c.commit(next)
	return c.clone(item)
}

// Mutate runs fn with exclusive access to a working copy of the records. When fn
// returns commit=true the copy replaces the current state.
func (c *Collection[T]) Mutate(fn func(items []T) ([]T, bool)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	next, commit := fn(c.copyAll(c.items))
	if commit {
		c.commit(next)
	}
}

// Update applies patch to every record satisfying pred and returns the updated copies.
func (c *Collection[T]) Update(pred func(T) bool, patch func(*T)) []T {
	var updated []T
	c.Mutate(func(items []T) ([]T, bool) {
		for i := range items {
			if pred(items[i]) {
				patch(&items[i])
				updated = append(updated, c.clone(items[i]))
			}
		}
		return items, len(updated) > 0
	})
	return updated
}

// UpdateByID patches the record with the given identity.
func (c *Collection[T]) UpdateByID(id string, patch func(*T)) (T, error) {
	updated := c.Update(func(v T) bool { return c.key(v) == id }, patch)
	if len(updated) == 0 {
		var zero T
		return zero, ErrNotFound
	}
	return updated[0], nil
}

// Remove deletes the record with the given identity.
func (c *Collection[T]) Remove(id string) error {
	removed := false
	c.Mutate(func(items []T) ([]T, bool) {
		kept := items[:0]
		for _, item := range items {
			if c.key(item) == id {
				removed = true
				continue
			}
			kept = append(kept, item)
		}
		return kept, removed
	})
	if !removed {
		return ErrNotFound
	}
	return nil
}

func (c *Collection[T]) commit(next []T) {
	c.items = next
	c.version++
}

func (c *Collection[T]) copyAll(items []T) []T {
	out := make([]T, len(items))
	for i, item := range items {
		out[i] = c.clone(item)
	}
	return out
}
