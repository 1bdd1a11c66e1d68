package multicast

import "sync"

// Guarded wraps a Registry with reader/writer locking.
// Any number of readers may proceed together; mutations are exclusive and
// never observable half-applied. All methods are safe for concurrent use.
type Guarded[K comparable, V any] struct {
	mu  sync.RWMutex
	reg *Registry[K, V]
}

// NewGuarded creates an empty guarded registry.
func NewGuarded[K comparable, V any]() *Guarded[K, V] {
	return &Guarded[K, V]{reg: NewRegistry[K, V]()}
}

// Upsert performs lookup and placement inside one exclusive section, so the
// computed positions always match the state being mutated.
func (g *Guarded[K, V]) Upsert(key K, priority Priority, value V) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.reg.Upsert(key, priority, value)
}

// Update applies fn to the entry stored under key and re-places it under the
// returned priority. Returns false if the key is not present.
func (g *Guarded[K, V]) Update(key K, fn func(Entry[K, V]) Entry[K, V]) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.reg.Get(key)
	if !ok {
		return false
	}
	e = fn(e)
	g.reg.Upsert(key, e.Priority, e.Value)
	return true
}

// Remove deletes the entry stored under key.
// Returns false if the key was not present.
func (g *Guarded[K, V]) Remove(key K) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.reg.Remove(key)
}

// Clear drops all entries.
func (g *Guarded[K, V]) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.reg.Clear()
}

// Get returns the entry stored under key.
func (g *Guarded[K, V]) Get(key K) (Entry[K, V], bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.reg.Get(key)
}

// Snapshot returns a consistent copy of the entries in dispatch order.
// The read hold is released before the copy is returned.
func (g *Guarded[K, V]) Snapshot() []Entry[K, V] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.reg.Snapshot()
}

// Len returns the number of entries.
func (g *Guarded[K, V]) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.reg.Len()
}

// IsEmpty reports whether no entries are stored.
func (g *Guarded[K, V]) IsEmpty() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.reg.IsEmpty()
}
