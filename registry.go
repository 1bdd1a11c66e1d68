package multicast

import "slices"

// Entry is a single keyed value stored under a priority.
type Entry[K comparable, V any] struct {
	Key      K
	Priority Priority
	Value    V
}

// Registry keeps entries sorted by priority with at most one entry per key.
// It is not safe for concurrent use; see Guarded.
//
// Entries are stored in ascending priority order. Within a run of equal
// priorities the most recently upserted entry comes first, so walking storage
// backwards yields dispatch order: highest priority first, equal priorities in
// the order they were (re-)subscribed.
type Registry[K comparable, V any] struct {
	entries []Entry[K, V]
}

// NewRegistry creates an empty registry.
func NewRegistry[K comparable, V any]() *Registry[K, V] {
	return &Registry[K, V]{}
}

// Upsert inserts the key or moves it to the sorted position of the new priority.
// An upserted key always becomes the newest entry among its priority peers.
func (r *Registry[K, V]) Upsert(key K, priority Priority, value V) {
	entry := Entry[K, V]{Key: key, Priority: priority, Value: value}
	existing := r.indexOf(key)
	insert := r.insertionPoint(priority)

	switch {
	case existing < 0:
		r.entries = slices.Insert(r.entries, insert, entry)
	case existing == insert:
		r.entries[existing] = entry
	default:
		r.entries = slices.Insert(r.entries, insert, entry)
		// The old slot moved one position right if it sat at or after the insertion point.
		if existing >= insert {
			existing++
		}
		r.entries = slices.Delete(r.entries, existing, existing+1)
	}
}

// Remove deletes the entry with the given key.
// Returns false if the key was not present.
func (r *Registry[K, V]) Remove(key K) bool {
	i := r.indexOf(key)
	if i < 0 {
		return false
	}
	r.entries = slices.Delete(r.entries, i, i+1)
	return true
}

// Get returns the entry stored under key.
func (r *Registry[K, V]) Get(key K) (Entry[K, V], bool) {
	i := r.indexOf(key)
	if i < 0 {
		return Entry[K, V]{}, false
	}
	return r.entries[i], true
}

// Snapshot returns a copy of all entries in dispatch order (descending priority).
func (r *Registry[K, V]) Snapshot() []Entry[K, V] {
	if len(r.entries) == 0 {
		return nil
	}
	out := slices.Clone(r.entries)
	slices.Reverse(out)
	return out
}

// Len returns the number of entries.
func (r *Registry[K, V]) Len() int {
	return len(r.entries)
}

// IsEmpty reports whether the registry holds no entries.
func (r *Registry[K, V]) IsEmpty() bool {
	return len(r.entries) == 0
}

// Clear drops all entries.
func (r *Registry[K, V]) Clear() {
	clear(r.entries)
	r.entries = r.entries[:0]
}

func (r *Registry[K, V]) indexOf(key K) int {
	return slices.IndexFunc(r.entries, func(e Entry[K, V]) bool {
		return e.Key == key
	})
}

// insertionPoint returns the index of the first entry whose priority is not
// lower than p, or len(entries) if there is none.
func (r *Registry[K, V]) insertionPoint(p Priority) int {
	i, _ := slices.BinarySearchFunc(r.entries, p, func(e Entry[K, V], target Priority) int {
		return int(e.Priority) - int(target)
	})
	return i
}
