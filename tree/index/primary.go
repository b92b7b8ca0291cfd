package index

import (
	"cmp"
	"slices"
)

// defaultPrimaryCapacity pre-sizes the backing map when no hint is given.
const defaultPrimaryCapacity = 64

// Primary is a map-backed key → value index.
//
// Go's native maps already give the O(1) lookups the tree needs, so Primary
// is a thin wrapper whose job is to own the capacity hint, the safe-delete
// contract, and stable (sorted) key enumeration.
type Primary[K cmp.Ordered, V any] struct {
	entries map[K]V
}

// NewPrimary creates a Primary with an optional capacity hint.
func NewPrimary[K cmp.Ordered, V any](capacity int) *Primary[K, V] {
	if capacity <= 0 {
		capacity = defaultPrimaryCapacity
	}
	return &Primary[K, V]{entries: make(map[K]V, capacity)}
}

// Put registers value under key, replacing any previous entry.
func (p *Primary[K, V]) Put(key K, value V) {
	p.entries[key] = value
}

// Get returns the value registered for key.
func (p *Primary[K, V]) Get(key K) (V, bool) {
	value, ok := p.entries[key]
	return value, ok
}

// Delete removes the entry for key. Safe to call even if the entry doesn't
// exist.
func (p *Primary[K, V]) Delete(key K) {
	delete(p.entries, key)
}

// Len returns the number of registered entries.
func (p *Primary[K, V]) Len() int {
	return len(p.entries)
}

// Keys returns every registered key in sorted order.
func (p *Primary[K, V]) Keys() []K {
	keys := make([]K, 0, len(p.entries))
	for key := range p.entries {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

// Stats implements Lookup.
func (p *Primary[K, V]) Stats() Stats {
	return Stats{Entries: len(p.entries), Impl: "Primary"}
}
