package index

import (
	"cmp"
	"slices"
)

// Tags is an append-only tag → ordered key list multimap.
//
// Add never deduplicates and never checks the key against anything: stale
// and repeated entries are part of the contract. Get returns the list in
// registration order.
type Tags[K cmp.Ordered] struct {
	entries map[string][]K
}

// NewTags creates an empty tag index.
func NewTags[K cmp.Ordered]() *Tags[K] {
	return &Tags[K]{entries: make(map[string][]K)}
}

// Add appends key to the list for tag, creating the list if absent.
func (t *Tags[K]) Add(tag string, key K) {
	t.entries[tag] = append(t.entries[tag], key)
}

// Get returns the keys registered under tag in registration order.
// ok=false means the tag was never registered.
// Zero-copy: the returned slice is the index's own backing storage and must
// not be modified by the caller.
func (t *Tags[K]) Get(tag string) ([]K, bool) {
	keys, ok := t.entries[tag]
	return keys, ok
}

// Tags returns every registered tag in sorted order.
func (t *Tags[K]) Tags() []string {
	tags := make([]string, 0, len(t.entries))
	for tag := range t.entries {
		tags = append(tags, tag)
	}
	slices.Sort(tags)
	return tags
}

// Len returns the number of registered tags.
func (t *Tags[K]) Len() int {
	return len(t.entries)
}

// Stats returns index statistics.
func (t *Tags[K]) Stats() Stats {
	return Stats{Entries: len(t.entries), Impl: "Tags"}
}
