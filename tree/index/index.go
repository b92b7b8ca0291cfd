package index

import "cmp"

// Lookup is the read-only interface for primary-index queries. Use this when
// a consumer only needs to resolve keys without modifying the index.
type Lookup[K cmp.Ordered, V any] interface {
	// Get returns the value registered for key.
	Get(key K) (V, bool)

	// Len returns the number of registered entries.
	Len() int

	// Stats returns index statistics (entry count, impl type).
	Stats() Stats
}

// Stats reports index metrics.
type Stats struct {
	Entries int    // Number of entries (keys for Primary, tags for Tags)
	Impl    string // Implementation name
}
