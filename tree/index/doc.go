// Package index provides the in-memory lookup tables backing a tree.
//
// # Overview
//
// Two tables are implemented:
//
// Primary: a map-backed key → value index with O(1) Put/Get/Delete. The tree
// uses it to resolve any node by key without walking the hierarchy. The
// index owner is responsible for keeping it consistent with the structure it
// shadows; Delete is safe to call for keys that were never added.
//
// Tags: an append-only tag → ordered key list multimap. Entries are never
// deduplicated and never validated against the primary index, so a tag list
// may reference keys that no longer exist. Consumers resolve each key
// through the primary index and drop the dangling ones.
//
// # Usage Example
//
//	primary := index.NewPrimary[string, int](1024)
//	primary.Put("a", 1)
//	v, ok := primary.Get("a")
//
//	tags := index.NewTags[string]()
//	tags.Add("hot", "a")
//	keys, ok := tags.Get("hot")
//
// # Thread Safety
//
// Indexes are not thread-safe. Do not share across goroutines without
// external synchronization.
package index
