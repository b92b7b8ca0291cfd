// Package tree implements an in-memory, mutable, multi-indexed tree.
//
// # Overview
//
// A Tree owns a strict hierarchy of Nodes. Every node is addressable in O(1)
// by a unique key through the tree's primary index, and nodes can additionally
// be grouped under free-form string tags through a secondary index that is
// maintained independently of the tree structure.
//
// Structural mutation (Insert, Remove, Move) keeps the tree shape, the cached
// child-position bookkeeping, and the primary index consistent at all times.
// The secondary index is intentionally soft: it may reference keys that have
// since been removed, and lookups through it silently drop dangling keys.
//
// # Quick Start
//
//	t := tree.New("root", "root_value")
//	_ = t.Insert("root", "child1", "child1_value")
//	_ = t.Insert("root", "child2", "child2_value")
//	_ = t.Insert("child1", "child1.1", "child1.1_value")
//
//	n, ok := t.Find("child1.1")
//	if ok {
//	    fmt.Println(n.Value()) // "child1.1_value"
//	}
//
//	t.AddToSecondaryIndex("important", "child1")
//	t.AddToSecondaryIndex("important", "child2")
//	tagged, _ := t.FindBySecondaryIndex("important")
//
// Traversal iterators and the shortest-path query live in the companion
// package github.com/joshuapare/treekit/tree/walker.
//
// # Keys and Values
//
// Keys must be a cmp.Ordered type (comparable with a total order); they are
// otherwise opaque to the tree. Values are arbitrary and opaque. A node's key
// is immutable after creation; its value can be swapped at any time with
// SetValue.
//
// # Thread Safety
//
// Trees are not thread-safe. A tree, its nodes, and any iterators over it
// assume a single logical owner; concurrent access requires external mutual
// exclusion. Mutating a tree while an iterator over it is alive leaves the
// iteration order undefined.
package tree
