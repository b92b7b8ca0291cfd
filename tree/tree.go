package tree

import (
	"cmp"

	"github.com/joshuapare/treekit/tree/index"
)

// Tree is a keyed hierarchy with two lookup tables: a primary index mapping
// every reachable key to its node, and a secondary index grouping keys under
// free-form tags. The root is fixed at construction and never replaced.
type Tree[K cmp.Ordered, T any] struct {
	root    *Node[K, T]
	primary *index.Primary[K, *Node[K, T]]
	tags    *index.Tags[K]
}

// New constructs a singleton tree: one root node, a primary index containing
// exactly that key, and an empty secondary index.
func New[K cmp.Ordered, T any](rootKey K, rootValue T) *Tree[K, T] {
	root := newNode(rootKey, rootValue)
	primary := index.NewPrimary[K, *Node[K, T]](0)
	primary.Put(rootKey, root)

	return &Tree[K, T]{
		root:    root,
		primary: primary,
		tags:    index.NewTags[K](),
	}
}

// Root returns the tree's root node.
func (t *Tree[K, T]) Root() *Node[K, T] {
	return t.root
}

// Len returns the number of nodes reachable from the root.
func (t *Tree[K, T]) Len() int {
	return t.primary.Len()
}

// Find returns the node for key in O(1), or ok=false if key is not indexed.
func (t *Tree[K, T]) Find(key K) (*Node[K, T], bool) {
	return t.primary.Get(key)
}

// Insert creates a new leaf node and appends it as the last child of the
// node identified by parentKey, registering it in the primary index.
//
// Returns ErrParentNotFound if parentKey is not indexed, and ErrDuplicateKey
// if key already identifies a node in the tree.
func (t *Tree[K, T]) Insert(parentKey, key K, value T) error {
	parent, ok := t.primary.Get(parentKey)
	if !ok {
		return ErrParentNotFound
	}
	if _, exists := t.primary.Get(key); exists {
		return ErrDuplicateKey
	}

	node := newNode(key, value)
	node.attach(parent)
	t.primary.Put(key, node)
	return nil
}

// Remove detaches the node identified by key from its parent and purges it
// and every descendant from the primary index. The detached subtree keeps
// its internal structure but is no longer reachable through the tree.
//
// Returns ErrKeyNotFound if key is not indexed, and ErrCannotRemoveRoot for
// the root key: a tree without an indexed root has no usable entry point, so
// root removal is rejected rather than leaving the tree half-dead.
func (t *Tree[K, T]) Remove(key K) error {
	node, ok := t.primary.Get(key)
	if !ok {
		return ErrKeyNotFound
	}
	if node == t.root {
		return ErrCannotRemoveRoot
	}

	node.detach()
	node.walk(func(n *Node[K, T]) {
		t.primary.Delete(n.key)
	})
	return nil
}

// Move re-homes the subtree rooted at key, appending it as the last child of
// the node identified by newParentKey. Every node of the moved subtree stays
// registered in the primary index throughout.
//
// Returns ErrKeyNotFound if key is not indexed, ErrParentNotFound if
// newParentKey is not indexed, ErrCannotMoveRoot for the root key, and
// ErrMoveIntoSubtree when the destination lies inside the moved subtree
// (including a node as its own parent).
func (t *Tree[K, T]) Move(key, newParentKey K) error {
	node, ok := t.primary.Get(key)
	if !ok {
		return ErrKeyNotFound
	}
	if node == t.root {
		return ErrCannotMoveRoot
	}
	parent, ok := t.primary.Get(newParentKey)
	if !ok {
		return ErrParentNotFound
	}
	if parent.hasAncestor(node) {
		return ErrMoveIntoSubtree
	}

	node.attach(parent)
	return nil
}

// AddToSecondaryIndex appends key to the ordered key list for tag, creating
// the list if absent. The key is not checked for existence and duplicates
// are not collapsed; the secondary index is a soft grouping facility that is
// never validated against the tree structure.
func (t *Tree[K, T]) AddToSecondaryIndex(tag string, key K) {
	t.tags.Add(tag, key)
}

// FindBySecondaryIndex returns the currently-existing nodes registered under
// tag, in registration order. Keys whose nodes have since been removed are
// silently dropped. ok=false means the tag was never registered; a tag whose
// keys are all stale yields an empty slice and ok=true.
func (t *Tree[K, T]) FindBySecondaryIndex(tag string) ([]*Node[K, T], bool) {
	keys, ok := t.tags.Get(tag)
	if !ok {
		return nil, false
	}

	nodes := make([]*Node[K, T], 0, len(keys))
	for _, key := range keys {
		if node, exists := t.primary.Get(key); exists {
			nodes = append(nodes, node)
		}
	}
	return nodes, true
}

// Keys returns every indexed key in sorted order.
func (t *Tree[K, T]) Keys() []K {
	return t.primary.Keys()
}

// Tags returns every registered tag in sorted order.
func (t *Tree[K, T]) Tags() []string {
	return t.tags.Tags()
}
