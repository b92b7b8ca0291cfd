package tree

import "cmp"

// Node is a single element of the hierarchy. It owns its key, a mutable
// value, an ordered slice of child nodes, and a cached position within its
// parent's children slice that makes detaching O(1).
//
// Nodes are created by the owning Tree (New, Insert) and must not be
// constructed directly.
type Node[K cmp.Ordered, T any] struct {
	key      K
	value    T
	children []*Node[K, T]
	idx      int         // position in parent.children; 0 for the root
	parent   *Node[K, T] // nil for the root
}

func newNode[K cmp.Ordered, T any](key K, value T) *Node[K, T] {
	return &Node[K, T]{key: key, value: value}
}

// Key returns the node's immutable key.
func (n *Node[K, T]) Key() K {
	return n.key
}

// Value returns the node's current value.
func (n *Node[K, T]) Value() T {
	return n.value
}

// SetValue replaces the node's value.
func (n *Node[K, T]) SetValue(value T) {
	n.value = value
}

// Children returns the node's children in their stored order.
// Zero-copy: the returned slice is the node's own backing storage and must
// not be modified by the caller.
func (n *Node[K, T]) Children() []*Node[K, T] {
	return n.children
}

// Parent returns the node's parent, or nil for the root.
func (n *Node[K, T]) Parent() *Node[K, T] {
	return n.parent
}

// Index returns the node's cached position within its parent's children.
// For the root the value is meaningless.
func (n *Node[K, T]) Index() int {
	return n.idx
}

// IsLeaf reports whether the node has no children.
func (n *Node[K, T]) IsLeaf() bool {
	return len(n.children) == 0
}

// IsRoot reports whether the node has no parent.
func (n *Node[K, T]) IsRoot() bool {
	return n.parent == nil
}

// abandon removes child from n's children slice using swap-with-last, so
// removal is O(1) at the cost of not preserving the relative order of the
// remaining children. The child that was swapped into the vacated slot (if
// any) has its cached position fixed up.
//
// The caller must guarantee child is currently at n.children[child.idx].
func (n *Node[K, T]) abandon(child *Node[K, T]) {
	i := child.idx
	child.parent = nil

	last := len(n.children) - 1
	n.children[i] = n.children[last]
	n.children[last] = nil
	n.children = n.children[:last]

	if i < len(n.children) {
		n.children[i].idx = i
	}
}

// attach appends n as the last child of parent, detaching it from its
// current parent first. Index maintenance is the Tree's responsibility.
func (n *Node[K, T]) attach(parent *Node[K, T]) {
	n.detach()
	n.idx = len(parent.children)
	n.parent = parent
	parent.children = append(parent.children, n)
}

// detach structurally orphans n: it is removed from its parent's children
// and its parent pointer is cleared. The subtree below n is left intact.
func (n *Node[K, T]) detach() {
	if n.parent != nil {
		n.parent.abandon(n)
	}
}

// walk visits n and every descendant in pre-order.
func (n *Node[K, T]) walk(visit func(*Node[K, T])) {
	visit(n)
	for _, child := range n.children {
		child.walk(visit)
	}
}

// hasAncestor reports whether candidate is n itself or one of n's ancestors.
func (n *Node[K, T]) hasAncestor(candidate *Node[K, T]) bool {
	for cur := n; cur != nil; cur = cur.parent {
		if cur == candidate {
			return true
		}
	}
	return false
}
