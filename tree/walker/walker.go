package walker

import (
	"cmp"

	"github.com/joshuapare/treekit/tree"
)

// initialStackCapacity pre-sizes the traversal stack and queue. Typical tree
// depth is well under this, so most traversals never reallocate.
const initialStackCapacity = 64

// DepthFirstIterator walks a tree in pre-order using an explicit stack.
type DepthFirstIterator[K cmp.Ordered, T any] struct {
	stack []*tree.Node[K, T]
}

// NewDepthFirst creates a pre-order iterator over t starting at the root.
func NewDepthFirst[K cmp.Ordered, T any](t *tree.Tree[K, T]) *DepthFirstIterator[K, T] {
	stack := make([]*tree.Node[K, T], 0, initialStackCapacity)
	stack = append(stack, t.Root())
	return &DepthFirstIterator[K, T]{stack: stack}
}

// Next returns the next node in pre-order, or ok=false once the traversal
// is exhausted.
func (it *DepthFirstIterator[K, T]) Next() (*tree.Node[K, T], bool) {
	if len(it.stack) == 0 {
		return nil, false
	}

	node := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]

	// Push children in reverse so the leftmost is popped first.
	children := node.Children()
	for i := len(children) - 1; i >= 0; i-- {
		it.stack = append(it.stack, children[i])
	}
	return node, true
}

// BreadthFirstIterator walks a tree in level order using an explicit queue.
type BreadthFirstIterator[K cmp.Ordered, T any] struct {
	queue []*tree.Node[K, T]
	head  int
}

// NewBreadthFirst creates a level-order iterator over t starting at the root.
func NewBreadthFirst[K cmp.Ordered, T any](t *tree.Tree[K, T]) *BreadthFirstIterator[K, T] {
	queue := make([]*tree.Node[K, T], 0, initialStackCapacity)
	queue = append(queue, t.Root())
	return &BreadthFirstIterator[K, T]{queue: queue}
}

// Next returns the next node in level order, or ok=false once the traversal
// is exhausted.
func (it *BreadthFirstIterator[K, T]) Next() (*tree.Node[K, T], bool) {
	if it.head >= len(it.queue) {
		return nil, false
	}

	node := it.queue[it.head]
	it.queue[it.head] = nil
	it.head++

	it.queue = append(it.queue, node.Children()...)
	return node, true
}

// PathIterator yields the nodes of the downward path between two nodes,
// start first, end last. A tree has at most one downward path between any
// two nodes, so the path yielded is also the shortest one.
type PathIterator[K cmp.Ordered, T any] struct {
	path []*tree.Node[K, T]
	pos  int
}

// NewPath creates an iterator over the downward path from startKey to
// endKey. If either key is absent or endKey is not in startKey's subtree,
// the iterator is empty.
func NewPath[K cmp.Ordered, T any](t *tree.Tree[K, T], startKey, endKey K) *PathIterator[K, T] {
	start, ok := t.Find(startKey)
	if !ok {
		return &PathIterator[K, T]{}
	}
	end, ok := t.Find(endKey)
	if !ok {
		return &PathIterator[K, T]{}
	}

	// Walk parent pointers from end up to start, then reverse.
	var rev []*tree.Node[K, T]
	cur := end
	for cur != nil {
		rev = append(rev, cur)
		if cur == start {
			break
		}
		cur = cur.Parent()
	}
	if cur != start {
		return &PathIterator[K, T]{} // end is not below start
	}

	path := make([]*tree.Node[K, T], len(rev))
	for i, n := range rev {
		path[len(rev)-1-i] = n
	}
	return &PathIterator[K, T]{path: path}
}

// Next returns the next node along the path, or ok=false once the path is
// exhausted. An unreachable end key yields no nodes at all.
func (it *PathIterator[K, T]) Next() (*tree.Node[K, T], bool) {
	if it.pos >= len(it.path) {
		return nil, false
	}
	node := it.path[it.pos]
	it.pos++
	return node, true
}
