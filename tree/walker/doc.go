// Package walker provides traversal iterators and path queries over a tree.
//
// # Overview
//
// All iterators are lazy, single-pass, non-restartable producers of node
// handles, implemented iteratively with an explicit stack or queue (no
// recursion):
//
// DepthFirstIterator: pre-order, node before its children, children visited
// left-to-right in their stored order. Children are pushed onto the stack in
// reverse so the leftmost is popped first.
//
// BreadthFirstIterator: level order, all nodes at depth d before depth d+1.
// Children are enqueued in stored order.
//
// PathIterator: yields the nodes of the downward path from a start node to
// an end node, start first. In a tree the downward path between two nodes is
// unique, so it is also the shortest one.
//
// # Quick Start
//
//	it := walker.NewDepthFirst(t)
//	for n, ok := it.Next(); ok; n, ok = it.Next() {
//	    fmt.Println(n.Key())
//	}
//
// ShortestPaths is the batch companion to PathIterator: a BFS distance and
// predecessor computation over the parent→child edges (all edges weight 1)
// followed by path reconstruction. See its doc comment for the tie-breaking
// contract.
//
// # Consistency
//
// Iterators borrow the tree's structure; they take no snapshot. Mutating the
// tree while an iterator over it is alive leaves the iteration order
// undefined — avoiding that is the caller's obligation.
package walker
