package tree

import "errors"

var (
	// ErrParentNotFound indicates Insert was called with a parent key that
	// is not in the primary index.
	ErrParentNotFound = errors.New("tree: parent key not found")

	// ErrKeyNotFound indicates the specified key doesn't exist.
	ErrKeyNotFound = errors.New("tree: key not found")

	// ErrDuplicateKey indicates an insert with a key that already exists.
	ErrDuplicateKey = errors.New("tree: key already exists")

	// ErrCannotRemoveRoot indicates an attempt to remove the root node.
	ErrCannotRemoveRoot = errors.New("tree: cannot remove root node")

	// ErrCannotMoveRoot indicates an attempt to move the root node.
	ErrCannotMoveRoot = errors.New("tree: cannot move root node")

	// ErrMoveIntoSubtree indicates a move whose destination lies inside the
	// subtree being moved, which would disconnect it from the root.
	ErrMoveIntoSubtree = errors.New("tree: cannot move a node into its own subtree")
)
