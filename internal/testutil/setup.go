// Package testutil provides shared fixtures for treekit tests.
package testutil

import (
	"testing"

	"github.com/joshuapare/treekit/tree"
)

// SampleTree builds the standard five-node fixture used across packages:
//
//	root
//	├── child1
//	│   └── child1.1
//	└── child2
//	    └── child2.1
//
// Every node's value is its key with a "_value" suffix.
func SampleTree(t *testing.T) *tree.Tree[string, string] {
	t.Helper()

	tr := tree.New("root", "root_value")
	for _, edge := range [][2]string{
		{"root", "child1"},
		{"root", "child2"},
		{"child1", "child1.1"},
		{"child2", "child2.1"},
	} {
		if err := tr.Insert(edge[0], edge[1], edge[1]+"_value"); err != nil {
			t.Fatalf("Failed to insert %q under %q: %v", edge[1], edge[0], err)
		}
	}
	return tr
}

// Keys drains an iterator and returns the visited keys in order.
func Keys(it interface {
	Next() (*tree.Node[string, string], bool)
}) []string {
	var keys []string
	for {
		node, ok := it.Next()
		if !ok {
			return keys
		}
		keys = append(keys, node.Key())
	}
}
