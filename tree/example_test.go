package tree_test

import (
	"fmt"

	"github.com/joshuapare/treekit/tree"
)

// Example shows basic construction and lookups.
func Example() {
	t := tree.New("root", "root_value")
	_ = t.Insert("root", "child1", "child1_value")
	_ = t.Insert("root", "child2", "child2_value")
	_ = t.Insert("child1", "child1.1", "child1.1_value")

	if n, ok := t.Find("child1.1"); ok {
		fmt.Println(n.Value())
	}
	// Output: child1.1_value
}

// ExampleTree_FindBySecondaryIndex demonstrates tag-based grouping.
func ExampleTree_FindBySecondaryIndex() {
	t := tree.New("root", "")
	_ = t.Insert("root", "web", "frontend")
	_ = t.Insert("root", "db", "postgres")

	t.AddToSecondaryIndex("critical", "db")
	t.AddToSecondaryIndex("critical", "web")

	nodes, _ := t.FindBySecondaryIndex("critical")
	for _, n := range nodes {
		fmt.Println(n.Key())
	}
	// Output:
	// db
	// web
}

// ExampleTree_Move demonstrates re-homing a subtree.
func ExampleTree_Move() {
	t := tree.New("root", "")
	_ = t.Insert("root", "a", "")
	_ = t.Insert("root", "b", "")
	_ = t.Insert("a", "a1", "")

	_ = t.Move("a", "b")

	n, _ := t.Find("a1")
	fmt.Println(n.Parent().Key(), n.Parent().Parent().Key())
	// Output: a b
}
