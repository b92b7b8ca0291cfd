package printer

import (
	"encoding/json"
	"fmt"

	"github.com/joshuapare/treekit/tree"
)

// jsonNode represents a tree node in JSON format.
type jsonNode struct {
	Key      string     `json:"key"`
	Value    any        `json:"value,omitempty"`
	Children []jsonNode `json:"children,omitempty"`
}

// printJSON prints a node and its subtree as one indented JSON document.
func (p *treePrinter[K, T]) printJSON(node *tree.Node[K, T]) error {
	doc := p.buildJSON(node, 0)

	enc := json.NewEncoder(p.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// buildJSON converts a subtree into its jsonNode form.
func (p *treePrinter[K, T]) buildJSON(node *tree.Node[K, T], depth int) jsonNode {
	out := jsonNode{Key: fmt.Sprint(node.Key())}
	if p.opts.ShowValues {
		out.Value = node.Value()
	}

	if p.opts.MaxDepth > 0 && depth+1 >= p.opts.MaxDepth {
		return out
	}

	for _, child := range p.orderedChildren(node) {
		out.Children = append(out.Children, p.buildJSON(child, depth+1))
	}
	return out
}
