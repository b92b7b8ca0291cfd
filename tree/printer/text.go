package printer

import (
	"fmt"
	"strings"

	"github.com/joshuapare/treekit/tree"
)

// printText prints a node and its subtree in human-readable text format.
func (p *treePrinter[K, T]) printText(node *tree.Node[K, T], depth int) error {
	indent := strings.Repeat(" ", depth*p.opts.IndentSize)

	if p.opts.ShowValues {
		if _, err := fmt.Fprintf(p.writer, "%s[%v] = %v\n", indent, node.Key(), node.Value()); err != nil {
			return err
		}
	} else {
		if _, err := fmt.Fprintf(p.writer, "%s[%v]\n", indent, node.Key()); err != nil {
			return err
		}
	}

	if p.opts.MaxDepth > 0 && depth+1 >= p.opts.MaxDepth {
		return nil
	}

	for _, child := range p.orderedChildren(node) {
		if err := p.printText(child, depth+1); err != nil {
			return err
		}
	}
	return nil
}
