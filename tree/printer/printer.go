// Package printer renders a tree to an io.Writer in text or JSON form.
package printer

import (
	"cmp"
	"io"
	"slices"

	"github.com/joshuapare/treekit/tree"
)

const (
	DefaultIndentSize = 2
	DefaultMaxDepth   = 0
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs human-readable indented text.
	FormatText Format = "text"

	// FormatJSON outputs a nested JSON object.
	FormatJSON Format = "json"
)

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, json).
	// Default: FormatText
	Format Format

	// IndentSize is the number of spaces per indent level (text format only).
	// Default: 2
	IndentSize int

	// MaxDepth limits recursion depth (0 = unlimited).
	// Default: 0 (unlimited)
	MaxDepth int

	// ShowValues includes node values in output.
	// Default: true
	ShowValues bool

	// SortChildren prints children in key order instead of stored order.
	// Stored order shifts when subtrees are removed or moved, so sorting
	// gives stable output for diffing.
	// Default: false
	SortChildren bool
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:       FormatText,
		IndentSize:   DefaultIndentSize,
		MaxDepth:     DefaultMaxDepth,
		ShowValues:   true,
		SortChildren: false,
	}
}

// Print renders t to w according to opts.
func Print[K cmp.Ordered, T any](w io.Writer, t *tree.Tree[K, T], opts Options) error {
	p := &treePrinter[K, T]{writer: w, opts: opts}

	switch opts.Format {
	case FormatJSON:
		return p.printJSON(t.Root())
	default:
		return p.printText(t.Root(), 0)
	}
}

// treePrinter handles formatted output of a single tree.
type treePrinter[K cmp.Ordered, T any] struct {
	writer io.Writer
	opts   Options
}

// orderedChildren returns the children to print, sorted by key when
// requested. Sorting copies; stored order is returned zero-copy.
func (p *treePrinter[K, T]) orderedChildren(n *tree.Node[K, T]) []*tree.Node[K, T] {
	children := n.Children()
	if !p.opts.SortChildren || len(children) < 2 {
		return children
	}
	sorted := slices.Clone(children)
	slices.SortFunc(sorted, func(a, b *tree.Node[K, T]) int {
		return cmp.Compare(a.Key(), b.Key())
	})
	return sorted
}
