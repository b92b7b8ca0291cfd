package main

import (
	"fmt"

	"github.com/joshuapare/treekit/tree"
	"github.com/joshuapare/treekit/tree/walker"
	"github.com/spf13/cobra"
)

var walkOrder string

func init() {
	cmd := newWalkCmd()
	cmd.Flags().StringVar(&walkOrder, "order", "dfs", "Traversal order: dfs (pre-order) or bfs (level order)")
	rootCmd.AddCommand(cmd)
}

func newWalkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "walk <outline>",
		Short: "Print keys in traversal order",
		Long: `The walk command traverses the tree and prints one key per line.

Example:
  treectl walk services.outline
  treectl walk services.outline --order bfs
  treectl walk services.outline --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWalk(args)
		},
	}
	return cmd
}

func runWalk(args []string) error {
	t, err := parseOutlineFile(args[0])
	if err != nil {
		return err
	}

	var keys []string
	switch walkOrder {
	case "dfs":
		keys = drain(walker.NewDepthFirst(t))
	case "bfs":
		keys = drain(walker.NewBreadthFirst(t))
	default:
		return fmt.Errorf("unknown order %q (want dfs or bfs)", walkOrder)
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"order": walkOrder,
			"keys":  keys,
		})
	}
	for _, key := range keys {
		printInfo("%s\n", key)
	}
	return nil
}

// drain exhausts an iterator and collects the visited keys.
func drain(it interface {
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
