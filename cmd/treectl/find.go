package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var findTag bool

func init() {
	cmd := newFindCmd()
	cmd.Flags().BoolVar(&findTag, "tag", false, "Look up by secondary-index tag instead of key")
	rootCmd.AddCommand(cmd)
}

func newFindCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find <outline> <key|tag>",
		Short: "Resolve a key or tag",
		Long: `The find command resolves a key through the primary index, or a
tag through the secondary index with --tag.

Example:
  treectl find services.outline child1
  treectl find services.outline critical --tag`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFind(args)
		},
	}
	return cmd
}

func runFind(args []string) error {
	t, err := parseOutlineFile(args[0])
	if err != nil {
		return err
	}
	needle := args[1]

	if findTag {
		nodes, ok := t.FindBySecondaryIndex(needle)
		if !ok {
			return fmt.Errorf("tag %q is not registered", needle)
		}
		if jsonOut {
			keys := make([]string, len(nodes))
			for i, n := range nodes {
				keys[i] = n.Key()
			}
			return printJSON(map[string]interface{}{"tag": needle, "keys": keys})
		}
		for _, n := range nodes {
			printInfo("%s = %s\n", n.Key(), n.Value())
		}
		return nil
	}

	node, ok := t.Find(needle)
	if !ok {
		return fmt.Errorf("key %q not found", needle)
	}
	if jsonOut {
		out := map[string]interface{}{
			"key":   node.Key(),
			"value": node.Value(),
			"leaf":  node.IsLeaf(),
		}
		if !node.IsRoot() {
			out["parent"] = node.Parent().Key()
		}
		return printJSON(out)
	}

	printInfo("%s = %s\n", node.Key(), node.Value())
	if !node.IsRoot() {
		printInfo("  parent: %s\n", node.Parent().Key())
	}
	printInfo("  children: %d\n", len(node.Children()))
	return nil
}
