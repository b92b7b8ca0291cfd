package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/joshuapare/treekit/tree/walker"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newPathsCmd())
}

func newPathsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "paths <outline> <start> <end>",
		Short: "Compute shortest downward paths between two keys",
		Long: `The paths command runs a breadth-first distance computation from
the start key over parent-to-child edges only and prints the shortest
path(s) to the end key, keyed by length.

Example:
  treectl paths services.outline root leaf3
  treectl paths services.outline root leaf3 --json`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPaths(args)
		},
	}
	return cmd
}

func runPaths(args []string) error {
	t, err := parseOutlineFile(args[0])
	if err != nil {
		return err
	}
	start, end := args[1], args[2]

	paths, ok := walker.ShortestPaths(t, start, end)
	if !ok {
		return fmt.Errorf("no downward path from %q to %q", start, end)
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"start": start,
			"end":   end,
			"paths": paths,
		})
	}

	lengths := make([]int, 0, len(paths))
	for length := range paths {
		lengths = append(lengths, length)
	}
	sort.Ints(lengths)
	for _, length := range lengths {
		printInfo("%d: %s\n", length, strings.Join(paths[length], " -> "))
	}
	return nil
}
