package main

import (
	"os"

	"github.com/joshuapare/treekit/tree/printer"
	"github.com/spf13/cobra"
)

var (
	showDepth  int
	showValues bool
	showSorted bool
)

func init() {
	cmd := newShowCmd()
	cmd.Flags().IntVar(&showDepth, "depth", 0, "Maximum depth (0 = unlimited)")
	cmd.Flags().BoolVar(&showValues, "values", true, "Show node values")
	cmd.Flags().BoolVar(&showSorted, "sorted", false, "Sort children by key")
	rootCmd.AddCommand(cmd)
}

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <outline>",
		Short: "Display tree structure",
		Long: `The show command prints the tree described by an outline file.

Example:
  treectl show services.outline
  treectl show services.outline --depth 2 --sorted
  treectl show services.outline --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(args)
		},
	}
	return cmd
}

func runShow(args []string) error {
	t, err := parseOutlineFile(args[0])
	if err != nil {
		return err
	}

	opts := printer.DefaultOptions()
	opts.MaxDepth = showDepth
	opts.ShowValues = showValues
	opts.SortChildren = showSorted
	if jsonOut {
		opts.Format = printer.FormatJSON
	}

	return printer.Print(os.Stdout, t, opts)
}
