package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"
)

var scrollCmd = &cobra.Command{
	Use:   "scroll",
	Short: "Inspect and edit saved scroll positions",
}

var scrollGetCmd = &cobra.Command{
	Use:   "get <path>",
	Short: "Print the saved offset for a path (0 when never saved)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), app.Scroll.Get(args[0]))
		return nil
	},
}

var scrollSaveCmd = &cobra.Command{
	Use:   "save <path> <offset>",
	Short: "Save an offset for a path",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		offset, err := strconv.Atoi(args[1])
		if err != nil || offset < 0 {
			return fmt.Errorf("offset must be a non-negative integer, got %q", args[1])
		}
		viewport.ScrollTo(offset)
		app.Scroll.Save(cmd.Context(), args[0])
		return nil
	},
}

var scrollListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every saved offset",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		positions := app.Scroll.Snapshot()
		paths := make([]string, 0, len(positions))
		for p := range positions {
			paths = append(paths, p)
		}
		sort.Strings(paths)
		for _, p := range paths {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", p, positions[p])
		}
		return nil
	},
}

func init() {
	scrollCmd.AddCommand(scrollGetCmd, scrollSaveCmd, scrollListCmd)
}
