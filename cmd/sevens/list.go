package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sevens/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the board variants",
	Long:  `Shows every registered board variant.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()
	games := registry.List()

	if len(games) == 0 {
		fmt.Fprintln(out, "No variants available.")
		return
	}

	fmt.Fprintln(out, "Available variants:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Fprintf(out, "  %-*s  %-7s  %s\n", maxIDLen, "ID", "Board", "Title")
	fmt.Fprintf(out, "  %-*s  %-7s  %s\n", maxIDLen, "--", "-----", "-----")
	for _, g := range games {
		board := "-"
		if g.BoardSize > 0 {
			board = fmt.Sprintf("%dx%d", g.BoardSize, g.BoardSize)
		}
		fmt.Fprintf(out, "  %-*s  %-7s  %s\n", maxIDLen, g.ID, board, g.Title)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'sevens play <id>' to play a variant.")
}
