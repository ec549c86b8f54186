package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/collide/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available simulations",
	Long:  `Shows a list of all simulations registered in collide.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	out := newPrinter(cmd.OutOrStdout())
	sims := registry.List()

	if len(sims) == 0 {
		fmt.Fprintln(out, "No simulations available.")
		return
	}

	fmt.Fprintln(out, out.title("Available simulations:"))
	fmt.Fprintln(out)

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, s := range sims {
		maxIDLen = max(maxIDLen, len(s.ID))
	}

	// Print header
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, s := range sims {
		fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, s.ID, s.Title)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, out.dim("Run 'collide run <id>' to run a simulation."))
}
