package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/collide/internal/sim"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep <sim>",
	Short: "Run a simulation over many seeds",
	Long: `Run a fresh instance of the simulation for each of --seeds consecutive
seeds starting at --seed, using up to --workers goroutines, and print
one row per seed followed by the best score.

With --verify the determinism of the first seed is checked before the
sweep starts.

Examples:
  collide sweep flappy --seeds 16
  collide sweep breakout --seed 100 --seeds 64 --workers 4 --verify`,
	Args: cobra.ExactArgs(1),
	RunE: runSweep,
}

func init() {
	addRunFlags(sweepCmd)
	sweepCmd.Flags().Int("seeds", 8, "Number of seeds to run")
	sweepCmd.Flags().Int("workers", runtime.NumCPU(), "Maximum number of concurrent runs")
	sweepCmd.Flags().Bool("verify", false, "Check determinism before sweeping")
}

func runSweep(cmd *cobra.Command, args []string) error {
	id := args[0]
	runner, err := newRunner()
	if err != nil {
		return err
	}

	out := newPrinter(cmd.OutOrStdout())
	cfg := runtimeConfig()
	ticks := settings.GetInt("ticks")

	if settings.GetBool("verify") {
		if _, err := runner.VerifyDeterminism(cmd.Context(), id, cfg, ticks); err != nil {
			return err
		}
		fmt.Fprintln(out, out.pass("Determinism check passed."))
		fmt.Fprintln(out)
	}

	seeds := sim.Seeds(cfg.Seed, settings.GetInt("seeds"))
	results, err := runner.Sweep(cmd.Context(), id, cfg, seeds, ticks, settings.GetInt("workers"))
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "  %-20s  %-8s  %-8s  %-9s  %s\n", "Seed", "Score", "Ticks", "Result", "Fingerprint")
	fmt.Fprintf(out, "  %-20s  %-8s  %-8s  %-9s  %s\n", "----", "-----", "-----", "------", "-----------")
	for _, s := range results {
		result := fmt.Sprintf("%-9s", "running")
		switch {
		case s.Won:
			result = out.pass(fmt.Sprintf("%-9s", "won"))
		case s.GameOver:
			result = out.fail(fmt.Sprintf("%-9s", "game over"))
		}
		fmt.Fprintf(out, "  %-20d  %-8d  %-8d  %s  %s\n", s.Seed, s.Score, s.Ticks, result, fingerprint(s.Fingerprint))
	}

	if best, ok := sim.Best(results); ok {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "%s %d (seed %d)\n", out.title("Best:"), best.Score, best.Seed)
	}
	return nil
}
