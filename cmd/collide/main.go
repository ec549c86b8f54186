// collide runs headless collision simulations and geometry scenarios.
//
// Usage:
//
//	collide list                 - List available simulations
//	collide run <sim>            - Run one simulation and print a summary
//	collide sweep <sim>          - Run a simulation over a range of seeds
//	collide check [file]         - Evaluate a collision scenario file
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed (0 = random based on time)
//	--difficulty <preset> - Difficulty preset: easy, normal, hard, fixed
//	--log-level <level>   - debug, info, warn or error
//	--no-color            - Disable styled output
//
// Every flag can also be set through a COLLIDE_* environment variable,
// e.g. COLLIDE_SEED=42 or COLLIDE_LOG_LEVEL=debug.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vovakirdan/collide/internal/config"
	"github.com/vovakirdan/collide/internal/core"
	"github.com/vovakirdan/collide/internal/sim"

	// Import simulations to register them
	_ "github.com/vovakirdan/collide/internal/games/breakout"
	_ "github.com/vovakirdan/collide/internal/games/flappy"
)

// settings holds flag values merged with COLLIDE_* environment variables.
var settings = viper.New()

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "collide",
})

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "collide",
	Short: "Collide - headless 2D collision simulations",
	Long: `Collide runs deterministic, headless 2D game simulations built on a
small collision detection library, and checks collision scenarios
described in YAML.

Available commands:
  list     - Show all available simulations
  run      - Run one simulation
  sweep    - Run a simulation for many seeds in parallel
  check    - Evaluate a collision scenario file

Examples:
  collide list
  collide run flappy --ticks 5000
  collide sweep breakout --seeds 32 --workers 8 --verify
  collide check ./scenarios/rects.yaml
  COLLIDE_SEED=42 collide run flappy`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int("fps", 60, "Tick rate (ticks per simulated second)")
	rootCmd.PersistentFlags().Int64("seed", 1, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().String("difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable styled output")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(sweepCmd)
	rootCmd.AddCommand(checkCmd)
}

// setup binds the flags of the running command to the environment and
// configures the logger.
func setup(cmd *cobra.Command, args []string) error {
	settings.SetEnvPrefix("collide")
	settings.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	settings.AutomaticEnv()
	if err := settings.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}

	level, err := log.ParseLevel(settings.GetString("log-level"))
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger.SetLevel(level)
	return nil
}

// runtimeConfig builds the simulation runtime config from global settings.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.TickRate = settings.GetInt("fps")
	cfg.Seed = settings.GetInt64("seed")
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg
}

// newRunner builds a runner from the global and per-command settings.
func newRunner() (*sim.Runner, error) {
	preset, err := config.ParsePreset(settings.GetString("difficulty"))
	if err != nil {
		return nil, err
	}

	return &sim.Runner{
		Logger:     logger,
		Autopilot:  settings.GetBool("autopilot"),
		JumpEvery:  settings.GetInt("jump-every"),
		ConfigPath: settings.GetString("config"),
		Preset:     preset,
	}, nil
}

// addRunFlags registers the flags shared by run and sweep.
func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().Int("ticks", 3600, "Maximum number of ticks per run")
	cmd.Flags().Bool("autopilot", true, "Drive the simulation with its built-in autopilot")
	cmd.Flags().Int("jump-every", 0, "Press jump every N ticks when autopilot is off (0 = never)")
	cmd.Flags().String("config", "", "Path to custom simulation config YAML")
}
