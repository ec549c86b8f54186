package main

import (
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <sim>",
	Short: "Run a simulation",
	Long: `Run the specified simulation headlessly and print a summary.

The run stops when the tick limit is reached or the simulation ends.
Without --autopilot the only input is a jump every --jump-every ticks.

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  collide run flappy
  collide run breakout --ticks 20000
  collide run flappy --autopilot=false --jump-every 40
  collide run flappy --difficulty hard --config ./my-flappy.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	addRunFlags(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	runner, err := newRunner()
	if err != nil {
		return err
	}

	game, err := runner.NewGame(args[0])
	if err != nil {
		return err
	}

	sum, err := runner.Run(cmd.Context(), game, runtimeConfig(), settings.GetInt("ticks"))
	if err != nil {
		return err
	}

	newPrinter(cmd.OutOrStdout()).summary(game.Title(), sum)
	return nil
}
