// Package sim drives registered simulations headlessly: single runs,
// concurrent seed sweeps and determinism checks.
package sim

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/collide/internal/config"
	"github.com/vovakirdan/collide/internal/core"
	"github.com/vovakirdan/collide/internal/registry"
)

// ErrNonDeterministic is returned when two runs with the same seed diverge.
var ErrNonDeterministic = errors.New("simulation is not deterministic")

// Runner steps simulations with a scripted or automatic input source.
// A Runner is safe for concurrent use.
type Runner struct {
	Logger    *log.Logger // nil discards log output
	Autopilot bool        // use the simulation's autopilot when it has one
	JumpEvery int         // press Jump every N ticks when not on autopilot; 0 never

	ConfigPath string                  // custom config file for configurable simulations
	Preset     config.DifficultyPreset // difficulty preset applied on load
}

// Summary describes a finished run.
type Summary struct {
	RunID       uuid.UUID
	GameID      string
	Seed        int64
	Ticks       int
	Score       int
	GameOver    bool
	Won         bool
	Fingerprint uint64
	Duration    time.Duration
}

// Ended reports whether the simulation finished before the tick limit.
func (s Summary) Ended() bool {
	return s.GameOver || s.Won
}

var discard = log.New(io.Discard)

func (r *Runner) logger() *log.Logger {
	if r.Logger == nil {
		return discard
	}
	return r.Logger
}

// NewGame creates a registered simulation and loads its configuration.
func (r *Runner) NewGame(id string) (registry.Game, error) {
	game, err := registry.Create(id)
	if err != nil {
		return nil, err
	}
	if c, ok := game.(registry.Configurable); ok {
		if err := c.LoadConfig(r.ConfigPath, r.Preset); err != nil {
			return nil, fmt.Errorf("sim: load %s config: %w", id, err)
		}
	}
	return game, nil
}

// Run resets game with cfg and steps it until ticks have elapsed or the
// game ends. Cancelling ctx stops the run between ticks; the partial
// summary is returned together with the context error.
func (r *Runner) Run(ctx context.Context, game registry.Game, cfg core.RuntimeConfig, ticks int) (Summary, error) {
	logger := r.logger().With("sim", game.ID(), "seed", cfg.Seed)
	start := time.Now()

	sum := Summary{
		RunID:  uuid.New(),
		GameID: game.ID(),
		Seed:   cfg.Seed,
	}

	game.Reset(cfg)
	pilot, hasPilot := game.(registry.Autopilot)
	useAutopilot := r.Autopilot && hasPilot
	if r.Autopilot && !hasPilot {
		logger.Warn("simulation has no autopilot, falling back to scripted input")
	}

	logger.Debug("run started", "run", sum.RunID, "ticks", ticks)

	var runErr error
	for sum.Ticks < ticks {
		if err := ctx.Err(); err != nil {
			runErr = err
			break
		}

		var in core.InputFrame
		switch {
		case useAutopilot:
			in = pilot.Autopilot()
		case r.JumpEvery > 0 && sum.Ticks%r.JumpEvery == 0:
			in = core.NewInputFrame(core.ActionJump)
		default:
			in = core.NewInputFrame()
		}

		res := game.Step(in)
		sum.Ticks++
		for _, e := range res.Events {
			logger.Debug("event", "tick", sum.Ticks, "event", e)
		}

		if res.State.GameOver || res.State.Won {
			break
		}
	}

	state := game.State()
	sum.Score = state.Score
	sum.GameOver = state.GameOver
	sum.Won = state.Won
	sum.Fingerprint = game.Fingerprint()
	sum.Duration = time.Since(start)

	if runErr != nil {
		logger.Warn("run interrupted", "tick", sum.Ticks, "error", runErr)
		return sum, fmt.Errorf("sim: %s seed %d: %w", sum.GameID, sum.Seed, runErr)
	}

	logger.Info("run finished",
		"ticks", sum.Ticks,
		"score", sum.Score,
		"game_over", sum.GameOver,
		"won", sum.Won,
		"fingerprint", fmt.Sprintf("%016x", sum.Fingerprint),
	)
	return sum, nil
}
