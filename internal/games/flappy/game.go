// Package flappy implements a headless Flappy Bird simulation.
// The bird falls under a constant acceleration and must pass through the
// gaps of pipe pairs scrolling in from the right.
package flappy

import (
	"fmt"

	"github.com/vovakirdan/collide/internal/config"
	"github.com/vovakirdan/collide/internal/core"
	"github.com/vovakirdan/collide/internal/geom"
	"github.com/vovakirdan/collide/internal/registry"
)

// Game implements the Flappy Bird simulation.
type Game struct {
	cfg        config.FlappyConfig // Loaded configuration
	active     config.FlappyConfig // cfg with runtime overrides applied
	runtime    core.RuntimeConfig
	difficulty *config.DifficultyManager

	bird      Bird
	pipes     *PipeManager
	jumping   bool    // Jump requested and not yet applied
	pipeTime  float64 // Milliseconds since the last spawn
	score     int
	started   bool // First jump starts the run
	gameOver  bool
	paused    bool
	tickCount int
}

// New creates a Flappy Bird simulation with the default configuration.
func New() *Game {
	return NewWithConfig(config.DefaultFlappyConfig())
}

// NewWithConfig creates a Flappy Bird simulation with the given configuration.
func NewWithConfig(cfg config.FlappyConfig) *Game {
	g := &Game{cfg: cfg}
	g.Reset(core.DefaultConfig())
	return g
}

// LoadConfig loads the configuration from path (or the default search order),
// applies a difficulty preset and validates the result.
func (g *Game) LoadConfig(path string, preset config.DifficultyPreset) error {
	cfg, err := config.LoadFlappy(path)
	if err != nil {
		return err
	}
	config.ApplyFlappyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("flappy: %w", err)
	}
	g.cfg = cfg
	g.Reset(g.runtime)
	return nil
}

// Config returns the configuration in effect.
func (g *Game) Config() config.FlappyConfig {
	return g.active
}

// ID returns the unique identifier for this simulation.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name for this simulation.
func (g *Game) Title() string {
	return "Flappy Bird"
}

// Reset initializes or restarts the simulation.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.active = g.cfg
	if cfg.WorldW > 0 {
		g.active.World.Width = cfg.WorldW
	}
	if cfg.WorldH > 0 {
		g.active.World.Height = cfg.WorldH
	}

	g.difficulty = config.NewDifficultyManager(g.active.Difficulty)
	g.bird = newBird(g.active.Bird)
	g.jumping = false
	g.pipeTime = 0
	g.score = 0
	g.started = false
	g.gameOver = false
	g.paused = false
	g.tickCount = 0

	if g.pipes == nil {
		g.pipes = NewPipeManager(cfg.Seed, g.active.Pipe, g.active.World)
	} else {
		g.pipes.cfg = g.active.Pipe
		g.pipes.world = g.active.World
		g.pipes.Reset(cfg.Seed)
	}
}

// Step advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var events []core.Event

	if g.gameOver {
		if in.Has(core.ActionRestart) {
			g.Reset(g.runtime)
			events = append(events, core.EventRestarted)
		}
		return core.StepResult{State: g.State(), Events: events}
	}

	if !g.started {
		if !in.Has(core.ActionJump) {
			return core.StepResult{State: g.State()}
		}
		g.started = true
		g.pipes.Spawn(g.gap())
		events = append(events, core.EventStarted)
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State(), Events: events}
	}

	g.tickCount++
	dt := g.runtime.TickMillis()

	if g.pipeTime >= g.interval() {
		g.pipes.Spawn(g.gap())
		g.pipeTime = 0
	}

	if in.Has(core.ActionJump) {
		g.jumping = true
	}

	g.bird, g.jumping = updateBird(g.bird, g.jumping, dt, g.active.Bird, g.active.World.Height)
	g.pipes.Update(g.difficulty.Speed(g.active.Pipe.Speed, g.score, g.tickCount))
	events = append(events, g.checkCollision()...)

	g.pipeTime += dt

	return core.StepResult{State: g.State(), Events: events}
}

// checkCollision ends the run on the ceiling, the ground or a pipe, and
// scores each trigger the bird touches.
func (g *Game) checkCollision() []core.Event {
	if hitsBorder(g.bird, g.active.World.Height) {
		g.gameOver = true
		return []core.Event{core.EventGameOver}
	}

	var events []core.Event
	for i, o := range g.pipes.Obstacles() {
		if !o.Active || !g.hits(o) {
			continue
		}
		if o.Kind == KindTrigger {
			g.pipes.Deactivate(i)
			g.score++
			events = append(events, core.EventScored)
			continue
		}
		if !g.gameOver {
			g.gameOver = true
			events = append(events, core.EventGameOver)
		}
	}
	return events
}

// hits tests the bird against an obstacle with the configured hitbox.
func (g *Game) hits(o Obstacle) bool {
	if g.active.Game.Hitbox == config.HitboxOriented {
		return geom.OrientedRectanglesCollide(g.bird.Oriented(), o.Rect.OrientedRectangle())
	}
	return geom.RectanglesCollide(g.bird.Rect(), o.Rect)
}

// gap returns the current gap size, shrinking with difficulty.
func (g *Game) gap() float64 {
	return g.difficulty.GapSize(g.active.Pipe.Buffer, 2*g.active.Bird.Height, g.score, g.tickCount)
}

// interval returns the current spawn interval, shrinking with difficulty.
func (g *Game) interval() float64 {
	return g.difficulty.Interval(g.active.Pipe.Interval, g.active.Pipe.Interval/3, g.score, g.tickCount)
}

// State returns the current simulation state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Bodies returns the bird followed by the active obstacles.
func (g *Game) Bodies() []core.Body {
	bodies := make([]core.Body, 0, len(g.pipes.Obstacles())+1)
	if g.active.Game.Hitbox == config.HitboxOriented {
		bodies = append(bodies, core.Body{Name: "bird", Shape: g.bird.Oriented()})
	} else {
		bodies = append(bodies, core.Body{Name: "bird", Shape: g.bird.Rect()})
	}
	for _, o := range g.pipes.Obstacles() {
		if o.Active {
			bodies = append(bodies, core.Body{Name: o.Kind.String(), Shape: o.Rect})
		}
	}
	return bodies
}

// Autopilot jumps whenever the bird is about to sink into the lower part of
// the next gap. The first jump also starts the run.
func (g *Game) Autopilot() core.InputFrame {
	if !g.started {
		return core.NewInputFrame(core.ActionJump)
	}
	if g.gameOver || g.paused {
		return core.NewInputFrame()
	}

	h := g.active.World.Height
	gap, ok := g.pipes.NextGap(g.bird.Pos.X)
	if !ok {
		gap = geom.Range{Min: h/2 - g.active.Pipe.Buffer/2, Max: h/2 + g.active.Pipe.Buffer/2}
	}

	next := g.bird.Bottom() + g.bird.SpeedY*g.runtime.TickMillis()
	if next >= gap.Max-autopilotSlack {
		return core.NewInputFrame(core.ActionJump)
	}
	return core.NewInputFrame()
}

// autopilotSlack is how far above the gap's lower edge the autopilot jumps.
const autopilotSlack = 4

// Register the simulation with the registry
func init() {
	registry.Register("flappy", func() registry.Game {
		return New()
	})
}
