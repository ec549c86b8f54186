package breakout

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/collide/internal/config"
	"github.com/vovakirdan/collide/internal/core"
	"github.com/vovakirdan/collide/internal/geom"
	"github.com/vovakirdan/collide/internal/registry"
)

// Game states
const (
	StateServe    = "serve"    // Ball on paddle, waiting for launch
	StatePlaying  = "playing"  // Ball in play
	StatePaused   = "paused"   // Paused while playing
	StateGameOver = "gameover" // No lives left
	StateWin      = "win"      // Every destroyable brick cleared
)

// ErrUnknownLevel is returned when the config names a level that does not exist.
var ErrUnknownLevel = errors.New("breakout: unknown level")

// Game implements the Breakout simulation.
type Game struct {
	cfg        config.BreakoutConfig // Loaded configuration
	active     config.BreakoutConfig // cfg with runtime overrides applied
	runtime    core.RuntimeConfig
	difficulty *config.DifficultyManager
	level      *Level

	paddle Paddle
	ball   Ball
	bricks []Brick
	rng    *rand.Rand
	draws  int // RNG values consumed, part of the fingerprint

	state      string
	score      int
	lives      int
	tickCount  int
	serveDelay int // Ticks left before a serve is allowed
	paddleHits int
}

// New creates a Breakout simulation with the default configuration.
func New() *Game {
	return NewWithConfig(config.DefaultBreakoutConfig())
}

// NewWithConfig creates a Breakout simulation with the given configuration.
// An unknown level falls back to the classic layout.
func NewWithConfig(cfg config.BreakoutConfig) *Game {
	g := &Game{cfg: cfg}
	g.Reset(core.DefaultConfig())
	return g
}

// LoadConfig loads the configuration from path (or the default search order),
// applies a difficulty preset and validates the result.
func (g *Game) LoadConfig(path string, preset config.DifficultyPreset) error {
	cfg, err := config.LoadBreakout(path)
	if err != nil {
		return err
	}
	config.ApplyBreakoutPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("breakout: %w", err)
	}
	if len(cfg.Bricks.Layout) == 0 {
		if _, ok := GetLevelByID(cfg.Bricks.Level); !ok {
			return fmt.Errorf("%w %q", ErrUnknownLevel, cfg.Bricks.Level)
		}
	}
	g.cfg = cfg
	g.Reset(g.runtime)
	return nil
}

// Config returns the configuration in effect.
func (g *Game) Config() config.BreakoutConfig {
	return g.active
}

// ID returns the unique identifier for this simulation.
func (g *Game) ID() string {
	return "breakout"
}

// Title returns the display name for this simulation.
func (g *Game) Title() string {
	return "Breakout"
}

// Reset initializes or restarts the simulation.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.active = g.cfg
	if runtime.WorldW > 0 {
		g.active.World.Width = runtime.WorldW
	}
	if runtime.WorldH > 0 {
		g.active.World.Height = runtime.WorldH
	}
	cfg := g.active

	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.rng = rand.New(rand.NewSource(runtime.Seed)) //#nosec G404 -- deterministic simulation RNG
	g.draws = 0

	g.level = g.loadLevel()
	g.bricks = g.level.Place(cfg.World, cfg.Bricks)

	g.score = 0
	g.lives = cfg.Gameplay.Lives
	g.tickCount = 0
	g.serveDelay = 0
	g.paddleHits = 0

	g.paddle = Paddle{Rect: geom.Rect((cfg.World.Width-cfg.Paddle.Width)/2, cfg.Paddle.Y, cfg.Paddle.Width, cfg.Paddle.Height)}
	g.placeBallOnPaddle()
}

// loadLevel returns the custom layout or the configured built-in level.
func (g *Game) loadLevel() *Level {
	if len(g.active.Bricks.Layout) > 0 {
		return ParseLevel("custom", "Custom", g.active.Bricks.Layout)
	}
	if level, ok := GetLevelByID(g.active.Bricks.Level); ok {
		return level
	}
	level, _ := GetLevelByID("classic")
	return level
}

// placeBallOnPaddle puts a fresh ball on the paddle and waits for a serve.
func (g *Game) placeBallOnPaddle() {
	g.ball = restOnPaddle(Ball{
		Body:  geom.Circle{Radius: g.active.Ball.Radius},
		Dir:   geom.Vec(0, 1),
		Speed: g.currentSpeed(),
		Stuck: true,
	}, g.paddle)
	g.state = StateServe
}

// launchBall serves the stuck ball at a random angle.
func (g *Game) launchBall() {
	g.draws++
	spread := g.rng.Float64()*2 - 1
	g.ball.Dir = serveDirection(spread, g.active.Gameplay.MaxDeflection)
	g.ball.Stuck = false
	g.state = StatePlaying
}

func (g *Game) currentSpeed() float64 {
	return ballSpeed(g.difficulty, g.active.Ball, g.score, g.tickCount)
}

// Step advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	// Handle restart
	if in.Has(core.ActionRestart) && (g.state == StateGameOver || g.state == StateWin) {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State(), Events: []core.Event{core.EventRestarted}}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		switch g.state {
		case StatePaused:
			g.state = StatePlaying
		case StatePlaying:
			g.state = StatePaused
		}
	}

	// Don't update if paused or finished
	if g.state == StatePaused || g.state == StateGameOver || g.state == StateWin {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	g.updatePaddle(in)

	if g.state == StateServe {
		g.ball = restOnPaddle(g.ball, g.paddle)
		if g.serveDelay > 0 {
			g.serveDelay--
			return core.StepResult{State: g.State()}
		}
		if in.Has(core.ActionJump) {
			g.launchBall()
			return core.StepResult{State: g.State(), Events: []core.Event{core.EventStarted}}
		}
		return core.StepResult{State: g.State()}
	}

	events := g.updateBall()
	return core.StepResult{State: g.State(), Events: events}
}

// updatePaddle handles paddle movement.
func (g *Game) updatePaddle(in core.InputFrame) {
	speed := g.active.Paddle.Speed
	if in.Has(core.ActionLeft) {
		g.paddle = movePaddle(g.paddle, -speed, g.active.World.Width)
	}
	if in.Has(core.ActionRight) {
		g.paddle = movePaddle(g.paddle, speed, g.active.World.Width)
	}
}

// updateBall moves the ball and resolves walls, the floor, the paddle and
// bricks, in that order.
func (g *Game) updateBall() []core.Event {
	var events []core.Event

	g.ball.Speed = g.currentSpeed()
	prev := g.ball
	g.ball = moveBall(g.ball)

	var hitWall bool
	g.ball, hitWall = bounceWalls(g.ball, g.active.World)
	if hitWall {
		events = append(events, core.EventBounced)
	}

	if fellOff(g.ball) {
		return append(events, g.handleMiss()...)
	}

	if hitsPaddle(g.ball, g.paddle) {
		g.ball = deflect(g.ball, g.paddle, g.active.Gameplay.MaxDeflection)
		g.paddleHits++
		return append(events, core.EventBounced)
	}

	return append(events, g.hitBricks(prev)...)
}

// hitBricks damages every brick the ball touches and reflects the ball once,
// off the first brick hit. A reflected ball returns to its position before
// the move so it cannot stay embedded. Destroyed bricks are dropped after
// the scan by compacting the slice in place.
func (g *Game) hitBricks(prev Ball) []core.Event {
	var events []core.Event
	bounds := g.ball.Bounds()
	reflected := false
	destroyed := 0

	for i := range g.bricks {
		brick := &g.bricks[i]
		if !brick.Alive || !geom.RectanglesCollide(bounds, brick.Rect) {
			continue
		}

		if !reflected {
			g.ball.Dir = reflect(g.ball.Dir, bounds, brick.Rect, g.active.Gameplay.Bounce)
			g.ball.Body.Center = prev.Body.Center
			reflected = true
		}

		events = append(events, core.EventBrickHit)
		if brick.Type == BrickSolid {
			continue
		}
		brick.HP--
		if brick.HP <= 0 {
			brick.Alive = false
			g.score += brick.Points
			destroyed++
			events = append(events, core.EventScored)
		}
	}

	if destroyed > 0 {
		kept := g.bricks[:0]
		for _, b := range g.bricks {
			if b.Alive {
				kept = append(kept, b)
			}
		}
		g.bricks = kept

		if g.destroyableLeft() == 0 {
			g.state = StateWin
			events = append(events, core.EventWon)
		}
	}
	return events
}

// destroyableLeft returns the number of bricks still standing between the
// player and a win.
func (g *Game) destroyableLeft() int {
	count := 0
	for _, b := range g.bricks {
		if b.Destroyable() {
			count++
		}
	}
	return count
}

// handleMiss handles a ball lost below the floor.
func (g *Game) handleMiss() []core.Event {
	g.lives--
	if g.lives <= 0 {
		g.state = StateGameOver
		return []core.Event{core.EventLifeLost, core.EventGameOver}
	}

	g.placeBallOnPaddle()
	g.serveDelay = g.active.Gameplay.ServeDelay
	return []core.Event{core.EventLifeLost}
}

// State returns the current simulation state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.state == StateGameOver || g.state == StateWin,
		Paused:   g.state == StatePaused,
		Won:      g.state == StateWin,
	}
}

// Lives returns the remaining lives.
func (g *Game) Lives() int {
	return g.lives
}

// Bodies returns the paddle, the ball and the remaining bricks.
func (g *Game) Bodies() []core.Body {
	bodies := make([]core.Body, 0, len(g.bricks)+2)
	bodies = append(bodies,
		core.Body{Name: "paddle", Shape: g.paddle.Rect},
		core.Body{Name: "ball", Shape: g.ball.Body},
	)
	for _, b := range g.bricks {
		bodies = append(bodies, core.Body{Name: fmt.Sprintf("brick-%d-%d", b.Row, b.Col), Shape: b.Rect})
	}
	return bodies
}

// Autopilot keeps the paddle under the ball, offset to alternate sides
// after each paddle hit so the ball fans out over the field, and serves
// as soon as it may.
func (g *Game) Autopilot() core.InputFrame {
	in := core.NewInputFrame()
	if g.state == StateServe && g.serveDelay == 0 {
		in.Set(core.ActionJump)
	}
	if g.state != StatePlaying {
		return in
	}

	offset := g.paddle.Rect.Size.X * autopilotOffset
	if g.paddleHits%2 == 1 {
		offset = -offset
	}
	target := g.ball.Body.Center.X - offset
	diff := target - g.paddle.CenterX()
	step := g.active.Paddle.Speed / 2

	switch {
	case diff > step:
		in.Set(core.ActionRight)
	case diff < -step:
		in.Set(core.ActionLeft)
	}
	return in
}

// autopilotOffset is the hit position the autopilot aims for, as a
// fraction of the paddle width from its center.
const autopilotOffset = 0.3

// Register the simulation with the registry
func init() {
	registry.Register("breakout", func() registry.Game {
		return New()
	})
}
