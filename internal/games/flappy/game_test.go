package flappy

import (
	"testing"

	"github.com/vovakirdan/collide/internal/config"
	"github.com/vovakirdan/collide/internal/core"
	"github.com/vovakirdan/collide/internal/geom"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{TickRate: 60, Seed: seed}
}

// startedGame returns a game that has consumed its starting jump.
func startedGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New()
	g.Reset(testRuntime(seed))
	res := g.Step(core.NewInputFrame(core.ActionJump))
	if !res.Has(core.EventStarted) {
		t.Fatalf("first jump should start the run, events %v", res.Events)
	}
	return g
}

func TestGameDeterminism(t *testing.T) {
	// Test that given the same seed and inputs, the game produces identical results
	cfg := testRuntime(12345)

	// Jump every 15 ticks to try to stay airborne
	inputSequence := make([]core.InputFrame, 400)
	for i := range inputSequence {
		inputSequence[i] = core.NewInputFrame()
		if i%15 == 0 {
			inputSequence[i].Set(core.ActionJump)
		}
	}

	run := func() (core.GameState, uint64, int) {
		g := New()
		g.Reset(cfg)
		var state core.GameState
		for _, in := range inputSequence {
			state = g.Step(in).State
			if state.GameOver {
				break
			}
		}
		return state, g.Fingerprint(), g.tickCount
	}

	state1, fp1, ticks1 := run()
	state2, fp2, ticks2 := run()

	if state1 != state2 {
		t.Errorf("Determinism failed: states differ. Run1=%+v, Run2=%+v", state1, state2)
	}
	if fp1 != fp2 {
		t.Errorf("Determinism failed: fingerprints differ. Run1=%x, Run2=%x", fp1, fp2)
	}
	if ticks1 != ticks2 {
		t.Errorf("Determinism failed: tick counts differ. Run1=%d, Run2=%d", ticks1, ticks2)
	}
}

func TestGameWaitsForFirstJump(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	before := g.bird

	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame())
	}

	if g.started || g.tickCount != 0 {
		t.Errorf("run should not start without a jump, started=%v ticks=%d", g.started, g.tickCount)
	}
	if g.bird != before {
		t.Errorf("bird should not move before the start, was %+v, now %+v", before, g.bird)
	}
	if len(g.pipes.Obstacles()) != 0 {
		t.Errorf("no pipes before the start, got %d", len(g.pipes.Obstacles()))
	}
}

func TestGameReset(t *testing.T) {
	cfg := testRuntime(42)
	g := startedGame(t, 42)

	// Play a few ticks
	for i := 0; i < 50; i++ {
		in := core.NewInputFrame()
		if i%10 == 0 {
			in.Set(core.ActionJump)
		}
		g.Step(in)
	}

	// Reset should clear state
	g.Reset(cfg)

	if g.score != 0 {
		t.Errorf("Reset should clear score, got %d", g.score)
	}
	if g.gameOver || g.paused || g.started {
		t.Error("Reset should clear gameOver, paused and started flags")
	}
	if g.tickCount != 0 {
		t.Errorf("Reset should clear tickCount, got %d", g.tickCount)
	}
	if len(g.pipes.Obstacles()) != 0 {
		t.Errorf("Reset should clear obstacles, got %d", len(g.pipes.Obstacles()))
	}
	if g.bird.Pos != geom.Vec(100, 100) {
		t.Errorf("Reset should place the bird at its start, got %v", g.bird.Pos)
	}
}

func TestGameJumpPhysics(t *testing.T) {
	g := startedGame(t, 1)

	// The jump sets the speed after moving with the old one
	if g.bird.SpeedY >= 0 {
		t.Errorf("Jump velocity should be negative, got %f", g.bird.SpeedY)
	}
	if g.bird.Rotation != -30 {
		t.Errorf("Jump should tilt the bird up, got %f", g.bird.Rotation)
	}

	initialY := g.bird.Pos.Y
	g.Step(core.NewInputFrame())

	if g.bird.Pos.Y >= initialY {
		t.Errorf("Jump should move bird up, was %f, now %f", initialY, g.bird.Pos.Y)
	}
	if g.bird.Rotation != -28.5 {
		t.Errorf("Tilt should relax by one step, got %f", g.bird.Rotation)
	}
}

func TestGameGravity(t *testing.T) {
	g := startedGame(t, 1)

	g.bird.Pos.Y = 200
	g.bird.SpeedY = 0
	g.Step(core.NewInputFrame())

	if g.bird.SpeedY <= 0 {
		t.Errorf("Velocity should be positive after gravity, got %f", g.bird.SpeedY)
	}

	g.Step(core.NewInputFrame())
	if g.bird.Pos.Y <= 200 {
		t.Errorf("Gravity should pull bird down, Y is still %f", g.bird.Pos.Y)
	}
}

func TestTiltIsCapped(t *testing.T) {
	cfg := config.DefaultFlappyConfig().Bird
	b := Bird{Pos: geom.Vec(0, 100), Width: 25, Height: 25, Rotation: 29}

	b, _ = updateBird(b, false, 16, cfg, 400)
	if b.Rotation != 30 {
		t.Errorf("expected tilt capped at 30, got %f", b.Rotation)
	}
}

func TestJumpStaysPendingAtCeiling(t *testing.T) {
	cfg := config.DefaultFlappyConfig().Bird
	b := Bird{Pos: geom.Vec(0, 1), Width: 25, Height: 25, SpeedY: -1}

	b, pending := updateBird(b, true, 16, cfg, 400)
	if !pending {
		t.Error("jump should stay pending while the bird is at the ceiling")
	}
	if b.Pos.Y != 0 {
		t.Errorf("expected bird clamped to the ceiling, got %f", b.Pos.Y)
	}
}

func TestGamePause(t *testing.T) {
	g := startedGame(t, 1)

	pauseInput := core.NewInputFrame(core.ActionPause)
	g.Step(pauseInput)
	if !g.paused {
		t.Error("Game should be paused")
	}

	before := g.Fingerprint()
	g.Step(core.NewInputFrame())
	if g.Fingerprint() != before {
		t.Error("State should not change while paused")
	}

	g.Step(pauseInput)
	if g.paused {
		t.Error("Game should be unpaused")
	}
}

func TestGameOverGround(t *testing.T) {
	g := startedGame(t, 1)

	g.bird.Pos.Y = 400 - 25 - 1
	g.bird.SpeedY = 1

	result := g.Step(core.NewInputFrame())
	if !result.State.GameOver || !result.Has(core.EventGameOver) {
		t.Error("Game should be over when bird hits ground")
	}
}

func TestGameOverCeiling(t *testing.T) {
	g := startedGame(t, 1)

	g.bird.Pos.Y = 2
	g.bird.SpeedY = -1

	if result := g.Step(core.NewInputFrame()); !result.State.GameOver {
		t.Error("Game should be over when bird hits the ceiling")
	}
}

func TestPipeCollision(t *testing.T) {
	g := startedGame(t, 1)

	// A pipe reaching down to the bird's row, right at the bird
	g.pipes.obstacles = append(g.pipes.obstacles[:0], Obstacle{
		Kind:   KindPipe,
		Rect:   geom.Rect(g.bird.Pos.X+3, 0, 40, 300),
		Active: true,
	})

	result := g.Step(core.NewInputFrame())
	if !result.State.GameOver {
		t.Error("Game should be over when bird hits pipe")
	}
}

func TestTriggerScoresOnce(t *testing.T) {
	g := startedGame(t, 1)

	g.pipes.obstacles = append(g.pipes.obstacles[:0], Obstacle{
		Kind:   KindTrigger,
		Rect:   geom.Rect(g.bird.Pos.X+13, 0, 2, 400),
		Active: true,
	})

	result := g.Step(core.NewInputFrame())
	if result.State.Score != 1 || !result.Has(core.EventScored) {
		t.Fatalf("expected one point, got %d (events %v)", result.State.Score, result.Events)
	}

	result = g.Step(core.NewInputFrame())
	if result.State.Score != 1 {
		t.Errorf("trigger should score only once, got %d", result.State.Score)
	}
	if len(g.pipes.Obstacles()) != 0 {
		t.Errorf("deactivated trigger should be removed, got %d obstacles", len(g.pipes.Obstacles()))
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := startedGame(t, 1)
	g.gameOver = true

	result := g.Step(core.NewInputFrame(core.ActionRestart))
	if result.State.GameOver || !result.Has(core.EventRestarted) {
		t.Errorf("restart should reset the run, got %+v", result)
	}
	if g.started {
		t.Error("restarted run should wait for the first jump")
	}
}

func TestOrientedHitbox(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	cfg.Game.Hitbox = config.HitboxOriented
	g := NewWithConfig(cfg)

	g.bird = Bird{Pos: geom.Vec(100, 100), Width: 25, Height: 25, Rotation: 45}
	pipe := Obstacle{Kind: KindPipe, Rect: geom.Rect(105, 0, 40, 97), Active: true}

	if geom.RectanglesCollide(g.bird.Rect(), pipe.Rect) {
		t.Fatal("axis-aligned hitbox should miss the pipe")
	}
	if !g.hits(pipe) {
		t.Error("tilted hitbox should reach the pipe with its corner")
	}

	if _, ok := g.Bodies()[0].Shape.(geom.OrientedRectangle); !ok {
		t.Errorf("bird body should be oriented, got %T", g.Bodies()[0].Shape)
	}
}

func TestAutopilot(t *testing.T) {
	g := New()
	g.Reset(testRuntime(7))

	if !g.Autopilot().Has(core.ActionJump) {
		t.Fatal("autopilot should start the run")
	}

	for i := 0; i < 600 && !g.State().GameOver; i++ {
		g.Step(g.Autopilot())
	}
	if g.tickCount < 100 {
		t.Errorf("autopilot should keep the bird airborne for a while, died at tick %d", g.tickCount)
	}
}

func TestBodies(t *testing.T) {
	g := startedGame(t, 1)

	bodies := g.Bodies()
	if len(bodies) != 4 {
		t.Fatalf("expected bird and one pipe pair with trigger, got %d bodies", len(bodies))
	}
	names := []string{"bird", "pipe", "pipe", "trigger"}
	for i, b := range bodies {
		if b.Name != names[i] {
			t.Errorf("body %d: expected %s, got %s", i, names[i], b.Name)
		}
	}
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	g := New()
	if err := g.LoadConfig("testdata/does-not-exist.yaml", ""); err == nil {
		t.Error("expected error for missing config")
	}
	if err := g.LoadConfig("", config.DifficultyHard); err != nil {
		t.Fatalf("default config should load: %v", err)
	}
	if !g.Config().Difficulty.Enabled {
		t.Error("hard preset should enable difficulty progression")
	}
}
