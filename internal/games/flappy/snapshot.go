package flappy

import "github.com/vovakirdan/collide/internal/core"

// Snapshot contains the complete simulation state for determinism checks.
type Snapshot struct {
	Tick      int
	Score     int
	Started   bool
	GameOver  bool
	Paused    bool
	Jumping   bool
	PipeTime  float64
	Bird      Bird
	Obstacles []Obstacle
	RNGDraws  int
	Removed   int
}

// Snapshot returns the current simulation state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	obstacles := make([]Obstacle, len(g.pipes.Obstacles()))
	copy(obstacles, g.pipes.Obstacles())

	return Snapshot{
		Tick:      g.tickCount,
		Score:     g.score,
		Started:   g.started,
		GameOver:  g.gameOver,
		Paused:    g.paused,
		Jumping:   g.jumping,
		PipeTime:  g.pipeTime,
		Bird:      g.bird,
		Obstacles: obstacles,
		RNGDraws:  g.pipes.draws,
		Removed:   g.pipes.removed,
	}
}

// Hash returns an xxhash of the snapshot.
func (snap *Snapshot) Hash() uint64 {
	f := core.NewFingerprint().
		Int(snap.Tick).
		Int(snap.Score).
		Bool(snap.Started).
		Bool(snap.GameOver).
		Bool(snap.Paused).
		Bool(snap.Jumping).
		Float(snap.PipeTime).
		Float(snap.Bird.Pos.X).
		Float(snap.Bird.Pos.Y).
		Float(snap.Bird.SpeedY).
		Float(snap.Bird.Rotation).
		Int(snap.RNGDraws).
		Int(snap.Removed).
		Int(len(snap.Obstacles))

	for _, o := range snap.Obstacles {
		f.Int(int(o.Kind)).
			Float(o.Rect.Origin.X).
			Float(o.Rect.Origin.Y).
			Float(o.Rect.Size.X).
			Float(o.Rect.Size.Y).
			Bool(o.Active)
	}

	return f.Sum64()
}

// Fingerprint returns the hash of the current state.
func (g *Game) Fingerprint() uint64 {
	snap := g.Snapshot()
	return snap.Hash()
}
