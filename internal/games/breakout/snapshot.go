package breakout

import "github.com/vovakirdan/collide/internal/core"

// Snapshot contains the complete simulation state for determinism checks.
type Snapshot struct {
	Tick       int
	State      string
	Score      int
	Lives      int
	ServeDelay int
	PaddleHits int
	RNGDraws   int
	Paddle     Paddle
	Ball       Ball
	Bricks     []Brick
}

// Snapshot returns the current simulation state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	bricks := make([]Brick, len(g.bricks))
	copy(bricks, g.bricks)

	return Snapshot{
		Tick:       g.tickCount,
		State:      g.state,
		Score:      g.score,
		Lives:      g.lives,
		ServeDelay: g.serveDelay,
		PaddleHits: g.paddleHits,
		RNGDraws:   g.draws,
		Paddle:     g.paddle,
		Ball:       g.ball,
		Bricks:     bricks,
	}
}

// Hash returns an xxhash of the snapshot.
func (snap *Snapshot) Hash() uint64 {
	f := core.NewFingerprint().
		Int(snap.Tick).
		String(snap.State).
		Int(snap.Score).
		Int(snap.Lives).
		Int(snap.ServeDelay).
		Int(snap.PaddleHits).
		Int(snap.RNGDraws).
		Float(snap.Paddle.Rect.Origin.X).
		Float(snap.Paddle.Rect.Origin.Y).
		Float(snap.Paddle.Rect.Size.X).
		Float(snap.Ball.Body.Center.X).
		Float(snap.Ball.Body.Center.Y).
		Float(snap.Ball.Dir.X).
		Float(snap.Ball.Dir.Y).
		Float(snap.Ball.Speed).
		Bool(snap.Ball.Stuck).
		Int(len(snap.Bricks))

	for _, b := range snap.Bricks {
		f.Int(b.Row).Int(b.Col).Int(b.HP).Bool(b.Alive)
	}

	return f.Sum64()
}

// Fingerprint returns the hash of the current state.
func (g *Game) Fingerprint() uint64 {
	snap := g.Snapshot()
	return snap.Hash()
}
