package breakout

import (
	"math"

	"github.com/vovakirdan/collide/internal/config"
	"github.com/vovakirdan/collide/internal/core"
	"github.com/vovakirdan/collide/internal/geom"
)

// Ball is the ball state. Dir is a unit vector; the ball travels
// Speed world units along it per tick.
type Ball struct {
	Body  geom.Circle
	Dir   geom.Vector2D
	Speed float64
	Stuck bool // Resting on the paddle, waiting to be served
}

// Bounds returns the ball's collision rectangle.
func (b Ball) Bounds() geom.Rectangle {
	return b.Body.Bounds()
}

// moveBall advances the ball one tick along its direction.
func moveBall(b Ball) Ball {
	b.Body.Center = b.Body.Center.Add(b.Dir.Multiply(b.Speed))
	return b
}

// Paddle is the player's paddle.
type Paddle struct {
	Rect geom.Rectangle
}

// CenterX returns the paddle's horizontal center.
func (p Paddle) CenterX() float64 {
	return p.Rect.Center().X
}

// Top returns the y coordinate of the paddle's upper edge.
func (p Paddle) Top() float64 {
	return p.Rect.Max().Y
}

// movePaddle moves the paddle by dx and keeps it inside the world.
func movePaddle(p Paddle, dx, worldW float64) Paddle {
	p.Rect.Origin.X = core.ClampF(p.Rect.Origin.X+dx, 0, worldW-p.Rect.Size.X)
	return p
}

// restOnPaddle places a stuck ball on top of the paddle's center.
func restOnPaddle(b Ball, p Paddle) Ball {
	b.Body.Center = geom.Vec(p.CenterX(), p.Top()+b.Body.Radius)
	return b
}

// bounceWalls reflects the ball off the side walls and the ceiling and
// pushes it back inside the world. It reports whether a wall was hit.
func bounceWalls(b Ball, world config.WorldConfig) (Ball, bool) {
	r := b.Body.Radius
	c := b.Body.Center
	hit := false

	if c.X-r <= 0 && b.Dir.X < 0 {
		c.X = r
		b.Dir.X = -b.Dir.X
		hit = true
	}
	if c.X+r >= world.Width && b.Dir.X > 0 {
		c.X = world.Width - r
		b.Dir.X = -b.Dir.X
		hit = true
	}
	if c.Y+r >= world.Height && b.Dir.Y > 0 {
		c.Y = world.Height - r
		b.Dir.Y = -b.Dir.Y
		hit = true
	}

	b.Body.Center = c
	return b, hit
}

// fellOff reports whether the ball has dropped completely below the floor.
func fellOff(b Ball) bool {
	return b.Body.Center.Y+b.Body.Radius < 0
}

// deflect sends the ball upward off the paddle. The angle from vertical
// grows linearly with the distance of the hit from the paddle's center,
// reaching maxDeflection degrees at the edges.
func deflect(b Ball, p Paddle, maxDeflection float64) Ball {
	half := p.Rect.Size.X / 2
	hit := core.ClampF((b.Body.Center.X-p.CenterX())/half, -1, 1)

	b.Dir = geom.Vec(0, 1).Rotate(-hit * maxDeflection)
	b.Body.Center.Y = p.Top() + b.Body.Radius
	return b
}

// hitsPaddle reports whether a descending ball touches the paddle.
func hitsPaddle(b Ball, p Paddle) bool {
	return b.Dir.Y < 0 && geom.RectanglesCollide(b.Bounds(), p.Rect)
}

// serveDirection returns the launch direction for a serve, tilted from
// vertical by spread (in [-1, 1]) times half the maximum deflection.
func serveDirection(spread, maxDeflection float64) geom.Vector2D {
	return geom.Vec(0, 1).Rotate(-spread * maxDeflection / 2)
}

// reflect bounces dir off a brick with the configured strategy. An edge
// bounce that changes nothing falls back to the penetration test.
func reflect(dir geom.Vector2D, ball, brick geom.Rectangle, mode string) geom.Vector2D {
	if mode == config.BouncePenetration {
		return geom.BounceByPenetration(dir, ball, brick)
	}
	out := geom.Bounce(dir, ball, brick)
	if out == dir {
		// Ball sits strictly inside the brick: no edge was crossed.
		out = geom.BounceByPenetration(dir, ball, brick)
	}
	return out
}

// ballSpeed returns the current speed scaled by difficulty and capped.
func ballSpeed(d *config.DifficultyManager, cfg config.BreakoutBall, score, ticks int) float64 {
	return math.Min(d.Speed(cfg.Speed, score, ticks), cfg.MaxSpeed)
}
