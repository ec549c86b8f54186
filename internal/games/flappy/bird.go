package flappy

import (
	"github.com/vovakirdan/collide/internal/config"
	"github.com/vovakirdan/collide/internal/core"
	"github.com/vovakirdan/collide/internal/geom"
)

// Bird is the player. Position is the top-left corner in y-down world
// coordinates; SpeedY is in world units per millisecond.
type Bird struct {
	Pos      geom.Vector2D
	Width    float64
	Height   float64
	SpeedY   float64
	Rotation float64 // Degrees, negative while climbing
}

// newBird places a bird at its configured start position.
func newBird(cfg config.FlappyBird) Bird {
	return Bird{
		Pos:    geom.Vec(cfg.X, cfg.Y),
		Width:  cfg.Width,
		Height: cfg.Height,
	}
}

// Rect returns the bird's axis-aligned hitbox.
func (b Bird) Rect() geom.Rectangle {
	return geom.Rectangle{Origin: b.Pos, Size: geom.Vec(b.Width, b.Height)}
}

// Oriented returns the hitbox rotated by the bird's tilt.
func (b Bird) Oriented() geom.OrientedRectangle {
	o := b.Rect().OrientedRectangle()
	o.Rotation = b.Rotation
	return o
}

// Bottom returns the y coordinate of the bird's lower edge.
func (b Bird) Bottom() float64 {
	return b.Pos.Y + b.Height
}

// updateBird advances the bird by dt milliseconds. A pending jump is applied
// unless the bird is pressed against the ceiling, in which case it stays
// pending; the returned flag reports whether it is still pending.
func updateBird(b Bird, jumping bool, dt float64, cfg config.FlappyBird, worldH float64) (Bird, bool) {
	y := core.ClampF(b.Pos.Y+b.SpeedY*dt, 0, worldH-b.Height)

	if jumping && y > 0 {
		jumping = false
		b.SpeedY = cfg.JumpSpeed
		b.Rotation = -cfg.MaxTilt
	} else if b.Rotation < cfg.MaxTilt {
		b.Rotation = min(b.Rotation+cfg.TiltStep, cfg.MaxTilt)
	}

	b.Pos.Y = y
	b.SpeedY += cfg.FallingConst * dt
	return b, jumping
}

// hitsBorder reports whether the bird touches the ceiling or the ground.
func hitsBorder(b Bird, worldH float64) bool {
	return b.Pos.Y <= 0 || b.Bottom() >= worldH
}
