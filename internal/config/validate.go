package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

func invalid(format string, args ...any) error {
	return fmt.Errorf("config: %w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

func (w WorldConfig) validate() error {
	if w.Width <= 0 || w.Height <= 0 {
		return invalid("world size must be positive, got %vx%v", w.Width, w.Height)
	}
	return nil
}

// Validate reports the first invalid field of the flappy config.
func (c FlappyConfig) Validate() error {
	if err := c.World.validate(); err != nil {
		return err
	}
	if c.Bird.Width <= 0 || c.Bird.Height <= 0 {
		return invalid("bird size must be positive, got %vx%v", c.Bird.Width, c.Bird.Height)
	}
	if c.Bird.Height >= c.World.Height {
		return invalid("bird height %v does not fit world height %v", c.Bird.Height, c.World.Height)
	}
	if c.Pipe.Width <= 0 {
		return invalid("pipe width must be positive, got %v", c.Pipe.Width)
	}
	if c.Pipe.Speed <= 0 {
		return invalid("pipe speed must be positive, got %v", c.Pipe.Speed)
	}
	if c.Pipe.Interval <= 0 {
		return invalid("pipe interval must be positive, got %v", c.Pipe.Interval)
	}
	if c.Pipe.TriggerWidth <= 0 {
		return invalid("trigger width must be positive, got %v", c.Pipe.TriggerWidth)
	}
	if c.Pipe.Buffer <= 0 || c.Pipe.Buffer+2*c.Pipe.MinDistanceToBorder > c.World.Height {
		return invalid("pipe gap %v with border %v does not fit world height %v",
			c.Pipe.Buffer, c.Pipe.MinDistanceToBorder, c.World.Height)
	}
	switch c.Game.Hitbox {
	case HitboxAABB, HitboxOriented:
	default:
		return invalid("unknown hitbox mode %q", c.Game.Hitbox)
	}
	return c.Difficulty.validate()
}

// Validate reports the first invalid field of the breakout config.
func (c BreakoutConfig) Validate() error {
	if err := c.World.validate(); err != nil {
		return err
	}
	if c.Paddle.Width <= 0 || c.Paddle.Height <= 0 {
		return invalid("paddle size must be positive, got %vx%v", c.Paddle.Width, c.Paddle.Height)
	}
	if c.Paddle.Width >= c.World.Width {
		return invalid("paddle width %v does not fit world width %v", c.Paddle.Width, c.World.Width)
	}
	if c.Paddle.Speed <= 0 {
		return invalid("paddle speed must be positive, got %v", c.Paddle.Speed)
	}
	if c.Ball.Radius <= 0 {
		return invalid("ball radius must be positive, got %v", c.Ball.Radius)
	}
	if c.Ball.Speed <= 0 {
		return invalid("ball speed must be positive, got %v", c.Ball.Speed)
	}
	if c.Ball.MaxSpeed < c.Ball.Speed {
		return invalid("ball max speed %v is below speed %v", c.Ball.MaxSpeed, c.Ball.Speed)
	}
	// A faster ball can land inside a brick in one move without crossing its edges.
	if c.Ball.MaxSpeed > 2*c.Ball.Radius {
		return invalid("ball max speed %v exceeds ball diameter %v", c.Ball.MaxSpeed, 2*c.Ball.Radius)
	}
	if c.Bricks.Level == "" && len(c.Bricks.Layout) == 0 {
		return invalid("bricks need a level or a layout")
	}
	if c.Bricks.Height <= 0 || c.Bricks.Gap < 0 {
		return invalid("brick height %v and gap %v", c.Bricks.Height, c.Bricks.Gap)
	}
	if c.Gameplay.Lives <= 0 {
		return invalid("lives must be positive, got %d", c.Gameplay.Lives)
	}
	if c.Gameplay.MaxDeflection <= 0 || c.Gameplay.MaxDeflection >= 90 {
		return invalid("max deflection must be in (0, 90), got %v", c.Gameplay.MaxDeflection)
	}
	switch c.Gameplay.Bounce {
	case BounceEdge, BouncePenetration:
	default:
		return invalid("unknown bounce mode %q", c.Gameplay.Bounce)
	}
	return c.Difficulty.validate()
}

func (d DifficultyConfig) validate() error {
	if d.InitialLevel < 0 || d.InitialLevel > 1 {
		return invalid("difficulty initial level must be in [0, 1], got %v", d.InitialLevel)
	}
	switch d.Progression.Type {
	case "score", "time", "none", "":
	default:
		return invalid("unknown progression type %q", d.Progression.Type)
	}
	return nil
}
