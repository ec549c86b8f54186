package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultFlappyConfig returns the default Flappy Bird configuration.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		World: WorldConfig{
			Width:  800,
			Height: 400,
		},
		Bird: FlappyBird{
			X:            100,
			Y:            100,
			Width:        25,
			Height:       25,
			FallingConst: 0.0005,
			JumpSpeed:    -0.25,
			MaxTilt:      30,
			TiltStep:     1.5,
		},
		Pipe: FlappyPipe{
			Width:               40,
			Buffer:              90,
			Speed:               3,
			Interval:            1500,
			MinDistanceToBorder: 35,
			TriggerWidth:        2,
		},
		Game: FlappyGame{
			Hitbox: HitboxAABB,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 50,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   1.0,
				GapReduction:      20,
				IntervalReduction: 500,
			},
		},
	}
}

// DefaultBreakoutConfig returns the default Breakout configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		World: WorldConfig{
			Width:  400,
			Height: 400,
		},
		Paddle: BreakoutPaddle{
			Width:  50,
			Height: 5,
			Y:      10,
			Speed:  6,
		},
		Ball: BreakoutBall{
			Radius:   4,
			Speed:    4,
			MaxSpeed: 8,
		},
		Bricks: BreakoutBricks{
			Level:  "classic",
			Height: 10,
			Gap:    2,
			Top:    40,
		},
		Gameplay: BreakoutGameplay{
			Lives:         3,
			MaxDeflection: 60,
			Bounce:        BounceEdge,
			ServeDelay:    30,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 1000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a simulation.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "flappy":
		return defaultFlappyYAML
	case "breakout":
		return defaultBreakoutYAML
	default:
		return nil
	}
}
