// Package config provides YAML-based simulation configuration loading,
// validation and difficulty management.
package config

import "fmt"

// WorldConfig is the size of a simulation's world in world units.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// FlappyConfig contains all configuration for the Flappy Bird simulation.
type FlappyConfig struct {
	World      WorldConfig      `yaml:"world"`
	Bird       FlappyBird       `yaml:"bird"`
	Pipe       FlappyPipe       `yaml:"pipe"`
	Game       FlappyGame       `yaml:"game"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FlappyBird defines the bird's hitbox and motion.
// Speeds are in world units per millisecond.
type FlappyBird struct {
	X            float64 `yaml:"x"`
	Y            float64 `yaml:"y"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	FallingConst float64 `yaml:"falling_const"` // Downward acceleration per ms
	JumpSpeed    float64 `yaml:"jump_speed"`    // Vertical speed set by a jump (negative = up)
	MaxTilt      float64 `yaml:"max_tilt"`      // Degrees
	TiltStep     float64 `yaml:"tilt_step"`     // Degrees per tick while not jumping
}

// FlappyPipe defines pipe spawning and movement.
type FlappyPipe struct {
	Width               float64 `yaml:"width"`
	Buffer              float64 `yaml:"buffer"`   // Height of the gap between top and bottom pipe
	Speed               float64 `yaml:"speed"`    // World units per tick
	Interval            float64 `yaml:"interval"` // Milliseconds between spawns
	MinDistanceToBorder float64 `yaml:"min_distance_to_border"`
	TriggerWidth        float64 `yaml:"trigger_width"`
}

// FlappyGame defines rule switches.
type FlappyGame struct {
	Hitbox string `yaml:"hitbox"` // "aabb" or "oriented"
}

// Hitbox modes for FlappyGame.Hitbox.
const (
	HitboxAABB     = "aabb"
	HitboxOriented = "oriented"
)

// BreakoutConfig contains all configuration for the Breakout simulation.
type BreakoutConfig struct {
	World      WorldConfig      `yaml:"world"`
	Paddle     BreakoutPaddle   `yaml:"paddle"`
	Ball       BreakoutBall     `yaml:"ball"`
	Bricks     BreakoutBricks   `yaml:"bricks"`
	Gameplay   BreakoutGameplay `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BreakoutPaddle defines the paddle size and movement.
type BreakoutPaddle struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Y      float64 `yaml:"y"`     // Distance of the paddle's bottom edge from the floor
	Speed  float64 `yaml:"speed"` // World units per tick
}

// BreakoutBall defines the ball.
type BreakoutBall struct {
	Radius   float64 `yaml:"radius"`
	Speed    float64 `yaml:"speed"` // World units per tick
	MaxSpeed float64 `yaml:"max_speed"`
}

// BreakoutBricks defines the brick field.
type BreakoutBricks struct {
	Level  string   `yaml:"level"`  // Built-in layout ID
	Layout []string `yaml:"layout"` // Custom ASCII layout, overrides Level
	Height float64  `yaml:"height"`
	Gap    float64  `yaml:"gap"`
	Top    float64  `yaml:"top"` // Distance of the first row from the ceiling
}

// BreakoutGameplay defines rules.
type BreakoutGameplay struct {
	Lives         int     `yaml:"lives"`
	MaxDeflection float64 `yaml:"max_deflection"` // Degrees from vertical at the paddle's edge
	Bounce        string  `yaml:"bounce"`         // "edge" or "penetration"
	ServeDelay    int     `yaml:"serve_delay"`    // Ticks before a serve is allowed after a miss
}

// Bounce modes for BreakoutGameplay.Bounce.
const (
	BounceEdge        = "edge"
	BouncePenetration = "penetration"
)

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // Multiplier added to speed at max difficulty
	GapReduction      float64 `yaml:"gap_reduction"`      // Gap size reduction at max difficulty
	IntervalReduction float64 `yaml:"interval_reduction"` // Spawn interval reduction (ms) at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset. The empty string is accepted
// and means "leave the loaded config alone".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty preset %q", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
