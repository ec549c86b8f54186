package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDifficultyDisabledKeepsBase(t *testing.T) {
	d := NewDifficultyManager(DefaultFlappyConfig().Difficulty)

	assert.False(t, d.IsEnabled())
	assert.Equal(t, 3.0, d.Speed(3, 100, 1000))
	assert.Equal(t, 90.0, d.GapSize(90, 40, 100, 1000))
	assert.Equal(t, 1500.0, d.Interval(1500, 500, 100, 1000))
}

func TestDifficultyScoreProgression(t *testing.T) {
	cfg := DefaultFlappyConfig().Difficulty
	cfg.Enabled = true
	d := NewDifficultyManager(cfg)

	assert.InDelta(t, 0.0, d.Level(0, 0), 1e-9)
	assert.InDelta(t, 0.5, d.Level(25, 0), 1e-9)
	assert.InDelta(t, 1.0, d.Level(500, 0), 1e-9, "level is clamped")

	assert.InDelta(t, 6.0, d.Speed(3, 50, 0), 1e-9)
	assert.InDelta(t, 70.0, d.GapSize(90, 40, 50, 0), 1e-9)
	assert.InDelta(t, 80.0, d.GapSize(90, 80, 50, 0), 1e-9, "gap never drops below the minimum")
	assert.InDelta(t, 1000.0, d.Interval(1500, 500, 50, 0), 1e-9)
}

func TestDifficultyTimeProgression(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 100},
	})

	assert.InDelta(t, 0.5, d.Level(999, 0), 1e-9)
	assert.InDelta(t, 0.75, d.Level(0, 50), 1e-9)

	d.SetInitialLevel(2)
	assert.InDelta(t, 1.0, d.Level(0, 0), 1e-9)

	d.SetEnabled(false)
	assert.False(t, d.IsEnabled())
}
