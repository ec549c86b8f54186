package flappy

import (
	"math/rand"

	"github.com/vovakirdan/collide/internal/config"
	"github.com/vovakirdan/collide/internal/geom"
)

// ObstacleKind distinguishes pipes from score triggers.
type ObstacleKind int

const (
	KindPipe    ObstacleKind = iota // Ends the run on contact
	KindTrigger                     // Scores once on contact
)

// String returns the kind's body name.
func (k ObstacleKind) String() string {
	if k == KindTrigger {
		return "trigger"
	}
	return "pipe"
}

// Obstacle is a pipe section or the score trigger filling the gap between
// a pipe pair.
type Obstacle struct {
	Kind   ObstacleKind
	Rect   geom.Rectangle
	Gap    geom.Range // Vertical extent of the gap this obstacle belongs to
	Active bool
}

// PipeManager handles spawning, movement, and removal of obstacles.
type PipeManager struct {
	obstacles []Obstacle
	rng       *rand.Rand
	draws     int // RNG values consumed, part of the fingerprint
	removed   int // Obstacles removed since reset
	cfg       config.FlappyPipe
	world     config.WorldConfig
}

// NewPipeManager creates a new pipe manager with the given RNG seed.
func NewPipeManager(seed int64, cfg config.FlappyPipe, world config.WorldConfig) *PipeManager {
	pm := &PipeManager{
		obstacles: make([]Obstacle, 0, 16),
		cfg:       cfg,
		world:     world,
	}
	pm.Reset(seed)
	return pm
}

// Reset clears all obstacles and reseeds the RNG.
func (pm *PipeManager) Reset(seed int64) {
	pm.obstacles = pm.obstacles[:0]
	pm.rng = rand.New(rand.NewSource(seed)) //#nosec G404 -- deterministic simulation RNG
	pm.draws = 0
	pm.removed = 0
}

// GapTop picks the height of the top pipe for a gap of the given size.
// The gap keeps at least MinDistanceToBorder from the ceiling and the ground.
func (pm *PipeManager) GapTop(gap float64) float64 {
	pm.draws++
	random := float64(int(pm.rng.Float64() * (pm.world.Height - gap)))
	return gapTop(random, gap, pm.cfg.MinDistanceToBorder, pm.world.Height)
}

func gapTop(random, gap, minBorder, worldH float64) float64 {
	return min(max(minBorder, random), worldH-minBorder-gap)
}

// Spawn adds a pipe pair with a gap of the given size at the right edge of
// the world, followed by the score trigger spanning the gap.
func (pm *PipeManager) Spawn(gap float64) {
	h := pm.world.Height
	top := pm.GapTop(gap)
	bottom := h - top - gap
	gapRange := geom.Range{Min: top, Max: top + gap}
	pipeX := pm.world.Width - pm.cfg.Width

	pm.obstacles = append(pm.obstacles,
		Obstacle{
			Kind:   KindPipe,
			Rect:   geom.Rect(pipeX, 0, pm.cfg.Width, top),
			Gap:    gapRange,
			Active: true,
		},
		Obstacle{
			Kind:   KindPipe,
			Rect:   geom.Rect(pipeX, h-bottom, pm.cfg.Width, bottom),
			Gap:    gapRange,
			Active: true,
		},
		Obstacle{
			Kind:   KindTrigger,
			Rect:   geom.Rect(pm.world.Width, top, pm.cfg.TriggerWidth, h-top-bottom),
			Gap:    gapRange,
			Active: true,
		},
	)
}

// Update moves every obstacle left by speed. Inactive obstacles and those
// that have left the world are dropped in the same pass, compacting the
// slice in place so the survivors keep their order.
func (pm *PipeManager) Update(speed float64) {
	kept := pm.obstacles[:0]
	for _, o := range pm.obstacles {
		x := o.Rect.Origin.X - speed
		if !o.Active || x+pm.cfg.Width <= 0 {
			pm.removed++
			continue
		}
		o.Rect.Origin.X = x
		kept = append(kept, o)
	}
	pm.obstacles = kept
}

// Obstacles returns the current obstacles, oldest first.
func (pm *PipeManager) Obstacles() []Obstacle {
	return pm.obstacles
}

// Deactivate marks obstacle i; it is removed by the next Update.
func (pm *PipeManager) Deactivate(i int) {
	pm.obstacles[i].Active = false
}

// NextGap returns the gap of the first pipe whose right edge has not passed x.
func (pm *PipeManager) NextGap(x float64) (geom.Range, bool) {
	for _, o := range pm.obstacles {
		if o.Kind == KindPipe && o.Rect.Max().X >= x {
			return o.Gap, true
		}
	}
	return geom.Range{}, false
}
