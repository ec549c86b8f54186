// Package breakout implements a headless Breakout simulation.
// A ball bounces between the walls, a paddle and a field of bricks; the
// world uses y-up coordinates with the floor at y=0.
package breakout

import (
	"github.com/vovakirdan/collide/internal/config"
	"github.com/vovakirdan/collide/internal/geom"
)

// BrickType represents different types of bricks.
type BrickType int

const (
	BrickEmpty  BrickType = iota // No brick
	BrickNormal                  // Standard brick, destroyed in one hit
	BrickHard                    // Requires 2 hits to destroy
	BrickSolid                   // Indestructible
)

// Brick is a single brick placed in the world.
type Brick struct {
	Type   BrickType
	Points int  // Points awarded when destroyed
	HP     int  // Hit points remaining
	Alive  bool // Cleared when destroyed; removed at the end of the tick
	Row    int
	Col    int
	Rect   geom.Rectangle
}

// Destroyable reports whether the brick counts toward clearing the level.
func (b Brick) Destroyable() bool {
	return b.Type == BrickNormal || b.Type == BrickHard
}

// Level is a brick layout parsed from an ASCII map.
type Level struct {
	ID     string
	Name   string
	Width  int       // Number of brick columns
	Height int       // Number of brick rows
	Bricks [][]Brick // 2D grid of bricks [row][col]
}

// ParseLevel creates a Level from an ASCII map.
// Characters:
//
//	'#' = normal brick (10 points)
//	'.' = empty
//	'1'-'9' = brick with custom points (10 * digit)
//	'H' = hard brick (2 HP, 20 points)
//	'X' = solid/indestructible brick (0 points)
func ParseLevel(id, name string, lines []string) *Level {
	if len(lines) == 0 {
		return &Level{ID: id, Name: name}
	}

	maxWidth := 0
	for _, line := range lines {
		maxWidth = max(maxWidth, len(line))
	}

	level := &Level{
		ID:     id,
		Name:   name,
		Width:  maxWidth,
		Height: len(lines),
		Bricks: make([][]Brick, len(lines)),
	}

	for row, line := range lines {
		level.Bricks[row] = make([]Brick, maxWidth)
		for col := 0; col < maxWidth; col++ {
			var ch byte = '.'
			if col < len(line) {
				ch = line[col]
			}
			level.Bricks[row][col] = parseBrick(ch)
		}
	}

	return level
}

func parseBrick(ch byte) Brick {
	switch {
	case ch == '#':
		return Brick{Type: BrickNormal, Points: 10, Alive: true, HP: 1}
	case ch >= '1' && ch <= '9':
		return Brick{Type: BrickNormal, Points: int(ch-'0') * 10, Alive: true, HP: 1}
	case ch == 'H' || ch == 'h':
		return Brick{Type: BrickHard, Points: 20, Alive: true, HP: 2}
	case ch == 'X' || ch == 'x':
		return Brick{Type: BrickSolid, Alive: true, HP: 1}
	default:
		return Brick{Type: BrickEmpty}
	}
}

// Place lays the level out below the ceiling of the world and returns its
// bricks row by row, top row first. Columns share the world width evenly
// with cfg.Gap between neighbours and walls.
func (l *Level) Place(world config.WorldConfig, cfg config.BreakoutBricks) []Brick {
	if l.Width == 0 {
		return nil
	}

	w := (world.Width - cfg.Gap*float64(l.Width+1)) / float64(l.Width)
	bricks := make([]Brick, 0, l.Width*l.Height)
	for row := 0; row < l.Height; row++ {
		top := world.Height - cfg.Top - float64(row)*(cfg.Height+cfg.Gap)
		for col := 0; col < l.Width; col++ {
			b := l.Bricks[row][col]
			if b.Type == BrickEmpty {
				continue
			}
			b.Row = row
			b.Col = col
			b.Rect = geom.Rect(cfg.Gap+float64(col)*(w+cfg.Gap), top-cfg.Height, w, cfg.Height)
			bricks = append(bricks, b)
		}
	}
	return bricks
}

// BuiltinLevels returns all built-in levels.
func BuiltinLevels() []*Level {
	return []*Level{
		ParseLevel("classic", "Classic", []string{
			"##########",
			"##########",
			"##########",
			"##########",
			"##########",
		}),

		ParseLevel("pyramid", "Pyramid", []string{
			"....##....",
			"...####...",
			"..######..",
			".########.",
			"##########",
		}),

		ParseLevel("checker", "Checkerboard", []string{
			"#.#.#.#.#.",
			".#.#.#.#.#",
			"#.#.#.#.#.",
			".#.#.#.#.#",
		}),

		ParseLevel("fortress", "Fortress", []string{
			"HHHHHHHHHH",
			"H.######.H",
			"H.######.H",
			"H........H",
			"HHHHHHHHHH",
		}),

		ParseLevel("castle", "Castle", []string{
			"X.X....X.X",
			"XXX....XXX",
			"..........",
			"5555555555",
			"##########",
		}),
	}
}

// GetLevelByID returns a level by its ID.
func GetLevelByID(id string) (*Level, bool) {
	for _, level := range BuiltinLevels() {
		if level.ID == id {
			return level, true
		}
	}
	return nil, false
}
