// Package core provides the runtime types shared by the simulations.
// It holds no simulation logic, keeping games pure and testable.
package core

import "github.com/vovakirdan/collide/internal/geom"

// Body is a named collidable shape exposed by a simulation.
type Body struct {
	Name  string
	Shape geom.Shape
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
