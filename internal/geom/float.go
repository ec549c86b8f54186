// Package geom provides 2D vector algebra, geometric primitives and collision
// tests, up to a separating-axis test for oriented rectangles.
// All types are plain values and every function is pure, so the package is
// safe for concurrent use without locking.
package geom

import "math"

// Epsilon is the absolute tolerance used by all float comparisons.
const Epsilon = 1.0 / 8192.0

// EqualFloats reports whether a and b differ by less than Epsilon.
// The relation is symmetric but not transitive.
func EqualFloats(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// DegreesToRadian converts an angle in degrees to radians.
func DegreesToRadian(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}

// RadianToDegrees converts an angle in radians to degrees.
func RadianToDegrees(radian float64) float64 {
	return radian * 180.0 / math.Pi
}
