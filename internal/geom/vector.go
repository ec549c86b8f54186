package geom

import (
	"fmt"
	"math"
)

// Vector2D is a point or a direction in the plane.
type Vector2D struct {
	X, Y float64
}

// Vec creates a vector from its components.
func Vec(x, y float64) Vector2D {
	return Vector2D{X: x, Y: y}
}

// Zero is the vector (0, 0). Operations that cannot produce a direction
// return it, so a zero result means "pointing nowhere".
var Zero = Vector2D{}

// String implements fmt.Stringer.
func (v Vector2D) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

// Add returns v + o.
func (v Vector2D) Add(o Vector2D) Vector2D {
	return Vector2D{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vector2D) Sub(o Vector2D) Vector2D {
	return Vector2D{X: v.X - o.X, Y: v.Y - o.Y}
}

// Negate returns -v.
func (v Vector2D) Negate() Vector2D {
	return Vector2D{X: -v.X, Y: -v.Y}
}

// Multiply scales v by s.
func (v Vector2D) Multiply(s float64) Vector2D {
	return Vector2D{X: v.X * s, Y: v.Y * s}
}

// Divide divides v by divisor. Division by zero yields the zero vector.
func (v Vector2D) Divide(divisor float64) Vector2D {
	if divisor == 0 {
		return Zero
	}
	return Vector2D{X: v.X / divisor, Y: v.Y / divisor}
}

// Length returns the euclidean length of v.
func (v Vector2D) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Unit returns v scaled to length 1. The zero vector is returned unchanged.
func (v Vector2D) Unit() Vector2D {
	length := v.Length()
	if length > 0 {
		return v.Divide(length)
	}
	return v
}

// Rotate rotates v by degrees, counterclockwise for positive values.
func (v Vector2D) Rotate(degrees float64) Vector2D {
	rad := DegreesToRadian(degrees)
	sine, cosine := math.Sincos(rad)
	return Vector2D{
		X: v.X*cosine - v.Y*sine,
		Y: v.X*sine + v.Y*cosine,
	}
}

// Rotate90 rotates v by exactly 90 degrees counterclockwise.
func (v Vector2D) Rotate90() Vector2D {
	return Vector2D{X: -v.Y, Y: v.X}
}

// Dot returns the dot product of v and o.
func (v Vector2D) Dot(o Vector2D) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Equal reports whether both components are equal within Epsilon.
func (v Vector2D) Equal(o Vector2D) bool {
	return EqualFloats(v.X, o.X) && EqualFloats(v.Y, o.Y)
}

// EnclosedAngle returns the angle between v and o in degrees, in [0, 180].
// The result is NaN when either vector is zero; callers must guard.
func (v Vector2D) EnclosedAngle(o Vector2D) float64 {
	ua := v.Unit()
	ub := o.Unit()
	if ua == Zero || ub == Zero {
		return math.NaN()
	}
	// rounding can push the dot product of unit vectors just past ±1
	dp := math.Max(-1, math.Min(1, ua.Dot(ub)))
	return RadianToDegrees(math.Acos(dp))
}

// Project projects v onto onto. Projecting onto the zero vector returns onto.
func (v Vector2D) Project(onto Vector2D) Vector2D {
	d := onto.Dot(onto)
	if d > 0 {
		return onto.Multiply(v.Dot(onto) / d)
	}
	return onto
}

// EqualVectors reports whether a and b are equal within Epsilon.
func EqualVectors(a, b Vector2D) bool {
	return a.Equal(b)
}
