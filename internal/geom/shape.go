package geom

import (
	"errors"
	"fmt"
)

// ErrUnsupportedPair is returned by Collide for shape pairs without a test.
var ErrUnsupportedPair = errors.New("geom: unsupported shape pair")

// Shape is implemented by the closed set of collidable primitives:
// Vector2D (a point), Line, Segment, Circle, Rectangle and OrientedRectangle.
type Shape interface {
	isShape()
}

func (Vector2D) isShape()          {}
func (Line) isShape()              {}
func (Segment) isShape()           {}
func (Circle) isShape()            {}
func (Rectangle) isShape()         {}
func (OrientedRectangle) isShape() {}

// Kind returns a short name for the concrete type of s.
func Kind(s Shape) string {
	switch s.(type) {
	case Vector2D:
		return "point"
	case Line:
		return "line"
	case Segment:
		return "segment"
	case Circle:
		return "circle"
	case Rectangle:
		return "rectangle"
	case OrientedRectangle:
		return "oriented"
	default:
		return "unknown"
	}
}

// Collide runs the collision test for the concrete pair (a, b).
// Dispatch is symmetric: Collide(a, b) and Collide(b, a) agree.
func Collide(a, b Shape) (bool, error) {
	if hit, ok := collidePair(a, b); ok {
		return hit, nil
	}
	if hit, ok := collidePair(b, a); ok {
		return hit, nil
	}
	return false, fmt.Errorf("%w: %s/%s", ErrUnsupportedPair, Kind(a), Kind(b))
}

// collidePair handles one ordering of a pair; ok is false when the ordering
// has no test.
func collidePair(a, b Shape) (hit, ok bool) {
	switch a := a.(type) {
	case Vector2D:
		switch b := b.(type) {
		case Vector2D:
			return PointsCollide(a, b), true
		case Circle:
			return PointInCircle(a, b), true
		case Rectangle:
			return PointInRectangle(a, b), true
		}
	case Line:
		if b, isLine := b.(Line); isLine {
			return LinesCollide(a, b), true
		}
	case Segment:
		if b, isSegment := b.(Segment); isSegment {
			return SegmentsCollide(a, b), true
		}
	case Circle:
		if b, isCircle := b.(Circle); isCircle {
			return CirclesCollide(a, b), true
		}
	case Rectangle:
		switch b := b.(type) {
		case Rectangle:
			return RectanglesCollide(a, b), true
		case OrientedRectangle:
			return OrientedRectanglesCollide(a.OrientedRectangle(), b), true
		}
	case OrientedRectangle:
		if b, isOriented := b.(OrientedRectangle); isOriented {
			return OrientedRectanglesCollide(a, b), true
		}
	}
	return false, false
}
