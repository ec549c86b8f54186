package geom

import "errors"

// ErrDegenerateLine is returned by NewLine for a zero direction.
var ErrDegenerateLine = errors.New("geom: line direction must be non-zero")

// Line is an infinite line through Base along Direction.
// A zero Direction is degenerate; construct lines with NewLine to reject it.
type Line struct {
	Base      Vector2D
	Direction Vector2D
}

// NewLine creates a line, rejecting a zero direction.
func NewLine(base, direction Vector2D) (Line, error) {
	if direction == Zero {
		return Line{}, ErrDegenerateLine
	}
	return Line{Base: base, Direction: direction}, nil
}

// Segment is a finite line segment. Point1 may equal Point2.
type Segment struct {
	Point1 Vector2D
	Point2 Vector2D
}

// Direction returns Point2 - Point1.
func (s Segment) Direction() Vector2D {
	return s.Point2.Sub(s.Point1)
}

// Circle is a disc with a non-negative radius.
type Circle struct {
	Center Vector2D
	Radius float64
}

// Bounds returns the axis-aligned rectangle enclosing the circle.
func (c Circle) Bounds() Rectangle {
	return Rectangle{
		Origin: Vector2D{X: c.Center.X - c.Radius, Y: c.Center.Y - c.Radius},
		Size:   Vector2D{X: 2 * c.Radius, Y: 2 * c.Radius},
	}
}

// Rectangle is an axis-aligned box. Origin is the minimum corner
// (bottom-left with y pointing up) and Size holds width and height.
type Rectangle struct {
	Origin Vector2D
	Size   Vector2D
}

// Rect creates a rectangle from its origin and size components.
func Rect(x, y, w, h float64) Rectangle {
	return Rectangle{Origin: Vector2D{X: x, Y: y}, Size: Vector2D{X: w, Y: h}}
}

// Max returns the corner opposite to Origin.
func (r Rectangle) Max() Vector2D {
	return r.Origin.Add(r.Size)
}

// Center returns the center point of the rectangle.
func (r Rectangle) Center() Vector2D {
	return r.Origin.Add(r.Size.Divide(2))
}

// OrientedRectangle returns the same rectangle as an unrotated
// OrientedRectangle.
func (r Rectangle) OrientedRectangle() OrientedRectangle {
	half := r.Size.Divide(2)
	return OrientedRectangle{Center: r.Origin.Add(half), HalfExtent: half}
}

// OrientedRectangle is a rectangle rotated around its center.
// Rotation is in degrees, counterclockwise for positive values.
type OrientedRectangle struct {
	Center     Vector2D
	HalfExtent Vector2D
	Rotation   float64
}

// Range is a 1-D interval, typically the projection of a shape onto an axis.
// Ranges must be sorted before they are used in overlap tests.
type Range struct {
	Min float64
	Max float64
}

// Sorted returns r with Min <= Max.
func (r Range) Sorted() Range {
	if r.Min > r.Max {
		return Range{Min: r.Max, Max: r.Min}
	}
	return r
}

// Hull returns the smallest range containing both r and o.
// Both ranges must be sorted.
func (r Range) Hull(o Range) Range {
	h := r
	if o.Min < h.Min {
		h.Min = o.Min
	}
	if o.Max > h.Max {
		h.Max = o.Max
	}
	return h
}

// SortRange returns r with Min <= Max.
func SortRange(r Range) Range {
	return r.Sorted()
}
