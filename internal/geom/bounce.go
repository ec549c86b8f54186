package geom

// Bounce reflects dir after the rectangle mover struck obstacle.
//
// The x component is inverted when mover reaches or passes the left or right
// edge of obstacle, and the y component when it reaches or passes the bottom
// or top edge. The comparisons are inclusive and use raw coordinates. A corner
// hit inverts both components, sending the mover back along its path.
func Bounce(dir Vector2D, mover, obstacle Rectangle) Vector2D {
	mMax := mover.Max()
	oMax := obstacle.Max()

	out := dir
	if mover.Origin.X <= obstacle.Origin.X || mMax.X >= oMax.X {
		out.X = -out.X
	}
	if mover.Origin.Y <= obstacle.Origin.Y || mMax.Y >= oMax.Y {
		out.Y = -out.Y
	}
	return out
}

// BounceByPenetration reflects dir along the axis of least overlap between
// mover and obstacle. Equal overlaps invert both components. Rectangles that
// do not overlap leave dir unchanged.
func BounceByPenetration(dir Vector2D, mover, obstacle Rectangle) Vector2D {
	if !RectanglesCollide(mover, obstacle) {
		return dir
	}

	mMax := mover.Max()
	oMax := obstacle.Max()
	overlapX := min(mMax.X, oMax.X) - max(mover.Origin.X, obstacle.Origin.X)
	overlapY := min(mMax.Y, oMax.Y) - max(mover.Origin.Y, obstacle.Origin.Y)

	out := dir
	switch {
	case EqualFloats(overlapX, overlapY):
		out = out.Negate()
	case overlapX < overlapY:
		out.X = -out.X
	default:
		out.Y = -out.Y
	}
	return out
}
