package geom

// OrientedRectangleEdge returns edge n (taken modulo 4) of r: 0 top, 1 right,
// 2 bottom, 3 left, in the rectangle's local frame. Edges 0 and 2 are
// parallel, as are 1 and 3.
func OrientedRectangleEdge(r OrientedRectangle, n int) Segment {
	a := r.HalfExtent
	b := r.HalfExtent

	switch ((n % 4) + 4) % 4 {
	case 0:
		a.X = -a.X
	case 1:
		b.Y = -b.Y
	case 2:
		a.Y = -a.Y
		b = b.Negate()
	default:
		a = a.Negate()
		b.X = -b.X
	}

	return Segment{
		Point1: a.Rotate(r.Rotation).Add(r.Center),
		Point2: b.Rotate(r.Rotation).Add(r.Center),
	}
}

// SeparatingAxisForOrientedRectangle reports whether the direction of axis
// separates axis from r. The projection of r is the hull of its two
// parallel edges 0 and 2, which together hold all four corners.
func SeparatingAxisForOrientedRectangle(axis Segment, r OrientedRectangle) bool {
	edge0 := OrientedRectangleEdge(r, 0)
	edge2 := OrientedRectangleEdge(r, 2)

	n := axis.Point1.Sub(axis.Point2)
	axisRange := ProjectSegment(axis, n)
	r0Range := ProjectSegment(edge0, n)
	r2Range := ProjectSegment(edge2, n)
	rProjection := r0Range.Hull(r2Range)

	return !OverlappingRanges(axisRange, rProjection)
}

// OrientedRectanglesCollide runs the separating axis test on the two edge
// directions of each rectangle.
func OrientedRectanglesCollide(a, b OrientedRectangle) bool {
	if SeparatingAxisForOrientedRectangle(OrientedRectangleEdge(a, 0), b) {
		return false
	}
	if SeparatingAxisForOrientedRectangle(OrientedRectangleEdge(a, 1), b) {
		return false
	}
	if SeparatingAxisForOrientedRectangle(OrientedRectangleEdge(b, 0), a) {
		return false
	}
	return !SeparatingAxisForOrientedRectangle(OrientedRectangleEdge(b, 1), a)
}
