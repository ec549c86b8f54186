package geom

// Overlapping reports whether [minA, maxA] and [minB, maxB] overlap.
// Touching intervals overlap.
func Overlapping(minA, maxA, minB, maxB float64) bool {
	return minB <= maxA && minA <= maxB
}

// RectanglesCollide is the AABB test. It is symmetric in a and b.
func RectanglesCollide(a, b Rectangle) bool {
	aLeft := a.Origin.X
	aRight := aLeft + a.Size.X
	bLeft := b.Origin.X
	bRight := bLeft + b.Size.X

	aBottom := a.Origin.Y
	aTop := aBottom + a.Size.Y
	bBottom := b.Origin.Y
	bTop := bBottom + b.Size.Y

	return Overlapping(aLeft, aRight, bLeft, bRight) &&
		Overlapping(aBottom, aTop, bBottom, bTop)
}

// CirclesCollide reports whether the center distance is at most the sum of
// the radii.
func CirclesCollide(a, b Circle) bool {
	radiusSum := a.Radius + b.Radius
	distance := a.Center.Sub(b.Center)
	return distance.Length() <= radiusSum
}

// PointsCollide reports whether a and b are the same point within Epsilon.
func PointsCollide(a, b Vector2D) bool {
	return a.Equal(b)
}

// PointInCircle reports whether p lies inside or on c.
func PointInCircle(p Vector2D, c Circle) bool {
	return p.Sub(c.Center).Length() <= c.Radius
}

// PointInRectangle reports whether p lies inside or on r.
func PointInRectangle(p Vector2D, r Rectangle) bool {
	far := r.Max()
	return r.Origin.X <= p.X && p.X <= far.X &&
		r.Origin.Y <= p.Y && p.Y <= far.Y
}
