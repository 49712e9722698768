package geom

// SignedArea returns twice the signed area of triangle (a, b, c). It is
// positive iff a→b→c is a counter-clockwise turn, negative iff clockwise,
// and zero iff the three points are collinear.
func SignedArea(a, b, c Point) float64 {
	return (a.X-c.X)*(b.Y-c.Y) - (b.X-c.X)*(a.Y-c.Y)
}

// PointOnSegment reports whether p lies on segment s, in the inclusive
// bounding-box sense. It is not used by the sweep itself, only by
// external callers that want to classify a point against a segment.
func PointOnSegment(s Segment, p Point) bool {
	if SignedArea(s.Begin, s.End, p) != 0 {
		return false
	}
	r := s.Rect()
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}
