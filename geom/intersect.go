package geom

import "math"

// Epsilon and Delta are the process-wide numerical tolerances used by
// SegmentIntersection: Epsilon governs the parallel/collinear tests,
// Delta governs endpoint snapping. Both are compile-time constants
// chosen strictly larger than the expected round-off at the input scale
// this package targets.
const (
	Epsilon = 1e-7
	Delta   = 1e-8
)

// SegmentIntersection computes the intersection of s1 and s2.
//
// count is 0, 1, or 2. For count == 1, p1 holds the single intersection
// point. For count == 2, p1 and p2 hold the two endpoints of the
// collinear overlap interval.
func SegmentIntersection(s1, s2 Segment) (count int, p1, p2 Point) {
	d0 := s1.Vector()
	d1 := s2.Vector()
	e := s2.Begin.Sub(s1.Begin)

	k := d0.Cross(d1)
	sqLen0 := d0.SqLen()
	sqLen1 := d1.SqLen()

	if k*k > Epsilon*sqLen0*sqLen1 {
		// Not parallel: unique line intersection, if it falls within
		// both segments' parameter ranges.
		s := e.Cross(d1) / k
		t := e.Cross(d0) / k
		if s < 0 || s > 1 || t < 0 || t > 1 {
			return 0, Point{}, Point{}
		}
		p := s1.Begin.Add(d0.Scale(s))
		p = snap(p, s1, s2)
		return 1, p, Point{}
	}

	ecd0 := e.Cross(d0)
	if ecd0*ecd0 > Epsilon*sqLen0*e.SqLen() {
		// Parallel, not collinear.
		return 0, Point{}, Point{}
	}

	// Collinear: project s2's endpoints onto s1's direction and overlap
	// the two parameter ranges, both expressed in units of d0.
	if sqLen0 == 0 {
		return 0, Point{}, Point{}
	}
	ta := s2.Begin.Sub(s1.Begin).Dot(d0) / sqLen0
	tb := s2.End.Sub(s1.Begin).Dot(d0) / sqLen0
	lo, hi := ta, tb
	if lo > hi {
		lo, hi = hi, lo
	}
	lo = math.Max(lo, 0)
	hi = math.Min(hi, 1)
	if lo > hi {
		return 0, Point{}, Point{}
	}
	p1 = s1.Begin.Add(d0.Scale(lo))
	if lo == hi {
		return 1, p1, Point{}
	}
	p2 = s1.Begin.Add(d0.Scale(hi))
	return 2, p1, p2
}

// snap replaces p with the exact coordinates of a nearby endpoint of s1
// or s2, closing off the rounding-error cascade that would otherwise
// spawn an infinitesimal segment during subdivision.
func snap(p Point, s1, s2 Segment) Point {
	for _, q := range [4]Point{s1.Begin, s1.End, s2.Begin, s2.End} {
		if math.Abs(p.X-q.X) < Delta && math.Abs(p.Y-q.Y) < Delta {
			return q
		}
	}
	return p
}
