package sweep

import (
	"github.com/arjanvanderleden/martinez/geom"
	"github.com/arjanvanderleden/martinez/internal/log"
)

// divide splits e, currently a left event in the status spanning
// [e.Point, e.Twin.Point], at the interior point p. e is mutated in
// place to become the front half [e.Point, p]; the returned event is the
// new left event of the back half, [p, original e.Twin.Point] (its right
// event instead, if the rounding repair below swapped that pair's flags).
func (g *Engine) divide(e *Event, p geom.Point) *Event {
	oldRight := e.Twin

	rNew := g.arena.alloc(p, false, e.Polygon, e.Type)
	lNew := g.arena.alloc(p, true, e.Polygon, oldRight.Type)

	rNew.Twin = e
	e.Twin = rNew

	lNew.Twin = oldRight
	oldRight.Twin = lNew

	if eventAfter(lNew, oldRight) {
		// Rounding put p at or beyond the original right endpoint, so the
		// back half's new left event would be processed after its own
		// twin and that pair would no longer have exactly one left and
		// one right event in the correct order. Repair it by swapping the
		// pair's is-left flags; non-fatal.
		log.Warnf("sweep: subdivision of %v-%v at %v produced an inverted left/right pair; swapping is-left flags", e.Point, oldRight.Point, p)
		lNew.Left, oldRight.Left = oldRight.Left, lNew.Left
	}

	g.queue.push(lNew)
	g.queue.push(rNew)
	return lNew
}

// possibleIntersection tests two adjacent active segments for
// intersection and either subdivides one or both of them, or reclassifies
// an overlapping collinear run.
func (g *Engine) possibleIntersection(s1, s2 *Event) {
	n, p1, p2 := geom.SegmentIntersection(s1.Segment(), s2.Segment())
	if n == 0 {
		return
	}
	g.intersections = append(g.intersections, IntersectionPoint{Point: p1, Overlap: n == 2})
	if n == 2 {
		g.intersections = append(g.intersections, IntersectionPoint{Point: p2, Overlap: true})
		if s1.Polygon == s2.Polygon {
			// Overlapping edges of the same polygon: the design assumes
			// simple, non-self-intersecting input, so no action is taken.
			return
		}
		g.handleOverlap(s1, s2, p1, p2)
		return
	}

	s1HasP := p1.Equal(s1.Point) || p1.Equal(s1.Twin.Point)
	s2HasP := p1.Equal(s2.Point) || p1.Equal(s2.Twin.Point)
	if s1HasP && s2HasP {
		return
	}
	if !s1HasP {
		g.divide(s1, p1)
	}
	if !s2HasP {
		g.divide(s2, p1)
	}
}

// handleOverlap classifies a count-2 (collinear overlap) intersection
// between edges of different polygons into one of four overlap shapes.
func (g *Engine) handleOverlap(s1, s2 *Event, p1, p2 geom.Point) {
	sameType := DifferentTransition
	if s1.Transition == s2.Transition {
		sameType = SameTransition
	}

	switch len(distinctPoints(s1.Point, s1.Twin.Point, s2.Point, s2.Twin.Point)) {
	case 2:
		// Equal segments.
		s1.Type, s1.Twin.Type = NonContributing, NonContributing
		s2.Type, s2.Twin.Type = sameType, sameType

	case 3:
		// Share one endpoint: the shorter of the two is fully contained
		// in the overlap.
		middle, longer := s1, s2
		if s2.Twin.Point.Sub(s2.Point).SqLen() < s1.Twin.Point.Sub(s1.Point).SqLen() {
			middle, longer = s2, s1
		}
		g.overlapShareOne(middle, longer, p1, p2, sameType)

	default:
		// Four distinct endpoints: either one segment contains the
		// other, or they overlap in a staggered, neither-contains shape.
		qa, qb := s1.Point, s1.Twin.Point
		qc, qd := s2.Point, s2.Twin.Point
		switch {
		case qc.Less(qa) && qb.Less(qd):
			g.overlapContainment(s1, s2, sameType)
		case qa.Less(qc) && qd.Less(qb):
			g.overlapContainment(s2, s1, sameType)
		default:
			a, b := s1, s2
			if b.Point.Less(a.Point) {
				a, b = s2, s1
			}
			g.overlapStaggered(a, b, p1, p2, sameType)
		}
	}
}

// overlapShareOne handles the three-distinct-endpoint overlap shape:
// "middle" is fully contained in the overlap and becomes non-
// contributing; "longer" is split at whichever overlap boundary is
// interior to it, and the resulting piece that exactly matches the
// overlap gets sameType.
func (g *Engine) overlapShareOne(middle, longer *Event, p1, p2 geom.Point, sameType EdgeType) {
	middle.Type, middle.Twin.Type = NonContributing, NonContributing

	if longer.Point.Equal(p1) {
		// The overlap is longer's own front half.
		g.divide(longer, p2)
		longer.Type, longer.Twin.Type = sameType, sameType
		return
	}
	// The overlap is longer's back half.
	back := g.divide(longer, p1)
	back.Type, back.Twin.Type = sameType, sameType
}

// overlapContainment handles the four-distinct-endpoint shape where
// "container" fully contains "contained": contained becomes non-
// contributing, and container is split into three pieces, the middle of
// which (exactly matching contained's span) gets sameType.
func (g *Engine) overlapContainment(contained, container *Event, sameType EdgeType) {
	contained.Type, contained.Twin.Type = NonContributing, NonContributing

	middle := g.divide(container, contained.Point)
	g.divide(middle, contained.Twin.Point)
	middle.Type, middle.Twin.Type = sameType, sameType
}

// overlapStaggered handles the four-distinct-endpoint shape where
// neither segment contains the other: a starts first, b starts second,
// and they overlap in [p1, p2]. a's trailing half becomes non-
// contributing; b's leading half (which covers the identical span)
// carries sameType.
func (g *Engine) overlapStaggered(a, b *Event, p1, p2 geom.Point, sameType EdgeType) {
	aOverlap := g.divide(a, p1)
	g.divide(b, p2)
	aOverlap.Type, aOverlap.Twin.Type = NonContributing, NonContributing
	b.Type, b.Twin.Type = sameType, sameType
}

func distinctPoints(pts ...geom.Point) []geom.Point {
	out := make([]geom.Point, 0, len(pts))
	for _, p := range pts {
		found := false
		for _, q := range out {
			if p.Equal(q) {
				found = true
				break
			}
		}
		if !found {
			out = append(out, p)
		}
	}
	return out
}
