package martinez

import (
	"github.com/arjanvanderleden/martinez/internal/log"
	"github.com/arjanvanderleden/martinez/internal/sweep"
)

// Operation is one clipping session between a fixed pair of polygons. It
// can compute more than one OpType against the same pair without
// re-parsing either input; each Compute/ComputeWithIntersections call
// runs an independent sweep.
type Operation struct {
	subject  Polygon
	clipping Polygon

	lastIntersections []Intersection
}

// New starts a clipping session between subject and clipping. Neither
// polygon is mutated; the Operation keeps both (sharing their contour
// slices) for later Compute calls.
func New(subject, clipping Polygon) *Operation {
	return &Operation{subject: subject, clipping: clipping}
}

// Compute runs op and returns the resulting polygon, discarding the
// intersection points. Use ComputeWithIntersections to keep them.
func (o *Operation) Compute(op OpType) Polygon {
	result, _ := o.ComputeWithIntersections(op)
	return result
}

// ComputeWithIntersections runs op and returns both the resulting
// polygon and every intersection point the sweep computed along the way.
func (o *Operation) ComputeWithIntersections(op OpType) (Polygon, []Intersection) {
	o.lastIntersections = nil

	if len(o.subject.Contours) == 0 || len(o.clipping.Contours) == 0 {
		log.Debugf("sweep: empty-input shortcut for %v (subject=%d clipping=%d contours)",
			op, len(o.subject.Contours), len(o.clipping.Contours))
		return o.emptyInputShortcut(op), nil
	}

	sb, cb := o.subject.Bounds(), o.clipping.Bounds()
	if !sb.Intersects(cb) {
		log.Debugf("sweep: disjoint-bounds shortcut for %v", op)
		return o.disjointBoundsShortcut(op), nil
	}

	outContours, outIntersections := sweep.Run(toChains(o.subject), toChains(o.clipping), op.sweepOp())

	result := Polygon{Contours: make([]Contour, len(outContours))}
	for i, oc := range outContours {
		result.Contours[i] = Contour{Points: oc.Points, Parent: oc.Parent, Holes: oc.Holes, Depth: oc.Depth}
	}

	intersections := make([]Intersection, len(outIntersections))
	for i, ip := range outIntersections {
		kind := IntersectionProper
		if ip.Overlap {
			kind = IntersectionOverlap
		}
		intersections[i] = Intersection{Point: ip.Point, Kind: kind}
	}
	o.lastIntersections = intersections

	return result, intersections
}

// IntersectionCount returns the number of intersection points recorded
// by the most recent Compute/ComputeWithIntersections call.
func (o *Operation) IntersectionCount() int {
	return len(o.lastIntersections)
}

// emptyInputShortcut handles the case where either input polygon has
// zero contours, bypassing the sweep entirely.
func (o *Operation) emptyInputShortcut(op OpType) Polygon {
	switch op {
	case OpUnion, OpXor:
		return concat(o.subject, o.clipping)
	case OpDifference:
		return o.subject
	default: // OpIntersection
		return Polygon{}
	}
}

// disjointBoundsShortcut handles the case where the two inputs' bounding
// boxes don't overlap at all, bypassing the sweep entirely.
func (o *Operation) disjointBoundsShortcut(op OpType) Polygon {
	switch op {
	case OpUnion, OpXor:
		return concat(o.subject, o.clipping)
	case OpDifference:
		return o.subject
	default: // OpIntersection
		return Polygon{}
	}
}

func toChains(p Polygon) [][]Point {
	out := make([][]Point, len(p.Contours))
	for i, c := range p.Contours {
		out[i] = c.Points
	}
	return out
}
