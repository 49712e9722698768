package sweep

import (
	"math"

	"github.com/arjanvanderleden/martinez/geom"
	"github.com/arjanvanderleden/martinez/internal/log"
)

// Op identifies a boolean set operation. Its values mirror the public
// OpType exactly, but the two are kept as distinct types so this package
// stays free of a dependency on the root package.
type Op int

const (
	Intersection Op = iota
	Union
	Difference
	Xor
)

// IntersectionPoint is one point recorded during the sweep: either a
// proper transversal crossing (Overlap == false) or one endpoint of a
// collinear overlap interval (Overlap == true, always produced in pairs).
type IntersectionPoint struct {
	Point   geom.Point
	Overlap bool
}

// OutputContour is one contour produced by the assembler, with its
// hole/boundary hierarchy classification already resolved. Parent is -1
// for a boundary contour.
type OutputContour struct {
	Points []geom.Point
	Parent int
	Holes  []int
	Depth  int
}

// Engine runs one sweep over one pair of input polygons for one
// operation. It is single-use: construct with Run, not directly.
type Engine struct {
	arena  arena
	queue  *eventQueue
	status *status
	asm    *assembler

	op            Op
	subjectMaxX   float64
	minMaxX       float64
	intersections []IntersectionPoint
}

// Run sweeps subject against clipping for op and returns the assembled
// output contours together with every intersection point computed along
// the way. Both inputs are lists of closed point chains; Run does not
// mutate them.
func Run(subject, clipping [][]geom.Point, op Op) ([]OutputContour, []IntersectionPoint) {
	g := &Engine{
		op:     op,
		status: newStatus(),
		queue:  newEventQueue(),
		asm:    newAssembler(),
	}

	g.enqueueContours(subject, Subject)
	g.enqueueContours(clipping, Clipping)
	g.subjectMaxX = maxX(subject)
	g.minMaxX = minFloat(g.subjectMaxX, maxX(clipping))

	g.run()

	return g.asm.finish(), g.intersections
}

func (g *Engine) enqueueContours(contours [][]geom.Point, poly PolygonType) {
	for _, pts := range contours {
		n := len(pts)
		for i := 0; i < n; i++ {
			p := pts[i]
			q := pts[(i+1)%n]
			if p.Equal(q) {
				continue
			}
			left, right := g.arena.addEdge(p, q, poly)
			g.queue.push(left)
			g.queue.push(right)
		}
	}
}

func maxX(contours [][]geom.Point) float64 {
	m := negInf
	for _, pts := range contours {
		for _, p := range pts {
			if p.X > m {
				m = p.X
			}
		}
	}
	return m
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

var negInf = math.Inf(-1)

func (g *Engine) run() {
	for {
		e := g.queue.pop()
		if e == nil {
			return
		}
		// Early-termination optimization: past this point neither
		// operation can still emit anything new, so stop and let the
		// assembler close out whatever it already has.
		switch g.op {
		case Intersection:
			if e.Point.X > g.minMaxX {
				return
			}
		case Difference:
			if e.Point.X > g.subjectMaxX {
				return
			}
		}
		if log.Level >= 2 {
			log.Debugf("sweep: event %v left=%v polygon=%d", e.Point, e.Left, e.Polygon)
		}
		if e.Left {
			g.processLeft(e)
		} else {
			g.processRight(e)
		}
	}
}

// processLeft inserts a left event into the status, computes its
// Transition/InsideOther flags from its neighbors, and tests it for
// intersection against both neighbors.
func (g *Engine) processLeft(e *Event) {
	g.status.insert(e)
	prev, next := g.status.neighbors(e)

	switch {
	case prev == nil:
		e.InsideOther = false
		e.Transition = false

	case prev.Type != Normal:
		pp := g.status.below(prev)
		switch {
		case pp == nil:
			e.InsideOther = true
			e.Transition = false
		case prev.Polygon == e.Polygon:
			e.Transition = !prev.Transition
			e.InsideOther = !pp.Transition
		default:
			e.Transition = !pp.Transition
			e.InsideOther = !prev.Transition
		}

	case prev.Polygon == e.Polygon:
		e.InsideOther = prev.InsideOther
		e.Transition = !prev.Transition

	default:
		e.InsideOther = !prev.Transition
		e.Transition = prev.InsideOther
	}

	if next != nil {
		g.possibleIntersection(e, next)
	}
	if prev != nil {
		g.possibleIntersection(prev, e)
	}
}

// processRight emits the edge's segment if it contributes to the
// requested operation, removes it from the status, and retests its
// former neighbors against each other now that it's gone.
func (g *Engine) processRight(e *Event) {
	l := e.Twin
	prev, next := g.status.neighbors(l)

	if g.contributes(l) {
		g.asm.add(l.Point, l.Twin.Point, l.Transition)
	}

	g.status.erase(l)

	if prev != nil && next != nil {
		g.possibleIntersection(prev, next)
	}
}

// contributes is the emit decision table, keyed by the left event's edge
// type and the operation being computed.
func (g *Engine) contributes(l *Event) bool {
	switch l.Type {
	case Normal:
		switch g.op {
		case Intersection:
			return l.InsideOther
		case Union:
			return !l.InsideOther
		case Difference:
			if l.Polygon == Subject {
				return !l.InsideOther
			}
			return l.InsideOther
		case Xor:
			return true
		}
	case SameTransition:
		return g.op == Intersection || g.op == Union
	case DifferentTransition:
		return g.op == Difference
	}
	// NonContributing
	return false
}
