// Package sweep implements the Martinez-Rueda-Feito plane-sweep engine:
// the event model, the ordered containers it runs on, the main loop, and
// the contour assembler. None of it is part of the public API; the root
// package is the only caller.
package sweep

import "github.com/arjanvanderleden/martinez/geom"

// PolygonType labels which input polygon an event's edge came from.
type PolygonType int

const (
	Subject PolygonType = iota
	Clipping
)

// EdgeType classifies how an edge contributes to the output of each
// operation.
type EdgeType int

const (
	Normal EdgeType = iota
	NonContributing
	SameTransition
	DifferentTransition
)

// Event describes one endpoint of one segment during the sweep. Left
// events carry the flags computed on insertion (Transition, InsideOther);
// right events are only ever read through Twin.
type Event struct {
	Point       geom.Point
	Left        bool
	Polygon     PolygonType
	Twin        *Event
	Type        EdgeType
	Transition  bool
	InsideOther bool

	inStatus bool   // true while this (left) event sits in the status line
	seq      uint64 // insertion order, the final tiebreaker for both orders
}

// Segment returns the event's edge as a geom.Segment oriented (Point,
// Twin.Point): left-to-right on a left event.
func (e *Event) Segment() geom.Segment {
	return geom.Segment{Begin: e.Point, End: e.Twin.Point}
}

// arena creates the events of one operation and numbers them in creation
// order (seq). It does not hold the events itself: they are ordinary heap
// objects that refer to each other by pointer (Twin), and the garbage
// collector releases them once the sweep's queue, status and assembler
// no longer reach them.
type arena struct {
	seq uint64
}

func (a *arena) alloc(p geom.Point, left bool, poly PolygonType, typ EdgeType) *Event {
	a.seq++
	return &Event{Point: p, Left: left, Polygon: poly, Type: typ, seq: a.seq}
}

// addEdge builds the twin pair for one input edge, choosing the left
// endpoint by lexicographic (x, then y) order, so vertical edges get
// their bottom endpoint as the left one.
func (a *arena) addEdge(p, q geom.Point, poly PolygonType) (left, right *Event) {
	e1 := a.alloc(p, false, poly, Normal)
	e2 := a.alloc(q, false, poly, Normal)
	e1.Twin = e2
	e2.Twin = e1
	if p.Less(q) {
		e1.Left = true
		return e1, e2
	}
	e2.Left = true
	return e2, e1
}
