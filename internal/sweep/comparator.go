package sweep

import (
	"github.com/arjanvanderleden/martinez/geom"
	"github.com/tidwall/tinyqueue"
)

// eventAfter reports whether a ranks strictly after b in processing
// order (equivalently, a has the higher heap key and is popped later).
func eventAfter(a, b *Event) bool {
	if a == b {
		return false
	}
	if a.Point.X != b.Point.X {
		return a.Point.X > b.Point.X
	}
	if a.Point.Y != b.Point.Y {
		return a.Point.Y > b.Point.Y
	}
	if a.Left != b.Left {
		// Right endpoints are processed before left endpoints at the
		// same point.
		return a.Left
	}
	// Same point, same left/right-ness: the event whose segment runs
	// above the other event's far endpoint is ranked after it.
	area := geom.SignedArea(a.Point, a.Twin.Point, b.Twin.Point)
	if area != 0 {
		return area < 0
	}
	return a.seq > b.seq
}

// eventBefore is the strict order used to key the event priority queue:
// a is popped before b iff a does not rank after b.
func eventBefore(a, b *Event) bool {
	return eventAfter(b, a)
}

// Less implements tinyqueue.Item so *Event can be stored in the event
// priority queue directly, keyed by eventBefore.
func (a *Event) Less(other tinyqueue.Item) bool {
	return eventBefore(a, other.(*Event))
}

// segmentAbove reports whether point p lies strictly above the line
// carrying event e's segment (e.Point -> e.Twin.Point).
func segmentAbove(e *Event, p geom.Point) bool {
	return geom.SignedArea(e.Point, e.Twin.Point, p) > 0
}

// segmentBelow reports whether s sits strictly below t at the current
// sweep position. It is the less-function for the sweep-line status
// ordered set.
func segmentBelow(s, t *Event) bool {
	if s == t {
		return false
	}
	areaT := geom.SignedArea(s.Point, s.Twin.Point, t.Point)
	areaTTwin := geom.SignedArea(s.Point, s.Twin.Point, t.Twin.Point)
	if areaT != 0 || areaTTwin != 0 {
		if s.Point.Equal(t.Point) {
			// Shared starting point: order by whether s runs below t's
			// far endpoint.
			return areaTTwin > 0
		}
		if eventBefore(s, t) {
			// s's left endpoint was processed first: s ranks below t
			// when s's own point sits below t's segment.
			return !segmentAbove(t, s.Point)
		}
		return areaT > 0
	}
	// Collinear: any strict total order breaks the tie; insertion
	// sequence number is stable and unambiguous.
	return s.seq < t.seq
}
