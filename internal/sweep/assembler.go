package sweep

import "github.com/arjanvanderleden/martinez/geom"

// openChain is a point chain still being extended by incoming segments.
type openChain struct {
	points []geom.Point
}

func (c *openChain) front() geom.Point { return c.points[0] }
func (c *openChain) back() geom.Point  { return c.points[len(c.points)-1] }
func (c *openChain) closed() bool {
	return len(c.points) > 1 && c.front().Equal(c.back())
}

// closedChain is a finished contour, recorded with the spatial context
// needed to classify it once the sweep is done.
type closedChain struct {
	points     []geom.Point
	prevClosed int // index of the previously-closed chain, -1 if none
	transition bool
}

// assembler stitches the emitted segments into closed point chains and,
// once the sweep finishes, resolves each chain's hole/boundary hierarchy.
type assembler struct {
	open       []*openChain
	closed     []*closedChain
	prevClosed int
}

func newAssembler() *assembler {
	return &assembler{prevClosed: -1}
}

// add links one emitted segment (p, q) into the chain set, closing and
// reclassifying chains as needed.
func (a *assembler) add(p, q geom.Point, transition bool) {
	for i, c := range a.open {
		switch {
		case c.front().Equal(p):
			c.points = prepend(c.points, q)
		case c.front().Equal(q):
			c.points = prepend(c.points, p)
		case c.back().Equal(p):
			c.points = append(c.points, q)
		case c.back().Equal(q):
			c.points = append(c.points, p)
		default:
			continue
		}
		a.afterExtend(i, transition)
		return
	}
	a.open = append(a.open, &openChain{points: []geom.Point{p, q}})
}

func prepend(points []geom.Point, p geom.Point) []geom.Point {
	out := make([]geom.Point, 0, len(points)+1)
	out = append(out, p)
	out = append(out, points...)
	return out
}

// afterExtend closes chain i if it just formed a loop, otherwise tries to
// join it with another still-open chain (which may itself then close).
func (a *assembler) afterExtend(i int, transition bool) {
	c := a.open[i]
	if c.closed() {
		a.closeChain(i, transition)
		return
	}
	for j, other := range a.open {
		if j == i {
			continue
		}
		if mergeChains(c, other) {
			a.removeOpen(j)
			if c.closed() {
				a.closeChain(a.indexOf(c), transition)
			}
			return
		}
	}
}

// mergeChains appends other onto c, reversing other if needed so the
// shared endpoint lines up. Returns false if the chains don't share an
// endpoint.
func mergeChains(c, other *openChain) bool {
	switch {
	case c.back().Equal(other.front()):
		c.points = append(c.points, other.points[1:]...)
	case c.back().Equal(other.back()):
		c.points = append(c.points, reversed(other.points)[1:]...)
	case c.front().Equal(other.back()):
		c.points = append(append([]geom.Point{}, other.points...), c.points[1:]...)
	case c.front().Equal(other.front()):
		c.points = append(reversed(other.points), c.points[1:]...)
	default:
		return false
	}
	return true
}

func reversed(points []geom.Point) []geom.Point {
	out := make([]geom.Point, len(points))
	for i, p := range points {
		out[len(points)-1-i] = p
	}
	return out
}

func (a *assembler) closeChain(i int, transition bool) {
	c := a.open[i]
	pts := c.points
	if len(pts) > 1 && pts[0].Equal(pts[len(pts)-1]) {
		pts = pts[:len(pts)-1]
	}
	a.removeOpen(i)
	a.closed = append(a.closed, &closedChain{
		points:     pts,
		prevClosed: a.prevClosed,
		transition: transition,
	})
	a.prevClosed = len(a.closed) - 1
}

func (a *assembler) removeOpen(i int) {
	a.open = append(a.open[:i], a.open[i+1:]...)
}

func (a *assembler) indexOf(c *openChain) int {
	for i, oc := range a.open {
		if oc == c {
			return i
		}
	}
	return -1
}

// finish resolves the hole/boundary hierarchy of every closed chain,
// using the (previously-closed chain, transition) spatial context each
// chain was recorded with.
func (a *assembler) finish() []OutputContour {
	out := make([]OutputContour, len(a.closed))
	for i, c := range a.closed {
		out[i].Points = c.points
		out[i].Parent = -1

		p := c.prevClosed
		switch {
		case p < 0:
			out[i].Depth = 0
		case !c.transition:
			// Transition from inside to outside: c is a boundary at the
			// same depth as its spatial predecessor.
			out[i].Depth = out[p].Depth
		case out[p].Parent >= 0:
			// p is itself a hole: c shares p's parent and depth.
			out[i].Parent = out[p].Parent
			out[i].Depth = out[p].Depth
		default:
			// p is a boundary: c is one of its holes, one level deeper.
			out[i].Parent = p
			out[i].Depth = out[p].Depth + 1
		}
		if out[i].Parent >= 0 {
			out[out[i].Parent].Holes = append(out[out[i].Parent].Holes, i)
		}
	}
	return out
}
