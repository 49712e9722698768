package martinez

import (
	"fmt"

	"github.com/arjanvanderleden/martinez/geom"
)

// Contour is a closed sequence of vertices (the edge from the last
// vertex back to the first is implicit). Parent is the index, within the
// same Polygon, of the contour this one is a hole of, or -1 if this
// contour is itself a boundary. Holes lists the indices of this
// contour's direct children. Depth counts boundary/hole alternation
// starting at 0 for an outermost boundary.
type Contour struct {
	Points []Point
	Parent int
	Holes  []int
	Depth  int
}

// IsHole reports whether c is a hole (has a parent) rather than a
// boundary.
func (c Contour) IsHole() bool {
	return c.Parent >= 0
}

// Bounds returns c's axis-aligned bounding box.
func (c Contour) Bounds() Rect {
	r := geom.EmptyRect()
	for _, p := range c.Points {
		r = r.ExpandPoint(p)
	}
	return r
}

func (c Contour) String() string {
	kind := "boundary"
	if c.IsHole() {
		kind = "hole"
	}
	return fmt.Sprintf("Contour{%s, depth=%d, %d vertices}", kind, c.Depth, len(c.Points))
}

func distinctVertexCount(points []Point) int {
	out := make([]Point, 0, len(points))
	for _, p := range points {
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
	return len(out)
}
