package martinez

import (
	"fmt"

	"github.com/arjanvanderleden/martinez/geom"
)

// Polygon is an ordered set of contours. A valid polygon's contours are
// simple (non-self-intersecting) and don't cross each other; the
// algorithm does not require a particular winding order on input, and
// neither does this type.
type Polygon struct {
	Contours []Contour
}

// Bounds returns the union of every contour's bounding box.
func (p Polygon) Bounds() Rect {
	r := geom.EmptyRect()
	for _, c := range p.Contours {
		for _, pt := range c.Points {
			r = r.ExpandPoint(pt)
		}
	}
	return r
}

// Validate checks the structural invariants a well-formed polygon must
// satisfy: every contour has at least three distinct vertices and no
// zero-length edges. It does not check for self-intersection or
// cross-contour intersection: those are exactly what the sweep itself
// resolves.
func (p Polygon) Validate() []error {
	var errs []error
	for i, c := range p.Contours {
		n := len(c.Points)
		if distinctVertexCount(c.Points) < 3 {
			errs = append(errs, fmt.Errorf("contour %d has fewer than three distinct vertices", i))
			continue
		}
		for j := 0; j < n; j++ {
			if c.Points[j].Equal(c.Points[(j+1)%n]) {
				errs = append(errs, fmt.Errorf("contour %d has a zero-length edge at vertex %d", i, j))
			}
		}
	}
	return errs
}

func (p Polygon) String() string {
	return fmt.Sprintf("Polygon{%d contours}", len(p.Contours))
}

// concat appends b's contours after a's, shifting b's Parent/Holes
// indices so they keep pointing at the right contour in the combined
// result. Used by the empty-input and disjoint-bounds shortcuts, which
// bypass the sweep entirely.
func concat(a, b Polygon) Polygon {
	out := Polygon{Contours: make([]Contour, 0, len(a.Contours)+len(b.Contours))}
	out.Contours = append(out.Contours, a.Contours...)

	offset := len(a.Contours)
	for _, c := range b.Contours {
		shifted := c
		if shifted.Parent >= 0 {
			shifted.Parent += offset
		}
		if len(shifted.Holes) > 0 {
			holes := make([]int, len(shifted.Holes))
			for i, h := range shifted.Holes {
				holes[i] = h + offset
			}
			shifted.Holes = holes
		}
		out.Contours = append(out.Contours, shifted)
	}
	return out
}
