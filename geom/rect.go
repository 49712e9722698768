package geom

import "math"

// Rect is an axis-aligned bounding rectangle, named and shaped after
// github.com/tidwall/geojson/geometry.Rect.
type Rect struct {
	Min, Max Point
}

// EmptyRect returns a rectangle that contains no points and that Union
// with any rectangle returns that rectangle unchanged.
func EmptyRect() Rect {
	return Rect{
		Min: Point{X: math.Inf(1), Y: math.Inf(1)},
		Max: Point{X: math.Inf(-1), Y: math.Inf(-1)},
	}
}

// Empty reports whether r contains no points.
func (r Rect) Empty() bool {
	return r.Min.X > r.Max.X || r.Min.Y > r.Max.Y
}

// Union returns the smallest rectangle containing both r and s.
func (r Rect) Union(s Rect) Rect {
	if r.Empty() {
		return s
	}
	if s.Empty() {
		return r
	}
	return Rect{
		Min: Point{X: math.Min(r.Min.X, s.Min.X), Y: math.Min(r.Min.Y, s.Min.Y)},
		Max: Point{X: math.Max(r.Max.X, s.Max.X), Y: math.Max(r.Max.Y, s.Max.Y)},
	}
}

// Intersects reports whether r and s share at least one point.
func (r Rect) Intersects(s Rect) bool {
	if r.Empty() || s.Empty() {
		return false
	}
	return r.Min.X <= s.Max.X && r.Max.X >= s.Min.X &&
		r.Min.Y <= s.Max.Y && r.Max.Y >= s.Min.Y
}

// ExpandPoint grows r, if necessary, so that it contains p.
func (r Rect) ExpandPoint(p Point) Rect {
	return r.Union(Rect{Min: p, Max: p})
}
