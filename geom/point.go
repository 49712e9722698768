// Package geom holds the stateless geometric primitives the sweep engine
// depends on: points, bounding rectangles, the signed-area predicate, and
// segment-segment intersection with overlap handling and endpoint snapping.
package geom

import "fmt"

// Point is an immutable 2-D point with IEEE-754 double coordinates.
type Point struct {
	X, Y float64
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Scale returns p scaled by s.
func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

// Cross returns the 2-D cross product p × q (a scalar).
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// SqLen returns the squared length of p treated as a vector from the origin.
func (p Point) SqLen() float64 {
	return p.X*p.X + p.Y*p.Y
}

// Equal reports whether p and q have identical coordinates.
func (p Point) Equal(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}

// Less implements the lexicographic (x, then y) order used by the event
// comparator.
func (p Point) Less(q Point) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

// String renders p in a compact "(x, y)" form, for test failures and trace
// logging only, not a serialization format.
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}
