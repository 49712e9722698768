package sweep

import (
	"testing"

	"github.com/arjanvanderleden/martinez/geom"
	"github.com/tidwall/assert"
)

func sq(x0, y0, x1, y1 float64) []geom.Point {
	return []geom.Point{
		{X: x0, Y: y0},
		{X: x1, Y: y0},
		{X: x1, Y: y1},
		{X: x0, Y: y1},
	}
}

func shoelace(pts []geom.Point) float64 {
	n := len(pts)
	sum := 0.0
	for i := 0; i < n; i++ {
		p, q := pts[i], pts[(i+1)%n]
		sum += p.X*q.Y - q.X*p.Y
	}
	if sum < 0 {
		sum = -sum
	}
	return sum / 2
}

func totalArea(contours []OutputContour) float64 {
	total := 0.0
	for _, c := range contours {
		a := shoelace(c.Points)
		if c.Parent >= 0 {
			total -= a
		} else {
			total += a
		}
	}
	return total
}

func TestRunOverlappingSquares(t *testing.T) {
	subject := [][]geom.Point{sq(0, 0, 2, 2)}
	clipping := [][]geom.Point{sq(1, 1, 3, 3)}

	inter, _ := Run(subject, clipping, Intersection)
	assert.Assert(len(inter) == 1)
	assert.Assert(closeEnough(totalArea(inter), 1))

	union, _ := Run(subject, clipping, Union)
	assert.Assert(closeEnough(totalArea(union), 7))

	diff, _ := Run(subject, clipping, Difference)
	assert.Assert(closeEnough(totalArea(diff), 3))

	xor, _ := Run(subject, clipping, Xor)
	assert.Assert(closeEnough(totalArea(xor), 6))
}

func TestRunIdenticalSquares(t *testing.T) {
	subject := [][]geom.Point{sq(0, 0, 1, 1)}
	clipping := [][]geom.Point{sq(0, 0, 1, 1)}

	inter, _ := Run(subject, clipping, Intersection)
	assert.Assert(closeEnough(totalArea(inter), 1))

	diff, _ := Run(subject, clipping, Difference)
	assert.Assert(closeEnough(totalArea(diff), 0))

	xor, _ := Run(subject, clipping, Xor)
	assert.Assert(closeEnough(totalArea(xor), 0))
}

func TestRunSquareWithHoleAgainstOverlap(t *testing.T) {
	// Outer 6x6 square with a 1x1 hole in the corner, clipped against a
	// 4x4 square overlapping only the outer ring (not the hole):
	// solid area = 36-1 = 35, clip area = 16, their overlap = 4.
	outer := sq(0, 0, 6, 6)
	hole := []geom.Point{{X: 1, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 2}, {X: 2, Y: 1}}
	subject := [][]geom.Point{outer, hole}
	clipping := [][]geom.Point{sq(4, 4, 8, 8)}

	union, _ := Run(subject, clipping, Union)
	assert.Assert(closeEnough(totalArea(union), 35+16-4))
}

func TestRunProducesNoIntersectionsForDisjointInput(t *testing.T) {
	subject := [][]geom.Point{sq(0, 0, 1, 1)}
	clipping := [][]geom.Point{sq(5, 5, 6, 6)}

	contours, ints := Run(subject, clipping, Union)
	assert.Assert(len(contours) == 2)
	assert.Assert(len(ints) == 0)
}

func closeEnough(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-6
}
