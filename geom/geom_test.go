package geom

import (
	"testing"

	"github.com/tidwall/assert"
)

func TestSignedArea(t *testing.T) {
	a, b, c := Point{0, 0}, Point{1, 0}, Point{0, 1}
	assert.Assert(SignedArea(a, b, c) > 0) // a->b->c is CCW
	assert.Assert(SignedArea(a, c, b) < 0)
	assert.Assert(SignedArea(a, b, Point{2, 0}) == 0)
}

func TestPointOnSegment(t *testing.T) {
	s := Segment{Point{0, 0}, Point{4, 4}}
	assert.Assert(PointOnSegment(s, Point{2, 2}))
	assert.Assert(PointOnSegment(s, Point{0, 0}))
	assert.Assert(!PointOnSegment(s, Point{2, 3}))
	assert.Assert(!PointOnSegment(s, Point{5, 5}))
}

func TestSegmentIntersectionProperCross(t *testing.T) {
	s1 := Segment{Point{0, 0}, Point{2, 2}}
	s2 := Segment{Point{0, 2}, Point{2, 0}}
	n, p, _ := SegmentIntersection(s1, s2)
	assert.Assert(n == 1)
	assert.Assert(p == Point{1, 1})
}

func TestSegmentIntersectionDisjointBBox(t *testing.T) {
	s1 := Segment{Point{0, 0}, Point{1, 1}}
	s2 := Segment{Point{5, 5}, Point{6, 6}}
	n, _, _ := SegmentIntersection(s1, s2)
	assert.Assert(n == 0)
}

func TestSegmentIntersectionParallelDisjoint(t *testing.T) {
	s1 := Segment{Point{0, 0}, Point{1, 0}}
	s2 := Segment{Point{0, 1}, Point{1, 1}}
	n, _, _ := SegmentIntersection(s1, s2)
	assert.Assert(n == 0)
}

func TestSegmentIntersectionCollinearOverlap(t *testing.T) {
	s1 := Segment{Point{0, 0}, Point{3, 0}}
	s2 := Segment{Point{1, 0}, Point{4, 0}}
	n, p1, p2 := SegmentIntersection(s1, s2)
	assert.Assert(n == 2)
	assert.Assert(p1 == Point{1, 0})
	assert.Assert(p2 == Point{3, 0})
}

func TestSegmentIntersectionCollinearSinglePoint(t *testing.T) {
	s1 := Segment{Point{0, 0}, Point{1, 0}}
	s2 := Segment{Point{1, 0}, Point{2, 0}}
	n, p1, _ := SegmentIntersection(s1, s2)
	assert.Assert(n == 1)
	assert.Assert(p1 == Point{1, 0})
}

func TestSegmentIntersectionNoOverlapBeyondRange(t *testing.T) {
	s1 := Segment{Point{0, 0}, Point{2, 2}}
	s2 := Segment{Point{3, 3}, Point{4, 4}}
	n, _, _ := SegmentIntersection(s1, s2)
	assert.Assert(n == 0)
}

func TestSegmentIntersectionSnapsToEndpoint(t *testing.T) {
	s1 := Segment{Point{0, 0}, Point{1, 1}}
	s2 := Segment{Point{1 - 1e-9, 0}, Point{1 - 1e-9, 2}}
	n, p, _ := SegmentIntersection(s1, s2)
	assert.Assert(n == 1)
	// The computed crossing lands 1e-9 short of s1's end (1, 1) on both
	// axes, closer than Delta, so it is replaced by that endpoint exactly.
	assert.Assert(p == Point{1, 1})
}

func TestRectIntersects(t *testing.T) {
	r1 := Rect{Point{0, 0}, Point{2, 2}}
	r2 := Rect{Point{1, 1}, Point{3, 3}}
	r3 := Rect{Point{5, 5}, Point{6, 6}}
	assert.Assert(r1.Intersects(r2))
	assert.Assert(!r1.Intersects(r3))
}
