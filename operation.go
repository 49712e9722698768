package martinez

import "github.com/arjanvanderleden/martinez/internal/sweep"

// OpType identifies a boolean set operation to compute.
type OpType int

const (
	OpIntersection OpType = iota
	OpUnion
	OpDifference
	OpXor
)

func (o OpType) String() string {
	switch o {
	case OpIntersection:
		return "INTERSECTION"
	case OpUnion:
		return "UNION"
	case OpDifference:
		return "DIFFERENCE"
	case OpXor:
		return "XOR"
	default:
		return "UNKNOWN"
	}
}

func (o OpType) sweepOp() sweep.Op {
	return sweep.Op(o)
}

// IntersectionKind distinguishes a proper transversal crossing from an
// endpoint of a collinear overlap interval.
type IntersectionKind int

const (
	IntersectionProper IntersectionKind = iota
	IntersectionOverlap
)

func (k IntersectionKind) String() string {
	if k == IntersectionOverlap {
		return "overlap"
	}
	return "proper"
}

// Intersection is one point the sweep computed while clipping.
type Intersection struct {
	Point Point
	Kind  IntersectionKind
}
