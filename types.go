// Package martinez implements boolean set operations (intersection,
// union, difference, and symmetric difference) over planar polygons
// using the Martinez-Rueda-Feito plane-sweep algorithm.
package martinez

import "github.com/arjanvanderleden/martinez/geom"

// Point is a planar coordinate pair.
type Point = geom.Point

// Segment is a directed line segment between two points.
type Segment = geom.Segment

// Rect is an axis-aligned bounding box.
type Rect = geom.Rect
