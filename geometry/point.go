// Package geometry contains the 2D primitives used throughout the router:
// points, axis-aligned boxes, and the segment/box intersection test.
package geometry

import "math"

// Epsilon is the tolerance used when comparing world coordinates.
// Coordinates closer than this are treated as equal.
const Epsilon = 1e-6

// Point represents a 2D coordinate in world units. It doubles as a
// direction vector, in which case it is unit-length.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p scaled by s.
func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Equals reports whether p and q coincide within Epsilon on both axes.
func (p Point) Equals(q Point) bool {
	return math.Abs(p.X-q.X) < Epsilon && math.Abs(p.Y-q.Y) < Epsilon
}

// PathLength returns the total Euclidean length of the polyline through
// the given points. Fewer than two points have zero length.
func PathLength(points []Point) float64 {
	total := 0.0
	for i := 1; i < len(points); i++ {
		total += points[i-1].Distance(points[i])
	}
	return total
}
