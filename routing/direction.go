package routing

import (
	"math"

	"orthoroute/geometry"
	"orthoroute/shape"
)

// ExitDirection resolves an anchor position to the unit direction a
// connector leaves its endpoint in. Named side anchors map to their
// canonical direction; a center anchor, an unknown anchor, or no anchor at
// all falls back to the direction inferred from the other endpoint.
func ExitDirection(anchor shape.AnchorPosition, from, to geometry.Point) geometry.Point {
	switch anchor {
	case shape.AnchorTop:
		return geometry.Point{X: 0, Y: -1}
	case shape.AnchorBottom:
		return geometry.Point{X: 0, Y: 1}
	case shape.AnchorLeft:
		return geometry.Point{X: -1, Y: 0}
	case shape.AnchorRight:
		return geometry.Point{X: 1, Y: 0}
	}
	return InferDirection(from, to)
}

// InferDirection returns the unit direction along whichever axis separates
// the endpoints most, signed toward the other endpoint. Ties resolve to
// the horizontal axis; this is a documented policy, not an accident.
func InferDirection(from, to geometry.Point) geometry.Point {
	dx := to.X - from.X
	dy := to.Y - from.Y
	if math.Abs(dx) >= math.Abs(dy) {
		if dx < 0 {
			return geometry.Point{X: -1, Y: 0}
		}
		return geometry.Point{X: 1, Y: 0}
	}
	if dy < 0 {
		return geometry.Point{X: 0, Y: -1}
	}
	return geometry.Point{X: 0, Y: 1}
}

// stub projects an endpoint outward along its exit direction so the path
// clears the shape boundary before any turn.
func stub(endpoint, direction geometry.Point, length float64) geometry.Point {
	return endpoint.Add(direction.Scale(length))
}
