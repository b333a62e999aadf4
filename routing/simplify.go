package routing

import (
	"math"

	"orthoroute/geometry"
)

// Simplify removes redundant interior points from a rectilinear waypoint
// list. An interior point survives only if it is not coincident with its
// predecessor in the output and not collinear with that predecessor and its
// successor in the input, where collinear means all three share an x
// coordinate or all three share a y coordinate. The last point is dropped
// too when it coincides with the point kept before it, so the output never
// contains a zero-length segment. The result is idempotent: simplifying an
// already-simplified path returns it unchanged.
func Simplify(points []geometry.Point) []geometry.Point {
	if len(points) < 2 {
		return points
	}

	out := make([]geometry.Point, 0, len(points))
	out = append(out, points[0])
	for i := 1; i < len(points)-1; i++ {
		prev := out[len(out)-1]
		cur := points[i]
		next := points[i+1]

		if cur.Equals(prev) {
			continue
		}

		sameX := math.Abs(prev.X-cur.X) < geometry.Epsilon &&
			math.Abs(cur.X-next.X) < geometry.Epsilon
		sameY := math.Abs(prev.Y-cur.Y) < geometry.Epsilon &&
			math.Abs(cur.Y-next.Y) < geometry.Epsilon

		if !sameX && !sameY {
			out = append(out, cur)
		}
	}
	if last := points[len(points)-1]; !last.Equals(out[len(out)-1]) {
		out = append(out, last)
	}

	return out
}
