package routing

import (
	"math"

	"orthoroute/geometry"
)

// candidates returns the fixed menu of stub-to-stub routing strategies.
// Every entry runs through simplification and validation downstream; the
// enumerable menu, rather than a general search, is what keeps routing
// deterministic and cheap enough to re-run on every pointer move.
//
// startHoriz and endHoriz report whether the respective exit direction is
// horizontal.
func candidates(start, end geometry.Point, startHoriz, endHoriz bool) [][]geometry.Point {
	midX := (start.X + end.X) / 2
	midY := (start.Y + end.Y) / 2

	menu := make([][]geometry.Point, 0, 7)

	// Orientation-matched default: a Z bridging at the midpoint when both
	// exits share an orientation, an L at the stub-line crossing otherwise.
	switch {
	case startHoriz && endHoriz:
		menu = append(menu, []geometry.Point{
			start,
			{X: midX, Y: start.Y},
			{X: midX, Y: end.Y},
			end,
		})
	case !startHoriz && !endHoriz:
		menu = append(menu, []geometry.Point{
			start,
			{X: start.X, Y: midY},
			{X: end.X, Y: midY},
			end,
		})
	case startHoriz:
		menu = append(menu, []geometry.Point{start, {X: end.X, Y: start.Y}, end})
	default:
		menu = append(menu, []geometry.Point{start, {X: start.X, Y: end.Y}, end})
	}

	// Z with corners on the midpoint column.
	menu = append(menu, []geometry.Point{
		start,
		{X: midX, Y: start.Y},
		{X: midX, Y: end.Y},
		end,
	})

	// Z with corners on the midpoint row.
	menu = append(menu, []geometry.Point{
		start,
		{X: start.X, Y: midY},
		{X: end.X, Y: midY},
		end,
	})

	// The two L-paths.
	menu = append(menu, []geometry.Point{start, {X: end.X, Y: start.Y}, end})
	menu = append(menu, []geometry.Point{start, {X: start.X, Y: end.Y}, end})

	// Degenerate direct connections when the stubs already line up.
	if math.Abs(start.Y-end.Y) < geometry.Epsilon {
		menu = append(menu, []geometry.Point{start, end})
	}
	if math.Abs(start.X-end.X) < geometry.Epsilon {
		menu = append(menu, []geometry.Point{start, end})
	}

	return menu
}
