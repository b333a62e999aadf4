package routing

import (
	"math"

	"orthoroute/geometry"
)

// avoid is the degraded-mode heuristic used when every candidate fails
// validation. It unions the obstacle boxes the default candidate actually
// struck and tries four rectilinear bypasses around that union: above,
// below, left, and right, each offset by the general padding. The shortest
// bypass that clears the full obstacle set wins. A nil return means no
// bypass validated and the caller should fall back to the unmodified
// default candidate.
//
// This is a heuristic, not a pathfinder: it always terminates and usually
// produces a plausible detour, but adversarial layouts can defeat it.
func (r *Router) avoid(req Request, fallback []geometry.Point, obstacles obstacleSets) []geometry.Point {
	if len(obstacles.general) == 0 {
		return nil
	}

	poly := polyline(req.Start, req.End, fallback)
	var struck []geometry.Box
	for _, b := range obstacles.all {
		for i := 0; i < len(poly)-1; i++ {
			if geometry.SegmentIntersectsBox(poly[i], poly[i+1], b) {
				struck = append(struck, b)
				break
			}
		}
	}
	if len(struck) == 0 {
		return nil
	}

	blocked := geometry.UnionAll(struck).Expand(r.config.ObstaclePadding)

	bypasses := [][]geometry.Point{
		{{X: req.Start.X, Y: blocked.MinY}, {X: req.End.X, Y: blocked.MinY}}, // above
		{{X: req.Start.X, Y: blocked.MaxY}, {X: req.End.X, Y: blocked.MaxY}}, // below
		{{X: blocked.MinX, Y: req.Start.Y}, {X: blocked.MinX, Y: req.End.Y}}, // left
		{{X: blocked.MaxX, Y: req.Start.Y}, {X: blocked.MaxX, Y: req.End.Y}}, // right
	}

	var best []geometry.Point
	bestLength := math.Inf(1)
	for _, detour := range bypasses {
		full := Simplify(polyline(req.Start, req.End, detour))
		if len(full) < 2 {
			// Coincident endpoints can collapse a bypass entirely.
			continue
		}
		if !bypassClear(full, obstacles.all) {
			continue
		}
		if length := geometry.PathLength(full); length < bestLength {
			best = full[1 : len(full)-1]
			bestLength = length
		}
	}
	return best
}

// bypassClear tests every segment of a bypass polyline against the full
// obstacle set. Unlike the main candidates, bypasses get no exit/entry
// exemption for the connected-shape boxes.
func bypassClear(poly []geometry.Point, boxes []geometry.Box) bool {
	for i := 0; i < len(poly)-1; i++ {
		if geometry.SegmentIntersectsAny(poly[i], poly[i+1], boxes) {
			return false
		}
	}
	return true
}
