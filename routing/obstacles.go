package routing

import (
	"sort"

	"github.com/samber/lo"

	"orthoroute/geometry"
)

// obstacleSets holds the two padded box collections a route is validated
// against. The sets are disjoint: general covers unrelated shapes with a
// generous clearance, connected covers only the connector's own attachment
// shapes with a thin one.
type obstacleSets struct {
	general   []geometry.Box
	connected []geometry.Box
	all       []geometry.Box
}

// empty reports whether no obstacles were collected at all.
func (o obstacleSets) empty() bool {
	return len(o.all) == 0
}

// collectObstacles builds both obstacle sets from the request's shape map.
// General obstacles: every shape that is not excluded, not a connector,
// and not one of the connector's own attachment shapes, expanded by the
// general padding. Connected obstacles: the attachment shapes themselves,
// expanded by the thin padding. Shape ids are visited in sorted order so
// the sets, and therefore the routing result, are deterministic.
func (r *Router) collectObstacles(req Request) obstacleSets {
	var sets obstacleSets
	if len(req.Shapes) == 0 {
		return sets
	}

	ids := lo.Keys(req.Shapes)
	sort.Strings(ids)

	for _, id := range ids {
		s := req.Shapes[id]
		if req.Exclude[id] || s.IsConnector() {
			continue
		}
		if id == req.StartShape || id == req.EndShape {
			continue
		}
		sets.general = append(sets.general,
			r.registry.Bounds(s).Expand(r.config.ObstaclePadding))
	}

	for _, id := range []string{req.StartShape, req.EndShape} {
		if id == "" {
			continue
		}
		s, ok := req.Shapes[id]
		if !ok || s.IsConnector() {
			continue
		}
		sets.connected = append(sets.connected,
			r.registry.Bounds(s).Expand(r.config.ConnectedPadding))
	}

	sets.all = append(append([]geometry.Box{}, sets.general...), sets.connected...)
	return sets
}

// validates reports whether every segment of the polyline clears its
// applicable obstacle set. The first (exit) and last (entry) segments are
// tested only against the general set, since they necessarily run through
// the thin boxes around the connector's own shapes. Interior segments are
// tested against both sets, which keeps the path from cutting back through
// the shapes it originates or terminates on.
func (o obstacleSets) validates(poly []geometry.Point) bool {
	for i := 0; i < len(poly)-1; i++ {
		blocked := o.all
		if i == 0 || i == len(poly)-2 {
			blocked = o.general
		}
		if geometry.SegmentIntersectsAny(poly[i], poly[i+1], blocked) {
			return false
		}
	}
	return true
}
