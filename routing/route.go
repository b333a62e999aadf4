package routing

import (
	"math"

	"orthoroute/geometry"
	"orthoroute/shape"
)

// Request describes a single routing call. Every field except Start and
// End is optional; with no shape map the route is chosen purely by length.
type Request struct {
	Start, End geometry.Point

	// StartAnchor and EndAnchor name where on their shapes the connector
	// attaches. Missing or center anchors get an inferred exit direction.
	StartAnchor, EndAnchor shape.AnchorPosition

	// Shapes is the obstacle candidate pool, keyed by id.
	Shapes map[string]shape.Shape

	// Exclude lists shape ids never treated as obstacles. Callers must
	// include the connector's own id here.
	Exclude map[string]bool

	// StartShape and EndShape identify the shapes the connector attaches
	// to; they get the thin connected-obstacle padding instead of the
	// general one.
	StartShape, EndShape string
}

// Router computes rectilinear connector paths. It holds only configuration
// and the shape registry; calls share no mutable state and are safe to
// issue concurrently.
type Router struct {
	config   Config
	registry *shape.Registry
}

// NewRouter creates a router with the default configuration. A nil
// registry gets a fresh one with the box handler fallback.
func NewRouter(registry *shape.Registry) *Router {
	if registry == nil {
		registry = shape.NewRegistry()
	}
	return &Router{config: DefaultConfig, registry: registry}
}

// SetConfig replaces the routing tunables.
func (r *Router) SetConfig(config Config) {
	r.config = config
}

// Route computes the interior waypoints of a rectilinear path from
// req.Start to req.End. The returned list excludes the endpoints
// themselves; start, waypoints and end form a polyline of purely
// horizontal and vertical segments.
//
// Route never fails: when no candidate clears the obstacles it degrades to
// the bypass heuristic, and when even that fails it returns the default
// candidate regardless of collisions.
func (r *Router) Route(req Request) []geometry.Point {
	startDir := ExitDirection(req.StartAnchor, req.Start, req.End)
	endDir := ExitDirection(req.EndAnchor, req.End, req.Start)

	startStub := stub(req.Start, startDir, r.config.StubLength)
	endStub := stub(req.End, endDir, r.config.StubLength)

	obstacles := r.collectObstacles(req)

	menu := candidates(startStub, endStub, startDir.Y == 0, endDir.Y == 0)

	var first, best []geometry.Point
	bestLength := math.Inf(1)
	for i, candidate := range menu {
		waypoints := Simplify(candidate)
		if i == 0 {
			first = waypoints
		}
		poly := polyline(req.Start, req.End, waypoints)
		if !obstacles.validates(poly) {
			continue
		}
		// Strictly-less keeps the earliest candidate on ties.
		if length := geometry.PathLength(poly); length < bestLength {
			best = waypoints
			bestLength = length
		}
	}
	if best != nil {
		return best
	}

	if detour := r.avoid(req, first, obstacles); detour != nil {
		return detour
	}
	return first
}

// RouteConnector routes a connector against a shape map. It returns
// (nil, false) for connectors not configured for rectilinear routing.
// Endpoint coordinates are resolved from the attached shapes' anchors when
// the connector names both a shape and an anchor position.
func (r *Router) RouteConnector(c shape.Connector, shapes map[string]shape.Shape) ([]geometry.Point, bool) {
	if !c.IsOrthogonal() {
		return nil, false
	}

	start, end := r.Endpoints(c, shapes)
	req := Request{
		Start:       start,
		End:         end,
		StartAnchor: c.StartAnchor,
		EndAnchor:   c.EndAnchor,
		Shapes:      shapes,
		Exclude:     map[string]bool{c.ID: true},
		StartShape:  c.StartShape,
		EndShape:    c.EndShape,
	}
	return r.Route(req), true
}

// RouteAll routes every orthogonal connector in a document and returns the
// waypoints keyed by connector id. Direct-mode connectors are skipped.
func (r *Router) RouteAll(connectors []shape.Connector, shapes map[string]shape.Shape) map[string][]geometry.Point {
	routed := make(map[string][]geometry.Point)
	for _, c := range connectors {
		if waypoints, ok := r.RouteConnector(c, shapes); ok {
			routed[c.ID] = waypoints
		}
	}
	return routed
}

// Endpoints resolves a connector's start and end coordinates, preferring
// the attached shapes' named anchors over the stored points. Renderers use
// the same resolution so drawn paths line up with routed ones.
func (r *Router) Endpoints(c shape.Connector, shapes map[string]shape.Shape) (geometry.Point, geometry.Point) {
	start := r.anchorPoint(shapes, c.StartShape, c.StartAnchor, c.Start)
	end := r.anchorPoint(shapes, c.EndShape, c.EndAnchor, c.End)
	return start, end
}

// anchorPoint resolves an endpoint coordinate from the attached shape's
// anchor of the given position, falling back to the stored point when the
// shape or anchor cannot be found.
func (r *Router) anchorPoint(shapes map[string]shape.Shape, id string, pos shape.AnchorPosition, fallback geometry.Point) geometry.Point {
	if id == "" || pos == "" {
		return fallback
	}
	s, ok := shapes[id]
	if !ok {
		return fallback
	}
	for _, a := range r.registry.Anchors(s) {
		if a.Position == pos {
			return geometry.Point{X: a.X, Y: a.Y}
		}
	}
	return fallback
}

// polyline builds the full path: start, interior waypoints, end.
func polyline(start, end geometry.Point, waypoints []geometry.Point) []geometry.Point {
	poly := make([]geometry.Point, 0, len(waypoints)+2)
	poly = append(poly, start)
	poly = append(poly, waypoints...)
	poly = append(poly, end)
	return poly
}
