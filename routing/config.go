// Package routing computes rectilinear connector paths between two points
// on a canvas, avoiding other shapes. The router evaluates a fixed menu of
// Z- and L-shaped candidates between stub points, rejects candidates whose
// segments cross padded obstacle boxes, and picks the shortest survivor,
// degrading to a bypass heuristic and finally to the unvalidated default
// candidate. Every call is a pure computation; the router holds no state
// between calls.
package routing

// Config holds the routing tunables.
type Config struct {
	// StubLength is the minimum straight run projected from each endpoint
	// along its exit direction before the path may turn.
	StubLength float64
	// ObstaclePadding is the clearance added around unrelated shapes.
	ObstaclePadding float64
	// ConnectedPadding is the thinner clearance added around the shapes
	// the connector itself attaches to. Segments leaving or entering an
	// attachment shape are expected to graze its boundary, so only a
	// close pass should count as a collision there.
	ConnectedPadding float64
}

// DefaultConfig provides reasonable defaults for diagram routing.
var DefaultConfig = Config{
	StubLength:       20,
	ObstaclePadding:  15,
	ConnectedPadding: 2,
}
