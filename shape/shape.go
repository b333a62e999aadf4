// Package shape defines the canvas entities the router consumes: shapes
// with bounds, the anchor positions connectors attach to, and the handler
// registry that maps shape types to bounds/anchor providers.
package shape

import "orthoroute/geometry"

// TypeConnector is the shape type of connectors. Connectors are never
// treated as obstacles.
const TypeConnector = "connector"

// AnchorPosition names where on a shape's boundary a connector attaches.
// The set is open: custom shape handlers may report additional positions,
// which resolve to an inferred direction like Center does.
type AnchorPosition string

const (
	AnchorTop    AnchorPosition = "top"
	AnchorBottom AnchorPosition = "bottom"
	AnchorLeft   AnchorPosition = "left"
	AnchorRight  AnchorPosition = "right"
	AnchorCenter AnchorPosition = "center"
)

// Anchor is a named attachment point on a shape's boundary.
type Anchor struct {
	Position AnchorPosition `json:"position" yaml:"position"`
	X        float64        `json:"x" yaml:"x"`
	Y        float64        `json:"y" yaml:"y"`
}

// Shape is a canvas entity. The router only reads its id, type, and
// box geometry; everything else belongs to the rendering layer.
type Shape struct {
	ID     string  `json:"id" yaml:"id"`
	Type   string  `json:"type" yaml:"type"`
	Label  string  `json:"label,omitempty" yaml:"label,omitempty"`
	X      float64 `json:"x" yaml:"x"`
	Y      float64 `json:"y" yaml:"y"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// IsConnector reports whether the shape is a connector.
func (s Shape) IsConnector() bool {
	return s.Type == TypeConnector
}

// RoutingMode selects how a connector's path is computed.
type RoutingMode string

const (
	// ModeOrthogonal routes the connector with rectilinear segments.
	ModeOrthogonal RoutingMode = "orthogonal"
	// ModeDirect draws the connector as a straight line; the router
	// produces no waypoints for it.
	ModeDirect RoutingMode = "direct"
)

// Connector is a routed edge between two points, optionally attached to
// shapes at named anchors.
type Connector struct {
	ID          string         `json:"id" yaml:"id"`
	Start       geometry.Point `json:"start" yaml:"start"`
	End         geometry.Point `json:"end" yaml:"end"`
	StartAnchor AnchorPosition `json:"startAnchor,omitempty" yaml:"startAnchor,omitempty"`
	EndAnchor   AnchorPosition `json:"endAnchor,omitempty" yaml:"endAnchor,omitempty"`
	StartShape  string         `json:"startShape,omitempty" yaml:"startShape,omitempty"`
	EndShape    string         `json:"endShape,omitempty" yaml:"endShape,omitempty"`
	Mode        RoutingMode    `json:"mode,omitempty" yaml:"mode,omitempty"`
}

// IsOrthogonal reports whether the connector uses rectilinear routing.
// An empty mode defaults to orthogonal.
func (c Connector) IsOrthogonal() bool {
	return c.Mode == ModeOrthogonal || c.Mode == ""
}
