package shape

import "orthoroute/geometry"

// Handler describes a shape type to the router: its bounding box and the
// anchors connectors may attach to. Handlers never render or mutate.
type Handler interface {
	Bounds(s Shape) geometry.Box
	Anchors(s Shape) []Anchor
}

// Registry maps shape types to handlers. The zero value is not usable;
// create one with NewRegistry, which installs the box handler as the
// fallback for unknown types.
type Registry struct {
	handlers map[string]Handler
	fallback Handler
}

// NewRegistry creates a registry with BoxHandler as the fallback.
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[string]Handler),
		fallback: BoxHandler{},
	}
}

// Register installs a handler for a shape type, replacing any existing one.
func (r *Registry) Register(shapeType string, h Handler) {
	r.handlers[shapeType] = h
}

// Lookup returns the handler for a shape type, falling back to the box
// handler when the type is unknown.
func (r *Registry) Lookup(shapeType string) Handler {
	if h, ok := r.handlers[shapeType]; ok {
		return h
	}
	return r.fallback
}

// Bounds returns the bounding box of s via its registered handler.
func (r *Registry) Bounds(s Shape) geometry.Box {
	return r.Lookup(s.Type).Bounds(s)
}

// Anchors returns the anchors of s via its registered handler.
func (r *Registry) Anchors(s Shape) []Anchor {
	return r.Lookup(s.Type).Anchors(s)
}

// BoxHandler treats a shape as its plain axis-aligned rectangle, with the
// four midpoint-of-side anchors plus a center anchor.
type BoxHandler struct{}

// Bounds returns the shape's rectangle.
func (BoxHandler) Bounds(s Shape) geometry.Box {
	return geometry.NewBox(s.X, s.Y, s.Width, s.Height)
}

// Anchors returns the four side midpoints and the center.
func (BoxHandler) Anchors(s Shape) []Anchor {
	cx := s.X + s.Width/2
	cy := s.Y + s.Height/2
	return []Anchor{
		{Position: AnchorTop, X: cx, Y: s.Y},
		{Position: AnchorBottom, X: cx, Y: s.Y + s.Height},
		{Position: AnchorLeft, X: s.X, Y: cy},
		{Position: AnchorRight, X: s.X + s.Width, Y: cy},
		{Position: AnchorCenter, X: cx, Y: cy},
	}
}
