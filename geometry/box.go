package geometry

import "math"

// Box is an axis-aligned rectangle. Invariant: MinX <= MaxX and MinY <= MaxY.
type Box struct {
	MinX, MinY, MaxX, MaxY float64
}

// NewBox returns a Box spanning the given corner and size.
func NewBox(x, y, width, height float64) Box {
	return Box{MinX: x, MinY: y, MaxX: x + width, MaxY: y + height}
}

// Width returns the horizontal extent of the box.
func (b Box) Width() float64 {
	return b.MaxX - b.MinX
}

// Height returns the vertical extent of the box.
func (b Box) Height() float64 {
	return b.MaxY - b.MinY
}

// Center returns the center point of the box.
func (b Box) Center() Point {
	return Point{X: (b.MinX + b.MaxX) / 2, Y: (b.MinY + b.MaxY) / 2}
}

// Contains reports whether p lies inside the box or on its boundary.
func (b Box) Contains(p Point) bool {
	return p.X >= b.MinX && p.X <= b.MaxX &&
		p.Y >= b.MinY && p.Y <= b.MaxY
}

// Expand returns the box grown outward by pad on every side.
func (b Box) Expand(pad float64) Box {
	return Box{
		MinX: b.MinX - pad,
		MinY: b.MinY - pad,
		MaxX: b.MaxX + pad,
		MaxY: b.MaxY + pad,
	}
}

// Union returns the smallest box covering both b and o.
func (b Box) Union(o Box) Box {
	return Box{
		MinX: math.Min(b.MinX, o.MinX),
		MinY: math.Min(b.MinY, o.MinY),
		MaxX: math.Max(b.MaxX, o.MaxX),
		MaxY: math.Max(b.MaxY, o.MaxY),
	}
}

// UnionAll returns the bounding box of all the given boxes.
// It returns the zero Box when the slice is empty.
func UnionAll(boxes []Box) Box {
	if len(boxes) == 0 {
		return Box{}
	}
	union := boxes[0]
	for _, b := range boxes[1:] {
		union = union.Union(b)
	}
	return union
}
