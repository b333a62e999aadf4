package geometry

import "math"

// SegmentIntersectsBox reports whether the segment p1→p2 crosses the box.
// It is the Liang–Barsky parametric clip: the segment's parameter interval
// [0,1] is clipped against the box's boundary planes on each axis, and the
// segment hits the box iff the clipped interval is non-empty.
//
// Axis-aligned segments (dx or dy below Epsilon) skip the division for that
// axis and use a coordinate-range containment check instead.
func SegmentIntersectsBox(p1, p2 Point, b Box) bool {
	dx := p2.X - p1.X
	dy := p2.Y - p1.Y

	tMin, tMax := 0.0, 1.0

	if math.Abs(dx) < Epsilon {
		if p1.X < b.MinX || p1.X > b.MaxX {
			return false
		}
	} else {
		t1 := (b.MinX - p1.X) / dx
		t2 := (b.MaxX - p1.X) / dx
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
	}

	if math.Abs(dy) < Epsilon {
		if p1.Y < b.MinY || p1.Y > b.MaxY {
			return false
		}
	} else {
		t1 := (b.MinY - p1.Y) / dy
		t2 := (b.MaxY - p1.Y) / dy
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
	}

	return tMin <= tMax
}

// SegmentIntersectsAny reports whether the segment p1→p2 crosses any of
// the given boxes.
func SegmentIntersectsAny(p1, p2 Point, boxes []Box) bool {
	for _, b := range boxes {
		if SegmentIntersectsBox(p1, p2, b) {
			return true
		}
	}
	return false
}
