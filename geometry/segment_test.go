package geometry

import "testing"

func TestSegmentIntersectsBox(t *testing.T) {
	box := NewBox(10, 10, 20, 20) // spans (10,10)-(30,30)

	tests := []struct {
		name     string
		p1, p2   Point
		expected bool
	}{
		{
			name: "Horizontal segment through middle",
			p1:   Point{X: 0, Y: 20}, p2: Point{X: 40, Y: 20},
			expected: true,
		},
		{
			name: "Horizontal segment above box",
			p1:   Point{X: 0, Y: 5}, p2: Point{X: 40, Y: 5},
			expected: false,
		},
		{
			name: "Vertical segment through middle",
			p1:   Point{X: 20, Y: 0}, p2: Point{X: 20, Y: 40},
			expected: true,
		},
		{
			name: "Vertical segment left of box",
			p1:   Point{X: 5, Y: 0}, p2: Point{X: 5, Y: 40},
			expected: false,
		},
		{
			name: "Diagonal through box",
			p1:   Point{X: 0, Y: 0}, p2: Point{X: 40, Y: 40},
			expected: true,
		},
		{
			name: "Diagonal missing box",
			p1:   Point{X: 0, Y: 25}, p2: Point{X: 5, Y: 40},
			expected: false,
		},
		{
			name: "Segment entirely inside box",
			p1:   Point{X: 15, Y: 15}, p2: Point{X: 25, Y: 25},
			expected: true,
		},
		{
			name: "Segment stopping short of box",
			p1:   Point{X: 0, Y: 20}, p2: Point{X: 8, Y: 20},
			expected: false,
		},
		{
			name: "Segment touching box edge",
			p1:   Point{X: 0, Y: 10}, p2: Point{X: 40, Y: 10},
			expected: true,
		},
		{
			name: "Degenerate point inside",
			p1:   Point{X: 20, Y: 20}, p2: Point{X: 20, Y: 20},
			expected: true,
		},
		{
			name: "Degenerate point outside",
			p1:   Point{X: 0, Y: 0}, p2: Point{X: 0, Y: 0},
			expected: false,
		},
		{
			name: "Vertical segment ending before box",
			p1:   Point{X: 20, Y: 0}, p2: Point{X: 20, Y: 9},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SegmentIntersectsBox(tt.p1, tt.p2, box); got != tt.expected {
				t.Errorf("SegmentIntersectsBox(%v, %v) = %v, want %v",
					tt.p1, tt.p2, got, tt.expected)
			}
			// The test is symmetric in its endpoints.
			if got := SegmentIntersectsBox(tt.p2, tt.p1, box); got != tt.expected {
				t.Errorf("SegmentIntersectsBox(%v, %v) = %v, want %v (reversed)",
					tt.p2, tt.p1, got, tt.expected)
			}
		})
	}
}

func TestSegmentIntersectsAny(t *testing.T) {
	boxes := []Box{
		NewBox(10, 10, 5, 5),
		NewBox(50, 50, 5, 5),
	}

	if !SegmentIntersectsAny(Point{X: 0, Y: 12}, Point{X: 100, Y: 12}, boxes) {
		t.Error("Segment through first box should intersect")
	}
	if SegmentIntersectsAny(Point{X: 0, Y: 0}, Point{X: 100, Y: 0}, boxes) {
		t.Error("Segment missing both boxes should not intersect")
	}
	if SegmentIntersectsAny(Point{X: 0, Y: 0}, Point{X: 100, Y: 0}, nil) {
		t.Error("No boxes should never intersect")
	}
}
