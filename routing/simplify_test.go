package routing

import (
	"orthoroute/geometry"
	"reflect"
	"testing"
)

func TestSimplify(t *testing.T) {
	tests := []struct {
		name     string
		points   []geometry.Point
		expected []geometry.Point
	}{
		{
			name: "Collinear horizontal run collapses",
			points: []geometry.Point{
				{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 20, Y: 0}, {X: 30, Y: 0},
			},
			expected: []geometry.Point{{X: 0, Y: 0}, {X: 30, Y: 0}},
		},
		{
			name: "Corner is preserved",
			points: []geometry.Point{
				{X: 0, Y: 0}, {X: 20, Y: 0}, {X: 20, Y: 30},
			},
			expected: []geometry.Point{{X: 0, Y: 0}, {X: 20, Y: 0}, {X: 20, Y: 30}},
		},
		{
			name: "Zero-length bridge disappears",
			points: []geometry.Point{
				{X: 20, Y: 0}, {X: 50, Y: 0}, {X: 50, Y: 0}, {X: 80, Y: 0},
			},
			expected: []geometry.Point{{X: 20, Y: 0}, {X: 80, Y: 0}},
		},
		{
			name: "Mixed runs keep only corners",
			points: []geometry.Point{
				{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 20, Y: 0},
				{X: 20, Y: 10}, {X: 20, Y: 20},
				{X: 40, Y: 20},
			},
			expected: []geometry.Point{
				{X: 0, Y: 0}, {X: 20, Y: 0}, {X: 20, Y: 20}, {X: 40, Y: 20},
			},
		},
		{
			name:     "Two points pass through",
			points:   []geometry.Point{{X: 0, Y: 0}, {X: 5, Y: 5}},
			expected: []geometry.Point{{X: 0, Y: 0}, {X: 5, Y: 5}},
		},
		{
			name:     "Coincident pair collapses to one point",
			points:   []geometry.Point{{X: 20, Y: 0}, {X: 20, Y: 0}},
			expected: []geometry.Point{{X: 20, Y: 0}},
		},
		{
			name: "Coincident run collapses to one point",
			points: []geometry.Point{
				{X: 20, Y: 0}, {X: 20, Y: 0}, {X: 20, Y: 0}, {X: 20, Y: 0},
			},
			expected: []geometry.Point{{X: 20, Y: 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Simplify(tt.points)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Simplify = %v, want %v", got, tt.expected)
			}

			// Simplification is idempotent.
			again := Simplify(got)
			if !reflect.DeepEqual(again, got) {
				t.Errorf("Simplify not idempotent: %v -> %v", got, again)
			}
		})
	}
}
