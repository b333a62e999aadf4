package terminal

import (
	"strings"
	"testing"

	"orthoroute/geometry"
	"orthoroute/importer"
	"orthoroute/shape"
)

func TestRenderBoxesAndConnector(t *testing.T) {
	doc := &importer.Document{
		Shapes: []shape.Shape{
			{ID: "a", Type: "box", Label: "A", X: 0, Y: 0, Width: 100, Height: 40},
			{ID: "b", Type: "box", Label: "B", X: 300, Y: 0, Width: 100, Height: 40},
		},
		Connectors: []shape.Connector{
			{ID: "c1", StartShape: "a", StartAnchor: shape.AnchorRight,
				EndShape: "b", EndAnchor: shape.AnchorLeft},
		},
	}

	grid := Render(doc, nil)
	out := grid.String()

	// Both boxes have corners.
	for _, glyph := range []string{"┌", "┐", "└", "┘"} {
		if strings.Count(out, glyph) < 2 {
			t.Errorf("Expected at least 2 %q corners:\n%s", glyph, out)
		}
	}
	if !strings.Contains(out, "A") || !strings.Contains(out, "B") {
		t.Errorf("Labels missing:\n%s", out)
	}

	// The connector runs horizontally between the boxes on the middle row.
	if grid.At(15, 1) != '─' {
		t.Errorf("Expected connector line at (15,1), got %q:\n%s", grid.At(15, 1), out)
	}
}

func TestRenderCornerGlyphs(t *testing.T) {
	// Right exit then down entry forces at least one turn.
	doc := &importer.Document{
		Shapes: []shape.Shape{
			{ID: "a", Type: "box", X: 0, Y: 0, Width: 100, Height: 40},
			{ID: "b", Type: "box", X: 300, Y: 200, Width: 100, Height: 40},
		},
		Connectors: []shape.Connector{
			{ID: "c1", StartShape: "a", StartAnchor: shape.AnchorRight,
				EndShape: "b", EndAnchor: shape.AnchorLeft},
		},
	}

	grid := Render(doc, nil)
	out := grid.String()

	if !strings.Contains(out, "│") {
		t.Errorf("Expected a vertical connector segment:\n%s", out)
	}
	// Corner glyph count: box corners contribute 8, turns add more.
	corners := strings.Count(out, "┌") + strings.Count(out, "┐") +
		strings.Count(out, "└") + strings.Count(out, "┘")
	if corners <= 8 {
		t.Errorf("Expected connector turn glyphs beyond the 8 box corners, got %d:\n%s", corners, out)
	}
}

func TestRenderNegativeCoordinates(t *testing.T) {
	doc := &importer.Document{
		Shapes: []shape.Shape{
			{ID: "a", Type: "box", Label: "A", X: -100, Y: -80, Width: 100, Height: 40},
			{ID: "b", Type: "box", Label: "B", X: 200, Y: 40, Width: 100, Height: 40},
		},
		Connectors: []shape.Connector{
			{ID: "c1", StartShape: "a", StartAnchor: shape.AnchorRight,
				EndShape: "b", EndAnchor: shape.AnchorLeft},
		},
	}

	grid := Render(doc, nil)
	out := grid.String()

	// Shape a sits at the world minimum, so its top-left corner lands at
	// cell (0,0) once the grid is shifted; nothing is clipped away.
	if grid.At(0, 0) != '┌' {
		t.Errorf("Expected shifted box corner at (0,0), got %q:\n%s", grid.At(0, 0), out)
	}
	if !strings.Contains(out, "A") || !strings.Contains(out, "B") {
		t.Errorf("Labels missing:\n%s", out)
	}
	if !strings.Contains(out, "│") {
		t.Errorf("Expected a vertical connector segment:\n%s", out)
	}
}

func TestCornerGlyph(t *testing.T) {
	tests := []struct {
		name          string
		from, mid, to geometry.Point
		expected      rune
	}{
		{"Left to down", geometry.Point{X: 0, Y: 0}, geometry.Point{X: 10, Y: 0}, geometry.Point{X: 10, Y: 10}, '┐'},
		{"Left to up", geometry.Point{X: 0, Y: 10}, geometry.Point{X: 10, Y: 10}, geometry.Point{X: 10, Y: 0}, '┘'},
		{"Right to down", geometry.Point{X: 20, Y: 0}, geometry.Point{X: 10, Y: 0}, geometry.Point{X: 10, Y: 10}, '┌'},
		{"Above to right", geometry.Point{X: 10, Y: 0}, geometry.Point{X: 10, Y: 10}, geometry.Point{X: 20, Y: 10}, '└'},
		{"Below to left", geometry.Point{X: 10, Y: 20}, geometry.Point{X: 10, Y: 10}, geometry.Point{X: 0, Y: 10}, '┐'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cornerGlyph(tt.from, tt.mid, tt.to); got != tt.expected {
				t.Errorf("cornerGlyph = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestGridBounds(t *testing.T) {
	g := NewGrid(5, 3)
	g.Set(-1, 0, 'x')
	g.Set(0, -1, 'x')
	g.Set(5, 0, 'x')
	g.Set(0, 3, 'x')
	if strings.ContainsRune(g.String(), 'x') {
		t.Error("Out-of-bounds writes should be ignored")
	}

	g.Set(4, 2, 'y')
	if g.At(4, 2) != 'y' {
		t.Error("In-bounds write lost")
	}
	if g.At(40, 20) != ' ' {
		t.Error("Out-of-bounds read should return space")
	}
}
