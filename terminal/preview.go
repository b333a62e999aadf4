// Package terminal renders a routed document in the terminal: shapes as
// boxes, connectors as box-drawing polylines. Preview opens a tcell screen
// and blocks until the user quits; Render draws into a plain rune grid and
// is what the tests exercise.
package terminal

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"orthoroute/geometry"
	"orthoroute/importer"
	"orthoroute/routing"
)

// Grid is a rune matrix in cell coordinates, row-major.
type Grid struct {
	Cells  [][]rune
	Width  int
	Height int
}

// NewGrid creates a space-filled grid.
func NewGrid(width, height int) *Grid {
	cells := make([][]rune, height)
	for y := range cells {
		row := make([]rune, width)
		for x := range row {
			row[x] = ' '
		}
		cells[y] = row
	}
	return &Grid{Cells: cells, Width: width, Height: height}
}

// Set places a rune, ignoring out-of-bounds coordinates.
func (g *Grid) Set(x, y int, r rune) {
	if x < 0 || y < 0 || x >= g.Width || y >= g.Height {
		return
	}
	g.Cells[y][x] = r
}

// At returns the rune at a cell, or space when out of bounds.
func (g *Grid) At(x, y int) rune {
	if x < 0 || y < 0 || x >= g.Width || y >= g.Height {
		return ' '
	}
	return g.Cells[y][x]
}

// String renders the grid as lines, for assertions and debugging.
func (g *Grid) String() string {
	out := make([]rune, 0, (g.Width+1)*g.Height)
	for _, row := range g.Cells {
		out = append(out, row...)
		out = append(out, '\n')
	}
	return string(out)
}

// worldScale maps world units to terminal cells. Terminals are roughly
// twice as tall per cell as they are wide, hence the asymmetry.
const (
	cellWidth  = 10.0
	cellHeight = 20.0
)

func toCell(p geometry.Point) (int, int) {
	return int(math.Round(p.X / cellWidth)), int(math.Round(p.Y / cellHeight))
}

// Render routes the document and draws it into a grid sized to fit.
func Render(doc *importer.Document, router *routing.Router) *Grid {
	if router == nil {
		router = routing.NewRouter(nil)
	}
	shapes := doc.ShapeMap()
	routed := router.RouteAll(doc.Connectors, shapes)

	width, height, origin := gridSize(doc, routed, router)
	grid := NewGrid(width, height)

	for _, s := range doc.Shapes {
		if s.IsConnector() {
			continue
		}
		drawBox(grid, s.X-origin.X, s.Y-origin.Y, s.Width, s.Height, s.Label)
	}
	for _, c := range doc.Connectors {
		start, end := router.Endpoints(c, shapes)
		poly := []geometry.Point{start.Sub(origin)}
		for _, p := range routed[c.ID] {
			poly = append(poly, p.Sub(origin))
		}
		poly = append(poly, end.Sub(origin))
		drawPolyline(grid, poly)
	}
	return grid
}

// gridSize returns the grid dimensions and the world coordinate of cell
// (0,0), covering every shape and waypoint. Routes that detour above or
// left of the world origin shift the whole grid rather than getting
// clipped at cell zero.
func gridSize(doc *importer.Document, routed map[string][]geometry.Point, router *routing.Router) (int, int, geometry.Point) {
	minX, minY := 0.0, 0.0
	maxX, maxY := 40.0, 10.0
	track := func(p geometry.Point) {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	for _, s := range doc.Shapes {
		track(geometry.Point{X: s.X, Y: s.Y})
		track(geometry.Point{X: s.X + s.Width, Y: s.Y + s.Height})
	}
	shapes := doc.ShapeMap()
	for _, c := range doc.Connectors {
		start, end := router.Endpoints(c, shapes)
		track(start)
		track(end)
		for _, p := range routed[c.ID] {
			track(p)
		}
	}
	origin := geometry.Point{X: minX, Y: minY}
	return int((maxX-minX)/cellWidth) + 3, int((maxY-minY)/cellHeight) + 2, origin
}

func drawBox(g *Grid, x, y, w, h float64, label string) {
	x0, y0 := toCell(geometry.Point{X: x, Y: y})
	x1, y1 := toCell(geometry.Point{X: x + w, Y: y + h})
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	for cx := x0 + 1; cx < x1; cx++ {
		g.Set(cx, y0, '─')
		g.Set(cx, y1, '─')
	}
	for cy := y0 + 1; cy < y1; cy++ {
		g.Set(x0, cy, '│')
		g.Set(x1, cy, '│')
	}
	g.Set(x0, y0, '┌')
	g.Set(x1, y0, '┐')
	g.Set(x0, y1, '└')
	g.Set(x1, y1, '┘')

	// Center the label on the middle row, clipped to the interior.
	inner := x1 - x0 - 1
	if label != "" && inner > 0 {
		runes := []rune(label)
		if len(runes) > inner {
			runes = runes[:inner]
		}
		lx := x0 + 1 + (inner-len(runes))/2
		ly := (y0 + y1) / 2
		for i, r := range runes {
			g.Set(lx+i, ly, r)
		}
	}
}

func drawPolyline(g *Grid, poly []geometry.Point) {
	for i := 0; i < len(poly)-1; i++ {
		drawSegment(g, poly[i], poly[i+1])
	}
	// Corners after the straight runs so they overwrite line glyphs.
	for i := 1; i < len(poly)-1; i++ {
		cx, cy := toCell(poly[i])
		g.Set(cx, cy, cornerGlyph(poly[i-1], poly[i], poly[i+1]))
	}
}

func drawSegment(g *Grid, from, to geometry.Point) {
	x0, y0 := toCell(from)
	x1, y1 := toCell(to)
	if y0 == y1 {
		if x1 < x0 {
			x0, x1 = x1, x0
		}
		for x := x0; x <= x1; x++ {
			g.Set(x, y0, '─')
		}
		return
	}
	if x0 == x1 {
		if y1 < y0 {
			y0, y1 = y1, y0
		}
		for y := y0; y <= y1; y++ {
			g.Set(x0, y, '│')
		}
	}
}

// cornerGlyph picks the box-drawing corner for the turn at mid.
func cornerGlyph(from, mid, to geometry.Point) rune {
	dxIn := mid.X - from.X
	dyIn := mid.Y - from.Y
	dxOut := to.X - mid.X
	dyOut := to.Y - mid.Y

	horizontalIn := math.Abs(dxIn) > math.Abs(dyIn)
	if horizontalIn {
		if dxIn > 0 { // arriving from the left
			if dyOut > 0 {
				return '┐'
			}
			return '┘'
		}
		if dyOut > 0 { // arriving from the right
			return '┌'
		}
		return '└'
	}
	if dyIn > 0 { // arriving from above
		if dxOut > 0 {
			return '└'
		}
		return '┘'
	}
	if dxOut > 0 { // arriving from below
		return '┌'
	}
	return '┐'
}

// Preview draws the routed document on a tcell screen and blocks until
// the user presses Esc, q, or Ctrl-C.
func Preview(doc *importer.Document, router *routing.Router) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("opening screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initialising screen: %w", err)
	}
	defer screen.Fini()

	grid := Render(doc, router)
	style := tcell.StyleDefault

	screen.Clear()
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			if r := grid.At(x, y); r != ' ' {
				screen.SetContent(x, y, r, nil, style)
			}
		}
	}
	screen.Show()

	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				return nil
			}
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}
