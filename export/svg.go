// Package export renders routed documents as SVG: shapes as rectangles,
// connectors as rectilinear polylines over their routed waypoints.
package export

import (
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
	"github.com/samber/lo"

	"orthoroute/geometry"
	"orthoroute/importer"
	"orthoroute/routing"
)

const (
	canvasMargin = 20.0

	shapeStyle     = "fill:#f4f6fb;stroke:#3b4252;stroke-width:1.5"
	labelStyle     = "text-anchor:middle;dominant-baseline:middle;font-family:sans-serif;font-size:13px;fill:#2e3440"
	connectorStyle = "fill:none;stroke:#5e81ac;stroke-width:2"
	endpointStyle  = "fill:#5e81ac"
)

// WriteSVG routes every connector in the document and writes the result
// as an SVG image.
func WriteSVG(w io.Writer, doc *importer.Document, router *routing.Router) error {
	if router == nil {
		router = routing.NewRouter(nil)
	}
	shapes := doc.ShapeMap()
	routed := router.RouteAll(doc.Connectors, shapes)

	polylines := make(map[string][]geometry.Point, len(doc.Connectors))
	for _, c := range doc.Connectors {
		start, end := router.Endpoints(c, shapes)
		poly := []geometry.Point{start}
		poly = append(poly, routed[c.ID]...)
		poly = append(poly, end)
		polylines[c.ID] = poly
	}

	bounds := documentBounds(doc, polylines).Expand(canvasMargin)

	canvas := svg.New(w)
	canvas.Startview(
		int(math.Ceil(bounds.Width())),
		int(math.Ceil(bounds.Height())),
		int(math.Floor(bounds.MinX)),
		int(math.Floor(bounds.MinY)),
		int(math.Ceil(bounds.Width())),
		int(math.Ceil(bounds.Height())),
	)

	for _, s := range doc.Shapes {
		if s.IsConnector() {
			continue
		}
		canvas.Rect(int(s.X), int(s.Y), int(s.Width), int(s.Height), shapeStyle)
		if s.Label != "" {
			canvas.Text(int(s.X+s.Width/2), int(s.Y+s.Height/2), s.Label, labelStyle)
		}
	}

	for _, c := range doc.Connectors {
		poly := polylines[c.ID]
		xs := lo.Map(poly, func(p geometry.Point, _ int) int { return int(math.Round(p.X)) })
		ys := lo.Map(poly, func(p geometry.Point, _ int) int { return int(math.Round(p.Y)) })
		canvas.Polyline(xs, ys, connectorStyle)
		canvas.Circle(xs[0], ys[0], 3, endpointStyle)
		canvas.Circle(xs[len(xs)-1], ys[len(ys)-1], 3, endpointStyle)
	}

	canvas.End()
	return nil
}

// documentBounds returns the bounding box of all shapes and connector
// polylines, so the viewBox covers detours that leave the shape area.
func documentBounds(doc *importer.Document, polylines map[string][]geometry.Point) geometry.Box {
	var boxes []geometry.Box
	for _, s := range doc.Shapes {
		boxes = append(boxes, geometry.NewBox(s.X, s.Y, s.Width, s.Height))
	}
	for _, poly := range polylines {
		for _, p := range poly {
			boxes = append(boxes, geometry.Box{MinX: p.X, MinY: p.Y, MaxX: p.X, MaxY: p.Y})
		}
	}
	if len(boxes) == 0 {
		return geometry.NewBox(0, 0, 100, 100)
	}
	return geometry.UnionAll(boxes)
}
