// Package draw provides the raster surface the renderer draws into and the
// ways a host presents it: ANSI half-blocks for terminals and a composited
// RGBA image for windows and browsers.
package draw

import "image/color"

// Point represents a 2D coordinate in logical units.
type Point struct {
	X, Y float64
}

// Surface is an addressable 2D drawing target. All coordinates are logical
// viewport units; implementations scale them to their pixel size.
type Surface interface {
	// Size returns the logical width and height.
	Size() (width, height float64)
	// BeginFrame drops per-frame overlays such as text labels.
	BeginFrame()
	// Clear paints the whole surface with c.
	Clear(c color.Color)
	FillRect(x, y, w, h float64, c color.Color)
	StrokeRect(x, y, w, h, lineWidth float64, c color.Color)
	// VerticalGradient fills a rectangle blending from top to bottom.
	VerticalGradient(x, y, w, h float64, top, bottom color.Color)
	FillCircle(cx, cy, r float64, c color.Color)
	StrokeCircle(cx, cy, r, lineWidth float64, c color.Color)
	Line(x1, y1, x2, y2, lineWidth float64, c color.Color)
	FillPolygon(points []Point, c color.Color)
	// Text places a label with its baseline-left corner at (x, y).
	// size is the logical glyph height.
	Text(x, y, size float64, s string, c color.Color)
}

// Label is a piece of text queued for presentation on top of the raster.
type Label struct {
	X, Y  float64
	Size  float64
	Text  string
	Color color.Color
}
