package draw

import (
	"image"
	"image/color"
	stddraw "image/draw"
	"math"
	"strings"

	"golang.org/x/image/vector"
)

// Canvas is an RGBA raster that scales from logical coordinates to pixels.
// Shapes are anti-aliased by the x/image vector rasterizer and composited
// with source-over blending, so translucent colours fade into what is
// already drawn.
type Canvas struct {
	pixelWidth  int
	pixelHeight int
	img         *image.RGBA

	// Scaling from logical to pixel coordinates
	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // pixelWidth / logicalWidth
	scaleY        float64 // pixelHeight / logicalHeight

	// Offset for centering the render area when presenting to a terminal.
	// These are 0-based terminal offsets (columns/rows to skip).
	offsetCol int
	offsetRow int

	labels []Label

	// Reusable buffers to reduce allocations
	raster     *vector.Rasterizer
	renderBuf  strings.Builder // Buffer for batching terminal output
	composite  *image.RGBA     // Raster plus labels, see Composite
	glyphBuf   *image.RGBA     // Scratch image for unscaled label text
	polygonBuf []Point         // Reusable buffer for circle point generation
	innerBuf   []Point         // Reusable buffer for ring inner contours
}

// Compile-time check that Canvas implements Surface.
var _ Surface = (*Canvas)(nil)

// NewCanvas creates a canvas whose pixel size equals its logical size.
func NewCanvas(width, height int) *Canvas {
	return NewScaledCanvas(width, height, float64(width), float64(height))
}

// NewScaledCanvas creates a canvas that scales from logical coordinates to pixels.
// logicalWidth/Height define the coordinate space used by the renderer.
// pixelWidth/Height are the raster dimensions.
func NewScaledCanvas(pixelWidth, pixelHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
		raster:        vector.NewRasterizer(1, 1),
	}
	c.Resize(pixelWidth, pixelHeight)
	return c
}

// Resize updates the raster for new pixel dimensions while keeping logical size.
func (c *Canvas) Resize(pixelWidth, pixelHeight int) {
	if pixelWidth < 0 {
		pixelWidth = 0
	}
	if pixelHeight < 0 {
		pixelHeight = 0
	}

	// Reallocate if size changed
	if c.img == nil || pixelWidth != c.pixelWidth || pixelHeight != c.pixelHeight {
		c.img = image.NewRGBA(image.Rect(0, 0, pixelWidth, pixelHeight))
		c.pixelWidth = pixelWidth
		c.pixelHeight = pixelHeight
	}

	// Update scale factors
	if c.logicalWidth > 0 && c.logicalHeight > 0 {
		c.scaleX = float64(pixelWidth) / c.logicalWidth
		c.scaleY = float64(pixelHeight) / c.logicalHeight
	}
}

// SetOffset sets the column and row offset for centering the canvas.
// Offsets are 0-based terminal positions: the canvas starts at (offsetCol+1, offsetRow+1).
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

// Size returns the logical dimensions.
func (c *Canvas) Size() (float64, float64) {
	return c.logicalWidth, c.logicalHeight
}

// PixelSize returns the raster dimensions.
func (c *Canvas) PixelSize() (int, int) {
	return c.pixelWidth, c.pixelHeight
}

// Labels returns the labels queued this frame.
func (c *Canvas) Labels() []Label {
	return c.labels
}

// BeginFrame drops the labels of the previous frame.
func (c *Canvas) BeginFrame() {
	c.labels = c.labels[:0]
}

// Clear paints every pixel with col, replacing what was there.
func (c *Canvas) Clear(col color.Color) {
	stddraw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, stddraw.Src)
}

// FillRect blends an axis-aligned rectangle onto the raster.
func (c *Canvas) FillRect(x, y, w, h float64, col color.Color) {
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	r := image.Rect(
		int(math.Round(x*c.scaleX)),
		int(math.Round(y*c.scaleY)),
		int(math.Round((x+w)*c.scaleX)),
		int(math.Round((y+h)*c.scaleY)),
	).Intersect(c.img.Bounds())
	if r.Empty() {
		return
	}
	stddraw.Draw(c.img, r, image.NewUniform(col), image.Point{}, stddraw.Over)
}

// StrokeRect outlines a rectangle with the given logical line width.
func (c *Canvas) StrokeRect(x, y, w, h, lineWidth float64, col color.Color) {
	half := lineWidth / 2
	c.FillRect(x-half, y-half, w+lineWidth, lineWidth, col)
	c.FillRect(x-half, y+h-half, w+lineWidth, lineWidth, col)
	c.FillRect(x-half, y+half, lineWidth, h-lineWidth, col)
	c.FillRect(x+w-half, y+half, lineWidth, h-lineWidth, col)
}

// VerticalGradient fills a rectangle row by row from top to bottom colour.
func (c *Canvas) VerticalGradient(x, y, w, h float64, top, bottom color.Color) {
	y0 := int(math.Round(y * c.scaleY))
	y1 := int(math.Round((y + h) * c.scaleY))
	x0 := int(math.Round(x * c.scaleX))
	x1 := int(math.Round((x + w) * c.scaleX))
	span := float64(y1 - y0)
	if span <= 0 {
		return
	}
	bounds := c.img.Bounds()
	for py := y0; py < y1; py++ {
		row := image.Rect(x0, py, x1, py+1).Intersect(bounds)
		if row.Empty() {
			continue
		}
		t := (float64(py-y0) + 0.5) / span
		stddraw.Draw(c.img, row, image.NewUniform(Blend(top, bottom, t)), image.Point{}, stddraw.Over)
	}
}

// FillCircle fills a disc.
func (c *Canvas) FillCircle(cx, cy, r float64, col color.Color) {
	if r <= 0 {
		return
	}
	c.polygonBuf = c.circlePoints(c.polygonBuf, cx, cy, r, false)
	c.fillContours(col, c.polygonBuf)
}

// StrokeCircle draws a ring centred on the circle of radius r.
func (c *Canvas) StrokeCircle(cx, cy, r, lineWidth float64, col color.Color) {
	outer := r + lineWidth/2
	inner := r - lineWidth/2
	if outer <= 0 {
		return
	}
	c.polygonBuf = c.circlePoints(c.polygonBuf, cx, cy, outer, false)
	if inner <= 0 {
		c.fillContours(col, c.polygonBuf)
		return
	}
	// Opposite winding cancels coverage inside the inner contour.
	c.innerBuf = c.circlePoints(c.innerBuf, cx, cy, inner, true)
	c.fillContours(col, c.polygonBuf, c.innerBuf)
}

// Line draws a segment as a quad of the given logical width.
func (c *Canvas) Line(x1, y1, x2, y2, lineWidth float64, col color.Color) {
	dx := x2 - x1
	dy := y2 - y1
	length := math.Sqrt(dx*dx + dy*dy)
	if length == 0 {
		c.FillCircle(x1, y1, lineWidth/2, col)
		return
	}
	// Perpendicular offset of half the width
	nx := -dy / length * lineWidth / 2
	ny := dx / length * lineWidth / 2
	c.fillContours(col, []Point{
		{X: x1 + nx, Y: y1 + ny},
		{X: x2 + nx, Y: y2 + ny},
		{X: x2 - nx, Y: y2 - ny},
		{X: x1 - nx, Y: y1 - ny},
	})
}

// FillPolygon fills a closed polygon.
func (c *Canvas) FillPolygon(points []Point, col color.Color) {
	if len(points) < 3 {
		return
	}
	c.fillContours(col, points)
}

// Text queues a label. Labels are drawn over the raster at presentation
// time so terminals can print them as characters instead of pixels.
func (c *Canvas) Text(x, y, size float64, s string, col color.Color) {
	if s == "" {
		return
	}
	c.labels = append(c.labels, Label{X: x, Y: y, Size: size, Text: s, Color: col})
}

// fillContours rasterizes one or more closed contours as a single shape.
// Only the bounding box of the shape is rasterized.
func (c *Canvas) fillContours(col color.Color, contours ...[]Point) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, contour := range contours {
		for _, p := range contour {
			px, py := p.X*c.scaleX, p.Y*c.scaleY
			minX, maxX = math.Min(minX, px), math.Max(maxX, px)
			minY, maxY = math.Min(minY, py), math.Max(maxY, py)
		}
	}
	if math.IsInf(minX, 0) || math.IsNaN(minX) || math.IsNaN(minY) {
		return
	}

	r := image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX))+1, int(math.Ceil(maxY))+1,
	).Intersect(c.img.Bounds())
	if r.Empty() {
		return
	}

	c.raster.Reset(r.Dx(), r.Dy())
	c.raster.DrawOp = stddraw.Over
	ox, oy := float64(r.Min.X), float64(r.Min.Y)
	for _, contour := range contours {
		if len(contour) < 3 {
			continue
		}
		c.raster.MoveTo(float32(contour[0].X*c.scaleX-ox), float32(contour[0].Y*c.scaleY-oy))
		for _, p := range contour[1:] {
			c.raster.LineTo(float32(p.X*c.scaleX-ox), float32(p.Y*c.scaleY-oy))
		}
		c.raster.ClosePath()
	}
	c.raster.Draw(c.img, r, image.NewUniform(col), image.Point{})
}

// circlePoints approximates a circle with a polygon whose segment count
// follows the on-screen radius. reverse flips the winding.
func (c *Canvas) circlePoints(buf []Point, cx, cy, r float64, reverse bool) []Point {
	pixelR := r * math.Max(c.scaleX, c.scaleY)
	n := int(pixelR*0.75) + 8
	if n > 96 {
		n = 96
	}
	if cap(buf) < n {
		buf = make([]Point, n)
	}
	buf = buf[:n]
	step := 2 * math.Pi / float64(n)
	if reverse {
		step = -step
	}
	for i := range buf {
		a := float64(i) * step
		buf[i] = Point{X: cx + math.Cos(a)*r, Y: cy + math.Sin(a)*r}
	}
	return buf
}
