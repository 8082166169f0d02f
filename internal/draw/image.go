package draw

import (
	"image"
	stddraw "image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// labelFace is the bitmap face labels are rendered with before scaling.
var labelFace = basicfont.Face7x13

// Composite returns the raster with this frame's labels drawn on top. The
// returned image is reused by the next call.
func (c *Canvas) Composite() *image.RGBA {
	if c.composite == nil || c.composite.Bounds() != c.img.Bounds() {
		c.composite = image.NewRGBA(c.img.Bounds())
	}
	copy(c.composite.Pix, c.img.Pix)

	for _, l := range c.labels {
		c.drawLabel(c.composite, l)
	}
	return c.composite
}

// drawLabel renders the label at the face's native size, then scales it
// nearest-neighbour so bitmap glyphs stay crisp at any size.
func (c *Canvas) drawLabel(dst *image.RGBA, l Label) {
	metrics := labelFace.Metrics()
	ascent := metrics.Ascent.Ceil()
	glyphH := metrics.Height.Ceil()
	glyphW := font.MeasureString(labelFace, l.Text).Ceil()
	if glyphW <= 0 || glyphH <= 0 {
		return
	}

	if c.glyphBuf == nil || c.glyphBuf.Bounds().Dx() < glyphW || c.glyphBuf.Bounds().Dy() < glyphH {
		c.glyphBuf = image.NewRGBA(image.Rect(0, 0, max(glyphW, 256), max(glyphH, 16)))
	}
	src := image.Rect(0, 0, glyphW, glyphH)
	stddraw.Draw(c.glyphBuf, src, image.Transparent, image.Point{}, stddraw.Src)

	d := font.Drawer{
		Dst:  c.glyphBuf,
		Src:  image.NewUniform(l.Color),
		Face: labelFace,
		Dot:  fixed.P(0, ascent),
	}
	d.DrawString(l.Text)

	factor := l.Size * c.scaleY / float64(glyphH)
	if factor <= 0 {
		return
	}
	px := l.X * c.scaleX
	py := l.Y*c.scaleY - float64(ascent)*factor
	target := image.Rect(
		int(math.Round(px)),
		int(math.Round(py)),
		int(math.Round(px+float64(glyphW)*factor)),
		int(math.Round(py+float64(glyphH)*factor)),
	)
	if target.Empty() || !target.Overlaps(dst.Bounds()) {
		return
	}
	xdraw.NearestNeighbor.Scale(dst, target, c.glyphBuf, src, xdraw.Over, nil)
}
