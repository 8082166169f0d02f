package draw

import (
	"image/color"
	"io"
	"math"

	"github.com/muesli/termenv"
)

// Shade characters from lightest to darkest, used when the terminal has no colour.
var Shades = []rune{' ', '░', '▒', '▓', '█'}

// ShadeLevel returns a shade character for a value between 0.0 (empty) and 1.0 (solid).
func ShadeLevel(intensity float64) rune {
	if intensity <= 0 {
		return Shades[0]
	}
	if intensity >= 1 {
		return Shades[len(Shades)-1]
	}
	idx := int(intensity * float64(len(Shades)-1))
	return Shades[idx]
}

// BlockUpperHalf paints the top pixel of a cell in the foreground colour and
// the bottom pixel in the background colour.
const BlockUpperHalf = '▀'

// Render outputs the raster using half-block characters, two pixel rows per
// terminal row, followed by the frame's labels as plain text. Colours are
// degraded to what profile supports; an Ascii profile falls back to shades.
func (c *Canvas) Render(w io.Writer, profile termenv.Profile) {
	c.renderBuf.Reset()
	c.renderBuf.Grow(c.pixelWidth * (c.pixelHeight / 2) * 24) // Estimate ~24 bytes per cell

	var seq [32]byte
	termRows := c.pixelHeight / 2
	for row := 0; row < termRows; row++ {
		c.renderBuf.Write(appendCursor(seq[:0], 1+c.offsetCol, row+1+c.offsetRow))

		lastSeq := ""
		for col := 0; col < c.pixelWidth; col++ {
			top := c.img.RGBAAt(col, row*2)
			bottom := c.img.RGBAAt(col, row*2+1)

			if profile == termenv.Ascii {
				level := (Luminance(top) + Luminance(bottom)) / 2
				c.renderBuf.WriteRune(ShadeLevel(level))
				continue
			}

			seq := profile.FromColor(top).Sequence(false) + ";" + profile.FromColor(bottom).Sequence(true)
			if seq != lastSeq {
				c.renderBuf.WriteString(termenv.CSI)
				c.renderBuf.WriteString(seq)
				c.renderBuf.WriteByte('m')
				lastSeq = seq
			}
			c.renderBuf.WriteRune(BlockUpperHalf)
		}
		c.renderBuf.WriteString(termenv.CSI + termenv.ResetSeq + "m")
	}

	c.renderLabels(profile)
	io.WriteString(w, c.renderBuf.String())
}

// renderLabels prints labels at the terminal cell covering their position.
func (c *Canvas) renderLabels(profile termenv.Profile) {
	for _, l := range c.labels {
		col, row := c.LogicalToTerminal(l.X, l.Y)
		if row < 1 || row > c.pixelHeight/2 {
			continue
		}
		var seq [32]byte
		c.renderBuf.Write(appendCursor(seq[:0], max(col, 1)+c.offsetCol, row+c.offsetRow))
		c.renderBuf.WriteString(termenv.String(l.Text).Foreground(profile.FromColor(opaque(l.Color))).Bold().String())
	}
}

// LogicalToTerminal converts logical coordinates to 1-based terminal position (col, row).
// This is useful for placing text overlays at positions matching canvas-drawn objects.
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px := int(math.Round(x * c.scaleX))
	py := int(math.Round(y * c.scaleY))
	return px + 1, py/2 + 1
}

// TerminalToLogical converts a 1-based terminal cell (including the centering
// offset) to the logical coordinates of the cell centre.
func (c *Canvas) TerminalToLogical(col, row int) (x, y float64) {
	if c.scaleX == 0 || c.scaleY == 0 {
		return 0, 0
	}
	px := float64(col-1-c.offsetCol) + 0.5
	py := float64((row-1-c.offsetRow)*2) + 1
	return px / c.scaleX, py / c.scaleY
}

func opaque(col color.Color) color.Color {
	n := color.NRGBAModel.Convert(col).(color.NRGBA)
	n.A = 255
	return n
}
