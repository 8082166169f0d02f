package object

import (
	"image/color"

	"github.com/tomz197/pseudo3d/internal/draw"
)

// Text is a HUD line in logical screen coordinates.
// (X, Y) is the baseline-left corner.
type Text struct {
	X, Y  float64
	Size  float64
	Value string
	Color color.Color
}

// Draw queues the text on the surface.
func (t Text) Draw(s draw.Surface) {
	if t.Value == "" {
		return
	}
	s.Text(max(t.X, 0), max(t.Y, 0), t.Size, t.Value, t.Color)
}
