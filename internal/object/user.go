package object

import (
	"math"

	"github.com/tomz197/pseudo3d/internal/config"
	"github.com/tomz197/pseudo3d/internal/draw"
)

// Avatar is the player marker drawn in screen space near the bottom of the
// view: a disc with a facing tick and a health bar below it.
type Avatar struct {
	Angle  float64 // Player facing in radians
	Health int
}

const (
	avatarRadius   = 15.0
	avatarTick     = 25.0
	avatarFromBase = 150.0 // Distance of the avatar centre above the bottom edge
	healthBarWidth = 100.0
	healthBarH     = 10.0
)

var (
	colorAvatar     = draw.Hex("#3b82f6")
	colorAvatarTick = draw.Hex("#60a5fa")
	colorBarBack    = draw.Hex("#ef4444")
)

// Draw renders the avatar.
func (a Avatar) Draw(s draw.Surface) {
	w, h := s.Size()
	cx := w / 2
	cy := h - avatarFromBase

	s.FillCircle(cx, cy, avatarRadius, colorAvatar)

	// Screen up is facing 0, so the tick turns by -π/2.
	tickAngle := a.Angle - math.Pi/2
	s.Line(cx, cy, cx+math.Cos(tickAngle)*avatarTick, cy+math.Sin(tickAngle)*avatarTick, 4, colorAvatarTick)

	health := math.Max(0, math.Min(float64(a.Health), config.MaxHealth))
	s.FillRect(cx-healthBarWidth/2, cy+40, healthBarWidth, healthBarH, colorBarBack)
	s.FillRect(cx-healthBarWidth/2, cy+40, health/config.MaxHealth*healthBarWidth, healthBarH, colorHealthOK)
}

// Crosshair marks the pointer position.
type Crosshair struct {
	X, Y float64
}

const crosshairSize = 20.0

var colorCrossRing = draw.Hex("#ef4444")

// Draw renders the crosshair.
func (c Crosshair) Draw(s draw.Surface) {
	s.Line(c.X-crosshairSize, c.Y, c.X+crosshairSize, c.Y, 2, colorHealthOK)
	s.Line(c.X, c.Y-crosshairSize, c.X, c.Y+crosshairSize, 2, colorHealthOK)
	s.StrokeCircle(c.X, c.Y, crosshairSize/2, 2, colorCrossRing)
}
