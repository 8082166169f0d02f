package object

import (
	"math/rand"

	"github.com/tomz197/pseudo3d/internal/config"
	"github.com/tomz197/pseudo3d/internal/draw"
	"github.com/tomz197/pseudo3d/internal/projection"
)

// Cloud is a puff of white discs drifting slowly overhead.
type Cloud struct {
	X, Y, Z float64
	Size    float64
}

// CloudTuning projects clouds in chase-cam scenes.
var CloudTuning = projection.Tuning{
	BaseScale:   config.DepthFocal,
	MaxDistance: config.DepthMax,
	Margin:      300,
}

var colorCloud = draw.Hex("#ffffff")

// NewCloud creates a cloud at a random depth.
func NewCloud(rng *rand.Rand, view projection.Viewport) *Cloud {
	c := &Cloud{}
	c.respawn(rng, view)
	c.Z = 1 + rng.Float64()*(config.DepthMax-1)
	return c
}

func (c *Cloud) respawn(rng *rand.Rand, view projection.Viewport) {
	c.X = respawnX(rng, view, 3)
	c.Y = -250 - rng.Float64()*200
	c.Z = config.DepthMax
	c.Size = 60 + rng.Float64()*60
}

// Position implements Scenery.
func (c *Cloud) Position() projection.Vec3 {
	return projection.Vec3{X: c.X, Y: c.Y, Z: c.Z}
}

// Drift implements Drifter.
func (c *Cloud) Drift(rng *rand.Rand, view projection.Viewport) {
	c.Z -= config.CloudSpeed
	if c.Z < config.DepthNearPlane {
		c.respawn(rng, view)
	}
}

// Draw implements Scenery.
func (c *Cloud) Draw(ctx DrawContext) {
	p, ok := ctx.Projector.Project(ctx.Eye, c.Position(), CloudTuning)
	if !ok {
		return
	}
	r := c.Size * p.Scale
	col := fade(colorCloud, p.Alpha*0.85)
	ctx.Surface.FillCircle(p.X-r*0.8, p.Y+r*0.15, r*0.7, col)
	ctx.Surface.FillCircle(p.X+r*0.8, p.Y+r*0.15, r*0.65, col)
	ctx.Surface.FillCircle(p.X, p.Y, r, col)
}
