package object

import (
	"math"

	"github.com/tomz197/pseudo3d/internal/config"
	"github.com/tomz197/pseudo3d/internal/draw"
	"github.com/tomz197/pseudo3d/internal/physics"
	"github.com/tomz197/pseudo3d/internal/projection"
)

// Bullet is a shot fired by the player. Its angle is fixed at creation.
type Bullet struct {
	X, Z  float64
	Angle float64
	Speed float64
}

// BulletTuning projects bullets on the horizon line. Bullets have a fixed
// size and are culled only when far off screen.
var BulletTuning = projection.Tuning{
	BaseScale:   0,
	MinScale:    1,
	MaxDistance: math.Inf(1),
	Horizon:     0,
	Margin:      config.ScreenCullSlack,
}

const bulletRadius = 3.0

var colorBullet = draw.Hex("#fbbf24")

// NewBullet creates a bullet at (x, z) travelling along angle.
func NewBullet(x, z, angle float64) *Bullet {
	return &Bullet{
		X:     x,
		Z:     z,
		Angle: angle,
		Speed: config.BulletSpeed,
	}
}

// Advance moves the bullet one frame.
func (b *Bullet) Advance() {
	b.X += math.Cos(b.Angle) * b.Speed
	b.Z += math.Sin(b.Angle) * b.Speed
}

// OutOfRange reports whether the bullet is farther than the bullet range
// from the world origin.
func (b *Bullet) OutOfRange() bool {
	return physics.Length(b.X, b.Z) > config.BulletRange
}

// Position implements Scenery.
func (b *Bullet) Position() projection.Vec3 {
	return projection.Vec3{X: b.X, Z: b.Z}
}

// Draw renders the bullet as a small dot.
func (b *Bullet) Draw(ctx DrawContext) {
	p, ok := ctx.Projector.Project(ctx.Eye, b.Position(), BulletTuning)
	if !ok {
		return
	}
	ctx.Surface.FillCircle(p.X, p.Y, bulletRadius, colorBullet)
}
