package object

import (
	"math/rand"

	"github.com/tomz197/pseudo3d/internal/config"
	"github.com/tomz197/pseudo3d/internal/draw"
	"github.com/tomz197/pseudo3d/internal/projection"
)

// Particle is a glowing star in the starfield. It jitters sideways while
// flying toward the viewer, and its hue follows depth and time.
type Particle struct {
	X, Y, Z    float64 // Position
	VX, VY, VZ float64 // Velocity, VZ toward the viewer
}

// ParticleTuning projects particles: scale 600/z, fading to zero at 1500.
var ParticleTuning = projection.Tuning{
	BaseScale:   config.DepthFocal,
	MaxDistance: config.DepthMax,
	Margin:      config.ScreenCullSlack,
}

const (
	particleSize  = 4.0  // Radius one focal length away
	particleTrail = 20.0 // Trail length per unit of sideways velocity
)

// NewParticle creates a particle spread over the viewport at a random depth.
func NewParticle(rng *rand.Rand, view projection.Viewport) *Particle {
	p := &Particle{
		VX: (rng.Float64() - 0.5) * 0.5,
		VY: (rng.Float64() - 0.5) * 0.5,
		VZ: rng.Float64()*3 + 1,
	}
	p.scatter(rng, view)
	p.Z = rng.Float64() * config.DepthMax
	return p
}

func (p *Particle) scatter(rng *rand.Rand, view projection.Viewport) {
	p.X = rng.Float64()*view.Width - view.Width/2
	p.Y = rng.Float64()*view.Height - view.Height/2
}

// Position implements Scenery.
func (p *Particle) Position() projection.Vec3 {
	return projection.Vec3{X: p.X, Y: p.Y, Z: p.Z}
}

// Drift implements Drifter.
func (p *Particle) Drift(rng *rand.Rand, view projection.Viewport) {
	p.X += p.VX
	p.Y += p.VY
	p.Z -= p.VZ

	if p.Z < config.DepthNearPlane {
		p.Z = config.DepthMax
		p.scatter(rng, view)
	}
}

// Draw renders the particle and its trail.
func (p *Particle) Draw(ctx DrawContext) {
	pr, ok := ctx.Projector.Project(ctx.Eye, p.Position(), ParticleTuning)
	if !ok {
		return
	}
	hue := p.Z/config.DepthMax*280 + ctx.Time*60

	ctx.Surface.FillCircle(pr.X, pr.Y, pr.Scale*particleSize, draw.HSLA(hue, 0.8, 0.65, pr.Alpha))
	ctx.Surface.Line(pr.X, pr.Y, pr.X+p.VX*particleTrail, pr.Y+p.VY*particleTrail, 1.5, draw.HSLA(hue, 0.8, 0.7, pr.Alpha*0.4))
}
