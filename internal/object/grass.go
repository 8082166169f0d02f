package object

import (
	"math"
	"math/rand"

	"github.com/tomz197/pseudo3d/internal/config"
	"github.com/tomz197/pseudo3d/internal/draw"
	"github.com/tomz197/pseudo3d/internal/projection"
)

// GrassKind is the shape of a grass patch.
type GrassKind int

const (
	GrassBlade GrassKind = iota
	GrassTuft
	GrassFlower
	grassKinds
)

// Grass sways in the wind and drifts toward the viewer.
type Grass struct {
	X, Y, Z float64
	Kind    GrassKind
	Height  float64 // World height one focal length away
	Phase   float64 // Sway phase offset in radians
	Petal   float64 // Flower hue in degrees
}

// GrassTuning projects grass in chase-cam scenes.
var GrassTuning = projection.Tuning{
	BaseScale:   config.DepthFocal,
	MaxDistance: config.DepthMax,
	Margin:      config.ScreenCullSlack,
}

const (
	grassGround = 140.0 // Below the horizon, in world units
	grassSway   = 0.35  // Tip offset as a fraction of height
)

var (
	colorBlade = draw.Hex("#4c9a2a")
	colorTuft  = draw.Hex("#6b8e23")
	colorStem  = draw.Hex("#3a7d1e")
)

// NewGrass creates a random patch at a random depth.
func NewGrass(rng *rand.Rand, view projection.Viewport) *Grass {
	g := &Grass{}
	g.respawn(rng, view)
	g.Z = 1 + rng.Float64()*(config.DepthMax-1)
	return g
}

func (g *Grass) respawn(rng *rand.Rand, view projection.Viewport) {
	g.Kind = GrassKind(rng.Intn(int(grassKinds)))
	g.X = respawnX(rng, view, 3)
	g.Y = grassGround
	g.Z = config.DepthMax
	g.Height = 20 + rng.Float64()*25
	g.Phase = rng.Float64() * 2 * math.Pi
	g.Petal = rng.Float64() * 360
}

// Position implements Scenery.
func (g *Grass) Position() projection.Vec3 {
	return projection.Vec3{X: g.X, Y: g.Y, Z: g.Z}
}

// Drift implements Drifter.
func (g *Grass) Drift(rng *rand.Rand, view projection.Viewport) {
	g.Z -= config.MeadowSpeed
	if g.Z < config.DepthNearPlane {
		g.respawn(rng, view)
	}
}

// Draw implements Scenery.
func (g *Grass) Draw(ctx DrawContext) {
	p, ok := ctx.Projector.Project(ctx.Eye, g.Position(), GrassTuning)
	if !ok {
		return
	}
	h := g.Height * p.Scale
	lw := math.Max(1, p.Scale*2)
	sway := math.Sin(ctx.Time*2+g.Phase) * h * grassSway

	switch g.Kind {
	case GrassTuft:
		c := fade(colorTuft, p.Alpha)
		for i := -1; i <= 1; i++ {
			off := float64(i) * h * 0.25
			ctx.Surface.Line(p.X+off*0.3, p.Y, p.X+off+sway, p.Y-h*0.8, lw, c)
		}
	case GrassFlower:
		ctx.Surface.Line(p.X, p.Y, p.X+sway, p.Y-h, lw, fade(colorStem, p.Alpha))
		ctx.Surface.FillCircle(p.X+sway, p.Y-h, math.Max(1, h*0.18), draw.HSLA(g.Petal, 0.75, 0.65, p.Alpha))
	default:
		ctx.Surface.Line(p.X, p.Y, p.X+sway, p.Y-h, lw, fade(colorBlade, p.Alpha))
	}
}
