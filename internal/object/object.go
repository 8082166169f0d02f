// Package object holds the world entities and how each one draws itself.
//
// Every drawable kind satisfies Scenery, so the renderer handles trees,
// buildings, grass and the rest through one Draw dispatch. Kinds that scroll
// in chase-cam scenes also satisfy Drifter.
package object

import (
	"image/color"
	"math/rand"

	"github.com/tomz197/pseudo3d/internal/draw"
	"github.com/tomz197/pseudo3d/internal/projection"
)

// DrawContext provides drawing resources for objects.
type DrawContext struct {
	Surface   draw.Surface
	Projector projection.Projector
	Eye       projection.Eye
	Time      float64 // Scene clock, advances config.TimeStep per frame
}

// Scenery is a world entity that can draw itself.
type Scenery interface {
	// Position returns the world position used for depth sorting.
	Position() projection.Vec3
	// Draw renders the entity. Entities culled by the projector draw nothing.
	Draw(ctx DrawContext)
}

// Drifter is scenery that moves toward the viewer in chase-cam scenes and is
// recycled to maximum depth once it passes the camera plane.
type Drifter interface {
	Scenery
	// Drift advances one frame. view bounds respawn positions.
	Drift(rng *rand.Rand, view projection.Viewport)
}

// isDepth reports whether the context projects by depth instead of angle.
func (ctx DrawContext) isDepth() bool {
	_, ok := ctx.Projector.(projection.Depth)
	return ok
}

// project applies the tuning that matches the context's projector.
func (ctx DrawContext) project(pos projection.Vec3, perspective, depth projection.Tuning) (projection.Projected, bool) {
	if ctx.isDepth() {
		return ctx.Projector.Project(ctx.Eye, pos, depth)
	}
	return ctx.Projector.Project(ctx.Eye, pos, perspective)
}

// Shared palette.
var (
	colorBlack     = draw.Hex("#000000")
	colorTrunk     = draw.Hex("#654321")
	colorHealthBad = draw.Hex("#dc2626")
	colorHealthOK  = draw.Hex("#22c55e")
)

// fade returns c with its alpha scaled by a.
func fade(c color.NRGBA, a float64) color.NRGBA {
	return draw.WithAlpha(c, float64(c.A)/255*a)
}

// respawnX picks a horizontal position spread across the viewport width.
func respawnX(rng *rand.Rand, view projection.Viewport, spread float64) float64 {
	return (rng.Float64() - 0.5) * view.Width * spread
}
