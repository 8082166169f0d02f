// Package projection maps world positions onto the logical viewport.
//
// Two strategies are provided. Perspective is the first-person "weak
// perspective" used by walking scenes: the horizontal screen offset is
// sin(relativeAngle) * distance * K and the vertical position is a fixed
// horizon. Depth is the chase-cam mode used by scrolling scenes: positions
// are scaled by focal/z along a fixed forward axis with no facing angle.
package projection

import "math"

// Vec3 is a world position. Perspective scenes use X and Z only; depth scenes
// use Y as the vertical offset and Z as the depth along the forward axis.
type Vec3 struct {
	X, Y, Z float64
}

// Eye is the observer pose on the horizontal plane.
type Eye struct {
	X, Z  float64
	Angle float64 // Facing in radians, only consumed through sin/cos/atan2
}

// Viewport is the logical drawing area.
type Viewport struct {
	Width, Height float64
}

// Center returns the viewport centre.
func (v Viewport) Center() (x, y float64) {
	return v.Width / 2, v.Height / 2
}

// Tuning holds the per-entity-class constants of a projection.
type Tuning struct {
	BaseScale   float64 // Scale numerator: scale = BaseScale / distance
	MinScale    float64 // Scale floor
	MaxDistance float64 // Fade reaches zero and entities are culled here
	Horizon     float64 // Vertical screen offset from the viewport centre
	Margin      float64 // Horizontal slack outside the viewport before culling
}

// Projected is the screen-space result of a projection.
type Projected struct {
	X, Y     float64 // Screen position in logical units
	Scale    float64 // Size multiplier, larger when closer
	Alpha    float64 // Opacity in [0, 1], fading toward MaxDistance
	Distance float64 // Distance (perspective) or depth (depth mode)
}

// Projector is a named projection strategy. Scenes pick one.
type Projector interface {
	// Name identifies the strategy.
	Name() string
	// Project computes the screen placement of pos as seen from eye.
	// The second result is false when the entity should not be drawn.
	Project(eye Eye, pos Vec3, t Tuning) (Projected, bool)
	// Depth returns the painter's sort key for pos: larger is farther.
	Depth(eye Eye, pos Vec3) float64
	// Viewport returns the logical area the projector targets.
	Viewport() Viewport
}

// Fade returns the opacity of an entity at distance d: 1 at the eye and 0 at
// or beyond maxDistance.
func Fade(d, maxDistance float64) float64 {
	if maxDistance <= 0 {
		return 0
	}
	return clamp(1-d/maxDistance, 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
