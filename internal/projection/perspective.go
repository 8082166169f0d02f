package projection

import (
	"math"

	"github.com/tomz197/pseudo3d/internal/config"
)

// Perspective is the first-person weak-perspective strategy.
type Perspective struct {
	View Viewport
	K    float64 // Horizontal spread factor
}

// Compile-time check that Perspective implements Projector.
var _ Projector = Perspective{}

// NewPerspective creates a perspective projector with the default spread.
func NewPerspective(view Viewport) Perspective {
	return Perspective{View: view, K: config.ProjectionK}
}

// Name returns "perspective".
func (p Perspective) Name() string { return "perspective" }

// Viewport returns the target viewport.
func (p Perspective) Viewport() Viewport { return p.View }

// Project places pos relative to the eye's facing angle. The formula is an
// approximation and distorts at wide angles and close range.
func (p Perspective) Project(eye Eye, pos Vec3, t Tuning) (Projected, bool) {
	dx := pos.X - eye.X
	dz := pos.Z - eye.Z
	distance := math.Sqrt(dx*dx + dz*dz)

	angleToTarget := math.Atan2(dz, dx)
	relativeAngle := angleToTarget - eye.Angle

	cx, cy := p.View.Center()
	out := Projected{
		X:        cx + math.Sin(relativeAngle)*distance*p.K,
		Y:        cy + t.Horizon,
		Scale:    perspectiveScale(distance, t),
		Alpha:    Fade(distance, t.MaxDistance),
		Distance: distance,
	}

	if distance >= t.MaxDistance {
		return out, false
	}
	if out.X < -t.Margin || out.X > p.View.Width+t.Margin {
		return out, false
	}
	return out, true
}

// Depth returns the planar distance from the eye.
func (p Perspective) Depth(eye Eye, pos Vec3) float64 {
	dx := pos.X - eye.X
	dz := pos.Z - eye.Z
	return math.Sqrt(dx*dx + dz*dz)
}

// perspectiveScale is max(MinScale, BaseScale/distance) with the divisor
// floored so an entity at the eye still has a finite size.
func perspectiveScale(distance float64, t Tuning) float64 {
	return math.Max(t.MinScale, t.BaseScale/math.Max(distance, config.MinDistance))
}
