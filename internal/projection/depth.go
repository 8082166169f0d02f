package projection

import (
	"math"

	"github.com/tomz197/pseudo3d/internal/config"
)

// Depth is the chase-cam strategy: objects are projected from their depth
// along a fixed forward axis and drift toward the viewer.
type Depth struct {
	View Viewport
}

// Compile-time check that Depth implements Projector.
var _ Projector = Depth{}

// NewDepth creates a depth projector.
func NewDepth(view Viewport) Depth {
	return Depth{View: view}
}

// Name returns "depth".
func (d Depth) Name() string { return "depth" }

// Viewport returns the target viewport.
func (d Depth) Viewport() Viewport { return d.View }

// Project ignores the eye. Scale is BaseScale/z and is applied to both the
// position and the size of the entity.
func (d Depth) Project(_ Eye, pos Vec3, t Tuning) (Projected, bool) {
	z := math.Max(pos.Z, config.DepthNearPlane)
	scale := math.Max(t.MinScale, t.BaseScale/z)

	cx, cy := d.View.Center()
	out := Projected{
		X:        pos.X*scale + cx,
		Y:        pos.Y*scale + cy + t.Horizon,
		Scale:    scale,
		Alpha:    Fade(pos.Z, t.MaxDistance),
		Distance: pos.Z,
	}

	if pos.Z < config.DepthNearPlane || pos.Z >= t.MaxDistance {
		return out, false
	}
	if out.X < -t.Margin || out.X > d.View.Width+t.Margin {
		return out, false
	}
	if out.Y < -t.Margin || out.Y > d.View.Height+t.Margin {
		return out, false
	}
	return out, true
}

// Depth returns the z coordinate.
func (d Depth) Depth(_ Eye, pos Vec3) float64 {
	return pos.Z
}
