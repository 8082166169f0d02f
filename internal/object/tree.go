package object

import (
	"image/color"
	"math/rand"

	"github.com/tomz197/pseudo3d/internal/config"
	"github.com/tomz197/pseudo3d/internal/draw"
	"github.com/tomz197/pseudo3d/internal/projection"
)

// TreeKind selects the canopy palette.
type TreeKind int

const (
	TreeForest TreeKind = iota
	TreeDark
	TreePine
	treeKinds
)

var (
	colorCanopyForest = draw.Hex("#228b22")
	colorCanopyDark   = draw.Hex("#2d5016")
	colorCanopyPine   = draw.Hex("#1e5631")
)

// Tree is a trunk with a round canopy. In walking scenes it stands still;
// in chase-cam scenes it drifts toward the viewer.
type Tree struct {
	X, Y, Z float64
	Kind    TreeKind
}

// TreeTuning projects trees while walking: size max(30, 1500/d), culled
// beyond 800.
var TreeTuning = projection.Tuning{
	BaseScale:   1500,
	MinScale:    30,
	MaxDistance: 800,
	Horizon:     0,
	Margin:      config.ScreenCullSlack,
}

// DriftTreeTuning projects trees in chase-cam scenes.
var DriftTreeTuning = projection.Tuning{
	BaseScale:   config.DepthFocal,
	MaxDistance: config.DepthMax,
	Margin:      config.ScreenCullSlack,
}

// driftTreeSize is the canopy size of a drifting tree one focal length away.
const driftTreeSize = 90.0

// driftTreeGround is how far below the horizon drifting trees stand.
const driftTreeGround = 120.0

// NewTree creates a tree of a random kind inside a square of the given half extent.
func NewTree(rng *rand.Rand, halfExtent float64) *Tree {
	return &Tree{
		X:    (rng.Float64() - 0.5) * 2 * halfExtent,
		Z:    (rng.Float64() - 0.5) * 2 * halfExtent,
		Kind: TreeKind(rng.Intn(int(treeKinds))),
	}
}

// NewDriftTree creates a tree for a chase-cam scene at a random depth.
func NewDriftTree(rng *rand.Rand, view projection.Viewport) *Tree {
	t := &Tree{Kind: TreeKind(rng.Intn(int(treeKinds)))}
	t.respawn(rng, view)
	t.Z = 1 + rng.Float64()*(config.DepthMax-1)
	return t
}

// Position implements Scenery.
func (t *Tree) Position() projection.Vec3 {
	return projection.Vec3{X: t.X, Y: t.Y, Z: t.Z}
}

// Drift implements Drifter.
func (t *Tree) Drift(rng *rand.Rand, view projection.Viewport) {
	t.Z -= config.MeadowSpeed
	if t.Z < config.DepthNearPlane {
		t.respawn(rng, view)
	}
}

func (t *Tree) respawn(rng *rand.Rand, view projection.Viewport) {
	t.X = respawnX(rng, view, 3)
	t.Y = driftTreeGround
	t.Z = config.DepthMax
}

// Draw renders trunk and canopy.
func (t *Tree) Draw(ctx DrawContext) {
	p, ok := ctx.project(t.Position(), TreeTuning, DriftTreeTuning)
	if !ok {
		return
	}

	size := p.Scale
	alpha := 1.0
	if ctx.isDepth() {
		size = p.Scale * driftTreeSize
		alpha = p.Alpha
		// Root the trunk on the ground instead of centring it.
		p.Y -= size * 0.8
	}

	ctx.Surface.FillRect(p.X-size*0.15, p.Y, size*0.3, size*0.8, fade(colorTrunk, alpha))
	ctx.Surface.FillCircle(p.X, p.Y-size*0.3, size*0.5, fade(t.canopy(), alpha))
}

func (t *Tree) canopy() color.NRGBA {
	switch t.Kind {
	case TreeDark:
		return colorCanopyDark
	case TreePine:
		return colorCanopyPine
	default:
		return colorCanopyForest
	}
}
