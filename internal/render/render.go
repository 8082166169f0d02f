// Package render draws a world onto a surface. It only reads the world.
package render

import (
	"fmt"
	"math"
	"sort"

	"github.com/tomz197/pseudo3d/internal/config"
	"github.com/tomz197/pseudo3d/internal/draw"
	"github.com/tomz197/pseudo3d/internal/object"
	"github.com/tomz197/pseudo3d/internal/projection"
	"github.com/tomz197/pseudo3d/internal/world"
)

var (
	colorSkyTop      = draw.Hex("#87ceeb")
	colorSkyBottom   = draw.Hex("#b0d4e8")
	colorGroundTop   = draw.Hex("#8fbc8f")
	colorGroundBot   = draw.Hex("#6b8e23")
	colorMeadowSky   = draw.Hex("#9fd3f0")
	colorMeadowHaze  = draw.Hex("#e6f4fb")
	colorMeadowNear  = draw.Hex("#3f7f2a")
	colorMeadowFar   = draw.Hex("#8cc152")
	colorSpace       = draw.Hex("#0f172a")
	colorHUD         = draw.Hex("#000000")
	colorHUDExplore  = draw.WithAlpha(draw.Hex("#000000"), 0.7)
	colorGameOver    = draw.Hex("#ef4444")
	colorGameOverDim = draw.WithAlpha(draw.Hex("#000000"), 0.55)
)

// starfieldTrail is the opacity of the background wash in the starfield.
// Previous frames show through and leave trails.
const starfieldTrail = 0.15

const hudTextSize = 24.0

// Renderer draws frames. The zero value is not usable; call New.
type Renderer struct {
	sorted []sortItem    // Reused between frames
	last   *world.World // World of the previous frame
}

type sortItem struct {
	depth float64
	item  object.Scenery
}

// New creates a renderer.
func New() *Renderer {
	return &Renderer{}
}

// Draw renders w onto s: background, depth-sorted scenery, dynamic
// entities, then the HUD on top.
func (r *Renderer) Draw(s draw.Surface, w *world.World) {
	s.BeginFrame()

	proj := w.Projector()
	ctx := object.DrawContext{
		Surface:   s,
		Projector: proj,
		Eye:       w.Player.Eye(),
		Time:      w.Time,
	}

	if w != r.last {
		// Start each session from a clean surface.
		s.Clear(colorSpace)
		r.last = w
	}
	r.background(s, w)
	if w.Plaza != nil {
		w.Plaza.Draw(ctx)
	}

	r.sorted = r.sorted[:0]
	for _, sc := range w.Scenery {
		r.sorted = append(r.sorted, sortItem{depth: proj.Depth(ctx.Eye, sc.Position()), item: sc})
	}
	for _, d := range w.Drifters {
		r.sorted = append(r.sorted, sortItem{depth: proj.Depth(ctx.Eye, d.Position()), item: d})
	}
	r.drawSorted(ctx)

	for _, e := range w.Enemies {
		r.sorted = append(r.sorted, sortItem{depth: proj.Depth(ctx.Eye, e.Position()), item: e})
	}
	r.drawSorted(ctx)
	for _, b := range w.Bullets {
		b.Draw(ctx)
	}

	r.hud(s, w)
}

// drawSorted draws the queued items farthest first and empties the queue.
func (r *Renderer) drawSorted(ctx object.DrawContext) {
	sort.SliceStable(r.sorted, func(i, j int) bool {
		return r.sorted[i].depth > r.sorted[j].depth
	})
	for _, it := range r.sorted {
		it.item.Draw(ctx)
	}
	r.sorted = r.sorted[:0]
}

func (r *Renderer) background(s draw.Surface, w *world.World) {
	width, height := s.Size()
	switch w.Scene {
	case world.SceneStarfield:
		s.FillRect(0, 0, width, height, draw.WithAlpha(colorSpace, starfieldTrail))
	case world.SceneMeadow:
		s.VerticalGradient(0, 0, width, height/2, colorMeadowSky, colorMeadowHaze)
		s.VerticalGradient(0, height/2, width, height/2, colorMeadowFar, colorMeadowNear)
	default:
		s.VerticalGradient(0, 0, width, height/2, colorSkyTop, colorSkyBottom)
		s.VerticalGradient(0, height/2, width, height/2, colorGroundTop, colorGroundBot)
	}
}

func (r *Renderer) hud(s draw.Surface, w *world.World) {
	switch w.Scene {
	case world.SceneArena:
		object.Avatar{Angle: w.Player.Angle, Health: w.Player.Health}.Draw(s)
		object.Crosshair{X: w.CursorX, Y: w.CursorY}.Draw(s)
		for i, line := range []string{
			fmt.Sprintf("KILLS: %d", w.Player.Kills),
			fmt.Sprintf("HEALTH: %d", w.Player.Health),
			fmt.Sprintf("ENEMIES: %d", len(w.Enemies)),
		} {
			object.Text{X: 20, Y: 40 + float64(i)*35, Size: hudTextSize, Value: line, Color: colorHUD}.Draw(s)
		}
		if w.GameOver {
			r.gameOver(s, w)
		}
	case world.SceneExplore:
		object.Crosshair{X: w.CursorX, Y: w.CursorY}.Draw(s)
		degrees := math.Floor(w.Player.Angle * 180 / math.Pi)
		object.Text{X: 20, Y: 40, Size: hudTextSize, Value: fmt.Sprintf("X: %d Z: %d", int(math.Floor(w.Player.X)), int(math.Floor(w.Player.Z))), Color: colorHUDExplore}.Draw(s)
		object.Text{X: 20, Y: 75, Size: hudTextSize, Value: fmt.Sprintf("ANGLE: %d deg", int(degrees)), Color: colorHUDExplore}.Draw(s)
	}
}

func (r *Renderer) gameOver(s draw.Surface, w *world.World) {
	width, height := s.Size()
	s.FillRect(0, 0, width, height, colorGameOverDim)
	object.Text{X: width/2 - 110, Y: height / 2, Size: 40, Value: "GAME OVER", Color: colorGameOver}.Draw(s)
	object.Text{X: width/2 - 120, Y: height/2 + 40, Size: hudTextSize, Value: fmt.Sprintf("KILLS: %d", w.Player.Kills), Color: colorSkyBottom}.Draw(s)
}

// Viewport returns the default logical viewport.
func Viewport() projection.Viewport {
	return projection.Viewport{Width: config.ViewWidth, Height: config.ViewHeight}
}
