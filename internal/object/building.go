package object

import (
	"image/color"

	"github.com/tomz197/pseudo3d/internal/config"
	"github.com/tomz197/pseudo3d/internal/draw"
	"github.com/tomz197/pseudo3d/internal/physics"
	"github.com/tomz197/pseudo3d/internal/projection"
)

// Footprint is the placement shared by every building kind. Width and
// Height are world sizes; on screen they become size / distance * 500.
type Footprint struct {
	X, Z   float64
	Width  float64
	Depth  float64
	Height float64
	Roof   color.NRGBA
}

// BuildingTuning projects buildings: culled beyond 1000 and 300 units
// outside the viewport. Scale is 500/d and is applied to width and height.
var BuildingTuning = projection.Tuning{
	BaseScale:   500,
	MinScale:    0,
	MaxDistance: 1000,
	Horizon:     config.HorizonOffset,
	Margin:      300,
}

// Position implements Scenery for every kind embedding a Footprint.
func (f Footprint) Position() projection.Vec3 {
	return projection.Vec3{X: f.X, Z: f.Z}
}

// frame is a projected building outline: centre x, ground y, width, height.
type frame struct {
	x, y, w, h float64
}

func (f Footprint) project(ctx DrawContext) (frame, bool) {
	p, ok := ctx.Projector.Project(ctx.Eye, f.Position(), BuildingTuning)
	if !ok || p.Distance < config.MinDistance {
		return frame{}, false
	}
	return frame{x: p.X, y: p.Y, w: f.Width * p.Scale, h: f.Height * p.Scale}, true
}

func roofOr(roof color.NRGBA, fallback color.NRGBA) color.NRGBA {
	if roof.A == 0 {
		return fallback
	}
	return roof
}

var (
	colorWall       = draw.Hex("#e8d4b0")
	colorWindow     = draw.Hex("#87ceeb")
	colorDoor       = draw.Hex("#654321")
	colorTowerWall  = draw.Hex("#d3d3d3")
	colorTowerShade = draw.Hex("#a9a9a9")
	colorAsianWall  = draw.Hex("#f5deb3")
	colorColumn     = draw.Hex("#8b4513")
	colorRuinWall   = draw.Hex("#a9a9a9")
	colorRuinInner  = draw.Hex("#808080")
)

// House is a plain building with a gable roof, door and a grid of windows.
type House struct{ Footprint }

// Draw implements Scenery.
func (b *House) Draw(ctx DrawContext) {
	f, ok := b.project(ctx)
	if !ok {
		return
	}
	s := ctx.Surface
	top := f.y - f.h

	s.FillRect(f.x-f.w/2, top, f.w, f.h, colorWall)
	s.FillPolygon([]draw.Point{
		{X: f.x - f.w/2 - 5, Y: top},
		{X: f.x, Y: top - 15},
		{X: f.x + f.w/2 + 5, Y: top},
	}, roofOr(b.Roof, draw.Hex("#a0522d")))
	s.FillRect(f.x-f.w/3, f.y-f.h*0.3, f.w/4, f.h*0.3, colorDoor)

	win := f.w * 0.12
	if win < 1 {
		return
	}
	for y := top + 15; y < f.y-f.h*0.4; y += win * 2 {
		for x := f.x - f.w/2 + 10; x < f.x+f.w/2-10; x += win * 2 {
			s.FillRect(x, y, win, win*1.2, colorWindow)
		}
	}
}

// Tower is a tall shaded tower with a pointed roof and a column of windows.
type Tower struct{ Footprint }

// Draw implements Scenery.
func (b *Tower) Draw(ctx DrawContext) {
	f, ok := b.project(ctx)
	if !ok {
		return
	}
	s := ctx.Surface
	top := f.y - f.h

	s.FillRect(f.x-f.w/2, top, f.w, f.h, colorTowerWall)
	s.FillRect(f.x, top, f.w*0.3, f.h, colorTowerShade)
	s.FillPolygon([]draw.Point{
		{X: f.x, Y: top - 30},
		{X: f.x - f.w/2 - 10, Y: top},
		{X: f.x + f.w/2 + 10, Y: top},
	}, roofOr(b.Roof, draw.Hex("#8b4513")))
	s.StrokeRect(f.x-f.w/4, top+50, f.w/2, 30, 2, colorBlack)

	win := f.w * 0.15
	if win < 1 {
		return
	}
	for y := top + 100; y < f.y-80; y += win * 3 {
		s.FillRect(f.x-win/2, y, win, win, colorWindow)
	}
}

// AsianHall has upturned eaves and a row of wooden columns.
type AsianHall struct{ Footprint }

const hallColumns = 4

// Draw implements Scenery.
func (b *AsianHall) Draw(ctx DrawContext) {
	f, ok := b.project(ctx)
	if !ok {
		return
	}
	s := ctx.Surface
	top := f.y - f.h

	s.FillRect(f.x-f.w/2, top, f.w, f.h, colorAsianWall)
	s.FillPolygon([]draw.Point{
		{X: f.x, Y: top - 20},
		{X: f.x - f.w/2 - 15, Y: top + 10},
		{X: f.x - f.w/2, Y: top},
		{X: f.x + f.w/2, Y: top},
		{X: f.x + f.w/2 + 15, Y: top + 10},
	}, roofOr(b.Roof, draw.Hex("#d2691e")))

	for i := 0; i < hallColumns; i++ {
		colX := f.x - f.w/2 + f.w/hallColumns*float64(i) + f.w/(hallColumns*2)
		s.FillRect(colX-2, top, 4, f.h, colorColumn)
	}
}

// Ruins are broken walls with a fallen lintel.
type Ruins struct{ Footprint }

// Draw implements Scenery.
func (b *Ruins) Draw(ctx DrawContext) {
	f, ok := b.project(ctx)
	if !ok {
		return
	}
	s := ctx.Surface

	s.FillRect(f.x-f.w/2, f.y-f.h, f.w, f.h*0.7, colorRuinWall)
	s.FillRect(f.x-f.w/3, f.y-f.h*0.7, f.w/3, f.h*0.7, colorRuinInner)
	s.FillRect(f.x-f.w/2-5, f.y-f.h*0.7, f.w+10, 8, roofOr(b.Roof, draw.Hex("#b8860b")))
}

// Stair is a flight of steps seen from the front.
type Stair struct {
	X, Z  float64
	Width float64
	Steps int
}

// StairTuning projects stairs: scale 300/d, faded and culled by 500.
var StairTuning = projection.Tuning{
	BaseScale:   300,
	MinScale:    0,
	MaxDistance: 500,
	Horizon:     0,
	Margin:      300,
}

const stepHeight = 5.0

var colorStep = color.NRGBA{R: 169, G: 169, B: 169, A: 255}

// Position implements Scenery.
func (st *Stair) Position() projection.Vec3 {
	return projection.Vec3{X: st.X, Z: st.Z}
}

// Draw implements Scenery.
func (st *Stair) Draw(ctx DrawContext) {
	p, ok := ctx.Projector.Project(ctx.Eye, st.Position(), StairTuning)
	if !ok || p.Distance < config.MinDistance {
		return
	}
	w := st.Width * p.Scale
	step := fade(colorStep, p.Alpha)
	for i := 0; i < st.Steps; i++ {
		ctx.Surface.FillRect(p.X-w/2, p.Y-float64(i)*stepHeight-10, w, stepHeight, step)
	}
}

// Plaza is the paved square around the village centre. It is ground, not
// scenery, and is drawn right after the background while the eye is close.
type Plaza struct {
	X, Z float64
	Size float64
}

var colorPlaza = draw.Hex("#d3d3d3")

// Draw paints the plaza strip when the eye is within twice its size.
func (pl *Plaza) Draw(ctx DrawContext) {
	if physics.Distance(ctx.Eye.X, ctx.Eye.Z, pl.X, pl.Z) >= pl.Size*2 {
		return
	}
	w, h := ctx.Surface.Size()
	ctx.Surface.FillRect(w/2-pl.Size, h/2-20, pl.Size*2, 40, colorPlaza)
}
