package object

import (
	"image/color"
	"math"
	"math/rand"
	"testing"

	"github.com/tomz197/pseudo3d/internal/config"
	"github.com/tomz197/pseudo3d/internal/draw/drawtest"
	"github.com/tomz197/pseudo3d/internal/projection"
)

func perspectiveCtx(rec *drawtest.Recorder) DrawContext {
	w, h := rec.Size()
	return DrawContext{
		Surface:   rec,
		Projector: projection.NewPerspective(projection.Viewport{Width: w, Height: h}),
	}
}

func depthCtx(rec *drawtest.Recorder) DrawContext {
	w, h := rec.Size()
	return DrawContext{
		Surface:   rec,
		Projector: projection.NewDepth(projection.Viewport{Width: w, Height: h}),
	}
}

func TestSpawnEnemyInsideBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		e := SpawnEnemy(rng)
		if math.Abs(e.X) > config.WorldHalfExtent || math.Abs(e.Z) > config.WorldHalfExtent {
			t.Fatalf("enemy spawned outside bounds at (%v, %v)", e.X, e.Z)
		}
		if e.Health != config.EnemyHealth || e.State != EnemyIdle || e.Cooldown != config.ShootCooldownFrames {
			t.Fatalf("unexpected fresh enemy %+v", e)
		}
	}
}

func TestEnemyDrawCulledBeyondRange(t *testing.T) {
	rec := drawtest.NewRecorder(1200, 800)
	e := NewEnemy(1000, 0, 0)
	e.Draw(perspectiveCtx(rec))
	if rec.Len() != 0 {
		t.Fatalf("enemy at 1000 drew %d calls", rec.Len())
	}
}

func TestEnemyDrawColourFollowsState(t *testing.T) {
	rec := drawtest.NewRecorder(1200, 800)
	e := NewEnemy(100, 0, 0)
	e.State = EnemyShoot
	e.Draw(perspectiveCtx(rec))

	calls := rec.Calls()
	if len(calls) == 0 || calls[0].Op != drawtest.OpFillCircle {
		t.Fatalf("expected body circle first, got %+v", calls)
	}
	if calls[0].Color != colorEnemyShoot {
		t.Fatalf("shooting enemy body = %v, want %v", calls[0].Color, colorEnemyShoot)
	}
	// size = max(20, 1000/100)
	if r := calls[0].Args[2]; r != 20 {
		t.Fatalf("radius = %v, want 20", r)
	}
}

func TestEnemyHealthBarWidth(t *testing.T) {
	rec := drawtest.NewRecorder(1200, 800)
	e := NewEnemy(20, 0, 0) // size 1000/20 = 50
	e.Health = 50
	e.Draw(perspectiveCtx(rec))

	var bars []drawtest.Call
	for _, c := range rec.Calls() {
		if c.Op == drawtest.OpFillRect {
			bars = append(bars, c)
		}
	}
	if len(bars) != 2 {
		t.Fatalf("got %d bar rects, want 2", len(bars))
	}
	if bars[0].Args[2] != 100 || bars[1].Args[2] != 50 {
		t.Fatalf("bar widths = %v / %v, want 100 / 50", bars[0].Args[2], bars[1].Args[2])
	}
}

func TestBulletAdvanceAndRange(t *testing.T) {
	b := NewBullet(0, 0, 0)
	b.Advance()
	if math.Abs(b.X-config.BulletSpeed) > 1e-9 || math.Abs(b.Z) > 1e-9 {
		t.Fatalf("bullet at (%v, %v) after one frame", b.X, b.Z)
	}

	b = NewBullet(config.BulletRange, 0, 0)
	if b.OutOfRange() {
		t.Fatal("bullet exactly at range reported out of range")
	}
	b.Advance()
	if !b.OutOfRange() {
		t.Fatal("bullet past range still in range")
	}
}

func TestBuildingKindsDraw(t *testing.T) {
	kinds := []Scenery{
		&House{Footprint{X: 0, Z: 200, Width: 100, Height: 60}},
		&Tower{Footprint{X: 0, Z: 200, Width: 40, Height: 350}},
		&AsianHall{Footprint{X: 0, Z: 200, Width: 120, Height: 80}},
		&Ruins{Footprint{X: 0, Z: 200, Width: 80, Height: 50}},
	}
	for _, k := range kinds {
		rec := drawtest.NewRecorder(1200, 800)
		k.Draw(perspectiveCtx(rec))
		if rec.Len() == 0 {
			t.Fatalf("%T drew nothing at distance 200", k)
		}
	}
}

func TestBuildingRoofFallback(t *testing.T) {
	rec := drawtest.NewRecorder(1200, 800)
	(&Ruins{Footprint{X: 0, Z: 100, Width: 80, Height: 50}}).Draw(perspectiveCtx(rec))
	calls := rec.Calls()
	last := calls[len(calls)-1]
	if last.Color.(color.NRGBA).A == 0 {
		t.Fatal("ruins lintel drawn with a transparent roof colour")
	}
}

func TestStairFadesWithDistance(t *testing.T) {
	rec := drawtest.NewRecorder(1200, 800)
	st := &Stair{X: 0, Z: 250, Width: 60, Steps: 8}
	st.Draw(perspectiveCtx(rec))

	if got := rec.Count(drawtest.OpFillRect); got != 8 {
		t.Fatalf("drew %d steps, want 8", got)
	}
	c := rec.Calls()[0].Color.(color.NRGBA)
	if c.A < 126 || c.A > 129 {
		t.Fatalf("step alpha = %d, want about half", c.A)
	}

	rec.Reset()
	(&Stair{X: 0, Z: 500, Width: 60, Steps: 8}).Draw(perspectiveCtx(rec))
	if rec.Len() != 0 {
		t.Fatal("stair at 500 was drawn")
	}
}

func TestPlazaOnlyNearby(t *testing.T) {
	rec := drawtest.NewRecorder(1200, 800)
	pl := &Plaza{Size: config.PlazaSize}

	ctx := perspectiveCtx(rec)
	ctx.Eye = projection.Eye{X: 399}
	pl.Draw(ctx)
	if rec.Count(drawtest.OpFillRect) != 1 {
		t.Fatal("plaza not drawn within 400")
	}

	rec.Reset()
	ctx.Eye = projection.Eye{X: 400}
	pl.Draw(ctx)
	if rec.Len() != 0 {
		t.Fatal("plaza drawn at 400")
	}
}

func TestDriftersRecycle(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	view := projection.Viewport{Width: 1200, Height: 800}

	drifters := []Drifter{
		NewGrass(rng, view),
		NewCloud(rng, view),
		NewParticle(rng, view),
		NewDriftTree(rng, view),
	}
	for _, d := range drifters {
		for i := 0; i < 5000; i++ {
			d.Drift(rng, view)
			z := d.Position().Z
			if z < config.DepthNearPlane || z > config.DepthMax {
				t.Fatalf("%T depth %v left [near, max]", d, z)
			}
		}
	}
}

func TestParticleRespawnsAtMaxDepth(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	view := projection.Viewport{Width: 1200, Height: 800}
	p := &Particle{Z: 2, VZ: 1.5}
	p.Drift(rng, view)
	if p.Z != config.DepthMax {
		t.Fatalf("particle depth = %v after passing the camera, want %v", p.Z, config.DepthMax)
	}
	if math.Abs(p.X) > view.Width/2 || math.Abs(p.Y) > view.Height/2 {
		t.Fatalf("particle respawned off the viewport at (%v, %v)", p.X, p.Y)
	}
}

func TestParticleDrawUsesDepth(t *testing.T) {
	rec := drawtest.NewRecorder(1200, 800)
	p := &Particle{X: 100, Y: 50, Z: 600}
	p.Draw(depthCtx(rec))

	calls := rec.Calls()
	if len(calls) != 2 {
		t.Fatalf("got %d calls, want disc and trail", len(calls))
	}
	// scale = 600/600 = 1
	disc := calls[0].Args
	if disc[0] != 700 || disc[1] != 450 || disc[2] != 4 {
		t.Fatalf("disc = %v, want (700, 450, 4)", disc)
	}
}

func TestAvatarHealthBar(t *testing.T) {
	rec := drawtest.NewRecorder(1200, 800)
	Avatar{Health: 30}.Draw(rec)

	var rects []drawtest.Call
	for _, c := range rec.Calls() {
		if c.Op == drawtest.OpFillRect {
			rects = append(rects, c)
		}
	}
	if len(rects) != 2 {
		t.Fatalf("got %d rects, want 2", len(rects))
	}
	if rects[1].Args[2] != 30 {
		t.Fatalf("health bar width = %v, want 30", rects[1].Args[2])
	}
	if circle := rec.Calls()[0]; circle.Args[0] != 600 || circle.Args[1] != 650 {
		t.Fatalf("avatar at (%v, %v), want (600, 650)", circle.Args[0], circle.Args[1])
	}
}
