package render

import (
	"slices"
	"testing"

	"github.com/tomz197/pseudo3d/internal/config"
	"github.com/tomz197/pseudo3d/internal/draw"
	"github.com/tomz197/pseudo3d/internal/draw/drawtest"
	"github.com/tomz197/pseudo3d/internal/object"
	"github.com/tomz197/pseudo3d/internal/world"
)

func newArena(enemies int) *world.World {
	return world.New(world.Options{
		Scene:      world.SceneArena,
		Seed:       5,
		Population: world.Population{Enemies: enemies, Trees: 20},
		Health:     config.InitialHealth,
		View:       Viewport(),
	})
}

func TestDrawArenaHUD(t *testing.T) {
	w := newArena(3)
	rec := drawtest.NewRecorder(config.ViewWidth, config.ViewHeight)
	New().Draw(rec, w)

	texts := rec.Texts()
	for _, want := range []string{"KILLS: 0", "HEALTH: 100", "ENEMIES: 3"} {
		if !slices.Contains(texts, want) {
			t.Fatalf("HUD texts %v missing %q", texts, want)
		}
	}

	calls := rec.Calls()
	if calls[0].Op != drawtest.OpBeginFrame {
		t.Fatalf("first call = %s, want BeginFrame", calls[0].Op)
	}
	if calls[1].Op != drawtest.OpClear || calls[2].Op != drawtest.OpGradient || calls[3].Op != drawtest.OpGradient {
		t.Fatalf("background calls = %s %s %s", calls[1].Op, calls[2].Op, calls[3].Op)
	}
	if last := calls[len(calls)-1]; last.Op != drawtest.OpText {
		t.Fatalf("last call = %s, HUD text should be on top", last.Op)
	}
}

func TestDrawPaintersOrder(t *testing.T) {
	w := newArena(0)
	w.Plaza = nil
	near := &object.Tree{X: 20, Z: 0}
	far := &object.Tree{X: 40, Z: 0}
	w.Scenery = []object.Scenery{near, far}

	rec := drawtest.NewRecorder(config.ViewWidth, config.ViewHeight)
	New().Draw(rec, w)

	var canopies []float64
	for _, c := range rec.Calls() {
		if c.Op == drawtest.OpFillCircle {
			canopies = append(canopies, c.Args[2])
		}
	}
	// Canopy radius is size/2 with size = 1500/d; the avatar disc follows.
	if len(canopies) < 2 || canopies[0] != 18.75 || canopies[1] != 37.5 {
		t.Fatalf("canopy radii in draw order = %v, want far (18.75) before near (37.5)", canopies)
	}
}

func TestDrawDoesNotMutateWorld(t *testing.T) {
	w := newArena(5)
	w.Bullets = append(w.Bullets, object.NewBullet(0, 0, 0))
	player := w.Player
	enemies := make([]object.Enemy, len(w.Enemies))
	for i, e := range w.Enemies {
		enemies[i] = *e
	}
	bullet := *w.Bullets[0]

	r := New()
	for i := 0; i < 3; i++ {
		r.Draw(drawtest.NewRecorder(config.ViewWidth, config.ViewHeight), w)
	}

	if w.Player != player || *w.Bullets[0] != bullet || w.Frame != 0 {
		t.Fatal("draw changed the world")
	}
	for i, e := range w.Enemies {
		if *e != enemies[i] {
			t.Fatalf("draw changed enemy %d", i)
		}
	}
}

func TestDrawClearsOnlyForNewWorld(t *testing.T) {
	r := New()
	w := world.New(world.Options{Scene: world.SceneStarfield, Population: world.DefaultPopulation(world.SceneStarfield), View: Viewport()})
	rec := drawtest.NewRecorder(config.ViewWidth, config.ViewHeight)

	r.Draw(rec, w)
	r.Draw(rec, w)
	if got := rec.Count(drawtest.OpClear); got != 1 {
		t.Fatalf("clears = %d over two frames of one world, want 1", got)
	}
}

func TestDrawGameOverOverlay(t *testing.T) {
	w := newArena(1)
	w.GameOver = true
	w.Player.Health = 0
	rec := drawtest.NewRecorder(config.ViewWidth, config.ViewHeight)
	New().Draw(rec, w)

	if !slices.Contains(rec.Texts(), "GAME OVER") {
		t.Fatalf("texts = %v", rec.Texts())
	}
}

func TestDrawExploreHUD(t *testing.T) {
	w := world.New(world.Options{Scene: world.SceneExplore, View: Viewport(), Health: 100})
	w.Player.X = 12.7
	w.Player.Z = -3.2
	rec := drawtest.NewRecorder(config.ViewWidth, config.ViewHeight)
	New().Draw(rec, w)

	texts := rec.Texts()
	if !slices.Contains(texts, "X: 12 Z: -4") || !slices.Contains(texts, "ANGLE: 0 deg") {
		t.Fatalf("explore HUD = %v", texts)
	}
}

func TestDrawOntoCanvas(t *testing.T) {
	w := newArena(10)
	c := draw.NewScaledCanvas(120, 80, config.ViewWidth, config.ViewHeight)
	New().Draw(c, w)

	img := c.Composite()
	// Top row is sky, bottom row is ground.
	sky := img.RGBAAt(60, 0)
	ground := img.RGBAAt(5, 79)
	if sky.B <= sky.G || ground.G <= ground.B {
		t.Fatalf("sky %v / ground %v do not look like sky and ground", sky, ground)
	}
	if len(c.Labels()) != 3 {
		t.Fatalf("labels = %d, want 3", len(c.Labels()))
	}
}
