package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/tomz197/pseudo3d/internal/config"
	"github.com/tomz197/pseudo3d/internal/draw"
	"github.com/tomz197/pseudo3d/internal/input"
	"github.com/tomz197/pseudo3d/internal/loop"
	"github.com/tomz197/pseudo3d/internal/world"
)

var keyMap = []struct {
	keys []ebiten.Key
	key  input.Key
}{
	{[]ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}, input.KeyForward},
	{[]ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}, input.KeyBack},
	{[]ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}, input.KeyStrafeLeft},
	{[]ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}, input.KeyStrafeRight},
}

// game adapts a session to ebiten. Ebiten's update tick drives the frames.
type game struct {
	canvas  *draw.Canvas
	sched   *loop.ManualScheduler
	session *loop.Session
	log     *log.Logger

	cursorX, cursorY int
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	in := g.session.Input()
	for _, m := range keyMap {
		pressed := false
		for _, k := range m.keys {
			pressed = pressed || ebiten.IsKeyPressed(k)
		}
		if pressed != in.Held(m.key) {
			if pressed {
				in.KeyDown(m.key)
			} else {
				in.KeyUp(m.key)
			}
		}
	}

	if x, y := ebiten.CursorPosition(); x != g.cursorX || y != g.cursorY {
		g.cursorX, g.cursorY = x, y
		in.PointerMove(float64(x), float64(y))
	}

	fire := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) || inpututil.IsKeyJustPressed(ebiten.KeySpace)
	if fire {
		if g.session.State() == loop.StateRunning {
			in.Click()
		} else if err := g.session.Restart(); err != nil {
			return err
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.copySummary()
	}

	g.sched.Tick()
	return nil
}

func (g *game) copySummary() {
	st := g.session.Stats()
	summary := fmt.Sprintf("%s: %d kills, health %d, %d enemies, frame %d (%s)",
		st.Scene, st.Kills, st.Health, st.Enemies, st.Frame, st.State)
	if err := clipboard.WriteAll(summary); err != nil {
		g.log.Warn("clipboard unavailable", "err", err)
		return
	}
	g.log.Info("summary copied", "summary", summary)
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.WritePixels(g.canvas.Composite().Pix)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.canvas.PixelSize()
}

func main() {
	cfg, err := loop.ConfigFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	scene := flag.String("scene", cfg.Scene.String(), "scene to play: arena, explore, meadow or starfield")
	seed := flag.Int64("seed", cfg.Seed, "world seed, 0 for a random world")
	flag.Parse()

	s, err := world.ParseScene(*scene)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}
	if s != cfg.Scene {
		cfg.Scene = s
		cfg.Population = world.DefaultPopulation(s)
	}
	cfg.Seed = *seed

	logger := config.NewLogger(os.Stderr, "window")
	g := &game{
		canvas: draw.NewCanvas(config.ViewWidth, config.ViewHeight),
		sched:  loop.NewManualScheduler(),
		log:    logger,
	}
	g.session, err = loop.NewSession(g.canvas, g.sched, nil, loop.WithLogger(logger))
	if err != nil {
		logger.Fatal("session", "err", err)
	}
	if err := g.session.Start(cfg); err != nil {
		logger.Fatal("start", "err", err)
	}
	defer g.session.Stop()

	ebiten.SetWindowTitle("pseudo3d - " + cfg.Scene.String())
	ebiten.SetWindowSize(config.ViewWidth, config.ViewHeight)
	ebiten.SetTPS(config.TargetFPS)
	if err := ebiten.RunGame(g); err != nil {
		logger.Error("window closed", "err", err)
	}
}
