package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/tomz197/pseudo3d/internal/config"
	"github.com/tomz197/pseudo3d/internal/loop"
	"github.com/tomz197/pseudo3d/internal/world"
)

func main() {
	cfg, err := loop.ConfigFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	scene := flag.String("scene", cfg.Scene.String(), "scene to play: arena, explore, meadow or starfield")
	seed := flag.Int64("seed", cfg.Seed, "world seed, 0 for a random world")
	enemies := flag.Int("enemies", -1, "enemy count in the arena, -1 for the scene default")
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
	if *enemies >= 0 {
		cfg.Population.Enemies = *enemies
	}

	logFile, err := config.LogFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	logger := config.NewLogger(logFile, "game")

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	err = loop.RunTerminal(ctx, os.Stdin, os.Stdout, loop.TerminalOptions{
		Profile: termenv.NewOutput(os.Stdout).EnvColorProfile(),
		Logger:  logger,
		Config:  cfg,
	})
	if err != nil {
		logger.Error("game ended", "err", err)
		_ = term.Restore(fd, oldState)
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}
