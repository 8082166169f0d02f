// Package world holds the mutable state of one session: the player, the
// enemies and bullets, and the scenery of the chosen scene.
package world

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/tomz197/pseudo3d/internal/config"
	"github.com/tomz197/pseudo3d/internal/object"
	"github.com/tomz197/pseudo3d/internal/projection"
)

// Scene selects the population and the projection strategy.
type Scene int

const (
	// SceneArena is first-person combat in the village.
	SceneArena Scene = iota
	// SceneExplore is the village without enemies.
	SceneExplore
	// SceneMeadow is a chase-cam field of grass, trees and clouds.
	SceneMeadow
	// SceneStarfield is a chase-cam flight through coloured particles.
	SceneStarfield
)

var sceneNames = map[Scene]string{
	SceneArena:     "arena",
	SceneExplore:   "explore",
	SceneMeadow:    "meadow",
	SceneStarfield: "starfield",
}

// String returns the scene name.
func (s Scene) String() string {
	if name, ok := sceneNames[s]; ok {
		return name
	}
	return fmt.Sprintf("scene(%d)", int(s))
}

// ParseScene returns the scene with the given name.
func ParseScene(name string) (Scene, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for s, n := range sceneNames {
		if n == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown scene %q", name)
}

// Walking reports whether the scene uses the first-person projection and
// player movement.
func (s Scene) Walking() bool {
	return s == SceneArena || s == SceneExplore
}

// Combat reports whether the scene has enemies and bullets.
func (s Scene) Combat() bool {
	return s == SceneArena
}

// Projector returns the projection strategy the scene draws with.
func (s Scene) Projector(view projection.Viewport) projection.Projector {
	if s.Walking() {
		return projection.NewPerspective(view)
	}
	return projection.NewDepth(view)
}

// Player is the observer's pose and counters.
type Player struct {
	X, Z   float64
	Angle  float64
	Health int
	Kills  int
}

// Eye returns the player pose for projection.
func (p Player) Eye() projection.Eye {
	return projection.Eye{X: p.X, Z: p.Z, Angle: p.Angle}
}

// Population fixes how many entities a new world starts with.
type Population struct {
	Enemies   int
	Trees     int
	Grass     int
	Clouds    int
	Particles int
}

// DefaultPopulation returns the usual counts for a scene.
func DefaultPopulation(s Scene) Population {
	switch s {
	case SceneArena:
		return Population{Enemies: config.InitialEnemies, Trees: config.InitialTrees}
	case SceneExplore:
		return Population{Trees: config.InitialTrees}
	case SceneMeadow:
		return Population{Trees: config.MeadowTrees, Grass: config.InitialGrass, Clouds: config.InitialClouds}
	case SceneStarfield:
		return Population{Particles: config.InitialParticles}
	default:
		return Population{}
	}
}

// Options configures a new world.
type Options struct {
	Scene      Scene
	Seed       int64
	Population Population
	Health     int
	View       projection.Viewport
}

// World is the complete simulation state of one session.
type World struct {
	Scene Scene
	View  projection.Viewport

	Player  Player
	Enemies []*object.Enemy
	Bullets []*object.Bullet

	// Scenery is static in walking scenes.
	Scenery []object.Scenery
	// Drifters scroll toward the viewer in chase-cam scenes.
	Drifters []object.Drifter
	Plaza    *object.Plaza

	// Cursor is the latest pointer position, drawn as the crosshair.
	CursorX, CursorY float64

	Time     float64 // Scene clock
	Frame    int
	GameOver bool

	rng *rand.Rand
}

// New creates a world populated for opts.Scene.
func New(opts Options) *World {
	w := &World{
		Scene: opts.Scene,
		View:  opts.View,
		Player: Player{
			Health: opts.Health,
		},
		rng: rand.New(rand.NewSource(opts.Seed)),
	}
	w.CursorX, w.CursorY = opts.View.Center()

	pop := opts.Population
	switch {
	case opts.Scene.Walking():
		w.buildVillage()
		for i := 0; i < pop.Trees; i++ {
			w.Scenery = append(w.Scenery, object.NewTree(w.rng, config.TreeHalfExtent))
		}
		if opts.Scene.Combat() {
			for i := 0; i < pop.Enemies; i++ {
				w.Enemies = append(w.Enemies, object.SpawnEnemy(w.rng))
			}
		}
	default:
		for i := 0; i < pop.Clouds; i++ {
			w.Drifters = append(w.Drifters, object.NewCloud(w.rng, w.View))
		}
		for i := 0; i < pop.Trees; i++ {
			w.Drifters = append(w.Drifters, object.NewDriftTree(w.rng, w.View))
		}
		for i := 0; i < pop.Grass; i++ {
			w.Drifters = append(w.Drifters, object.NewGrass(w.rng, w.View))
		}
		for i := 0; i < pop.Particles; i++ {
			w.Drifters = append(w.Drifters, object.NewParticle(w.rng, w.View))
		}
	}
	return w
}

// Rand returns the world's random source. Spawns draw from it so a seed
// replays the same session.
func (w *World) Rand() *rand.Rand {
	return w.rng
}

// SpawnEnemy creates an enemy at a random position inside the world bounds.
func (w *World) SpawnEnemy() *object.Enemy {
	return object.SpawnEnemy(w.rng)
}

// Projector returns the scene's projection strategy for the world viewport.
func (w *World) Projector() projection.Projector {
	return w.Scene.Projector(w.View)
}
