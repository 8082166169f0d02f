package loop

import (
	"errors"
	"fmt"

	"github.com/tomz197/pseudo3d/internal/config"
	"github.com/tomz197/pseudo3d/internal/world"
)

// ErrInvalidConfig is wrapped by Config.Validate failures.
var ErrInvalidConfig = errors.New("invalid session config")

// Config fixes the world a session starts with.
type Config struct {
	Scene      world.Scene
	Seed       int64 // 0 picks a seed from the clock
	Population world.Population
	Health     int
}

// DefaultConfig returns an arena session with the usual population.
func DefaultConfig() Config {
	return ConfigFor(world.SceneArena)
}

// ConfigFor returns the default config for a scene.
func ConfigFor(scene world.Scene) Config {
	return Config{
		Scene:      scene,
		Population: world.DefaultPopulation(scene),
		Health:     config.InitialHealth,
	}
}

// ConfigFromEnv reads GAME_SCENE, GAME_SEED, GAME_ENEMIES and GAME_HEALTH
// over the defaults of the chosen scene.
func ConfigFromEnv() (Config, error) {
	scene, err := world.ParseScene(config.GetEnv("GAME_SCENE", world.SceneArena.String()))
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	cfg := ConfigFor(scene)
	cfg.Seed = config.GetEnvInt64("GAME_SEED", 0)
	cfg.Population.Enemies = config.GetEnvInt("GAME_ENEMIES", cfg.Population.Enemies)
	cfg.Health = config.GetEnvInt("GAME_HEALTH", cfg.Health)
	return cfg, cfg.Validate()
}

// Validate reports the first problem with c.
func (c Config) Validate() error {
	if _, err := world.ParseScene(c.Scene.String()); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	p := c.Population
	if p.Enemies < 0 || p.Trees < 0 || p.Grass < 0 || p.Clouds < 0 || p.Particles < 0 {
		return fmt.Errorf("%w: negative population %+v", ErrInvalidConfig, p)
	}
	if c.Health <= 0 || c.Health > config.MaxHealth {
		return fmt.Errorf("%w: health %d outside (0, %d]", ErrInvalidConfig, c.Health, config.MaxHealth)
	}
	return nil
}
