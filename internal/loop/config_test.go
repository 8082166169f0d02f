package loop

import (
	"errors"
	"testing"

	"github.com/tomz197/pseudo3d/internal/world"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		ok     bool
	}{
		{"default", func(*Config) {}, true},
		{"zero health", func(c *Config) { c.Health = 0 }, false},
		{"too much health", func(c *Config) { c.Health = 101 }, false},
		{"negative trees", func(c *Config) { c.Population.Trees = -1 }, false},
		{"unknown scene", func(c *Config) { c.Scene = world.Scene(42) }, false},
		{"no enemies", func(c *Config) { c.Population.Enemies = 0 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Fatalf("Validate() = %v, want nil", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("GAME_SCENE", "meadow")
	t.Setenv("GAME_SEED", "99")
	t.Setenv("GAME_HEALTH", "40")

	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("ConfigFromEnv: %v", err)
	}
	if cfg.Scene != world.SceneMeadow || cfg.Seed != 99 || cfg.Health != 40 {
		t.Fatalf("config = %+v", cfg)
	}
	if cfg.Population != world.DefaultPopulation(world.SceneMeadow) {
		t.Fatalf("population = %+v, want meadow defaults", cfg.Population)
	}
}

func TestConfigFromEnvUnknownScene(t *testing.T) {
	t.Setenv("GAME_SCENE", "moon")
	if _, err := ConfigFromEnv(); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("err = %v, want ErrInvalidConfig", err)
	}
}

func TestManualSchedulerCancel(t *testing.T) {
	m := NewManualScheduler()
	ran := 0
	cancel := m.Schedule(func() { ran++ })
	m.Schedule(func() { ran += 10 })
	cancel()
	if n := m.Tick(); n != 1 || ran != 10 {
		t.Fatalf("Tick ran %d (ran=%d), want only the uncanceled frame", n, ran)
	}
	if m.Pending() != 0 {
		t.Fatalf("pending = %d", m.Pending())
	}
}
