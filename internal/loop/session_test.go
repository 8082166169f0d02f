package loop

import (
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/tomz197/pseudo3d/internal/config"
	"github.com/tomz197/pseudo3d/internal/draw/drawtest"
	"github.com/tomz197/pseudo3d/internal/input"
	"github.com/tomz197/pseudo3d/internal/loop/mocks"
	"github.com/tomz197/pseudo3d/internal/object"
	"github.com/tomz197/pseudo3d/internal/sim"
	"github.com/tomz197/pseudo3d/internal/world"
)

func arenaConfig(enemies int) Config {
	cfg := DefaultConfig()
	cfg.Seed = 7
	cfg.Population.Enemies = enemies
	return cfg
}

func TestNewSessionWithoutSurface(t *testing.T) {
	if _, err := NewSession(nil, nil, nil); !errors.Is(err, ErrNoSurface) {
		t.Fatalf("nil surface err = %v, want ErrNoSurface", err)
	}
	if _, err := NewSession(drawtest.NewRecorder(0, 0), nil, nil); !errors.Is(err, ErrNoSurface) {
		t.Fatalf("empty surface err = %v, want ErrNoSurface", err)
	}
}

func TestStartRejectsInvalidConfig(t *testing.T) {
	s, err := NewSession(drawtest.NewRecorder(config.ViewWidth, config.ViewHeight), NewManualScheduler(), nil)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	cfg := arenaConfig(-1)
	if err := s.Start(cfg); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("Start err = %v, want ErrInvalidConfig", err)
	}
	if s.State() != StateStopped {
		t.Fatalf("state = %s after failed start", s.State())
	}
}

func TestStartTwice(t *testing.T) {
	s, _ := NewSession(drawtest.NewRecorder(config.ViewWidth, config.ViewHeight), NewManualScheduler(), nil)
	if err := s.Start(arenaConfig(3)); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := s.Start(arenaConfig(3)); !errors.Is(err, ErrRunning) {
		t.Fatalf("second Start err = %v, want ErrRunning", err)
	}
}

func TestFramesRunOnSchedule(t *testing.T) {
	rec := drawtest.NewRecorder(config.ViewWidth, config.ViewHeight)
	sched := NewManualScheduler()
	s, _ := NewSession(rec, sched, nil)

	if err := s.Start(arenaConfig(4)); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if rec.Len() != 0 {
		t.Fatal("Start drew synchronously")
	}
	for i := 0; i < 5; i++ {
		if n := sched.Tick(); n != 1 {
			t.Fatalf("tick %d ran %d frames, want 1", i, n)
		}
	}
	if got := rec.Count(drawtest.OpBeginFrame); got != 5 {
		t.Fatalf("frames drawn = %d, want 5", got)
	}
	st := s.Stats()
	if st.Frame != 5 || st.Enemies != 4 || st.State != StateRunning || st.Health != config.InitialHealth {
		t.Fatalf("stats = %+v", st)
	}
}

func TestStopCancelsPendingFrame(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rec := drawtest.NewRecorder(config.ViewWidth, config.ViewHeight)
	sched := mocks.NewMockScheduler(ctrl)

	var scheduled func()
	canceled := 0
	sched.EXPECT().Schedule(gomock.Any()).DoAndReturn(func(fn func()) func() {
		scheduled = fn
		return func() { canceled++ }
	}).Times(1)

	s, _ := NewSession(rec, sched, nil)
	if err := s.Start(arenaConfig(2)); err != nil {
		t.Fatalf("Start: %v", err)
	}
	s.Stop()
	if canceled != 1 {
		t.Fatalf("cancel called %d times, want 1", canceled)
	}

	// A timer that already fired before cancel still must not draw.
	scheduled()
	if rec.Len() != 0 {
		t.Fatalf("render calls after stop = %d, want 0", rec.Len())
	}
	if s.Input().Attached() {
		t.Fatal("input still attached after stop")
	}
}

func TestStopAfterFrames(t *testing.T) {
	rec := drawtest.NewRecorder(config.ViewWidth, config.ViewHeight)
	sched := NewManualScheduler()
	s, _ := NewSession(rec, sched, nil)
	if err := s.Start(arenaConfig(3)); err != nil {
		t.Fatalf("Start: %v", err)
	}
	sched.Tick()
	sched.Tick()
	s.Stop()

	drawn := rec.Len()
	frame := s.Stats().Frame
	for i := 0; i < 10; i++ {
		sched.Tick()
	}
	if rec.Len() != drawn || s.Stats().Frame != frame {
		t.Fatal("session kept running after stop")
	}
	if sched.Pending() != 0 {
		t.Fatalf("pending frames = %d after stop", sched.Pending())
	}
	s.Stop()
}

func TestGameOverFiresOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	obs := mocks.NewMockObserver(ctrl)
	obs.EXPECT().OnScoreChange(0).Times(1)
	obs.EXPECT().OnHealthChange(config.InitialHealth).Times(1)
	obs.EXPECT().OnHealthChange(gomock.Any()).Times(config.InitialHealth / config.EnemyDamage)
	obs.EXPECT().OnGameOver().Times(1)

	rec := drawtest.NewRecorder(config.ViewWidth, config.ViewHeight)
	sched := NewManualScheduler()
	s, _ := NewSession(rec, sched, obs)
	if err := s.Start(arenaConfig(1)); err != nil {
		t.Fatalf("Start: %v", err)
	}
	s.mu.Lock()
	s.world.Enemies = []*object.Enemy{object.NewEnemy(250, 0, 0)}
	s.mu.Unlock()

	frames := 0
	for sched.Tick() > 0 {
		frames++
		if frames > 1000 {
			t.Fatal("game did not end")
		}
	}
	if frames != 600 {
		t.Fatalf("game over after %d frames, want 600", frames)
	}
	st := s.Stats()
	if st.State != StateGameOver || st.Health != 0 {
		t.Fatalf("stats = %+v", st)
	}
	if s.Input().Attached() {
		t.Fatal("input still attached after game over")
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	sched := NewManualScheduler()
	over := 0
	s, _ := NewSession(drawtest.NewRecorder(config.ViewWidth, config.ViewHeight), sched,
		ObserverFuncs{GameOver: func() { over++ }})
	cfg := arenaConfig(1)
	cfg.Health = 10
	if err := s.Start(cfg); err != nil {
		t.Fatalf("Start: %v", err)
	}
	s.mu.Lock()
	s.world.Enemies = []*object.Enemy{object.NewEnemy(100, 0, 0)}
	s.mu.Unlock()
	for sched.Tick() > 0 {
	}
	if over != 1 || s.State() != StateGameOver {
		t.Fatalf("game over count = %d, state = %s", over, s.State())
	}

	if err := s.Restart(); err != nil {
		t.Fatalf("Restart: %v", err)
	}
	st := s.Stats()
	if st.State != StateRunning || st.Health != 10 || st.Frame != 0 || st.Kills != 0 {
		t.Fatalf("stats after restart = %+v", st)
	}
}

func TestInputReachesSimulation(t *testing.T) {
	sched := NewManualScheduler()
	cfg := ConfigFor(world.SceneExplore)
	cfg.Seed = 3
	s, _ := NewSession(drawtest.NewRecorder(config.ViewWidth, config.ViewHeight), sched, nil)
	if err := s.Start(cfg); err != nil {
		t.Fatalf("Start: %v", err)
	}

	s.Input().KeyDown(input.KeyForward)
	sched.Tick()
	s.mu.Lock()
	moved := s.world.Player.X != 0 || s.world.Player.Z != 0
	s.mu.Unlock()
	if !moved {
		t.Fatal("held key did not move the player")
	}
}

func TestObserverCanStopFromCallback(t *testing.T) {
	sched := NewManualScheduler()
	var s *Session
	s, _ = NewSession(drawtest.NewRecorder(config.ViewWidth, config.ViewHeight), sched,
		ObserverFuncs{Health: func(h int) {
			if h < config.InitialHealth {
				s.Stop()
			}
		}})
	if err := s.Start(arenaConfig(1)); err != nil {
		t.Fatalf("Start: %v", err)
	}
	s.mu.Lock()
	s.world.Enemies = []*object.Enemy{object.NewEnemy(100, 0, 0)}
	s.mu.Unlock()
	for i := 0; i < 100 && sched.Tick() > 0; i++ {
	}
	if s.State() != StateStopped {
		t.Fatalf("state = %s, want stopped", s.State())
	}
}

func TestNoCallbacksAfterStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rec := drawtest.NewRecorder(config.ViewWidth, config.ViewHeight)
	sched := NewManualScheduler()
	obs := mocks.NewMockObserver(ctrl)
	var s *Session
	s, _ = NewSession(rec, sched, obs)

	// Stopping from the first start callback drops the health callback.
	obs.EXPECT().OnScoreChange(0).Do(func(int) { s.Stop() }).Times(1)
	if err := s.Start(arenaConfig(1)); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if s.State() != StateStopped {
		t.Fatalf("state = %s, want stopped", s.State())
	}

	// Events of a frame that finished before Stop are not delivered after it.
	s.mu.Lock()
	started := s.gen - 1
	s.mu.Unlock()
	s.dispatch(started, []sim.Event{
		{Kind: sim.EventScore, Value: 1},
		{Kind: sim.EventHealth, Value: 90},
		{Kind: sim.EventGameOver},
	})
	if sched.Tick() != 0 {
		t.Fatal("frame ran after stop")
	}
}
