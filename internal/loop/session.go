// Package loop runs sessions: it owns the frame loop, feeds sampled input
// to the simulation, draws every frame and reports changes to the host.
package loop

import (
	"errors"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/pseudo3d/internal/draw"
	"github.com/tomz197/pseudo3d/internal/input"
	"github.com/tomz197/pseudo3d/internal/projection"
	"github.com/tomz197/pseudo3d/internal/render"
	"github.com/tomz197/pseudo3d/internal/sim"
	"github.com/tomz197/pseudo3d/internal/world"
)

var (
	// ErrNoSurface is returned when a session has nothing to draw on.
	ErrNoSurface = errors.New("no drawing surface")
	// ErrRunning is returned by Start on a running session.
	ErrRunning = errors.New("session already running")
)

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger. Sessions log nothing by default.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithPresenter sets a func called with the surface after every frame is
// drawn, while the frame still holds the session lock.
func WithPresenter(fn func(draw.Surface)) Option {
	return func(s *Session) {
		s.present = fn
	}
}

// Session is one game on one surface. It is safe for concurrent use: hosts
// feed input from their own goroutines while frames run on the scheduler's.
type Session struct {
	mu sync.Mutex

	surface  draw.Surface
	sched    Scheduler
	obs      Observer
	log      *log.Logger
	present  func(draw.Surface)
	sampler  *input.Sampler
	renderer *render.Renderer
	stepper  *sim.Stepper

	cfg    Config
	world  *world.World
	state  State
	gen    uint64 // Bumped on every Start and Stop; stale frames compare against it
	cancel func()
}

// NewSession creates a stopped session drawing on surface. A nil scheduler
// uses a TickerScheduler and a nil observer discards every change.
func NewSession(surface draw.Surface, sched Scheduler, obs Observer, opts ...Option) (*Session, error) {
	if surface == nil {
		return nil, ErrNoSurface
	}
	width, height := surface.Size()
	if width <= 0 || height <= 0 {
		return nil, ErrNoSurface
	}
	if sched == nil {
		sched = NewTickerScheduler()
	}
	if obs == nil {
		obs = ObserverFuncs{}
	}
	s := &Session{
		surface:  surface,
		sched:    sched,
		obs:      obs,
		log:      log.New(io.Discard),
		sampler:  input.NewSampler(width, height),
		renderer: render.New(),
		cfg:      DefaultConfig(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Input returns the sampler hosts deliver keyboard and pointer events to.
// It accepts events only while the session runs.
func (s *Session) Input() *input.Sampler {
	return s.sampler
}

// Start builds a fresh world for cfg and schedules the first frame. It may
// be called on a stopped session or after game over.
func (s *Session) Start(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	if s.state == StateRunning {
		s.mu.Unlock()
		return ErrRunning
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	width, height := s.surface.Size()
	s.cfg = cfg
	s.world = world.New(world.Options{
		Scene:      cfg.Scene,
		Seed:       seed,
		Population: cfg.Population,
		Health:     cfg.Health,
		View:       projection.Viewport{Width: width, Height: height},
	})
	s.stepper = sim.NewStepper()
	s.sampler.Reset()
	s.sampler.Attach()
	s.state = StateRunning
	s.gen++
	gen := s.gen
	s.cancel = s.sched.Schedule(func() { s.frame(gen) })
	s.mu.Unlock()

	s.log.Info("session started", "scene", cfg.Scene, "seed", seed,
		"enemies", cfg.Population.Enemies, "health", cfg.Health)
	if s.current(gen) {
		s.obs.OnScoreChange(0)
	}
	if s.current(gen) {
		s.obs.OnHealthChange(cfg.Health)
	}
	return nil
}

// Restart starts again with the config of the last Start.
func (s *Session) Restart() error {
	s.Stop()
	s.mu.Lock()
	cfg := s.cfg
	s.mu.Unlock()
	return s.Start(cfg)
}

// Stop cancels the pending frame and detaches input. No frame runs after
// Stop returns. Stopping a stopped session does nothing.
func (s *Session) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateStopped {
		return
	}
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.gen++
	s.sampler.Detach()
	prev := s.state
	s.state = StateStopped
	s.log.Info("session stopped", "from", prev, "frame", s.frameLocked())
}

// State returns the current phase.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Stats returns a snapshot of the current session.
func (s *Session) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := Stats{Scene: s.cfg.Scene, State: s.state}
	if s.world != nil {
		st.Scene = s.world.Scene
		st.Kills = s.world.Player.Kills
		st.Health = s.world.Player.Health
		st.Enemies = len(s.world.Enemies)
		st.Frame = s.world.Frame
	}
	return st
}

func (s *Session) frameLocked() int {
	if s.world == nil {
		return 0
	}
	return s.world.Frame
}

// frame runs one sample, step, draw cycle and schedules the next one.
func (s *Session) frame(gen uint64) {
	s.mu.Lock()
	if gen != s.gen || s.state != StateRunning {
		s.mu.Unlock()
		return
	}
	in := s.sampler.Sample()
	events := s.stepper.Step(s.world, in)
	s.renderer.Draw(s.surface, s.world)
	if s.present != nil {
		s.present(s.surface)
	}
	if s.world.GameOver {
		s.state = StateGameOver
		s.cancel = nil
		s.sampler.Detach()
	} else {
		s.cancel = s.sched.Schedule(func() { s.frame(gen) })
	}
	s.mu.Unlock()

	s.dispatch(gen, events)
}

// current reports whether no Start or Stop happened since gen was taken.
func (s *Session) current(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen == gen
}

// dispatch delivers events of generation gen, dropping the rest once a
// Start or Stop has intervened.
func (s *Session) dispatch(gen uint64, events []sim.Event) {
	for _, ev := range events {
		if !s.current(gen) {
			return
		}
		switch ev.Kind {
		case sim.EventScore:
			s.log.Debug("enemy killed", "kills", ev.Value)
			s.obs.OnScoreChange(ev.Value)
		case sim.EventHealth:
			s.log.Debug("player hit", "health", ev.Value)
			s.obs.OnHealthChange(ev.Value)
		case sim.EventGameOver:
			s.log.Info("game over")
			s.obs.OnGameOver()
		}
	}
}
