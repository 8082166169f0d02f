package loop

//go:generate go tool mockgen -destination=./mocks/scheduler_mock.go -package=mocks . Scheduler

import (
	"sync"
	"time"

	"github.com/tomz197/pseudo3d/internal/config"
)

// Scheduler runs the next frame. Implementations must guarantee that fn
// does not start after the returned cancel func has returned.
type Scheduler interface {
	Schedule(fn func()) (cancel func())
}

// TickerScheduler runs each frame after a fixed interval on its own goroutine.
type TickerScheduler struct {
	Interval time.Duration
}

// NewTickerScheduler creates a scheduler at the target frame rate.
func NewTickerScheduler() *TickerScheduler {
	return &TickerScheduler{Interval: config.TargetFrameTime}
}

// Schedule implements Scheduler.
func (t *TickerScheduler) Schedule(fn func()) func() {
	interval := t.Interval
	if interval <= 0 {
		interval = config.TargetFrameTime
	}
	timer := time.AfterFunc(interval, fn)
	return func() { timer.Stop() }
}

// ManualScheduler queues frames until Tick runs them. Hosts with their own
// frame pacing and tests drive it.
type ManualScheduler struct {
	mu      sync.Mutex
	nextID  int
	pending map[int]func()
	order   []int
}

// NewManualScheduler creates an empty manual scheduler.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{pending: make(map[int]func())}
}

// Schedule implements Scheduler.
func (m *ManualScheduler) Schedule(fn func()) func() {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextID
	m.nextID++
	m.pending[id] = fn
	m.order = append(m.order, id)
	return func() {
		m.mu.Lock()
		delete(m.pending, id)
		m.mu.Unlock()
	}
}

// Tick runs every frame queued before the call and returns how many ran.
// Frames they schedule wait for the next Tick.
func (m *ManualScheduler) Tick() int {
	m.mu.Lock()
	order := m.order
	m.order = nil
	var due []func()
	for _, id := range order {
		if fn, ok := m.pending[id]; ok {
			due = append(due, fn)
			delete(m.pending, id)
		}
	}
	m.mu.Unlock()

	for _, fn := range due {
		fn()
	}
	return len(due)
}

// Pending returns the number of queued frames.
func (m *ManualScheduler) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.pending)
}
