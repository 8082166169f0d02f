// Package input turns raw key and pointer events into the per-frame intent
// the simulation consumes.
//
// Events may arrive from any goroutine at any time. The Sampler keeps only
// what is currently held, the latest pointer position and the clicks that
// happened since the previous frame.
package input

import (
	"math"
	"sync"
)

// Key is a logical key identity.
type Key int

const (
	KeyForward Key = iota
	KeyBack
	KeyStrafeLeft
	KeyStrafeRight
	keyCount
)

// String returns the key name.
func (k Key) String() string {
	switch k {
	case KeyForward:
		return "forward"
	case KeyBack:
		return "back"
	case KeyStrafeLeft:
		return "strafe-left"
	case KeyStrafeRight:
		return "strafe-right"
	default:
		return "unknown"
	}
}

// Intent is the input snapshot for one frame.
type Intent struct {
	Forward bool
	Back    bool
	Left    bool
	Right   bool

	// Facing is atan2(pointerY-centerY, pointerX-centerX) + π/2 of the most
	// recent pointer move, or 0 before the first move.
	Facing float64
	// Shots is the number of clicks since the previous sample.
	Shots int

	PointerX, PointerY float64
}

// Sampler collects events between frames. Events are dropped while detached.
type Sampler struct {
	mu sync.Mutex

	attached bool
	held     [keyCount]bool
	facing   float64
	pointerX float64
	pointerY float64
	centerX  float64
	centerY  float64
	shots    int
}

// NewSampler creates a detached sampler for a viewport of the given size.
// The pointer starts at the viewport centre.
func NewSampler(width, height float64) *Sampler {
	s := &Sampler{
		centerX: width / 2,
		centerY: height / 2,
	}
	s.reset()
	return s
}

// Attach starts accepting events.
func (s *Sampler) Attach() {
	s.mu.Lock()
	s.attached = true
	s.mu.Unlock()
}

// Detach stops accepting events and releases everything held.
func (s *Sampler) Detach() {
	s.mu.Lock()
	s.attached = false
	s.held = [keyCount]bool{}
	s.shots = 0
	s.mu.Unlock()
}

// Attached reports whether events are currently accepted.
func (s *Sampler) Attached() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.attached
}

// Reset returns the sampler to its initial state without changing attachment.
func (s *Sampler) Reset() {
	s.mu.Lock()
	s.reset()
	s.mu.Unlock()
}

func (s *Sampler) reset() {
	s.held = [keyCount]bool{}
	s.facing = 0
	s.pointerX = s.centerX
	s.pointerY = s.centerY
	s.shots = 0
}

// KeyDown marks k as held.
func (s *Sampler) KeyDown(k Key) {
	s.setKey(k, true)
}

// KeyUp releases k.
func (s *Sampler) KeyUp(k Key) {
	s.setKey(k, false)
}

func (s *Sampler) setKey(k Key, down bool) {
	if k < 0 || k >= keyCount {
		return
	}
	s.mu.Lock()
	if s.attached {
		s.held[k] = down
	}
	s.mu.Unlock()
}

// Held reports whether k is currently held.
func (s *Sampler) Held(k Key) bool {
	if k < 0 || k >= keyCount {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.held[k]
}

// PointerMove records an absolute pointer position on the surface and
// derives the facing angle from its offset to the viewport centre.
func (s *Sampler) PointerMove(x, y float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.attached {
		return
	}
	s.pointerX = x
	s.pointerY = y
	s.facing = FacingFromPointer(x, y, s.centerX, s.centerY)
}

// Click registers one fire trigger.
func (s *Sampler) Click() {
	s.mu.Lock()
	if s.attached {
		s.shots++
	}
	s.mu.Unlock()
}

// Sample returns the current intent and consumes pending clicks.
func (s *Sampler) Sample() Intent {
	s.mu.Lock()
	defer s.mu.Unlock()

	in := Intent{
		Forward:  s.held[KeyForward],
		Back:     s.held[KeyBack],
		Left:     s.held[KeyStrafeLeft],
		Right:    s.held[KeyStrafeRight],
		Facing:   s.facing,
		Shots:    s.shots,
		PointerX: s.pointerX,
		PointerY: s.pointerY,
	}
	s.shots = 0
	return in
}

// FacingFromPointer is the facing angle for a pointer at (x, y) on a
// viewport centred on (cx, cy). Pointing straight up gives 0.
func FacingFromPointer(x, y, cx, cy float64) float64 {
	return math.Atan2(y-cy, x-cx) + math.Pi/2
}
