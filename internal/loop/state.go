package loop

import "github.com/tomz197/pseudo3d/internal/world"

// State is the phase of a session.
type State int

const (
	StateStopped  State = iota // No frame is scheduled
	StateRunning               // Frames are scheduled one after another
	StateGameOver              // The player died; the last frame stays on the surface
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateStopped:
		return "stopped"
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Stats is a snapshot of a session for status lines and summaries.
type Stats struct {
	Scene   world.Scene
	State   State
	Kills   int
	Health  int
	Enemies int
	Frame   int
}
