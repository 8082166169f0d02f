package web

import "github.com/tomz197/pseudo3d/internal/input"

// Inbound event types sent by the browser.
const (
	EventKeyDown = "keydown"
	EventKeyUp   = "keyup"
	EventPointer = "pointer"
	EventClick   = "click"
	EventRestart = "restart"
)

// InputEvent is one browser input event. Pointer coordinates are logical
// viewport units; the page scales them from the element size.
type InputEvent struct {
	Type string  `json:"type"`
	Key  string  `json:"key,omitempty"`
	X    float64 `json:"x,omitempty"`
	Y    float64 `json:"y,omitempty"`
}

// Outbound status message types. Frames are sent as binary PNG messages.
const (
	StatusHello    = "hello"
	StatusScore    = "score"
	StatusHealth   = "health"
	StatusGameOver = "gameover"
)

// StatusMessage reports a session change to the page.
type StatusMessage struct {
	Type    string `json:"type"`
	Value   int    `json:"value"`
	Session string `json:"session,omitempty"`
}

// keyFor maps KeyboardEvent.key values to sampler keys.
func keyFor(name string) (input.Key, bool) {
	switch name {
	case "w", "W", "ArrowUp":
		return input.KeyForward, true
	case "s", "S", "ArrowDown":
		return input.KeyBack, true
	case "a", "A", "ArrowLeft":
		return input.KeyStrafeLeft, true
	case "d", "D", "ArrowRight":
		return input.KeyStrafeRight, true
	}
	return 0, false
}

// apply delivers ev to s. It reports whether the page asked for a restart.
func apply(s *input.Sampler, ev InputEvent) (restart bool) {
	switch ev.Type {
	case EventKeyDown:
		if k, ok := keyFor(ev.Key); ok {
			s.KeyDown(k)
		}
	case EventKeyUp:
		if k, ok := keyFor(ev.Key); ok {
			s.KeyUp(k)
		}
	case EventPointer:
		s.PointerMove(ev.X, ev.Y)
	case EventClick:
		s.Click()
	case EventRestart:
		return true
	}
	return false
}
