// Package drawtest provides a Surface that records draw calls for tests.
package drawtest

import (
	"image/color"
	"sync"

	"github.com/tomz197/pseudo3d/internal/draw"
)

// Op names a recorded call.
type Op string

const (
	OpBeginFrame  Op = "BeginFrame"
	OpClear       Op = "Clear"
	OpFillRect    Op = "FillRect"
	OpStrokeRect  Op = "StrokeRect"
	OpGradient    Op = "VerticalGradient"
	OpFillCircle  Op = "FillCircle"
	OpStrokeCirc  Op = "StrokeCircle"
	OpLine        Op = "Line"
	OpFillPolygon Op = "FillPolygon"
	OpText        Op = "Text"
)

// Call is one recorded draw call. Args holds the numeric arguments in
// signature order.
type Call struct {
	Op    Op
	Args  []float64
	Text  string
	Color color.Color
}

// Recorder is a draw.Surface that stores every call. It is safe for
// concurrent use.
type Recorder struct {
	mu     sync.Mutex
	width  float64
	height float64
	calls  []Call
}

var _ draw.Surface = (*Recorder)(nil)

// NewRecorder creates a recorder with the given logical size.
func NewRecorder(width, height float64) *Recorder {
	return &Recorder{width: width, height: height}
}

func (r *Recorder) add(c Call) {
	r.mu.Lock()
	r.calls = append(r.calls, c)
	r.mu.Unlock()
}

// Calls returns a copy of the recorded calls.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Call(nil), r.calls...)
}

// Count returns how many calls of op were recorded.
func (r *Recorder) Count(op Op) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, c := range r.calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Texts returns the strings passed to Text in order.
func (r *Recorder) Texts() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, c := range r.calls {
		if c.Op == OpText {
			out = append(out, c.Text)
		}
	}
	return out
}

// Len returns the number of recorded calls.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

// Reset drops all recorded calls.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.calls = nil
	r.mu.Unlock()
}

func (r *Recorder) Size() (float64, float64) { return r.width, r.height }
func (r *Recorder) BeginFrame()              { r.add(Call{Op: OpBeginFrame}) }
func (r *Recorder) Clear(c color.Color)      { r.add(Call{Op: OpClear, Color: c}) }

func (r *Recorder) FillRect(x, y, w, h float64, c color.Color) {
	r.add(Call{Op: OpFillRect, Args: []float64{x, y, w, h}, Color: c})
}

func (r *Recorder) StrokeRect(x, y, w, h, lineWidth float64, c color.Color) {
	r.add(Call{Op: OpStrokeRect, Args: []float64{x, y, w, h, lineWidth}, Color: c})
}

func (r *Recorder) VerticalGradient(x, y, w, h float64, top, bottom color.Color) {
	r.add(Call{Op: OpGradient, Args: []float64{x, y, w, h}, Color: top})
}

func (r *Recorder) FillCircle(cx, cy, radius float64, c color.Color) {
	r.add(Call{Op: OpFillCircle, Args: []float64{cx, cy, radius}, Color: c})
}

func (r *Recorder) StrokeCircle(cx, cy, radius, lineWidth float64, c color.Color) {
	r.add(Call{Op: OpStrokeCirc, Args: []float64{cx, cy, radius, lineWidth}, Color: c})
}

func (r *Recorder) Line(x1, y1, x2, y2, lineWidth float64, c color.Color) {
	r.add(Call{Op: OpLine, Args: []float64{x1, y1, x2, y2, lineWidth}, Color: c})
}

func (r *Recorder) FillPolygon(points []draw.Point, c color.Color) {
	args := make([]float64, 0, len(points)*2)
	for _, p := range points {
		args = append(args, p.X, p.Y)
	}
	r.add(Call{Op: OpFillPolygon, Args: args, Color: c})
}

func (r *Recorder) Text(x, y, size float64, s string, c color.Color) {
	r.add(Call{Op: OpText, Args: []float64{x, y, size}, Text: s, Color: c})
}
