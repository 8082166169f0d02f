package input

import (
	"bytes"
	"io"
	"strconv"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// Terminals report no key release, so auto-repeat keeps a key alive.
const keyHoldDuration = 150 * time.Millisecond

// Commands are host-level actions decoded from the terminal that are not
// part of the frame intent.
type Commands struct {
	Quit    bool
	Restart bool // Space or Enter, used by hosts after game over
}

// Stream delivers input bytes from a reader via a channel.
type Stream struct {
	ch     chan []byte
	closed bool
}

// StartStream spawns a goroutine that reads from r and sends chunks to the stream.
func StartStream(r io.Reader) *Stream {
	s := &Stream{
		ch: make(chan []byte, 64),
	}
	go func() {
		buf := make([]byte, 256)
		for {
			n, err := r.Read(buf)
			if n > 0 {
				chunk := make([]byte, n)
				copy(chunk, buf[:n])
				s.ch <- chunk
			}
			if err != nil {
				close(s.ch)
				return
			}
		}
	}()
	return s
}

// Drain returns all available bytes without blocking. ok is false once the
// reader has failed and everything buffered was returned.
func (s *Stream) Drain() (buf []byte, ok bool) {
	if s.closed {
		return nil, false
	}
	for {
		select {
		case chunk, open := <-s.ch:
			if !open {
				s.closed = true
				return buf, len(buf) > 0
			}
			buf = append(buf, chunk...)
		default:
			return buf, true
		}
	}
}

// LocateFunc maps a 1-based terminal cell to logical surface coordinates.
type LocateFunc func(col, row int) (x, y float64)

// TermDecoder parses raw terminal bytes (WASD, arrow keys, SGR mouse
// reports) into Sampler events. Held keys are synthesized from repeat
// timing and released by Expire.
type TermDecoder struct {
	sampler  *Sampler
	locate   LocateFunc
	hold     time.Duration
	lastSeen [keyCount]time.Time
	pending  []byte // Incomplete escape sequence carried to the next Feed
}

// NewTermDecoder creates a decoder feeding s. locate converts mouse cells to
// surface coordinates; a nil locate ignores the mouse.
func NewTermDecoder(s *Sampler, locate LocateFunc) *TermDecoder {
	return &TermDecoder{
		sampler: s,
		locate:  locate,
		hold:    keyHoldDuration,
	}
}

// SetHoldDuration overrides how long a key stays held after its last byte.
func (d *TermDecoder) SetHoldDuration(hold time.Duration) {
	d.hold = hold
}

// Feed decodes buf at time now.
func (d *TermDecoder) Feed(buf []byte, now time.Time) Commands {
	var cmd Commands
	if len(d.pending) > 0 {
		buf = append(d.pending, buf...)
		d.pending = nil
	}

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// Check for escape sequences (arrow keys, mouse)
		if b == '\x1b' {
			n, complete := d.escape(buf[i:], now)
			if !complete {
				d.pending = append([]byte(nil), buf[i:]...)
				break
			}
			if n > 0 {
				i += n - 1
				continue
			}
		}

		d.applyByte(b, now, &cmd)
	}

	d.Expire(now)
	return cmd
}

// maxEscapeLen bounds an unterminated sequence before it is dropped.
const maxEscapeLen = 32

// escape handles a sequence starting at buf[0] == ESC. It returns the
// number of bytes consumed, 0 for a lone ESC, and complete=false when the
// sequence is cut off at the end of buf.
func (d *TermDecoder) escape(buf []byte, now time.Time) (int, bool) {
	if len(buf) < 2 {
		return 0, true
	}
	if buf[1] != '[' {
		return 0, true
	}
	if len(buf) > 2 && buf[2] == '<' {
		return d.mouse(buf)
	}

	// CSI: ESC [ params/intermediates (0x20-0x3F) final (0x40-0x7E)
	i := 2
	for i < len(buf) && buf[i] >= 0x20 && buf[i] <= 0x3f {
		i++
	}
	if i == len(buf) {
		if len(buf) > maxEscapeLen {
			return len(buf), true
		}
		return 0, false
	}
	final := buf[i]
	if final < 0x40 || final > 0x7e {
		// Malformed; leave the interrupting byte for the caller.
		return i, true
	}

	// Arrows keep their meaning under modifiers (ESC [ 1 ; 5 D).
	switch final {
	case 'A':
		d.press(KeyForward, now)
	case 'B':
		d.press(KeyBack, now)
	case 'C':
		d.press(KeyStrafeRight, now)
	case 'D':
		d.press(KeyStrafeLeft, now)
	}
	return i + 1, true
}

// mouse parses an SGR report: ESC [ < button ; col ; row (M|m).
func (d *TermDecoder) mouse(buf []byte) (int, bool) {
	end := 3
	for end < len(buf) && (buf[end] == ';' || buf[end] >= '0' && buf[end] <= '9') {
		end++
	}
	if end == len(buf) {
		if len(buf) > maxEscapeLen {
			return len(buf), true
		}
		return 0, false
	}
	if buf[end] != 'M' && buf[end] != 'm' {
		return end, true
	}

	fields := bytes.Split(buf[3:end], []byte{';'})
	if len(fields) != 3 {
		return end + 1, true
	}
	button, err1 := strconv.Atoi(string(fields[0]))
	col, err2 := strconv.Atoi(string(fields[1]))
	row, err3 := strconv.Atoi(string(fields[2]))
	if err1 != nil || err2 != nil || err3 != nil || d.locate == nil {
		return end + 1, true
	}

	x, y := d.locate(col, row)
	d.sampler.PointerMove(x, y)

	const (
		motionFlag = 32
		wheelFlag  = 64
	)
	press := buf[end] == 'M'
	if press && button&(motionFlag|wheelFlag|3) == 0 {
		d.sampler.Click()
	}
	return end + 1, true
}

// applyByte handles a single plain byte.
func (d *TermDecoder) applyByte(b byte, now time.Time, cmd *Commands) {
	switch b {
	case 'q', 'Q', 0x03: // Ctrl+C
		cmd.Quit = true
	case 'w', 'W':
		d.press(KeyForward, now)
	case 's', 'S':
		d.press(KeyBack, now)
	case 'a', 'A':
		d.press(KeyStrafeLeft, now)
	case 'd', 'D':
		d.press(KeyStrafeRight, now)
	case ' ':
		d.sampler.Click()
		cmd.Restart = true
	case '\n', '\r':
		cmd.Restart = true
	}
}

func (d *TermDecoder) press(k Key, now time.Time) {
	d.lastSeen[k] = now
	d.sampler.KeyDown(k)
}

// Expire releases keys not seen within the hold window.
func (d *TermDecoder) Expire(now time.Time) {
	for k := Key(0); k < keyCount; k++ {
		if d.lastSeen[k].IsZero() {
			continue
		}
		if now.Sub(d.lastSeen[k]) >= d.hold {
			d.lastSeen[k] = time.Time{}
			d.sampler.KeyUp(k)
		}
	}
}
