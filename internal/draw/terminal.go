package draw

import (
	"bytes"
	"io"
	"os"
	"strconv"

	"golang.org/x/term"
)

// maxChunkSize is the largest single write of a frame. It stays below a
// typical MTU so SSH sessions stream frames smoothly.
const maxChunkSize = 1400

// Terminal control sequences.
const (
	seqClear      = "\033[H\033[2J"
	seqHideCursor = "\033[?25l"
	seqShowCursor = "\033[?25h"
	seqMouseOn    = "\033[?1003h\033[?1006h" // Any-motion tracking, SGR coordinates
	seqMouseOff   = "\033[?1006l\033[?1003l"
	seqClearLine  = "\033[2K"
)

// appendCursor appends a cursor position sequence for the 1-based cell.
func appendCursor(b []byte, col, row int) []byte {
	b = append(b, "\033["...)
	b = strconv.AppendInt(b, int64(row), 10)
	b = append(b, ';')
	b = strconv.AppendInt(b, int64(col), 10)
	return append(b, 'H')
}

// ChunkWriter collects one frame of terminal output and sends it in
// chunks of at most maxChunkSize bytes on Flush.
type ChunkWriter struct {
	frame bytes.Buffer
	out   io.Writer
	seq   []byte
}

// NewChunkWriter creates a ChunkWriter sending to w.
func NewChunkWriter(w io.Writer) *ChunkWriter {
	return &ChunkWriter{out: w}
}

// Write appends p to the frame.
func (cw *ChunkWriter) Write(p []byte) (int, error) {
	return cw.frame.Write(p)
}

// WriteAt appends s at the 1-based terminal cell. clearLine blanks the
// whole line first.
func (cw *ChunkWriter) WriteAt(col, row int, s string, clearLine bool) {
	cw.seq = appendCursor(cw.seq[:0], col, row)
	cw.frame.Write(cw.seq)
	if clearLine {
		cw.frame.WriteString(seqClearLine)
	}
	cw.frame.WriteString(s)
}

// Flush sends the frame and starts a new one.
func (cw *ChunkWriter) Flush() error {
	for data := cw.frame.Bytes(); len(data) > 0; {
		n := min(len(data), maxChunkSize)
		if _, err := cw.out.Write(data[:n]); err != nil {
			cw.frame.Reset()
			return err
		}
		data = data[n:]
	}
	cw.frame.Reset()
	return nil
}

// TermSizeFunc reports the terminal size in cells.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc returns the size of the terminal on stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// ClearScreen clears the terminal and homes the cursor.
func ClearScreen(w io.Writer) {
	io.WriteString(w, seqClear)
}

// SetupTerminal hides the cursor, turns on mouse reporting and clears the
// screen. The returned func undoes all of it.
func SetupTerminal(w io.Writer) (restore func()) {
	io.WriteString(w, seqHideCursor+seqMouseOn+seqClear)
	return func() {
		io.WriteString(w, seqMouseOff+seqShowCursor+seqClear)
	}
}
