package loop

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/muesli/termenv"
)

func fixedSize(cols, rows int) func() (int, int, error) {
	return func() (int, int, error) { return cols, rows, nil }
}

func TestFitLayout(t *testing.T) {
	tests := []struct {
		cols, rows     int
		pixelW, pixelH int
		offCol, offRow int
	}{
		{120, 41, 120, 80, 0, 0},
		{200, 41, 120, 80, 40, 0},
		{120, 61, 120, 80, 0, 10},
		{81, 31, 81, 54, 0, 1},
	}
	for _, tt := range tests {
		l := fitLayout(tt.cols, tt.rows)
		if l.pixelW != tt.pixelW || l.pixelH != tt.pixelH || l.offCol != tt.offCol || l.offRow != tt.offRow {
			t.Fatalf("fitLayout(%d, %d) = %+v", tt.cols, tt.rows, l)
		}
	}
}

func TestRunTerminalQuit(t *testing.T) {
	var out bytes.Buffer
	err := RunTerminal(context.Background(), strings.NewReader("q"), &out, TerminalOptions{
		TermSizeFunc: fixedSize(90, 31),
		Profile:      termenv.ANSI256,
	})
	if err != nil {
		t.Fatalf("RunTerminal: %v", err)
	}
	s := out.String()
	if !strings.HasPrefix(s, "\033[?25l") {
		t.Fatalf("output does not start by hiding the cursor: %q", s[:min(len(s), 20)])
	}
	if !strings.Contains(s, "\033[?25h") || !strings.Contains(s, "\033[?1003l") {
		t.Fatal("terminal state not restored on quit")
	}
}

func TestRunTerminalContextDone(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	var out bytes.Buffer
	err := RunTerminal(ctx, pr, &out, TerminalOptions{
		TermSizeFunc: fixedSize(60, 21),
		Profile:      termenv.TrueColor,
	})
	if err != nil {
		t.Fatalf("RunTerminal: %v", err)
	}
	if !strings.Contains(out.String(), "arena") {
		t.Fatal("status line never written")
	}
	if !strings.Contains(out.String(), "▀") {
		t.Fatal("no half-block cells rendered")
	}
}
