package loop

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/tomz197/pseudo3d/internal/config"
	"github.com/tomz197/pseudo3d/internal/draw"
	"github.com/tomz197/pseudo3d/internal/input"
)

// TerminalOptions configures RunTerminal.
type TerminalOptions struct {
	TermSizeFunc draw.TermSizeFunc
	Profile      termenv.Profile
	Logger       *log.Logger
	Config       Config // Zero value means DefaultConfig
}

// layout places the canvas inside the terminal, keeping the viewport's
// aspect ratio and one row below it for the status line.
type layout struct {
	cols, rows     int
	offCol, offRow int
	pixelW, pixelH int
}

func fitLayout(cols, rows int) layout {
	l := layout{cols: cols, rows: rows}
	rows-- // status line
	if cols <= 0 || rows <= 0 {
		return l
	}
	const aspect = float64(config.ViewWidth) / config.ViewHeight
	l.pixelW, l.pixelH = cols, rows*2
	if float64(l.pixelW) > float64(l.pixelH)*aspect {
		l.pixelW = int(float64(l.pixelH) * aspect)
	} else {
		l.pixelH = int(float64(l.pixelW)/aspect) &^ 1
	}
	l.offCol = (cols - l.pixelW) / 2
	l.offRow = (rows - l.pixelH/2) / 2
	return l
}

// RunTerminal plays sessions on a terminal until the player quits, ctx is
// done or r fails. Frames are paced by the caller's loop through a
// ManualScheduler so input, simulation and output share one goroutine.
func RunTerminal(ctx context.Context, r io.Reader, w io.Writer, opts TerminalOptions) error {
	sizeFunc := opts.TermSizeFunc
	if sizeFunc == nil {
		sizeFunc = draw.DefaultTermSizeFunc
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	cfg := opts.Config
	if cfg == (Config{}) {
		cfg = DefaultConfig()
	}

	// Until the terminal reports a size, draw at one logical unit per ten pixels.
	canvas := draw.NewScaledCanvas(config.ViewWidth/10, config.ViewHeight/10, config.ViewWidth, config.ViewHeight)
	var lay layout
	resize := func() bool {
		cols, rows, err := sizeFunc()
		if err != nil || (cols == lay.cols && rows == lay.rows) {
			return false
		}
		next := fitLayout(cols, rows)
		if next.pixelW <= 0 || next.pixelH <= 0 {
			return false
		}
		lay = next
		canvas.Resize(lay.pixelW, lay.pixelH)
		canvas.SetOffset(lay.offCol, lay.offRow)
		return true
	}
	resize()

	sched := NewManualScheduler()
	sess, err := NewSession(canvas, sched, nil, WithLogger(logger))
	if err != nil {
		return err
	}
	if err := sess.Start(cfg); err != nil {
		return err
	}
	defer sess.Stop()

	stream := input.StartStream(r)
	decoder := input.NewTermDecoder(sess.Input(), canvas.TerminalToLogical)
	out := draw.NewChunkWriter(w)

	restore := draw.SetupTerminal(w)
	defer restore()

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}
		frameStart := time.Now()

		buf, ok := stream.Drain()
		if !ok {
			logger.Debug("input closed")
			return nil
		}
		cmd := decoder.Feed(buf, frameStart)
		if cmd.Quit {
			return nil
		}
		if cmd.Restart && sess.State() != StateRunning {
			if err := sess.Restart(); err != nil {
				return err
			}
		}

		if resize() {
			draw.ClearScreen(out)
		}
		sched.Tick()

		canvas.Render(out, opts.Profile)
		writeStatus(out, lay, sess.Stats(), opts.Profile)
		if err := out.Flush(); err != nil {
			return fmt.Errorf("write frame: %w", err)
		}

		elapsed := time.Since(frameStart)
		if elapsed < config.TargetFrameTime {
			time.Sleep(config.TargetFrameTime - elapsed)
		}
	}
}

// writeStatus prints a one-line summary below the canvas.
func writeStatus(out *draw.ChunkWriter, lay layout, st Stats, profile termenv.Profile) {
	if lay.pixelH == 0 {
		return
	}
	var line string
	switch {
	case st.State == StateGameOver:
		line = fmt.Sprintf("GAME OVER  kills %d  [space] restart  [q] quit", st.Kills)
	case st.Scene.Combat():
		line = fmt.Sprintf("%s  kills %d  health %d  enemies %d  [wasd] move  [click/space] fire  [q] quit",
			st.Scene, st.Kills, st.Health, st.Enemies)
	default:
		line = fmt.Sprintf("%s  [wasd] move  [mouse] look  [q] quit", st.Scene)
	}
	if len(line) > lay.pixelW {
		line = line[:lay.pixelW]
	}
	out.WriteAt(lay.offCol+1, lay.offRow+lay.pixelH/2+1, termenv.String(line).Faint().String(), true)
}
