// Package web serves sessions to browsers over websockets. Each connection
// plays its own session: input events arrive as JSON and frames leave as
// PNG images.
package web

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"io"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/tomz197/pseudo3d/internal/config"
	"github.com/tomz197/pseudo3d/internal/draw"
	"github.com/tomz197/pseudo3d/internal/loop"
)

// Default frame size streamed to browsers. The page scales it up.
const (
	DefaultFrameWidth  = 600
	DefaultFrameHeight = 400
)

// ErrBackpressure is returned when the status queue of a connection is full.
var ErrBackpressure = errors.New("status queue full")

// Handler accepts websocket connections and runs one session on each.
type Handler struct {
	Config      loop.Config
	Logger      *log.Logger
	FrameWidth  int
	FrameHeight int
	// NewScheduler creates the frame scheduler of each session.
	NewScheduler func() loop.Scheduler
	// InsecureSkipVerify disables the websocket origin check.
	InsecureSkipVerify bool
}

// NewHandler creates a handler for cfg with default frame size.
func NewHandler(cfg loop.Config, logger *log.Logger) *Handler {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Handler{
		Config:      cfg,
		Logger:      logger,
		FrameWidth:  DefaultFrameWidth,
		FrameHeight: DefaultFrameHeight,
		NewScheduler: func() loop.Scheduler {
			return loop.NewTickerScheduler()
		},
	}
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: h.InsecureSkipVerify,
	})
	if err != nil {
		h.Logger.Error("failed to accept", "err", err)
		return
	}
	id := uuid.NewString()
	logger := h.Logger.With("session", id)
	logger.Info("browser connected", "remote", r.RemoteAddr)

	ep, err := h.newEndpoint(conn, id, logger)
	if err != nil {
		logger.Error("failed to start session", "err", err)
		conn.Close(websocket.StatusInternalError, "session failed to start")
		return
	}
	err = ep.run(r.Context())
	switch {
	case err == nil, errors.Is(err, context.Canceled):
		conn.Close(websocket.StatusNormalClosure, "")
	case websocket.CloseStatus(err) != -1:
		// Closed by the browser.
	default:
		logger.Warn("connection ended", "err", err)
		conn.Close(websocket.StatusInternalError, "")
	}
	logger.Info("browser disconnected", "stats", ep.session.Stats())
}

// endpoint couples one websocket to one session.
type endpoint struct {
	id      string
	conn    *websocket.Conn
	log     *log.Logger
	cfg     loop.Config
	canvas  *draw.Canvas
	session *loop.Session

	frameCh  chan *image.RGBA // Latest frame only
	statusCh chan StatusMessage
}

func (h *Handler) newEndpoint(conn *websocket.Conn, id string, logger *log.Logger) (*endpoint, error) {
	width, height := h.FrameWidth, h.FrameHeight
	if width <= 0 || height <= 0 {
		width, height = DefaultFrameWidth, DefaultFrameHeight
	}
	ep := &endpoint{
		id:       id,
		conn:     conn,
		log:      logger,
		cfg:      h.Config,
		canvas:   draw.NewScaledCanvas(width, height, config.ViewWidth, config.ViewHeight),
		frameCh:  make(chan *image.RGBA, 1),
		statusCh: make(chan StatusMessage, 64),
	}

	var sched loop.Scheduler
	if h.NewScheduler != nil {
		sched = h.NewScheduler()
	}
	obs := loop.ObserverFuncs{
		Score:    func(kills int) { ep.status(StatusMessage{Type: StatusScore, Value: kills}) },
		Health:   func(health int) { ep.status(StatusMessage{Type: StatusHealth, Value: health}) },
		GameOver: func() { ep.status(StatusMessage{Type: StatusGameOver}) },
	}
	sess, err := loop.NewSession(ep.canvas, sched, obs,
		loop.WithLogger(logger),
		loop.WithPresenter(ep.present),
	)
	if err != nil {
		return nil, err
	}
	ep.session = sess
	return ep, nil
}

// present copies the composited frame and replaces any frame not yet sent.
func (ep *endpoint) present(draw.Surface) {
	src := ep.canvas.Composite()
	frame := image.NewRGBA(src.Bounds())
	copy(frame.Pix, src.Pix)

	select {
	case ep.frameCh <- frame:
	default:
		select {
		case <-ep.frameCh:
		default:
		}
		select {
		case ep.frameCh <- frame:
		default:
		}
	}
}

func (ep *endpoint) status(msg StatusMessage) {
	select {
	case ep.statusCh <- msg:
	default:
		ep.log.Warn("dropping status", "type", msg.Type, "err", ErrBackpressure)
	}
}

func (ep *endpoint) run(ctx context.Context) error {
	ep.status(StatusMessage{Type: StatusHello, Session: ep.id})
	if err := ep.session.Start(ep.cfg); err != nil {
		return err
	}
	defer ep.session.Stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return ep.readLoop(ctx)
	})
	g.Go(func() error {
		return ep.writeLoop(ctx)
	})
	return g.Wait()
}

func (ep *endpoint) readLoop(ctx context.Context) error {
	for {
		var ev InputEvent
		if err := wsjson.Read(ctx, ep.conn, &ev); err != nil {
			return err
		}
		if !apply(ep.session.Input(), ev) {
			continue
		}
		if ep.session.State() == loop.StateRunning {
			continue
		}
		if err := ep.session.Restart(); err != nil {
			return err
		}
		ep.log.Debug("restarted")
	}
}

func (ep *endpoint) writeLoop(ctx context.Context) error {
	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg := <-ep.statusCh:
			if err := wsjson.Write(ctx, ep.conn, msg); err != nil {
				return err
			}
		case frame := <-ep.frameCh:
			buf.Reset()
			if err := enc.Encode(&buf, frame); err != nil {
				return err
			}
			if err := ep.conn.Write(ctx, websocket.MessageBinary, buf.Bytes()); err != nil {
				return err
			}
		}
	}
}
