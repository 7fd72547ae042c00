// Package host runs a webedit.Editor over a scene in a terminal. It turns
// terminal input into engine events aimed at hit-tested elements, performs
// the default action for events the editor did not prevent, and repaints
// the scene at most once per frame.
package host

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/webedit"
	"github.com/grindlemire/webedit/internal/debug"
	"github.com/grindlemire/webedit/internal/scene"
	"github.com/grindlemire/webedit/internal/term"
)

// Config configures a Host.
type Config struct {
	// FrameDuration paces repaints and engine flushes.
	FrameDuration time.Duration
	// MultiSelect is the modifier that extends the selection.
	MultiSelect webedit.Modifier
	// IdleTimeout ends touch gestures that stop moving. Zero disables it.
	IdleTimeout time.Duration
	// Report receives geometry reports.
	Report io.Writer
	// Logger receives diagnostic records.
	Logger *slog.Logger
}

// Host wires a scene, an editor and a terminal together.
type Host struct {
	scene  *scene.Scene
	screen io.Writer
	disp   *webedit.Dispatcher
	loop   *webedit.EventLoop
	editor *webedit.Editor
	logger *slog.Logger

	lastX, lastY int
	status       string
	painted      string
	quit         func()
}

// New creates a host editing sc and painting to screen.
func New(sc *scene.Scene, screen io.Writer, cfg Config) *Host {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	h := &Host{
		scene:  sc,
		screen: screen,
		disp:   webedit.NewDispatcher(),
		logger: logger,
		quit:   func() {},
	}
	h.loop = webedit.NewEventLoop(
		webedit.WithFrameDuration(cfg.FrameDuration),
		webedit.WithFrameHook(h.paint),
	)
	h.editor = webedit.New(sc.Root(), h.disp, h.loop,
		webedit.WithReportWriter(cfg.Report),
		webedit.WithLogger(logger),
		webedit.WithMultiSelectModifier(cfg.MultiSelect),
		webedit.WithGestureIdleTimeout(cfg.IdleTimeout),
	)
	h.editor.Enable()
	h.updateStatus()
	return h
}

// Editor returns the editor driven by the host.
func (h *Host) Editor() *webedit.Editor { return h.editor }

// Loop returns the host's event loop.
func (h *Host) Loop() *webedit.EventLoop { return h.loop }

// Status returns the text of the status line.
func (h *Host) Status() string { return h.status }

// Run reads input from src and runs the event loop until ctx is done or the
// user quits. The editor is disabled before Run returns.
func (h *Host) Run(ctx context.Context, src term.Source) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	h.quit = cancel
	defer h.editor.Disable()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return h.loop.Run(gctx)
	})
	g.Go(func() error {
		for {
			inputs, err := src.Read(gctx)
			if err != nil {
				if gctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("read terminal input: %w", err)
			}
			err = h.loop.PostContext(gctx, func() {
				for _, in := range inputs {
					h.Handle(in)
				}
			})
			if err != nil {
				return nil
			}
		}
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// Handle processes one input. It must run on the loop goroutine.
func (h *Host) Handle(in term.Input) {
	switch in := in.(type) {
	case term.KeyInput:
		h.handleKey(in)
	case term.MouseInput:
		h.handleMouse(in)
	case term.ResizeInput:
		h.scene.ResizeCells(in.Width, in.Height)
	}
	h.updateStatus()
}

func (h *Host) handleKey(in term.KeyInput) {
	ev := webedit.NewKeyEvent(h.scene.Root(), in.Key, in.Rune, in.Mod)
	h.disp.Dispatch(ev)
	if ev.DefaultPrevented() {
		return
	}

	switch {
	case in.Key == webedit.KeyCtrlC, in.Key == webedit.KeyRune && in.Rune == 'q':
		debug.Log("quit requested")
		// Queued after any pending engine flush so final reports are written.
		h.loop.RequestFrame(h.quit)
	case in.Key == webedit.KeyUp:
		h.scroll(h.lastX, h.lastY, 0, -1)
	case in.Key == webedit.KeyDown:
		h.scroll(h.lastX, h.lastY, 0, 1)
	case in.Key == webedit.KeyLeft:
		h.scroll(h.lastX, h.lastY, -1, 0)
	case in.Key == webedit.KeyRight:
		h.scroll(h.lastX, h.lastY, 1, 0)
	}
}

func (h *Host) handleMouse(in term.MouseInput) {
	x, y := h.scene.PageFromCell(in.X, in.Y)
	h.lastX, h.lastY = x, y

	switch in.Button {
	case term.ButtonWheelUp:
		h.scroll(x, y, 0, -1)
		return
	case term.ButtonWheelDown:
		h.scroll(x, y, 0, 1)
		return
	}

	var kind webedit.EventKind
	switch in.Action {
	case term.ActionPress:
		kind = webedit.EventMouseDown
	case term.ActionDrag:
		kind = webedit.EventMouseMove
	case term.ActionRelease:
		kind = webedit.EventMouseUp
	default:
		return
	}
	target := h.scene.HitTest(x, y)
	debug.Log("%s target=%s x=%d y=%d", kind, target.ID(), x, y)
	h.disp.Dispatch(webedit.NewMouseEvent(kind, target, mouseButton(in.Button), x, y, in.Mod))
}

// scroll scrolls the deepest scrollable element under the px position
// (x, y) by (dx, dy) cells and notifies listeners when its offset changed.
func (h *Host) scroll(x, y, dx, dy int) {
	target := h.scene.ScrollTargetAt(x, y)
	cell := h.scene.CellSize()
	if target == nil || !target.ScrollBy(dx*cell.Width, dy*cell.Height) {
		return
	}
	h.disp.Dispatch(webedit.NewScrollEvent(target))
}

func mouseButton(b term.Button) webedit.MouseButton {
	switch b {
	case term.ButtonLeft:
		return webedit.MouseLeft
	case term.ButtonMiddle:
		return webedit.MouseMiddle
	case term.ButtonRight:
		return webedit.MouseRight
	default:
		return webedit.MouseNone
	}
}

func (h *Host) updateStatus() {
	strategy := "idle"
	if h.editor.Tracker().Active() != nil {
		strategy = h.editor.Session().Strategy().Kind.String()
	}
	h.status = fmt.Sprintf(" selected: %d  drag: %s  q: quit", h.editor.Selection().Len(), strategy)
}

func (h *Host) paint() {
	if !h.scene.Dirty() && h.status == h.painted {
		return
	}
	if _, err := io.WriteString(h.screen, h.scene.Render(h.status)); err != nil {
		h.logger.Warn("paint failed", "error", err)
		return
	}
	h.scene.MarkClean()
	h.painted = h.status
}
