package webedit

import (
	"io"
	"log/slog"
)

// KeyboardNudge moves the selection one unit per arrow key press. Presses
// within one frame accumulate into a single write per node.
type KeyboardNudge struct {
	sel      *Selection
	sched    *Scheduler
	reporter *Reporter
	logger   *slog.Logger
	key      MutationKey

	dx, dy int
}

// NewKeyboardNudge creates a nudge handler for sel.
func NewKeyboardNudge(sel *Selection, sched *Scheduler, reporter *Reporter) *KeyboardNudge {
	return &KeyboardNudge{
		sel:      sel,
		sched:    sched,
		reporter: reporter,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		key:      NewMutationKey(),
	}
}

// HandleKey accumulates an arrow key press. Other keys, events another
// listener already handled, and presses with nothing selected are left to
// the host.
func (n *KeyboardNudge) HandleKey(ev Event) {
	ke, ok := ev.(*KeyEvent)
	if !ok || ke.DefaultPrevented() || n.sel.Len() == 0 {
		return
	}
	dx, dy, ok := ke.Key.arrowDelta()
	if !ok {
		return
	}
	ke.PreventDefault()
	n.dx += dx
	n.dy += dy
	n.sched.Update(n.key, n.flush)
}

// Pending returns the accumulated, not yet applied displacement.
func (n *KeyboardNudge) Pending() (dx, dy int) {
	return n.dx, n.dy
}

// Reset drops the accumulated displacement.
func (n *KeyboardNudge) Reset() {
	n.dx, n.dy = 0, 0
}

func (n *KeyboardNudge) flush() {
	dx, dy := n.dx, n.dy
	n.dx, n.dy = 0, 0

	nodes := n.sel.Elements()
	for _, node := range nodes {
		node.SetGeometry(node.Geometry().Translate(dx, dy))
	}
	if err := n.reporter.Report(nodes...); err != nil {
		n.logger.Warn("geometry report failed", "error", err)
	}
}
