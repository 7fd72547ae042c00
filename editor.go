package webedit

import (
	"io"
	"log/slog"
	"time"
)

// Editor lets the user move and resize the editable nodes under root by
// dragging them, and nudge the selection with the arrow keys.
type Editor struct {
	root Node
	src  EventSource
	loop Loop

	editable     EditableFunc
	reportWriter io.Writer
	logger       *slog.Logger
	multiMod     Modifier
	idleTimeout  time.Duration

	sched    *Scheduler
	sel      *Selection
	tracker  *GestureTracker
	session  *DragSession
	nudge    *KeyboardNudge
	reporter *Reporter

	removeKeys func()
	enabled    bool
}

// New creates an editor for the tree under root. src delivers the
// platform's input events and loop provides display frames.
func New(root Node, src EventSource, loop Loop, opts ...Option) *Editor {
	if root == nil {
		panic("webedit: nil root in New")
	}
	if src == nil || loop == nil {
		panic("webedit: nil event source or loop in New")
	}
	e := &Editor{
		root:        root,
		src:         src,
		loop:        loop,
		editable:    HasTargetClass,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		multiMod:    ModShift,
		idleTimeout: DefaultGestureIdleTimeout,
	}
	for _, opt := range opts {
		opt(e)
	}

	e.sched = NewScheduler(loop)
	e.sel = NewSelection(e.sched, e.editable)
	e.reporter = NewReporter(e.reportWriter)

	e.tracker = NewGestureTracker(src, loop, root)
	e.tracker.SetIdleTimeout(e.idleTimeout)
	e.tracker.SetLogger(e.logger)

	e.session = NewDragSession(e.sel, e.sched, e.reporter, e.multiMod)
	e.session.logger = e.logger

	e.nudge = NewKeyboardNudge(e.sel, e.sched, e.reporter)
	e.nudge.logger = e.logger
	return e
}

// Enable marks the root as being edited and starts listening for input.
func (e *Editor) Enable() {
	e.root.AddClass(ClassEditing)
	e.tracker.Enable(e.session.Handlers())
	e.removeKeys = e.src.Listen(EventKeyDown, e.nudge.HandleKey)
	e.enabled = true
	e.logger.Info("editor enabled", "root", e.root.ID())
}

// Disable stops listening, drops queued work and removes every marker the
// editor applied.
func (e *Editor) Disable() {
	e.tracker.Disable()
	if e.removeKeys != nil {
		e.removeKeys()
		e.removeKeys = nil
	}
	e.sched.Cancel()
	e.nudge.Reset()
	for _, t := range e.session.Targets() {
		t.Node.RemoveClass(ClassResizing)
	}
	e.sel.Reset()
	e.root.RemoveClass(ClassEditing)
	e.enabled = false
	e.logger.Info("editor disabled", "root", e.root.ID())
}

// Enabled reports whether the editor is listening for input.
func (e *Editor) Enabled() bool {
	return e.enabled
}

// Selection returns the editor's selection.
func (e *Editor) Selection() *Selection {
	return e.sel
}

// Session returns the drag session, which exposes the active strategy.
func (e *Editor) Session() *DragSession {
	return e.session
}

// Tracker returns the gesture tracker.
func (e *Editor) Tracker() *GestureTracker {
	return e.tracker
}

// Scheduler returns the scheduler every mutation is batched through.
func (e *Editor) Scheduler() *Scheduler {
	return e.sched
}

// Report writes the geometry of nodes to the report sink.
func (e *Editor) Report(nodes ...Node) error {
	return e.reporter.Report(nodes...)
}
