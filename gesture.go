package webedit

import (
	"io"
	"log/slog"
	"time"
)

// DefaultGestureIdleTimeout is how long a touch gesture may go without a
// move before it is ended on the assumption that its end event was lost.
// Mouse gestures are never ended this way.
const DefaultGestureIdleTimeout = 10 * time.Second

// Gesture is one start, move*, end interaction from a single pointer or
// touch contact. It lives from start to end and is discarded afterwards.
type Gesture struct {
	// Origin is the node the gesture started on.
	Origin Node
	// StartX and StartY are the page position at start.
	StartX, StartY int
	// OffsetX and OffsetY are the start position relative to Origin's
	// top-left content origin.
	OffsetX, OffsetY int
	// Identifier is the tracked touch contact. Only meaningful when Touch is set.
	Identifier int
	// Touch is true for touch gestures and false for mouse gestures.
	Touch bool
	// Scroll corrects the pointer delta for ancestor scrolling.
	Scroll ScrollCompensation

	lastX, lastY int
}

// Delta returns the gesture's current displacement from its start,
// including scroll compensation.
func (g *Gesture) Delta() (dx, dy int) {
	return g.lastX - g.StartX + g.Scroll.Delta.X, g.lastY - g.StartY + g.Scroll.Delta.Y
}

// ScrollCompensation tracks how much the origin's ancestors have scrolled
// since the gesture started.
type ScrollCompensation struct {
	BaseScroll Point
	BaseExtent Size
	Delta      Point
}

// Update recomputes Delta from the ancestors' current total scroll offset and
// scrollable extent. A change in extent, such as a scrollbar appearing, is
// subtracted so it does not read as pointer motion.
func (c *ScrollCompensation) Update(scroll Point, extent Size) {
	c.Delta = Point{
		X: (scroll.X - c.BaseScroll.X) - (extent.Width - c.BaseExtent.Width),
		Y: (scroll.Y - c.BaseScroll.Y) - (extent.Height - c.BaseExtent.Height),
	}
}

// GestureHandlers receive the normalized gesture stream.
type GestureHandlers struct {
	Start func(g *Gesture, ev Event)
	Move  func(g *Gesture, dx, dy int)
	End   func(g *Gesture)
}

// GestureTracker turns mouse and touch events from an EventSource into a
// single start/move/end stream. Only one gesture is tracked at a time.
type GestureTracker struct {
	src  EventSource
	loop Loop
	root Node

	idleTimeout time.Duration
	logger      *slog.Logger

	handlers     GestureHandlers
	removeStart  []func()
	removeActive []func()

	gesture      *Gesture
	cancelScroll func()
	cancelIdle   func()
}

// NewGestureTracker creates a tracker measuring positions against root.
func NewGestureTracker(src EventSource, loop Loop, root Node) *GestureTracker {
	return &GestureTracker{
		src:         src,
		loop:        loop,
		root:        root,
		idleTimeout: DefaultGestureIdleTimeout,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// SetIdleTimeout changes the idle release timeout for touch gestures. Zero
// disables it.
func (t *GestureTracker) SetIdleTimeout(d time.Duration) {
	t.idleTimeout = d
}

// SetLogger sets the logger for diagnostic records.
func (t *GestureTracker) SetLogger(l *slog.Logger) {
	if l != nil {
		t.logger = l
	}
}

// Enable starts listening for gesture starts.
func (t *GestureTracker) Enable(h GestureHandlers) {
	t.handlers = h
	t.removeStart = []func(){
		t.src.Listen(EventMouseDown, t.onMouseDown),
		t.src.Listen(EventTouchStart, t.onTouchStart),
	}
}

// Disable removes every listener and drops the active gesture without
// calling End.
func (t *GestureTracker) Disable() {
	for _, remove := range t.removeStart {
		remove()
	}
	t.removeStart = nil
	t.release()
	t.handlers = GestureHandlers{}
}

// Active returns the gesture in progress, or nil.
func (t *GestureTracker) Active() *Gesture {
	return t.gesture
}

func (t *GestureTracker) onMouseDown(ev Event) {
	me, ok := ev.(*MouseEvent)
	if !ok || me.Button != MouseLeft {
		return
	}
	if t.gesture != nil {
		t.logger.Debug("gesture start ignored", "reason", "locked", "event", ev.Kind())
		return
	}
	g := t.newGesture(me.Target(), me.PageX, me.PageY)
	t.begin(g, ev, EventMouseMove, EventMouseUp, t.onMouseMove, t.onMouseUp)
}

func (t *GestureTracker) onMouseMove(ev Event) {
	me, ok := ev.(*MouseEvent)
	if !ok || t.gesture == nil {
		return
	}
	t.gesture.lastX, t.gesture.lastY = me.PageX, me.PageY
	t.emitMove()
}

func (t *GestureTracker) onMouseUp(ev Event) {
	if t.gesture == nil {
		return
	}
	t.finish()
}

func (t *GestureTracker) onTouchStart(ev Event) {
	te, ok := ev.(*TouchEvent)
	if !ok || len(te.Changed) == 0 {
		return
	}
	if t.gesture != nil {
		t.logger.Debug("gesture start ignored", "reason", "locked", "event", ev.Kind())
		return
	}
	if te.Touches > 1 {
		t.logger.Debug("gesture start ignored", "reason", "multi-touch", "touches", te.Touches)
		return
	}
	touch := te.Changed[0]
	g := t.newGesture(te.Target(), touch.PageX, touch.PageY)
	g.Touch = true
	g.Identifier = touch.Identifier
	t.begin(g, ev, EventTouchMove, EventTouchEnd, t.onTouchMove, t.onTouchEnd)
}

func (t *GestureTracker) onTouchMove(ev Event) {
	touch, ok := t.trackedTouch(ev)
	if !ok {
		return
	}
	t.gesture.lastX, t.gesture.lastY = touch.PageX, touch.PageY
	t.emitMove()
}

func (t *GestureTracker) onTouchEnd(ev Event) {
	if _, ok := t.trackedTouch(ev); !ok {
		return
	}
	t.finish()
}

// trackedTouch finds the active gesture's contact among the event's changed
// touches. Identifier 0 is a valid contact.
func (t *GestureTracker) trackedTouch(ev Event) (Touch, bool) {
	te, ok := ev.(*TouchEvent)
	if !ok || t.gesture == nil || !t.gesture.Touch {
		return Touch{}, false
	}
	for _, touch := range te.Changed {
		if touch.Identifier == t.gesture.Identifier {
			return touch, true
		}
	}
	return Touch{}, false
}

func (t *GestureTracker) onScroll(ev Event) {
	g := t.gesture
	if g == nil || !isAncestor(ev.Target(), g.Origin, t.root) {
		return
	}
	if t.cancelScroll != nil {
		t.cancelScroll()
	}
	t.cancelScroll = t.loop.After(0, func() {
		t.cancelScroll = nil
		if t.gesture != g {
			return
		}
		scroll, extent := ancestorScroll(g.Origin, t.root)
		g.Scroll.Update(scroll, extent)
		t.emitMove()
	})
}

// newGesture records the start position relative to origin's content
// origin: its client rect minus its own scroll, relative to the root.
func (t *GestureTracker) newGesture(origin Node, pageX, pageY int) *Gesture {
	g := &Gesture{
		Origin:  origin,
		StartX:  pageX,
		StartY:  pageY,
		OffsetX: pageX,
		OffsetY: pageY,
		lastX:   pageX,
		lastY:   pageY,
	}
	if origin != nil {
		rect := origin.ClientRect()
		scroll := origin.ScrollOffset()
		var rootRect Rect
		if t.root != nil {
			rootRect = t.root.ClientRect()
		}
		g.OffsetX = pageX - (rect.X - scroll.X - rootRect.X)
		g.OffsetY = pageY - (rect.Y - scroll.Y - rootRect.Y)
	}
	scroll, extent := ancestorScroll(origin, t.root)
	g.Scroll = ScrollCompensation{BaseScroll: scroll, BaseExtent: extent}
	return g
}

func (t *GestureTracker) begin(g *Gesture, ev Event, moveKind, endKind EventKind, onMove, onEnd func(Event)) {
	t.gesture = g
	t.removeActive = []func(){
		t.src.Listen(moveKind, onMove),
		t.src.Listen(endKind, onEnd),
		t.src.Listen(EventScroll, t.onScroll),
	}
	t.armIdle()
	if t.handlers.Start != nil {
		t.handlers.Start(g, ev)
	}
}

func (t *GestureTracker) emitMove() {
	g := t.gesture
	t.armIdle()
	if t.handlers.Move != nil {
		dx, dy := g.Delta()
		t.handlers.Move(g, dx, dy)
	}
}

func (t *GestureTracker) finish() {
	g := t.gesture
	t.release()
	if t.handlers.End != nil {
		t.handlers.End(g)
	}
}

// release unlocks the tracker and detaches the per-gesture listeners.
func (t *GestureTracker) release() {
	for _, remove := range t.removeActive {
		remove()
	}
	t.removeActive = nil
	if t.cancelScroll != nil {
		t.cancelScroll()
		t.cancelScroll = nil
	}
	if t.cancelIdle != nil {
		t.cancelIdle()
		t.cancelIdle = nil
	}
	t.gesture = nil
}

func (t *GestureTracker) armIdle() {
	if t.cancelIdle != nil {
		t.cancelIdle()
		t.cancelIdle = nil
	}
	g := t.gesture
	if t.idleTimeout <= 0 || g == nil || !g.Touch {
		return
	}
	t.cancelIdle = t.loop.After(t.idleTimeout, func() {
		t.cancelIdle = nil
		if t.gesture != g {
			return
		}
		t.logger.Debug("gesture released after idle timeout", "timeout", t.idleTimeout, "identifier", g.Identifier)
		t.finish()
	})
}
