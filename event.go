package webedit

// EventKind identifies which platform listener an event is delivered to.
type EventKind int

const (
	EventMouseDown EventKind = iota
	EventMouseMove
	EventMouseUp
	EventTouchStart
	EventTouchMove
	EventTouchEnd
	EventScroll
	EventKeyDown
)

// String returns the DOM-style name of the event kind.
func (k EventKind) String() string {
	switch k {
	case EventMouseDown:
		return "mousedown"
	case EventMouseMove:
		return "mousemove"
	case EventMouseUp:
		return "mouseup"
	case EventTouchStart:
		return "touchstart"
	case EventTouchMove:
		return "touchmove"
	case EventTouchEnd:
		return "touchend"
	case EventScroll:
		return "scroll"
	case EventKeyDown:
		return "keydown"
	default:
		return "unknown"
	}
}

// Event is the base interface for all platform input events.
// Use a type switch to handle specific event types.
type Event interface {
	// Kind selects the listeners the event is dispatched to.
	Kind() EventKind

	// Target is the node the event was delivered to, or nil.
	Target() Node

	// PreventDefault asks the host to skip its own handling of the event.
	PreventDefault()

	// DefaultPrevented reports whether PreventDefault was called.
	DefaultPrevented() bool
}

// eventBase carries the fields every event shares.
type eventBase struct {
	target    Node
	prevented bool
}

func (e *eventBase) Target() Node           { return e.target }
func (e *eventBase) PreventDefault()        { e.prevented = true }
func (e *eventBase) DefaultPrevented() bool { return e.prevented }

// MouseButton represents which mouse button was involved in an event.
type MouseButton int

const (
	// MouseLeft is the left (primary) mouse button.
	MouseLeft MouseButton = iota
	// MouseMiddle is the middle mouse button (scroll wheel click).
	MouseMiddle
	// MouseRight is the right (secondary) mouse button.
	MouseRight
	// MouseNone indicates no button (used for motion events).
	MouseNone
)

// MouseEvent is a pointer press, motion or release.
type MouseEvent struct {
	eventBase
	kind EventKind

	// Button is which mouse button was involved.
	Button MouseButton
	// PageX and PageY are the pointer position in document coordinates.
	PageX, PageY int
	// Mod contains modifier flags held during the event.
	Mod Modifier
}

// NewMouseEvent creates a mouse event of the given kind targeted at target.
func NewMouseEvent(kind EventKind, target Node, button MouseButton, x, y int, mod Modifier) *MouseEvent {
	return &MouseEvent{
		eventBase: eventBase{target: target},
		kind:      kind,
		Button:    button,
		PageX:     x,
		PageY:     y,
		Mod:       mod,
	}
}

// Kind implements Event.
func (e *MouseEvent) Kind() EventKind { return e.kind }

// Touch is one contact point of a touch event.
type Touch struct {
	Identifier   int
	PageX, PageY int
}

// TouchEvent is a touch start, move or end.
type TouchEvent struct {
	eventBase
	kind EventKind

	// Touches is the number of contacts currently on the surface.
	Touches int
	// Changed lists the contacts that changed in this event.
	Changed []Touch
}

// NewTouchEvent creates a touch event of the given kind targeted at target.
func NewTouchEvent(kind EventKind, target Node, touches int, changed ...Touch) *TouchEvent {
	return &TouchEvent{
		eventBase: eventBase{target: target},
		kind:      kind,
		Touches:   touches,
		Changed:   changed,
	}
}

// Kind implements Event.
func (e *TouchEvent) Kind() EventKind { return e.kind }

// ScrollEvent reports that the target's scroll offset changed.
type ScrollEvent struct {
	eventBase
}

// NewScrollEvent creates a scroll notification for target.
func NewScrollEvent(target Node) *ScrollEvent {
	return &ScrollEvent{eventBase: eventBase{target: target}}
}

// Kind implements Event.
func (e *ScrollEvent) Kind() EventKind { return EventScroll }

// KeyEvent represents a keyboard input event.
type KeyEvent struct {
	eventBase

	// Key is the key pressed. For printable characters, this is KeyRune.
	Key Key
	// Rune is the character for KeyRune events. Zero for special keys.
	Rune rune
	// Mod contains modifier flags (Ctrl, Alt, Shift).
	Mod Modifier
}

// NewKeyEvent creates a key-down event targeted at target.
func NewKeyEvent(target Node, key Key, r rune, mod Modifier) *KeyEvent {
	return &KeyEvent{
		eventBase: eventBase{target: target},
		Key:       key,
		Rune:      r,
		Mod:       mod,
	}
}

// Kind implements Event.
func (e *KeyEvent) Kind() EventKind { return EventKeyDown }
