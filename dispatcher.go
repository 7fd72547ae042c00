package webedit

// EventSource delivers platform input to registered listeners.
type EventSource interface {
	// Listen registers fn for events of the given kind and returns a
	// function that removes the registration.
	Listen(kind EventKind, fn func(Event)) (remove func())
}

type listener struct {
	id uint64
	fn func(Event)
}

// Dispatcher is an EventSource that hosts feed by calling Dispatch.
// It is not safe for concurrent use; call it from the loop goroutine.
type Dispatcher struct {
	listeners map[EventKind][]listener
	nextID    uint64
}

var _ EventSource = (*Dispatcher)(nil)

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{listeners: make(map[EventKind][]listener)}
}

// Listen implements EventSource. Removing twice is a no-op.
func (d *Dispatcher) Listen(kind EventKind, fn func(Event)) func() {
	d.nextID++
	id := d.nextID
	d.listeners[kind] = append(d.listeners[kind], listener{id: id, fn: fn})
	return func() {
		ls := d.listeners[kind]
		for i, l := range ls {
			if l.id == id {
				next := make([]listener, 0, len(ls)-1)
				next = append(next, ls[:i]...)
				next = append(next, ls[i+1:]...)
				d.listeners[kind] = next
				return
			}
		}
	}
}

// Dispatch sends ev to every listener registered for its kind, in
// registration order. Listeners added or removed while dispatching take
// effect from the next call.
func (d *Dispatcher) Dispatch(ev Event) {
	if ev == nil {
		return
	}
	for _, l := range d.listeners[ev.Kind()] {
		l.fn(ev)
	}
}

// Len returns the number of listeners registered for kind.
func (d *Dispatcher) Len(kind EventKind) int {
	return len(d.listeners[kind])
}
