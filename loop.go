package webedit

import (
	"context"
	"time"
)

// Loop is the host's single-threaded event loop as seen by the engine.
type Loop interface {
	// RequestFrame runs fn once on the next display refresh.
	RequestFrame(fn func())

	// After runs fn on the loop once d has elapsed. A zero duration runs fn
	// on the next tick. The returned function cancels fn if it has not run.
	After(d time.Duration, fn func()) (cancel func())
}

// DefaultFrameDuration paces EventLoop at roughly 60 frames per second.
const DefaultFrameDuration = 16 * time.Millisecond

type loopTimer struct {
	due       time.Time
	fn        func()
	cancelled bool
}

// EventLoop is a frame-paced Loop. Work posted from any goroutine runs on
// the goroutine that calls Run; timers and frame callbacks run at the start
// of each tick, in that order, followed by the frame hook.
type EventLoop struct {
	frameDuration time.Duration
	queue         chan func()
	frames        []func()
	timers        []*loopTimer
	onFrame       func()
	now           func() time.Time
}

var _ Loop = (*EventLoop)(nil)

// LoopOption configures an EventLoop.
type LoopOption func(*EventLoop)

// WithFrameDuration sets the time between ticks.
func WithFrameDuration(d time.Duration) LoopOption {
	return func(l *EventLoop) {
		if d > 0 {
			l.frameDuration = d
		}
	}
}

// WithFrameHook sets a function that runs after every tick, typically a
// render of whatever the tick's callbacks changed.
func WithFrameHook(fn func()) LoopOption {
	return func(l *EventLoop) {
		l.onFrame = fn
	}
}

// WithClock replaces the wall clock used to decide which timers are due.
func WithClock(now func() time.Time) LoopOption {
	return func(l *EventLoop) {
		l.now = now
	}
}

// NewEventLoop creates a loop with the given options.
func NewEventLoop(opts ...LoopOption) *EventLoop {
	l := &EventLoop{
		frameDuration: DefaultFrameDuration,
		queue:         make(chan func(), 256),
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Post enqueues fn to run on the loop goroutine. Safe to call from any
// goroutine. Blocks if the queue is full.
func (l *EventLoop) Post(fn func()) {
	l.queue <- fn
}

// PostContext is Post that gives up when ctx is done.
func (l *EventLoop) PostContext(ctx context.Context, fn func()) error {
	select {
	case l.queue <- fn:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RequestFrame implements Loop.
func (l *EventLoop) RequestFrame(fn func()) {
	l.frames = append(l.frames, fn)
}

// After implements Loop.
func (l *EventLoop) After(d time.Duration, fn func()) func() {
	t := &loopTimer{due: l.now().Add(d), fn: fn}
	l.timers = append(l.timers, t)
	return func() { t.cancelled = true }
}

// Drain runs every posted function currently queued without blocking.
func (l *EventLoop) Drain() {
	for {
		select {
		case fn := <-l.queue:
			fn()
		default:
			return
		}
	}
}

// Tick runs due timers, then the frame callbacks requested before the tick
// began, then the frame hook. Callbacks requested during the tick wait for
// the next one.
func (l *EventLoop) Tick() {
	now := l.now()
	timers := l.timers
	l.timers = nil
	for _, t := range timers {
		switch {
		case t.cancelled:
		case now.Before(t.due):
			l.timers = append(l.timers, t)
		default:
			t.fn()
		}
	}

	frames := l.frames
	l.frames = nil
	for _, fn := range frames {
		fn()
	}

	if l.onFrame != nil {
		l.onFrame()
	}
}

// Run processes posted work as it arrives and ticks once per frame until
// ctx is done.
func (l *EventLoop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.frameDuration)
	defer ticker.Stop()

	l.Tick()
	for {
		select {
		case <-ctx.Done():
			return nil
		case fn := <-l.queue:
			fn()
		case <-ticker.C:
			l.Tick()
		}
	}
}
