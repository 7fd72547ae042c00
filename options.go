package webedit

import (
	"io"
	"log/slog"
	"time"
)

// Option configures an Editor.
type Option func(*Editor)

// WithEditable sets the predicate deciding which nodes can be selected.
// The default accepts nodes carrying ClassTarget.
func WithEditable(fn EditableFunc) Option {
	return func(e *Editor) {
		if fn != nil {
			e.editable = fn
		}
	}
}

// WithReportWriter sets the sink geometry reports are written to.
// The default discards them.
func WithReportWriter(w io.Writer) Option {
	return func(e *Editor) {
		e.reportWriter = w
	}
}

// WithLogger sets the logger for diagnostic records.
func WithLogger(l *slog.Logger) Option {
	return func(e *Editor) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithMultiSelectModifier sets the modifier that extends the selection
// instead of replacing it. ModNone disables multi-select.
func WithMultiSelectModifier(mod Modifier) Option {
	return func(e *Editor) {
		e.multiMod = mod
	}
}

// WithGestureIdleTimeout sets how long a touch gesture may sit without
// movement before it is ended. Zero disables the timeout.
func WithGestureIdleTimeout(d time.Duration) Option {
	return func(e *Editor) {
		if d >= 0 {
			e.idleTimeout = d
		}
	}
}
