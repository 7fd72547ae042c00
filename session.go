package webedit

import (
	"io"
	"log/slog"
)

// DragSession connects the gesture stream to the selection and the strategy
// table. Every geometry change it makes goes through the scheduler.
type DragSession struct {
	sel      *Selection
	sched    *Scheduler
	reporter *Reporter
	logger   *slog.Logger
	multiMod Modifier

	// Keys of the latest gesture. Each gesture gets its own so a flush
	// landing after the next start still applies every gesture's updates.
	startKey MutationKey
	moveKey  MutationKey
	endKey   MutationKey

	strategy Strategy
	targets  []DragTarget
	pointed  *DragTarget
}

// NewDragSession creates a session. A gesture starting with multiMod held
// extends the selection instead of replacing it.
func NewDragSession(sel *Selection, sched *Scheduler, reporter *Reporter, multiMod Modifier) *DragSession {
	return &DragSession{
		sel:      sel,
		sched:    sched,
		reporter: reporter,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		multiMod: multiMod,
		strategy: SelectStrategy(nil, 0, 0),
	}
}

// Handlers returns the gesture handlers that drive the session.
func (s *DragSession) Handlers() GestureHandlers {
	return GestureHandlers{
		Start: s.Start,
		Move:  s.Move,
		End:   s.End,
	}
}

// Strategy returns the strategy chosen by the latest gesture start.
func (s *DragSession) Strategy() Strategy {
	return s.strategy
}

// Targets returns the snapshots taken at the latest gesture start.
func (s *DragSession) Targets() []DragTarget {
	return s.targets
}

// Pointed returns the snapshot of the latest gesture's origin, or nil when
// the origin is not selected.
func (s *DragSession) Pointed() *DragTarget {
	return s.pointed
}

// Start updates the selection for a gesture beginning on g.Origin, snapshots
// the selection and chooses a strategy.
func (s *DragSession) Start(g *Gesture, ev Event) {
	if !s.sel.Includes(g.Origin) {
		if !s.multiSelect(ev) {
			s.sel.Clear()
		}
		s.sel.Add(g.Origin)
	}

	targets, pointed := snapshotSelection(s.sel, g.Origin)
	strategy := SelectStrategy(pointed, g.OffsetX, g.OffsetY)
	s.strategy, s.targets, s.pointed = strategy, targets, pointed
	s.startKey, s.moveKey, s.endKey = NewMutationKey(), NewMutationKey(), NewMutationKey()

	s.logger.Debug("drag start",
		"strategy", strategy.Kind,
		"x", g.OffsetX,
		"y", g.OffsetY,
		"selected", len(targets),
	)

	if pointed != nil && ev != nil {
		ev.PreventDefault()
	}
	s.sched.Update(s.startKey, func() {
		strategy.Start(pointed, targets)
	})
}

// Move applies the gesture's displacement through the active strategy.
func (s *DragSession) Move(_ *Gesture, dx, dy int) {
	strategy, targets, pointed := s.strategy, s.targets, s.pointed
	s.sched.Update(s.moveKey, func() {
		strategy.Move(pointed, targets, dx, dy)
	})
}

// End finalizes the active strategy and reports the affected nodes.
func (s *DragSession) End(_ *Gesture) {
	strategy, targets, pointed := s.strategy, s.targets, s.pointed
	s.sched.Update(s.endKey, func() {
		nodes := strategy.End(pointed, targets)
		if err := s.reporter.Report(nodes...); err != nil {
			s.logger.Warn("geometry report failed", "error", err)
		}
	})
}

func (s *DragSession) multiSelect(ev Event) bool {
	me, ok := ev.(*MouseEvent)
	return ok && s.multiMod != ModNone && me.Mod.Has(s.multiMod)
}
