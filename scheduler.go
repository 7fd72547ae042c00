package webedit

import "sync/atomic"

// MutationKey identifies a mutation in the Scheduler. Updates queued under
// the same key within one frame collapse into the last one.
type MutationKey uint64

// globalMutationKey is a global counter for generating unique mutation keys.
var globalMutationKey atomic.Uint64

// NewMutationKey returns a key no other call has returned.
func NewMutationKey() MutationKey {
	return MutationKey(globalMutationKey.Add(1))
}

// Scheduler coalesces mutations issued within one display frame into a
// single flush. Each key runs at most once per flush with the function
// supplied by its most recent Update.
type Scheduler struct {
	loop      Loop
	pending   map[MutationKey]func()
	order     []MutationKey
	scheduled bool
}

// NewScheduler creates a scheduler that flushes on loop's frames.
func NewScheduler(loop Loop) *Scheduler {
	if loop == nil {
		panic("webedit: nil loop in NewScheduler")
	}
	return &Scheduler{
		loop:    loop,
		pending: make(map[MutationKey]func()),
	}
}

// Update queues fn under key for the next frame. A function already queued
// under key is replaced and the key moves to the back of the run order.
func (s *Scheduler) Update(key MutationKey, fn func()) {
	if _, exists := s.pending[key]; exists {
		for i, k := range s.order {
			if k == key {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	}
	s.pending[key] = fn
	s.order = append(s.order, key)

	if s.scheduled {
		return
	}
	s.scheduled = true
	s.loop.RequestFrame(s.flush)
}

// Pending returns the number of queued mutations.
func (s *Scheduler) Pending() int {
	return len(s.order)
}

// Cancel drops every queued mutation. A frame already requested still
// fires but finds nothing to run.
func (s *Scheduler) Cancel() {
	s.pending = make(map[MutationKey]func())
	s.order = nil
}

func (s *Scheduler) flush() {
	pending, order := s.pending, s.order
	s.pending = make(map[MutationKey]func())
	s.order = nil
	s.scheduled = false

	for _, key := range order {
		pending[key]()
	}
}
