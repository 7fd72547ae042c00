package webedit

import (
	"slices"
	"testing"
)

func TestScheduler_LastUpdateWins(t *testing.T) {
	type tc struct {
		args     []int
		expected []int
	}

	tests := map[string]tc{
		"single update":   {args: []int{1}, expected: []int{1}},
		"three updates":   {args: []int{1, 2, 3}, expected: []int{3}},
		"repeated values": {args: []int{5, 5, 5, 5}, expected: []int{5}},
		"no updates":      {args: nil, expected: nil},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			loop, _ := newTestLoop()
			s := NewScheduler(loop)
			key := NewMutationKey()

			var calls []int
			for _, a := range tt.args {
				s.Update(key, func() { calls = append(calls, a) })
			}
			if len(calls) != 0 {
				t.Fatalf("mutation ran before the frame: %v", calls)
			}

			loop.Tick()
			if !slices.Equal(calls, tt.expected) {
				t.Errorf("calls = %v, want %v", calls, tt.expected)
			}

			loop.Tick()
			if !slices.Equal(calls, tt.expected) {
				t.Errorf("calls after second frame = %v, want %v", calls, tt.expected)
			}
		})
	}
}

func TestScheduler_OneFrameRequestPerTick(t *testing.T) {
	loop, _ := newTestLoop()
	counter := &frameCounter{Loop: loop}
	s := NewScheduler(counter)

	a, b := NewMutationKey(), NewMutationKey()
	for i := 0; i < 10; i++ {
		s.Update(a, func() {})
		s.Update(b, func() {})
	}
	if counter.requests != 1 {
		t.Errorf("frame requests = %d, want 1", counter.requests)
	}
	if s.Pending() != 2 {
		t.Errorf("Pending() = %d, want 2", s.Pending())
	}

	loop.Tick()
	if s.Pending() != 0 {
		t.Errorf("Pending() after flush = %d, want 0", s.Pending())
	}

	s.Update(a, func() {})
	if counter.requests != 2 {
		t.Errorf("frame requests after flush = %d, want 2", counter.requests)
	}
}

func TestScheduler_Order(t *testing.T) {
	loop, _ := newTestLoop()
	s := NewScheduler(loop)
	a, b, c := NewMutationKey(), NewMutationKey(), NewMutationKey()

	var order []string
	record := func(name string) func() {
		return func() { order = append(order, name) }
	}

	s.Update(a, record("a"))
	s.Update(b, record("b"))
	s.Update(c, record("c"))
	s.Update(a, record("a2"))
	loop.Tick()

	want := []string{"b", "c", "a2"}
	if !slices.Equal(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
}

func TestScheduler_UpdateDuringFlushRunsNextFrame(t *testing.T) {
	loop, _ := newTestLoop()
	s := NewScheduler(loop)
	key := NewMutationKey()

	runs := 0
	var fn func()
	fn = func() {
		runs++
		if runs < 3 {
			s.Update(key, fn)
		}
	}
	s.Update(key, fn)

	for frame := 1; frame <= 4; frame++ {
		loop.Tick()
		want := min(frame, 3)
		if runs != want {
			t.Fatalf("after frame %d runs = %d, want %d", frame, runs, want)
		}
	}
}

func TestScheduler_Cancel(t *testing.T) {
	loop, _ := newTestLoop()
	s := NewScheduler(loop)

	ran := false
	s.Update(NewMutationKey(), func() { ran = true })
	s.Cancel()
	loop.Tick()

	if ran {
		t.Error("cancelled mutation ran")
	}

	s.Update(NewMutationKey(), func() { ran = true })
	loop.Tick()
	if !ran {
		t.Error("mutation queued after Cancel did not run")
	}
}
