package webedit

import (
	"slices"
	"testing"
)

func TestDispatcher(t *testing.T) {
	d := NewDispatcher()

	var got []string
	removeA := d.Listen(EventMouseDown, func(Event) { got = append(got, "a") })
	d.Listen(EventMouseDown, func(Event) { got = append(got, "b") })
	d.Listen(EventKeyDown, func(Event) { got = append(got, "key") })

	d.Dispatch(NewMouseEvent(EventMouseDown, nil, MouseLeft, 0, 0, ModNone))
	if want := []string{"a", "b"}; !slices.Equal(got, want) {
		t.Errorf("dispatch = %v, want %v", got, want)
	}

	got = nil
	removeA()
	removeA()
	d.Dispatch(NewMouseEvent(EventMouseDown, nil, MouseLeft, 0, 0, ModNone))
	if want := []string{"b"}; !slices.Equal(got, want) {
		t.Errorf("after remove = %v, want %v", got, want)
	}
	if d.Len(EventMouseDown) != 1 {
		t.Errorf("Len() = %d, want 1", d.Len(EventMouseDown))
	}

	d.Dispatch(nil)
}

func TestDispatcher_ChangesDuringDispatchApplyNextTime(t *testing.T) {
	d := NewDispatcher()

	calls := 0
	var remove func()
	remove = d.Listen(EventMouseMove, func(Event) {
		calls++
		remove()
		d.Listen(EventMouseMove, func(Event) { calls += 10 })
	})
	d.Listen(EventMouseMove, func(Event) { calls += 100 })

	d.Dispatch(NewMouseEvent(EventMouseMove, nil, MouseNone, 0, 0, ModNone))
	if calls != 101 {
		t.Errorf("calls = %d, want 101", calls)
	}

	calls = 0
	d.Dispatch(NewMouseEvent(EventMouseMove, nil, MouseNone, 0, 0, ModNone))
	if calls != 110 {
		t.Errorf("calls = %d, want 110", calls)
	}
}
