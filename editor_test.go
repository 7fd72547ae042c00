package webedit

import (
	"strings"
	"testing"
)

func TestEditor_DragLeftEdgeClamps(t *testing.T) {
	te := newTestEditor()
	box := newTarget("box", te.root, Box{Left: 20, Top: 10, Width: 50, Height: 40})

	// Press 3 units inside the left border, vertically centered.
	down := te.down(box, 23, 30, ModNone)
	if !down.DefaultPrevented() {
		t.Error("press on an editable node did not prevent default")
	}
	if got := te.editor.Session().Strategy().Kind; got != StrategyLeft {
		t.Fatalf("strategy = %v, want left", got)
	}

	te.move(40, 30)
	te.move(63, 30)
	te.loop.Tick()

	want := Box{Left: 46, Top: 10, Width: 24, Height: 40}
	if box.box != want {
		t.Errorf("box = %+v, want %+v", box.box, want)
	}
	if box.box.Right() != 70 {
		t.Errorf("right edge = %d, want 70", box.box.Right())
	}
	if !box.HasClass(ClassResizing) || !box.HasClass(ClassSelected) {
		t.Errorf("markers during resize: classes = %v", box.classes)
	}

	te.up(63, 30)
	te.loop.Tick()
	if box.HasClass(ClassResizing) {
		t.Error("resizing marker left after end")
	}
	wantReport := "#box {\n  left: 46px;\n  top: 10px;\n  width: 24px;\n  height: 40px;\n}\n\n"
	if te.out.String() != wantReport {
		t.Errorf("report = %q, want %q", te.out.String(), wantReport)
	}
}

func TestEditor_MoveCoalescesWithinFrame(t *testing.T) {
	te := newTestEditor()
	box := newTarget("box", te.root, Box{Left: 20, Top: 10, Width: 50, Height: 40})

	te.down(box, 45, 30, ModNone)
	for x := 46; x < 60; x++ {
		te.move(x, 31)
	}
	te.loop.Tick()

	if box.writes != 1 {
		t.Errorf("geometry writes = %d, want 1", box.writes)
	}
	want := Box{Left: 34, Top: 11, Width: 50, Height: 40}
	if box.box != want {
		t.Errorf("box = %+v, want %+v", box.box, want)
	}
}

func TestEditor_BackToBackGesturesInOneFrame(t *testing.T) {
	te := newTestEditor()
	a := newTarget("a", te.root, Box{Left: 20, Top: 10, Width: 50, Height: 40})
	b := newTarget("b", te.root, Box{Left: 100, Top: 10, Width: 30, Height: 30})

	te.down(a, 45, 30, ModNone)
	te.move(55, 30)
	te.up(55, 30)
	te.down(b, 115, 25, ModNone)
	te.move(120, 27)
	te.loop.Tick()

	if a.box != (Box{Left: 30, Top: 10, Width: 50, Height: 40}) {
		t.Errorf("a = %+v, first drag lost", a.box)
	}
	if b.box != (Box{Left: 105, Top: 12, Width: 30, Height: 30}) {
		t.Errorf("b = %+v", b.box)
	}
	want := FormatGeometry("a", Box{Left: 30, Top: 10, Width: 50, Height: 40}) + "\n"
	if te.out.String() != want {
		t.Errorf("report = %q, want %q", te.out.String(), want)
	}
}

func TestEditor_MoveTranslatesWholeSelection(t *testing.T) {
	te := newTestEditor()
	a := newTarget("a", te.root, Box{Left: 20, Top: 10, Width: 50, Height: 40})
	b := newTarget("b", te.root, Box{Left: 100, Top: 10, Width: 30, Height: 30})

	te.down(a, 45, 30, ModNone)
	te.up(45, 30)
	te.down(b, 115, 25, ModShift)
	te.up(115, 25)
	te.loop.Tick()

	if got := ids(te.editor.Selection().Elements()); len(got) != 2 {
		t.Fatalf("selection = %v, want [a b]", got)
	}
	te.out.Reset()

	te.down(a, 45, 30, ModNone)
	te.move(50, 33)
	te.up(50, 33)
	te.loop.Tick()

	if a.box != (Box{Left: 25, Top: 13, Width: 50, Height: 40}) {
		t.Errorf("a = %+v", a.box)
	}
	if b.box != (Box{Left: 105, Top: 13, Width: 30, Height: 30}) {
		t.Errorf("b = %+v", b.box)
	}
	out := te.out.String()
	if !strings.Contains(out, "#a {") || !strings.Contains(out, "#b {") {
		t.Errorf("report missing a node:\n%s", out)
	}
}

func TestEditor_CornerResizeLeavesCoSelectedAlone(t *testing.T) {
	te := newTestEditor()
	a := newTarget("a", te.root, Box{Left: 20, Top: 10, Width: 50, Height: 40})
	b := newTarget("b", te.root, Box{Left: 100, Top: 10, Width: 30, Height: 30})

	te.down(b, 115, 25, ModNone)
	te.up(115, 25)
	te.down(a, 68, 48, ModShift)
	if got := te.editor.Session().Strategy().Kind; got != StrategyBottomRight {
		t.Fatalf("strategy = %v, want bottom-right", got)
	}
	te.move(78, 58)
	te.up(78, 58)
	te.loop.Tick()

	if a.box != (Box{Left: 20, Top: 10, Width: 60, Height: 50}) {
		t.Errorf("a = %+v", a.box)
	}
	if b.box != (Box{Left: 100, Top: 10, Width: 30, Height: 30}) {
		t.Errorf("co-selected b changed: %+v", b.box)
	}
	if strings.Contains(te.out.String(), "#b {") {
		t.Error("corner resize reported a co-selected node")
	}
}

func TestEditor_PressReplacesSelectionWithoutModifier(t *testing.T) {
	type tc struct {
		mod      Modifier
		expected []string
	}

	tests := map[string]tc{
		"no modifier replaces":    {mod: ModNone, expected: []string{"b"}},
		"shift extends":           {mod: ModShift, expected: []string{"a", "b"}},
		"other modifier replaces": {mod: ModCtrl, expected: []string{"b"}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			te := newTestEditor()
			a := newTarget("a", te.root, Box{Left: 20, Top: 10, Width: 50, Height: 40})
			b := newTarget("b", te.root, Box{Left: 100, Top: 10, Width: 30, Height: 30})

			te.down(a, 45, 30, ModNone)
			te.up(45, 30)
			te.down(b, 115, 25, tt.mod)
			te.up(115, 25)
			te.loop.Tick()

			got := ids(te.editor.Selection().Elements())
			if strings.Join(got, ",") != strings.Join(tt.expected, ",") {
				t.Errorf("selection = %v, want %v", got, tt.expected)
			}
			if a.HasClass(ClassSelected) != (len(tt.expected) == 2) {
				t.Errorf("a selected marker = %v", a.HasClass(ClassSelected))
			}
		})
	}
}

func TestEditor_PressOnSelectedKeepsSelection(t *testing.T) {
	te := newTestEditor()
	a := newTarget("a", te.root, Box{Left: 20, Top: 10, Width: 50, Height: 40})
	b := newTarget("b", te.root, Box{Left: 100, Top: 10, Width: 30, Height: 30})

	te.down(a, 45, 30, ModNone)
	te.up(45, 30)
	te.down(b, 115, 25, ModShift)
	te.up(115, 25)
	te.down(a, 45, 30, ModNone)

	if got := te.editor.Selection().Len(); got != 2 {
		t.Errorf("selection size = %d, want 2", got)
	}
	if p := te.editor.Session().Pointed(); p == nil || p.Node != Node(a) {
		t.Errorf("pointed target = %v, want a", p)
	}
}

func TestEditor_NonEditableOriginIsNoop(t *testing.T) {
	te := newTestEditor()
	a := newTarget("a", te.root, Box{Left: 20, Top: 10, Width: 50, Height: 40})
	plain := newTestNode("plain", te.root, Box{Left: 100, Top: 10, Width: 30, Height: 30})

	te.down(a, 45, 30, ModNone)
	te.up(45, 30)
	te.loop.Tick()
	te.out.Reset()

	down := te.down(plain, 110, 20, ModNone)
	te.move(130, 40)
	te.up(130, 40)
	te.loop.Tick()

	if down.DefaultPrevented() {
		t.Error("press on a non-editable node prevented default")
	}
	if te.editor.Session().Strategy().Kind != StrategyNoop {
		t.Errorf("strategy = %v, want noop", te.editor.Session().Strategy().Kind)
	}
	if te.editor.Selection().Len() != 0 || a.HasClass(ClassSelected) {
		t.Error("selection not cleared by a press on a non-editable node")
	}
	if plain.writes != 0 || a.writes != 0 {
		t.Error("noop gesture wrote geometry")
	}
	if te.out.Len() != 0 {
		t.Errorf("noop gesture reported: %q", te.out.String())
	}
}

func TestEditor_SecondStartHasNoEffect(t *testing.T) {
	te := newTestEditor()
	a := newTarget("a", te.root, Box{Left: 20, Top: 10, Width: 50, Height: 40})
	b := newTarget("b", te.root, Box{Left: 100, Top: 10, Width: 30, Height: 30})

	te.down(a, 45, 30, ModNone)
	targets := te.editor.Session().Targets()
	strategy := te.editor.Session().Strategy()

	second := te.down(b, 101, 11, ModShift)
	te.loop.Tick()

	if second.DefaultPrevented() {
		t.Error("ignored start prevented default")
	}
	if got := ids(te.editor.Selection().Elements()); len(got) != 1 || got[0] != "a" {
		t.Errorf("selection = %v, want [a]", got)
	}
	if te.editor.Session().Strategy().Kind != strategy.Kind {
		t.Errorf("strategy changed to %v", te.editor.Session().Strategy().Kind)
	}
	if len(te.editor.Session().Targets()) != len(targets) || te.editor.Session().Targets()[0].Node != Node(a) {
		t.Error("targets changed by ignored start")
	}

	te.move(50, 30)
	te.loop.Tick()
	if a.box.Left != 25 || b.box != (Box{Left: 100, Top: 10, Width: 30, Height: 30}) {
		t.Errorf("a = %+v, b = %+v", a.box, b.box)
	}
}

func TestEditor_TouchDrag(t *testing.T) {
	te := newTestEditor()
	box := newTarget("box", te.root, Box{Left: 20, Top: 10, Width: 50, Height: 40})

	start := NewTouchEvent(EventTouchStart, box, 1, Touch{Identifier: 0, PageX: 45, PageY: 30})
	te.disp.Dispatch(start)
	te.disp.Dispatch(NewTouchEvent(EventTouchMove, box, 1, Touch{Identifier: 0, PageX: 40, PageY: 36}))
	te.disp.Dispatch(NewTouchEvent(EventTouchEnd, box, 0, Touch{Identifier: 0, PageX: 40, PageY: 36}))
	te.loop.Tick()

	if !start.DefaultPrevented() {
		t.Error("touch start on an editable node did not prevent default")
	}
	if box.box != (Box{Left: 15, Top: 16, Width: 50, Height: 40}) {
		t.Errorf("box = %+v", box.box)
	}
	if !strings.Contains(te.out.String(), "left: 15px;") {
		t.Errorf("report = %q", te.out.String())
	}
}

func TestEditor_Disable(t *testing.T) {
	te := newTestEditor()
	box := newTarget("box", te.root, Box{Left: 20, Top: 10, Width: 50, Height: 40})

	if !te.root.HasClass(ClassEditing) || !te.editor.Enabled() {
		t.Fatal("Enable did not mark the root")
	}

	te.down(box, 23, 30, ModNone)
	te.loop.Tick()
	te.move(30, 30)
	te.editor.Disable()
	te.loop.Tick()

	if te.root.HasClass(ClassEditing) || te.editor.Enabled() {
		t.Error("Disable left the root marked")
	}
	if box.HasClass(ClassSelected) || box.HasClass(ClassResizing) {
		t.Errorf("Disable left markers: %v", box.classes)
	}
	if box.writes != 0 {
		t.Error("queued move ran after Disable")
	}

	te.down(box, 23, 30, ModNone)
	te.key(KeyRight)
	te.loop.Tick()
	if te.editor.Selection().Len() != 0 || box.writes != 0 {
		t.Error("disabled editor still reacts to input")
	}
}
