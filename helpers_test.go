package webedit

import (
	"bytes"
	"time"
)

// testNode is an in-memory Node. Client rects are derived from the parent
// chain the same way a real layout would place absolutely positioned boxes.
type testNode struct {
	id       string
	parent   *testNode
	box      Box
	border   int
	scroll   Point
	extent   Size
	classes  map[string]int
	writes   int
	classOps int
}

func newTestNode(id string, parent *testNode, box Box) *testNode {
	return &testNode{id: id, parent: parent, box: box, classes: map[string]int{}}
}

func newTarget(id string, parent *testNode, box Box) *testNode {
	n := newTestNode(id, parent, box)
	n.classes[ClassTarget] = 1
	return n
}

func (n *testNode) ID() string { return n.id }

func (n *testNode) Parent() Node {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *testNode) Geometry() Box { return n.box }

func (n *testNode) SetGeometry(b Box) {
	n.box = b
	n.writes++
}

func (n *testNode) OuterSize() Size {
	return Size{Width: n.box.Width + 2*n.border, Height: n.box.Height + 2*n.border}
}

func (n *testNode) ClientRect() Rect {
	if n.parent == nil {
		return Rect{Width: n.box.Width, Height: n.box.Height}
	}
	p := n.parent.ClientRect()
	x := p.X + n.parent.border - n.parent.scroll.X + n.box.Left
	y := p.Y + n.parent.border - n.parent.scroll.Y + n.box.Top
	outer := n.OuterSize()
	return Rect{X: x, Y: y, Width: outer.Width, Height: outer.Height}
}

func (n *testNode) ScrollOffset() Point { return n.scroll }
func (n *testNode) ScrollExtent() Size  { return n.extent }

func (n *testNode) AddClass(name string) {
	n.classes[name]++
	n.classOps++
}

func (n *testNode) RemoveClass(name string) {
	delete(n.classes, name)
	n.classOps++
}

func (n *testNode) HasClass(name string) bool { return n.classes[name] > 0 }

// testClock is a manually advanced clock for EventLoop timers.
type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func (c *testClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestLoop() (*EventLoop, *testClock) {
	clock := &testClock{now: time.Unix(1700000000, 0)}
	return NewEventLoop(WithClock(clock.Now)), clock
}

// frameCounter wraps a Loop and counts frame requests.
type frameCounter struct {
	Loop
	requests int
}

func (f *frameCounter) RequestFrame(fn func()) {
	f.requests++
	f.Loop.RequestFrame(fn)
}

// testEditor bundles an enabled editor over a root with the given children.
type testEditor struct {
	root   *testNode
	disp   *Dispatcher
	loop   *EventLoop
	clock  *testClock
	editor *Editor
	out    *bytes.Buffer
}

func newTestEditor(opts ...Option) *testEditor {
	root := newTestNode("root", nil, Box{Width: 200, Height: 100})
	disp := NewDispatcher()
	loop, clock := newTestLoop()
	out := &bytes.Buffer{}
	opts = append([]Option{WithReportWriter(out)}, opts...)
	e := New(root, disp, loop, opts...)
	e.Enable()
	return &testEditor{root: root, disp: disp, loop: loop, clock: clock, editor: e, out: out}
}

func (te *testEditor) down(target Node, x, y int, mod Modifier) *MouseEvent {
	ev := NewMouseEvent(EventMouseDown, target, MouseLeft, x, y, mod)
	te.disp.Dispatch(ev)
	return ev
}

func (te *testEditor) move(x, y int) {
	te.disp.Dispatch(NewMouseEvent(EventMouseMove, nil, MouseLeft, x, y, ModNone))
}

func (te *testEditor) up(x, y int) {
	te.disp.Dispatch(NewMouseEvent(EventMouseUp, nil, MouseLeft, x, y, ModNone))
}

func (te *testEditor) key(k Key) *KeyEvent {
	ev := NewKeyEvent(te.root, k, 0, ModNone)
	te.disp.Dispatch(ev)
	return ev
}
