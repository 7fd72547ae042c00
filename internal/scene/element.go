package scene

import (
	"slices"

	"github.com/grindlemire/webedit"
)

// Element is one box of the scene. It implements webedit.Node.
type Element struct {
	id       string
	label    string
	scene    *Scene
	parent   *Element
	children []*Element

	box        webedit.Box
	border     int
	scrollable bool
	scroll     webedit.Point
	classes    map[string]bool
}

var _ webedit.Node = (*Element)(nil)

func newElement(s *Scene, id, label string) *Element {
	return &Element{id: id, label: label, scene: s, classes: make(map[string]bool)}
}

// ID implements webedit.Node.
func (e *Element) ID() string { return e.id }

// Label returns the text drawn inside the element.
func (e *Element) Label() string { return e.label }

// Parent implements webedit.Node.
func (e *Element) Parent() webedit.Node {
	if e.parent == nil {
		return nil
	}
	return e.parent
}

// Children returns the element's children in document order.
func (e *Element) Children() []*Element { return e.children }

// Geometry implements webedit.Node.
func (e *Element) Geometry() webedit.Box { return e.box }

// SetGeometry implements webedit.Node. Negative sizes are stored as zero.
func (e *Element) SetGeometry(b webedit.Box) {
	b.Width = max(b.Width, 0)
	b.Height = max(b.Height, 0)
	if b == e.box {
		return
	}
	e.box = b
	e.scene.markDirty()
}

// Border returns the border thickness in px. Any nonzero border is drawn
// as a one-cell line.
func (e *Element) Border() int { return e.border }

// OuterSize implements webedit.Node.
func (e *Element) OuterSize() webedit.Size {
	return webedit.Size{Width: e.box.Width + 2*e.border, Height: e.box.Height + 2*e.border}
}

// ClientRect implements webedit.Node. Children are positioned relative to
// the parent's padding box, shifted by the parent's scroll offset.
func (e *Element) ClientRect() webedit.Rect {
	if e.parent == nil {
		return webedit.Rect{Width: e.box.Width, Height: e.box.Height}
	}
	p := e.parent.ClientRect()
	outer := e.OuterSize()
	return webedit.Rect{
		X:      p.X + e.parent.border - e.parent.scroll.X + e.box.Left,
		Y:      p.Y + e.parent.border - e.parent.scroll.Y + e.box.Top,
		Width:  outer.Width,
		Height: outer.Height,
	}
}

// contentRect is the client rect without the border.
func (e *Element) contentRect() webedit.Rect {
	r := e.ClientRect()
	return webedit.Rect{
		X:      r.X + e.border,
		Y:      r.Y + e.border,
		Width:  max(r.Width-2*e.border, 0),
		Height: max(r.Height-2*e.border, 0),
	}
}

// Scrollable reports whether the element scrolls its content.
func (e *Element) Scrollable() bool { return e.scrollable }

// ScrollOffset implements webedit.Node.
func (e *Element) ScrollOffset() webedit.Point { return e.scroll }

// ScrollExtent implements webedit.Node: how far the children overflow the
// visible content area. Non-scrolling elements report zero.
func (e *Element) ScrollExtent() webedit.Size {
	if !e.scrollable {
		return webedit.Size{}
	}
	var content webedit.Size
	for _, c := range e.children {
		outer := c.OuterSize()
		content.Width = max(content.Width, c.box.Left+outer.Width)
		content.Height = max(content.Height, c.box.Top+outer.Height)
	}
	return webedit.Size{
		Width:  max(content.Width-e.box.Width, 0),
		Height: max(content.Height-e.box.Height, 0),
	}
}

// ScrollBy moves the scroll offset by (dx, dy), clamped to the scroll
// extent. It reports whether the offset changed.
func (e *Element) ScrollBy(dx, dy int) bool {
	if !e.scrollable {
		return false
	}
	extent := e.ScrollExtent()
	next := webedit.Point{
		X: min(max(e.scroll.X+dx, 0), extent.Width),
		Y: min(max(e.scroll.Y+dy, 0), extent.Height),
	}
	if next == e.scroll {
		return false
	}
	e.scroll = next
	e.scene.markDirty()
	return true
}

// AddClass implements webedit.Node.
func (e *Element) AddClass(name string) {
	if e.classes[name] {
		return
	}
	e.classes[name] = true
	e.scene.markDirty()
}

// RemoveClass implements webedit.Node.
func (e *Element) RemoveClass(name string) {
	if !e.classes[name] {
		return
	}
	delete(e.classes, name)
	e.scene.markDirty()
}

// HasClass implements webedit.Node.
func (e *Element) HasClass(name string) bool { return e.classes[name] }

// Classes returns the element's classes in sorted order.
func (e *Element) Classes() []string {
	out := make([]string, 0, len(e.classes))
	for c := range e.classes {
		out = append(out, c)
	}
	slices.Sort(out)
	return out
}
