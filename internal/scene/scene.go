// Package scene is a tree of bordered boxes that webedit edits in the
// terminal. Boxes are positioned absolutely inside their parent's content
// area, and scrollable boxes clip and offset their children.
//
// Geometry is in px. Each terminal cell covers a fixed block of px, so a
// pointer in cell (cx, cy) sits at the center of that block.
package scene

import "github.com/grindlemire/webedit"

// RootID is the id of every scene's root element.
const RootID = "root"

// Default px per terminal cell. Terminal cells are about twice as tall as
// they are wide, so these keep px square on screen.
const (
	DefaultCellWidth  = 4
	DefaultCellHeight = 8
)

// Scene owns the element tree and tracks whether it needs repainting.
type Scene struct {
	root  *Element
	byID  map[string]*Element
	order []*Element
	cell  webedit.Size
	dirty bool
}

// New creates an empty scene whose root covers width x height px.
func New(width, height int) *Scene {
	s := &Scene{
		byID: make(map[string]*Element),
		cell: webedit.Size{Width: DefaultCellWidth, Height: DefaultCellHeight},
	}
	s.root = newElement(s, RootID, "")
	s.root.box = webedit.Box{Width: width, Height: height}
	s.byID[RootID] = s.root
	s.dirty = true
	return s
}

// Root returns the root element.
func (s *Scene) Root() *Element { return s.root }

// Element returns the element with the given id.
func (s *Scene) Element(id string) (*Element, bool) {
	e, ok := s.byID[id]
	return e, ok
}

// Elements returns every element except the root in document order.
func (s *Scene) Elements() []*Element { return s.order }

// Resize changes the viewport size in px.
func (s *Scene) Resize(width, height int) {
	s.root.box.Width = width
	s.root.box.Height = height
	s.markDirty()
}

// ResizeCells sizes the viewport to cover cols x rows terminal cells.
func (s *Scene) ResizeCells(cols, rows int) {
	s.Resize(cols*s.cell.Width, rows*s.cell.Height)
}

// CellSize returns the px covered by one terminal cell.
func (s *Scene) CellSize() webedit.Size { return s.cell }

// SetCellSize changes the px covered by one terminal cell. Non-positive
// dimensions are ignored.
func (s *Scene) SetCellSize(width, height int) {
	if width > 0 {
		s.cell.Width = width
	}
	if height > 0 {
		s.cell.Height = height
	}
	s.markDirty()
}

// PageFromCell returns the px position at the center of a terminal cell.
func (s *Scene) PageFromCell(cx, cy int) (x, y int) {
	return cx*s.cell.Width + s.cell.Width/2, cy*s.cell.Height + s.cell.Height/2
}

// cellRect returns the terminal cells touched by a px rect.
func (s *Scene) cellRect(r webedit.Rect) webedit.Rect {
	if r.Width <= 0 || r.Height <= 0 {
		return webedit.Rect{}
	}
	x0, y0 := floorDiv(r.X, s.cell.Width), floorDiv(r.Y, s.cell.Height)
	x1, y1 := floorDiv(r.Right()-1, s.cell.Width)+1, floorDiv(r.Bottom()-1, s.cell.Height)+1
	return webedit.Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

// Dirty reports whether anything visible changed since the last MarkClean.
func (s *Scene) Dirty() bool { return s.dirty }

// MarkClean records that the scene has been painted.
func (s *Scene) MarkClean() { s.dirty = false }

func (s *Scene) markDirty() { s.dirty = true }

// add attaches a new element under parent. The id must be unused.
func (s *Scene) add(parent *Element, id, label string) *Element {
	e := newElement(s, id, label)
	e.parent = parent
	parent.children = append(parent.children, e)
	s.byID[id] = e
	s.order = append(s.order, e)
	return e
}

// HitTest returns the element a pointer event at (x, y) is delivered to.
// While the root carries webedit.ClassEditing only editable targets receive
// events and everything else is transparent; otherwise the deepest visible
// element wins. The root is returned when nothing else is hit.
func (s *Scene) HitTest(x, y int) *Element {
	editing := s.root.HasClass(webedit.ClassEditing)
	accept := func(e *Element) bool {
		return !editing || e.HasClass(webedit.ClassTarget)
	}
	if hit := hitTest(s.root, s.root.ClientRect(), x, y, accept); hit != nil {
		return hit
	}
	return s.root
}

// ScrollTargetAt returns the deepest scrollable element under (x, y), or
// nil.
func (s *Scene) ScrollTargetAt(x, y int) *Element {
	return hitTest(s.root, s.root.ClientRect(), x, y, (*Element).Scrollable)
}

// hitTest searches e's children topmost first. clip is the area in which
// e's children are visible.
func hitTest(e *Element, clip webedit.Rect, x, y int, accept func(*Element) bool) *Element {
	for i := len(e.children) - 1; i >= 0; i-- {
		c := e.children[i]
		if !c.ClientRect().Intersect(clip).Contains(x, y) {
			continue
		}
		if hit := hitTest(c, c.contentRect().Intersect(clip), x, y, accept); hit != nil {
			return hit
		}
		if accept(c) {
			return c
		}
	}
	return nil
}
