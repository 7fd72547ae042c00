package webedit

// Marker classes the engine applies to nodes of the host tree.
const (
	// ClassEditing marks the root while the editor is enabled.
	ClassEditing = "_webedit"
	// ClassTarget marks nodes the default editability predicate accepts.
	ClassTarget = "_webedit_target"
	// ClassSelected marks every member of the selection.
	ClassSelected = "_webedit_selected"
	// ClassResizing marks the pointed target while an edge or corner drag is active.
	ClassResizing = "_webedit_resizing"
)

// Node is a handle to an element of the host's visual tree.
//
// The engine never creates or destroys nodes. Equality is by identity, so
// implementations should be pointer types. Parent must return an untyped
// nil above the root.
type Node interface {
	// ID names the node in geometry reports.
	ID() string

	// Parent returns the enclosing node, or nil above the document root.
	Parent() Node

	// Geometry returns the node's left/top/width/height style values.
	Geometry() Box

	// SetGeometry writes the node's left/top/width/height style values.
	SetGeometry(Box)

	// OuterSize returns the border-inclusive rendered size.
	OuterSize() Size

	// ClientRect returns the rendered box in viewport coordinates.
	ClientRect() Rect

	// ScrollOffset returns how far the node's own content is scrolled.
	ScrollOffset() Point

	// ScrollExtent returns the scrollable content size minus the visible size.
	ScrollExtent() Size

	AddClass(name string)
	RemoveClass(name string)
	HasClass(name string) bool
}

// EditableFunc decides whether a node may be selected and dragged.
type EditableFunc func(Node) bool

// HasTargetClass is the default editability predicate.
func HasTargetClass(n Node) bool {
	return n != nil && n.HasClass(ClassTarget)
}

// isAncestor reports whether a is a strict ancestor of n below root.
func isAncestor(a, n, root Node) bool {
	if a == nil || n == nil || a == root {
		return false
	}
	for p := n.Parent(); p != nil && p != root; p = p.Parent() {
		if p == a {
			return true
		}
	}
	return false
}

// ancestorScroll sums the scroll offsets and scroll extents of every
// ancestor of n up to, but excluding, root.
func ancestorScroll(n, root Node) (Point, Size) {
	var offset Point
	var extent Size
	if n == nil {
		return offset, extent
	}
	for p := n.Parent(); p != nil && p != root; p = p.Parent() {
		offset = offset.Add(p.ScrollOffset())
		extent = extent.Add(p.ScrollExtent())
	}
	return offset, extent
}
