package webedit

// DragTarget is the geometry of one selected node captured at gesture start.
// Box is the basis every delta is applied to; Outer is the border-inclusive
// size used only for edge proximity tests.
type DragTarget struct {
	Node  Node
	Box   Box
	Outer Size
}

// Snapshot captures n's current geometry.
func Snapshot(n Node) DragTarget {
	return DragTarget{
		Node:  n,
		Box:   n.Geometry(),
		Outer: n.OuterSize(),
	}
}

// snapshotSelection captures every selected node and returns the snapshot
// of origin, if origin is among them.
func snapshotSelection(sel *Selection, origin Node) ([]DragTarget, *DragTarget) {
	targets := MapSelection(sel, Snapshot)
	for i := range targets {
		if targets[i].Node == origin {
			return targets, &targets[i]
		}
	}
	return targets, nil
}
