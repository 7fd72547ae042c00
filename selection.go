package webedit

import "slices"

// Selection is the ordered set of selected nodes.
//
// Membership changes are immediate; the ClassSelected markers follow on the
// next scheduler flush, where only nodes that actually entered or left the
// selection since the previous flush are touched.
type Selection struct {
	editable EditableFunc
	sched    *Scheduler
	key      MutationKey

	elements []Node
	previous []Node
}

// NewSelection creates an empty selection. A nil predicate accepts nodes
// carrying ClassTarget.
func NewSelection(sched *Scheduler, editable EditableFunc) *Selection {
	if editable == nil {
		editable = HasTargetClass
	}
	return &Selection{
		editable: editable,
		sched:    sched,
		key:      NewMutationKey(),
	}
}

// Add appends n unless it is already selected or not editable.
func (s *Selection) Add(n Node) {
	if n == nil || s.Includes(n) || !s.editable(n) {
		return
	}
	s.elements = append(s.elements, n)
	s.sched.Update(s.key, s.syncClasses)
}

// Clear empties the selection.
func (s *Selection) Clear() {
	if len(s.elements) == 0 {
		return
	}
	s.elements = nil
	s.sched.Update(s.key, s.syncClasses)
}

// Includes reports whether n is selected.
func (s *Selection) Includes(n Node) bool {
	return slices.Contains(s.elements, n)
}

// Len returns the number of selected nodes.
func (s *Selection) Len() int {
	return len(s.elements)
}

// ForEach calls fn for each selected node in selection order.
func (s *Selection) ForEach(fn func(Node)) {
	for _, n := range s.elements {
		fn(n)
	}
}

// Elements returns a copy of the selected nodes in selection order.
func (s *Selection) Elements() []Node {
	return slices.Clone(s.elements)
}

// MapSelection returns fn applied to each selected node in selection order.
func MapSelection[T any](s *Selection, fn func(Node) T) []T {
	out := make([]T, 0, len(s.elements))
	for _, n := range s.elements {
		out = append(out, fn(n))
	}
	return out
}

// Added returns the nodes selected since the last class sync.
func (s *Selection) Added() []Node {
	return difference(s.elements, s.previous)
}

// Removed returns the nodes deselected since the last class sync.
func (s *Selection) Removed() []Node {
	return difference(s.previous, s.elements)
}

// Reset removes the selection markers immediately and forgets both the
// current and the committed membership.
func (s *Selection) Reset() {
	for _, n := range s.previous {
		n.RemoveClass(ClassSelected)
	}
	for _, n := range s.elements {
		n.RemoveClass(ClassSelected)
	}
	s.elements = nil
	s.previous = nil
}

func (s *Selection) syncClasses() {
	for _, n := range s.Removed() {
		n.RemoveClass(ClassSelected)
	}
	for _, n := range s.Added() {
		n.AddClass(ClassSelected)
	}
	s.previous = slices.Clone(s.elements)
}

// difference returns the members of a that are not in b, in a's order.
func difference(a, b []Node) []Node {
	var out []Node
	for _, n := range a {
		if !slices.Contains(b, n) {
			out = append(out, n)
		}
	}
	return out
}
