package webedit

const (
	// EdgeSize is the width of the band along each border that grabs that edge.
	EdgeSize = 12
	// MinExtent is the smallest width or height a resize can produce.
	MinExtent = 24
)

// StrategyKind tags the variants of the strategy table.
type StrategyKind int

const (
	StrategyNoop StrategyKind = iota
	StrategyMove
	StrategyRight
	StrategyBottom
	StrategyLeft
	StrategyTop
	StrategyBottomRight
	StrategyBottomLeft
	StrategyTopRight
	StrategyTopLeft
)

// String returns the strategy name.
func (k StrategyKind) String() string {
	switch k {
	case StrategyNoop:
		return "noop"
	case StrategyMove:
		return "move"
	case StrategyRight:
		return "right"
	case StrategyBottom:
		return "bottom"
	case StrategyLeft:
		return "left"
	case StrategyTop:
		return "top"
	case StrategyBottomRight:
		return "bottom-right"
	case StrategyBottomLeft:
		return "bottom-left"
	case StrategyTopRight:
		return "top-right"
	case StrategyTopLeft:
		return "top-left"
	default:
		return "unknown"
	}
}

// Strategy decides what a drag does to the selection. Strategies are
// stateless values; the same table serves every gesture.
type Strategy struct {
	Kind StrategyKind

	match  func(t *DragTarget, x, y int) bool
	resize func(b Box, dx, dy int) Box
}

// strategies is the table in priority order: corners, then edges, then
// move, with noop accepting anything.
var strategies = []Strategy{
	{Kind: StrategyBottomRight, match: both(onBottom, onRight), resize: func(b Box, dx, dy int) Box {
		return resizeBottom(resizeRight(b, dx), dy)
	}},
	{Kind: StrategyBottomLeft, match: both(onBottom, onLeft), resize: func(b Box, dx, dy int) Box {
		return resizeBottom(resizeLeft(b, dx), dy)
	}},
	{Kind: StrategyTopRight, match: both(onTop, onRight), resize: func(b Box, dx, dy int) Box {
		return resizeTop(resizeRight(b, dx), dy)
	}},
	{Kind: StrategyTopLeft, match: both(onTop, onLeft), resize: resizeTopLeft},
	{Kind: StrategyRight, match: onRight, resize: func(b Box, dx, _ int) Box { return resizeRight(b, dx) }},
	{Kind: StrategyBottom, match: onBottom, resize: func(b Box, _, dy int) Box { return resizeBottom(b, dy) }},
	{Kind: StrategyLeft, match: onLeft, resize: func(b Box, dx, _ int) Box { return resizeLeft(b, dx) }},
	{Kind: StrategyTop, match: onTop, resize: func(b Box, _, dy int) Box { return resizeTop(b, dy) }},
	{Kind: StrategyMove, match: func(t *DragTarget, _, _ int) bool { return t != nil }, resize: Box.Translate},
	{Kind: StrategyNoop, match: func(*DragTarget, int, int) bool { return true }},
}

// SelectStrategy returns the highest-priority strategy matching a gesture
// that starts at (x, y) relative to the pointed target. A nil target only
// matches the noop strategy.
func SelectStrategy(pointed *DragTarget, x, y int) Strategy {
	for _, s := range strategies {
		if s.match(pointed, x, y) {
			return s
		}
	}
	return strategies[len(strategies)-1]
}

// Resizes reports whether the strategy changes size rather than position.
func (s Strategy) Resizes() bool {
	return s.Kind != StrategyNoop && s.Kind != StrategyMove
}

// Delta returns the geometry change a drag of (dx, dy) applies to t.
func (s Strategy) Delta(t DragTarget, dx, dy int) Delta {
	if s.resize == nil {
		return Delta{}
	}
	return s.resize(t.Box, dx, dy).Sub(t.Box)
}

// Start applies the strategy's visual feedback.
func (s Strategy) Start(pointed *DragTarget, targets []DragTarget) {
	if s.Resizes() && pointed != nil {
		pointed.Node.AddClass(ClassResizing)
	}
}

// Move applies a drag of (dx, dy), measured from the gesture start, to the
// snapshot geometry. Move translates every target; resizes touch only the
// pointed target.
func (s Strategy) Move(pointed *DragTarget, targets []DragTarget, dx, dy int) {
	switch {
	case s.Kind == StrategyNoop:
	case s.Kind == StrategyMove:
		for _, t := range targets {
			t.Node.SetGeometry(s.resize(t.Box, dx, dy))
		}
	case pointed != nil:
		pointed.Node.SetGeometry(s.resize(pointed.Box, dx, dy))
	}
}

// End clears the visual feedback and returns the nodes whose geometry
// should be reported.
func (s Strategy) End(pointed *DragTarget, targets []DragTarget) []Node {
	switch {
	case s.Kind == StrategyNoop:
		return nil
	case s.Kind == StrategyMove:
		nodes := make([]Node, 0, len(targets))
		for _, t := range targets {
			nodes = append(nodes, t.Node)
		}
		return nodes
	case pointed != nil:
		pointed.Node.RemoveClass(ClassResizing)
		return []Node{pointed.Node}
	}
	return nil
}

func onLeft(t *DragTarget, x, _ int) bool {
	return t != nil && 0 <= x && x <= EdgeSize
}

func onRight(t *DragTarget, x, _ int) bool {
	return t != nil && t.Outer.Width-EdgeSize <= x && x <= t.Outer.Width
}

func onTop(t *DragTarget, _, y int) bool {
	return t != nil && 0 <= y && y <= EdgeSize
}

func onBottom(t *DragTarget, _, y int) bool {
	return t != nil && t.Outer.Height-EdgeSize <= y && y <= t.Outer.Height
}

func both(a, b func(*DragTarget, int, int) bool) func(*DragTarget, int, int) bool {
	return func(t *DragTarget, x, y int) bool {
		return a(t, x, y) && b(t, x, y)
	}
}

// clampNear limits a near-edge delta so the extent never drops below
// MinExtent. The far edge stays where it was.
func clampNear(extent, d int) int {
	if extent-d < MinExtent {
		return extent - MinExtent
	}
	return d
}

func resizeRight(b Box, dx int) Box {
	b.Width = max(b.Width+dx, MinExtent)
	return b
}

func resizeBottom(b Box, dy int) Box {
	b.Height = max(b.Height+dy, MinExtent)
	return b
}

func resizeLeft(b Box, dx int) Box {
	d := clampNear(b.Width, dx)
	b.Left += d
	b.Width -= d
	return b
}

func resizeTop(b Box, dy int) Box {
	d := clampNear(b.Height, dy)
	b.Top += d
	b.Height -= d
	return b
}

// resizeTopLeft clamps both axes from the same deltas in one step.
func resizeTopLeft(b Box, dx, dy int) Box {
	ddx := clampNear(b.Width, dx)
	ddy := clampNear(b.Height, dy)
	return Box{
		Left:   b.Left + ddx,
		Top:    b.Top + ddy,
		Width:  b.Width - ddx,
		Height: b.Height - ddy,
	}
}
