package webedit

// Point represents an (X, Y) coordinate.
type Point struct {
	X, Y int
}

// Add returns the component-wise sum of p and other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Size is a width/height pair.
type Size struct {
	Width, Height int
}

// Add returns the component-wise sum of s and other.
func (s Size) Add(other Size) Size {
	return Size{Width: s.Width + other.Width, Height: s.Height + other.Height}
}

// Rect represents a rendered rectangle in viewport coordinates.
// X and Y are the top-left corner; Width and Height are dimensions.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// Contains returns true if the point (x, y) is inside the rectangle.
// Points on the left and top edges are inside; points on the right and bottom edges are outside.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Intersect returns the intersection of two rectangles.
// If the rectangles don't overlap, returns an empty Rect.
func (r Rect) Intersect(other Rect) Rect {
	x := max(r.X, other.X)
	y := max(r.Y, other.Y)
	right := min(r.Right(), other.Right())
	bottom := min(r.Bottom(), other.Bottom())
	if right <= x || bottom <= y {
		return Rect{}
	}
	return Rect{X: x, Y: y, Width: right - x, Height: bottom - y}
}

// Box is the logical position and size of a node: the left/top/width/height
// style values the engine reads and writes, in whole units.
type Box struct {
	Left, Top     int
	Width, Height int
}

// Translate returns the box moved by (dx, dy).
func (b Box) Translate(dx, dy int) Box {
	b.Left += dx
	b.Top += dy
	return b
}

// Apply returns the box with every field offset by the matching delta field.
func (b Box) Apply(d Delta) Box {
	return Box{
		Left:   b.Left + d.Left,
		Top:    b.Top + d.Top,
		Width:  b.Width + d.Width,
		Height: b.Height + d.Height,
	}
}

// Sub returns the delta that turns other into b.
func (b Box) Sub(other Box) Delta {
	return Delta{
		Left:   b.Left - other.Left,
		Top:    b.Top - other.Top,
		Width:  b.Width - other.Width,
		Height: b.Height - other.Height,
	}
}

// Right returns the absolute position of the far horizontal edge.
func (b Box) Right() int {
	return b.Left + b.Width
}

// Bottom returns the absolute position of the far vertical edge.
func (b Box) Bottom() int {
	return b.Top + b.Height
}

// Delta is a change in geometry produced by a strategy.
type Delta struct {
	Left, Top     int
	Width, Height int
}
