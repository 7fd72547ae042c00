package scene

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/grindlemire/webedit"
)

type styleID int

const (
	styleBlank styleID = iota
	stylePlain
	styleTarget
	styleSelected
	styleResizing
	styleLabel
	styleStatus
)

var palette = [...]lipgloss.Style{
	styleBlank:    lipgloss.NewStyle(),
	stylePlain:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	styleTarget:   lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	styleSelected: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	styleResizing: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
	styleLabel:    lipgloss.NewStyle(),
	styleStatus:   lipgloss.NewStyle().Reverse(true),
}

type cell struct {
	r     rune
	style styleID
}

// Canvas is a grid of styled cells.
type Canvas struct {
	width, height int
	cells         []cell
}

// NewCanvas creates a blank canvas.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{width: max(width, 0), height: max(height, 0)}
	c.cells = make([]cell, c.width*c.height)
	for i := range c.cells {
		c.cells[i] = cell{r: ' '}
	}
	return c
}

func (c *Canvas) set(x, y int, r rune, style styleID, clip webedit.Rect) {
	if !clip.Contains(x, y) || x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.cells[y*c.width+x] = cell{r: r, style: style}
}

func (c *Canvas) text(x, y int, s string, style styleID, clip webedit.Rect) {
	for _, r := range s {
		c.set(x, y, r, style, clip)
		x++
	}
}

// Rune returns the rune at (x, y), or 0 outside the canvas.
func (c *Canvas) Rune(x, y int) rune {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return 0
	}
	return c.cells[y*c.width+x].r
}

// Line returns row y without styling.
func (c *Canvas) Line(y int) string {
	var sb strings.Builder
	for x := 0; x < c.width; x++ {
		sb.WriteRune(c.Rune(x, y))
	}
	return sb.String()
}

// Lines renders every row, styling runs of equal style with lipgloss.
func (c *Canvas) Lines() []string {
	lines := make([]string, c.height)
	for y := 0; y < c.height; y++ {
		var sb strings.Builder
		row := c.cells[y*c.width : (y+1)*c.width]
		for start := 0; start < len(row); {
			end := start + 1
			for end < len(row) && row[end].style == row[start].style {
				end++
			}
			var run strings.Builder
			for _, cl := range row[start:end] {
				run.WriteRune(cl.r)
			}
			if row[start].style == styleBlank {
				sb.WriteString(run.String())
			} else {
				sb.WriteString(palette[row[start].style].Render(run.String()))
			}
			start = end
		}
		lines[y] = sb.String()
	}
	return lines
}

// Paint draws the scene onto a canvas with one cell per terminal cell of the
// root, reserving the last row for status.
func (s *Scene) Paint(status string) *Canvas {
	r := s.cellRect(s.root.ClientRect())
	c := NewCanvas(r.Width, r.Height)
	clip := webedit.Rect{Width: r.Width, Height: max(r.Height-1, 0)}
	for _, child := range s.root.children {
		s.paint(c, child, clip)
	}
	if r.Height > 0 {
		line := status + strings.Repeat(" ", max(r.Width-len([]rune(status)), 0))
		c.text(0, r.Height-1, line, styleStatus, webedit.Rect{Y: r.Height - 1, Width: r.Width, Height: 1})
	}
	return c
}

// paint draws e and its children. clip is in cells.
func (s *Scene) paint(c *Canvas, e *Element, clip webedit.Rect) {
	rect := s.cellRect(e.ClientRect())
	style := borderStyle(e)

	inner := rect
	if e.border > 0 {
		inner = webedit.Rect{
			X:      rect.X + 1,
			Y:      rect.Y + 1,
			Width:  max(rect.Width-2, 0),
			Height: max(rect.Height-2, 0),
		}
	}
	for y := inner.Y; y < inner.Bottom(); y++ {
		for x := inner.X; x < inner.Right(); x++ {
			c.set(x, y, ' ', styleBlank, clip)
		}
	}

	if e.border > 0 && rect.Width >= 2 && rect.Height >= 2 {
		b := lipgloss.NormalBorder()
		if e.HasClass(webedit.ClassSelected) {
			b = lipgloss.ThickBorder()
		}
		right, bottom := rect.Right()-1, rect.Bottom()-1
		for x := rect.X + 1; x < right; x++ {
			c.text(x, rect.Y, b.Top, style, clip)
			c.text(x, bottom, b.Bottom, style, clip)
		}
		for y := rect.Y + 1; y < bottom; y++ {
			c.text(rect.X, y, b.Left, style, clip)
			c.text(right, y, b.Right, style, clip)
		}
		c.text(rect.X, rect.Y, b.TopLeft, style, clip)
		c.text(right, rect.Y, b.TopRight, style, clip)
		c.text(rect.X, bottom, b.BottomLeft, style, clip)
		c.text(right, bottom, b.BottomRight, style, clip)
	}

	childClip := inner.Intersect(clip)
	c.text(inner.X, inner.Y, e.label, styleLabel, childClip)
	for _, child := range e.children {
		s.paint(c, child, childClip)
	}
}

func borderStyle(e *Element) styleID {
	switch {
	case e.HasClass(webedit.ClassResizing):
		return styleResizing
	case e.HasClass(webedit.ClassSelected):
		return styleSelected
	case e.HasClass(webedit.ClassTarget):
		return styleTarget
	default:
		return stylePlain
	}
}

// Render paints the scene and joins the rows with CRLF for a raw-mode
// terminal, prefixed with a cursor-home sequence.
func (s *Scene) Render(status string) string {
	return "\x1b[H" + strings.Join(s.Paint(status).Lines(), "\r\n")
}
