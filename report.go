package webedit

import (
	"fmt"
	"io"
	"strings"
)

// FormatGeometry renders the geometry report block for one node.
func FormatGeometry(id string, b Box) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "#%s {\n", id)
	fmt.Fprintf(&sb, "  left: %dpx;\n", b.Left)
	fmt.Fprintf(&sb, "  top: %dpx;\n", b.Top)
	fmt.Fprintf(&sb, "  width: %dpx;\n", b.Width)
	fmt.Fprintf(&sb, "  height: %dpx;\n", b.Height)
	sb.WriteString("}\n")
	return sb.String()
}

// Reporter writes geometry reports to a sink.
type Reporter struct {
	w io.Writer
}

// NewReporter creates a reporter writing to w. A nil writer discards.
func NewReporter(w io.Writer) *Reporter {
	if w == nil {
		w = io.Discard
	}
	return &Reporter{w: w}
}

// Report writes one block per node, each followed by a blank line, using the
// nodes' current geometry.
func (r *Reporter) Report(nodes ...Node) error {
	if len(nodes) == 0 {
		return nil
	}
	var sb strings.Builder
	for _, n := range nodes {
		sb.WriteString(FormatGeometry(n.ID(), n.Geometry()))
		sb.WriteString("\n")
	}
	if _, err := io.WriteString(r.w, sb.String()); err != nil {
		return fmt.Errorf("write geometry report: %w", err)
	}
	return nil
}
