package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Region places content in a w x h block filled with bg. Lines wider than w
// are cut and lines past h dropped, so every region is exactly w x h.
func Region(w, h int, vAlign lipgloss.Position, content string, bg lipgloss.Color) string {
	if w <= 0 || h <= 0 {
		return ""
	}
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if lipgloss.Width(line) > w {
			lines[i] = ansi.Truncate(line, w, "")
		}
	}
	placed := lipgloss.Place(w, h, lipgloss.Left, vAlign, strings.Join(lines, "\n"),
		lipgloss.WithWhitespaceBackground(bg))

	fill := lipgloss.NewStyle().Background(bg)
	out := strings.Split(placed, "\n")
	if len(out) > h {
		out = out[:h]
	}
	for len(out) < h {
		out = append(out, "")
	}
	for i, line := range out {
		if lw := lipgloss.Width(line); lw < w {
			out[i] = line + fill.Render(strings.Repeat(" ", w-lw))
		}
	}
	return strings.Join(out, "\n")
}
