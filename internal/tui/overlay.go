package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// rect is a screen region in cells.
type rect struct {
	x, y, w, h int
}

func (r rect) empty() bool {
	return r.w <= 0 || r.h <= 0
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// detailOverlay draws the detail box centered over a dimmed copy of the
// screen. Everything outside the box is backdrop.
type detailOverlay struct {
	fill lipgloss.Color
	dim  lipgloss.Style
}

func newDetailOverlay(fill, backdrop, muted lipgloss.Color) detailOverlay {
	return detailOverlay{
		fill: fill,
		dim:  lipgloss.NewStyle().Foreground(muted).Background(backdrop),
	}
}

// box returns where content lands on a width x height screen.
func (o detailOverlay) box(width, height int, lines []string) rect {
	if width <= 0 || height <= 0 || len(lines) == 0 {
		return rect{}
	}
	w := 0
	for _, line := range lines {
		w = max(w, lipgloss.Width(line))
	}
	w = min(w, width)
	h := min(len(lines), height)
	return rect{x: (width - w) / 2, y: (height - h) / 2, w: w, h: h}
}

// Contains reports whether (x, y) falls inside the box Render would draw.
func (o detailOverlay) Contains(x, y, width, height int, content string) bool {
	return o.box(width, height, splitContent(content)).contains(x, y)
}

// Render implements view.OverlayRenderer.
func (o detailOverlay) Render(base string, width, height int, content string) string {
	lines := splitContent(content)
	r := o.box(width, height, lines)
	if r.empty() {
		return base
	}

	screen := fitScreen(base, width, height)
	fillSeq := ansi.Style{}.BackgroundColor(ansi.HexColor(string(o.fill))).String()
	for y, line := range screen {
		if y < r.y || y >= r.y+r.h {
			screen[y] = o.dimmed(line)
			continue
		}
		left := o.dimmed(ansi.Cut(line, 0, r.x))
		right := o.dimmed(ansi.Cut(line, r.x+r.w, width))
		screen[y] = left + boxLine(lines[y-r.y], r.w, fillSeq) + right
	}
	return strings.Join(screen, "\n")
}

func (o detailOverlay) dimmed(s string) string {
	if s == "" {
		return ""
	}
	return o.dim.Render(ansi.Strip(s))
}

// boxLine pads line to w cells on the box fill. Resets inside the line would
// otherwise drop the fill for the rest of the row.
func boxLine(line string, w int, fillSeq string) string {
	if lipgloss.Width(line) > w {
		line = ansi.Cut(line, 0, w)
	}
	pad := w - lipgloss.Width(line)
	line = strings.ReplaceAll(line, ansi.ResetStyle, ansi.ResetStyle+fillSeq)
	line = strings.ReplaceAll(line, "\x1b[49m", "\x1b[49m"+fillSeq)
	return fillSeq + line + fillSeq + strings.Repeat(" ", pad) + ansi.ResetStyle
}

func splitContent(content string) []string {
	if content == "" {
		return nil
	}
	return strings.Split(strings.TrimRight(content, "\n"), "\n")
}

// fitScreen cuts or pads base to exactly height lines of width cells.
func fitScreen(base string, width, height int) []string {
	lines := strings.Split(base, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i, line := range lines {
		switch w := lipgloss.Width(line); {
		case w > width:
			lines[i] = ansi.Cut(line, 0, width)
		case w < width:
			lines[i] = line + strings.Repeat(" ", width-w)
		}
	}
	return lines
}
