package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func testOverlay() detailOverlay {
	return newDetailOverlay(lipgloss.Color("#0c0c0c"), lipgloss.Color("#313244"), lipgloss.Color("#6c7086"))
}

func block(w, h int) string {
	row := strings.Repeat("x", w)
	return strings.Repeat(row+"\n", h-1) + row
}

func TestOverlayRender_NoContentReturnsBase(t *testing.T) {
	base := "alpha\nbeta"
	if got := testOverlay().Render(base, 10, 2, ""); got != base {
		t.Fatalf("expected base unchanged, got %q", got)
	}
}

func TestOverlayRender_BoxOverBackdrop(t *testing.T) {
	o := testOverlay()
	width, height := 30, 12
	base := strings.Repeat(strings.Repeat(".", width)+"\n", height-1) + strings.Repeat(".", width)
	content := "DUNE\nby F."

	got := o.Render(base, width, height, content)
	lines := strings.Split(got, "\n")
	if len(lines) != height {
		t.Fatalf("expected %d lines, got %d", height, len(lines))
	}

	fillSeq := ansi.Style{}.BackgroundColor(ansi.HexColor(string(o.fill))).String()
	r := o.box(width, height, splitContent(content))
	for i, line := range lines {
		if w := lipgloss.Width(line); w != width {
			t.Fatalf("line %d: expected width %d, got %d", i, width, w)
		}
		inBox := i >= r.y && i < r.y+r.h
		if has := strings.Contains(line, fillSeq); has != inBox {
			t.Errorf("line %d: fill present = %v, want %v", i, has, inBox)
		}
	}
	screen := ansi.Strip(got)
	if !strings.Contains(screen, "DUNE") || !strings.Contains(screen, "by F.") {
		t.Fatalf("expected detail text on screen:\n%s", screen)
	}
	if !strings.Contains(lines[0], "....") {
		t.Errorf("expected the backdrop to keep the grid text, got %q", ansi.Strip(lines[0]))
	}
}

func TestOverlayContains(t *testing.T) {
	o := testOverlay()
	// a 10x4 box on 80x24 sits at (35, 10)
	content := block(10, 4)

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{name: "top left corner", x: 35, y: 10, want: true},
		{name: "left of box", x: 34, y: 10, want: false},
		{name: "bottom right corner", x: 44, y: 13, want: true},
		{name: "right of box", x: 45, y: 13, want: false},
		{name: "below box", x: 40, y: 14, want: false},
		{name: "above box", x: 40, y: 9, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := o.Contains(tt.x, tt.y, 80, 24, content); got != tt.want {
				t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestOverlayContains_ClippedToScreen(t *testing.T) {
	o := testOverlay()
	content := block(100, 30)
	if !o.Contains(0, 0, 80, 24, content) || !o.Contains(79, 23, 80, 24, content) {
		t.Fatal("expected an oversized box to cover the whole screen")
	}
	if o.Contains(80, 0, 80, 24, content) {
		t.Fatal("expected cells past the screen to be outside")
	}
}
