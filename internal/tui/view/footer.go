package view

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// FooterModel contains content and styles for rendering the footer.
type FooterModel struct {
	InnerW      int
	FooterH     int
	StatusText  string
	HelpText    string
	StatusStyle lipgloss.Style
	HelpStyle   lipgloss.Style
	Bg          lipgloss.Color
}

// RenderFooter renders the status and help lines at the bottom of the screen.
func RenderFooter(model FooterModel) string {
	if model.FooterH <= 0 {
		return ""
	}
	s := footerLine(model.InnerW, model.StatusStyle, model.StatusText) + "\n" +
		footerLine(model.InnerW, model.HelpStyle, model.HelpText)
	return Region(model.InnerW, model.FooterH, lipgloss.Bottom, s, model.Bg)
}

func footerLine(width int, style lipgloss.Style, content string) string {
	frameW, _ := style.GetFrameSize()
	contentWidth := max(width-frameW, 0)
	style = style.Width(contentWidth)
	if contentWidth > 0 {
		content = ansi.Truncate(content, contentWidth, "")
	}
	return style.Render(content)
}
