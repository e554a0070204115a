// Package tui provides the terminal user interface for atelier.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/atelier/internal/tui/theme"
	"github.com/javiermolinar/atelier/internal/tui/view"
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	palette *theme.Palette

	colorBg lipgloss.Color

	// Tab bar
	TabStyle       lipgloss.Style
	TabActiveStyle lipgloss.Style
	TabBarStyle    lipgloss.Style

	// Portfolio cards
	CardStyle          lipgloss.Style
	CardAltStyle       lipgloss.Style
	CardSelectedStyle  lipgloss.Style
	CardTitleStyle     lipgloss.Style
	CardMetaStyle      lipgloss.Style
	AvailableStyle     lipgloss.Style
	SoldStyle          lipgloss.Style
	DetailsStyle       lipgloss.Style
	DetailsActiveStyle lipgloss.Style

	// Featured cards
	FeaturedCardStyle    lipgloss.Style
	FeaturedHoveredStyle lipgloss.Style
	FeaturedTitleStyle   lipgloss.Style
	FeaturedBodyStyle    lipgloss.Style

	// Page and filter controls
	ControlLabelStyle  lipgloss.Style
	ControlStyle       lipgloss.Style
	ControlActiveStyle lipgloss.Style

	// Placeholder for empty grids
	EmptyStyle lipgloss.Style

	// About tab
	AboutTitleStyle lipgloss.Style
	AboutLabelStyle lipgloss.Style
	AboutBodyStyle  lipgloss.Style

	// Status message
	StatusStyle lipgloss.Style

	// Help text
	HelpStyle lipgloss.Style

	// Modal styles
	ModalStyle             lipgloss.Style
	ModalBgColor           lipgloss.Color
	ModalBackdropColor     lipgloss.Color
	ModalHeaderStyle       lipgloss.Style
	ModalFooterStyle       lipgloss.Style
	ModalTitleStyle        lipgloss.Style
	ModalBodyStyle         lipgloss.Style
	ModalMetaStyle         lipgloss.Style
	ModalLabelStyle        lipgloss.Style
	ModalButtonStyle       lipgloss.Style
	ModalButtonActiveStyle lipgloss.Style

	// App container
	AppStyle lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	palette := theme.NewPalette(t)
	s := &Styles{palette: palette, colorBg: palette.Bg}

	base := lipgloss.NewStyle().Background(palette.Bg)

	// Tabs
	s.TabStyle = base.
		Foreground(palette.FgMuted).
		Padding(0, 2)
	s.TabActiveStyle = lipgloss.NewStyle().
		Foreground(palette.TextOnAccent).
		Background(palette.Accent).
		Bold(true).
		Padding(0, 2)
	s.TabBarStyle = base

	// Portfolio cards
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(palette.BgSelection).
		BorderBackground(palette.Bg).
		Foreground(palette.Fg).
		Padding(0, 1)
	s.CardStyle = card.Background(palette.BgHighlight)
	s.CardAltStyle = card.Background(palette.CardBgAlt)
	s.CardSelectedStyle = card.
		Border(lipgloss.ThickBorder()).
		BorderForeground(palette.Accent).
		Background(palette.BgSelection)

	s.CardTitleStyle = lipgloss.NewStyle().
		Foreground(palette.Fg).
		Bold(true)
	s.CardMetaStyle = lipgloss.NewStyle().
		Foreground(palette.FgMuted)
	s.AvailableStyle = lipgloss.NewStyle().
		Foreground(palette.Available)
	s.SoldStyle = lipgloss.NewStyle().
		Foreground(palette.Sold)
	s.DetailsStyle = lipgloss.NewStyle().
		Foreground(palette.Accent)
	s.DetailsActiveStyle = lipgloss.NewStyle().
		Foreground(palette.TextOnAccent).
		Background(palette.Accent).
		Bold(true)

	// Featured cards; backgrounds come from each item's tint
	s.FeaturedCardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(palette.BgSelection).
		BorderBackground(palette.Bg).
		Padding(0, 1)
	s.FeaturedHoveredStyle = s.FeaturedCardStyle.
		Border(lipgloss.ThickBorder()).
		BorderForeground(palette.Accent)
	s.FeaturedTitleStyle = lipgloss.NewStyle().Bold(true)
	s.FeaturedBodyStyle = lipgloss.NewStyle()

	// Controls
	s.ControlLabelStyle = base.Foreground(palette.FgMuted)
	s.ControlStyle = base.Foreground(palette.Fg)
	s.ControlActiveStyle = base.
		Foreground(palette.Accent).
		Bold(true)

	s.EmptyStyle = base.
		Foreground(palette.FgMuted).
		Italic(true)

	// About
	s.AboutTitleStyle = base.Foreground(palette.Accent).Bold(true)
	s.AboutLabelStyle = base.Foreground(palette.FgMuted)
	s.AboutBodyStyle = base.Foreground(palette.Fg)

	// Status message
	s.StatusStyle = base.
		Foreground(palette.Warning).
		Bold(true)

	// Help text
	s.HelpStyle = base.Foreground(palette.FgMuted)

	// Modal styles - use high-contrast theme colors
	modal := palette.Modal
	modalBg := modal.Bg
	s.ModalBackdropColor = modal.Backdrop
	s.ModalBgColor = modalBg

	s.ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(modal.Border).
		Background(modalBg).
		Foreground(modal.Text).
		Padding(1, 2).
		Width(detailWidth).
		Align(lipgloss.Left)

	s.ModalHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(modal.Text).
		Background(modalBg)

	s.ModalFooterStyle = lipgloss.NewStyle().
		Background(modalBg)

	s.ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(modal.Highlight).
		Background(modalBg)

	s.ModalBodyStyle = lipgloss.NewStyle().
		Foreground(modal.Text).
		Background(modalBg)

	s.ModalMetaStyle = lipgloss.NewStyle().
		Foreground(modal.Muted).
		Background(modalBg).
		Italic(true)

	s.ModalLabelStyle = lipgloss.NewStyle().
		Foreground(modal.Muted).
		Background(modalBg).
		Bold(true)

	s.ModalButtonStyle = lipgloss.NewStyle().
		Foreground(modal.Text).
		Background(modalBg)

	s.ModalButtonActiveStyle = lipgloss.NewStyle().
		Foreground(modalBg).
		Background(modal.Highlight).
		Bold(true)

	s.AppStyle = base

	return s
}

// Tint returns the card colours for a featured item's background token.
func (s *Styles) Tint(token string) (bg, fg lipgloss.Color) {
	return s.palette.Tint(token)
}

func (s *Styles) gridStyles() view.GridStyles {
	return view.GridStyles{
		Card:          s.CardStyle,
		CardAlt:       s.CardAltStyle,
		CardSelected:  s.CardSelectedStyle,
		Title:         s.CardTitleStyle,
		Meta:          s.CardMetaStyle,
		Available:     s.AvailableStyle,
		Sold:          s.SoldStyle,
		Details:       s.DetailsStyle,
		DetailsActive: s.DetailsActiveStyle,
		Empty:         s.EmptyStyle,
	}
}

func (s *Styles) featuredStyles() view.FeaturedStyles {
	return view.FeaturedStyles{
		Card:        s.FeaturedCardStyle,
		CardHovered: s.FeaturedHoveredStyle,
		Title:       s.FeaturedTitleStyle,
		Body:        s.FeaturedBodyStyle,
		Empty:       s.EmptyStyle,
	}
}

func (s *Styles) controlStyles() view.PaginationStyles {
	return view.PaginationStyles{
		Label:   s.ControlLabelStyle,
		Control: s.ControlStyle,
		Active:  s.ControlActiveStyle,
	}
}

func (s *Styles) tabStyles() view.TabStyles {
	return view.TabStyles{
		Tab:    s.TabStyle,
		Active: s.TabActiveStyle,
		Bar:    s.TabBarStyle,
	}
}

func (s *Styles) aboutStyles() view.AboutStyles {
	return view.AboutStyles{
		Title: s.AboutTitleStyle,
		Label: s.AboutLabelStyle,
		Body:  s.AboutBodyStyle,
	}
}

func (s *Styles) detailStyles() view.DetailStyles {
	return view.DetailStyles{
		Frame:        s.ModalStyle,
		Header:       s.ModalHeaderStyle,
		Title:        s.ModalTitleStyle,
		Index:        s.ModalMetaStyle,
		Label:        s.ModalLabelStyle,
		Body:         s.ModalBodyStyle,
		Image:        s.ModalMetaStyle,
		Footer:       s.ModalFooterStyle,
		Button:       s.ModalButtonStyle,
		ButtonActive: s.ModalButtonActiveStyle,
	}
}
