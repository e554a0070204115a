// Package view renders atelier screens from plain models and styles. Nothing
// here reads gallery state; callers build the models.
package view

// Overlay draws a box over a full screen of base content.
type Overlay interface {
	Render(base string, width, height int, content string) string
}

// Screen is one frame: the base layout and, when open, the detail box.
type Screen struct {
	Width   int
	Height  int
	Base    string
	Detail  string // empty when no detail is open
	Overlay Overlay
}

// Compose returns the frame, or a placeholder until the terminal size is known.
func Compose(s Screen) string {
	if s.Width == 0 || s.Height == 0 {
		return "Loading..."
	}
	if s.Detail != "" && s.Overlay != nil {
		return s.Overlay.Render(s.Base, s.Width, s.Height, s.Detail)
	}
	return s.Base
}
