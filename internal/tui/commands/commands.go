// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/atelier/internal/gallery"
)

// Dataset names the collection a load targets.
type Dataset string

const (
	PortfolioDataset Dataset = "portfolio"
	FeaturedDataset  Dataset = "featured"
)

// Source fetches the gallery documents. *source.Client satisfies it.
type Source interface {
	Artworks(ctx context.Context, name string) ([]gallery.Artwork, error)
	Featured(ctx context.Context, name string) ([]gallery.Featured, error)
}

// Changes reports local document changes. *source.Watcher satisfies it.
type Changes interface {
	Changes() <-chan string
}

// PortfolioLoadedMsg is sent when a portfolio request completes.
type PortfolioLoadedMsg struct {
	Gen   uint64
	Items []gallery.Artwork
}

// FeaturedLoadedMsg is sent when a featured request completes.
type FeaturedLoadedMsg struct {
	Gen   uint64
	Items []gallery.Featured
}

// LoadFailedMsg is sent when a request fails. The current dataset is kept.
type LoadFailedMsg struct {
	Dataset Dataset
	Gen     uint64
	Err     error
}

// DocumentChangedMsg is sent when a watched document changes on disk.
type DocumentChangedMsg struct {
	Name string
}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// LoadPortfolio fetches the portfolio document for request gen.
func LoadPortfolio(ctx context.Context, src Source, name string, gen uint64) tea.Cmd {
	return func() tea.Msg {
		items, err := src.Artworks(ctx, name)
		if err != nil {
			return LoadFailedMsg{Dataset: PortfolioDataset, Gen: gen, Err: err}
		}
		return PortfolioLoadedMsg{Gen: gen, Items: items}
	}
}

// LoadFeatured fetches the featured document for request gen.
func LoadFeatured(ctx context.Context, src Source, name string, gen uint64) tea.Cmd {
	return func() tea.Msg {
		items, err := src.Featured(ctx, name)
		if err != nil {
			return LoadFailedMsg{Dataset: FeaturedDataset, Gen: gen, Err: err}
		}
		return FeaturedLoadedMsg{Gen: gen, Items: items}
	}
}

// WaitForChange blocks until the next document change. It returns nil when
// the watcher is closed.
func WaitForChange(w Changes) tea.Cmd {
	return func() tea.Msg {
		name, ok := <-w.Changes()
		if !ok {
			return nil
		}
		return DocumentChangedMsg{Name: name}
	}
}

// CopyText writes text with write. Clipboard helpers may shell out, so this
// runs off the update loop.
func CopyText(write func(string) error, text string) tea.Cmd {
	return func() tea.Msg {
		if err := write(text); err != nil {
			return ErrMsg{Err: fmt.Errorf("copying %q: %w", text, err)}
		}
		return StatusMsgCmd{Msg: "Copied " + text}
	}
}

// ClearStatusAfter clears the status line after d.
func ClearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
