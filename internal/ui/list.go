package ui

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/atelier/internal/gallery"
)

func (a *App) listCmd() *cobra.Command {
	var (
		page    int
		filter  string
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List portfolio artworks",
		Long: `List one page of the portfolio as card rows.

With --filter, pagination is replaced by the filtered view: "all" lists
every artwork, "available" lists only works marked available. Card numbers
are dataset indexes and can be passed to "atelier show".`,
		Example: `  atelier list
  atelier list --page=2
  atelier list --filter=available`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if noColor {
				restore := color.NoColor
				DisableColor()
				defer func() { color.NoColor = restore }()
			}
			mode, err := gallery.ParseFilter(filter)
			if err != nil {
				return err
			}

			client, err := a.client()
			if err != nil {
				return err
			}
			items, err := client.Artworks(cmd.Context(), a.config.Source.PortfolioFile)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(items) == 0 {
				fmt.Fprintln(out, "No artworks found.")
				return nil
			}

			renderer := gallery.NewRenderer(nil)
			var cards []gallery.Card
			if pred := mode.Predicate(); pred != nil {
				cards = renderer.RenderEntries(gallery.Filter(gallery.NewDataset(items, 0), pred))
				fmt.Fprintf(out, "%s\n\n", formatHeader(fmt.Sprintf("Filter: %s (%d of %d)", mode, len(cards), len(items))))
			} else {
				size := a.config.Gallery.PageSize
				p := gallery.Paginate(items, page, size)
				if p.Empty() {
					return fmt.Errorf("page %d out of range (1-%d)", page, p.Total)
				}
				cards = renderer.RenderPage(p)
				fmt.Fprintf(out, "%s\n\n", formatHeader(fmt.Sprintf("Page %d of %d", p.Number, p.Total)))
			}

			if len(cards) == 0 {
				fmt.Fprintln(out, "No artworks match the filter.")
				return nil
			}
			width := termWidth()
			for _, c := range cards {
				PrintCardRow(out, c, width)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "Page number (1-based)")
	cmd.Flags().StringVar(&filter, "filter", "", "Filter: all or available (disables pagination)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	return cmd
}
