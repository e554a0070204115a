package ui

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/atelier/internal/gallery"
)

func (a *App) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show INDEX",
		Short: "Show the details of one artwork",
		Long: `Print every detail field of the artwork at INDEX.

INDEX is the dataset position shown by "atelier list", starting at 0.
Fields missing from the dataset are printed empty.`,
		Example: `  atelier show 0
  atelier show 17`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid index %q: %w", args[0], err)
			}

			client, err := a.client()
			if err != nil {
				return err
			}
			items, err := client.Artworks(cmd.Context(), a.config.Source.PortfolioFile)
			if err != nil {
				return err
			}

			artwork, ok := gallery.NewDataset(items, 0).At(index)
			if !ok {
				return fmt.Errorf("artwork %d not found (dataset has %d)", index, len(items))
			}
			PrintDetail(cmd.OutOrStdout(), gallery.DetailOf(index, artwork))
			return nil
		},
	}
}
