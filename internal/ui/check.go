package ui

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/javiermolinar/atelier/internal/gallery"
)

func (a *App) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Fetch both datasets and report what was found",
		Long: `Fetch the portfolio and featured datasets concurrently and print their
sizes, page counts and how many portfolio works are available.

Exits with an error if either dataset cannot be loaded.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}

			var (
				artworks []gallery.Artwork
				featured []gallery.Featured
			)
			g, ctx := errgroup.WithContext(cmd.Context())
			g.Go(func() error {
				items, err := client.Artworks(ctx, a.config.Source.PortfolioFile)
				artworks = items
				return err
			})
			g.Go(func() error {
				items, err := client.Featured(ctx, a.config.Source.FeaturedFile)
				featured = items
				return err
			})
			if err := g.Wait(); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s %v\n", formatFailure("✗"), err)
				return err
			}

			available := len(gallery.Filter(gallery.NewDataset(artworks, 0), gallery.Available))
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", formatAvailable("✓"), client.Locate(a.config.Source.PortfolioFile))
			fmt.Fprintf(out, "    %d artworks, %d pages of %d, %d available\n",
				len(artworks),
				gallery.PageCount(len(artworks), a.config.Gallery.PageSize),
				a.config.Gallery.PageSize,
				available,
			)
			fmt.Fprintf(out, "%s %s\n", formatAvailable("✓"), client.Locate(a.config.Source.FeaturedFile))
			fmt.Fprintf(out, "    %d featured, %d pages of %d\n",
				len(featured),
				gallery.PageCount(len(featured), a.config.Gallery.FeaturedPageSize),
				a.config.Gallery.FeaturedPageSize,
			)
			return nil
		},
	}
}
