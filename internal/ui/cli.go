// Package ui wires the cobra commands that front the gallery.
package ui

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/javiermolinar/atelier/internal/config"
	"github.com/javiermolinar/atelier/internal/logging"
	"github.com/javiermolinar/atelier/internal/source"
	"github.com/javiermolinar/atelier/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	config  *config.Config
	root    *cobra.Command
	debug   bool   // Enable debug logging
	baseURL string // Overrides source.base_url
}

// NewApp creates a new CLI application with the given config.
func NewApp(cfg *config.Config) *App {
	a := &App{config: cfg}

	a.root = &cobra.Command{
		Use:   "atelier",
		Short: "Browse an art portfolio in the terminal",
		Long: `Atelier shows an artist's portfolio and featured works as paginated
card grids, with filters and a detail view for each artwork.

Datasets are JSON or YAML documents fetched over HTTP or read from a
local directory.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runTUI(cmd)
		},
	}

	// Add global flags
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to "+logging.DefaultPath+")")
	a.root.PersistentFlags().StringVar(&a.baseURL, "base-url", "", "Dataset location: URL, file:// URL or directory")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.listCmd())
	a.root.AddCommand(a.showCmd())
	a.root.AddCommand(a.checkCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "atelier %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Root returns the root command.
func (a *App) Root() *cobra.Command {
	return a.root
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// client builds the data source from config and the --base-url flag.
func (a *App) client() (*source.Client, error) {
	base := a.config.Source.BaseURL
	if a.baseURL != "" {
		base = a.baseURL
	}
	timeout, err := a.config.Timeout()
	if err != nil {
		return nil, err
	}
	c, err := source.New(base, source.WithTimeout(timeout))
	if err != nil {
		return nil, fmt.Errorf("opening source: %w", err)
	}
	return c, nil
}

func (a *App) runTUI(cmd *cobra.Command) error {
	logger, closeLog, err := logging.New(a.debug, logging.DefaultPath)
	if err != nil {
		return err
	}
	defer closeLog()

	client, err := a.client()
	if err != nil {
		return err
	}
	if a.baseURL != "" {
		a.config.Source.BaseURL = a.baseURL
	}

	opts := []tui.ModelOption{tui.WithLogger(logger)}
	if a.config.Source.Watch {
		w, err := client.Watch(logger, a.config.Source.PortfolioFile, a.config.Source.FeaturedFile)
		if err != nil {
			logger.Warn("watch disabled", zap.Error(err))
		} else {
			defer func() { _ = w.Close() }()
			opts = append(opts, tui.WithWatcher(w))
		}
	}

	logger.Info("starting", zap.String("base_url", a.config.Source.BaseURL), zap.Bool("watch", a.config.Source.Watch))
	return tui.Run(cmd.Context(), a.config, client, opts...)
}
