package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/atelier/internal/config"
	"github.com/javiermolinar/atelier/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Interactive configuration management.

If no config file exists, creates one with default values.
Otherwise, displays current config and allows editing.`,
		Example: `  atelier config
  atelier config --path=./atelier.toml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigInteractive(path, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&path, "path", config.DefaultConfigPath(), "Config file to create or edit")

	return cmd
}

func runConfigInteractive(configPath string, in io.Reader, out io.Writer) error {
	fmt.Fprintf(out, "Config file: %s\n\n", configPath)

	// Load existing config or create defaults
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Check if file exists
	_, fileErr := os.Stat(configPath)
	if os.IsNotExist(fileErr) {
		fmt.Fprintln(out, "No config file found. Creating with default values...")
		if err := cfg.SaveTo(configPath); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Fprintf(out, "Created %s\n\n", configPath)
	}

	printConfig(out, cfg)

	reader := bufio.NewReader(in)
	if !promptYesNo(reader, out, "\nWould you like to edit the configuration?") {
		return nil
	}

	cfg.Source.BaseURL = promptValue(reader, out, "Base URL or directory", cfg.Source.BaseURL)
	cfg.Source.PortfolioFile = promptValue(reader, out, "Portfolio file", cfg.Source.PortfolioFile)
	cfg.Source.FeaturedFile = promptValue(reader, out, "Featured file", cfg.Source.FeaturedFile)
	cfg.Source.Timeout = promptValue(reader, out, "Load timeout (0s disables)", cfg.Source.Timeout)
	cfg.Source.Watch = promptBool(reader, out, "Watch local files", cfg.Source.Watch)
	cfg.Gallery.PageSize = promptInt(reader, out, "Page size", cfg.Gallery.PageSize)
	cfg.Gallery.FeaturedPageSize = promptInt(reader, out, "Featured page size", cfg.Gallery.FeaturedPageSize)
	cfg.UI.Theme = promptTheme(reader, out, cfg.UI.Theme)
	cfg.UI.Mouse = promptBool(reader, out, "Enable mouse", cfg.UI.Mouse)

	// Validate before saving
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := cfg.SaveTo(configPath); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintln(out, "\nConfiguration saved!")
	return nil
}

func printConfig(out io.Writer, cfg *config.Config) {
	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintln(out, "──────────────────────")
	fmt.Fprintln(out, "[source]")
	fmt.Fprintf(out, "  base_url           = %s\n", cfg.Source.BaseURL)
	fmt.Fprintf(out, "  portfolio_file     = %s\n", cfg.Source.PortfolioFile)
	fmt.Fprintf(out, "  featured_file      = %s\n", cfg.Source.FeaturedFile)
	fmt.Fprintf(out, "  timeout            = %s\n", cfg.Source.Timeout)
	fmt.Fprintf(out, "  watch              = %t\n", cfg.Source.Watch)
	fmt.Fprintln(out, "\n[gallery]")
	fmt.Fprintf(out, "  page_size          = %d\n", cfg.Gallery.PageSize)
	fmt.Fprintf(out, "  featured_page_size = %d\n", cfg.Gallery.FeaturedPageSize)
	fmt.Fprintln(out, "\n[ui]")
	fmt.Fprintf(out, "  theme              = %s\n", cfg.UI.Theme)
	fmt.Fprintf(out, "  mouse              = %t\n", cfg.UI.Mouse)
}

func promptYesNo(reader *bufio.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", question)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}

func promptValue(reader *bufio.Reader, out io.Writer, label, current string) string {
	if current == "" {
		fmt.Fprintf(out, "  %s: ", label)
	} else {
		fmt.Fprintf(out, "  %s [%s]: ", label, current)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

func promptBool(reader *bufio.Reader, out io.Writer, label string, current bool) bool {
	for {
		value := promptValue(reader, out, label, strconv.FormatBool(current))
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
		fmt.Fprintf(out, "  Invalid value %q. Use true or false\n", value)
	}
}

func promptInt(reader *bufio.Reader, out io.Writer, label string, current int) int {
	for {
		value := promptValue(reader, out, label, strconv.Itoa(current))
		n, err := strconv.Atoi(value)
		if err == nil && n > 0 {
			return n
		}
		fmt.Fprintf(out, "  Invalid value %q. Use a positive number\n", value)
	}
}

func promptTheme(reader *bufio.Reader, out io.Writer, current string) string {
	options := strings.Join(theme.Available(), ", ")
	label := fmt.Sprintf("UI theme (%s)", options)
	for {
		value := strings.ToLower(promptValue(reader, out, label, current))
		if value == "" || theme.IsAvailable(value) {
			return value
		}
		fmt.Fprintf(out, "  Invalid theme %q. Available: %s\n", value, options)
	}
}
