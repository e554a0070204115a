// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/atelier/internal/gallery"
	"github.com/javiermolinar/atelier/internal/tui/theme"
)

// Config holds the application configuration.
type Config struct {
	Source  SourceConfig  `toml:"source"`
	Gallery GalleryConfig `toml:"gallery"`
	UI      UIConfig      `toml:"ui"`
}

// SourceConfig describes where datasets are fetched from.
type SourceConfig struct {
	BaseURL       string `toml:"base_url"`       // http(s) URL, file:// URL or directory
	PortfolioFile string `toml:"portfolio_file"` // e.g. "portfolio_artworks.json"
	FeaturedFile  string `toml:"featured_file"`  // e.g. "featured_artworks.json"
	Timeout       string `toml:"timeout"`        // Go duration, "0s" disables
	Watch         bool   `toml:"watch"`          // reload local files on change
}

// GalleryConfig holds grid settings.
type GalleryConfig struct {
	PageSize         int `toml:"page_size"`
	FeaturedPageSize int `toml:"featured_page_size"`
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "mocha", "latte", "gallery"
	Mouse bool   `toml:"mouse"` // click outside the detail view to close it
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Source: SourceConfig{
			BaseURL:       ".",
			PortfolioFile: "portfolio_artworks.json",
			FeaturedFile:  "featured_artworks.json",
			Timeout:       "0s",
			Watch:         false,
		},
		Gallery: GalleryConfig{
			PageSize:         gallery.DefaultPageSize,
			FeaturedPageSize: gallery.DefaultFeaturedPageSize,
		},
		UI: UIConfig{
			Theme: theme.Default,
			Mouse: true,
		},
	}
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "atelier", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env
// overrides. A .env file in the working directory, if present, is read into
// the environment first without overriding variables that are already set.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	cfg.Source.BaseURL = expandPath(cfg.Source.BaseURL)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

func loadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) error {
	// Source overrides
	if v := os.Getenv("ATELIER_BASE_URL"); v != "" {
		cfg.Source.BaseURL = v
	}
	if v := os.Getenv("ATELIER_PORTFOLIO_FILE"); v != "" {
		cfg.Source.PortfolioFile = v
	}
	if v := os.Getenv("ATELIER_FEATURED_FILE"); v != "" {
		cfg.Source.FeaturedFile = v
	}
	if v := os.Getenv("ATELIER_TIMEOUT"); v != "" {
		cfg.Source.Timeout = v
	}
	if v := os.Getenv("ATELIER_WATCH"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("ATELIER_WATCH: %w", err)
		}
		cfg.Source.Watch = b
	}

	// Gallery overrides
	if v := os.Getenv("ATELIER_PAGE_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("ATELIER_PAGE_SIZE: %w", err)
		}
		cfg.Gallery.PageSize = n
	}
	if v := os.Getenv("ATELIER_FEATURED_PAGE_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("ATELIER_FEATURED_PAGE_SIZE: %w", err)
		}
		cfg.Gallery.FeaturedPageSize = n
	}

	// UI overrides
	if v := os.Getenv("ATELIER_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	return nil
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Source.PortfolioFile) == "" {
		return errors.New("portfolio_file must be set")
	}
	if strings.TrimSpace(c.Source.FeaturedFile) == "" {
		return errors.New("featured_file must be set")
	}
	if _, err := c.Timeout(); err != nil {
		return err
	}
	if c.Gallery.PageSize <= 0 {
		return fmt.Errorf("page_size must be positive, got %d", c.Gallery.PageSize)
	}
	if c.Gallery.FeaturedPageSize <= 0 {
		return fmt.Errorf("featured_page_size must be positive, got %d", c.Gallery.FeaturedPageSize)
	}
	if c.UI.Theme != "" && !theme.IsAvailable(c.UI.Theme) {
		return fmt.Errorf("unknown theme %q (available: %s)", c.UI.Theme, strings.Join(theme.Available(), ", "))
	}
	return nil
}

// Timeout returns the parsed load timeout. Empty means no timeout.
func (c *Config) Timeout() (time.Duration, error) {
	if c.Source.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Source.Timeout)
	if err != nil {
		return 0, fmt.Errorf("timeout must be a duration like \"10s\", got %q", c.Source.Timeout)
	}
	if d < 0 {
		return 0, fmt.Errorf("timeout must not be negative, got %q", c.Source.Timeout)
	}
	return d, nil
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
