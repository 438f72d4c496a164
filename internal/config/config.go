package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"goidioms/internal/goversion"
)

// Config holds all goidioms configuration.
type Config struct {
	// Core settings
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	// Terminal presentation
	UI UIConfig `yaml:"ui"`

	// Demo runner behavior
	Run RunConfig `yaml:"run"`

	// Feature review rendering
	Review ReviewConfig `yaml:"review"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// UIConfig configures the terminal presentation.
type UIConfig struct {
	Theme string `yaml:"theme"` // auto, light, dark
	Plain bool   `yaml:"plain"` // no styling at all
}

// RunConfig configures the demo runner.
type RunConfig struct {
	// Since keeps only variants introduced at or after this Go release
	// ("go1.18"). Empty runs everything.
	Since string `yaml:"since"`

	// Timeout bounds a single variant run.
	Timeout string `yaml:"timeout"`

	// FailFast stops the run at the first failing variant instead of
	// collecting errors to the end.
	FailFast bool `yaml:"fail_fast"`
}

// ReviewConfig configures the feature review rendering.
type ReviewConfig struct {
	Width int    `yaml:"width"` // word-wrap column
	Style string `yaml:"style"` // auto, light, dark, notty

	// WatchDebounce coalesces bursts of filesystem events in watch mode.
	WatchDebounce string `yaml:"watch_debounce"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name:    "goidioms",
		Version: "1.0.0",

		UI: UIConfig{
			Theme: "auto",
			Plain: false,
		},

		Run: RunConfig{
			Since:    "",
			Timeout:  "10s",
			FailFast: false,
		},

		Review: ReviewConfig{
			Width:         100,
			Style:         "auto",
			WatchDebounce: "200ms",
		},

		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ".goidioms.yaml"
	}
	return filepath.Join(base, "goidioms", "config.yaml")
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Return defaults if config file doesn't exist
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Override with environment variables
	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if theme := os.Getenv("GOIDIOMS_THEME"); theme != "" {
		c.UI.Theme = theme
	}
	if os.Getenv("GOIDIOMS_PLAIN") == "1" {
		c.UI.Plain = true
	}
	// NO_COLOR (https://no-color.org) disables all styling.
	if os.Getenv("NO_COLOR") != "" {
		c.UI.Plain = true
	}
	if level := os.Getenv("GOIDIOMS_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if since := os.Getenv("GOIDIOMS_SINCE"); since != "" {
		c.Run.Since = since
	}
	if width := os.Getenv("GOIDIOMS_REVIEW_WIDTH"); width != "" {
		if n, err := strconv.Atoi(width); err == nil && n > 0 {
			c.Review.Width = n
		}
	}
}

// GetRunTimeout returns the per-variant run timeout as a duration.
func (c *Config) GetRunTimeout() time.Duration {
	d, err := time.ParseDuration(c.Run.Timeout)
	if err != nil {
		return 10 * time.Second
	}
	return d
}

// GetWatchDebounce returns the watch-mode debounce interval as a duration.
func (c *Config) GetWatchDebounce() time.Duration {
	d, err := time.ParseDuration(c.Review.WatchDebounce)
	if err != nil {
		return 200 * time.Millisecond
	}
	return d
}

// GetSince returns the configured era floor, or the zero version when unset.
func (c *Config) GetSince() (goversion.Version, error) {
	if c.Run.Since == "" {
		return goversion.Zero, nil
	}
	v, err := goversion.Parse(c.Run.Since)
	if err != nil {
		return goversion.Zero, fmt.Errorf("invalid run.since: %w", err)
	}
	return v, nil
}

// ValidThemes lists all supported UI themes.
var ValidThemes = []string{"auto", "light", "dark"}

// ValidLogLevels lists all supported logging levels.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// ValidReviewStyles lists all supported review rendering styles.
var ValidReviewStyles = []string{"auto", "light", "dark", "notty"}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if !contains(ValidThemes, c.UI.Theme) {
		return fmt.Errorf("invalid ui.theme: %s (valid: %v)", c.UI.Theme, ValidThemes)
	}
	if !contains(ValidLogLevels, c.Logging.Level) {
		return fmt.Errorf("invalid logging.level: %s (valid: %v)", c.Logging.Level, ValidLogLevels)
	}
	if c.Logging.Format != "json" && c.Logging.Format != "console" {
		return fmt.Errorf("invalid logging.format: %s (valid: [json console])", c.Logging.Format)
	}
	if !contains(ValidReviewStyles, c.Review.Style) {
		return fmt.Errorf("invalid review.style: %s (valid: %v)", c.Review.Style, ValidReviewStyles)
	}
	if c.Review.Width <= 0 {
		return fmt.Errorf("invalid review.width: %d (must be positive)", c.Review.Width)
	}
	if _, err := c.GetSince(); err != nil {
		return err
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
