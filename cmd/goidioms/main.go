package main

import (
	"fmt"
	"os"

	"goidioms/cmd/goidioms/picker"
	"goidioms/internal/config"
	"goidioms/internal/logging"
	"goidioms/internal/ux"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	verbose    bool
	plain      bool
	configPath string

	// Loaded configuration, available to every subcommand after
	// PersistentPreRunE.
	cfg *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "goidioms",
	Short: "goidioms - one Go program per era of the language",
	Long: `goidioms is a guided tour of how everyday Go changed release by release.

Each demo is a small program written several times over: once the way Go 1.0
code looked, and again for each release that changed the idiom (errors.Is,
generics, iterators, errors.Join, slog). Every variant runs for real and
narrates the trade-off it illustrates.

Run without arguments to start the interactive picker.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if plain {
			cfg.UI.Plain = true
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		// Skip logger init for the interactive picker (it owns the terminal)
		if cmd.Use == "goidioms" && cmd.CalledAs() == "goidioms" {
			return nil
		}

		if _, err := logging.Initialize(cfg.Logging.Level, cfg.Logging.Format, verbose); err != nil {
			return fmt.Errorf("initialize logging: %w", err)
		}
		logging.Get(logging.CategoryBoot).Debug("configuration loaded",
			zap.String("path", configPath),
			zap.String("theme", cfg.UI.Theme),
			zap.Bool("plain", cfg.UI.Plain))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: launch the interactive picker
		return runInteractivePicker()
	},
}

// runInteractivePicker starts the full-screen demo picker.
func runInteractivePicker() error {
	m := picker.New(picker.Options{
		Registry:    registry(),
		Styles:      styles(),
		Plain:       cfg.UI.Plain,
		Timeout:     cfg.GetRunTimeout(),
		ReviewWidth: cfg.Review.Width,
	})

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

// styles resolves the configured theme into a style set.
func styles() ux.Styles {
	switch cfg.UI.Theme {
	case "light":
		return ux.NewStyles(ux.LightTheme())
	case "dark":
		return ux.NewStyles(ux.DarkTheme())
	default:
		return ux.DefaultStyles()
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&plain, "plain", false, "Disable colors and glyphs")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(), "Config file path")

	// Run flags
	runCmd.Flags().StringSliceVar(&runEras, "era", nil, "Keep only these era slugs (repeatable)")
	runCmd.Flags().StringVar(&runSince, "since", "", "Keep only variants introduced at or after this release (go1.18)")
	runCmd.Flags().BoolVar(&runFailFast, "fail-fast", false, "Stop at the first failing variant")

	// Review flags
	reviewCmd.Flags().BoolVar(&reviewRaw, "raw", false, "Print the markdown without rendering")
	reviewCmd.Flags().StringVar(&reviewSection, "section", "", "Render a single demo's chapter")
	reviewCmd.Flags().IntVar(&reviewWidth, "width", 0, "Word-wrap column (default: config)")
	reviewCmd.Flags().BoolVar(&reviewWatch, "watch", false, "Re-render when the source file changes")

	// Add commands to root
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
