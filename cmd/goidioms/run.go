package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"goidioms/internal/demo"
	"goidioms/internal/goversion"
	"goidioms/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	runEras     []string
	runSince    string
	runFailFast bool
)

// runCmd executes demos sequentially
var runCmd = &cobra.Command{
	Use:   "run [demo...]",
	Short: "Run demos and narrate each era's trade-offs",
	Long: `Runs the named demos sequentially, every era variant in turn. With no
arguments it runs all of them.

Examples:
  goidioms run errors
  goidioms run errors sequences --era classic --era joined
  goidioms run --since go1.18`,
	Args: cobra.ArbitraryArgs,
	RunE: runDemos,
}

// runDemos is the handler for "goidioms run".
func runDemos(cmd *cobra.Command, args []string) error {
	log := logging.Get(logging.CategoryRunner)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	// Handle graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		<-sigCh
		log.Info("received shutdown signal")
		cancel()
	}()

	filter, err := buildFilter()
	if err != nil {
		return err
	}

	runner := demo.NewRunner(registry(), demo.Options{
		Printer:  newPrinter(cmd.OutOrStdout()),
		Timeout:  cfg.GetRunTimeout(),
		FailFast: runFailFast || cfg.Run.FailFast,
	})

	if len(args) == 0 {
		report, err := runner.RunAll(ctx, filter)
		if err != nil {
			return err
		}
		return report.Err()
	}

	// A failing variant is reported, not fatal: later names still run.
	// Fail-fast surfaces as an abort error from the runner itself.
	var failures []error
	for _, name := range args {
		report, err := runner.RunDemo(ctx, name, filter)
		if err != nil {
			return err
		}
		if rerr := report.Err(); rerr != nil {
			failures = append(failures, rerr)
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
	if len(failures) > 0 {
		log.Warn("run finished with failures", zap.Int("demos", len(failures)))
	}
	return errors.Join(failures...)
}

// buildFilter resolves the --era and --since flags against the config.
// The flag wins over the config value when both are set.
func buildFilter() (demo.Filter, error) {
	f := demo.Filter{Eras: runEras}

	if runSince != "" {
		since, err := goversion.Parse(runSince)
		if err != nil {
			return demo.Filter{}, fmt.Errorf("--since: %w", err)
		}
		f.Since = since
		return f, nil
	}

	since, err := cfg.GetSince()
	if err != nil {
		return demo.Filter{}, err
	}
	f.Since = since
	return f, nil
}
