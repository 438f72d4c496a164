// Package logging wires zap into the CLI and hands out named loggers per
// subsystem. Diagnostics go to stderr so demo narration on stdout stays clean.
package logging

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Category names a logging subsystem.
type Category string

const (
	CategoryBoot   Category = "boot"   // startup, config loading
	CategoryRunner Category = "runner" // demo runner lifecycle
	CategoryDemo   Category = "demo"   // individual variant runs
	CategoryReview Category = "review" // feature review rendering
	CategoryWatch  Category = "watch"  // review --watch file events
	CategoryPicker Category = "picker" // interactive picker
)

// Initialize builds the process logger from config and installs it as the
// zap global. verbose forces debug level regardless of the configured one.
func Initialize(level, format string, verbose bool) (*zap.Logger, error) {
	if verbose {
		level = "debug"
	}
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var cfg zap.Config
	if format == "json" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = lvl
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	zap.ReplaceGlobals(logger)
	return logger, nil
}

// Get returns the named logger for a category.
func Get(category Category) *zap.Logger {
	return zap.L().Named(string(category))
}

// Sync flushes buffered log entries. Call at shutdown.
func Sync() {
	_ = zap.L().Sync()
}

// Timer helps measure operation duration
type Timer struct {
	log   *zap.Logger
	op    string
	start time.Time
}

// StartTimer begins timing an operation
func StartTimer(category Category, operation string) *Timer {
	return &Timer{
		log:   Get(category),
		op:    operation,
		start: time.Now(),
	}
}

// Stop ends the timer and logs the duration
func (t *Timer) Stop() time.Duration {
	elapsed := time.Since(t.start)
	t.log.Debug("operation completed", zap.String("op", t.op), zap.Duration("elapsed", elapsed))
	return elapsed
}

// StopWithThreshold logs a warning if duration exceeds threshold
func (t *Timer) StopWithThreshold(threshold time.Duration) time.Duration {
	elapsed := time.Since(t.start)
	if elapsed > threshold {
		t.log.Warn("operation exceeded threshold",
			zap.String("op", t.op),
			zap.Duration("elapsed", elapsed),
			zap.Duration("threshold", threshold))
	} else {
		t.log.Debug("operation completed", zap.String("op", t.op), zap.Duration("elapsed", elapsed))
	}
	return elapsed
}
