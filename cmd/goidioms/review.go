package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"goidioms/internal/logging"
	"goidioms/internal/review"
	"goidioms/internal/ux"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// reviewSourcePath is where the document lives in a checkout. The embedded
// copy serves everywhere else.
const reviewSourcePath = "internal/review/feature_review.md"

var (
	reviewRaw     bool
	reviewSection string
	reviewWidth   int
	reviewWatch   bool
)

// reviewCmd renders the companion feature review
var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Render the companion feature review",
	Long: `Renders the feature review, a chapter per demo, to the terminal.

Examples:
  goidioms review
  goidioms review --section errors
  goidioms review --raw | less
  goidioms review --watch`,
	RunE: runReview,
}

// runReview is the handler for "goidioms review".
func runReview(cmd *cobra.Command, args []string) error {
	width := reviewWidth
	if width <= 0 {
		width = cfg.Review.Width
	}

	// An unknown section should fail up front, watch mode included.
	if reviewSection != "" {
		if _, err := review.Section(reviewSection); err != nil {
			return err
		}
	}

	if !reviewWatch {
		logging.Get(logging.CategoryReview).Debug("rendering review",
			zap.String("section", reviewSection),
			zap.Int("width", width),
			zap.Bool("raw", reviewRaw))
		out, err := renderReview(review.Source(), reviewSection, width, cfg.Review.Style, reviewRaw)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	// Handle graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		<-sigCh
		cancel()
	}()

	return watchReview(ctx, newPrinter(cmd.OutOrStdout()), watchOptions{
		Path:     reviewSourcePath,
		Section:  reviewSection,
		Width:    width,
		Style:    cfg.Review.Style,
		Raw:      reviewRaw,
		Debounce: cfg.GetWatchDebounce(),
	})
}

// renderReview narrows the document to one section when asked, then renders
// it, or passes the markdown through untouched for --raw.
func renderReview(src, section string, width int, style string, raw bool) (string, error) {
	if section != "" {
		var err error
		src, err = review.SectionFrom(src, section)
		if err != nil {
			return "", err
		}
	}
	if raw {
		return src, nil
	}
	return review.RenderStyled(src, width, style)
}

type watchOptions struct {
	Path     string
	Section  string
	Width    int
	Style    string
	Raw      bool
	Debounce time.Duration
}

// watchReview renders the review, then re-renders whenever the source file
// changes, until the context is canceled. Outside a checkout there is no
// source file to watch; the embedded copy renders once instead.
func watchReview(ctx context.Context, p *ux.Printer, opts watchOptions) error {
	log := logging.Get(logging.CategoryWatch)

	render := func() {
		// A render slower than the debounce window defeats the coalescing.
		tm := logging.StartTimer(logging.CategoryReview, "render")
		defer tm.StopWithThreshold(500 * time.Millisecond)

		src := review.Source()
		if data, err := os.ReadFile(opts.Path); err == nil {
			src = string(data)
		} else {
			log.Warn("reading source, falling back to the embedded copy",
				zap.String("path", opts.Path), zap.Error(err))
		}
		out, err := renderReview(src, opts.Section, opts.Width, opts.Style, opts.Raw)
		if err != nil {
			// A half-saved edit can lose the section. Keep watching.
			p.Warnf("render failed: %v", err)
			return
		}
		fmt.Fprint(p.Writer(), out)
	}

	if _, err := os.Stat(opts.Path); err != nil {
		p.Warnf("%s not found, rendering the embedded copy once", opts.Path)
		render()
		return nil
	}

	render()
	p.Notef("watching %s (ctrl-c to stop)", opts.Path)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}

	// Watch the directory, not the file: editors that save by rename would
	// otherwise drop the watch on the first write.
	if err := watcher.Add(filepath.Dir(opts.Path)); err != nil {
		watcher.Close()
		return fmt.Errorf("watch %s: %w", opts.Path, err)
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer watcher.Close()

		base := filepath.Base(opts.Path)
		var pending <-chan time.Time
		for {
			select {
			case <-ctx.Done():
				return nil

			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if filepath.Base(event.Name) != base {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				log.Debug("source changed", zap.String("op", event.Op.String()))
				pending = time.After(opts.Debounce)

			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				log.Warn("watch error", zap.Error(err))

			case <-pending:
				pending = nil
				p.Blank()
				p.Notef("re-rendered at %s", time.Now().Format("15:04:05"))
				render()
			}
		}
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("watch %s: %w", opts.Path, err)
	}
	return nil
}
