package demo

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"goidioms/internal/goversion"
	"goidioms/internal/logging"
	"goidioms/internal/ux"
)

// ErrNoMatch reports a filter that selected nothing.
var ErrNoMatch = errors.New("no variants match the filter")

// Filter selects which variants of a demo to run.
type Filter struct {
	// Eras keeps only variants with these slugs. Empty keeps all.
	Eras []string

	// Since keeps only variants introduced at or after this release.
	// The zero version keeps all.
	Since goversion.Version
}

func (f Filter) keeps(v Variant) bool {
	if len(f.Eras) > 0 && !slices.Contains(f.Eras, v.ID) {
		return false
	}
	if !f.Since.IsZero() && !v.Since.AtLeast(f.Since) {
		return false
	}
	return true
}

// VariantResult records one executed variant.
type VariantResult struct {
	Demo    string
	Variant string
	Since   goversion.Version
	Elapsed time.Duration
	Err     error
}

// Report aggregates the results of a run.
type Report struct {
	RunID   string
	Results []VariantResult
}

// Failures counts the failed variants.
func (r *Report) Failures() int {
	n := 0
	for _, res := range r.Results {
		if res.Err != nil {
			n++
		}
	}
	return n
}

// Err joins all variant failures into one error, nil when the run was clean.
func (r *Report) Err() error {
	var errs []error
	for _, res := range r.Results {
		if res.Err != nil {
			errs = append(errs, fmt.Errorf("%s/%s: %w", res.Demo, res.Variant, res.Err))
		}
	}
	return errors.Join(errs...)
}

// Options configures a Runner.
type Options struct {
	// Printer receives the demo narration. Required.
	Printer *ux.Printer

	// Timeout bounds each variant run. Zero means unbounded.
	Timeout time.Duration

	// FailFast aborts the run at the first failing variant instead of
	// carrying on and reporting all failures at the end.
	FailFast bool
}

// Runner executes demos against a printer and logs their lifecycle.
type Runner struct {
	reg      *Registry
	printer  *ux.Printer
	log      *zap.Logger
	timeout  time.Duration
	failFast bool
}

// NewRunner returns a runner over the given registry.
func NewRunner(reg *Registry, opts Options) *Runner {
	return &Runner{
		reg:      reg,
		printer:  opts.Printer,
		log:      logging.Get(logging.CategoryRunner),
		timeout:  opts.Timeout,
		failFast: opts.FailFast,
	}
}

// RunDemo executes one demo's variants, filtered by f.
// Variant failures land in the report, not the returned error; the error is
// non-nil only for unknown names, empty filters, cancellation, or a
// fail-fast abort. Callers wanting a single error join in report.Err().
func (r *Runner) RunDemo(ctx context.Context, name string, f Filter) (*Report, error) {
	d, ok := r.reg.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDemo, name)
	}
	for _, era := range f.Eras {
		if _, ok := d.Variant(era); !ok {
			return nil, fmt.Errorf("%w: demo %q has no era %q (have %v)",
				ErrUnknownVariant, name, era, d.VariantIDs())
		}
	}

	report := &Report{RunID: uuid.NewString()}
	if err := r.runDemo(ctx, report, d, f); err != nil {
		return report, err
	}
	if len(report.Results) == 0 {
		return report, fmt.Errorf("%w: demo %q", ErrNoMatch, name)
	}
	r.summarize(report)
	return report, nil
}

// RunAll executes every registered demo in registration order. The error
// contract matches RunDemo: variant failures live in the report.
func (r *Runner) RunAll(ctx context.Context, f Filter) (*Report, error) {
	// A demo missing a requested era is just skipped, so a typo would
	// otherwise pass silently whenever another era still matches.
	known := r.reg.Eras()
	for _, era := range f.Eras {
		if !slices.Contains(known, era) {
			return nil, fmt.Errorf("%w: no demo has an era %q (have %v)",
				ErrUnknownVariant, era, known)
		}
	}

	report := &Report{RunID: uuid.NewString()}
	r.log.Info("run starting",
		zap.String("run_id", report.RunID),
		zap.Int("demos", r.reg.Len()))

	for _, d := range r.reg.Demos() {
		if err := r.runDemo(ctx, report, d, f); err != nil {
			return report, err
		}
	}
	if len(report.Results) == 0 {
		return report, ErrNoMatch
	}
	r.summarize(report)
	return report, nil
}

func (r *Runner) runDemo(ctx context.Context, report *Report, d Demo, f Filter) error {
	var selected []Variant
	for _, v := range d.Variants {
		if f.keeps(v) {
			selected = append(selected, v)
		}
	}
	if len(selected) == 0 {
		r.log.Debug("demo skipped by filter", zap.String("demo", d.Name))
		return nil
	}

	p := r.printer
	p.Section(d.Title)
	if d.Summary != "" {
		p.Notef("%s", d.Summary)
	}

	for _, v := range selected {
		if err := ctx.Err(); err != nil {
			return err
		}
		res := r.runVariant(ctx, report.RunID, d, v)
		report.Results = append(report.Results, res)
		if res.Err != nil {
			p.Failf("%s (%s) failed: %v", v.ID, v.Since, res.Err)
			if r.failFast {
				return fmt.Errorf("%s/%s: %w", d.Name, v.ID, res.Err)
			}
		}
	}
	return nil
}

func (r *Runner) runVariant(ctx context.Context, runID string, d Demo, v Variant) VariantResult {
	log := logging.Get(logging.CategoryDemo).With(
		zap.String("run_id", runID),
		zap.String("demo", d.Name),
		zap.String("variant", v.ID),
		zap.Stringer("since", v.Since))
	log.Debug("variant starting")

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	r.printer.Section(fmt.Sprintf("[%s] %s", v.Since, v.Title))

	start := time.Now()
	err := runProtected(ctx, v, r.printer)
	elapsed := time.Since(start)

	if err != nil {
		log.Error("variant failed", zap.Error(err), zap.Duration("elapsed", elapsed))
	} else {
		log.Info("variant completed", zap.Duration("elapsed", elapsed))
	}

	return VariantResult{
		Demo:    d.Name,
		Variant: v.ID,
		Since:   v.Since,
		Elapsed: elapsed,
		Err:     err,
	}
}

// runProtected converts a panicking variant into an error so one broken
// rendition cannot take down the rest of the run.
func runProtected(ctx context.Context, v Variant, p *ux.Printer) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("variant panicked: %v", rec)
		}
	}()
	return v.Run(ctx, p)
}

func (r *Runner) summarize(report *Report) {
	p := r.printer
	p.Blank()
	if n := report.Failures(); n > 0 {
		p.Failf("%d of %d variants failed (run %s)", n, len(report.Results), report.RunID)
		return
	}
	p.Resultf("%d variants completed (run %s)", len(report.Results), report.RunID)
}
