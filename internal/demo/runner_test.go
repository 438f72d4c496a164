package demo

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goidioms/internal/goversion"
	"goidioms/internal/ux"
)

// scriptedDemo builds a demo whose variants append their IDs to ran and
// return the scripted error (or panic when the script says so).
func scriptedDemo(name string, ran *[]string, script map[string]error, panics map[string]bool) Demo {
	ids := []string{"classic", "wrapped", "generic"}
	d := Demo{Name: name, Title: "Demo " + name}
	for i, id := range ids {
		d.Variants = append(d.Variants, Variant{
			ID:    id,
			Title: id + " rendition",
			Since: goversion.V(1, 13+4*i),
			Run: func(ctx context.Context, p *ux.Printer) error {
				*ran = append(*ran, name+"/"+id)
				if panics[id] {
					panic("scripted panic")
				}
				p.Resultf("%s ran", id)
				return script[id]
			},
		})
	}
	return d
}

func newTestRunner(t *testing.T, demos ...Demo) (*Runner, *bytes.Buffer) {
	t.Helper()
	reg := NewRegistry()
	for _, d := range demos {
		require.NoError(t, reg.Register(d))
	}
	var buf bytes.Buffer
	return NewRunner(reg, Options{Printer: ux.NewPlainPrinter(&buf)}), &buf
}

func TestRunDemo(t *testing.T) {
	var ran []string
	r, buf := newTestRunner(t, scriptedDemo("lookup", &ran, nil, nil))

	report, err := r.RunDemo(context.Background(), "lookup", Filter{})
	require.NoError(t, err)

	assert.Equal(t, []string{"lookup/classic", "lookup/wrapped", "lookup/generic"}, ran)
	assert.Len(t, report.Results, 3)
	assert.Zero(t, report.Failures())
	assert.NoError(t, uuid.Validate(report.RunID))

	out := buf.String()
	assert.Contains(t, out, "Demo lookup")
	assert.Contains(t, out, "[go1.13] classic rendition")
	assert.Contains(t, out, "3 variants completed")
}

func TestRunDemoEraFilter(t *testing.T) {
	var ran []string
	r, _ := newTestRunner(t, scriptedDemo("lookup", &ran, nil, nil))

	report, err := r.RunDemo(context.Background(), "lookup", Filter{Eras: []string{"wrapped"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"lookup/wrapped"}, ran)
	assert.Len(t, report.Results, 1)
}

// The era flag repeats; selection keeps the demo's own order.
func TestRunDemoMultipleEras(t *testing.T) {
	var ran []string
	r, _ := newTestRunner(t, scriptedDemo("lookup", &ran, nil, nil))

	report, err := r.RunDemo(context.Background(), "lookup", Filter{Eras: []string{"generic", "classic"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"lookup/classic", "lookup/generic"}, ran)
	assert.Len(t, report.Results, 2)
}

func TestRunDemoSinceFilter(t *testing.T) {
	var ran []string
	r, _ := newTestRunner(t, scriptedDemo("lookup", &ran, nil, nil))

	// Variants sit at go1.13, go1.17, go1.21.
	_, err := r.RunDemo(context.Background(), "lookup", Filter{Since: goversion.V(1, 17)})
	require.NoError(t, err)
	assert.Equal(t, []string{"lookup/wrapped", "lookup/generic"}, ran)
}

func TestRunDemoUnknown(t *testing.T) {
	var ran []string
	r, _ := newTestRunner(t, scriptedDemo("lookup", &ran, nil, nil))

	_, err := r.RunDemo(context.Background(), "nope", Filter{})
	require.ErrorIs(t, err, ErrUnknownDemo)

	_, err = r.RunDemo(context.Background(), "lookup", Filter{Eras: []string{"baroque"}})
	require.ErrorIs(t, err, ErrUnknownVariant)
	assert.Empty(t, ran, "nothing should run on a bad era")
}

func TestRunDemoFilterMatchesNothing(t *testing.T) {
	var ran []string
	r, _ := newTestRunner(t, scriptedDemo("lookup", &ran, nil, nil))

	_, err := r.RunDemo(context.Background(), "lookup", Filter{Since: goversion.V(1, 99)})
	require.ErrorIs(t, err, ErrNoMatch)
}

func TestRunDemoIsolatesFailures(t *testing.T) {
	sentinel := errors.New("boom")
	var ran []string
	r, buf := newTestRunner(t, scriptedDemo("lookup", &ran, map[string]error{"wrapped": sentinel}, nil))

	report, err := r.RunDemo(context.Background(), "lookup", Filter{})
	require.NoError(t, err, "variant failures belong to the report")
	assert.ErrorIs(t, report.Err(), sentinel)

	// The failure did not stop the later variant.
	assert.Equal(t, []string{"lookup/classic", "lookup/wrapped", "lookup/generic"}, ran)
	assert.Equal(t, 1, report.Failures())
	assert.Contains(t, buf.String(), "1 of 3 variants failed")
}

func TestRunDemoFailFast(t *testing.T) {
	sentinel := errors.New("boom")
	var ran []string
	reg := NewRegistry()
	require.NoError(t, reg.Register(scriptedDemo("lookup", &ran, map[string]error{"wrapped": sentinel}, nil)))
	var buf bytes.Buffer
	r := NewRunner(reg, Options{Printer: ux.NewPlainPrinter(&buf), FailFast: true})

	_, err := r.RunDemo(context.Background(), "lookup", Filter{})
	require.ErrorIs(t, err, sentinel)
	assert.Equal(t, []string{"lookup/classic", "lookup/wrapped"}, ran, "fail-fast stops before the third variant")
}

func TestRunDemoRecoversPanic(t *testing.T) {
	var ran []string
	r, _ := newTestRunner(t, scriptedDemo("lookup", &ran, nil, map[string]bool{"classic": true}))

	report, err := r.RunDemo(context.Background(), "lookup", Filter{})
	require.NoError(t, err)
	require.Error(t, report.Err())
	assert.Contains(t, report.Err().Error(), "panicked")
	assert.Len(t, report.Results, 3, "the panic is contained and the run continues")
	assert.NoError(t, report.Results[1].Err)
}

func TestRunAll(t *testing.T) {
	var ran []string
	r, buf := newTestRunner(t,
		scriptedDemo("lookup", &ran, nil, nil),
		scriptedDemo("catalog", &ran, nil, nil))

	report, err := r.RunAll(context.Background(), Filter{})
	require.NoError(t, err)
	assert.Len(t, report.Results, 6)
	assert.Equal(t, "lookup/classic", ran[0], "demos run in registration order")
	assert.Equal(t, "catalog/classic", ran[3])
	assert.Contains(t, buf.String(), "6 variants completed")
}

func TestRunAllEraAcrossDemos(t *testing.T) {
	var ran []string
	r, _ := newTestRunner(t,
		scriptedDemo("lookup", &ran, nil, nil),
		scriptedDemo("catalog", &ran, nil, nil))

	report, err := r.RunAll(context.Background(), Filter{Eras: []string{"generic"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"lookup/generic", "catalog/generic"}, ran)
	assert.Len(t, report.Results, 2)

	_, err = r.RunAll(context.Background(), Filter{Eras: []string{"baroque"}})
	require.ErrorIs(t, err, ErrUnknownVariant)

	// A typo fails even when another requested era matches.
	ran = ran[:0]
	_, err = r.RunAll(context.Background(), Filter{Eras: []string{"generic", "baroque"}})
	require.ErrorIs(t, err, ErrUnknownVariant)
	assert.Empty(t, ran)
}

func TestRunAllHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var ran []string
	d := Demo{
		Name:  "lookup",
		Title: "Demo lookup",
		Variants: []Variant{
			{ID: "first", Title: "first", Since: goversion.V(1, 13), Run: func(ctx context.Context, p *ux.Printer) error {
				ran = append(ran, "first")
				cancel()
				return nil
			}},
			{ID: "second", Title: "second", Since: goversion.V(1, 18), Run: func(ctx context.Context, p *ux.Printer) error {
				ran = append(ran, "second")
				return nil
			}},
		},
	}
	reg := NewRegistry()
	require.NoError(t, reg.Register(d))
	var buf bytes.Buffer
	r := NewRunner(reg, Options{Printer: ux.NewPlainPrinter(&buf)})

	_, err := r.RunAll(ctx, Filter{})
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []string{"first"}, ran)
}

func TestRunnerTimeout(t *testing.T) {
	d := Demo{
		Name:  "slow",
		Title: "Demo slow",
		Variants: []Variant{
			{ID: "block", Title: "block", Since: goversion.V(1, 13), Run: func(ctx context.Context, p *ux.Printer) error {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case <-time.After(5 * time.Second):
					return nil
				}
			}},
		},
	}
	reg := NewRegistry()
	require.NoError(t, reg.Register(d))
	var buf bytes.Buffer
	r := NewRunner(reg, Options{Printer: ux.NewPlainPrinter(&buf), Timeout: 5 * time.Millisecond})

	report, err := r.RunDemo(context.Background(), "slow", Filter{})
	require.NoError(t, err, "a per-variant timeout is a variant failure, not an abort")
	assert.ErrorIs(t, report.Err(), context.DeadlineExceeded)
	assert.Equal(t, 1, report.Failures())
}

func TestReportErrJoinsFailures(t *testing.T) {
	errA, errB := errors.New("a"), errors.New("b")
	report := &Report{Results: []VariantResult{
		{Demo: "d", Variant: "x", Err: errA},
		{Demo: "d", Variant: "y"},
		{Demo: "d", Variant: "z", Err: errB},
	}}

	err := report.Err()
	require.Error(t, err)
	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errB)
	assert.True(t, strings.Contains(err.Error(), "d/x") && strings.Contains(err.Error(), "d/z"))

	clean := &Report{Results: []VariantResult{{Demo: "d", Variant: "x"}}}
	assert.NoError(t, clean.Err())
}
