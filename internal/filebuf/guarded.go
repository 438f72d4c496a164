package filebuf

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"goidioms/internal/ux"
)

// Guard collects cleanup funcs as resources are acquired.
type Guard struct {
	cleanups []func() error
	done     bool
}

// Add registers a cleanup to run on Release.
func (g *Guard) Add(fn func() error) {
	g.cleanups = append(g.cleanups, fn)
}

// Release runs the cleanups newest-first and reports every failure.
// Only the first call does work.
func (g *Guard) Release() error {
	if g.done {
		return nil
	}
	g.done = true
	var errs []error
	for i := len(g.cleanups) - 1; i >= 0; i-- {
		if err := g.cleanups[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Close lets a Guard ride a defer while an explicit Release stays
// possible; whichever runs first wins.
func (g *Guard) Close() error {
	return g.Release()
}

// newProcessorCtx refuses to acquire once ctx is done.
func newProcessorCtx(ctx context.Context, name string, size int) (*Processor, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("acquire %s: %w", name, err)
	}
	return NewProcessor(name, size)
}

// Manager owns one processor per file and releases them as a unit.
type Manager struct {
	procs []*Processor
	guard Guard
}

// NewManager acquires processors in order, checking ctx between
// acquisitions. Any failure releases everything acquired so far.
func NewManager(ctx context.Context, size int, names ...string) (*Manager, error) {
	m := &Manager{}
	for _, name := range names {
		proc, err := newProcessorCtx(ctx, name, size)
		if err != nil {
			return nil, errors.Join(err, m.guard.Release())
		}
		m.procs = append(m.procs, proc)
		m.guard.Add(proc.Close)
	}
	return m, nil
}

// Close releases every processor, newest-first.
func (m *Manager) Close() error {
	return m.guard.Release()
}

func runGuarded(ctx context.Context, p *ux.Printer) error {
	dir, err := sampleDir(map[string]string{
		"data.txt":  sampleText,
		"alpha.txt": "alpha\n",
		"beta.txt":  "beta\n",
		"gamma.txt": "gamma\n",
	})
	if err != nil {
		return err
	}
	defer os.RemoveAll(dir)

	p.Stepf("a guard releases newest-first:")
	var g Guard
	for _, name := range []string{"alpha", "beta", "gamma"} {
		g.Add(func() error {
			p.Bulletf("released %s", name)
			return nil
		})
	}
	if err := g.Release(); err != nil {
		return err
	}

	m, err := NewManager(ctx, 8,
		filepath.Join(dir, "alpha.txt"),
		filepath.Join(dir, "beta.txt"),
		filepath.Join(dir, "gamma.txt"))
	if err != nil {
		return err
	}
	p.Resultf("manager acquired %d processors behind one guard", len(m.procs))
	if err := m.Close(); err != nil {
		return err
	}
	if err := m.Close(); err != nil {
		return err
	}
	p.Stepf("closing the manager twice is a no-op, not an error")

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = NewManager(canceled, 8, filepath.Join(dir, "alpha.txt"))
	if !errors.Is(err, context.Canceled) {
		return fmt.Errorf("canceled acquisition should fail, got: %v", err)
	}
	p.Failf("%v", err)

	// Bounded views of the buffer instead of bare slicing.
	proc, err := newProcessorCtx(ctx, filepath.Join(dir, "data.txt"), 32)
	if err != nil {
		return err
	}
	defer proc.Close()
	if _, err := proc.Process(); err != nil {
		return err
	}
	head, err := proc.SubBuffer(0, 9)
	if err != nil {
		return err
	}
	p.Resultf("SubBuffer(0, 9) = %q", head)
	_, err = proc.SubBuffer(24, 16)
	if err == nil {
		return errors.New("out-of-range sub-buffer should fail")
	}
	p.Failf("%v", err)
	if _, err := proc.SubBuffer(-1, 4); err != nil {
		p.Failf("%v", err)
	}

	p.Stepf("construction errors, one per violated rule:")
	if _, err := NewProcessor("", 8); errors.Is(err, ErrEmptyFilename) {
		p.Bulletf("%v", err)
	}
	if _, err := NewProcessor(filepath.Join(dir, "data.txt"), 0); errors.Is(err, ErrBufferSize) {
		p.Bulletf("%v", err)
	}
	if _, err := NewProcessor(filepath.Join(dir, "absent.txt"), 8); err != nil {
		p.Bulletf("%v", err)
	}

	p.Notef("The guard scales where stacked defers cannot: acquisitions can")
	p.Notef("happen in loops or helpers, release order stays newest-first,")
	p.Notef("every close error is kept, and a second Release is a no-op. The")
	p.Notef("constructor checks its preconditions instead of documenting them.")
	return nil
}
