package filebuf

import (
	"context"
	"os"
	"path/filepath"

	"goidioms/internal/ux"
)

// readDeferred pairs the acquisition with a release on the next line.
// The deferred Close discards its error, which is the price.
func readDeferred(path string, size int) ([]byte, error) {
	proc, err := NewProcessor(path, size)
	if err != nil {
		return nil, err
	}
	defer proc.Close()

	if _, err := proc.Process(); err != nil {
		return nil, err
	}
	return append([]byte(nil), proc.Bytes()...), nil
}

func runDeferred(ctx context.Context, p *ux.Printer) error {
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

	data, err := readDeferred(filepath.Join(dir, "data.txt"), 16)
	if err != nil {
		return err
	}
	p.Resultf("read %q with the release pinned to the acquisition", data)

	p.Stepf("three processors, released in reverse by stacked defers:")
	err = func() error {
		for _, name := range []string{"alpha.txt", "beta.txt", "gamma.txt"} {
			proc, err := NewProcessor(filepath.Join(dir, name), 8)
			if err != nil {
				return err
			}
			defer func(name string, proc *Processor) {
				proc.Close()
				p.Bulletf("released %s", name)
			}(name, proc)
			p.Bulletf("acquired %s", name)
		}
		return nil
	}()
	if err != nil {
		return err
	}

	p.Notef("defer puts the release on the line after the acquisition and runs")
	p.Notef("it on every return and every panic. Two gaps remain: defers in a")
	p.Notef("loop need their own function scope to run before the loop's caller")
	p.Notef("moves on, and a bare deferred Close throws its error away.")
	return nil
}
