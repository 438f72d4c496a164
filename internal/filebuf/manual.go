package filebuf

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"goidioms/internal/ux"
)

// readManual acquires, reads and releases with no defer in sight. Every
// exit path owns its own cleanup.
func readManual(path string, size int) ([]byte, error) {
	proc, err := NewProcessor(path, size)
	if err != nil {
		return nil, err
	}
	if _, err := proc.Process(); err != nil {
		proc.Close() // this line again, or the descriptor leaks
		return nil, err
	}
	data := append([]byte(nil), proc.Bytes()...)
	if err := proc.Close(); err != nil {
		return nil, fmt.Errorf("close %s: %w", path, err)
	}
	return data, nil
}

func runManual(ctx context.Context, p *ux.Printer) error {
	dir, err := sampleDir(map[string]string{"data.txt": sampleText})
	if err != nil {
		return err
	}
	path := filepath.Join(dir, "data.txt")

	data, err := readManual(path, 16)
	if err != nil {
		os.RemoveAll(dir) // every failure path repeats this
		return err
	}
	p.Resultf("read %d bytes by hand: %q", len(data), data)

	long, err := readManual(path, 128)
	if err != nil {
		os.RemoveAll(dir)
		return err
	}
	p.Resultf("a 128-byte buffer on a %d-byte file still reads cleanly: %d valid bytes", len(sampleText), len(long))

	if _, err := readManual(filepath.Join(dir, "absent.txt"), 16); err != nil {
		p.Failf("%v", err)
	}

	os.RemoveAll(dir) // the success path's copy of the same line

	p.Notef("readManual spells out Close on each exit path, and this function")
	p.Notef("spells out RemoveAll on each of its own. Miss one and a descriptor")
	p.Notef("or a file leaks; repeat one and a spurious error appears. Review is")
	p.Notef("the only check.")
	return nil
}
