package filebuf

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"goidioms/internal/ux"
)

// drainJoined folds the close error into the named return. Neither a
// read failure nor a close failure can mask the other.
func drainJoined(proc *Processor) (data []byte, err error) {
	defer func() {
		err = errors.Join(err, proc.Close())
	}()

	if _, err := proc.Process(); err != nil {
		return nil, err
	}
	return append([]byte(nil), proc.Bytes()...), nil
}

func runJoined(ctx context.Context, p *ux.Printer) error {
	dir, err := sampleDir(map[string]string{"data.txt": sampleText})
	if err != nil {
		return err
	}
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "data.txt")

	proc, err := NewProcessor(path, 16)
	if err != nil {
		return err
	}
	data, err := drainJoined(proc)
	if err != nil {
		return fmt.Errorf("clean drain should succeed: %w", err)
	}
	p.Resultf("read %q with the close folded into the return", data)

	// Sabotage: hand drainJoined a processor whose file is already
	// closed, so both the read and the deferred close fail.
	hurt, err := NewProcessor(path, 16)
	if err != nil {
		return err
	}
	if err := hurt.Close(); err != nil {
		return err
	}
	_, err = drainJoined(hurt)
	if err == nil {
		return errors.New("draining a closed processor should fail")
	}
	p.Failf("both failures surfaced together:")
	for _, line := range strings.Split(err.Error(), "\n") {
		p.Bulletf("%s", line)
	}
	p.Stepf("errors.Is(err, os.ErrClosed) = %t", errors.Is(err, os.ErrClosed))

	p.Notef("Before errors.Join the choice was to lose the close error or to")
	p.Notef("let it mask the real one. A named result and one deferred line")
	p.Notef("carry both. The pattern earns its keep on writes, where Close is")
	p.Notef("when the data actually lands.")
	return nil
}
