// Package filebuf demonstrates resource ownership across Go styles: close
// by hand on every path, deferred closes, close errors joined into the
// return, and guard-composed multi-resource lifecycles.
package filebuf

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Construction and access rules, one sentinel per violated precondition.
var (
	ErrEmptyFilename = errors.New("filename is empty")
	ErrBufferSize    = errors.New("buffer size must be positive")
	ErrBounds        = errors.New("sub-buffer out of range")
)

// sampleText is the corpus every rendition reads. 44 bytes.
const sampleText = "the quick brown fox jumps over the lazy dog\n"

// Processor owns an open data file and a fixed-size read buffer.
type Processor struct {
	name string
	f    *os.File
	buf  []byte
	n    int
}

// NewProcessor validates its preconditions, then acquires the file. The
// caller owns the Close.
func NewProcessor(name string, size int) (*Processor, error) {
	if name == "" {
		return nil, fmt.Errorf("new processor: %w", ErrEmptyFilename)
	}
	if size <= 0 {
		return nil, fmt.Errorf("new processor %s: %w", name, ErrBufferSize)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("new processor: %w", err)
	}
	return &Processor{name: name, f: f, buf: make([]byte, size)}, nil
}

// Process fills the buffer from the file. A file shorter than the buffer
// is fine; the valid prefix length is recorded.
func (p *Processor) Process() (int, error) {
	n, err := io.ReadFull(p.f, p.buf)
	if err == io.ErrUnexpectedEOF || err == io.EOF {
		err = nil
	}
	if err != nil {
		return 0, fmt.Errorf("process %s: %w", p.name, err)
	}
	p.n = n
	return n, nil
}

// Bytes returns the valid prefix read so far.
func (p *Processor) Bytes() []byte {
	return p.buf[:p.n]
}

// Size returns the buffer capacity.
func (p *Processor) Size() int {
	return len(p.buf)
}

// SubBuffer returns a bounded view of the buffer. Out-of-range requests
// are errors, not truncations.
func (p *Processor) SubBuffer(offset, length int) ([]byte, error) {
	if offset < 0 || length < 0 || offset+length > len(p.buf) {
		return nil, fmt.Errorf("sub-buffer [%d:%d) of %d: %w", offset, offset+length, len(p.buf), ErrBounds)
	}
	return p.buf[offset : offset+length : offset+length], nil
}

// Close releases the file. A second close reports the file as already
// closed, which the renditions put to work.
func (p *Processor) Close() error {
	return p.f.Close()
}

// sampleDir lays the demo corpus out in a throwaway directory.
func sampleDir(files map[string]string) (string, error) {
	dir, err := os.MkdirTemp("", "goidioms-filebuf-")
	if err != nil {
		return "", fmt.Errorf("create sample dir: %w", err)
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			os.RemoveAll(dir)
			return "", fmt.Errorf("write sample %s: %w", name, err)
		}
	}
	return dir, nil
}
