// Package textio reads and writes the plain text files a correction pass
// works on.
package textio

import (
	"bufio"
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"
)

// ReadFile returns the contents of path byte for byte. Non-empty files are
// memory mapped.
func ReadFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("textio: open %s: %w", path, err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("textio: stat %s: %w", path, err)
	}
	if fi.IsDir() {
		return "", fmt.Errorf("textio: %s is a directory", path)
	}
	if fi.Size() == 0 {
		// zero-length mappings are rejected by the OS
		return "", nil
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return "", fmt.Errorf("textio: mmap %s: %w", path, err)
	}
	text := string(m)
	if err := m.Unmap(); err != nil {
		return "", fmt.Errorf("textio: unmap %s: %w", path, err)
	}
	return text, nil
}

// File is a buffered output file. Close must be called to flush it.
type File struct {
	f *os.File
	w *bufio.Writer
}

func Create(path string) (*File, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("textio: create %s: %w", path, err)
	}
	return &File{f: f, w: bufio.NewWriter(f)}, nil
}

func (o *File) Write(p []byte) (int, error) { return o.w.Write(p) }

func (o *File) WriteString(s string) (int, error) { return o.w.WriteString(s) }

func (o *File) Name() string { return o.f.Name() }

// Close flushes buffered output and closes the file.
func (o *File) Close() error {
	ferr := o.w.Flush()
	cerr := o.f.Close()
	if ferr != nil {
		return fmt.Errorf("textio: flush %s: %w", o.f.Name(), ferr)
	}
	if cerr != nil {
		return fmt.Errorf("textio: close %s: %w", o.f.Name(), cerr)
	}
	return nil
}
