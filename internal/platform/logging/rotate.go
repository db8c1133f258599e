package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// rotatingFile appends to a file and rotates it once it crosses maxSize
// bytes. Rotated files are renamed app.1.log, app.2.log, ... up to
// maxBackups; the oldest backup is dropped.
type rotatingFile struct {
	path       string
	maxSize    int
	maxBackups int

	mu   sync.Mutex
	file *os.File
	size int
}

func newRotatingFile(path string, maxSize, maxBackups int) (*rotatingFile, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}

	size := 0
	if info, err := f.Stat(); err == nil {
		size = int(info.Size())
	}

	return &rotatingFile{
		path:       path,
		maxSize:    maxSize,
		maxBackups: maxBackups,
		file:       f,
		size:       size,
	}, nil
}

func (r *rotatingFile) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.size+len(p) > r.maxSize && r.size > 0 {
		if err := r.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := r.file.Write(p)
	r.size += n
	return n, err
}

// rotate shifts app.4.log -> app.5.log, ..., app.log -> app.1.log and opens
// a fresh file. Anything past maxBackups is removed.
func (r *rotatingFile) rotate() error {
	if err := r.file.Close(); err != nil {
		return err
	}

	ext := filepath.Ext(r.path)
	base := strings.TrimSuffix(r.path, ext)

	last := fmt.Sprintf("%s.%d%s", base, r.maxBackups, ext)
	_ = os.Remove(last)

	for i := r.maxBackups - 1; i >= 1; i-- {
		from := fmt.Sprintf("%s.%d%s", base, i, ext)
		to := fmt.Sprintf("%s.%d%s", base, i+1, ext)
		if _, err := os.Stat(from); err == nil {
			_ = os.Rename(from, to)
		}
	}

	if err := os.Rename(r.path, fmt.Sprintf("%s.1%s", base, ext)); err != nil {
		return err
	}

	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	r.file = f
	r.size = 0
	return nil
}

func (r *rotatingFile) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.file.Close()
}
