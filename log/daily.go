// MIT License
//
// Copyright (c) 2022-2026 GoAkt Team
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package log

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const dailyLayout = "2006-01-02"

// DailyWriter is an io.Writer that appends to <dir>/<prefix>.<YYYY-MM-DD>
// and switches to a new file when the local date changes.
//
// DailyWriter is safe for concurrent use.
type DailyWriter struct {
	mu     sync.Mutex
	dir    string
	prefix string
	now    func() time.Time
	day    string
	file   *os.File
}

// NewDailyWriter creates the directory when missing and returns a DailyWriter.
// The file itself is opened lazily on the first write.
func NewDailyWriter(dir, prefix string) (*DailyWriter, error) {
	if prefix == "" {
		return nil, fmt.Errorf("log: daily writer prefix is required")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("log: failed to create %s: %w", dir, err)
	}

	return &DailyWriter{
		dir:    dir,
		prefix: prefix,
		now:    time.Now,
	}, nil
}

// Write appends p to the file of the current day.
func (w *DailyWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	day := w.now().Format(dailyLayout)
	if w.file == nil || day != w.day {
		if err := w.rotate(day); err != nil {
			return 0, err
		}
	}
	return w.file.Write(p)
}

// Sync commits the current file to stable storage.
func (w *DailyWriter) Sync() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.file == nil {
		return nil
	}
	return w.file.Sync()
}

// Close closes the current file. A later Write reopens it.
func (w *DailyWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.file == nil {
		return nil
	}
	err := w.file.Close()
	w.file = nil
	return err
}

// Filename returns the path of the file entries written now would land in.
func (w *DailyWriter) Filename() string {
	return w.filename(w.now().Format(dailyLayout))
}

func (w *DailyWriter) filename(day string) string {
	return filepath.Join(w.dir, fmt.Sprintf("%s.%s", w.prefix, day))
}

// rotate must be called with mu held
func (w *DailyWriter) rotate(day string) error {
	if w.file != nil {
		if err := w.file.Close(); err != nil {
			return err
		}
		w.file = nil
	}

	file, err := os.OpenFile(w.filename(day), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}

	w.file = file
	w.day = day
	return nil
}
