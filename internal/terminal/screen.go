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

package terminal

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"
)

// ScreenOption configures a Screen
type ScreenOption func(*Screen)

// WithSize fixes the size of the screen instead of probing the terminal
func WithSize(width, height int) ScreenOption {
	return func(s *Screen) {
		s.size = func() (int, int, error) {
			return width, height, nil
		}
	}
}

// Screen renders frames full screen on a terminal.
// Screen is not safe for concurrent use; its owner serializes access.
type Screen struct {
	out    io.Writer
	fd     int
	state  *term.State
	styles styles
	size   func() (int, int, error)
}

// NewScreen creates a Screen writing to out. fd is the terminal put in raw
// mode on Open; a descriptor that is not a terminal is left untouched.
func NewScreen(out io.Writer, fd int, opts ...ScreenOption) *Screen {
	screen := &Screen{
		out:    out,
		fd:     fd,
		styles: newStyles(lipgloss.NewRenderer(out)),
	}

	screen.size = func() (int, int, error) {
		return term.GetSize(screen.fd)
	}

	for _, opt := range opts {
		opt(screen)
	}
	return screen
}

// Open enters raw mode and the alternate screen and hides the cursor
func (s *Screen) Open() error {
	if term.IsTerminal(s.fd) {
		state, err := term.MakeRaw(s.fd)
		if err != nil {
			return err
		}
		s.state = state
	}

	_, err := io.WriteString(s.out, ansi.SetAltScreenSaveCursorMode+ansi.HideCursor+ansi.EraseEntireScreen)
	return err
}

// Close restores the terminal as it was before Open
func (s *Screen) Close() error {
	_, err := io.WriteString(s.out, ansi.ShowCursor+ansi.ResetAltScreenSaveCursorMode)
	if s.state != nil {
		if rerr := term.Restore(s.fd, s.state); rerr != nil && err == nil {
			err = rerr
		}
		s.state = nil
	}
	return err
}

// Render draws frame over the whole screen. The size is probed on every
// call so a resized terminal is picked up on the next draw.
func (s *Screen) Render(frame Frame) error {
	width, height, err := s.size()
	if err != nil || width <= 0 || height <= 0 {
		width, height = defaultWidth, defaultHeight
	}

	// raw mode disables the output carriage return translation
	view := strings.ReplaceAll(s.styles.view(frame, width, height), "\n", "\r\n")
	_, err = io.WriteString(s.out, ansi.CursorHomePosition+view)
	return err
}
