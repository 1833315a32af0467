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
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderedLines(t *testing.T, out *bytes.Buffer) []string {
	t.Helper()
	plain := ansi.Strip(out.String())
	return strings.Split(plain, "\r\n")
}

func TestScreen(t *testing.T) {
	t.Run("With Open and Close", func(t *testing.T) {
		out := new(bytes.Buffer)
		screen := NewScreen(out, -1, WithSize(40, 6))

		require.NoError(t, screen.Open())
		assert.Contains(t, out.String(), ansi.SetAltScreenSaveCursorMode)
		assert.Contains(t, out.String(), ansi.HideCursor)

		out.Reset()
		require.NoError(t, screen.Close())
		assert.Contains(t, out.String(), ansi.ShowCursor)
		assert.Contains(t, out.String(), ansi.ResetAltScreenSaveCursorMode)
	})
	t.Run("With Render", func(t *testing.T) {
		out := new(bytes.Buffer)
		screen := NewScreen(out, -1, WithSize(60, 6))

		require.NoError(t, screen.Render(Frame{Counter: 42}))
		assert.True(t, strings.HasPrefix(out.String(), ansi.CursorHomePosition))

		lines := renderedLines(t, out)
		require.Len(t, lines, 6)
		for _, line := range lines {
			assert.Equal(t, 60, ansi.StringWidth(line))
		}

		assert.Contains(t, lines[0], "Counter App Tutorial")
		assert.True(t, strings.HasPrefix(lines[0], "┏"))
		assert.Contains(t, lines[1], "Value: 42")
		assert.Contains(t, lines[5], "Decrement <Left> Increment <Right> Quit <Q>")
		assert.True(t, strings.HasSuffix(lines[5], "┛"))
	})
	t.Run("With a narrow screen", func(t *testing.T) {
		out := new(bytes.Buffer)
		screen := NewScreen(out, -1, WithSize(12, 3))

		require.NoError(t, screen.Render(Frame{Counter: 255}))

		lines := renderedLines(t, out)
		require.Len(t, lines, 3)
		for _, line := range lines {
			assert.Equal(t, 12, ansi.StringWidth(line))
		}
	})
	t.Run("With an unknown size", func(t *testing.T) {
		out := new(bytes.Buffer)
		screen := NewScreen(out, -1)

		require.NoError(t, screen.Render(Frame{}))

		lines := renderedLines(t, out)
		require.Len(t, lines, defaultHeight)
		assert.Contains(t, lines[1], "Value: 0")
	})
}
