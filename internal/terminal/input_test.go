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
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestInputReadEvent(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected []Event
	}{
		{
			name:  "arrow keys",
			input: "\x1b[D\x1b[C\x1b[A\x1b[B",
			expected: []Event{
				KeyEvent{Code: KeyLeft, Kind: KeyPress},
				KeyEvent{Code: KeyRight, Kind: KeyPress},
				KeyEvent{Code: KeyUp, Kind: KeyPress},
				KeyEvent{Code: KeyDown, Kind: KeyPress},
			},
		},
		{
			name:  "application cursor keys",
			input: "\x1bOD\x1bOC",
			expected: []Event{
				KeyEvent{Code: KeyLeft, Kind: KeyPress},
				KeyEvent{Code: KeyRight, Kind: KeyPress},
			},
		},
		{
			name:  "runes",
			input: "qé",
			expected: []Event{
				KeyEvent{Code: KeyRune, Rune: 'q', Kind: KeyPress},
				KeyEvent{Code: KeyRune, Rune: 'é', Kind: KeyPress},
			},
		},
		{
			name:  "enter and escape",
			input: "\r\x1b",
			expected: []Event{
				KeyEvent{Code: KeyEnter, Kind: KeyPress},
				KeyEvent{Code: KeyEscape, Kind: KeyPress},
			},
		},
		{
			name:  "unknown sequences",
			input: "\x1b[1;2D\x01q",
			expected: []Event{
				UnknownEvent{Raw: []byte("\x1b[1;2D")},
				UnknownEvent{Raw: []byte{0x01}},
				KeyEvent{Code: KeyRune, Rune: 'q', Kind: KeyPress},
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			in := NewInput(strings.NewReader(tc.input))

			for _, expected := range tc.expected {
				event, err := in.ReadEvent(ctx)
				require.NoError(t, err)
				assert.Equal(t, expected, event)
			}

			_, err := in.ReadEvent(ctx)
			require.ErrorIs(t, err, io.EOF)
		})
	}
}

func TestInputCancellation(t *testing.T) {
	reader, writer := io.Pipe()
	in := NewInput(reader)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := in.ReadEvent(ctx)
	require.ErrorIs(t, err, context.Canceled)

	require.NoError(t, in.Close())
	require.NoError(t, writer.Close())

	_, err = in.ReadEvent(context.Background())
	require.ErrorIs(t, err, io.EOF)
}

func TestInputAcrossReads(t *testing.T) {
	reader, writer := io.Pipe()
	in := NewInput(reader)
	ctx := context.Background()

	go func() {
		_, _ = writer.Write([]byte("\x1b[D"))
		_, _ = writer.Write([]byte("q"))
		_ = writer.Close()
	}()

	event, err := in.ReadEvent(ctx)
	require.NoError(t, err)
	assert.Equal(t, KeyEvent{Code: KeyLeft, Kind: KeyPress}, event)

	event, err = in.ReadEvent(ctx)
	require.NoError(t, err)
	assert.True(t, event.(KeyEvent).Is('q'))

	_, err = in.ReadEvent(ctx)
	require.ErrorIs(t, err, io.EOF)
}

func TestInputSequenceSplitAcrossReads(t *testing.T) {
	testCases := []struct {
		name     string
		chunks   []string
		expected Event
	}{
		{name: "CSI left", chunks: []string{"\x1b[", "D"}, expected: KeyEvent{Code: KeyLeft, Kind: KeyPress}},
		{name: "ESC then CSI right", chunks: []string{"\x1b", "[C"}, expected: KeyEvent{Code: KeyRight, Kind: KeyPress}},
		{name: "SS3 left", chunks: []string{"\x1bO", "D"}, expected: KeyEvent{Code: KeyLeft, Kind: KeyPress}},
		{name: "multibyte rune", chunks: []string{"\xc3", "\xa9"}, expected: KeyEvent{Code: KeyRune, Rune: 'é', Kind: KeyPress}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			reader, writer := io.Pipe()
			in := NewInput(reader)
			ctx := context.Background()

			go func() {
				for _, chunk := range tc.chunks {
					_, _ = writer.Write([]byte(chunk))
				}
				_ = writer.Close()
			}()

			event, err := in.ReadEvent(ctx)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, event)

			_, err = in.ReadEvent(ctx)
			require.ErrorIs(t, err, io.EOF)
		})
	}
}

func TestInputLoneEscape(t *testing.T) {
	reader, writer := io.Pipe()
	in := NewInput(reader)
	ctx := context.Background()

	written := make(chan struct{})
	go func() {
		_, _ = writer.Write([]byte("\x1b"))
		<-written
		_, _ = writer.Write([]byte("q"))
		_ = writer.Close()
	}()

	start := time.Now()
	event, err := in.ReadEvent(ctx)
	require.NoError(t, err)
	assert.Equal(t, KeyEvent{Code: KeyEscape, Kind: KeyPress}, event)
	assert.GreaterOrEqual(t, time.Since(start), EscapeTimeout)
	close(written)

	event, err = in.ReadEvent(ctx)
	require.NoError(t, err)
	assert.True(t, event.(KeyEvent).Is('q'))

	_, err = in.ReadEvent(ctx)
	require.ErrorIs(t, err, io.EOF)
}

func TestInputPartialSequenceAtEOF(t *testing.T) {
	in := NewInput(strings.NewReader("\x1b["))

	event, err := in.ReadEvent(context.Background())
	require.NoError(t, err)
	assert.Equal(t, UnknownEvent{Raw: []byte("\x1b[")}, event)

	_, err = in.ReadEvent(context.Background())
	require.ErrorIs(t, err, io.EOF)
}

func TestKeyEventString(t *testing.T) {
	assert.Equal(t, "Left(Press)", KeyEvent{Code: KeyLeft}.String())
	assert.Equal(t, "'q'(Release)", KeyEvent{Code: KeyRune, Rune: 'q', Kind: KeyRelease}.String())
	assert.Equal(t, `Unknown("\x01")`, UnknownEvent{Raw: []byte{0x01}}.String())
}
