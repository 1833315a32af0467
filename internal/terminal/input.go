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
	"sync"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
)

// EscapeTimeout is how long a lone ESC waits for the rest of a sequence
// before it is reported as the Escape key.
const EscapeTimeout = 50 * time.Millisecond

type chunk struct {
	data []byte
	err  error
}

// Input decodes key events from a raw-mode terminal.
//
// Reads happen on a background goroutine that lives until the reader returns
// an error, so ReadEvent can honour its context. Bytes of a sequence split
// across reads are kept until the sequence is complete.
type Input struct {
	reader    io.Reader
	parser    *ansi.Parser
	chunks    chan chunk
	done      chan struct{}
	once      sync.Once
	closeOnce sync.Once
	pending   []byte
	err       error
}

// NewInput creates an Input reading from r
func NewInput(r io.Reader) *Input {
	return &Input{
		reader: r,
		parser: ansi.NewParser(),
		chunks: make(chan chunk),
		done:   make(chan struct{}),
	}
}

// ReadEvent blocks until the next event is decoded, ctx is done or the
// reader fails.
func (in *Input) ReadEvent(ctx context.Context) (Event, error) {
	in.once.Do(func() { go in.pump() })

	expired := false
	for {
		if len(in.pending) > 0 {
			event, n, ok := in.decode(in.pending, expired || in.err != nil)
			if ok {
				if unknown, isUnknown := event.(UnknownEvent); isUnknown {
					unknown.Raw = append([]byte(nil), unknown.Raw...)
					event = unknown
				}
				in.pending = in.pending[n:]
				return event, nil
			}
		}

		if in.err != nil {
			return nil, in.err
		}

		var err error
		if expired, err = in.await(ctx); err != nil {
			return nil, err
		}
	}
}

// await receives the next chunk. With bytes pending it gives up after
// EscapeTimeout and reports expired.
func (in *Input) await(ctx context.Context) (expired bool, err error) {
	var timeout <-chan time.Time
	if len(in.pending) > 0 {
		timer := time.NewTimer(EscapeTimeout)
		defer timer.Stop()
		timeout = timer.C
	}

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case <-in.done:
		return false, io.EOF
	case <-timeout:
		return true, nil
	case c, ok := <-in.chunks:
		if !ok {
			return false, io.EOF
		}
		in.pending = append(in.pending, c.data...)
		in.err = c.err
		return false, nil
	}
}

// Close stops delivering events. A read already blocked on the underlying
// reader ends with that read.
func (in *Input) Close() error {
	in.closeOnce.Do(func() { close(in.done) })
	return nil
}

func (in *Input) pump() {
	defer close(in.chunks)

	buf := make([]byte, 256)
	for {
		n, err := in.reader.Read(buf)
		data := append([]byte(nil), buf[:n]...)
		if n > 0 || err != nil {
			select {
			case in.chunks <- chunk{data: data, err: err}:
			case <-in.done:
				return
			}
		}

		if err != nil {
			return
		}
	}
}

// decode returns the first event of b and the number of bytes it used.
// ok is false when b holds the start of a sequence only, unless final is
// set, in which case the partial bytes are reported as they are.
func (in *Input) decode(b []byte, final bool) (event Event, n int, ok bool) {
	if b[0] >= utf8.RuneSelf && !utf8.FullRune(b) {
		if !final {
			return nil, 0, false
		}
		return UnknownEvent{Raw: b}, len(b), true
	}

	seq, _, n, state := ansi.DecodeSequence(b, ansi.NormalState, in.parser)
	if n == 0 {
		return UnknownEvent{Raw: b[:1]}, 1, true
	}

	// SS3 keys: the decoder stops after ESC O
	if state == ansi.NormalState && len(seq) == 2 && seq[0] == ansi.ESC && seq[1] == 'O' {
		if len(b) < 3 {
			state = ansi.EscapeState
		} else {
			seq, n = b[:3], 3
			return cursorKey(seq, seq[2]), n, true
		}
	}

	if state != ansi.NormalState {
		if !final {
			return nil, 0, false
		}
		if len(b) == 1 {
			return KeyEvent{Code: KeyEscape, Kind: KeyPress}, 1, true
		}
		return UnknownEvent{Raw: b}, len(b), true
	}

	switch {
	case ansi.HasCsiPrefix(seq):
		// plain cursor keys only, modified ones carry parameters
		if len(seq) == 3 {
			return cursorKey(seq, ansi.Cmd(in.parser.Command()).Final()), n, true
		}
		return UnknownEvent{Raw: seq}, n, true
	case seq[0] == ansi.ESC && len(seq) == 1:
		return KeyEvent{Code: KeyEscape, Kind: KeyPress}, n, true
	case seq[0] == ansi.ESC:
		return UnknownEvent{Raw: seq}, n, true
	case seq[0] == '\r' || seq[0] == '\n':
		return KeyEvent{Code: KeyEnter, Kind: KeyPress}, n, true
	case len(seq) == 1 && (seq[0] < ' ' || seq[0] == ansi.DEL):
		return UnknownEvent{Raw: seq}, n, true
	}

	r, size := utf8.DecodeRune(seq)
	if r == utf8.RuneError || size != len(seq) {
		return UnknownEvent{Raw: seq}, n, true
	}
	return KeyEvent{Code: KeyRune, Rune: r, Kind: KeyPress}, n, true
}

func cursorKey(seq []byte, final byte) Event {
	switch final {
	case 'A':
		return KeyEvent{Code: KeyUp, Kind: KeyPress}
	case 'B':
		return KeyEvent{Code: KeyDown, Kind: KeyPress}
	case 'C':
		return KeyEvent{Code: KeyRight, Kind: KeyPress}
	case 'D':
		return KeyEvent{Code: KeyLeft, Kind: KeyPress}
	default:
		return UnknownEvent{Raw: seq}
	}
}
