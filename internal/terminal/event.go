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

import "fmt"

// Event is a decoded terminal input
type Event interface {
	isEvent()
}

// KeyCode identifies the key of a KeyEvent
type KeyCode int

const (
	KeyRune KeyCode = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyEscape
	KeyEnter
)

var keyNames = map[KeyCode]string{
	KeyRune:   "Rune",
	KeyLeft:   "Left",
	KeyRight:  "Right",
	KeyUp:     "Up",
	KeyDown:   "Down",
	KeyEscape: "Esc",
	KeyEnter:  "Enter",
}

func (k KeyCode) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("KeyCode(%d)", int(k))
}

// KeyKind tells a press from a repeat or a release
type KeyKind int

const (
	KeyPress KeyKind = iota
	KeyRepeat
	KeyRelease
)

func (k KeyKind) String() string {
	switch k {
	case KeyPress:
		return "Press"
	case KeyRepeat:
		return "Repeat"
	case KeyRelease:
		return "Release"
	default:
		return fmt.Sprintf("KeyKind(%d)", int(k))
	}
}

// KeyEvent is a key action. Rune is only set for KeyRune.
type KeyEvent struct {
	Code KeyCode
	Rune rune
	Kind KeyKind
}

func (KeyEvent) isEvent() {}

// String renders the key the way it is shown in logs
func (k KeyEvent) String() string {
	if k.Code == KeyRune {
		return fmt.Sprintf("%q(%s)", k.Rune, k.Kind)
	}
	return fmt.Sprintf("%s(%s)", k.Code, k.Kind)
}

// Is reports whether k is a press of the given rune
func (k KeyEvent) Is(r rune) bool {
	return k.Code == KeyRune && k.Rune == r
}

// UnknownEvent holds bytes that do not decode to a key
type UnknownEvent struct {
	Raw []byte
}

func (UnknownEvent) isEvent() {}

func (u UnknownEvent) String() string {
	return fmt.Sprintf("Unknown(%q)", u.Raw)
}
