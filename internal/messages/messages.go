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

// Package messages defines the messages exchanged by the view and the
// worker actors and the names they are registered under.
package messages

import "github.com/tochemey/counterakt/internal/terminal"

const (
	// ViewName is the registry name of the view actor
	ViewName = "app"
	// WorkerName is the registry name of the worker actor
	WorkerName = "counter"
)

// ViewMessage is a message handled by the view actor
type ViewMessage interface {
	viewMessage()
}

// Draw renders the current state
type Draw struct{}

// UpdateCount replaces the counter and triggers a redraw
type UpdateCount struct {
	Value uint8
}

// HandleKey carries a key press
type HandleKey struct {
	Event terminal.KeyEvent
}

// ShouldExit asks whether quitting was requested. The reply is a bool.
type ShouldExit struct{}

func (*Draw) viewMessage()        {}
func (*UpdateCount) viewMessage() {}
func (*HandleKey) viewMessage()   {}
func (*ShouldExit) viewMessage()  {}

// WorkerMessage is a message handled by the worker actor
type WorkerMessage interface {
	workerMessage()
}

// IncrementRequest asks for Current+1 to be delivered to the view once the
// computation completes.
type IncrementRequest struct {
	Current uint8
}

func (*IncrementRequest) workerMessage() {}
