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

// Package view implements the actor owning the interactive session state and
// the display surface.
package view

import (
	"context"
	"sync"

	"github.com/tochemey/counterakt/actor"
	"github.com/tochemey/counterakt/internal/messages"
	"github.com/tochemey/counterakt/internal/terminal"
	"github.com/tochemey/counterakt/log"
)

// Surface renders frames. It is only used by the view actor.
type Surface interface {
	Render(frame terminal.Frame) error
}

// State is the session state
type State struct {
	Counter       uint8
	ExitRequested bool
}

// View is the actor interpreting keys and drawing the counter
type View struct {
	registry *actor.Registry
	logger   log.Logger

	// mu is held for the duration of one render
	mu      sync.Mutex
	surface Surface

	state State
}

var _ actor.Actor = (*View)(nil)

// New creates a View drawing on surface and finding the worker through registry
func New(registry *actor.Registry, surface Surface, logger log.Logger) *View {
	if logger == nil {
		logger = log.DiscardLogger
	}

	return &View{
		registry: registry,
		surface:  surface,
		logger:   logger.With("actor", messages.ViewName),
	}
}

// PreStart resets the session state
func (v *View) PreStart(context.Context) error {
	v.state = State{}
	return nil
}

// Receive handles the view messages
func (v *View) Receive(ctx *actor.ReceiveContext) {
	switch msg := ctx.Message().(type) {
	case *messages.Draw:
		if err := v.draw(); err != nil {
			ctx.Err(err)
		}
	case *messages.UpdateCount:
		v.logger.Infof("counter updated to %d", msg.Value)
		v.state.Counter = msg.Value
		ctx.Tell(ctx.Self(), new(messages.Draw))
	case *messages.HandleKey:
		v.handleKey(ctx, msg.Event)
	case *messages.ShouldExit:
		ctx.Response(v.state.ExitRequested)
	default:
		ctx.Unhandled()
	}
}

// PostStop releases the session state
func (v *View) PostStop(context.Context) error {
	v.logger.Infof("session ended with counter %d", v.state.Counter)
	v.state = State{}
	return nil
}

func (v *View) draw() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.surface.Render(terminal.Frame{Counter: v.state.Counter})
}

func (v *View) handleKey(ctx *actor.ReceiveContext, event terminal.KeyEvent) {
	v.logger.Debugf("key %s", event)

	switch {
	case event.Is('q'):
		v.state.ExitRequested = true
	case event.Code == terminal.KeyLeft:
		// uint8 arithmetic wraps 0 to 255
		v.state.Counter--
	case event.Code == terminal.KeyRight:
		worker, err := v.registry.Resolve(messages.WorkerName)
		if err != nil {
			ctx.Err(err)
			return
		}
		ctx.Tell(worker, &messages.IncrementRequest{Current: v.state.Counter})
	}
}
