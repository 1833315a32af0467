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

package actor

import (
	"context"

	"go.uber.org/atomic"

	gerrors "github.com/tochemey/counterakt/errors"
	"github.com/tochemey/counterakt/log"
)

// reply carries the outcome of an Ask
type reply struct {
	value any
	err   error
}

// ReceiveContext carries one message and the operations available to the
// actor while handling it.
//
// A ReceiveContext is only valid for the duration of the Receive call it was
// passed to. Do not retain it.
type ReceiveContext struct {
	ctx       context.Context
	message   any
	sender    *PID
	self      *PID
	response  chan reply
	responded *atomic.Bool
	err       error
}

// newReceiveContext builds the envelope of message. Asks carry a response channel.
func newReceiveContext(ctx context.Context, from, to *PID, message any, ask bool) *ReceiveContext {
	rctx := &ReceiveContext{
		ctx:       context.WithoutCancel(ctx),
		message:   message,
		sender:    from,
		self:      to,
		responded: atomic.NewBool(false),
	}

	if ask {
		rctx.response = make(chan reply, 1)
	}
	return rctx
}

// Message returns the message being processed.
func (rctx *ReceiveContext) Message() any {
	return rctx.message
}

// Self returns the PID of the actor handling the message.
func (rctx *ReceiveContext) Self() *PID {
	return rctx.self
}

// Sender returns the PID of the sending actor, or nil when the message was
// sent from outside any actor.
func (rctx *ReceiveContext) Sender() *PID {
	return rctx.sender
}

// Context returns the context associated with the current message.
// It is never canceled by the sender.
func (rctx *ReceiveContext) Context() context.Context {
	return rctx.ctx
}

// Logger returns the logger of the actor handling the message.
func (rctx *ReceiveContext) Logger() log.Logger {
	return rctx.self.Logger()
}

// Err records a failure observed while handling the message. The actor's
// supervisor is consulted once Receive returns.
func (rctx *ReceiveContext) Err(err error) {
	rctx.err = err
}

// Response replies to an Ask. It is a no-op for messages sent with Tell and
// only the first call for a given message is delivered.
func (rctx *ReceiveContext) Response(resp any) {
	rctx.complete(reply{value: resp})
}

// Tell sends message to the given actor with Self as the sender.
// A failure is recorded with Err.
func (rctx *ReceiveContext) Tell(to *PID, message any) {
	if err := rctx.self.Tell(rctx.ctx, to, message); err != nil {
		rctx.Err(err)
	}
}

// Unhandled drops the current message. The actor keeps running and a
// pending Ask fails with ErrUnhandled.
func (rctx *ReceiveContext) Unhandled() {
	rctx.fail(gerrors.NewErrUnhandledMessage(rctx.message))
	if rctx.self != nil {
		rctx.self.dropUnhandled(rctx.message)
	}
}

// getError returns the failure recorded while handling the message
func (rctx *ReceiveContext) getError() error {
	return rctx.err
}

// fail completes a pending Ask with err
func (rctx *ReceiveContext) fail(err error) {
	rctx.complete(reply{err: err})
}

func (rctx *ReceiveContext) complete(r reply) {
	if rctx.response == nil {
		return
	}

	if !rctx.responded.CompareAndSwap(false, true) {
		return
	}

	select {
	case rctx.response <- r:
	default:
	}
}
