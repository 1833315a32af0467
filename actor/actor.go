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
)

// Actor defines the lifecycle of a unit of computation that communicates
// exclusively through its mailbox.
//
// Each actor owns one mailbox and one consuming goroutine: messages are handled
// strictly one at a time, in arrival order per sender. State owned by the actor
// is only touched from its hooks, so it needs no further locking.
//
// The lifecycle follows three phases:
//  1. PreStart – setup before the first message is handled
//  2. Receive – message handling
//  3. PostStop – cleanup once the actor has been asked to stop
type Actor interface {
	// PreStart is invoked once before the actor begins processing any messages.
	// When it fails the actor is not started.
	PreStart(ctx context.Context) error

	// Receive handles one message taken from the actor's mailbox.
	// Failures are reported through ReceiveContext.Err; the actor's supervisor
	// then decides whether the actor stops, resumes or restarts.
	Receive(ctx *ReceiveContext)

	// PostStop is invoked after the actor has handled its final message.
	// The actor is not reported as terminated before PostStop returns, which
	// makes it the place to resolve any work the actor started.
	PostStop(ctx context.Context) error
}
