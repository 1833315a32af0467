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

package testkit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tochemey/counterakt/actor"
)

const (
	// MessagesQueueMax is the number of messages a probe keeps before the
	// probe actor blocks
	MessagesQueueMax = 1000
	// DefaultTimeout is how long the Expect methods wait
	DefaultTimeout = 3 * time.Second
)

// Probe is an actor recording what it receives so that tests can assert on it.
// A probe spawned under the name of a real actor stands in for that actor.
type Probe interface {
	// ExpectMessage fails the test unless the next message equals message
	ExpectMessage(message any)
	// ExpectMessageWithin is ExpectMessage with a custom timeout
	ExpectMessageWithin(duration time.Duration, message any)
	// ExpectNoMessage fails the test when a message arrives within DefaultTimeout
	ExpectNoMessage()
	// ExpectNoMessageWithin is ExpectNoMessage with a custom timeout
	ExpectNoMessageWithin(duration time.Duration)
	// ExpectAnyMessage returns the next message
	ExpectAnyMessage() any
	// ExpectAnyMessageWithin is ExpectAnyMessage with a custom timeout
	ExpectAnyMessageWithin(duration time.Duration) any
	// Send tells message to the actor registered under actorName with the probe as sender
	Send(actorName string, message any)
	// SendSync asks the actor registered under actorName and returns the response
	SendSync(actorName string, message any, timeout time.Duration) any
	// Sender returns the sender of the last received message
	Sender() *actor.PID
	// PID returns the probe actor
	PID() *actor.PID
	// Stop stops the probe actor and waits for it
	Stop()
}

// ExpectMessageOfType fails the test unless the next message received by
// p is a T, and returns it.
func ExpectMessageOfType[T any](p Probe) T {
	x := p.(*probe)
	received, ok := x.next(DefaultTimeout)
	require.True(x.t, ok, "timeout (%v) while waiting for a %T", DefaultTimeout, *new(T))

	message, ok := received.(T)
	require.True(x.t, ok, "expected a %T, found %T", *new(T), received)
	return message
}

type envelope struct {
	sender  *actor.PID
	payload any
}

// recorder is the actor behind a probe
type recorder struct {
	inbox chan<- envelope
}

func (r *recorder) PreStart(context.Context) error { return nil }

func (r *recorder) Receive(ctx *actor.ReceiveContext) {
	r.inbox <- envelope{sender: ctx.Sender(), payload: ctx.Message()}
}

func (r *recorder) PostStop(context.Context) error { return nil }

type probe struct {
	t          *testing.T
	ctx        context.Context
	system     actor.ActorSystem
	pid        *actor.PID
	inbox      <-chan envelope
	lastSender *actor.PID
}

var _ Probe = (*probe)(nil)

func newProbe(ctx context.Context, t *testing.T, system actor.ActorSystem, name string) (*probe, error) {
	inbox := make(chan envelope, MessagesQueueMax)
	pid, err := system.Spawn(ctx, name, &recorder{inbox: inbox})
	if err != nil {
		return nil, err
	}

	return &probe{
		t:      t,
		ctx:    ctx,
		system: system,
		pid:    pid,
		inbox:  inbox,
	}, nil
}

func (x *probe) ExpectMessage(message any) {
	x.ExpectMessageWithin(DefaultTimeout, message)
}

func (x *probe) ExpectMessageWithin(duration time.Duration, message any) {
	received, ok := x.next(duration)
	require.True(x.t, ok, "timeout (%v) while waiting for %v", duration, message)
	require.Equal(x.t, message, received)
}

func (x *probe) ExpectNoMessage() {
	x.ExpectNoMessageWithin(DefaultTimeout)
}

func (x *probe) ExpectNoMessageWithin(duration time.Duration) {
	received, ok := x.next(duration)
	require.False(x.t, ok, "received unexpected message %v", received)
}

func (x *probe) ExpectAnyMessage() any {
	return x.ExpectAnyMessageWithin(DefaultTimeout)
}

func (x *probe) ExpectAnyMessageWithin(duration time.Duration) any {
	received, ok := x.next(duration)
	require.True(x.t, ok, "timeout (%v) while waiting for any message", duration)
	return received
}

func (x *probe) Send(actorName string, message any) {
	to, err := x.system.LocalActor(actorName)
	require.NoError(x.t, err)
	require.NoError(x.t, x.pid.Tell(x.ctx, to, message))
}

func (x *probe) SendSync(actorName string, message any, timeout time.Duration) any {
	to, err := x.system.LocalActor(actorName)
	require.NoError(x.t, err)

	response, err := actor.Ask(x.ctx, to, message, timeout)
	require.NoError(x.t, err)
	return response
}

func (x *probe) Sender() *actor.PID {
	return x.lastSender
}

func (x *probe) PID() *actor.PID {
	return x.pid
}

func (x *probe) Stop() {
	require.NoError(x.t, x.pid.Shutdown(x.ctx))
}

// next waits up to timeout for a message. ok is false on timeout.
func (x *probe) next(timeout time.Duration) (payload any, ok bool) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case received := <-x.inbox:
		x.lastSender = received.sender
		return received.payload, true
	case <-timer.C:
		return nil, false
	}
}
