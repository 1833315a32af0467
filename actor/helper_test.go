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
	"sync"
	"testing"
	"time"

	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/atomic"
	"go.uber.org/goleak"

	"github.com/tochemey/counterakt/log"
)

const (
	askTimeout = 500 * time.Millisecond
	waitFor    = 2 * time.Second
	tick       = 5 * time.Millisecond
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type testPing struct{}

type testPong struct{}

type testFail struct {
	err error
}

type testPanic struct{}

type testSilent struct{}

type testBlock struct {
	entered chan struct{}
	release chan struct{}
}

type testForward struct {
	to      *PID
	message any
}

// testActor records what it receives and counts its lifecycle hooks
type testActor struct {
	preStarts   *atomic.Int32
	postStops   *atomic.Int32
	received    chan any
	preStartErr error
	postStopErr error
	onPostStop  func()
}

var _ Actor = (*testActor)(nil)

func newTestActor() *testActor {
	return &testActor{
		preStarts: atomic.NewInt32(0),
		postStops: atomic.NewInt32(0),
		received:  make(chan any, 64),
	}
}

func (a *testActor) PreStart(context.Context) error {
	a.preStarts.Inc()
	return a.preStartErr
}

func (a *testActor) Receive(ctx *ReceiveContext) {
	switch msg := ctx.Message().(type) {
	case *testPing:
		ctx.Response(new(testPong))
	case *testFail:
		ctx.Err(msg.err)
	case *testPanic:
		panic("boom")
	case *testBlock:
		close(msg.entered)
		<-msg.release
	case *testForward:
		ctx.Tell(msg.to, msg.message)
	case *testSilent:
	case string:
	default:
		ctx.Unhandled()
		return
	}
	a.received <- ctx.Message()
}

func (a *testActor) PostStop(context.Context) error {
	a.postStops.Inc()
	if a.onPostStop != nil {
		a.onPostStop()
	}
	return a.postStopErr
}

// stopOrder records PostStop calls across actors
type stopOrder struct {
	mu    sync.Mutex
	names []string
}

func (o *stopOrder) hook(name string) func() {
	return func() {
		o.mu.Lock()
		o.names = append(o.names, name)
		o.mu.Unlock()
	}
}

func (o *stopOrder) list() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]string(nil), o.names...)
}

func newTestSystem(t *testing.T, opts ...Option) ActorSystem {
	t.Helper()
	opts = append([]Option{
		WithLogger(log.DiscardLogger),
		WithMeterProvider(noop.NewMeterProvider()),
	}, opts...)

	system, err := NewActorSystem("testSystem", opts...)
	if err != nil {
		t.Fatalf("failed to create the actor system: %v", err)
	}

	t.Cleanup(func() {
		_ = system.Stop(context.Background())
	})
	return system
}

func expectMessage(t *testing.T, actor *testActor, expected any) {
	t.Helper()
	select {
	case got := <-actor.received:
		if got != expected {
			t.Fatalf("expected message %v, got %v", expected, got)
		}
	case <-time.After(waitFor):
		t.Fatalf("timed out waiting for %v", expected)
	}
}
