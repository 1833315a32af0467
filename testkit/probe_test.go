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

type ping struct{}

type pong struct{}

// pinger replies pong to the sender of a ping, or to the asker
type pinger struct{}

var _ actor.Actor = (*pinger)(nil)

func (p *pinger) PreStart(context.Context) error {
	return nil
}

func (p *pinger) Receive(ctx *actor.ReceiveContext) {
	switch ctx.Message().(type) {
	case *ping:
		if ctx.Sender() == nil {
			ctx.Response(new(pong))
			return
		}
		ctx.Tell(ctx.Sender(), new(pong))
	default:
		ctx.Unhandled()
	}
}

func (p *pinger) PostStop(context.Context) error {
	return nil
}

func TestTestProbe(t *testing.T) {
	t.Run("Assert message received", func(t *testing.T) {
		ctx := context.TODO()
		testkit := New(t)

		testkit.Spawn(ctx, "pinger", new(pinger))
		probe := testkit.NewProbe(ctx, "probe")

		probe.Send("pinger", new(ping))
		probe.ExpectMessage(new(pong))
		probe.ExpectNoMessageWithin(50 * time.Millisecond)

		t.Cleanup(func() {
			probe.Stop()
			testkit.Shutdown(ctx)
		})
	})
	t.Run("Assert any message received", func(t *testing.T) {
		ctx := context.TODO()
		testkit := New(t)

		testkit.Spawn(ctx, "pinger", new(pinger))
		probe := testkit.NewProbe(ctx, "probe")

		probe.Send("pinger", new(ping))
		actual := probe.ExpectAnyMessage()
		require.IsType(t, new(pong), actual)

		t.Cleanup(func() {
			probe.Stop()
			testkit.Shutdown(ctx)
		})
	})
	t.Run("Assert message type received", func(t *testing.T) {
		ctx := context.TODO()
		testkit := New(t)

		testkit.Spawn(ctx, "pinger", new(pinger))
		probe := testkit.NewProbe(ctx, "probe")

		probe.Send("pinger", new(ping))
		received := ExpectMessageOfType[*pong](probe)
		require.NotNil(t, received)

		t.Cleanup(func() {
			probe.Stop()
			testkit.Shutdown(ctx)
		})
	})
	t.Run("Assert sender", func(t *testing.T) {
		ctx := context.TODO()
		testkit := New(t)

		pid := testkit.Spawn(ctx, "pinger", new(pinger))
		probe := testkit.NewProbe(ctx, "probe")

		probe.Send("pinger", new(ping))
		probe.ExpectMessage(new(pong))
		require.Same(t, pid, probe.Sender())
		require.Equal(t, "probe", probe.PID().Name())

		t.Cleanup(func() {
			probe.Stop()
			testkit.Shutdown(ctx)
		})
	})
	t.Run("Assert SendSync", func(t *testing.T) {
		ctx := context.TODO()
		testkit := New(t)

		testkit.Spawn(ctx, "pinger", new(pinger))
		probe := testkit.NewProbe(ctx, "probe")

		actual := probe.SendSync("pinger", new(ping), time.Second)
		require.IsType(t, new(pong), actual)
		probe.ExpectNoMessageWithin(50 * time.Millisecond)

		t.Cleanup(func() {
			probe.Stop()
			testkit.Shutdown(ctx)
		})
	})
	t.Run("Assert messages told to the probe name", func(t *testing.T) {
		ctx := context.TODO()
		testkit := New(t)
		probe := testkit.NewProbe(ctx, "app")

		pid, err := testkit.ActorSystem().Registry().Resolve("app")
		require.NoError(t, err)
		require.NoError(t, actor.Tell(ctx, pid, "hello"))

		probe.ExpectMessage("hello")
		require.Nil(t, probe.Sender())

		t.Cleanup(func() {
			probe.Stop()
			testkit.Shutdown(ctx)
		})
	})
}
