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

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/tochemey/counterakt/log"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestKit(t *testing.T) (*TestKit, context.Context) {
	ctx := context.Background()
	kit := New(t)
	t.Cleanup(func() {
		kit.Shutdown(ctx)
	})
	return kit, ctx
}

func TestTestKit(t *testing.T) {
	t.Run("ActorSystem", func(t *testing.T) {
		kit, _ := newTestKit(t)

		sys := kit.ActorSystem()
		require.NotNil(t, sys)
		require.Equal(t, "testkit", sys.Name())
	})
	t.Run("Spawn", func(t *testing.T) {
		kit, ctx := newTestKit(t)

		kit.Spawn(ctx, "spawn-actor", new(pinger))
		pid, err := kit.ActorSystem().LocalActor("spawn-actor")
		require.NoError(t, err)
		require.True(t, pid.IsRunning())
	})
	t.Run("WithLogging", func(t *testing.T) {
		kit := new(TestKit)
		WithLogging(log.DebugLevel).Apply(kit)
		require.NotNil(t, kit.logger)
		require.Equal(t, log.DebugLevel, kit.logger.LogLevel())
	})
}
