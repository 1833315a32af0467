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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gerrors "github.com/tochemey/counterakt/errors"
	"github.com/tochemey/counterakt/log"
)

func TestNewActorSystem(t *testing.T) {
	t.Run("With an empty name", func(t *testing.T) {
		_, err := NewActorSystem("")
		require.ErrorIs(t, err, gerrors.ErrNameRequired)
	})
	t.Run("With an invalid name", func(t *testing.T) {
		_, err := NewActorSystem("$invalid")
		require.Error(t, err)
	})
	t.Run("With an invalid init timeout", func(t *testing.T) {
		_, err := NewActorSystem("sys", WithActorInitTimeout(-1))
		require.ErrorIs(t, err, gerrors.ErrInvalidTimeout)
	})
	t.Run("With defaults", func(t *testing.T) {
		system, err := NewActorSystem("sys", WithLogger(log.DiscardLogger))
		require.NoError(t, err)
		assert.Equal(t, "sys", system.Name())
		assert.NotNil(t, system.Registry())
		assert.NotNil(t, system.Logger())
		assert.Empty(t, system.Actors())
		require.NoError(t, system.Stop(context.Background()))
	})
}

func TestActorSystemSpawn(t *testing.T) {
	t.Run("With a duplicate name", func(t *testing.T) {
		ctx := context.Background()
		system := newTestSystem(t)

		pid, err := system.Spawn(ctx, "app", newTestActor())
		require.NoError(t, err)

		second := newTestActor()
		_, err = system.Spawn(ctx, "app", second)
		require.ErrorIs(t, err, gerrors.ErrActorAlreadyExists)
		assert.Zero(t, second.preStarts.Load())

		actual, err := system.LocalActor("app")
		require.NoError(t, err)
		assert.Same(t, pid, actual)
	})
	t.Run("With a released name", func(t *testing.T) {
		ctx := context.Background()
		system := newTestSystem(t)

		pid, err := system.Spawn(ctx, "app", newTestActor())
		require.NoError(t, err)
		require.NoError(t, pid.Shutdown(ctx))

		next, err := system.Spawn(ctx, "app", newTestActor())
		require.NoError(t, err)
		assert.NotEqual(t, pid.ID(), next.ID())
	})
	t.Run("With an empty name", func(t *testing.T) {
		system := newTestSystem(t)
		_, err := system.Spawn(context.Background(), "", newTestActor())
		require.ErrorIs(t, err, gerrors.ErrNameRequired)
	})
	t.Run("With a nil actor", func(t *testing.T) {
		system := newTestSystem(t)
		_, err := system.Spawn(context.Background(), "app", nil)
		require.ErrorIs(t, err, gerrors.ErrUndefinedActor)
	})
	t.Run("With PreStart failing", func(t *testing.T) {
		ctx := context.Background()
		system := newTestSystem(t, WithActorInitMaxRetries(3))
		actor := newTestActor()
		actor.preStartErr = errors.New("not ready")

		_, err := system.Spawn(ctx, "app", actor)
		require.ErrorIs(t, err, gerrors.ErrInitFailure)
		assert.Greater(t, actor.preStarts.Load(), int32(1))
		assert.Zero(t, actor.postStops.Load())

		_, ok := system.Registry().Lookup("app")
		assert.False(t, ok)
	})
	t.Run("With LocalActor on an unknown name", func(t *testing.T) {
		system := newTestSystem(t)
		_, err := system.LocalActor("counter")
		require.ErrorIs(t, err, gerrors.ErrPeerUnavailable)
	})
}

func TestActorSystemStop(t *testing.T) {
	t.Run("With actors stopped in reverse spawn order", func(t *testing.T) {
		ctx := context.Background()
		system := newTestSystem(t)
		order := new(stopOrder)

		for _, name := range []string{"counter", "app"} {
			actor := newTestActor()
			actor.onPostStop = order.hook(name)
			_, err := system.Spawn(ctx, name, actor)
			require.NoError(t, err)
		}

		assert.Len(t, system.Actors(), 2)
		require.NoError(t, system.Stop(ctx))
		assert.Equal(t, []string{"app", "counter"}, order.list())
		assert.Zero(t, system.Registry().Len())

		_, err := system.Spawn(ctx, "late", newTestActor())
		require.ErrorIs(t, err, gerrors.ErrActorSystemStopped)

		// stopping twice is a no-op
		require.NoError(t, system.Stop(ctx))
	})
	t.Run("With a PostStop failure", func(t *testing.T) {
		ctx := context.Background()
		system := newTestSystem(t)
		actor := newTestActor()
		actor.postStopErr = errors.New("postStop failed")

		_, err := system.Spawn(ctx, "app", actor)
		require.NoError(t, err)

		err = system.Stop(ctx)
		require.ErrorIs(t, err, actor.postStopErr)
	})
	t.Run("With an actor already terminated", func(t *testing.T) {
		ctx := context.Background()
		system := newTestSystem(t)

		pid, err := system.Spawn(ctx, "app", newTestActor())
		require.NoError(t, err)
		require.NoError(t, Tell(ctx, pid, 42))
		require.Error(t, pid.Wait(ctx))

		assert.Empty(t, system.Actors())
		require.NoError(t, system.Stop(ctx))
	})
}
