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

package future

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	gerrors "github.com/tochemey/counterakt/errors"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestFuture(t *testing.T) {
	t.Run("With success", func(t *testing.T) {
		f := New(func() (int, error) {
			return 42, nil
		})

		value, err := f.Await(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 42, value)
		assert.True(t, f.IsDone())

		// awaiting again yields the same outcome
		value, err = f.Await(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 42, value)
	})
	t.Run("With failure", func(t *testing.T) {
		expected := errors.New("failed")
		f := New(func() (string, error) {
			return "", expected
		})

		value, err := f.Await(context.Background())
		require.ErrorIs(t, err, expected)
		assert.Empty(t, value)
	})
	t.Run("With panic", func(t *testing.T) {
		f := New(func() (int, error) {
			panic("boom")
		})

		_, err := f.Await(context.Background())
		var panicErr *gerrors.PanicError
		require.ErrorAs(t, err, &panicErr)
		assert.EqualError(t, err, "panic: boom")
	})
	t.Run("With polling before completion", func(t *testing.T) {
		release := make(chan struct{})
		f := New(func() (int, error) {
			<-release
			return 1, nil
		})

		assert.False(t, f.IsDone())
		close(release)

		select {
		case <-f.Done():
		case <-time.After(time.Second):
			t.Fatal("future did not complete")
		}
		assert.True(t, f.IsDone())
	})
	t.Run("With context canceled", func(t *testing.T) {
		release := make(chan struct{})
		f := New(func() (int, error) {
			<-release
			return 7, nil
		})

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		_, err := f.Await(ctx)
		require.ErrorIs(t, err, context.DeadlineExceeded)

		close(release)
		value, err := f.Await(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 7, value)
	})
}
