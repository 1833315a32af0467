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
	"fmt"
	"sync"

	gerrors "github.com/tochemey/counterakt/errors"
)

// Future represents a value which may or may not currently be available,
// but will be available at some point in the future, or an error if that value
// could not be made available.
//
// A Future is the handle of a unit of work running on its own goroutine. It can
// be awaited for completion and polled for whether it has finished:
//
//	handle := future.New(func() (int, error) {
//	    return compute(), nil
//	})
//
//	if !handle.IsDone() {
//	    // still running
//	}
//
//	value, err := handle.Await(ctx)
type Future[T any] interface {
	// Await blocks until the Future is completed or ctx is done and
	// returns either the result or an error. Await can be called any number
	// of times; once completed it always returns the same outcome.
	Await(ctx context.Context) (T, error)
	// IsDone reports whether the task has finished, without blocking.
	IsDone() bool
	// Done returns a channel closed when the task has finished.
	Done() <-chan struct{}
}

// New runs task on a new goroutine and returns its Future.
// A panic raised by task completes the Future with a *errors.PanicError.
func New[T any](task func() (T, error)) Future[T] {
	f := &future[T]{done: make(chan struct{})}
	go func() {
		var (
			value T
			err   error
		)

		defer func() {
			if r := recover(); r != nil {
				var zero T
				f.complete(zero, gerrors.NewPanicError(fmt.Errorf("%v", r)))
				return
			}
			f.complete(value, err)
		}()

		value, err = task()
	}()
	return f
}

// future implements the Future interface.
type future[T any] struct {
	once  sync.Once
	done  chan struct{}
	value T
	err   error
}

// Verify future satisfies the Future interface.
var _ Future[struct{}] = (*future[struct{}])(nil)

// Await blocks until the Future is completed or ctx is done.
// A done ctx does not complete the Future; a later Await can still observe the result.
func (x *future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-x.done:
		return x.value, x.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// IsDone reports whether the task has finished.
func (x *future[T]) IsDone() bool {
	select {
	case <-x.done:
		return true
	default:
		return false
	}
}

// Done returns a channel closed once the task has finished.
func (x *future[T]) Done() <-chan struct{} {
	return x.done
}

func (x *future[T]) complete(value T, err error) {
	x.once.Do(func() {
		x.value = value
		x.err = err
		close(x.done)
	})
}
