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

// Package worker implements the actor running the slow, cancellable
// increment computation. At most one computation is in flight: a new request
// cancels and drains the previous one before starting.
package worker

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/atomic"

	"github.com/tochemey/counterakt/actor"
	gerrors "github.com/tochemey/counterakt/errors"
	"github.com/tochemey/counterakt/future"
	"github.com/tochemey/counterakt/internal/messages"
	"github.com/tochemey/counterakt/log"
)

const (
	DefaultTicks        = 10
	DefaultTickInterval = time.Second
)

// Config defines the duration of a computation: Ticks periods of
// TickInterval, with a cancellation check after each one.
type Config struct {
	Ticks        int
	TickInterval time.Duration
}

// DefaultConfig returns a ten seconds computation
func DefaultConfig() Config {
	return Config{
		Ticks:        DefaultTicks,
		TickInterval: DefaultTickInterval,
	}
}

// Outcome is how a computation ended
type Outcome int

const (
	// OutcomeCompleted means every tick elapsed and the update was delivered
	OutcomeCompleted Outcome = iota
	// OutcomeCancelled means the computation observed a cancellation and delivered nothing
	OutcomeCancelled
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCompleted:
		return "completed"
	case OutcomeCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// slot is the in-flight computation
type slot struct {
	id     int64
	cancel chan struct{}
	handle future.Future[Outcome]
}

// Worker is the actor owning the computation slot
type Worker struct {
	config   Config
	registry *actor.Registry
	logger   log.Logger
	stats    *Stats

	sequence int64
	current  *slot
}

var _ actor.Actor = (*Worker)(nil)

// New creates a Worker that finds the view through registry.
// Zero config values fall back to the defaults.
func New(registry *actor.Registry, config Config, logger log.Logger) *Worker {
	if config.Ticks <= 0 {
		config.Ticks = DefaultTicks
	}

	if config.TickInterval <= 0 {
		config.TickInterval = DefaultTickInterval
	}

	if logger == nil {
		logger = log.DiscardLogger
	}

	return &Worker{
		config:   config,
		registry: registry,
		logger:   logger.With("actor", messages.WorkerName),
		stats:    newStats(),
	}
}

// Stats returns the computation counters
func (w *Worker) Stats() *Stats {
	return w.stats
}

// PreStart starts with an empty slot
func (w *Worker) PreStart(context.Context) error {
	w.current = nil
	return nil
}

// Receive handles IncrementRequest
func (w *Worker) Receive(ctx *actor.ReceiveContext) {
	switch msg := ctx.Message().(type) {
	case *messages.IncrementRequest:
		if err := w.drain(ctx.Context()); err != nil {
			ctx.Err(err)
			return
		}
		w.start(ctx.Self(), ctx.Sender(), msg.Current)
	default:
		ctx.Unhandled()
	}
}

// PostStop resolves the in-flight computation before the actor is reported stopped
func (w *Worker) PostStop(ctx context.Context) error {
	return w.drain(ctx)
}

// drain cancels the current slot, when still running, and waits for it.
// The slot is released whatever its outcome.
func (w *Worker) drain(ctx context.Context) error {
	current := w.current
	if current == nil {
		return nil
	}
	w.current = nil

	if !current.handle.IsDone() {
		w.logger.Infof("slot %d cancelling", current.id)
	}

	// single permit: a finished computation never reads it
	select {
	case current.cancel <- struct{}{}:
	default:
	}

	outcome, err := current.handle.Await(ctx)
	if err != nil {
		w.stats.failed.Inc()
		w.logger.Errorf("slot %d failed: %v", current.id, err)
		return gerrors.NewErrComputationFailed(err)
	}

	w.stats.record(outcome)
	w.logger.Infof("slot %d resolved: %s", current.id, outcome)
	return nil
}

// start launches a computation delivering current+1 to the view.
// requester is the actor that asked for it, nil when sent from outside.
func (w *Worker) start(self, requester *actor.PID, current uint8) {
	w.sequence++
	id := w.sequence
	cancel := make(chan struct{}, 1)

	w.current = &slot{
		id:     id,
		cancel: cancel,
		handle: future.New(func() (Outcome, error) {
			return w.compute(self, requester, cancel, current)
		}),
	}

	w.stats.started.Inc()
	w.logger.Infof("slot %d started for value %d", id, current)
}

// compute runs on its own goroutine. It only touches the registry and its
// cancellation channel.
func (w *Worker) compute(self, requester *actor.PID, cancel <-chan struct{}, current uint8) (Outcome, error) {
	for i := 0; i < w.config.Ticks; i++ {
		time.Sleep(w.config.TickInterval)
		if cancelled(cancel) {
			return OutcomeCancelled, nil
		}
	}

	err := w.deliver(self, current+1)
	if err == nil {
		return OutcomeCompleted, nil
	}

	// the requester stopped or the slot was cancelled: nobody waits for the update
	if cancelled(cancel) || (requester != nil && !requester.IsRunning()) {
		w.logger.Warnf("update %d dropped: %v", current+1, err)
		return OutcomeCancelled, nil
	}
	return OutcomeCompleted, err
}

// deliver sends the update to the actor registered as the view
func (w *Worker) deliver(self *actor.PID, value uint8) error {
	view, err := w.registry.Resolve(messages.ViewName)
	if err != nil {
		return err
	}
	return self.Tell(context.Background(), view, &messages.UpdateCount{Value: value})
}

// cancelled reports whether the cancellation permit was sent
func cancelled(cancel <-chan struct{}) bool {
	select {
	case <-cancel:
		return true
	default:
		return false
	}
}

// Stats counts computations by outcome
type Stats struct {
	started   *atomic.Int64
	completed *atomic.Int64
	cancelled *atomic.Int64
	failed    *atomic.Int64
}

func newStats() *Stats {
	return &Stats{
		started:   atomic.NewInt64(0),
		completed: atomic.NewInt64(0),
		cancelled: atomic.NewInt64(0),
		failed:    atomic.NewInt64(0),
	}
}

func (s *Stats) record(outcome Outcome) {
	switch outcome {
	case OutcomeCompleted:
		s.completed.Inc()
	case OutcomeCancelled:
		s.cancelled.Inc()
	}
}

// Started returns the number of computations started
func (s *Stats) Started() int64 { return s.started.Load() }

// Completed returns the number of computations that delivered their update
func (s *Stats) Completed() int64 { return s.completed.Load() }

// Cancelled returns the number of computations cancelled before delivery
func (s *Stats) Cancelled() int64 { return s.cancelled.Load() }

// Failed returns the number of computations that could not deliver their update
func (s *Stats) Failed() int64 { return s.failed.Load() }
