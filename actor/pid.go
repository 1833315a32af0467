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
	"fmt"
	"sync"
	"time"

	"github.com/flowchartsman/retry"
	"github.com/google/uuid"
	"go.uber.org/atomic"
	"go.uber.org/multierr"

	gerrors "github.com/tochemey/counterakt/errors"
	"github.com/tochemey/counterakt/log"
	"github.com/tochemey/counterakt/supervisor"
)

// PID is the handle of a running actor. It owns the actor's mailbox and the
// single goroutine consuming it. A PID can be shared freely; copies refer to
// the same actor.
type PID struct {
	id    string
	name  string
	actor Actor

	// ctx is handed to the lifecycle hooks
	ctx context.Context

	registry   *Registry
	logger     log.Logger
	mailbox    Mailbox
	supervisor *supervisor.Supervisor
	metrics    *metrics

	// signal wakes up the consuming goroutine
	signal   chan struct{}
	stopCh   chan struct{}
	stopOnce sync.Once
	done     chan struct{}

	// sendLock guards closed against in-flight enqueues
	sendLock sync.RWMutex
	closed   bool

	running   *atomic.Bool
	processed *atomic.Int64
	restarts  *atomic.Int64
	unhandled *atomic.Int64

	// started is only touched by the consuming goroutine
	started bool

	initMaxRetries int
	initTimeout    time.Duration

	termErr error
}

// newPID creates the handle of actor. The actor is not started.
func newPID(ctx context.Context, name string, actor Actor, sys *actorSystem, config *spawnConfig) *PID {
	return &PID{
		id:             uuid.NewString(),
		name:           name,
		actor:          actor,
		ctx:            context.WithoutCancel(ctx),
		registry:       sys.registry,
		logger:         sys.logger.With("actor", name),
		mailbox:        config.mailbox,
		supervisor:     config.supervisor,
		metrics:        sys.metrics,
		signal:         make(chan struct{}, 1),
		stopCh:         make(chan struct{}),
		done:           make(chan struct{}),
		running:        atomic.NewBool(false),
		processed:      atomic.NewInt64(0),
		restarts:       atomic.NewInt64(0),
		unhandled:      atomic.NewInt64(0),
		initMaxRetries: sys.initMaxRetries,
		initTimeout:    sys.initTimeout,
	}
}

// ID returns the unique identifier of this actor incarnation
func (pid *PID) ID() string {
	return pid.id
}

// Name returns the name the actor is registered under
func (pid *PID) Name() string {
	return pid.name
}

// Logger returns the logger of the actor
func (pid *PID) Logger() log.Logger {
	return pid.logger
}

// IsRunning returns true when the actor accepts messages
func (pid *PID) IsRunning() bool {
	return pid != nil && pid.running.Load()
}

// ProcessedCount returns the number of messages handled so far
func (pid *PID) ProcessedCount() int {
	return int(pid.processed.Load())
}

// RestartCount returns the number of times the actor has been restarted
func (pid *PID) RestartCount() int {
	return int(pid.restarts.Load())
}

// UnhandledCount returns the number of messages the actor dropped as unhandled
func (pid *PID) UnhandledCount() int {
	return int(pid.unhandled.Load())
}

// Tell sends an asynchronous message to another actor with pid as the sender.
// It returns ErrDead when the recipient no longer accepts messages.
func (pid *PID) Tell(ctx context.Context, to *PID, message any) error {
	if to == nil {
		return gerrors.ErrUndefinedActor
	}
	return to.enqueue(newReceiveContext(ctx, pid, to, message, false))
}

// Stop requests the actor to stop. The message being handled completes,
// queued messages are dropped and PostStop runs on the actor goroutine.
// Stop does not block and is safe to call more than once.
func (pid *PID) Stop() {
	pid.stopOnce.Do(func() {
		close(pid.stopCh)
	})
}

// Wait blocks until the actor has terminated and returns the error that
// ended it, if any.
func (pid *PID) Wait(ctx context.Context) error {
	select {
	case <-pid.done:
		return pid.termErr
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Shutdown stops the actor and waits for its termination
func (pid *PID) Shutdown(ctx context.Context) error {
	pid.Stop()
	return pid.Wait(ctx)
}

// isTerminated returns true once PostStop has run
func (pid *PID) isTerminated() bool {
	select {
	case <-pid.done:
		return true
	default:
		return false
	}
}

// enqueue pushes a message into the mailbox and wakes the consumer
func (pid *PID) enqueue(received *ReceiveContext) error {
	pid.sendLock.RLock()
	defer pid.sendLock.RUnlock()

	if pid.closed {
		return gerrors.NewErrDead(pid.name)
	}

	if err := pid.mailbox.Enqueue(received); err != nil {
		return err
	}

	select {
	case pid.signal <- struct{}{}:
	default:
	}
	return nil
}

// init runs PreStart. When it fails the actor is not started.
func (pid *PID) init(ctx context.Context) error {
	pid.logger.Infof("Initialization process started for Actor %s ...", pid.name)

	cctx, cancel := context.WithTimeout(ctx, pid.initTimeout)
	defer cancel()

	retrier := retry.NewRetrier(pid.initMaxRetries, time.Millisecond, pid.initTimeout)
	if err := retrier.RunContext(cctx, func(_ context.Context) error {
		return pid.actor.PreStart(pid.ctx)
	}); err != nil {
		pid.logger.Errorf("Failed to initialize Actor %s: %v", pid.name, err)
		return gerrors.NewErrInitFailure(err)
	}

	pid.started = true
	pid.logger.Infof("Actor %s initialization is successful.", pid.name)
	return nil
}

// start launches the consuming goroutine
func (pid *PID) start() {
	pid.running.Store(true)
	pid.metrics.recordActive(pid.ctx, pid.name, 1)
	go pid.receiveLoop()
}

func (pid *PID) receiveLoop() {
	for {
		// stop requests win over queued messages
		select {
		case <-pid.stopCh:
			pid.terminate(nil)
			return
		default:
		}

		if received := pid.mailbox.Dequeue(); received != nil {
			if err := pid.handle(received); err != nil {
				pid.terminate(err)
				return
			}
			continue
		}

		select {
		case <-pid.stopCh:
			pid.terminate(nil)
			return
		case <-pid.signal:
		}
	}
}

// handle processes one message and returns a non-nil error when the actor
// must stop.
func (pid *PID) handle(received *ReceiveContext) error {
	func() {
		defer func() {
			if r := recover(); r != nil {
				err, ok := r.(error)
				if !ok {
					err = fmt.Errorf("%v", r)
				}
				received.Err(gerrors.NewPanicError(err))
			}
		}()
		pid.actor.Receive(received)
	}()

	pid.processed.Inc()
	pid.metrics.recordProcessed(pid.ctx, pid.name)

	cause := received.getError()
	if cause == nil {
		return nil
	}

	received.fail(cause)
	pid.metrics.recordFailure(pid.ctx, pid.name)
	return pid.supervise(cause, received.Message())
}

// dropUnhandled records a message the actor did not handle
func (pid *PID) dropUnhandled(message any) {
	pid.unhandled.Inc()
	pid.logger.Warnf("Actor %s dropped unhandled message %T", pid.name, message)
	pid.metrics.recordDropped(pid.ctx, pid.name, 1)
}

// supervise applies the supervisor directive for cause
func (pid *PID) supervise(cause error, message any) error {
	switch directive := pid.supervisor.Decide(cause); directive {
	case supervisor.ResumeDirective:
		pid.logger.Warnf("Actor %s resumed after failing on %T: %v", pid.name, message, cause)
		return nil
	case supervisor.RestartDirective:
		pid.logger.Warnf("Actor %s restarting after failing on %T: %v", pid.name, message, cause)
		if err := pid.restart(); err != nil {
			return multierr.Combine(cause, err)
		}
		return nil
	default:
		pid.logger.Errorf("Actor %s stopping after failing on %T: %v", pid.name, message, cause)
		return cause
	}
}

// restart runs PostStop then PreStart on the same actor value. The mailbox
// and the registration are kept.
func (pid *PID) restart() error {
	if limit := int64(pid.supervisor.MaxRetries()); pid.restarts.Load() >= limit {
		return fmt.Errorf("actor=(%s) reached the maximum of %d restarts", pid.name, limit)
	}

	pid.started = false
	if err := pid.actor.PostStop(pid.ctx); err != nil {
		return err
	}

	if err := pid.init(pid.ctx); err != nil {
		return err
	}

	pid.restarts.Inc()
	pid.metrics.recordRestart(pid.ctx, pid.name)
	pid.logger.Infof("Actor %s successfully restarted.", pid.name)
	return nil
}

// terminate drops the queued messages, runs PostStop, releases the name and
// signals termination.
func (pid *PID) terminate(reason error) {
	// IsRunning is false before any send can fail with ErrDead
	pid.running.Store(false)
	pid.metrics.recordActive(pid.ctx, pid.name, -1)

	pid.sendLock.Lock()
	pid.closed = true
	pid.sendLock.Unlock()

	var dropped int64
	for received := pid.mailbox.Dequeue(); received != nil; received = pid.mailbox.Dequeue() {
		received.fail(gerrors.NewErrDead(pid.name))
		pid.logger.Debugf("Actor %s dropped %T on shutdown", pid.name, received.Message())
		dropped++
	}

	if dropped > 0 {
		pid.logger.Warnf("Actor %s dropped %d queued message(s)", pid.name, dropped)
		pid.metrics.recordDropped(pid.ctx, pid.name, dropped)
	}

	var postStopErr error
	if pid.started {
		pid.started = false
		postStopErr = pid.actor.PostStop(pid.ctx)
		if postStopErr != nil {
			pid.logger.Errorf("Actor %s PostStop failed: %v", pid.name, postStopErr)
		}
	}

	pid.registry.Deregister(pid.name, pid)
	pid.termErr = multierr.Combine(reason, postStopErr)
	close(pid.done)

	pid.logger.Infof("Actor %s stopped", pid.name)
}

// Tell sends an asynchronous message to an actor from outside any actor
func Tell(ctx context.Context, to *PID, message any) error {
	if to == nil {
		return gerrors.ErrUndefinedActor
	}
	return to.enqueue(newReceiveContext(ctx, nil, to, message, false))
}

// Ask sends a message to an actor and waits up to timeout for its response
func Ask(ctx context.Context, to *PID, message any, timeout time.Duration) (any, error) {
	if timeout <= 0 {
		return nil, gerrors.ErrInvalidTimeout
	}

	if to == nil {
		return nil, gerrors.ErrUndefinedActor
	}

	received := newReceiveContext(ctx, nil, to, message, true)
	if err := to.enqueue(received); err != nil {
		return nil, err
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case resp := <-received.response:
		return resp.value, resp.err
	case <-timer.C:
		return nil, gerrors.ErrRequestTimeout
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
