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

// Package session drives the counter application: it starts the worker and
// the view, pumps terminal input into the view and shuts both actors down
// in order.
package session

import (
	"context"
	"errors"
	"io"
	"time"

	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"github.com/tochemey/counterakt/actor"
	"github.com/tochemey/counterakt/internal/messages"
	"github.com/tochemey/counterakt/internal/terminal"
	"github.com/tochemey/counterakt/internal/view"
	"github.com/tochemey/counterakt/internal/worker"
	"github.com/tochemey/counterakt/log"
	"github.com/tochemey/counterakt/supervisor"
)

const systemName = "counterakt"

// Input supplies terminal events
type Input interface {
	// ReadEvent blocks until the next event or until ctx is done
	ReadEvent(ctx context.Context) (terminal.Event, error)
}

// Display is the surface the view draws on
type Display interface {
	view.Surface
	Open() error
	Close() error
}

// Config holds the session settings
type Config struct {
	Worker     worker.Config
	AskTimeout time.Duration
	// MailboxCapacity bounds each actor's mailbox. Zero means unbounded.
	MailboxCapacity int
	// Supervisor decides how both actors react to a failure. Nil stops them.
	Supervisor *supervisor.Supervisor
	// ActorOptions are applied to the actor system
	ActorOptions []actor.Option
}

// spawnOptions returns the options of one actor. Each call builds its own mailbox.
func (c Config) spawnOptions() []actor.SpawnOption {
	var opts []actor.SpawnOption
	if c.MailboxCapacity > 0 {
		opts = append(opts, actor.WithMailbox(actor.NewBoundedMailbox(c.MailboxCapacity)))
	}

	if c.Supervisor != nil {
		opts = append(opts, actor.WithSupervisor(c.Supervisor))
	}
	return opts
}

// Run opens display, runs the session until the quit key is pressed, ctx is
// done or input ends, then stops the actors and closes display.
// A failed actor makes Run return its error.
func Run(ctx context.Context, input Input, display Display, config Config, logger log.Logger) (err error) {
	if logger == nil {
		logger = log.DiscardLogger
	}

	if config.AskTimeout <= 0 {
		config.AskTimeout = 5 * time.Second
	}

	if err := display.Open(); err != nil {
		return err
	}

	defer func() {
		err = multierr.Append(err, display.Close())
		logger.Info("Terminal restored")
	}()

	opts := append([]actor.Option{actor.WithLogger(logger)}, config.ActorOptions...)
	system, err := actor.NewActorSystem(systemName, opts...)
	if err != nil {
		return err
	}

	// shutdown must complete even when ctx is canceled
	stopCtx := context.WithoutCancel(ctx)
	registry := system.Registry()

	workerPID, err := system.Spawn(ctx, messages.WorkerName, worker.New(registry, config.Worker, logger), config.spawnOptions()...)
	if err != nil {
		return multierr.Append(err, system.Stop(stopCtx))
	}

	viewPID, err := system.Spawn(ctx, messages.ViewName, view.New(registry, display, logger), config.spawnOptions()...)
	if err != nil {
		return multierr.Append(err, system.Stop(stopCtx))
	}

	loopErr := pump(ctx, input, viewPID, config.AskTimeout, logger)

	logger.Info("Stopping app actor")
	viewPID.Stop()
	workerPID.Stop()

	logger.Info("Exited, awaiting handle")
	var viewErr, workerErr error
	group := new(errgroup.Group)
	group.Go(func() error {
		viewErr = viewPID.Wait(stopCtx)
		return viewErr
	})
	group.Go(func() error {
		workerErr = workerPID.Wait(stopCtx)
		return workerErr
	})
	// both errors are reported, not only the first one
	_ = group.Wait()
	logger.Info("Handle ended")

	return multierr.Combine(loopErr, viewErr, workerErr, system.Stop(stopCtx))
}

// pump runs the driving loop. It returns nil when the session ends normally.
func pump(ctx context.Context, input Input, viewPID *actor.PID, askTimeout time.Duration, logger log.Logger) error {
	for {
		resp, err := actor.Ask(ctx, viewPID, new(messages.ShouldExit), askTimeout)
		if err != nil {
			return ended(ctx, err, logger)
		}

		if exit, _ := resp.(bool); exit {
			logger.Info("Quit requested")
			return nil
		}

		if err := actor.Tell(ctx, viewPID, new(messages.Draw)); err != nil {
			return ended(ctx, err, logger)
		}

		event, err := input.ReadEvent(ctx)
		if err != nil {
			return ended(ctx, err, logger)
		}

		// some terminals also report repeats and releases
		key, ok := event.(terminal.KeyEvent)
		if !ok || key.Kind != terminal.KeyPress {
			continue
		}

		logger.Infof("Got a key event %s", key)
		if err := actor.Tell(ctx, viewPID, &messages.HandleKey{Event: key}); err != nil {
			return ended(ctx, err, logger)
		}
	}
}

// ended tells a normal end of the session from a failure
func ended(ctx context.Context, err error, logger log.Logger) error {
	switch {
	case ctx.Err() != nil:
		logger.Infof("Session interrupted: %v", ctx.Err())
		return nil
	case errors.Is(err, io.EOF):
		logger.Info("Input closed")
		return nil
	default:
		logger.Errorf("Session failed: %v", err)
		return err
	}
}
