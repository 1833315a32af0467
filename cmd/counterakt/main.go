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

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/multierr"

	"github.com/tochemey/counterakt/actor"
	"github.com/tochemey/counterakt/internal/config"
	"github.com/tochemey/counterakt/internal/session"
	"github.com/tochemey/counterakt/internal/terminal"
	"github.com/tochemey/counterakt/internal/worker"
	"github.com/tochemey/counterakt/log"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "counterakt: %v\n", err)
		return 1
	}

	// stdout belongs to the screen, logs go to a file
	writer, err := log.NewDailyWriter(cfg.Log.Dir, cfg.Log.Prefix)
	if err != nil {
		fmt.Fprintf(os.Stderr, "counterakt: %v\n", err)
		return 1
	}

	logger := log.NewZap(cfg.LogLevel(), writer)
	logger.Info("Starting")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	input := terminal.NewInput(os.Stdin)
	screen := terminal.NewScreen(os.Stdout, int(os.Stdin.Fd()))

	err = session.Run(ctx, input, screen, session.Config{
		Worker: worker.Config{
			Ticks:        cfg.Worker.Ticks,
			TickInterval: cfg.Worker.TickInterval,
		},
		AskTimeout:      cfg.Actor.AskTimeout,
		MailboxCapacity: cfg.Actor.MailboxCapacity,
		Supervisor:      cfg.ActorSupervisor(),
		ActorOptions: []actor.Option{
			actor.WithActorInitMaxRetries(actor.DefaultInitMaxRetries),
		},
	}, logger)

	if err != nil {
		logger.Errorf("Session failed: %v", err)
	} else {
		logger.Info("Exiting")
	}

	if cerr := multierr.Combine(input.Close(), logger.Flush(), writer.Close()); cerr != nil {
		fmt.Fprintf(os.Stderr, "counterakt: %v\n", cerr)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "counterakt: %v\n", err)
		return 1
	}
	return 0
}
