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
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/tochemey/counterakt/log"
	"github.com/tochemey/counterakt/supervisor"
)

// Option is the interface that applies a configuration option to the actor system.
type Option interface {
	// Apply sets the Option value of a config.
	Apply(sys *actorSystem)
}

var _ Option = OptionFunc(nil)

// OptionFunc implements the Option interface.
type OptionFunc func(*actorSystem)

// Apply applies the actor system's option
func (f OptionFunc) Apply(c *actorSystem) {
	f(c)
}

// WithLogger sets the logger used by the actor system and its actors
func WithLogger(logger log.Logger) Option {
	return OptionFunc(func(a *actorSystem) {
		a.logger = logger
	})
}

// WithActorInitMaxRetries sets the number of attempts made to run an actor's PreStart
func WithActorInitMaxRetries(retries int) Option {
	return OptionFunc(func(a *actorSystem) {
		a.initMaxRetries = retries
	})
}

// WithActorInitTimeout sets the maximum time given to an actor's PreStart attempts
func WithActorInitTimeout(timeout time.Duration) Option {
	return OptionFunc(func(a *actorSystem) {
		a.initTimeout = timeout
	})
}

// WithMeterProvider sets the OpenTelemetry meter provider used to record actor metrics
func WithMeterProvider(provider metric.MeterProvider) Option {
	return OptionFunc(func(a *actorSystem) {
		a.meterProvider = provider
	})
}

// spawnConfig defines the configuration to apply when creating an actor
type spawnConfig struct {
	mailbox    Mailbox
	supervisor *supervisor.Supervisor
}

func newSpawnConfig(opts ...SpawnOption) *spawnConfig {
	config := &spawnConfig{}
	for _, opt := range opts {
		opt.Apply(config)
	}

	if config.mailbox == nil {
		config.mailbox = NewUnboundedMailbox()
	}

	if config.supervisor == nil {
		config.supervisor = supervisor.NewSupervisor()
	}
	return config
}

// SpawnOption is the interface that applies to a spawned actor
type SpawnOption interface {
	// Apply sets the Option value of a config.
	Apply(config *spawnConfig)
}

var _ SpawnOption = spawnOption(nil)

// spawnOption implements the SpawnOption interface.
type spawnOption func(config *spawnConfig)

// Apply sets the Option value of a config.
func (f spawnOption) Apply(c *spawnConfig) {
	f(c)
}

// WithMailbox sets the mailbox to use when starting the given actor
func WithMailbox(mailbox Mailbox) SpawnOption {
	return spawnOption(func(config *spawnConfig) {
		config.mailbox = mailbox
	})
}

// WithSupervisor sets the supervisor consulted when the actor fails to handle
// a message. Without it, any failure stops the actor.
func WithSupervisor(supervisor *supervisor.Supervisor) SpawnOption {
	return spawnOption(func(config *spawnConfig) {
		config.supervisor = supervisor
	})
}
