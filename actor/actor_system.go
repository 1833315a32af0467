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
	"regexp"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/atomic"
	"go.uber.org/multierr"

	gerrors "github.com/tochemey/counterakt/errors"
	"github.com/tochemey/counterakt/log"
)

const (
	// DefaultInitMaxRetries defines the default number of PreStart attempts
	DefaultInitMaxRetries = 1
	// DefaultInitTimeout defines the default time given to PreStart attempts
	DefaultInitTimeout = time.Second
)

var systemNamePattern = regexp.MustCompile("^[a-zA-Z0-9][a-zA-Z0-9-_]*$")

// ActorSystem hosts a set of named actors sharing one registry, one logger
// and one set of metrics instruments.
type ActorSystem interface {
	// Name returns the actor system name
	Name() string
	// Spawn creates, initializes and starts an actor registered under name.
	// It fails when the name is already bound to a live actor or when the
	// actor's PreStart fails.
	Spawn(ctx context.Context, name string, actor Actor, opts ...SpawnOption) (*PID, error)
	// LocalActor returns the live actor registered under name
	LocalActor(name string) (*PID, error)
	// Actors returns the actors currently running, in spawn order
	Actors() []*PID
	// Registry returns the name directory shared by the actors of the system
	Registry() *Registry
	// Logger returns the logger set when creating the actor system
	Logger() log.Logger
	// Stop stops every running actor in reverse spawn order and waits for
	// their termination. The actor system cannot be used afterwards.
	Stop(ctx context.Context) error
}

// actorSystem implements ActorSystem
type actorSystem struct {
	name           string
	logger         log.Logger
	registry       *Registry
	meterProvider  metric.MeterProvider
	metrics        *metrics
	initMaxRetries int
	initTimeout    time.Duration

	mu      sync.Mutex
	spawned []*PID
	stopped *atomic.Bool
}

var _ ActorSystem = (*actorSystem)(nil)

// NewActorSystem creates an instance of ActorSystem
func NewActorSystem(name string, opts ...Option) (ActorSystem, error) {
	if name == "" {
		return nil, gerrors.ErrNameRequired
	}

	if !systemNamePattern.MatchString(name) {
		return nil, fmt.Errorf("actor system name=(%s) is invalid", name)
	}

	system := &actorSystem{
		name:           name,
		logger:         log.DefaultLogger,
		registry:       NewRegistry(),
		meterProvider:  otel.GetMeterProvider(),
		initMaxRetries: DefaultInitMaxRetries,
		initTimeout:    DefaultInitTimeout,
		stopped:        atomic.NewBool(false),
	}

	for _, opt := range opts {
		opt.Apply(system)
	}

	if system.initMaxRetries <= 0 {
		system.initMaxRetries = DefaultInitMaxRetries
	}

	if system.initTimeout <= 0 {
		return nil, gerrors.ErrInvalidTimeout
	}

	metrics, err := newMetrics(system.meterProvider)
	if err != nil {
		return nil, err
	}

	system.metrics = metrics
	system.logger = system.logger.With("system", name)
	return system, nil
}

// Name returns the actor system name
func (x *actorSystem) Name() string {
	return x.name
}

// Registry returns the actor system registry
func (x *actorSystem) Registry() *Registry {
	return x.registry
}

// Logger returns the actor system logger
func (x *actorSystem) Logger() log.Logger {
	return x.logger
}

// Spawn creates and starts an actor registered under name
func (x *actorSystem) Spawn(ctx context.Context, name string, actor Actor, opts ...SpawnOption) (*PID, error) {
	if x.stopped.Load() {
		return nil, gerrors.ErrActorSystemStopped
	}

	if actor == nil {
		return nil, gerrors.ErrUndefinedActor
	}

	pid := newPID(ctx, name, actor, x, newSpawnConfig(opts...))

	// the name is claimed before PreStart so that two spawns cannot race for it
	if err := x.registry.Register(name, pid); err != nil {
		return nil, err
	}

	if err := pid.init(ctx); err != nil {
		x.registry.Deregister(name, pid)
		return nil, err
	}

	x.mu.Lock()
	x.spawned = append(x.spawned, pid)
	x.mu.Unlock()

	pid.start()
	return pid, nil
}

// LocalActor returns the live actor registered under name
func (x *actorSystem) LocalActor(name string) (*PID, error) {
	pid, err := x.registry.Resolve(name)
	if err != nil {
		return nil, err
	}

	if !pid.IsRunning() {
		return nil, gerrors.NewErrDead(name)
	}
	return pid, nil
}

// Actors returns the running actors in spawn order
func (x *actorSystem) Actors() []*PID {
	x.mu.Lock()
	defer x.mu.Unlock()

	actors := make([]*PID, 0, len(x.spawned))
	for _, pid := range x.spawned {
		if pid.IsRunning() {
			actors = append(actors, pid)
		}
	}
	return actors
}

// Stop stops the running actors in reverse spawn order. Actors that have
// already terminated, and whose owner already collected their error, are
// not reported again.
func (x *actorSystem) Stop(ctx context.Context) error {
	if !x.stopped.CompareAndSwap(false, true) {
		return nil
	}

	x.mu.Lock()
	spawned := x.spawned
	x.spawned = nil
	x.mu.Unlock()

	x.logger.Infof("Actor system %s is shutting down...", x.name)

	var err error
	for i := len(spawned) - 1; i >= 0; i-- {
		pid := spawned[i]
		if pid.isTerminated() {
			continue
		}
		err = multierr.Append(err, pid.Shutdown(ctx))
	}

	if err != nil {
		x.logger.Errorf("Actor system %s shutdown with errors: %v", x.name, err)
		return err
	}

	x.logger.Infof("Actor system %s successfully shutdown", x.name)
	return nil
}
