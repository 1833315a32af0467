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
	"time"

	"go.opentelemetry.io/otel/metric/noop"

	"github.com/tochemey/counterakt/actor"
	"github.com/tochemey/counterakt/log"
)

// TestKit defines actor test kit
type TestKit struct {
	actorSystem actor.ActorSystem
	kt          *testing.T
	logger      log.Logger
}

// New creates an instance of TestKit
func New(t *testing.T, opts ...Option) *TestKit {
	testkit := &TestKit{
		kt:     t,
		logger: log.DiscardLogger,
	}

	for _, opt := range opts {
		opt.Apply(testkit)
	}

	system, err := actor.NewActorSystem(
		"testkit",
		actor.WithLogger(testkit.logger),
		actor.WithMeterProvider(noop.NewMeterProvider()),
		actor.WithActorInitTimeout(time.Second),
		actor.WithActorInitMaxRetries(5))
	if err != nil {
		t.Fatal(err.Error())
	}

	testkit.actorSystem = system
	return testkit
}

// ActorSystem returns the testkit actor system
func (k *TestKit) ActorSystem() actor.ActorSystem {
	return k.actorSystem
}

// Spawn creates an actor
func (k *TestKit) Spawn(ctx context.Context, name string, a actor.Actor, opts ...actor.SpawnOption) *actor.PID {
	pid, err := k.actorSystem.Spawn(ctx, name, a, opts...)
	if err != nil {
		k.kt.Fatal(err.Error())
	}
	return pid
}

// NewProbe creates a test probe registered under name, so that actors
// resolving that name through the registry talk to the probe.
func (k *TestKit) NewProbe(ctx context.Context, name string) Probe {
	testProbe, err := newProbe(ctx, k.kt, k.actorSystem, name)
	if err != nil {
		k.kt.Fatal(err.Error())
	}
	return testProbe
}

// Shutdown stops the test kit
func (k *TestKit) Shutdown(ctx context.Context) {
	if err := k.actorSystem.Stop(ctx); err != nil {
		k.kt.Fatal(err.Error())
	}
}
