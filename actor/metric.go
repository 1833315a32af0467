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

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/multierr"
)

const instrumentationName = "github.com/tochemey/counterakt/actor"

// metrics holds the instruments shared by every actor of a system
type metrics struct {
	processed metric.Int64Counter
	dropped   metric.Int64Counter
	failures  metric.Int64Counter
	restarts  metric.Int64Counter
	active    metric.Int64UpDownCounter
}

func newMetrics(provider metric.MeterProvider) (*metrics, error) {
	meter := provider.Meter(instrumentationName)

	var (
		m   = new(metrics)
		err error
		e   error
	)

	m.processed, e = meter.Int64Counter("actor.messages.processed",
		metric.WithDescription("Number of messages handled by actors"))
	err = multierr.Append(err, e)

	m.dropped, e = meter.Int64Counter("actor.messages.dropped",
		metric.WithDescription("Number of messages dropped unhandled or on shutdown"))
	err = multierr.Append(err, e)

	m.failures, e = meter.Int64Counter("actor.failures",
		metric.WithDescription("Number of failed message handlings"))
	err = multierr.Append(err, e)

	m.restarts, e = meter.Int64Counter("actor.restarts",
		metric.WithDescription("Number of actor restarts"))
	err = multierr.Append(err, e)

	m.active, e = meter.Int64UpDownCounter("actor.active",
		metric.WithDescription("Number of running actors"))
	err = multierr.Append(err, e)

	if err != nil {
		return nil, err
	}
	return m, nil
}

func actorAttributes(name string) metric.MeasurementOption {
	return metric.WithAttributes(attribute.String("actor.name", name))
}

func (m *metrics) recordProcessed(ctx context.Context, name string) {
	m.processed.Add(ctx, 1, actorAttributes(name))
}

func (m *metrics) recordDropped(ctx context.Context, name string, count int64) {
	if count > 0 {
		m.dropped.Add(ctx, count, actorAttributes(name))
	}
}

func (m *metrics) recordFailure(ctx context.Context, name string) {
	m.failures.Add(ctx, 1, actorAttributes(name))
}

func (m *metrics) recordRestart(ctx context.Context, name string) {
	m.restarts.Add(ctx, 1, actorAttributes(name))
}

func (m *metrics) recordActive(ctx context.Context, name string, delta int64) {
	m.active.Add(ctx, delta, actorAttributes(name))
}
