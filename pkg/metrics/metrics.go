// Package metrics holds shared OpenTelemetry instruments.
package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

const meterName = "userlookup"

// Calls counts and times callable invocations by function and outcome status.
type Calls struct {
	total    metric.Int64Counter
	duration metric.Float64Histogram
}

// NewCalls registers the call instruments on mp.
func NewCalls(mp metric.MeterProvider) (*Calls, error) {
	meter := mp.Meter(meterName)

	total, err := meter.Int64Counter("callable.calls",
		metric.WithDescription("Number of callable invocations by outcome status."))
	if err != nil {
		return nil, fmt.Errorf("could not create calls counter: %w", err)
	}

	duration, err := meter.Float64Histogram("callable.duration",
		metric.WithDescription("Duration of callable invocations."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create duration histogram: %w", err)
	}

	return &Calls{total: total, duration: duration}, nil
}

// Record adds one invocation of function that finished with status after elapsed.
func (c *Calls) Record(ctx context.Context, function, status string, elapsed time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("function", function),
		attribute.String("status", status),
	)
	c.total.Add(ctx, 1, attrs)
	c.duration.Record(ctx, elapsed.Seconds(), attrs)
}
