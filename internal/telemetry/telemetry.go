package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MeterName is the instrumentation scope of the simulation metrics.
const MeterName = "github.com/setanarut/softbody"

// Metrics records per-step and per-drag measurements of a simulation run.
type Metrics struct {
	ticks        metric.Int64Counter
	stepDuration metric.Float64Histogram
	drags        metric.Int64Counter
}

// New creates the instruments on meter.
func New(meter metric.Meter) (*Metrics, error) {
	ticks, err := meter.Int64Counter("softbody.ticks",
		metric.WithDescription("Completed simulation steps"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create tick counter: %w", err)
	}

	stepDuration, err := meter.Float64Histogram("softbody.step.duration",
		metric.WithDescription("Wall time of one simulation step"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create step histogram: %w", err)
	}

	drags, err := meter.Int64Counter("softbody.drags",
		metric.WithDescription("Pointer drag events, by whether a body was hit"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create drag counter: %w", err)
	}

	return &Metrics{
		ticks:        ticks,
		stepDuration: stepDuration,
		drags:        drags,
	}, nil
}

// RecordStep records one completed step that took d for the given number of
// bodies.
func (m *Metrics) RecordStep(ctx context.Context, d time.Duration, bodies int) {
	attrs := metric.WithAttributes(attribute.Int("bodies", bodies))
	m.ticks.Add(ctx, 1, attrs)
	m.stepDuration.Record(ctx, d.Seconds(), attrs)
}

// RecordDrag records one drag event.
func (m *Metrics) RecordDrag(ctx context.Context, hit bool) {
	m.drags.Add(ctx, 1, metric.WithAttributes(attribute.Bool("hit", hit)))
}
