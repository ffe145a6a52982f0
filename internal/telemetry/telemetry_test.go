package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
)

func TestNew_NoopMeter(t *testing.T) {
	m, err := New(noop.NewMeterProvider().Meter(MeterName))
	require.NoError(t, err)
	require.NotNil(t, m)

	require.NotPanics(t, func() {
		m.RecordStep(context.Background(), 2*time.Millisecond, 7)
		m.RecordDrag(context.Background(), true)
		m.RecordDrag(context.Background(), false)
	})
}
