package telemetry

import (
	"context"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/assetpipe/internal/core/ports"
)

var _ sdktrace.SpanProcessor = (*MetricsProcessor)(nil)

// MetricsProcessor records the duration and outcome of every finished span.
type MetricsProcessor struct {
	metrics ports.Metrics
}

// NewMetricsProcessor returns a new MetricsProcessor.
func NewMetricsProcessor(metrics ports.Metrics) *MetricsProcessor {
	return &MetricsProcessor{metrics: metrics}
}

// OnStart does nothing.
func (p *MetricsProcessor) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd observes the span as one task run.
func (p *MetricsProcessor) OnEnd(s sdktrace.ReadOnlySpan) {
	if p.metrics == nil {
		return
	}
	p.metrics.ObserveTask(s.Name(), s.EndTime().Sub(s.StartTime()), spanError(s))
}

// ForceFlush does nothing.
func (p *MetricsProcessor) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (p *MetricsProcessor) Shutdown(_ context.Context) error {
	return nil
}
