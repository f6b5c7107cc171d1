package telemetry

import (
	"context"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/assetpipe/internal/core/ports"
)

// InstrumentationName names the tracer that records task spans.
const InstrumentationName = "assetpipe"

// Provider owns the SDK tracer provider whose span processors feed the
// renderer and the metrics.
type Provider struct {
	tp       *sdktrace.TracerProvider
	renderer ports.Renderer
}

// NewProvider creates a provider. Spans are processed synchronously, so
// renderer output for a task is complete when its span ends.
func NewProvider(renderer ports.Renderer, metrics ports.Metrics) *Provider {
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(NewBridge(renderer)),
		sdktrace.WithSpanProcessor(NewMetricsProcessor(metrics)),
	)
	return &Provider{tp: tp, renderer: renderer}
}

// Tracer returns the tracer for task spans.
func (p *Provider) Tracer() *OTelTracer {
	return NewOTelTracer(p.tp, InstrumentationName, p.renderer)
}

// Shutdown stops the provider.
func (p *Provider) Shutdown(ctx context.Context) error {
	return p.tp.Shutdown(ctx)
}
