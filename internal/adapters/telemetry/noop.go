package telemetry

import (
	"context"

	"go.trai.ch/squeeze/internal/core/ports"
)

// NoopTracer is a no-op implementation of ports.Tracer.
type NoopTracer struct{}

// NewNoopTracer creates a new NoopTracer.
func NewNoopTracer() *NoopTracer {
	return &NoopTracer{}
}

// Start returns the context unchanged and a span that records nothing.
func (t *NoopTracer) Start(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
	return ctx, noopSpan{}
}

type noopSpan struct{}

func (noopSpan) End() {}
func (noopSpan) RecordError(error) {}
func (noopSpan) SetAttribute(string, any) {}
