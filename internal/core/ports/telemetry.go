package ports

import (
	"context"
	"io"
)

//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Tracer is the entry point for creating spans.
type Tracer interface {
	// Start creates a new span.
	Start(ctx context.Context, name string, opts ...SpanOption) (context.Context, Span)
	// EmitPlan signals that projects are planned to build goals.
	EmitPlan(ctx context.Context, projects []string, goals []string)
}

// Span represents a unit of work.
type Span interface {
	io.Writer
	// End completes the span.
	End()
	// RecordError records an error for the span.
	RecordError(err error)
	// SetAttribute adds a key-value pair to the span.
	SetAttribute(key string, value any)
}

// SpanConfig holds configuration for a starting span.
type SpanConfig struct {
	// Parent names the logical parent, used by renderers for prefixes.
	Parent string
}

// SpanOption is a functional option for configuring a span.
type SpanOption func(*SpanConfig)

// WithParent sets the logical parent of a span.
func WithParent(name string) SpanOption {
	return func(c *SpanConfig) {
		c.Parent = name
	}
}
