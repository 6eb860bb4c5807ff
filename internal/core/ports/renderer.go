package ports

import (
	"context"
	"time"
)

// Renderer is the abstraction for build output rendering.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// Start initializes the renderer.
	Start(ctx context.Context) error

	// Stop flushes buffered output.
	Stop() error

	// OnPlanEmit is called with the projects of the reactor in build order.
	OnPlanEmit(projects []string, goals []string)

	// OnTaskStart is called when a project build or mojo execution starts.
	OnTaskStart(spanID, parentID, name string, startTime time.Time)

	// OnTaskLog is called when a running unit emits output.
	OnTaskLog(spanID string, data []byte)

	// OnTaskComplete is called when a unit finishes; err is nil on success.
	OnTaskComplete(spanID string, endTime time.Time, err error)
}
