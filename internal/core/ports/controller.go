package ports

import (
	"context"

	"go.trai.ch/memo/internal/core/domain"
)

//go:generate mockgen -source=controller.go -destination=mocks/mock_controller.go -package=mocks

// CacheController orchestrates lookup, restoration and save of project builds.
type CacheController interface {
	// FindCachedBuild looks up a build for the project's remaining lifecycle.
	// It only returns an error when fail-fast is configured.
	FindCachedBuild(ctx context.Context, session *domain.Session, project *domain.Project, executions []*domain.MojoExecution) (domain.CacheResult, error)
	// RestoreProjectArtifacts materializes the artifacts of a hit into the project.
	RestoreProjectArtifacts(ctx context.Context, result domain.CacheResult) bool
	// IsForcedExecution reports whether an execution must run even on a hit.
	IsForcedExecution(project *domain.Project, execution *domain.MojoExecution) bool
	// Save records the live executions of a build attempt.
	// It only returns an error when fail-fast is configured.
	Save(ctx context.Context, result domain.CacheResult, executions []*domain.MojoExecution, events map[string]domain.ExecutionEvent) error
	// SaveCacheReport writes the session report.
	SaveCacheReport(ctx context.Context, session *domain.Session) error
}

// Reconciler checks a cached execution against the live mojo configuration.
type Reconciler interface {
	// VerifyCacheConsistency reports whether execution may be skipped.
	VerifyCacheConsistency(ctx context.Context, execution *domain.MojoExecution, build *domain.Build, project *domain.Project) bool
}
