package ports

import (
	"context"

	"go.trai.ch/memo/internal/core/domain"
)

//go:generate mockgen -source=mojo.go -destination=mocks/mock_mojo.go -package=mocks

// MojoExecutionRunner runs a single mojo execution synchronously.
type MojoExecutionRunner interface {
	// Run executes the mojo for project.
	Run(ctx context.Context, session *domain.Session, project *domain.Project, execution *domain.MojoExecution) error
}

// Mojo is a configured mojo instance whose parameters can be read by name.
type Mojo interface {
	// Execution returns the execution the mojo was configured for.
	Execution() *domain.MojoExecution
	// Parameter returns a configured parameter. Unknown names fail with
	// domain.ErrPropertyNotAccessible.
	Parameter(name string) (string, error)
	// Parameters returns a snapshot of every configured parameter.
	Parameters() domain.MojoParameters
}

// PluginManager configures mojo instances.
type PluginManager interface {
	// ConfiguredMojo returns the mojo for execution with its configuration applied.
	ConfiguredMojo(ctx context.Context, project *domain.Project, execution *domain.MojoExecution) (Mojo, error)
	// ReleaseMojo releases a mojo obtained from ConfiguredMojo.
	ReleaseMojo(mojo Mojo)
}

// ExecutionListener receives the hooks fired around each live mojo execution.
type ExecutionListener interface {
	// BeforeMojoExecution is called before the mojo runs.
	BeforeMojoExecution(project *domain.Project, event domain.ExecutionEvent)
	// AfterMojoExecutionSuccess is called after the mojo succeeded.
	AfterMojoExecutionSuccess(project *domain.Project, event domain.ExecutionEvent)
	// AfterExecutionFailure is called after the mojo failed.
	AfterExecutionFailure(project *domain.Project, event domain.ExecutionEvent)
}

// ExecutionRegistry holds the events captured per project during a session.
type ExecutionRegistry interface {
	ExecutionListener
	// ProjectExecutions returns the captured events of a project keyed by execution key.
	ProjectExecutions(project *domain.Project) map[string]domain.ExecutionEvent
	// Remove forgets every event of a project.
	Remove(project *domain.Project)
}
