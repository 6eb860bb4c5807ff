// Package listener captures the live parameters of every mojo execution of a session.
package listener

import (
	"sync"

	"go.trai.ch/memo/internal/core/domain"
	"go.trai.ch/memo/internal/core/ports"
)

// Registry maps a project to the events of the executions that ran for it.
// It is safe for concurrent use by the goroutines building different projects.
type Registry struct {
	projects sync.Map // project key -> *projectEvents
}

type projectEvents struct {
	mu     sync.Mutex
	events map[string]domain.ExecutionEvent
}

var _ ports.ExecutionRegistry = (*Registry)(nil)

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{}
}

func (r *Registry) forProject(project *domain.Project) *projectEvents {
	if pe, ok := r.projects.Load(project.Key()); ok {
		return pe.(*projectEvents)
	}
	pe, _ := r.projects.LoadOrStore(project.Key(), &projectEvents{events: make(map[string]domain.ExecutionEvent)})
	return pe.(*projectEvents)
}

func (r *Registry) record(project *domain.Project, event domain.ExecutionEvent) {
	pe := r.forProject(project)
	pe.mu.Lock()
	defer pe.mu.Unlock()
	pe.events[event.Execution.Key()] = event
}

// BeforeMojoExecution implements ports.ExecutionListener.
func (r *Registry) BeforeMojoExecution(project *domain.Project, event domain.ExecutionEvent) {
	r.record(project, event)
}

// AfterMojoExecutionSuccess implements ports.ExecutionListener.
func (r *Registry) AfterMojoExecutionSuccess(project *domain.Project, event domain.ExecutionEvent) {
	r.record(project, event)
}

// AfterExecutionFailure implements ports.ExecutionListener.
func (r *Registry) AfterExecutionFailure(project *domain.Project, event domain.ExecutionEvent) {
	r.record(project, event)
}

// ProjectExecutions returns a copy of the events captured for project.
func (r *Registry) ProjectExecutions(project *domain.Project) map[string]domain.ExecutionEvent {
	v, ok := r.projects.Load(project.Key())
	if !ok {
		return map[string]domain.ExecutionEvent{}
	}
	pe := v.(*projectEvents)
	pe.mu.Lock()
	defer pe.mu.Unlock()

	out := make(map[string]domain.ExecutionEvent, len(pe.events))
	for k, e := range pe.events {
		out[k] = e
	}
	return out
}

// Remove forgets every event captured for project.
func (r *Registry) Remove(project *domain.Project) {
	r.projects.Delete(project.Key())
}
