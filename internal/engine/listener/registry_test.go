package listener_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/memo/internal/core/domain"
	"go.trai.ch/memo/internal/engine/listener"
)

func project(artifactID string) *domain.Project {
	return &domain.Project{Coordinates: domain.Coordinates{GroupID: "com.acme", ArtifactID: artifactID}}
}

func execution(goal string) *domain.MojoExecution {
	return &domain.MojoExecution{
		Plugin:      domain.PluginRef{ArtifactID: "maven-" + goal + "-plugin"},
		Goal:        goal,
		ExecutionID: "default-" + goal,
	}
}

func TestRegistry_Lifecycle(t *testing.T) {
	t.Parallel()

	r := listener.NewRegistry()
	core := project("core")
	compile := execution("compile")

	assert.Empty(t, r.ProjectExecutions(core))

	started := domain.ExecutionEvent{Execution: compile, Parameters: domain.MojoParameters{"release": "17"}, StartedAt: time.Unix(1, 0)}
	r.BeforeMojoExecution(core, started)

	events := r.ProjectExecutions(core)
	require.Len(t, events, 1)
	assert.False(t, events[compile.Key()].Succeeded())

	finished := started
	finished.FinishedAt = time.Unix(2, 0)
	r.AfterMojoExecutionSuccess(core, finished)
	assert.True(t, r.ProjectExecutions(core)[compile.Key()].Succeeded())

	failed := domain.ExecutionEvent{Execution: execution("test"), FinishedAt: time.Unix(3, 0), Err: errors.New("boom")}
	r.AfterExecutionFailure(core, failed)
	assert.Len(t, r.ProjectExecutions(core), 2)

	// A returned map is a snapshot.
	snapshot := r.ProjectExecutions(core)
	delete(snapshot, compile.Key())
	assert.Len(t, r.ProjectExecutions(core), 2)

	r.Remove(core)
	assert.Empty(t, r.ProjectExecutions(core))
}

func TestRegistry_ProjectsAreIsolated(t *testing.T) {
	t.Parallel()

	r := listener.NewRegistry()
	r.BeforeMojoExecution(project("api"), domain.ExecutionEvent{Execution: execution("compile")})

	assert.Len(t, r.ProjectExecutions(project("api")), 1)
	assert.Empty(t, r.ProjectExecutions(project("app")))
}

func TestRegistry_ConcurrentFirstTouch(t *testing.T) {
	t.Parallel()

	r := listener.NewRegistry()
	core := project("core")

	const writers = 32
	var wg sync.WaitGroup
	for i := range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			e := &domain.MojoExecution{Goal: "goal", ExecutionID: fmt.Sprintf("exec-%d", i)}
			r.BeforeMojoExecution(core, domain.ExecutionEvent{Execution: e})
		}()
	}
	wg.Wait()

	assert.Len(t, r.ProjectExecutions(core), writers)
}
