// Package strategy runs the mojo executions of one project through the build
// cache: clean goals first, then a lookup, then either restoration with
// per-execution reconciliation or a live build, and finally a save.
package strategy

import (
	"context"
	"fmt"

	"go.trai.ch/memo/internal/core/domain"
	"go.trai.ch/memo/internal/core/ports"
	"go.trai.ch/zerr"
)

// State is the step a project build attempt is in.
type State int

const (
	// NotStarted is the state before any execution ran.
	NotStarted State = iota
	// CleanRun runs the clean lifecycle executions.
	CleanRun
	// Lookup asks the cache controller for a matching build.
	Lookup
	// Restoring restores artifacts and reconciles the cached segment.
	Restoring
	// LiveExecuting runs executions through the lifecycle runner.
	LiveExecuting
	// Saving records the build in the cache.
	Saving
	// Done is the terminal state.
	Done
)

var stateNames = [...]string{"NOT_STARTED", "CLEAN_RUN", "LOOKUP", "RESTORING", "LIVE_EXECUTING", "SAVING", "DONE"}

// String implements fmt.Stringer.
func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}

// Strategy executes project lifecycles with the build cache.
type Strategy struct {
	config     ports.CacheConfig
	controller ports.CacheController
	reconciler ports.Reconciler
	registry   ports.ExecutionRegistry
	runner     ports.MojoExecutionRunner
	logger     ports.Logger
}

// New creates a Strategy.
func New(
	config ports.CacheConfig,
	controller ports.CacheController,
	reconciler ports.Reconciler,
	registry ports.ExecutionRegistry,
	runner ports.MojoExecutionRunner,
	logger ports.Logger,
) *Strategy {
	return &Strategy{
		config:     config,
		controller: controller,
		reconciler: reconciler,
		registry:   registry,
		runner:     runner,
		logger:     logger,
	}
}

// attempt is the state of one project build.
type attempt struct {
	*Strategy
	session    *domain.Session
	project    *domain.Project
	executions []*domain.MojoExecution
	state      State
}

func (a *attempt) enter(state State) {
	a.state = state
	a.logger.Debug(fmt.Sprintf("%s: %s", a.project.Key(), state))
}

func (a *attempt) run(ctx context.Context, e *domain.MojoExecution) error {
	return a.runner.Run(ctx, a.session, a.project, e)
}

func (a *attempt) runAll(ctx context.Context, executions []*domain.MojoExecution) error {
	for _, e := range executions {
		if err := a.run(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

// Execute runs executions for project in their declared order.
func (s *Strategy) Execute(ctx context.Context, session *domain.Session, project *domain.Project, executions []*domain.MojoExecution) error {
	a := &attempt{Strategy: s, session: session, project: project, executions: executions}
	err := a.execute(ctx)
	a.enter(Done)
	return err
}

func (a *attempt) execute(ctx context.Context) error {
	a.enter(CleanRun)
	clean := domain.CleanSegment(a.executions)
	if err := a.runAll(ctx, clean); err != nil {
		return err
	}

	cliInvoked := isCLIInvoked(a.executions)
	state := domain.CacheDisabled
	result := domain.EmptyResult()
	if !cliInvoked {
		a.enter(Lookup)
		state = a.config.Initialize()
		if state == domain.CacheInitialized {
			var err error
			result, err = a.controller.FindCachedBuild(ctx, a.session, a.project, a.executions)
			if err != nil {
				return err
			}
		}
	}

	restored := false
	if result.IsRestorable() {
		a.enter(Restoring)
		var err error
		restored, err = a.restoreProject(ctx, result)
		if err != nil {
			return err
		}
	} else {
		a.enter(LiveExecuting)
		if err := a.runAll(ctx, a.executions[len(clean):]); err != nil {
			return err
		}
	}

	if state == domain.CacheInitialized && (!result.IsSuccess() || !restored) {
		a.enter(Saving)
		events := a.registry.ProjectExecutions(a.project)
		if err := a.controller.Save(ctx, result, a.executions, events); err != nil {
			return err
		}
	}

	if state == domain.CacheInitialized && a.config.IsFailFast() && !result.IsSuccess() {
		msg := fmt.Sprintf("Failed to restore project[%s] from cache, failing build.", a.project.Key())
		return zerr.With(zerr.Wrap(domain.ErrCacheRestoreFailed, msg), "project", a.project.Key())
	}
	return nil
}

// restoreProject restores the artifacts of result and walks the cached
// segment. It reports whether every cached execution was reused.
func (a *attempt) restoreProject(ctx context.Context, result domain.CacheResult) (bool, error) {
	build := result.Build
	cached := domain.CachedSegment(a.executions, build)

	if !a.controller.RestoreProjectArtifacts(ctx, result) {
		a.logger.Info("Cannot restore project artifacts, continuing with non cached build")
		a.enter(LiveExecuting)
		if err := a.runAll(ctx, cached); err != nil {
			return false, err
		}
		return false, a.runAll(ctx, domain.PostCachedSegment(a.executions, build))
	}

	restored := true
	for i, e := range cached {
		if a.controller.IsForcedExecution(a.project, e) {
			a.logger.Info("Mojo execution is forced by project property: " + e.FullGoalName())
			if err := a.run(ctx, e); err != nil {
				return false, err
			}
			continue
		}
		if a.reconciler.VerifyCacheConsistency(ctx, e, build, a.project) {
			continue
		}

		restored = false
		if !packaged(cached[:i]) {
			a.project.ResetArtifacts()
		}
		a.registry.Remove(a.project)
		a.enter(LiveExecuting)
		if err := a.runAll(ctx, cached[i:]); err != nil {
			return false, err
		}
		break
	}

	post := domain.PostCachedSegment(a.executions, build)
	if len(post) > 0 {
		a.enter(LiveExecuting)
	}
	return restored, a.runAll(ctx, post)
}

// packaged reports whether any of executions is bound to package or a later phase.
func packaged(executions []*domain.MojoExecution) bool {
	for _, e := range executions {
		if domain.PhaseIndex(e.Phase) >= domain.PhaseIndex(domain.PhasePackage) {
			return true
		}
	}
	return false
}

// isCLIInvoked reports whether any execution was requested as a direct goal.
func isCLIInvoked(executions []*domain.MojoExecution) bool {
	for _, e := range executions {
		if e.Source == domain.SourceCLI {
			return true
		}
	}
	return false
}
