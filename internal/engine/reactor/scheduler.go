// Package reactor builds the projects of a reactor concurrently while
// honoring the order imposed by their dependencies.
package reactor

import (
	"context"
	"errors"
	"slices"
	"sync"

	"go.trai.ch/memo/internal/core/domain"
	"go.trai.ch/memo/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// ProjectStatus represents the build status of a project.
type ProjectStatus string

const (
	// StatusPending indicates the project is waiting for its upstream projects.
	StatusPending ProjectStatus = "Pending"
	// StatusRunning indicates the project is building.
	StatusRunning ProjectStatus = "Running"
	// StatusCompleted indicates the project built successfully.
	StatusCompleted ProjectStatus = "Completed"
	// StatusFailed indicates the project build failed.
	StatusFailed ProjectStatus = "Failed"
)

// BuildFunc builds one project. ctx carries the project span.
type BuildFunc func(ctx context.Context, project *domain.Project) error

// Scheduler builds reactor projects, upstream projects first.
type Scheduler struct {
	tracer ports.Tracer

	mu     sync.RWMutex
	status map[string]ProjectStatus
}

// NewScheduler creates a Scheduler.
func NewScheduler(tracer ports.Tracer) *Scheduler {
	return &Scheduler{
		tracer: tracer,
		status: make(map[string]ProjectStatus),
	}
}

func (s *Scheduler) updateStatus(key string, status ProjectStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status[key] = status
}

// Run builds every project of the session's reactor with at most parallelism
// projects at a time. A failed project keeps its downstream projects pending
// while independent projects still build; every failure is returned.
func (s *Scheduler) Run(ctx context.Context, session *domain.Session, parallelism int, build BuildFunc) error {
	if session.Reactor == nil {
		return domain.ErrReactorNotFound
	}
	if parallelism < 1 {
		parallelism = 1
	}

	state := s.newRunState(ctx, session.Reactor, parallelism, build)
	s.tracer.EmitPlan(ctx, state.order, session.Goals)

	err := state.runLoop()
	if waitErr := state.group.Wait(); waitErr != nil {
		err = errors.Join(err, waitErr)
	}
	return err
}

type result struct {
	project string
	err     error
}

type runState struct {
	s           *Scheduler
	ctx         context.Context
	group       *errgroup.Group
	build       BuildFunc
	reactor     *domain.Reactor
	order       []string
	inDegree    map[string]int
	downstream  map[string][]string
	ready       []string
	active      int
	parallelism int
	resultsCh   chan result
	errs        error
}

func (s *Scheduler) newRunState(ctx context.Context, reactor *domain.Reactor, parallelism int, build BuildFunc) *runState {
	state := &runState{
		s:           s,
		ctx:         ctx,
		group:       &errgroup.Group{},
		build:       build,
		reactor:     reactor,
		inDegree:    make(map[string]int, reactor.Len()),
		downstream:  make(map[string][]string, reactor.Len()),
		parallelism: parallelism,
		resultsCh:   make(chan result, parallelism),
	}

	for p := range reactor.Walk() {
		key := p.Key()
		state.order = append(state.order, key)
		upstream := reactor.Upstream(key)
		state.inDegree[key] = len(upstream)
		for _, up := range upstream {
			state.downstream[up] = append(state.downstream[up], key)
		}
		if len(upstream) == 0 {
			state.ready = append(state.ready, key)
		}
		s.updateStatus(key, StatusPending)
	}
	return state
}

func (state *runState) runLoop() error {
	for !state.isDone() {
		state.schedule()

		if state.isDone() {
			break
		}

		if state.ctx.Err() != nil {
			if state.active == 0 {
				return errors.Join(state.errs, state.ctx.Err())
			}
			state.handleResult(<-state.resultsCh)
			continue
		}

		select {
		case res := <-state.resultsCh:
			state.handleResult(res)
		case <-state.ctx.Done():
		}
	}

	if state.ctx.Err() != nil {
		state.errs = errors.Join(state.errs, state.ctx.Err())
	}
	return state.errs
}

func (state *runState) isDone() bool {
	return state.active == 0 && len(state.ready) == 0
}

func (state *runState) schedule() {
	for len(state.ready) > 0 && state.active < state.parallelism && state.ctx.Err() == nil {
		key := state.ready[0]
		state.ready = state.ready[1:]

		state.active++
		state.s.updateStatus(key, StatusRunning)

		project, _ := state.reactor.Project(key)
		state.group.Go(func() error {
			state.resultsCh <- result{project: key, err: state.buildProject(project)}
			return nil
		})
	}
}

// buildProject ends the project span before the result is reported.
func (state *runState) buildProject(project *domain.Project) error {
	ctx, span := state.s.tracer.Start(state.ctx, project.Key())
	defer span.End()

	span.SetAttribute("memo.project.version", project.Version)
	if err := state.build(ctx, project); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

func (state *runState) handleResult(res result) {
	state.active--

	if res.err != nil {
		err := zerr.With(zerr.Wrap(res.err, domain.ErrProjectBuildFailed.Error()), "project", res.project)
		state.errs = errors.Join(state.errs, err)
		state.s.updateStatus(res.project, StatusFailed)
		return
	}

	state.s.updateStatus(res.project, StatusCompleted)
	downstream := state.downstream[res.project]
	slices.Sort(downstream)
	for _, key := range downstream {
		state.inDegree[key]--
		if state.inDegree[key] == 0 {
			state.ready = append(state.ready, key)
		}
	}
}
