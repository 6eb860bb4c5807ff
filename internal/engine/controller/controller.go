// Package controller composes the local and remote build caches: it looks up
// builds for a project, restores their artifacts, records live builds and
// reports the outcome of a session.
package controller

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.trai.ch/memo/internal/core/domain"
	"go.trai.ch/memo/internal/core/ports"
	"go.trai.ch/zerr"
)

// AlwaysRunPluginsProperty is the project property listing plugin goals that
// run even on a cache hit, e.g. "exec:java,checkstyle".
const AlwaysRunPluginsProperty = "memo.alwaysRunPlugins"

// Option configures a Controller.
type Option func(*Controller)

// WithBaseline enables baseline diff reports for saved builds.
func WithBaseline(baseline ports.BaselineRepository) Option {
	return func(c *Controller) {
		c.baseline = baseline
	}
}

// WithVersion sets the implementation version written to build records.
func WithVersion(version string) Option {
	return func(c *Controller) {
		c.version = version
	}
}

// WithClock replaces the time source of build provenance.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		c.now = now
	}
}

// Controller implements ports.CacheController.
type Controller struct {
	config     ports.CacheConfig
	calculator ports.InputCalculator
	local      ports.LocalRepository
	remote     ports.RemoteRepository
	hasher     ports.Hasher
	archiver   ports.Archiver
	logger     ports.Logger
	baseline   ports.BaselineRepository
	version    string
	now        func() time.Time

	// outcomes holds the latest *outcome per project key for the session report.
	outcomes sync.Map
}

var _ ports.CacheController = (*Controller)(nil)

type outcome struct {
	project *domain.Project
	key     domain.CacheKey
	result  domain.CacheResult
	shared  bool
	rebuilt bool
}

// New creates a Controller for one session.
func New(
	config ports.CacheConfig,
	calculator ports.InputCalculator,
	local ports.LocalRepository,
	remote ports.RemoteRepository,
	hasher ports.Hasher,
	archiver ports.Archiver,
	logger ports.Logger,
	opts ...Option,
) *Controller {
	c := &Controller{
		config:     config,
		calculator: calculator,
		local:      local,
		remote:     remote,
		hasher:     hasher,
		archiver:   archiver,
		logger:     logger,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FindCachedBuild computes the project's cache key and looks it up, remote
// copy first. The local build wins when it is a full hit, or when it is a
// partial hit and the remote one is not.
func (c *Controller) FindCachedBuild(
	ctx context.Context,
	session *domain.Session,
	project *domain.Project,
	executions []*domain.MojoExecution,
) (domain.CacheResult, error) {
	if !domain.IsLaterPhaseThanClean(domain.HighestExecutionPhase(executions)) || !c.config.IsEnabled() {
		return domain.EmptyResult(), nil
	}

	c.logger.Info("Attempting to restore project from build cache")

	info, err := c.calculator.CalculateInput(ctx, session, project)
	if err != nil {
		c.logger.Error(err)
		result := domain.EmptyResult()
		c.remember(project, domain.CacheKey{}, result)
		return result, nil
	}

	cacheCtx := &domain.CacheContext{Session: session, Project: project, InputInfo: info}
	key := info.Key(project.Key())

	result, err := c.findRemoteBuild(ctx, key, cacheCtx, executions)
	if err != nil {
		return c.lookupFailed(key, cacheCtx, err)
	}
	if !result.IsSuccess() {
		local, err := c.findLocalBuild(ctx, key, cacheCtx, executions)
		if err != nil {
			return c.lookupFailed(key, cacheCtx, err)
		}
		if result.Build == nil || local.IsSuccess() || (local.IsPartialSuccess() && !result.IsPartialSuccess()) {
			result = local
		}
	}

	if result.Build == nil {
		c.logger.Info("Project is not found in cache")
	}
	c.remember(project, key, result)
	return result, nil
}

// findRemoteBuild returns the downloaded copy of the remote build, asking the
// remote when there is none and the lookup throttle allows it.
func (c *Controller) findRemoteBuild(
	ctx context.Context,
	key domain.CacheKey,
	cacheCtx *domain.CacheContext,
	executions []*domain.MojoExecution,
) (domain.CacheResult, error) {
	build, err := c.local.FindBuild(ctx, key)
	if err != nil {
		return domain.CacheResult{}, err
	}

	if build == nil && c.remote.Enabled() && c.local.NeedsRemoteLookup(ctx, key) {
		build, err = c.remote.FindBuild(ctx, key)
		if err != nil {
			return domain.CacheResult{}, err
		}
		if build != nil {
			build.Source = domain.SourceRemote
			if err := c.local.SaveBuild(ctx, key, build, false); err != nil {
				return domain.CacheResult{}, err
			}
		} else if err := c.local.MarkRemoteLookup(ctx, key); err != nil {
			return domain.CacheResult{}, err
		}
	}

	return c.analyzeResult(cacheCtx, build, executions), nil
}

func (c *Controller) findLocalBuild(
	ctx context.Context,
	key domain.CacheKey,
	cacheCtx *domain.CacheContext,
	executions []*domain.MojoExecution,
) (domain.CacheResult, error) {
	build, err := c.local.FindLocalBuild(ctx, key)
	if err != nil {
		return domain.CacheResult{}, err
	}
	return c.analyzeResult(cacheCtx, build, executions), nil
}

// lookupFailed turns a lookup error into a miss, or returns it under fail-fast.
func (c *Controller) lookupFailed(key domain.CacheKey, cacheCtx *domain.CacheContext, err error) (domain.CacheResult, error) {
	err = zerr.With(err, "project", key.Project)
	result := domain.EmptyResultWithContext(cacheCtx)
	c.remember(cacheCtx.Project, key, result)
	if c.config.IsFailFast() {
		return result, err
	}
	c.logger.Error(err)
	return result, nil
}

// analyzeResult decides how much of the requested lifecycle build covers.
func (c *Controller) analyzeResult(
	cacheCtx *domain.CacheContext,
	build *domain.Build,
	executions []*domain.MojoExecution,
) domain.CacheResult {
	if build == nil {
		return domain.EmptyResultWithContext(cacheCtx)
	}

	c.logger.Info("Found cached build, restoring from cache " + build.ProjectsInputInfo.Checksum)

	if build.CacheImplementationVersion != c.version {
		c.logger.Warn(fmt.Sprintf("Cached build was produced by a different cache implementation version: %s, current: %s",
			build.CacheImplementationVersion, c.version))
	}

	cached := domain.CachedSegment(executions, build)
	if missing := missingExecutions(build, cached); len(missing) > 0 {
		c.logger.Warn("Cached build doesn't contain all requested plugin executions, cannot restore. Missing: " +
			strings.Join(missing, ", "))
		return domain.FailureResult(build, cacheCtx)
	}

	if !c.trackedPropertiesRecorded(build, cached) {
		c.logger.Info("Cached build violates cache rules, cannot restore")
		return domain.FailureResult(build, cacheCtx)
	}

	requested := domain.HighestExecutionPhase(executions)
	if domain.IsLaterPhase(requested, build.HighestCompletedPhase()) && !c.canIgnoreMissing(executions, build) {
		c.logger.Info(fmt.Sprintf("Project restored partially. Highest cached goal: %s, requested: %s",
			build.HighestCompletedPhase(), requested))
		return domain.PartialResult(build, cacheCtx)
	}
	return domain.SuccessResult(build, cacheCtx)
}

func missingExecutions(build *domain.Build, executions []*domain.MojoExecution) []string {
	var missing []string
	for _, e := range executions {
		if _, ok := build.FindExecution(e.Key()); !ok {
			missing = append(missing, e.GoalName())
		}
	}
	return missing
}

// trackedPropertiesRecorded reports whether every tracked property of the
// cached segment was recorded or has a default to compare against.
func (c *Controller) trackedPropertiesRecorded(build *domain.Build, executions []*domain.MojoExecution) bool {
	for _, e := range executions {
		completed, _ := build.FindExecution(e.Key())
		for _, property := range c.config.TrackedProperties(e) {
			if _, ok := completed.Property(property.PropertyName); ok || property.DefaultValue != "" {
				continue
			}
			c.logger.Warn(fmt.Sprintf("Cached build record doesn't contain tracked property %s of %s",
				property.PropertyName, e.GoalName()))
			return false
		}
	}
	return true
}

func (c *Controller) canIgnoreMissing(executions []*domain.MojoExecution, build *domain.Build) bool {
	for _, e := range domain.PostCachedSegment(executions, build) {
		if !c.config.CanIgnoreMissing(e) {
			return false
		}
	}
	return true
}

// IsForcedExecution reports whether execution is selected by runAlways or by
// the memo.alwaysRunPlugins project property. Entries of the property are
// "plugin" or "plugin:goal"; a missing goal or "*" selects every goal.
func (c *Controller) IsForcedExecution(project *domain.Project, execution *domain.MojoExecution) bool {
	if c.config.IsForcedExecution(execution) {
		return true
	}

	value, ok := project.Property(AlwaysRunPluginsProperty)
	if !ok {
		return false
	}
	for entry := range strings.SplitSeq(value, ",") {
		plugin, goal, _ := strings.Cut(strings.TrimSpace(entry), ":")
		if plugin != execution.Plugin.ArtifactID {
			continue
		}
		if goal == "" || goal == "*" || goal == execution.Goal {
			return true
		}
	}
	return false
}

func (c *Controller) remember(project *domain.Project, key domain.CacheKey, result domain.CacheResult) {
	c.outcomes.Store(project.Key(), &outcome{project: project, key: key, result: result})
}
