// Package app implements the application layer for memo.
package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.trai.ch/memo/internal/adapters/remote"
	"go.trai.ch/memo/internal/adapters/shell"
	"go.trai.ch/memo/internal/adapters/telemetry"
	"go.trai.ch/memo/internal/build"
	"go.trai.ch/memo/internal/core/domain"
	"go.trai.ch/memo/internal/core/ports"
	"go.trai.ch/memo/internal/engine/checksum"
	"go.trai.ch/memo/internal/engine/controller"
	"go.trai.ch/memo/internal/engine/diff"
	"go.trai.ch/memo/internal/engine/lifecycle"
	"go.trai.ch/memo/internal/engine/listener"
	"go.trai.ch/memo/internal/engine/reactor"
	"go.trai.ch/memo/internal/engine/reconciler"
	"go.trai.ch/memo/internal/engine/strategy"
	"go.trai.ch/memo/internal/ui/style"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	projects     ports.ProjectLoader
	cacheConfigs ports.CacheConfigLoader
	opener       ports.LocalRepositoryOpener
	remotes      ports.RemoteRepositoryProvider
	resolver     ports.InputResolver
	hasher       ports.Hasher
	archiver     ports.Archiver
	plugins      ports.PluginManager
	tracer       ports.Tracer
	renderer     ports.Renderer
	logger       ports.Logger
	planner      *lifecycle.Planner
	now          func() time.Time
}

// New creates a new App instance.
func New(
	projects ports.ProjectLoader,
	cacheConfigs ports.CacheConfigLoader,
	opener ports.LocalRepositoryOpener,
	remotes ports.RemoteRepositoryProvider,
	resolver ports.InputResolver,
	hasher ports.Hasher,
	archiver ports.Archiver,
	plugins ports.PluginManager,
	tracer ports.Tracer,
	renderer ports.Renderer,
	log ports.Logger,
) *App {
	return &App{
		projects:     projects,
		cacheConfigs: cacheConfigs,
		opener:       opener,
		remotes:      remotes,
		resolver:     resolver,
		hasher:       hasher,
		archiver:     archiver,
		plugins:      plugins,
		tracer:       tracer,
		renderer:     renderer,
		logger:       log,
		planner:      lifecycle.NewPlanner(),
		now:          time.Now,
	}
}

// BuildOptions configures the Build method.
type BuildOptions struct {
	// Goals are lifecycle phases or "prefix:goal" references.
	Goals []string
	// Parallelism bounds the number of projects built at once.
	Parallelism int
	// Overrides win over the cache configuration file and the environment.
	Overrides map[string]any
}

// Build runs goals over the reactor found from dir, reusing cached builds.
func (a *App) Build(ctx context.Context, dir string, opts BuildOptions) error {
	if len(opts.Goals) == 0 {
		return domain.ErrNoGoalsSpecified
	}

	session, config, err := a.openSession(dir, opts.Goals, opts.Overrides)
	if err != nil {
		return err
	}

	plans := make(map[string][]*domain.MojoExecution, session.Reactor.Len())
	for p := range session.Reactor.Walk() {
		executions, err := a.planner.Plan(p, opts.Goals)
		if err != nil {
			return zerr.With(err, "project", p.Key())
		}
		plans[p.Key()] = executions
	}

	repos, err := a.openRepositories(ctx, config)
	if err != nil {
		return err
	}
	defer repos.close(a.logger)

	registry := listener.NewRegistry()
	runner := shell.NewRunner(a.plugins, registry, a.tracer, a.logger)
	ctrl := a.newController(config, repos)
	strat := strategy.New(config, ctrl, reconciler.New(config, a.plugins, a.logger), registry, runner, a.logger)

	if err := a.renderer.Start(ctx); err != nil {
		return err
	}
	shutdown := telemetry.Install(a.renderer)

	runErr := reactor.NewScheduler(a.tracer).Run(ctx, session, opts.Parallelism, func(ctx context.Context, p *domain.Project) error {
		return strat.Execute(ctx, session, p, plans[p.Key()])
	})

	if err := shutdown(context.WithoutCancel(ctx)); err != nil {
		a.logger.Error(err)
	}
	if err := a.renderer.Stop(); err != nil {
		a.logger.Error(err)
	}

	if config.Initialize() == domain.CacheInitialized {
		if err := ctrl.SaveCacheReport(ctx, session); err != nil {
			a.logger.Error(err)
		}
		a.summarize(ctrl.Report(session))
	}

	if runErr != nil {
		return errors.Join(domain.ErrBuildExecutionFailed, runErr)
	}
	return nil
}

// Keys computes the cache key of every reactor project, upstream projects first.
func (a *App) Keys(ctx context.Context, dir string, overrides map[string]any) ([]domain.CacheKey, error) {
	session, config, err := a.openSession(dir, nil, overrides)
	if err != nil {
		return nil, err
	}
	config.Initialize()

	calculator := checksum.NewCalculator(config, a.resolver, a.hasher, a.logger)
	keys := make([]domain.CacheKey, 0, session.Reactor.Len())
	for p := range session.Reactor.Walk() {
		info, err := calculator.CalculateInput(ctx, session, p)
		if err != nil {
			return nil, err
		}
		keys = append(keys, info.Key(p.Key()))
	}
	return keys, nil
}

// Diff compares every project with its baseline build and writes one diff
// report per project. Projects without a local build are compared by their
// inputs only.
func (a *App) Diff(ctx context.Context, dir string, overrides map[string]any) ([]domain.DiffReport, error) {
	session, config, err := a.openSession(dir, nil, overrides)
	if err != nil {
		return nil, err
	}
	config.Initialize()
	settings := config.Settings()
	if settings.BaselineURL == "" {
		return nil, zerr.With(domain.ErrBaselineNotFound, "reason", "baselineUrl is not configured")
	}

	repos, err := a.openRepositories(ctx, config)
	if err != nil {
		return nil, err
	}
	defer repos.close(a.logger)

	baseline := remote.NewBaseline(settings.BaselineURL, settings.Remote, a.logger)
	calculator := checksum.NewCalculator(config, a.resolver, a.hasher, a.logger)

	var reports []domain.DiffReport
	for p := range session.Reactor.Walk() {
		info, err := calculator.CalculateInput(ctx, session, p)
		if err != nil {
			return nil, err
		}

		reference, err := baseline.FindBaselineBuild(ctx, p)
		if err != nil {
			return nil, err
		}
		if reference == nil {
			a.logger.Info("Baseline build is not found, skipping diff for project " + p.Key())
			continue
		}

		report := diff.Compare(a.currentBuild(ctx, repos, p, info, settings), reference)
		if err := controller.WriteJSON(filepath.Join(p.BuildDir(), domain.DiffReportFileName), report); err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}

// currentBuild returns the local build of project, or a record holding only its inputs.
func (a *App) currentBuild(
	ctx context.Context,
	repos *repositories,
	project *domain.Project,
	info *domain.ProjectsInputInfo,
	settings domain.CacheSettings,
) *domain.Build {
	if repos.local != nil {
		local, err := repos.local.FindLocalBuild(ctx, info.Key(project.Key()))
		if err != nil {
			a.logger.Error(err)
		}
		if local != nil {
			return local
		}
	}
	return &domain.Build{
		GroupID:           project.GroupID,
		ArtifactID:        project.ArtifactID,
		Version:           project.Version,
		HashFunction:      settings.HashAlgorithm,
		ProjectsInputInfo: *info,
	}
}

// PurgeOptions configures the Purge method.
type PurgeOptions struct {
	// All removes the whole local cache instead of the reactor's projects.
	All       bool
	Overrides map[string]any
}

// Purge deletes the local cache entries of the reactor's projects.
func (a *App) Purge(ctx context.Context, dir string, opts PurgeOptions) error {
	session, config, err := a.openSession(dir, nil, opts.Overrides)
	if err != nil {
		return err
	}
	config.Initialize()
	settings := config.Settings()

	location := settings.Local.Location
	if location == "" {
		location = filepath.Join(session.RootDir, domain.DefaultCachePath())
	}
	local, err := a.opener.Open(location, settings.Local.MaxBuildsCached)
	if err != nil {
		return err
	}
	defer func() {
		if err := local.Close(); err != nil {
			a.logger.Error(err)
		}
	}()

	var projects []string
	if !opts.All {
		for p := range session.Reactor.Walk() {
			projects = append(projects, p.Key())
		}
	}
	if err := local.Purge(ctx, projects); err != nil {
		return err
	}

	if opts.All {
		a.logger.Info("removed local build cache " + location)
	} else {
		a.logger.Info(fmt.Sprintf("removed cached builds of %d projects", len(projects)))
	}
	return nil
}

func (a *App) openSession(dir string, goals []string, overrides map[string]any) (*domain.Session, ports.CacheConfig, error) {
	root, err := a.projects.DiscoverRoot(dir)
	if err != nil {
		return nil, nil, err
	}
	r, err := a.projects.Load(root)
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to load reactor")
	}

	session := &domain.Session{
		ID:        uuid.NewString(),
		RootDir:   root,
		Goals:     goals,
		StartedAt: a.now(),
		Reactor:   r,
	}
	return session, a.cacheConfigs.Load(root, overrides), nil
}

type repositories struct {
	local  ports.LocalRepository
	remote ports.RemoteRepository
}

// openRepositories opens the session repositories. A disabled cache gets no
// local repository and the no-op remote.
func (a *App) openRepositories(ctx context.Context, config ports.CacheConfig) (*repositories, error) {
	repos := &repositories{remote: remote.Noop{}}
	if config.Initialize() != domain.CacheInitialized {
		return repos, nil
	}

	settings := config.Settings()
	local, err := a.opener.Open(settings.Local.Location, settings.Local.MaxBuildsCached)
	if err != nil {
		return nil, err
	}
	rem, err := a.remotes.Provide(ctx, settings.Remote, settings.FailFast)
	if err != nil {
		_ = local.Close()
		return nil, err
	}
	repos.local = local
	repos.remote = rem
	return repos, nil
}

func (r *repositories) close(log ports.Logger) {
	var errs error
	if r.local != nil {
		errs = errors.Join(errs, r.local.Close())
	}
	errs = errors.Join(errs, r.remote.Close())
	if errs != nil {
		log.Error(errs)
	}
}

func (a *App) newController(config ports.CacheConfig, repos *repositories) *controller.Controller {
	settings := config.Settings()
	opts := []controller.Option{controller.WithVersion(build.Version)}
	if settings.BaselineURL != "" {
		opts = append(opts, controller.WithBaseline(remote.NewBaseline(settings.BaselineURL, settings.Remote, a.logger)))
	}
	calculator := checksum.NewCalculator(config, a.resolver, a.hasher, a.logger)
	return controller.New(config, calculator, repos.local, repos.remote, a.hasher, a.archiver, a.logger, opts...)
}

// summarize prints where every looked up project came from.
func (a *App) summarize(report domain.CacheReport) {
	for _, p := range report.Projects {
		a.logger.Info(fmt.Sprintf("%s %s:%s", style.Badge(p.Source), p.GroupID, p.ArtifactID))
	}
}
