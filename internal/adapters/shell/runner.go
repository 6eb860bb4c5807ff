package shell

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"go.trai.ch/memo/internal/core/domain"
	"go.trai.ch/memo/internal/core/ports"
	"go.trai.ch/zerr"
	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// Runner implements ports.MojoExecutionRunner. It fires the listener hooks
// around every execution and, after a package phase execution, attaches the
// produced artifacts to the project.
type Runner struct {
	plugins  ports.PluginManager
	listener ports.ExecutionListener
	tracer   ports.Tracer
	logger   ports.Logger
	now      func() time.Time
}

var _ ports.MojoExecutionRunner = (*Runner)(nil)

// NewRunner creates a Runner.
func NewRunner(plugins ports.PluginManager, listener ports.ExecutionListener, tracer ports.Tracer, logger ports.Logger) *Runner {
	return &Runner{
		plugins:  plugins,
		listener: listener,
		tracer:   tracer,
		logger:   logger,
		now:      time.Now,
	}
}

// Run executes one mojo for project.
func (r *Runner) Run(ctx context.Context, session *domain.Session, project *domain.Project, execution *domain.MojoExecution) error {
	mojo, err := r.plugins.ConfiguredMojo(ctx, project, execution)
	if err != nil {
		return err
	}
	defer r.plugins.ReleaseMojo(mojo)

	event := domain.ExecutionEvent{
		Execution:  execution,
		Parameters: mojo.Parameters(),
		StartedAt:  r.now(),
	}
	r.listener.BeforeMojoExecution(project, event)

	ctx, span := r.tracer.Start(ctx, execution.GoalName(), ports.WithParent(project.Key()))
	defer span.End()

	err = r.execute(ctx, session, project, mojo, span)
	if err == nil && execution.Phase == domain.PhasePackage {
		attachPackageOutputs(project)
	}

	event.FinishedAt = r.now()
	if err != nil {
		event.Err = err
		span.RecordError(err)
		r.listener.AfterExecutionFailure(project, event)
		return err
	}
	r.listener.AfterMojoExecutionSuccess(project, event)
	return nil
}

func (r *Runner) execute(ctx context.Context, session *domain.Session, project *domain.Project, mojo ports.Mojo, span ports.Span) error {
	execution := mojo.Execution()
	if len(execution.Command) == 0 {
		return nil
	}

	params := mojo.Parameters()
	fallback := projectLookup(project)
	script, err := Interpolate(strings.Join(execution.Command, "\n"), func(name string) (string, bool) {
		if v, ok := params[name]; ok {
			return v, true
		}
		return fallback(name)
	})
	if err != nil {
		return r.failure(err, execution, domain.ErrMojoConfigurationFailed)
	}

	prog, err := syntax.NewParser().Parse(strings.NewReader(script), execution.GoalName())
	if err != nil {
		return r.failure(err, execution, domain.ErrMojoConfigurationFailed)
	}

	runner, err := interp.New(
		interp.Dir(project.Dir),
		interp.Env(expand.ListEnviron(environment(session, project)...)),
		interp.StdIO(nil, span, span),
		interp.ExecHandlers(r.traceExec),
	)
	if err != nil {
		return r.failure(err, execution, domain.ErrMojoExecutionFailed)
	}

	if err := runner.Run(ctx, prog); err != nil {
		failure := r.failure(err, execution, domain.ErrMojoExecutionFailed)
		var status interp.ExitStatus
		if errors.As(err, &status) {
			failure = zerr.With(failure, "exit_code", int(status))
		}
		return failure
	}
	return nil
}

func (r *Runner) traceExec(next interp.ExecHandlerFunc) interp.ExecHandlerFunc {
	return func(ctx context.Context, args []string) error {
		r.logger.Debug("exec " + strings.Join(args, " "))
		return next(ctx, args)
	}
}

func (r *Runner) failure(err error, execution *domain.MojoExecution, sentinel error) error {
	return zerr.With(zerr.Wrap(err, sentinel.Error()), "goal", execution.GoalName())
}

// environment returns the process environment extended with the MEMO_* project variables.
func environment(session *domain.Session, project *domain.Project) []string {
	env := os.Environ()
	env = append(env,
		"MEMO_GROUP_ID="+project.GroupID,
		"MEMO_ARTIFACT_ID="+project.ArtifactID,
		"MEMO_VERSION="+project.Version,
		"MEMO_PROJECT_DIR="+project.Dir,
		"MEMO_BUILD_DIR="+project.BuildDir(),
		"MEMO_FINAL_NAME="+project.FinalName(),
	)
	if session != nil {
		env = append(env, "MEMO_BUILD_ID="+session.ID)
	}
	return env
}

// attachPackageOutputs resolves the primary artifact and the files declared
// under build.attach once they exist.
func attachPackageOutputs(project *domain.Project) {
	if packaging := project.PackagingOrDefault(); packaging != "pom" {
		primary := filepath.Join(project.BuildDir(), project.FinalName()+"."+packaging)
		if fileExists(primary) {
			project.SetArtifactFile(primary)
		}
	}

	classifiers := make([]string, 0, len(project.Build.Attach))
	for classifier := range project.Build.Attach {
		classifiers = append(classifiers, classifier)
	}
	slices.Sort(classifiers)

	for _, classifier := range classifiers {
		file := project.Abs(project.Build.Attach[classifier])
		if !fileExists(file) {
			continue
		}
		ext := strings.TrimPrefix(filepath.Ext(file), ".")
		project.AttachArtifact(domain.Artifact{
			GroupID:    project.GroupID,
			ArtifactID: project.ArtifactID,
			Version:    project.Version,
			Type:       ext,
			Classifier: classifier,
			Extension:  ext,
			FileName:   filepath.Base(file),
			File:       file,
		})
	}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
