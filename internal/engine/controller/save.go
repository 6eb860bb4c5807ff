package controller

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/moby/patternmatcher"
	"go.trai.ch/memo/internal/core/domain"
	"go.trai.ch/zerr"
)

// Environment variables read into the provenance of saved builds.
const (
	EnvScmURL      = "MEMO_SCM_URL"
	EnvScmRevision = "MEMO_SCM_REVISION"
	EnvScmBranch   = "MEMO_SCM_BRANCH"
)

// generatedSourceRoots are the build directory entries holding generated sources.
var generatedSourceRoots = []string{"generated-sources", "generated-test-sources"}

// Save records the live build of the project described by result. Failures
// remove the partially written local entry and are only returned under fail-fast.
func (c *Controller) Save(
	ctx context.Context,
	result domain.CacheResult,
	executions []*domain.MojoExecution,
	events map[string]domain.ExecutionEvent,
) error {
	cacheCtx := result.Context
	if cacheCtx == nil || cacheCtx.InputInfo == nil {
		c.logger.Info("Cannot save project in cache, skipping")
		return nil
	}

	project := cacheCtx.Project
	key := cacheCtx.InputInfo.Key(project.Key())
	c.outcomes.Store(project.Key(), &outcome{project: project, key: key, result: result, rebuilt: true})

	settings := c.config.Settings()
	if !settings.Save.Enabled {
		c.logger.Debug("Saving builds is disabled, skipping")
		return nil
	}

	if err := c.save(ctx, key, result, executions, events, settings); err != nil {
		err = zerr.With(zerr.Wrap(err, domain.ErrCacheSaveFailed.Error()), "project", project.Key())
		c.logger.Error(err)
		if clearErr := c.local.ClearCache(ctx, key); clearErr != nil {
			c.logger.Error(clearErr)
		}
		if c.config.IsFailFast() {
			return err
		}
	}
	return nil
}

func (c *Controller) save(
	ctx context.Context,
	key domain.CacheKey,
	result domain.CacheResult,
	executions []*domain.MojoExecution,
	events map[string]domain.ExecutionEvent,
	settings domain.CacheSettings,
) error {
	cacheCtx := result.Context
	project := cacheCtx.Project
	packaged := !domain.IsLaterPhase(domain.PhasePackage, domain.HighestExecutionPhase(executions))

	build := &domain.Build{
		CacheImplementationVersion: c.version,
		GroupID:                    project.GroupID,
		ArtifactID:                 project.ArtifactID,
		Version:                    project.Version,
		Final:                      settings.Save.Final,
		HashFunction:               settings.HashAlgorithm,
		Goals:                      slices.Clone(cacheCtx.Session.Goals),
		ProjectsInputInfo:          *cacheCtx.InputInfo,
		Executions:                 c.completedExecutions(executions, events, result.Build),
		Provenance:                 c.provenance(cacheCtx.Session),
	}

	if packaged {
		if err := c.attachOutputs(project, settings); err != nil {
			return err
		}
		primary, attached, err := c.artifacts(project, settings)
		if err != nil {
			return err
		}
		build.Artifact = primary
		build.AttachedArtifacts = attached
	}

	if err := c.local.BeforeSave(ctx, key); err != nil {
		return err
	}
	if err := c.local.SaveBuild(ctx, key, build, true); err != nil {
		return err
	}
	for _, a := range build.AllArtifacts() {
		if err := c.local.SaveArtifactFile(ctx, key, a, true); err != nil {
			return err
		}
	}

	if c.remote.Enabled() && settings.Remote.SaveToRemote && (result.Build == nil || !result.Build.Final) {
		if err := c.saveRemote(ctx, key, build); err != nil {
			return err
		}
		c.outcomes.Store(project.Key(), &outcome{project: project, key: key, result: result, shared: true, rebuilt: true})
	}

	if c.baseline != nil {
		c.writeDiffReport(ctx, project, build)
	}
	return nil
}

func (c *Controller) saveRemote(ctx context.Context, key domain.CacheKey, build *domain.Build) error {
	for _, a := range build.AllArtifacts() {
		if err := c.remote.SaveArtifactFile(ctx, key, a); err != nil {
			return err
		}
	}
	return c.remote.SaveBuild(ctx, key, build)
}

// completedExecutions records every default lifecycle or unbound execution,
// with the parameters of its captured event. Executions reused from previous
// keep the properties recorded there.
func (c *Controller) completedExecutions(
	executions []*domain.MojoExecution,
	events map[string]domain.ExecutionEvent,
	previous *domain.Build,
) []domain.CompletedExecution {
	out := make([]domain.CompletedExecution, 0, len(executions))
	for _, e := range executions {
		if domain.IsCleanPhase(e.Phase) {
			continue
		}
		completed := domain.CompletedExecution{
			ExecutionKey:  e.Key(),
			MojoClassName: e.MojoName(),
		}
		if event, ok := events[e.Key()]; ok {
			completed.Properties = c.recordedProperties(e, event.Parameters)
		} else if previous != nil {
			if recorded, ok := previous.FindExecution(e.Key()); ok {
				completed.Properties = slices.Clone(recorded.Properties)
			}
		}
		out = append(out, completed)
	}
	return out
}

// recordedProperties applies the recording rules: tracked properties are
// always kept, nologs entries never, the rest when logAll or listed in logs.
func (c *Controller) recordedProperties(e *domain.MojoExecution, params domain.MojoParameters) []domain.PropertyValue {
	tracked := c.config.TrackedProperties(e)
	logs := c.config.LoggedProperties(e)
	nologs := c.config.NologProperties(e)
	logAll := c.config.IsLogAllProperties(e)

	var out []domain.PropertyValue
	for _, name := range params.Names() {
		isTracked := slices.ContainsFunc(tracked, func(p domain.TrackedProperty) bool {
			return p.PropertyName == name
		})
		switch {
		case isTracked:
		case slices.Contains(nologs, name):
			continue
		case !logAll && !slices.Contains(logs, name):
			continue
		}
		out = append(out, domain.PropertyValue{Name: name, Value: params[name], Tracked: isTracked})
	}
	return out
}

// attachOutputs zips generated source roots and the configured attached
// output directories of the build directory and attaches them to the project.
func (c *Controller) attachOutputs(project *domain.Project, settings domain.CacheSettings) error {
	attach := func(prefix, rel string) error {
		classifier := prefix + strings.ReplaceAll(filepath.ToSlash(filepath.Clean(rel)), "/", "_")
		dest := filepath.Join(project.BuildDir(), project.FinalName()+"-"+classifier+".zip")
		ok, err := c.archiver.Pack(filepath.Join(project.BuildDir(), rel), dest, settings.OutputExcludes)
		if err != nil || !ok {
			return err
		}
		project.AttachArtifact(domain.Artifact{
			GroupID:    project.GroupID,
			ArtifactID: project.ArtifactID,
			Version:    project.Version,
			Type:       "zip",
			Classifier: classifier,
			Extension:  "zip",
			FileName:   filepath.Base(dest),
			File:       dest,
		})
		return nil
	}

	for _, rel := range generatedSourceRoots {
		if err := attach(GeneratedSourcesPrefix, rel); err != nil {
			return err
		}
	}
	for _, rel := range settings.AttachedOutputs {
		if err := attach(AttachedOutputPrefix, rel); err != nil {
			return err
		}
	}
	return nil
}

// artifacts describes the primary artifact and the attached files that are
// not excluded by outputExcludes.
func (c *Controller) artifacts(project *domain.Project, settings domain.CacheSettings) (*domain.Artifact, []domain.Artifact, error) {
	matcher, err := patternmatcher.New(settings.OutputExcludes)
	if err != nil {
		return nil, nil, zerr.Wrap(err, domain.ErrConfigInvalid.Error())
	}

	var primary *domain.Artifact
	if file := project.ArtifactFile(); file != "" {
		a, err := c.describe(domain.Artifact{
			GroupID:    project.GroupID,
			ArtifactID: project.ArtifactID,
			Version:    project.Version,
			Type:       project.PackagingOrDefault(),
			Extension:  strings.TrimPrefix(filepath.Ext(file), "."),
			File:       file,
		}, settings.HashAlgorithm)
		if err != nil {
			return nil, nil, err
		}
		primary = &a
	}

	var attached []domain.Artifact
	for _, a := range project.AttachedArtifacts() {
		if excluded(matcher, project, a.File) {
			c.logger.Debug("Skipping excluded output: " + a.File)
			continue
		}
		described, err := c.describe(a, settings.HashAlgorithm)
		if err != nil {
			return nil, nil, err
		}
		attached = append(attached, described)
	}
	return primary, attached, nil
}

func excluded(matcher *patternmatcher.PatternMatcher, project *domain.Project, file string) bool {
	rel, err := filepath.Rel(project.Dir, file)
	if err != nil {
		rel = file
	}
	hit, _ := matcher.MatchesOrParentMatches(filepath.ToSlash(rel))
	return hit
}

// describe fills in the file name, hash and size of an artifact.
func (c *Controller) describe(a domain.Artifact, algorithm string) (domain.Artifact, error) {
	info, err := os.Stat(a.File)
	if err != nil {
		return a, zerr.With(zerr.Wrap(err, domain.ErrArtifactWrite.Error()), "path", a.File)
	}
	hash, err := c.hasher.HashFile(algorithm, a.File)
	if err != nil {
		return a, err
	}
	a.FileName = filepath.Base(a.File)
	a.FileHash = hash
	a.FileSize = info.Size()
	return a, nil
}

func (c *Controller) provenance(session *domain.Session) domain.Provenance {
	host, _ := os.Hostname()
	return domain.Provenance{
		BuildID:   session.ID,
		Host:      host,
		CreatedAt: c.now().UTC(),
		Scm: domain.Scm{
			URL:      os.Getenv(EnvScmURL),
			Revision: os.Getenv(EnvScmRevision),
			Branch:   os.Getenv(EnvScmBranch),
		},
	}
}
