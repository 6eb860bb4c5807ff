package controller

import (
	"cmp"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/memo/internal/core/domain"
	"go.trai.ch/memo/internal/engine/diff"
	"go.trai.ch/zerr"
)

// SaveCacheReport writes the outcome of every looked up project to
// <root>/target/build-cache-report.json. Nothing is written when no lookup ran.
func (c *Controller) SaveCacheReport(_ context.Context, session *domain.Session) error {
	report := c.Report(session)
	if len(report.Projects) == 0 {
		return nil
	}
	path := filepath.Join(session.RootDir, domain.DefaultBuildDir, domain.ReportFileName)
	return WriteJSON(path, report)
}

// Report returns the outcome of every looked up project, sorted by project key.
// Projects built live after their lookup are reported with a build source.
func (c *Controller) Report(session *domain.Session) domain.CacheReport {
	var outcomes []*outcome
	c.outcomes.Range(func(_, v any) bool {
		outcomes = append(outcomes, v.(*outcome))
		return true
	})
	slices.SortFunc(outcomes, func(a, b *outcome) int {
		return cmp.Compare(a.project.Key(), b.project.Key())
	})

	report := domain.CacheReport{BuildID: session.ID}
	for _, o := range outcomes {
		entry := domain.ProjectReport{
			GroupID:          o.project.GroupID,
			ArtifactID:       o.project.ArtifactID,
			Checksum:         o.key.Checksum,
			ChecksumMatched:  o.result.Status != domain.RestoreEmpty,
			LifecycleMatched: o.result.IsSuccess() && !o.rebuilt,
			Source:           o.result.Source(),
		}
		if o.rebuilt {
			entry.Source = domain.SourceBuild
		}
		switch {
		case entry.Source == domain.SourceRemote:
			entry.URL = c.remote.ResourceURL(o.key, domain.BuildRecordFileName)
		case o.shared:
			entry.SharedToRemote = true
			entry.URL = c.remote.ResourceURL(o.key, domain.BuildRecordFileName)
		}
		report.Projects = append(report.Projects, entry)
	}
	return report
}

// writeDiffReport compares a saved build with its baseline and writes the
// result next to the project's outputs. Failures are logged.
func (c *Controller) writeDiffReport(ctx context.Context, project *domain.Project, build *domain.Build) {
	baseline, err := c.baseline.FindBaselineBuild(ctx, project)
	if err != nil {
		c.logger.Error(zerr.With(err, "project", project.Key()))
		return
	}
	if baseline == nil {
		c.logger.Info("Baseline build is not found, skipping diff for project " + project.Key())
		return
	}

	report := diff.Compare(build, baseline)
	if err := WriteJSON(filepath.Join(project.BuildDir(), domain.DiffReportFileName), report); err != nil {
		c.logger.Error(err)
		return
	}
	if len(report.Mismatches) > 0 {
		c.logger.Info("Project differs from baseline build, see " + domain.DiffReportFileName)
	}
}

// WriteJSON writes v as indented JSON to path, creating parent directories.
func WriteJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrReportWriteFailed.Error()), "path", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrReportWriteFailed.Error()), "path", path)
	}
	if err := os.WriteFile(path, append(data, '\n'), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrReportWriteFailed.Error()), "path", path)
	}
	return nil
}
