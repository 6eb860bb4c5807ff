// Package checksum computes the fingerprint of a project: a digest over its
// effective model, its input files, its resolved dependencies and the cache
// keys of the reactor projects it depends on.
package checksum

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"go.trai.ch/memo/internal/core/domain"
	"go.trai.ch/memo/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

// Calculator implements ports.InputCalculator. Results are memoized per
// project, so one Calculator serves exactly one session.
type Calculator struct {
	config   ports.CacheConfig
	resolver ports.InputResolver
	hasher   ports.Hasher
	logger   ports.Logger

	group singleflight.Group
	infos sync.Map // project key -> *domain.ProjectsInputInfo
}

var _ ports.InputCalculator = (*Calculator)(nil)

// NewCalculator creates a Calculator.
func NewCalculator(config ports.CacheConfig, resolver ports.InputResolver, hasher ports.Hasher, logger ports.Logger) *Calculator {
	return &Calculator{
		config:   config,
		resolver: resolver,
		hasher:   hasher,
		logger:   logger,
	}
}

// CalculateInput implements ports.InputCalculator.
func (c *Calculator) CalculateInput(ctx context.Context, session *domain.Session, project *domain.Project) (*domain.ProjectsInputInfo, error) {
	info, err := c.calculate(ctx, session, project, nil)
	if err != nil {
		err = zerr.Wrap(err, domain.ErrFingerprintUnavailable.Error())
		return nil, zerr.With(err, "project", project.Key())
	}
	return info, nil
}

// calculate returns the memoized input info of project. chain holds the
// projects whose calculation is waiting on this one.
func (c *Calculator) calculate(
	ctx context.Context,
	session *domain.Session,
	project *domain.Project,
	chain []string,
) (*domain.ProjectsInputInfo, error) {
	key := project.Key()
	if slices.Contains(chain, key) {
		return nil, zerr.With(domain.ErrUpstreamCycle, "cycle", strings.Join(append(chain, key), " -> "))
	}
	if v, ok := c.infos.Load(key); ok {
		return v.(*domain.ProjectsInputInfo), nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		if v, ok := c.infos.Load(key); ok {
			return v, nil
		}
		info, err := c.compute(ctx, session, project, append(slices.Clone(chain), key))
		if err != nil {
			return nil, err
		}
		c.infos.Store(key, info)
		return info, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.ProjectsInputInfo), nil
}

func (c *Calculator) compute(
	ctx context.Context,
	session *domain.Session,
	project *domain.Project,
	chain []string,
) (*domain.ProjectsInputInfo, error) {
	start := time.Now()
	settings := c.config.Settings()
	algorithm := settings.HashAlgorithm

	model, err := renderEffectiveModel(project, c.config.EffectivePomExcludeProperties)
	if err != nil {
		return nil, err
	}
	modelHash, err := c.hasher.HashBytes(algorithm, model)
	if err != nil {
		return nil, err
	}
	items := []domain.DigestItem{{
		Type:    domain.ItemPom,
		Value:   project.Key(),
		Hash:    modelHash,
		Content: string(model),
	}}

	fileItems, err := c.fileItems(project, settings)
	if err != nil {
		return nil, err
	}
	items = append(items, fileItems...)

	depItems, upstream, err := c.dependencyItems(ctx, session, project, algorithm, chain)
	if err != nil {
		return nil, err
	}
	items = append(items, depItems...)

	var manifest bytes.Buffer
	for _, it := range items {
		fmt.Fprintf(&manifest, "%s %s %s\n", it.Type, it.Value, it.Hash)
	}
	checksum, err := c.hasher.HashBytes(algorithm, manifest.Bytes())
	if err != nil {
		return nil, err
	}

	c.logger.Debug(fmt.Sprintf("Project inputs calculated in %d ms. %s checksum [%s] project: %s",
		time.Since(start).Milliseconds(), algorithm, checksum, project.Key()))

	return &domain.ProjectsInputInfo{
		Checksum: checksum,
		Upstream: upstream,
		Items:    items,
	}, nil
}

// fileItems hashes the files below the project's source and resource roots.
// The build directory is never an input.
func (c *Calculator) fileItems(project *domain.Project, settings domain.CacheSettings) ([]domain.DigestItem, error) {
	roots := inputRoots(project, settings.Input.Includes)
	excludes := slices.Clone(settings.Input.Excludes)
	excludes = append(excludes, relPath(project, project.BuildDir()))

	files, err := c.resolver.ResolveInputs(project.Dir, roots, settings.Input.Glob, excludes)
	if err != nil {
		return nil, err
	}

	items := make([]domain.DigestItem, 0, len(files))
	for _, rel := range files {
		hash, err := c.hasher.HashFile(settings.HashAlgorithm, filepath.Join(project.Dir, filepath.FromSlash(rel)))
		if err != nil {
			return nil, err
		}
		items = append(items, domain.DigestItem{Type: domain.ItemFile, Value: rel, Hash: hash})
	}
	return items, nil
}

// dependencyItems hashes resolved dependency files. Reactor dependencies
// contribute their cache key instead of their artifact.
func (c *Calculator) dependencyItems(
	ctx context.Context,
	session *domain.Session,
	project *domain.Project,
	algorithm string,
	chain []string,
) ([]domain.DigestItem, []domain.CacheKey, error) {
	deps := slices.Clone(project.Dependencies)
	slices.SortFunc(deps, func(a, b domain.Dependency) int {
		return strings.Compare(a.ManagementKey(), b.ManagementKey())
	})

	var items []domain.DigestItem
	var upstream []domain.CacheKey
	for _, dep := range deps {
		if up, ok := reactorProject(session, dep); ok && up != project {
			info, err := c.calculate(ctx, session, up, chain)
			if err != nil {
				return nil, nil, err
			}
			key := info.Key(up.Key())
			upstream = append(upstream, key)
			items = append(items, domain.DigestItem{Type: domain.ItemUpstream, Value: up.Key(), Hash: key.Checksum})
			continue
		}

		if dep.File == "" {
			return nil, nil, zerr.With(domain.ErrUnresolvedDependency, "dependency", dep.Coordinates.String())
		}
		hash, err := c.hasher.HashFile(algorithm, dep.File)
		if err != nil {
			return nil, nil, zerr.With(err, "dependency", dep.Coordinates.String())
		}
		items = append(items, domain.DigestItem{
			Type:  domain.ItemDependency,
			Value: dep.ManagementKey() + ":" + dep.Version,
			Hash:  hash,
		})
	}
	return items, upstream, nil
}

func reactorProject(session *domain.Session, dep domain.Dependency) (*domain.Project, bool) {
	if session == nil {
		return nil, false
	}
	return session.Project(dep.VersionlessKey())
}

// inputRoots returns the project relative roots scanned for input files.
func inputRoots(project *domain.Project, includes []string) []string {
	var roots []string
	add := func(paths ...string) {
		for _, p := range paths {
			if p != "" && !slices.Contains(roots, p) {
				roots = append(roots, p)
			}
		}
	}
	add(project.Build.SourceDirectory, project.Build.TestSourceDirectory)
	add(project.Build.Resources...)
	add(project.Build.TestResources...)
	add(includes...)
	return roots
}
