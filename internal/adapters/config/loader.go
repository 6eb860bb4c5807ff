// Package config reads the cache configuration and the reactor descriptors.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/memo/internal/core/domain"
	"go.trai.ch/memo/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ProjectLoader = (*Loader)(nil)

// Default source layout of a module, relative to its directory.
const (
	defaultOutputDirectory     = "target/classes"
	defaultTestOutputDirectory = "target/test-classes"
	defaultSourceDirectory     = "src/main/java"
	defaultTestSourceDirectory = "src/test/java"
	defaultResources           = "src/main/resources"
	defaultTestResources       = "src/test/resources"
)

// Loader implements ports.ProjectLoader using YAML descriptors.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// DiscoverRoot walks up from cwd. The closest directory with a memo.work.yaml
// wins; otherwise the closest directory with a memo.yaml is a single module reactor.
func (l *Loader) DiscoverRoot(cwd string) (string, error) {
	current := cwd
	var standalone string

	for {
		if _, err := os.Stat(filepath.Join(current, domain.WorkFileName)); err == nil {
			return current, nil
		}
		if standalone == "" {
			if _, err := os.Stat(filepath.Join(current, domain.ProjectFileName)); err == nil {
				standalone = current
			}
		}

		parent := filepath.Dir(current)
		if parent == current {
			break
		}
		current = parent
	}

	if standalone != "" {
		return standalone, nil
	}
	return "", zerr.With(domain.ErrReactorNotFound, "cwd", cwd)
}

// Load reads the reactor rooted at root and returns the validated graph.
func (l *Loader) Load(root string) (*domain.Reactor, error) {
	reactor := domain.NewReactor()

	workPath := filepath.Join(root, domain.WorkFileName)
	if _, err := os.Stat(workPath); os.IsNotExist(err) {
		project, err := l.loadProject(root, root, Workfile{})
		if err != nil {
			return nil, err
		}
		if err := reactor.AddProject(project); err != nil {
			return nil, err
		}
		return reactor, reactor.Validate()
	}

	var work Workfile
	if err := readAndUnmarshalYAML(workPath, &work); err != nil {
		return nil, err
	}

	dirs, err := resolveModuleDirs(root, work.Modules)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]string)
	for _, dir := range dirs {
		rel, _ := filepath.Rel(root, dir)
		descriptor := filepath.Join(dir, domain.ProjectFileName)
		if _, err := os.Stat(descriptor); os.IsNotExist(err) {
			l.Logger.Warn(fmt.Sprintf("%s missing in module %s, skipping", domain.ProjectFileName, rel))
			continue
		}

		project, err := l.loadProject(root, dir, work)
		if err != nil {
			return nil, err
		}
		if first, exists := seen[project.Key()]; exists {
			err := zerr.With(domain.ErrDuplicateProject, "project", project.Key())
			err = zerr.With(err, "first_occurrence", first)
			return nil, zerr.With(err, "duplicate_at", rel)
		}
		seen[project.Key()] = rel

		if err := reactor.AddProject(project); err != nil {
			return nil, err
		}
	}

	if err := reactor.Validate(); err != nil {
		return nil, err
	}
	return reactor, nil
}

func resolveModuleDirs(root string, patterns []string) ([]string, error) {
	unique := make(map[string]struct{})
	for _, pattern := range patterns {
		matches, err := filepath.Glob(filepath.Join(root, pattern))
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrDescriptorParseFailed.Error()), "module", pattern)
		}
		for _, match := range matches {
			if info, err := os.Stat(match); err == nil && info.IsDir() {
				unique[filepath.Clean(match)] = struct{}{}
			}
		}
	}

	dirs := make([]string, 0, len(unique))
	for dir := range unique {
		dirs = append(dirs, dir)
	}
	slices.Sort(dirs)
	return dirs, nil
}

func (l *Loader) loadProject(root, dir string, work Workfile) (*domain.Project, error) {
	var pf Projectfile
	if err := readAndUnmarshalYAML(filepath.Join(dir, domain.ProjectFileName), &pf); err != nil {
		return nil, err
	}

	if pf.GroupID == "" {
		pf.GroupID = work.GroupID
	}
	if pf.Version == "" {
		pf.Version = work.Version
	}
	if pf.GroupID == "" || pf.ArtifactID == "" {
		rel, _ := filepath.Rel(root, dir)
		return nil, zerr.With(domain.ErrMissingCoordinates, "directory", rel)
	}

	return buildProject(dir, &pf, work.Properties), nil
}

func buildProject(dir string, pf *Projectfile, inherited map[string]string) *domain.Project {
	properties := make(map[string]string, len(inherited)+len(pf.Properties))
	for k, v := range inherited {
		properties[k] = v
	}
	for k, v := range pf.Properties {
		properties[k] = v
	}

	p := &domain.Project{
		Coordinates: domain.Coordinates{GroupID: pf.GroupID, ArtifactID: pf.ArtifactID, Version: pf.Version},
		Packaging:   pf.Packaging,
		Dir:         filepath.Clean(dir),
		Properties:  properties,
		Build:       buildLayout(pf.Build),
	}

	for _, d := range pf.Dependencies {
		dep := domain.Dependency{
			Coordinates: domain.Coordinates{GroupID: d.GroupID, ArtifactID: d.ArtifactID, Version: d.Version},
			Type:        d.Type,
			Classifier:  d.Classifier,
			Scope:       d.Scope,
			Optional:    d.Optional,
		}
		if d.File != "" {
			dep.File = p.Abs(d.File)
		}
		p.Dependencies = append(p.Dependencies, dep)
	}

	for _, dto := range pf.Plugins {
		plugin := domain.Plugin{
			PluginRef:     domain.PluginRef{GroupID: dto.GroupID, ArtifactID: dto.ArtifactID, Version: dto.Version},
			Configuration: dto.Configuration,
		}
		for _, exec := range dto.Executions {
			for _, goal := range exec.Goals {
				plugin.Executions = append(plugin.Executions, domain.PluginExecution{
					ID:            executionID(exec.ID, goal),
					Phase:         exec.Phase,
					Goal:          goal,
					Configuration: exec.Configuration,
					Command:       exec.Run,
				})
			}
		}
		p.Plugins = append(p.Plugins, plugin)
	}
	return p
}

func executionID(id, goal string) string {
	if id != "" {
		return id
	}
	return "default-" + goal
}

func buildLayout(dto BuildDTO) domain.BuildLayout {
	layout := domain.BuildLayout{
		Directory:           orDefault(dto.Directory, domain.DefaultBuildDir),
		OutputDirectory:     orDefault(dto.OutputDirectory, defaultOutputDirectory),
		TestOutputDirectory: orDefault(dto.TestOutputDirectory, defaultTestOutputDirectory),
		SourceDirectory:     orDefault(dto.SourceDirectory, defaultSourceDirectory),
		TestSourceDirectory: orDefault(dto.TestSourceDirectory, defaultTestSourceDirectory),
		Resources:           dto.Resources,
		TestResources:       dto.TestResources,
		FinalName:           dto.FinalName,
		Attach:              dto.Attach,
	}
	if layout.Resources == nil {
		layout.Resources = []string{defaultResources}
	}
	if layout.TestResources == nil {
		layout.TestResources = []string{defaultTestResources}
	}
	return layout
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](path string, target *T) error {
	// #nosec G304 -- path is built from the reactor root
	data, err := os.ReadFile(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrDescriptorReadFailed.Error()), "path", path)
	}
	if err := yaml.Unmarshal(data, target); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrDescriptorParseFailed.Error()), "path", path)
	}
	return nil
}
