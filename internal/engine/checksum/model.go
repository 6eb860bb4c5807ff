package checksum

import (
	"path/filepath"
	"slices"

	"go.trai.ch/memo/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// effectiveModel is the normalized project descriptor hashed as the pom item.
// It carries no machine specific data: paths are project relative and slash
// separated, maps are emitted in key order.
type effectiveModel struct {
	GroupID      string                `yaml:"groupId"`
	ArtifactID   string                `yaml:"artifactId"`
	Version      string                `yaml:"version,omitempty"`
	Packaging    string                `yaml:"packaging"`
	Properties   map[string]string     `yaml:"properties,omitempty"`
	Dependencies []effectiveDependency `yaml:"dependencies,omitempty"`
	Build        effectiveBuild        `yaml:"build"`
	Plugins      []effectivePlugin     `yaml:"plugins,omitempty"`
}

type effectiveDependency struct {
	Coordinates string `yaml:"coordinates"`
	Type        string `yaml:"type"`
	Classifier  string `yaml:"classifier,omitempty"`
	Scope       string `yaml:"scope,omitempty"`
	Optional    bool   `yaml:"optional,omitempty"`
}

type effectiveBuild struct {
	Directory           string            `yaml:"directory"`
	OutputDirectory     string            `yaml:"outputDirectory,omitempty"`
	TestOutputDirectory string            `yaml:"testOutputDirectory,omitempty"`
	SourceDirectory     string            `yaml:"sourceDirectory,omitempty"`
	TestSourceDirectory string            `yaml:"testSourceDirectory,omitempty"`
	Resources           []string          `yaml:"resources,omitempty"`
	TestResources       []string          `yaml:"testResources,omitempty"`
	FinalName           string            `yaml:"finalName"`
	Attach              map[string]string `yaml:"attach,omitempty"`
}

type effectivePlugin struct {
	Plugin        string               `yaml:"plugin"`
	Configuration map[string]string    `yaml:"configuration,omitempty"`
	Executions    []effectiveExecution `yaml:"executions,omitempty"`
}

type effectiveExecution struct {
	ID            string            `yaml:"id"`
	Phase         string            `yaml:"phase,omitempty"`
	Goal          string            `yaml:"goal"`
	Configuration map[string]string `yaml:"configuration,omitempty"`
	Run           []string          `yaml:"run,omitempty"`
}

// renderEffectiveModel serializes project. Plugin parameters named by exclude
// are dropped from plugin and execution configuration.
func renderEffectiveModel(project *domain.Project, exclude func(domain.PluginRef) []string) ([]byte, error) {
	model := effectiveModel{
		GroupID:    project.GroupID,
		ArtifactID: project.ArtifactID,
		Version:    project.Version,
		Packaging:  project.PackagingOrDefault(),
		Properties: project.Properties,
		Build: effectiveBuild{
			Directory:           relPath(project, project.BuildDir()),
			OutputDirectory:     slashPath(project.Build.OutputDirectory),
			TestOutputDirectory: slashPath(project.Build.TestOutputDirectory),
			SourceDirectory:     slashPath(project.Build.SourceDirectory),
			TestSourceDirectory: slashPath(project.Build.TestSourceDirectory),
			Resources:           slashPaths(project.Build.Resources),
			TestResources:       slashPaths(project.Build.TestResources),
			FinalName:           project.FinalName(),
			Attach:              project.Build.Attach,
		},
	}

	for _, dep := range project.Dependencies {
		model.Dependencies = append(model.Dependencies, effectiveDependency{
			Coordinates: dep.Coordinates.String(),
			Type:        dep.TypeOrDefault(),
			Classifier:  dep.Classifier,
			Scope:       dep.Scope,
			Optional:    dep.Optional,
		})
	}

	for _, plugin := range project.Plugins {
		excluded := exclude(plugin.PluginRef)
		ep := effectivePlugin{
			Plugin:        domain.Coordinates(plugin.PluginRef).String(),
			Configuration: without(plugin.Configuration, excluded),
		}
		for _, e := range plugin.Executions {
			ep.Executions = append(ep.Executions, effectiveExecution{
				ID:            e.ID,
				Phase:         e.Phase,
				Goal:          e.Goal,
				Configuration: without(e.Configuration, excluded),
				Run:           e.Command,
			})
		}
		model.Plugins = append(model.Plugins, ep)
	}

	data, err := yaml.Marshal(model)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to render effective model"), "project", project.Key())
	}
	return data, nil
}

func without(m map[string]string, names []string) map[string]string {
	if len(m) == 0 {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		if !slices.Contains(names, k) {
			out[k] = v
		}
	}
	return out
}

func relPath(project *domain.Project, abs string) string {
	rel, err := filepath.Rel(project.Dir, abs)
	if err != nil {
		return filepath.ToSlash(abs)
	}
	return filepath.ToSlash(rel)
}

func slashPath(p string) string {
	if p == "" {
		return ""
	}
	return filepath.ToSlash(filepath.Clean(p))
}

func slashPaths(paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		out = append(out, slashPath(p))
	}
	return out
}
