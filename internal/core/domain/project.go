package domain

import (
	"path/filepath"
	"sync"
)

// BuildLayout describes where a project keeps sources and build outputs.
// All paths are relative to the project directory.
type BuildLayout struct {
	Directory           string
	OutputDirectory     string
	TestOutputDirectory string
	SourceDirectory     string
	TestSourceDirectory string
	Resources           []string
	TestResources       []string
	FinalName           string

	// Attach maps a classifier to a file that the package phase produces next to the primary artifact.
	Attach map[string]string
}

// Plugin is a build plugin declared by a project, with its executions.
type Plugin struct {
	PluginRef
	Configuration map[string]string
	Executions    []PluginExecution
}

// PluginExecution binds a plugin goal to a lifecycle phase.
type PluginExecution struct {
	ID            string
	Phase         string
	Goal          string
	Configuration map[string]string
	Command       []string
}

// Project is one module of the reactor.
type Project struct {
	Coordinates
	Packaging    string
	Dir          string
	Properties   map[string]string
	Dependencies []Dependency
	Build        BuildLayout
	Plugins      []Plugin

	mu           sync.Mutex
	artifactFile string
	resolved     bool
	attached     []Artifact
}

// Key returns the versionless project key.
func (p *Project) Key() string {
	return p.VersionlessKey()
}

// Property returns a project property.
func (p *Project) Property(name string) (string, bool) {
	v, ok := p.Properties[name]
	return v, ok
}

// BuildDir returns the absolute build output directory.
func (p *Project) BuildDir() string {
	dir := p.Build.Directory
	if dir == "" {
		dir = DefaultBuildDir
	}
	return p.Abs(dir)
}

// Abs resolves a project relative path.
func (p *Project) Abs(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(p.Dir, path)
}

// FinalName returns the base file name of the primary artifact.
func (p *Project) FinalName() string {
	if p.Build.FinalName != "" {
		return p.Build.FinalName
	}
	if p.Version == "" {
		return p.ArtifactID
	}
	return p.ArtifactID + "-" + p.Version
}

// PackagingOrDefault returns the packaging, defaulting to "jar".
func (p *Project) PackagingOrDefault() string {
	if p.Packaging == "" {
		return "jar"
	}
	return p.Packaging
}

// ArtifactFile returns the primary artifact file, if attached to the project.
func (p *Project) ArtifactFile() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.artifactFile
}

// IsResolved reports whether the primary artifact is resolved.
func (p *Project) IsResolved() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.resolved
}

// SetArtifactFile attaches the primary artifact file and marks it resolved.
func (p *Project) SetArtifactFile(path string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.artifactFile = path
	p.resolved = path != ""
}

// AttachArtifact adds an attached artifact, replacing one with the same classifier and extension.
func (p *Project) AttachArtifact(a Artifact) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i, existing := range p.attached {
		if existing.Classifier == a.Classifier && existing.Extension == a.Extension {
			p.attached[i] = a
			return
		}
	}
	p.attached = append(p.attached, a)
}

// AttachedArtifacts returns a copy of the attached artifacts.
func (p *Project) AttachedArtifacts() []Artifact {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Artifact, len(p.attached))
	copy(out, p.attached)
	return out
}

// ResetArtifacts clears the primary artifact and every attached artifact.
func (p *Project) ResetArtifacts() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.artifactFile = ""
	p.resolved = false
	p.attached = nil
}
