package domain

import (
	"slices"
	"time"
)

// Digest item types.
const (
	ItemPom        = "pom"
	ItemFile       = "file"
	ItemDependency = "dependency"
	ItemUpstream   = "upstream"
)

// DigestItem is one hashed input of a project.
type DigestItem struct {
	Type    string `json:"type"`
	Value   string `json:"value"`
	Hash    string `json:"hash"`
	Content string `json:"content,omitzero"`
}

// ProjectsInputInfo is the fingerprint of a project: its checksum and the items it was computed from.
type ProjectsInputInfo struct {
	Checksum string       `json:"checksum"`
	Upstream []CacheKey   `json:"-"`
	Items    []DigestItem `json:"items"`
}

// Key returns the cache key for the project identified by project.
func (p ProjectsInputInfo) Key(project string) CacheKey {
	return NewCacheKey(project, p.Checksum, p.Upstream...)
}

// Item returns the first item with the given type and value.
func (p ProjectsInputInfo) Item(itemType, value string) (DigestItem, bool) {
	for _, it := range p.Items {
		if it.Type == itemType && it.Value == value {
			return it, true
		}
	}
	return DigestItem{}, false
}

// PropertyValue is a mojo parameter value recorded with a completed execution.
type PropertyValue struct {
	Name    string `json:"name"`
	Value   string `json:"value"`
	Tracked bool   `json:"tracked,omitzero"`
}

// CompletedExecution records one mojo execution that ran as part of a build.
type CompletedExecution struct {
	ExecutionKey  string          `json:"executionKey"`
	MojoClassName string          `json:"mojoClassName"`
	Properties    []PropertyValue `json:"properties,omitzero"`
	Outputs       []string        `json:"outputs,omitzero"`
}

// Property returns the recorded value of a property.
func (c CompletedExecution) Property(name string) (PropertyValue, bool) {
	for _, p := range c.Properties {
		if p.Name == name {
			return p, true
		}
	}
	return PropertyValue{}, false
}

// Scm describes the source revision a build was produced from.
type Scm struct {
	URL      string `json:"url,omitzero"`
	Revision string `json:"revision,omitzero"`
	Branch   string `json:"branch,omitzero"`
}

// Provenance identifies where and by whom a build was produced.
type Provenance struct {
	BuildID   string    `json:"buildId"`
	Host      string    `json:"host,omitzero"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
	Scm       Scm       `json:"scm,omitzero"`
}

// Build is the persisted record of one completed build of one project.
type Build struct {
	CacheImplementationVersion string               `json:"cacheImplementationVersion"`
	GroupID                    string               `json:"groupId"`
	ArtifactID                 string               `json:"artifactId"`
	Version                    string               `json:"version,omitzero"`
	Final                      bool                 `json:"final,omitzero"`
	HashFunction               string               `json:"hashFunction"`
	Goals                      []string             `json:"goals"`
	ProjectsInputInfo          ProjectsInputInfo    `json:"projectsInputInfo"`
	Artifact                   *Artifact            `json:"artifact,omitzero"`
	AttachedArtifacts          []Artifact           `json:"attachedArtifacts,omitzero"`
	Executions                 []CompletedExecution `json:"executions"`
	Provenance                 Provenance           `json:"provenance"`

	// Source tells where the record was loaded from. It is never persisted.
	Source CacheSource `json:"-"`
}

// ProjectKey returns the versionless key of the project the build belongs to.
func (b *Build) ProjectKey() string {
	return b.GroupID + ":" + b.ArtifactID
}

// HighestCompletedPhase returns the latest default lifecycle phase among the recorded goals.
func (b *Build) HighestCompletedPhase() string {
	return HighestPhase(b.Goals...)
}

// FindExecution returns the recorded execution with the given key.
func (b *Build) FindExecution(key string) (CompletedExecution, bool) {
	i := slices.IndexFunc(b.Executions, func(c CompletedExecution) bool {
		return c.ExecutionKey == key
	})
	if i < 0 {
		return CompletedExecution{}, false
	}
	return b.Executions[i], true
}

// AllArtifacts returns the primary artifact, if any, followed by the attached ones.
func (b *Build) AllArtifacts() []Artifact {
	out := make([]Artifact, 0, len(b.AttachedArtifacts)+1)
	if b.Artifact != nil {
		out = append(out, *b.Artifact)
	}
	return append(out, b.AttachedArtifacts...)
}
