package domain

import "strings"

// Coordinates identify a project or artifact.
type Coordinates struct {
	GroupID    string `json:"groupId"`
	ArtifactID string `json:"artifactId"`
	Version    string `json:"version,omitzero"`
}

// VersionlessKey returns "groupId:artifactId".
func (c Coordinates) VersionlessKey() string {
	return c.GroupID + ":" + c.ArtifactID
}

// String returns "groupId:artifactId:version".
func (c Coordinates) String() string {
	if c.Version == "" {
		return c.VersionlessKey()
	}
	return c.VersionlessKey() + ":" + c.Version
}

// Dependency is a declared project dependency.
// File is the resolved artifact path and is empty while unresolved.
type Dependency struct {
	Coordinates
	Type       string
	Classifier string
	Scope      string
	Optional   bool
	File       string
}

// ManagementKey returns the key identifying the dependency regardless of version.
func (d Dependency) ManagementKey() string {
	parts := []string{d.GroupID, d.ArtifactID, d.TypeOrDefault()}
	if d.Classifier != "" {
		parts = append(parts, d.Classifier)
	}
	return strings.Join(parts, ":")
}

// TypeOrDefault returns the dependency type, defaulting to "jar".
func (d Dependency) TypeOrDefault() string {
	if d.Type == "" {
		return "jar"
	}
	return d.Type
}

// PluginRef identifies a build plugin.
type PluginRef struct {
	GroupID    string `json:"groupId,omitzero"`
	ArtifactID string `json:"artifactId"`
	Version    string `json:"version,omitzero"`
}

// Matches reports whether the plugin has the given artifactId and, if set, groupId.
func (p PluginRef) Matches(groupID, artifactID string) bool {
	if artifactID != p.ArtifactID {
		return false
	}
	return groupID == "" || groupID == p.GroupID
}

// Prefix returns the short plugin name used in goal names, e.g. "compiler" for maven-compiler-plugin.
func (p PluginRef) Prefix() string {
	name := p.ArtifactID
	switch {
	case strings.HasPrefix(name, "maven-") && strings.HasSuffix(name, "-plugin"):
		name = strings.TrimSuffix(strings.TrimPrefix(name, "maven-"), "-plugin")
	case strings.HasSuffix(name, "-maven-plugin"):
		name = strings.TrimSuffix(name, "-maven-plugin")
	case strings.HasSuffix(name, "-plugin"):
		name = strings.TrimSuffix(name, "-plugin")
	}
	return name
}

// Artifact is a file produced by a build, as recorded in the cache.
type Artifact struct {
	GroupID    string `json:"groupId"`
	ArtifactID string `json:"artifactId"`
	Version    string `json:"version,omitzero"`
	Type       string `json:"type,omitzero"`
	Classifier string `json:"classifier,omitzero"`
	Extension  string `json:"extension,omitzero"`
	FileName   string `json:"fileName"`
	FileHash   string `json:"fileHash,omitzero"`
	FileSize   int64  `json:"fileSize,omitzero"`

	// File is the local path of the artifact. It is never persisted.
	File string `json:"-"`
}

// Equivalent reports whether two artifacts describe the same cached file.
func (a Artifact) Equivalent(b Artifact) bool {
	return a.GroupID == b.GroupID &&
		a.ArtifactID == b.ArtifactID &&
		a.Version == b.Version &&
		a.Type == b.Type &&
		a.Classifier == b.Classifier &&
		a.Extension == b.Extension &&
		a.FileName == b.FileName &&
		a.FileHash == b.FileHash &&
		a.FileSize == b.FileSize
}
