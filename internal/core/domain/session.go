package domain

import "time"

// Session is one invocation of the build over a reactor.
type Session struct {
	ID        string
	RootDir   string
	Goals     []string
	StartedAt time.Time
	Reactor   *Reactor
}

// Project returns the reactor project with the given versionless key.
func (s *Session) Project(key string) (*Project, bool) {
	if s.Reactor == nil {
		return nil, false
	}
	return s.Reactor.Project(key)
}

// ProjectReport is the cache outcome of one project in a session.
type ProjectReport struct {
	GroupID          string      `json:"groupId"`
	ArtifactID       string      `json:"artifactId"`
	Checksum         string      `json:"checksum,omitzero"`
	ChecksumMatched  bool        `json:"checksumMatched"`
	LifecycleMatched bool        `json:"lifecycleMatched"`
	Source           CacheSource `json:"source"`
	SharedToRemote   bool        `json:"sharedToRemote,omitzero"`
	URL              string      `json:"url,omitzero"`
}

// CacheReport summarizes a session.
type CacheReport struct {
	BuildID  string          `json:"buildId"`
	Projects []ProjectReport `json:"projects"`
}

// Mismatch is one difference between a build and a baseline.
type Mismatch struct {
	Item       string `json:"item"`
	Current    string `json:"current"`
	Baseline   string `json:"baseline"`
	Reason     string `json:"reason"`
	Resolution string `json:"resolution,omitzero"`
	Context    string `json:"context,omitzero"`
}

// DiffReport lists the mismatches of one project against its baseline.
type DiffReport struct {
	Project    string     `json:"project"`
	Mismatches []Mismatch `json:"mismatches"`
}
