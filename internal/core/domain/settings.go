package domain

import (
	"slices"
	"time"
)

// CacheSettings is the session scoped cache configuration.
type CacheSettings struct {
	Enabled          bool
	HashAlgorithm    string
	FailFast         bool
	Save             SaveSettings
	Local            LocalSettings
	Remote           RemoteSettings
	BaselineURL      string
	Input            InputSettings
	OutputExcludes   []string
	AttachedOutputs  []string
	ExecutionControl ExecutionControl
}

// SaveSettings controls whether and how builds are saved.
type SaveSettings struct {
	Enabled bool
	// Final marks new records as final; final records are never overwritten remotely.
	Final bool
}

// LocalSettings configures the local repository.
type LocalSettings struct {
	Location        string
	MaxBuildsCached int
}

// RetrySettings configures retries of remote requests.
type RetrySettings struct {
	MaxRetries   int
	InitialDelay time.Duration
	MaxDelay     time.Duration
}

// Remote transport names.
const (
	TransportHTTP     = "http"
	TransportPostgres = "postgres"
)

// RemoteSettings configures the remote repository.
type RemoteSettings struct {
	Enabled      bool
	Transport    string
	URL          string
	SaveToRemote bool
	Timeout      time.Duration
	Retry        RetrySettings
}

// InputSettings selects the files that make up a project's inputs.
type InputSettings struct {
	Glob     string
	Includes []string
	Excludes []string
	Plugins  []PluginInputSettings
}

// PluginInputSettings removes noisy plugin configuration from the effective model.
type PluginInputSettings struct {
	PluginMatcher
	ExcludeProperties []string
}

// PluginMatcher selects plugins by artifactId and optional groupId.
type PluginMatcher struct {
	GroupID    string
	ArtifactID string
}

// Matches reports whether the plugin is selected.
func (m PluginMatcher) Matches(p PluginRef) bool {
	return p.Matches(m.GroupID, m.ArtifactID)
}

// ExecutionIDMatcher selects executions of a plugin by id.
type ExecutionIDMatcher struct {
	PluginMatcher
	IDs []string
}

// GoalsMatcher selects goals of a plugin.
type GoalsMatcher struct {
	PluginMatcher
	Goals []string
}

// ExecutionMatchers is a set of plugin, execution and goal selectors.
type ExecutionMatchers struct {
	Plugins    []PluginMatcher
	Executions []ExecutionIDMatcher
	Goals      []GoalsMatcher
}

// Matches reports whether any selector matches the execution.
func (m ExecutionMatchers) Matches(e *MojoExecution) bool {
	for _, p := range m.Plugins {
		if p.Matches(e.Plugin) {
			return true
		}
	}
	for _, x := range m.Executions {
		if x.Matches(e.Plugin) && slices.Contains(x.IDs, e.ExecutionID) {
			return true
		}
	}
	for _, g := range m.Goals {
		if g.Matches(e.Plugin) && slices.Contains(g.Goals, e.Goal) {
			return true
		}
	}
	return false
}

// TrackedProperty names a mojo parameter that must be equal between the
// cached and the live execution for the cache entry to be reused.
type TrackedProperty struct {
	PropertyName string
	DefaultValue string
	// SkipValue is a live value that is tolerated as a soft mismatch.
	SkipValue string
}

// GoalReconciliation configures recording and reconciliation for one plugin goal.
type GoalReconciliation struct {
	PluginMatcher
	Goal       string
	Reconciles []TrackedProperty
	Logs       []string
	NoLogs     []string
	LogAll     bool
}

// ExecutionControl groups the per execution cache rules.
type ExecutionControl struct {
	RunAlways        ExecutionMatchers
	IgnoreMissing    ExecutionMatchers
	LogAllProperties bool
	Reconcile        []GoalReconciliation
}

// ReconciliationFor returns the reconciliation rules for an execution, if any.
func (c ExecutionControl) ReconciliationFor(e *MojoExecution) (GoalReconciliation, bool) {
	for _, r := range c.Reconcile {
		if r.Matches(e.Plugin) && r.Goal == e.Goal {
			return r, true
		}
	}
	return GoalReconciliation{}, false
}

// DefaultCacheSettings returns the settings used when no configuration file exists.
func DefaultCacheSettings() CacheSettings {
	return CacheSettings{
		Enabled:       true,
		HashAlgorithm: HashSHA256,
		Save:          SaveSettings{Enabled: true},
		Local: LocalSettings{
			Location:        DefaultCachePath(),
			MaxBuildsCached: 3,
		},
		Remote: RemoteSettings{
			Transport: TransportHTTP,
			Timeout:   30 * time.Second,
			Retry: RetrySettings{
				MaxRetries:   3,
				InitialDelay: 200 * time.Millisecond,
				MaxDelay:     5 * time.Second,
			},
		},
		Input: InputSettings{Glob: "*"},
	}
}
