package domain

import (
	"slices"
	"strings"
	"time"

	"go.trai.ch/zerr"
)

// ExecutionSource tells who asked for a mojo execution.
type ExecutionSource int

const (
	// SourceLifecycle marks executions planned from a lifecycle phase.
	SourceLifecycle ExecutionSource = iota
	// SourceCLI marks goals invoked directly on the command line.
	SourceCLI
)

// String implements fmt.Stringer.
func (s ExecutionSource) String() string {
	if s == SourceCLI {
		return "CLI"
	}
	return "LIFECYCLE"
}

// MojoExecution is a single plugin goal scheduled for a project.
type MojoExecution struct {
	Plugin        PluginRef
	Goal          string
	ExecutionID   string
	Phase         string
	Source        ExecutionSource
	Configuration map[string]string
	Command       []string
}

// Key identifies the execution inside a build record.
func (e *MojoExecution) Key() string {
	return strings.Join([]string{
		e.ExecutionID,
		e.Goal,
		e.Phase,
		e.Plugin.GroupID,
		e.Plugin.ArtifactID,
		e.Plugin.Version,
	}, ":")
}

// FullGoalName returns "groupId:artifactId:version:goal".
func (e *MojoExecution) FullGoalName() string {
	return strings.Join([]string{e.Plugin.GroupID, e.Plugin.ArtifactID, e.Plugin.Version, e.Goal}, ":")
}

// GoalName returns the short "prefix:goal" form, e.g. "compiler:compile".
func (e *MojoExecution) GoalName() string {
	return e.Plugin.Prefix() + ":" + e.Goal
}

// MojoName names the mojo implementation recorded in build records.
func (e *MojoExecution) MojoName() string {
	return e.Plugin.ArtifactID + ":" + e.Goal
}

// MojoParameters is the configured, string valued parameter map of a mojo.
// Lookups go through Value so that unknown names surface as an access failure.
type MojoParameters map[string]string

// Value returns the named parameter.
func (p MojoParameters) Value(name string) (string, error) {
	v, ok := p[name]
	if !ok {
		return "", zerr.With(ErrPropertyNotAccessible, "property", name)
	}
	return v, nil
}

// Names returns the parameter names in sorted order.
func (p MojoParameters) Names() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Clone returns a copy of the parameters.
func (p MojoParameters) Clone() MojoParameters {
	out := make(MojoParameters, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// ExecutionEvent is what the parameters listener captures for a live mojo execution.
type ExecutionEvent struct {
	Execution  *MojoExecution
	Parameters MojoParameters
	StartedAt  time.Time
	FinishedAt time.Time
	Err        error
}

// Succeeded reports whether the execution finished without error.
func (e ExecutionEvent) Succeeded() bool {
	return !e.FinishedAt.IsZero() && e.Err == nil
}
