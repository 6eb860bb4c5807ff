// Package shell runs mojo executions as shell scripts on an embedded POSIX
// interpreter and exposes their interpolated configuration as mojo parameters.
package shell

import (
	"context"
	"slices"

	"go.trai.ch/memo/internal/core/domain"
	"go.trai.ch/memo/internal/core/ports"
	"go.trai.ch/zerr"
)

// Mojo is a configured mojo: an execution and its interpolated parameters.
type Mojo struct {
	execution *domain.MojoExecution
	params    domain.MojoParameters
}

var _ ports.Mojo = (*Mojo)(nil)

// NewMojo creates a mojo with fixed parameters.
func NewMojo(execution *domain.MojoExecution, params domain.MojoParameters) *Mojo {
	return &Mojo{execution: execution, params: params}
}

// Execution implements ports.Mojo.
func (m *Mojo) Execution() *domain.MojoExecution {
	return m.execution
}

// Parameter implements ports.Mojo.
func (m *Mojo) Parameter(name string) (string, error) {
	return m.params.Value(name)
}

// Parameters implements ports.Mojo.
func (m *Mojo) Parameters() domain.MojoParameters {
	return m.params.Clone()
}

// PluginManager implements ports.PluginManager.
type PluginManager struct{}

var _ ports.PluginManager = (*PluginManager)(nil)

// NewPluginManager creates a PluginManager.
func NewPluginManager() *PluginManager {
	return &PluginManager{}
}

// ConfiguredMojo interpolates the execution's configuration against project.
func (m *PluginManager) ConfiguredMojo(_ context.Context, project *domain.Project, execution *domain.MojoExecution) (ports.Mojo, error) {
	lookup := projectLookup(project)

	names := make([]string, 0, len(execution.Configuration))
	for name := range execution.Configuration {
		names = append(names, name)
	}
	slices.Sort(names)

	params := make(domain.MojoParameters, len(names))
	for _, name := range names {
		v, err := Interpolate(execution.Configuration[name], lookup)
		if err != nil {
			err = zerr.Wrap(err, domain.ErrMojoConfigurationFailed.Error())
			return nil, zerr.With(zerr.With(err, "goal", execution.GoalName()), "parameter", name)
		}
		params[name] = v
	}
	return NewMojo(execution, params), nil
}

// ReleaseMojo implements ports.PluginManager. Mojos hold no resources.
func (m *PluginManager) ReleaseMojo(ports.Mojo) {}
