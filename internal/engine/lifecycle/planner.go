// Package lifecycle plans the ordered mojo executions of a project for the
// requested phases and direct plugin goals.
package lifecycle

import (
	"maps"
	"slices"
	"strings"

	"go.trai.ch/memo/internal/core/domain"
	"go.trai.ch/zerr"
)

// CLIExecutionID is the execution id of goals invoked directly.
const CLIExecutionID = "default-cli"

// Planner expands goals into mojo executions.
type Planner struct{}

// NewPlanner creates a Planner.
func NewPlanner() *Planner {
	return &Planner{}
}

// Plan returns the executions for goals in lifecycle order. A goal is either
// a lifecycle phase, which pulls in every phase before it, or a
// "prefix:goal" reference executed once with the CLI source.
func (p *Planner) Plan(project *domain.Project, goals []string) ([]*domain.MojoExecution, error) {
	if len(goals) == 0 {
		return nil, domain.ErrNoGoalsSpecified
	}

	var plan []*domain.MojoExecution
	planned := make(map[string]bool)
	add := func(e *domain.MojoExecution) {
		if planned[e.Key()] {
			return
		}
		planned[e.Key()] = true
		plan = append(plan, e)
	}

	for _, goal := range goals {
		if strings.Contains(goal, ":") {
			e, err := directGoal(project, goal)
			if err != nil {
				return nil, err
			}
			add(e)
			continue
		}

		phases, err := phasesUpTo(goal)
		if err != nil {
			return nil, err
		}
		for _, phase := range phases {
			for _, e := range boundTo(project, phase) {
				add(e)
			}
		}
	}
	return plan, nil
}

func phasesUpTo(phase string) ([]string, error) {
	for _, lifecycle := range [][]string{domain.CleanPhases(), domain.DefaultPhases()} {
		if i := slices.Index(lifecycle, phase); i >= 0 {
			return lifecycle[:i+1], nil
		}
	}
	return nil, zerr.With(domain.ErrUnknownPhase, "phase", phase)
}

// boundTo returns the executions bound to phase in plugin declaration order.
func boundTo(project *domain.Project, phase string) []*domain.MojoExecution {
	var executions []*domain.MojoExecution
	for _, plugin := range project.Plugins {
		for _, pe := range plugin.Executions {
			if pe.Phase != phase {
				continue
			}
			executions = append(executions, &domain.MojoExecution{
				Plugin:        plugin.PluginRef,
				Goal:          pe.Goal,
				ExecutionID:   pe.ID,
				Phase:         pe.Phase,
				Source:        domain.SourceLifecycle,
				Configuration: merged(plugin.Configuration, pe.Configuration),
				Command:       slices.Clone(pe.Command),
			})
		}
	}
	return executions
}

func directGoal(project *domain.Project, goal string) (*domain.MojoExecution, error) {
	prefix, name, _ := strings.Cut(goal, ":")
	if prefix == "" || name == "" {
		return nil, zerr.With(domain.ErrInvalidGoal, "goal", goal)
	}

	for _, plugin := range project.Plugins {
		if plugin.Prefix() != prefix && plugin.ArtifactID != prefix {
			continue
		}
		declared := declaringExecution(plugin, name)
		if declared == nil {
			continue
		}
		return &domain.MojoExecution{
			Plugin:        plugin.PluginRef,
			Goal:          name,
			ExecutionID:   CLIExecutionID,
			Source:        domain.SourceCLI,
			Configuration: merged(plugin.Configuration, declared.Configuration),
			Command:       slices.Clone(declared.Command),
		}, nil
	}
	return nil, zerr.With(zerr.With(domain.ErrInvalidGoal, "goal", goal), "project", project.Key())
}

// declaringExecution prefers the default-cli execution of a goal.
func declaringExecution(plugin domain.Plugin, goal string) *domain.PluginExecution {
	var found *domain.PluginExecution
	for i := range plugin.Executions {
		pe := &plugin.Executions[i]
		if pe.Goal != goal {
			continue
		}
		if pe.ID == CLIExecutionID {
			return pe
		}
		if found == nil {
			found = pe
		}
	}
	return found
}

func merged(base, override map[string]string) map[string]string {
	out := make(map[string]string, len(base)+len(override))
	maps.Copy(out, base)
	maps.Copy(out, override)
	return out
}
