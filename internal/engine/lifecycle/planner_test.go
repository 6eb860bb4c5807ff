package lifecycle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/memo/internal/core/domain"
	"go.trai.ch/memo/internal/engine/lifecycle"
)

func testProject() *domain.Project {
	return &domain.Project{
		Coordinates: domain.Coordinates{GroupID: "com.acme", ArtifactID: "core", Version: "1.0"},
		Plugins: []domain.Plugin{
			{
				PluginRef:  domain.PluginRef{GroupID: "org.apache.maven.plugins", ArtifactID: "maven-clean-plugin", Version: "3"},
				Executions: []domain.PluginExecution{{ID: "default-clean", Phase: "clean", Goal: "clean", Command: []string{"rm -rf target"}}},
			},
			{
				PluginRef:     domain.PluginRef{GroupID: "org.apache.maven.plugins", ArtifactID: "maven-compiler-plugin", Version: "3"},
				Configuration: map[string]string{"release": "17", "debug": "true"},
				Executions: []domain.PluginExecution{
					{ID: "default-testCompile", Phase: "test-compile", Goal: "testCompile"},
					{ID: "default-compile", Phase: "compile", Goal: "compile", Configuration: map[string]string{"debug": "false"}},
				},
			},
			{
				PluginRef: domain.PluginRef{GroupID: "org.apache.maven.plugins", ArtifactID: "maven-jar-plugin", Version: "3"},
				Executions: []domain.PluginExecution{
					{ID: "default-jar", Phase: "package", Goal: "jar", Command: []string{"zip"}},
				},
			},
			{
				PluginRef: domain.PluginRef{GroupID: "org.codehaus.mojo", ArtifactID: "exec-maven-plugin", Version: "3"},
				Executions: []domain.PluginExecution{
					{ID: "default-exec", Goal: "exec", Command: []string{"echo first"}},
					{ID: "default-cli", Goal: "exec", Command: []string{"echo cli"}, Configuration: map[string]string{"mode": "cli"}},
				},
			},
		},
	}
}

func goals(plan []*domain.MojoExecution) []string {
	out := make([]string, 0, len(plan))
	for _, e := range plan {
		out = append(out, e.GoalName())
	}
	return out
}

func TestPlanner_Phases(t *testing.T) {
	t.Parallel()

	p := lifecycle.NewPlanner()

	tests := []struct {
		name  string
		goals []string
		want  []string
	}{
		{name: "compile", goals: []string{"compile"}, want: []string{"compiler:compile"}},
		{name: "package", goals: []string{"package"}, want: []string{"compiler:compile", "compiler:testCompile", "jar:jar"}},
		{name: "clean package", goals: []string{"clean", "package"}, want: []string{"clean:clean", "compiler:compile", "compiler:testCompile", "jar:jar"}},
		{name: "repeated phase", goals: []string{"compile", "package"}, want: []string{"compiler:compile", "compiler:testCompile", "jar:jar"}},
		{name: "validate", goals: []string{"validate"}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			plan, err := p.Plan(testProject(), tt.goals)
			require.NoError(t, err)
			assert.Equal(t, tt.want, goals(plan))
		})
	}
}

func TestPlanner_MergesConfiguration(t *testing.T) {
	t.Parallel()

	plan, err := lifecycle.NewPlanner().Plan(testProject(), []string{"compile"})
	require.NoError(t, err)
	require.Len(t, plan, 1)

	compile := plan[0]
	assert.Equal(t, map[string]string{"release": "17", "debug": "false"}, compile.Configuration)
	assert.Equal(t, "default-compile", compile.ExecutionID)
	assert.Equal(t, domain.PhaseCompile, compile.Phase)
	assert.Equal(t, domain.SourceLifecycle, compile.Source)
}

func TestPlanner_DirectGoal(t *testing.T) {
	t.Parallel()

	plan, err := lifecycle.NewPlanner().Plan(testProject(), []string{"package", "exec:exec"})
	require.NoError(t, err)
	require.Len(t, plan, 4)

	exec := plan[3]
	assert.Equal(t, domain.SourceCLI, exec.Source)
	assert.Equal(t, lifecycle.CLIExecutionID, exec.ExecutionID)
	assert.Empty(t, exec.Phase)
	assert.Equal(t, []string{"echo cli"}, exec.Command)
	assert.Equal(t, map[string]string{"mode": "cli"}, exec.Configuration)

	byArtifact, err := lifecycle.NewPlanner().Plan(testProject(), []string{"maven-jar-plugin:jar"})
	require.NoError(t, err)
	require.Len(t, byArtifact, 1)
	assert.Equal(t, []string{"zip"}, byArtifact[0].Command)
}

func TestPlanner_Errors(t *testing.T) {
	t.Parallel()

	p := lifecycle.NewPlanner()

	tests := []struct {
		name    string
		goals   []string
		wantErr error
	}{
		{name: "no goals", wantErr: domain.ErrNoGoalsSpecified},
		{name: "unknown phase", goals: []string{"deployx"}, wantErr: domain.ErrUnknownPhase},
		{name: "unknown plugin", goals: []string{"shade:shade"}, wantErr: domain.ErrInvalidGoal},
		{name: "unknown goal", goals: []string{"compiler:help"}, wantErr: domain.ErrInvalidGoal},
		{name: "malformed", goals: []string{":compile"}, wantErr: domain.ErrInvalidGoal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := p.Plan(testProject(), tt.goals)
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr.Error())
		})
	}
}
