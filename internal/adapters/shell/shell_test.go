package shell_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/memo/internal/adapters/shell"
	"go.trai.ch/memo/internal/core/domain"
	"go.trai.ch/memo/internal/core/ports"
	"go.trai.ch/memo/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type captureSpan struct {
	bytes.Buffer
	err error
}

func (s *captureSpan) End()                     {}
func (s *captureSpan) RecordError(err error)    { s.err = err }
func (s *captureSpan) SetAttribute(string, any) {}

type captureTracer struct {
	names []string
	spans []*captureSpan
}

func (t *captureTracer) Start(ctx context.Context, name string, _ ...ports.SpanOption) (context.Context, ports.Span) {
	span := &captureSpan{}
	t.names = append(t.names, name)
	t.spans = append(t.spans, span)
	return ctx, span
}

func (t *captureTracer) EmitPlan(context.Context, []string, []string) {}

func testProject(t *testing.T) *domain.Project {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "target"), 0o755))
	return &domain.Project{
		Coordinates: domain.Coordinates{GroupID: "com.acme", ArtifactID: "core", Version: "1.0"},
		Dir:         dir,
		Properties:  map[string]string{"java.release": "17"},
		Build: domain.BuildLayout{
			Directory:       "target",
			OutputDirectory: "target/classes",
			Attach:          map[string]string{"sources": "target/core-1.0-sources.jar"},
		},
	}
}

func TestInterpolate(t *testing.T) {
	t.Parallel()

	lookup := func(name string) (string, bool) {
		v, ok := map[string]string{"a": "1", "b.c": "two"}[name]
		return v, ok
	}

	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "plain", in: "no expressions", want: "no expressions"},
		{name: "single", in: "${a}", want: "1"},
		{name: "dotted", in: "x-${b.c}-y", want: "x-two-y"},
		{name: "unknown kept", in: "${HOME}/${a}", want: "${HOME}/1"},
		{name: "unterminated", in: "${a", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := shell.Interpolate(tt.in, lookup)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorContains(t, err, domain.ErrUnterminatedExpression.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPluginManager_ConfiguredMojo(t *testing.T) {
	t.Parallel()

	project := testProject(t)
	execution := &domain.MojoExecution{
		Plugin: domain.PluginRef{ArtifactID: "maven-compiler-plugin"},
		Goal:   "compile",
		Configuration: map[string]string{
			"release":         "${java.release}",
			"outputDirectory": "${project.build.outputDirectory}",
			"finalName":       "${project.build.finalName}",
		},
	}

	pm := shell.NewPluginManager()
	mojo, err := pm.ConfiguredMojo(context.Background(), project, execution)
	require.NoError(t, err)
	defer pm.ReleaseMojo(mojo)

	assert.Same(t, execution, mojo.Execution())
	release, err := mojo.Parameter("release")
	require.NoError(t, err)
	assert.Equal(t, "17", release)
	assert.Equal(t, filepath.Join(project.Dir, "target", "classes"), mojo.Parameters()["outputDirectory"])
	assert.Equal(t, "core-1.0", mojo.Parameters()["finalName"])

	_, err = mojo.Parameter("debug")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrPropertyNotAccessible.Error())

	execution.Configuration["broken"] = "${oops"
	_, err = pm.ConfiguredMojo(context.Background(), project, execution)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrMojoConfigurationFailed.Error())
}

func newRunner(t *testing.T) (*shell.Runner, *mocks.MockExecutionListener, *captureTracer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	listener := mocks.NewMockExecutionListener(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	tracer := &captureTracer{}
	return shell.NewRunner(shell.NewPluginManager(), listener, tracer, logger), listener, tracer
}

func TestRunner_PackageAttachesArtifacts(t *testing.T) {
	t.Parallel()

	runner, listener, tracer := newRunner(t)
	project := testProject(t)
	execution := &domain.MojoExecution{
		Plugin:        domain.PluginRef{ArtifactID: "maven-jar-plugin"},
		Goal:          "jar",
		ExecutionID:   "default-jar",
		Phase:         domain.PhasePackage,
		Configuration: map[string]string{"greeting": "hello ${project.artifactId}"},
		Command: []string{
			"echo ${greeting}",
			"printf jar > ${project.build.directory}/${project.build.finalName}.jar",
			"printf src > target/core-1.0-sources.jar",
		},
	}

	gomock.InOrder(
		listener.EXPECT().BeforeMojoExecution(project, gomock.Any()),
		listener.EXPECT().AfterMojoExecutionSuccess(project, gomock.Any()).Do(
			func(_ *domain.Project, event domain.ExecutionEvent) {
				assert.True(t, event.Succeeded())
				assert.Equal(t, "hello core", event.Parameters["greeting"])
			}),
	)

	session := &domain.Session{ID: "build-1"}
	require.NoError(t, runner.Run(context.Background(), session, project, execution))

	assert.Equal(t, []string{"jar:jar"}, tracer.names)
	assert.Equal(t, "hello core\n", tracer.spans[0].String())
	assert.Equal(t, filepath.Join(project.Dir, "target", "core-1.0.jar"), project.ArtifactFile())
	require.Len(t, project.AttachedArtifacts(), 1)
	attached := project.AttachedArtifacts()[0]
	assert.Equal(t, "sources", attached.Classifier)
	assert.Equal(t, "jar", attached.Extension)
	assert.Equal(t, "core-1.0-sources.jar", attached.FileName)
}

func TestRunner_FailureFiresFailureHook(t *testing.T) {
	t.Parallel()

	runner, listener, tracer := newRunner(t)
	project := testProject(t)
	execution := &domain.MojoExecution{
		Plugin:  domain.PluginRef{ArtifactID: "maven-surefire-plugin"},
		Goal:    "test",
		Phase:   domain.PhaseTest,
		Command: []string{"echo failing", "exit 3"},
	}

	listener.EXPECT().BeforeMojoExecution(project, gomock.Any())
	listener.EXPECT().AfterExecutionFailure(project, gomock.Any()).Do(
		func(_ *domain.Project, event domain.ExecutionEvent) {
			assert.False(t, event.Succeeded())
			assert.Error(t, event.Err)
		})

	err := runner.Run(context.Background(), nil, project, execution)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrMojoExecutionFailed.Error())
	assert.Equal(t, "failing\n", tracer.spans[0].String())
	assert.Error(t, tracer.spans[0].err)
	assert.Empty(t, project.ArtifactFile())
}

func TestRunner_NoCommand(t *testing.T) {
	t.Parallel()

	runner, listener, _ := newRunner(t)
	project := testProject(t)
	execution := &domain.MojoExecution{Plugin: domain.PluginRef{ArtifactID: "maven-resources-plugin"}, Goal: "resources"}

	listener.EXPECT().BeforeMojoExecution(project, gomock.Any())
	listener.EXPECT().AfterMojoExecutionSuccess(project, gomock.Any())

	require.NoError(t, runner.Run(context.Background(), nil, project, execution))
}

func TestRunner_ConfigurationFailureSkipsHooks(t *testing.T) {
	t.Parallel()

	runner, _, tracer := newRunner(t)
	project := testProject(t)
	execution := &domain.MojoExecution{
		Plugin:        domain.PluginRef{ArtifactID: "maven-jar-plugin"},
		Goal:          "jar",
		Configuration: map[string]string{"archive": "${unterminated"},
	}

	err := runner.Run(context.Background(), nil, project, execution)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrMojoConfigurationFailed.Error())
	assert.Empty(t, tracer.names)
}
