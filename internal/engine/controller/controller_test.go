package controller_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/memo/internal/adapters/fs"
	"go.trai.ch/memo/internal/adapters/localrepo"
	"go.trai.ch/memo/internal/adapters/remote"
	"go.trai.ch/memo/internal/core/domain"
	"go.trai.ch/memo/internal/core/ports"
	"go.trai.ch/memo/internal/core/ports/mocks"
	"go.trai.ch/memo/internal/engine/controller"
	"go.uber.org/mock/gomock"
)

func execution(artifactID, goal, phase string) *domain.MojoExecution {
	return &domain.MojoExecution{
		Plugin:      domain.PluginRef{GroupID: "org.apache.maven.plugins", ArtifactID: artifactID, Version: "3.0"},
		Goal:        goal,
		ExecutionID: "default-" + goal,
		Phase:       phase,
	}
}

var (
	clean     = execution("maven-clean-plugin", "clean", domain.PhaseClean)
	resources = execution("maven-resources-plugin", "resources", "process-resources")
	compile   = execution("maven-compiler-plugin", "compile", domain.PhaseCompile)
	test      = execution("maven-surefire-plugin", "test", domain.PhaseTest)
	jar       = execution("maven-jar-plugin", "jar", domain.PhasePackage)
	install   = execution("maven-install-plugin", "install", domain.PhaseInstall)
)

// env wires a Controller to a real local repository and mocked collaborators
// whose answers are read from its fields at call time.
type env struct {
	ctrl   *gomock.Controller
	config *mocks.MockCacheConfig
	calc   *mocks.MockInputCalculator
	logger *mocks.MockLogger
	local  *localrepo.Repository

	settings domain.CacheSettings
	enabled  bool
	tracked  map[string][]domain.TrackedProperty
	logs     map[string][]string
	nologs   map[string][]string
	logAll   bool
	forced   map[string]bool
	ignore   map[string]bool

	mu    sync.Mutex
	infos []string
	errs  []error
}

func newEnv(t *testing.T) *env {
	t.Helper()

	ctrl := gomock.NewController(t)
	e := &env{
		ctrl:     ctrl,
		config:   mocks.NewMockCacheConfig(ctrl),
		calc:     mocks.NewMockInputCalculator(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
		settings: domain.DefaultCacheSettings(),
		enabled:  true,
		tracked:  map[string][]domain.TrackedProperty{},
		logs:     map[string][]string{},
		nologs:   map[string][]string{},
		forced:   map[string]bool{},
		ignore:   map[string]bool{},
	}

	e.config.EXPECT().IsEnabled().DoAndReturn(func() bool { return e.enabled }).AnyTimes()
	e.config.EXPECT().IsFailFast().DoAndReturn(func() bool { return e.settings.FailFast }).AnyTimes()
	e.config.EXPECT().Settings().DoAndReturn(func() domain.CacheSettings { return e.settings }).AnyTimes()
	e.config.EXPECT().TrackedProperties(gomock.Any()).DoAndReturn(func(x *domain.MojoExecution) []domain.TrackedProperty {
		return e.tracked[x.Goal]
	}).AnyTimes()
	e.config.EXPECT().LoggedProperties(gomock.Any()).DoAndReturn(func(x *domain.MojoExecution) []string {
		return e.logs[x.Goal]
	}).AnyTimes()
	e.config.EXPECT().NologProperties(gomock.Any()).DoAndReturn(func(x *domain.MojoExecution) []string {
		return e.nologs[x.Goal]
	}).AnyTimes()
	e.config.EXPECT().IsLogAllProperties(gomock.Any()).DoAndReturn(func(*domain.MojoExecution) bool {
		return e.logAll
	}).AnyTimes()
	e.config.EXPECT().IsForcedExecution(gomock.Any()).DoAndReturn(func(x *domain.MojoExecution) bool {
		return e.forced[x.Goal]
	}).AnyTimes()
	e.config.EXPECT().CanIgnoreMissing(gomock.Any()).DoAndReturn(func(x *domain.MojoExecution) bool {
		return e.ignore[x.Goal]
	}).AnyTimes()

	e.logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	e.logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	e.logger.EXPECT().Info(gomock.Any()).Do(func(msg string) {
		e.mu.Lock()
		defer e.mu.Unlock()
		e.infos = append(e.infos, msg)
	}).AnyTimes()
	e.logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		e.mu.Lock()
		defer e.mu.Unlock()
		e.errs = append(e.errs, err)
	}).AnyTimes()

	local, err := localrepo.Open(filepath.Join(t.TempDir(), "cache"), 3, e.logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = local.Close() })
	e.local = local
	return e
}

func (e *env) expectInputs(checksum string) {
	e.calc.EXPECT().CalculateInput(gomock.Any(), gomock.Any(), gomock.Any()).Return(&domain.ProjectsInputInfo{
		Checksum: checksum,
		Items:    []domain.DigestItem{{Type: domain.ItemPom, Value: "memo.yaml", Hash: "p1"}},
	}, nil).AnyTimes()
}

func (e *env) controller(remoteRepo ports.RemoteRepository, opts ...controller.Option) *controller.Controller {
	walker := fs.NewWalker()
	opts = append([]controller.Option{controller.WithVersion("test")}, opts...)
	return controller.New(e.config, e.calc, e.local, remoteRepo, fs.NewHasher(), fs.NewArchiver(walker), e.logger, opts...)
}

func (e *env) infoLines() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.infos...)
}

func newProject(t *testing.T) *domain.Project {
	t.Helper()
	return &domain.Project{
		Coordinates: domain.Coordinates{GroupID: "com.acme", ArtifactID: "core", Version: "1.0"},
		Dir:         t.TempDir(),
		Build:       domain.BuildLayout{Directory: "target"},
	}
}

func newSession(project *domain.Project, goals ...string) *domain.Session {
	return &domain.Session{ID: "session-1", RootDir: project.Dir, Goals: goals}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func events(params map[string]domain.MojoParameters, executions ...*domain.MojoExecution) map[string]domain.ExecutionEvent {
	out := make(map[string]domain.ExecutionEvent, len(executions))
	for _, x := range executions {
		out[x.Key()] = domain.ExecutionEvent{Execution: x, Parameters: params[x.Goal]}
	}
	return out
}

// saveBuild runs a lookup followed by a save, the way a live build records itself.
func saveBuild(t *testing.T, c *controller.Controller, session *domain.Session, project *domain.Project,
	params map[string]domain.MojoParameters, executions ...*domain.MojoExecution,
) {
	t.Helper()
	ctx := context.Background()

	result, err := c.FindCachedBuild(ctx, session, project, executions)
	require.NoError(t, err)
	require.Equal(t, domain.RestoreEmpty, result.Status)
	require.NoError(t, c.Save(ctx, result, executions, events(params, executions...)))
}

func TestController_SaveAndRestore(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	e.expectInputs("abc")
	e.tracked["compile"] = []domain.TrackedProperty{{PropertyName: "release"}}
	ctx := context.Background()

	project := newProject(t)
	session := newSession(project, "package")
	writeFile(t, project.Abs("target/core-1.0.jar"), "jar")
	writeFile(t, project.Abs("target/generated-sources/Gen.java"), "class Gen {}")
	project.SetArtifactFile(project.Abs("target/core-1.0.jar"))

	params := map[string]domain.MojoParameters{"compile": {"release": "17", "debug": "true"}}
	saveBuild(t, e.controller(remote.Noop{}), session, project, params, compile, jar)
	assert.Contains(t, e.infoLines(), "Project is not found in cache")

	require.NoError(t, os.RemoveAll(project.BuildDir()))
	project.ResetArtifacts()

	c := e.controller(remote.Noop{})
	result, err := c.FindCachedBuild(ctx, session, project, []*domain.MojoExecution{compile, jar})
	require.NoError(t, err)
	require.Equal(t, domain.RestoreSuccess, result.Status)
	assert.Equal(t, domain.SourceLocal, result.Source())
	assert.Contains(t, e.infoLines(), "Found cached build, restoring from cache abc")

	compiled, ok := result.Build.FindExecution(compile.Key())
	require.True(t, ok)
	assert.Equal(t, []domain.PropertyValue{{Name: "release", Value: "17", Tracked: true}}, compiled.Properties)
	assert.Equal(t, "maven-compiler-plugin:compile", compiled.MojoClassName)
	assert.Equal(t, "session-1", result.Build.Provenance.BuildID)

	require.True(t, c.RestoreProjectArtifacts(ctx, result))

	data, err := os.ReadFile(project.ArtifactFile())
	require.NoError(t, err)
	assert.Equal(t, "jar", string(data))

	gen, err := os.ReadFile(project.Abs("target/generated-sources/Gen.java"))
	require.NoError(t, err)
	assert.Equal(t, "class Gen {}", string(gen))

	attached := project.AttachedArtifacts()
	require.Len(t, attached, 1)
	assert.Equal(t, controller.GeneratedSourcesPrefix+"generated-sources", attached[0].Classifier)
	assert.Equal(t, "1.0", attached[0].Version)
}

func TestController_SaveAfterPartialRestore(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	e.expectInputs("abc")
	e.tracked["compile"] = []domain.TrackedProperty{{PropertyName: "release"}}
	ctx := context.Background()
	verify := execution("maven-failsafe-plugin", "verify", "verify")

	project := newProject(t)
	writeFile(t, project.Abs("target/core-1.0.jar"), "jar")
	project.SetArtifactFile(project.Abs("target/core-1.0.jar"))
	params := map[string]domain.MojoParameters{"compile": {"release": "17"}}
	saveBuild(t, e.controller(remote.Noop{}), newSession(project, "package"), project, params, compile, jar)

	require.NoError(t, os.RemoveAll(project.BuildDir()))
	project.ResetArtifacts()

	session := newSession(project, "verify")
	request := []*domain.MojoExecution{compile, jar, verify}
	c := e.controller(remote.Noop{})
	result, err := c.FindCachedBuild(ctx, session, project, request)
	require.NoError(t, err)
	require.Equal(t, domain.RestorePartial, result.Status)
	require.True(t, c.RestoreProjectArtifacts(ctx, result))

	rel, err := filepath.Rel(project.BuildDir(), project.ArtifactFile())
	require.NoError(t, err)
	assert.Equal(t, "core-1.0.jar", rel)

	require.NoError(t, c.Save(ctx, result, request, events(nil, verify)))
	assert.Empty(t, e.errs)

	project.ResetArtifacts()
	require.NoError(t, os.RemoveAll(project.BuildDir()))

	c = e.controller(remote.Noop{})
	result, err = c.FindCachedBuild(ctx, session, project, request)
	require.NoError(t, err)
	require.Equal(t, domain.RestoreSuccess, result.Status)

	compiled, ok := result.Build.FindExecution(compile.Key())
	require.True(t, ok)
	assert.Equal(t, []domain.PropertyValue{{Name: "release", Value: "17", Tracked: true}}, compiled.Properties)

	require.True(t, c.RestoreProjectArtifacts(ctx, result))
	data, err := os.ReadFile(project.ArtifactFile())
	require.NoError(t, err)
	assert.Equal(t, "jar", string(data))
}

func TestController_FindCachedBuild_Skipped(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	c := e.controller(remote.Noop{})
	project := newProject(t)
	ctx := context.Background()

	result, err := c.FindCachedBuild(ctx, newSession(project, "clean"), project, []*domain.MojoExecution{clean})
	require.NoError(t, err)
	assert.Equal(t, domain.RestoreEmpty, result.Status)
	assert.Nil(t, result.Context)

	e.enabled = false
	result, err = c.FindCachedBuild(ctx, newSession(project, "compile"), project, []*domain.MojoExecution{compile})
	require.NoError(t, err)
	assert.Equal(t, domain.RestoreEmpty, result.Status)
}

func TestController_FindCachedBuild_Analysis(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		configure func(e *env)
		request   []*domain.MojoExecution
		want      domain.RestoreStatus
		wantInfo  string
	}{
		{
			name:     "later phase requested",
			request:  []*domain.MojoExecution{compile, test},
			want:     domain.RestorePartial,
			wantInfo: "Project restored partially. Highest cached goal: compile, requested: test",
		},
		{
			name:      "missing tail can be ignored",
			configure: func(e *env) { e.ignore["test"] = true },
			request:   []*domain.MojoExecution{compile, test},
			want:      domain.RestoreSuccess,
		},
		{
			name:    "cached segment execution missing",
			request: []*domain.MojoExecution{resources, compile},
			want:    domain.RestoreFailure,
		},
		{
			name: "tracked property not recorded",
			configure: func(e *env) {
				e.tracked["compile"] = []domain.TrackedProperty{{PropertyName: "source"}}
			},
			request:  []*domain.MojoExecution{compile},
			want:     domain.RestoreFailure,
			wantInfo: "Cached build violates cache rules, cannot restore",
		},
		{
			name: "tracked property with default",
			configure: func(e *env) {
				e.tracked["compile"] = []domain.TrackedProperty{{PropertyName: "source", DefaultValue: "17"}}
			},
			request: []*domain.MojoExecution{compile},
			want:    domain.RestoreSuccess,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := newEnv(t)
			e.expectInputs("abc")
			project := newProject(t)
			saveBuild(t, e.controller(remote.Noop{}), newSession(project, "compile"), project,
				map[string]domain.MojoParameters{"compile": {"release": "17"}}, compile)

			if tt.configure != nil {
				tt.configure(e)
			}
			result, err := e.controller(remote.Noop{}).FindCachedBuild(context.Background(),
				newSession(project, "test"), project, tt.request)
			require.NoError(t, err)
			assert.Equal(t, tt.want, result.Status)
			if tt.wantInfo != "" {
				assert.Contains(t, e.infoLines(), tt.wantInfo)
			}
		})
	}
}

func TestController_FindCachedBuild_Remote(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	e.expectInputs("abc")
	project := newProject(t)
	session := newSession(project, "package")
	key := domain.NewCacheKey("com.acme:core", "abc")
	ctx := context.Background()

	artifact := domain.Artifact{GroupID: "com.acme", ArtifactID: "core", FileName: "core-1.0.jar"}
	record := &domain.Build{
		CacheImplementationVersion: "test",
		GroupID:                    "com.acme",
		ArtifactID:                 "core",
		HashFunction:               domain.HashSHA256,
		Goals:                      []string{"package"},
		ProjectsInputInfo:          domain.ProjectsInputInfo{Checksum: "abc"},
		Artifact:                   &artifact,
		Executions:                 []domain.CompletedExecution{{ExecutionKey: compile.Key()}, {ExecutionKey: jar.Key()}},
	}

	remoteRepo := mocks.NewMockRemoteRepository(e.ctrl)
	remoteRepo.EXPECT().Enabled().Return(true).AnyTimes()
	remoteRepo.EXPECT().FindBuild(gomock.Any(), key).Return(record, nil).Times(1)
	remoteRepo.EXPECT().FetchArtifact(gomock.Any(), key, artifact, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.CacheKey, _ domain.Artifact, dest string) (bool, error) {
			writeFile(t, dest, "remote jar")
			return true, nil
		})

	executions := []*domain.MojoExecution{compile, jar}
	result, err := e.controller(remoteRepo).FindCachedBuild(ctx, session, project, executions)
	require.NoError(t, err)
	require.Equal(t, domain.RestoreSuccess, result.Status)
	assert.Equal(t, domain.SourceRemote, result.Source())

	// The downloaded copy answers the next lookup without asking the remote.
	c := e.controller(remoteRepo)
	result, err = c.FindCachedBuild(ctx, session, project, executions)
	require.NoError(t, err)
	require.Equal(t, domain.RestoreSuccess, result.Status)
	assert.Equal(t, domain.SourceRemote, result.Source())

	require.True(t, c.RestoreProjectArtifacts(ctx, result))
	data, err := os.ReadFile(project.ArtifactFile())
	require.NoError(t, err)
	assert.Equal(t, "remote jar", string(data))
}

func TestController_FindCachedBuild_RemoteLookupThrottled(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	e.expectInputs("abc")
	project := newProject(t)
	session := newSession(project, "compile")

	remoteRepo := mocks.NewMockRemoteRepository(e.ctrl)
	remoteRepo.EXPECT().Enabled().Return(true).AnyTimes()
	remoteRepo.EXPECT().FindBuild(gomock.Any(), gomock.Any()).Return(nil, nil).Times(1)

	c := e.controller(remoteRepo)
	for range 2 {
		result, err := c.FindCachedBuild(context.Background(), session, project, []*domain.MojoExecution{compile})
		require.NoError(t, err)
		assert.Equal(t, domain.RestoreEmpty, result.Status)
		assert.NotNil(t, result.InputInfo())
	}
}

func TestController_FindCachedBuild_RemoteFailure(t *testing.T) {
	t.Parallel()

	for _, failFast := range []bool{false, true} {
		e := newEnv(t)
		e.expectInputs("abc")
		e.settings.FailFast = failFast
		project := newProject(t)

		remoteRepo := mocks.NewMockRemoteRepository(e.ctrl)
		remoteRepo.EXPECT().Enabled().Return(true).AnyTimes()
		remoteRepo.EXPECT().FindBuild(gomock.Any(), gomock.Any()).Return(nil, errors.New("i/o timeout"))

		result, err := e.controller(remoteRepo).FindCachedBuild(context.Background(),
			newSession(project, "compile"), project, []*domain.MojoExecution{compile})
		assert.Equal(t, domain.RestoreEmpty, result.Status)
		if failFast {
			require.Error(t, err)
			continue
		}
		require.NoError(t, err)
		assert.Len(t, e.errs, 1)
		assert.NotNil(t, result.InputInfo())
	}
}

func TestController_FindCachedBuild_FingerprintUnavailable(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	e.calc.EXPECT().CalculateInput(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrFingerprintUnavailable)
	project := newProject(t)

	result, err := e.controller(remote.Noop{}).FindCachedBuild(context.Background(),
		newSession(project, "compile"), project, []*domain.MojoExecution{compile})
	require.NoError(t, err)
	assert.Equal(t, domain.RestoreEmpty, result.Status)
	assert.Nil(t, result.InputInfo())
	assert.Len(t, e.errs, 1)
}

func TestController_RestoreProjectArtifacts_MissingFile(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	project := newProject(t)
	build := &domain.Build{
		Source:   domain.SourceLocal,
		Artifact: &domain.Artifact{GroupID: "com.acme", ArtifactID: "core", FileName: "core-1.0.jar"},
	}
	cacheCtx := &domain.CacheContext{
		Session:   newSession(project, "package"),
		Project:   project,
		InputInfo: &domain.ProjectsInputInfo{Checksum: "abc"},
	}

	c := e.controller(remote.Noop{})
	assert.False(t, c.RestoreProjectArtifacts(context.Background(), domain.SuccessResult(build, cacheCtx)))
	assert.Contains(t, e.infoLines(), "Missing file for cached build, cannot restore. File: core-1.0.jar")
	assert.False(t, project.IsResolved())
}

func TestController_IsForcedExecution(t *testing.T) {
	t.Parallel()

	execJava := execution("exec", "java", domain.PhasePackage)
	tests := []struct {
		name     string
		property string
		forced   bool
		want     bool
	}{
		{name: "not configured", want: false},
		{name: "run always", forced: true, want: true},
		{name: "plugin only", property: "exec", want: true},
		{name: "plugin and goal", property: "checkstyle, exec:java", want: true},
		{name: "any goal", property: "exec:*", want: true},
		{name: "other goal", property: "exec:exec", want: false},
		{name: "other plugin", property: "jar", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := newEnv(t)
			e.forced["java"] = tt.forced
			project := newProject(t)
			if tt.property != "" {
				project.Properties = map[string]string{controller.AlwaysRunPluginsProperty: tt.property}
			}
			assert.Equal(t, tt.want, e.controller(remote.Noop{}).IsForcedExecution(project, execJava))
		})
	}
}

func TestController_Save_RecordingRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		configure func(e *env)
		want      []string
	}{
		{name: "tracked only", want: []string{"release"}},
		{
			name:      "log all but nologs",
			configure: func(e *env) { e.logAll = true; e.nologs["compile"] = []string{"password"} },
			want:      []string{"debug", "release"},
		},
		{
			name:      "listed logs",
			configure: func(e *env) { e.logs["compile"] = []string{"debug"} },
			want:      []string{"debug", "release"},
		},
		{
			name:      "tracked wins over nologs",
			configure: func(e *env) { e.nologs["compile"] = []string{"release"} },
			want:      []string{"release"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := newEnv(t)
			e.expectInputs("abc")
			e.tracked["compile"] = []domain.TrackedProperty{{PropertyName: "release"}}
			if tt.configure != nil {
				tt.configure(e)
			}
			project := newProject(t)
			saveBuild(t, e.controller(remote.Noop{}), newSession(project, "compile"), project,
				map[string]domain.MojoParameters{"compile": {"release": "17", "debug": "true", "password": "secret"}},
				compile)

			build, err := e.local.FindLocalBuild(context.Background(), domain.NewCacheKey("com.acme:core", "abc"))
			require.NoError(t, err)
			require.NotNil(t, build)
			completed, ok := build.FindExecution(compile.Key())
			require.True(t, ok)

			var names []string
			for _, p := range completed.Properties {
				names = append(names, p.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestController_Save_RemoteAndReport(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	e.expectInputs("abc")
	e.settings.Remote.SaveToRemote = true
	project := newProject(t)
	session := newSession(project, "package")
	key := domain.NewCacheKey("com.acme:core", "abc")
	writeFile(t, project.Abs("target/core-1.0.jar"), "jar")
	project.SetArtifactFile(project.Abs("target/core-1.0.jar"))

	remoteRepo := mocks.NewMockRemoteRepository(e.ctrl)
	remoteRepo.EXPECT().Enabled().Return(true).AnyTimes()
	remoteRepo.EXPECT().FindBuild(gomock.Any(), key).Return(nil, nil)
	gomock.InOrder(
		remoteRepo.EXPECT().SaveArtifactFile(gomock.Any(), key, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ domain.CacheKey, a domain.Artifact) error {
				assert.Equal(t, "core-1.0.jar", a.FileName)
				assert.Equal(t, int64(3), a.FileSize)
				return nil
			}),
		remoteRepo.EXPECT().SaveBuild(gomock.Any(), key, gomock.Any()).Return(nil),
	)
	remoteRepo.EXPECT().ResourceURL(key, domain.BuildRecordFileName).Return("https://cache/v1/com.acme/core/abc/buildinfo.json")

	c := e.controller(remoteRepo)
	saveBuild(t, c, session, project, nil, compile, jar)
	require.NoError(t, c.SaveCacheReport(context.Background(), session))

	data, err := os.ReadFile(filepath.Join(project.Dir, "target", domain.ReportFileName))
	require.NoError(t, err)
	var report domain.CacheReport
	require.NoError(t, json.Unmarshal(data, &report))

	assert.Equal(t, "session-1", report.BuildID)
	require.Len(t, report.Projects, 1)
	entry := report.Projects[0]
	assert.Equal(t, "abc", entry.Checksum)
	assert.False(t, entry.ChecksumMatched)
	assert.Equal(t, domain.SourceBuild, entry.Source)
	assert.True(t, entry.SharedToRemote)
	assert.Equal(t, "https://cache/v1/com.acme/core/abc/buildinfo.json", entry.URL)
}

func TestController_Report_RebuiltAfterMismatch(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	e.expectInputs("abc")
	ctx := context.Background()
	project := newProject(t)
	session := newSession(project, "compile")
	saveBuild(t, e.controller(remote.Noop{}), session, project, nil, compile)

	c := e.controller(remote.Noop{})
	result, err := c.FindCachedBuild(ctx, session, project, []*domain.MojoExecution{compile})
	require.NoError(t, err)
	require.Equal(t, domain.RestoreSuccess, result.Status)

	report := c.Report(session)
	require.Len(t, report.Projects, 1)
	assert.Equal(t, domain.SourceLocal, report.Projects[0].Source)
	assert.True(t, report.Projects[0].LifecycleMatched)

	require.NoError(t, c.Save(ctx, result, []*domain.MojoExecution{compile}, events(nil, compile)))

	report = c.Report(session)
	require.Len(t, report.Projects, 1)
	entry := report.Projects[0]
	assert.Equal(t, domain.SourceBuild, entry.Source)
	assert.True(t, entry.ChecksumMatched)
	assert.False(t, entry.LifecycleMatched)
	assert.False(t, entry.SharedToRemote)
}

func TestController_Save_FinalRecordIsNotOverwritten(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	e.settings.Remote.SaveToRemote = true
	project := newProject(t)

	remoteRepo := mocks.NewMockRemoteRepository(e.ctrl)
	remoteRepo.EXPECT().Enabled().Return(true).AnyTimes()

	cacheCtx := &domain.CacheContext{
		Session:   newSession(project, "compile"),
		Project:   project,
		InputInfo: &domain.ProjectsInputInfo{Checksum: "abc"},
	}
	matched := &domain.Build{Final: true, Source: domain.SourceRemote}
	result := domain.PartialResult(matched, cacheCtx)

	c := e.controller(remoteRepo)
	require.NoError(t, c.Save(context.Background(), result, []*domain.MojoExecution{compile}, nil))

	build, err := e.local.FindLocalBuild(context.Background(), domain.NewCacheKey("com.acme:core", "abc"))
	require.NoError(t, err)
	require.NotNil(t, build)
}

func TestController_Save_WithoutContext(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	require.NoError(t, e.controller(remote.Noop{}).Save(context.Background(), domain.EmptyResult(), nil, nil))
	assert.Equal(t, []string{"Cannot save project in cache, skipping"}, e.infoLines())
}

func TestController_Save_FailureClearsEntry(t *testing.T) {
	t.Parallel()

	for _, failFast := range []bool{false, true} {
		e := newEnv(t)
		e.settings.FailFast = failFast
		project := newProject(t)
		key := domain.NewCacheKey("com.acme:core", "abc")

		local := mocks.NewMockLocalRepository(e.ctrl)
		local.EXPECT().BeforeSave(gomock.Any(), key).Return(nil)
		local.EXPECT().SaveBuild(gomock.Any(), key, gomock.Any(), true).Return(errors.New("disk full"))
		local.EXPECT().ClearCache(gomock.Any(), key).Return(nil)

		c := controller.New(e.config, e.calc, local, remote.Noop{}, fs.NewHasher(), fs.NewArchiver(fs.NewWalker()), e.logger)
		cacheCtx := &domain.CacheContext{
			Session:   newSession(project, "compile"),
			Project:   project,
			InputInfo: &domain.ProjectsInputInfo{Checksum: "abc"},
		}
		err := c.Save(context.Background(), domain.EmptyResultWithContext(cacheCtx), []*domain.MojoExecution{compile}, nil)

		assert.Len(t, e.errs, 1)
		if failFast {
			require.Error(t, err)
			assert.ErrorContains(t, err, domain.ErrCacheSaveFailed.Error())
		} else {
			require.NoError(t, err)
		}
	}
}

func TestController_Save_BaselineDiff(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	e.expectInputs("abc")
	project := newProject(t)

	baseline := mocks.NewMockBaselineRepository(e.ctrl)
	baseline.EXPECT().FindBaselineBuild(gomock.Any(), project).Return(&domain.Build{
		GroupID:      "com.acme",
		ArtifactID:   "core",
		HashFunction: domain.HashXX,
	}, nil)

	saveBuild(t, e.controller(remote.Noop{}, controller.WithBaseline(baseline)), newSession(project, "compile"), project, nil, compile)

	data, err := os.ReadFile(filepath.Join(project.BuildDir(), domain.DiffReportFileName))
	require.NoError(t, err)
	var report domain.DiffReport
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Equal(t, "com.acme:core", report.Project)
	require.Len(t, report.Mismatches, 1)
	assert.Equal(t, "hashFunction", report.Mismatches[0].Item)
}
