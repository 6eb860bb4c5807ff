package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/memo/internal/adapters/config"
	"go.trai.ch/memo/internal/core/domain"
	"go.trai.ch/memo/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writeDescriptor(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

const workYAML = `
groupId: com.acme
version: 1.0.0
properties:
  java.version: "17"
modules:
  - api
  - "services/*"
  - docs
`

const apiYAML = `
artifactId: api
build:
  finalName: acme-api
  attach:
    sources: target/acme-api-sources.jar
plugins:
  - groupId: org.apache.maven.plugins
    artifactId: maven-compiler-plugin
    version: "3.11"
    configuration:
      release: ${java.version}
    executions:
      - phase: compile
        goals: [compile]
        run: javac -d target/classes src/main/java/*.java
      - id: tests
        phase: test-compile
        goals: [testCompile]
        run:
          - mkdir -p target/test-classes
          - javac -d target/test-classes src/test/java/*.java
`

const billingYAML = `
artifactId: billing
packaging: war
properties:
  java.version: "21"
dependencies:
  - groupId: com.acme
    artifactId: api
  - groupId: org.slf4j
    artifactId: slf4j-api
    version: "2.0.9"
    file: lib/slf4j-api.jar
`

func TestLoader_Workspace(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	root := t.TempDir()
	writeDescriptor(t, filepath.Join(root, domain.WorkFileName), workYAML)
	writeDescriptor(t, filepath.Join(root, "api", domain.ProjectFileName), apiYAML)
	writeDescriptor(t, filepath.Join(root, "services", "billing", domain.ProjectFileName), billingYAML)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "docs"), 0o750))

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn("memo.yaml missing in module docs, skipping")

	reactor, err := config.NewLoader(log).Load(root)
	require.NoError(t, err)
	assert.Equal(t, 2, reactor.Len())

	var order []string
	for p := range reactor.Walk() {
		order = append(order, p.Key())
	}
	assert.Equal(t, []string{"com.acme:api", "com.acme:billing"}, order)
	assert.Equal(t, []string{"com.acme:api"}, reactor.Upstream("com.acme:billing"))

	api, ok := reactor.Project("com.acme:api")
	require.True(t, ok)
	assert.Equal(t, "1.0.0", api.Version)
	assert.Equal(t, "17", api.Properties["java.version"])
	assert.Equal(t, "acme-api", api.FinalName())
	assert.Equal(t, "src/main/java", api.Build.SourceDirectory)
	assert.Equal(t, []string{"src/main/resources"}, api.Build.Resources)
	require.Len(t, api.Plugins, 1)
	require.Len(t, api.Plugins[0].Executions, 2)

	compile := api.Plugins[0].Executions[0]
	assert.Equal(t, "default-compile", compile.ID)
	assert.Equal(t, []string{"javac -d target/classes src/main/java/*.java"}, compile.Command)

	testCompile := api.Plugins[0].Executions[1]
	assert.Equal(t, "tests", testCompile.ID)
	assert.Len(t, testCompile.Command, 2)

	billing, ok := reactor.Project("com.acme:billing")
	require.True(t, ok)
	assert.Equal(t, "21", billing.Properties["java.version"])
	assert.Equal(t, "war", billing.PackagingOrDefault())
	assert.Equal(t, filepath.Join(root, "services", "billing", "lib", "slf4j-api.jar"), billing.Dependencies[1].File)
}

func TestLoader_Standalone(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	root := t.TempDir()
	writeDescriptor(t, filepath.Join(root, domain.ProjectFileName), "groupId: com.acme\nartifactId: tool\n")

	reactor, err := config.NewLoader(mocks.NewMockLogger(ctrl)).Load(root)
	require.NoError(t, err)
	p, ok := reactor.Project("com.acme:tool")
	require.True(t, ok)
	assert.Equal(t, root, p.Dir)
}

func TestLoader_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		files   map[string]string
		wantErr error
	}{
		{
			name:    "missing coordinates",
			files:   map[string]string{domain.ProjectFileName: "version: 1\n"},
			wantErr: domain.ErrMissingCoordinates,
		},
		{
			name:    "parse failure",
			files:   map[string]string{domain.ProjectFileName: "artifactId: [\n"},
			wantErr: domain.ErrDescriptorParseFailed,
		},
		{
			name:    "invalid run",
			files:   map[string]string{domain.ProjectFileName: "groupId: g\nartifactId: a\nplugins:\n  - artifactId: p\n    executions:\n      - goals: [x]\n        run: {a: b}\n"},
			wantErr: domain.ErrDescriptorParseFailed,
		},
		{
			name: "duplicate project",
			files: map[string]string{
				domain.WorkFileName:                        "groupId: g\nmodules: [a, b]\n",
				filepath.Join("a", domain.ProjectFileName): "artifactId: same\n",
				filepath.Join("b", domain.ProjectFileName): "artifactId: same\n",
			},
			wantErr: domain.ErrDuplicateProject,
		},
		{
			name: "cycle",
			files: map[string]string{
				domain.WorkFileName:                        "groupId: g\nmodules: [a, b]\n",
				filepath.Join("a", domain.ProjectFileName): "artifactId: a\ndependencies: [{groupId: g, artifactId: b}]\n",
				filepath.Join("b", domain.ProjectFileName): "artifactId: b\ndependencies: [{groupId: g, artifactId: a}]\n",
			},
			wantErr: domain.ErrCycleDetected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			root := t.TempDir()
			for name, content := range tt.files {
				writeDescriptor(t, filepath.Join(root, name), content)
			}

			_, err := config.NewLoader(mocks.NewMockLogger(ctrl)).Load(root)
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr.Error())
		})
	}
}

func TestLoader_DiscoverRoot(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	loader := config.NewLoader(mocks.NewMockLogger(ctrl))

	root := t.TempDir()
	writeDescriptor(t, filepath.Join(root, domain.WorkFileName), "modules: [api]\n")
	writeDescriptor(t, filepath.Join(root, "api", domain.ProjectFileName), "artifactId: api\n")
	deep := filepath.Join(root, "api", "src", "main")
	require.NoError(t, os.MkdirAll(deep, 0o750))

	got, err := loader.DiscoverRoot(deep)
	require.NoError(t, err)
	assert.Equal(t, root, got)

	single := t.TempDir()
	writeDescriptor(t, filepath.Join(single, domain.ProjectFileName), "artifactId: x\n")
	got, err = loader.DiscoverRoot(single)
	require.NoError(t, err)
	assert.Equal(t, single, got)
}
