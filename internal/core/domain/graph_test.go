package domain_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/memo/internal/core/domain"
	"go.trai.ch/zerr"
)

func project(artifactID string, deps ...string) *domain.Project {
	p := &domain.Project{
		Coordinates: domain.Coordinates{GroupID: "com.acme", ArtifactID: artifactID, Version: "1.0"},
	}
	for _, d := range deps {
		p.Dependencies = append(p.Dependencies, domain.Dependency{
			Coordinates: domain.Coordinates{GroupID: "com.acme", ArtifactID: d, Version: "1.0"},
		})
	}
	return p
}

func TestReactor_AddProject(t *testing.T) {
	t.Parallel()

	r := domain.NewReactor()
	require.NoError(t, r.AddProject(project("core")))

	err := r.AddProject(project("core"))
	require.Error(t, err)

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)
	assert.Equal(t, "com.acme:core", zErr.Metadata()["project"])
}

func TestReactor_Validate_Order(t *testing.T) {
	t.Parallel()

	r := domain.NewReactor()
	require.NoError(t, r.AddProject(project("app", "service", "org.external:lib")))
	require.NoError(t, r.AddProject(project("service", "api")))
	require.NoError(t, r.AddProject(project("api")))

	require.NoError(t, r.Validate())

	var order []string
	for p := range r.Walk() {
		order = append(order, p.ArtifactID)
	}
	assert.Equal(t, []string{"api", "service", "app"}, order)
	assert.Equal(t, []string{"com.acme:service"}, r.Upstream("com.acme:app"))
	assert.Empty(t, r.Upstream("com.acme:api"))
}

func TestReactor_Validate_Cycle(t *testing.T) {
	t.Parallel()

	r := domain.NewReactor()
	require.NoError(t, r.AddProject(project("a", "b")))
	require.NoError(t, r.AddProject(project("b", "a")))

	err := r.Validate()
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrCycleDetected.Error())

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok)
	cycle, _ := zErr.Metadata()["cycle"].(string)
	assert.True(t, slices.Contains([]string{
		"com.acme:a -> com.acme:b -> com.acme:a",
		"com.acme:b -> com.acme:a -> com.acme:b",
	}, cycle), "unexpected cycle path %q", cycle)
}

func TestReactor_Walk_StopsEarly(t *testing.T) {
	t.Parallel()

	r := domain.NewReactor()
	require.NoError(t, r.AddProject(project("a")))
	require.NoError(t, r.AddProject(project("b")))
	require.NoError(t, r.Validate())

	count := 0
	for range r.Walk() {
		count++
		break
	}
	assert.Equal(t, 1, count)
}
