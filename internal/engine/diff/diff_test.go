package diff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/memo/internal/core/domain"
	"go.trai.ch/memo/internal/engine/diff"
)

const compileKey = "default-compile:compile:compile:org.apache.maven.plugins:maven-compiler-plugin:3.11"

func build() *domain.Build {
	return &domain.Build{
		GroupID:      "com.acme",
		ArtifactID:   "core",
		HashFunction: domain.HashSHA256,
		ProjectsInputInfo: domain.ProjectsInputInfo{Items: []domain.DigestItem{
			{Type: domain.ItemPom, Value: "memo.yaml", Hash: "p1"},
			{Type: domain.ItemFile, Value: "src/App.java", Hash: "f1"},
			{Type: domain.ItemFile, Value: "src/Util.java", Hash: "f2"},
			{Type: domain.ItemDependency, Value: "com.google:guava:jar:33.0", Hash: "d1"},
			{Type: domain.ItemUpstream, Value: "com.acme:api", Hash: "u1"},
		}},
		Executions: []domain.CompletedExecution{{
			ExecutionKey: compileKey,
			Properties:   []domain.PropertyValue{{Name: "release", Value: "17", Tracked: true}, {Name: "verbose", Value: "false"}},
		}},
	}
}

func items(report domain.DiffReport) []string {
	out := make([]string, 0, len(report.Mismatches))
	for _, m := range report.Mismatches {
		out = append(out, m.Item)
	}
	return out
}

func TestCompare_Identical(t *testing.T) {
	t.Parallel()

	report := diff.Compare(build(), build())
	assert.Equal(t, "com.acme:core", report.Project)
	assert.Empty(t, report.Mismatches)
}

func TestCompare_HashFunction(t *testing.T) {
	t.Parallel()

	current := build()
	current.HashFunction = domain.HashXX
	current.ProjectsInputInfo.Items[1].Hash = "other"

	report := diff.Compare(current, build())
	require.Len(t, report.Mismatches, 1)
	assert.Equal(t, "hashFunction", report.Mismatches[0].Item)
	assert.Equal(t, "Ensure the same algorithm as remote", report.Mismatches[0].Resolution)
}

func TestCompare_Inputs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(b *domain.Build)
		want   []string
		reason string
	}{
		{
			name:   "effective model",
			mutate: func(b *domain.Build) { b.ProjectsInputInfo.Items[0].Hash = "p2" },
			want:   []string{"effective pom"},
			reason: "Difference in effective pom suggests effectively different builds which cannot be reused",
		},
		{
			name:   "file content",
			mutate: func(b *domain.Build) { b.ProjectsInputInfo.Items[2].Hash = "f3" },
			want:   []string{"src/Util.java"},
			reason: "File content is different.",
		},
		{
			name:   "file set",
			mutate: func(b *domain.Build) { b.ProjectsInputInfo.Items[2].Value = "src/Extra.java" },
			want:   []string{"source files"},
			reason: "Remote and local cache contain different sets of input files. Added: src/Extra.java. Removed: src/Util.java",
		},
		{
			name:   "dependency version",
			mutate: func(b *domain.Build) { b.ProjectsInputInfo.Items[3].Value = "com.google:guava:jar:34.0" },
			want:   []string{"dependencies files"},
		},
		{
			name:   "upstream",
			mutate: func(b *domain.Build) { b.ProjectsInputInfo.Items[4].Hash = "u2" },
			want:   []string{"com.acme:api"},
			reason: "Downstream project or snapshot changed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			current := build()
			tt.mutate(current)
			report := diff.Compare(current, build())
			assert.Equal(t, tt.want, items(report))
			if tt.reason != "" {
				assert.Equal(t, tt.reason, report.Mismatches[0].Reason)
			}
		})
	}
}

func TestCompare_Executions(t *testing.T) {
	t.Parallel()

	current := build()
	current.Executions[0].Properties[0].Value = "21"
	current.Executions[0].Properties[1].Value = "true"
	current.Executions = append(current.Executions, domain.CompletedExecution{ExecutionKey: "default-jar"})

	baseline := build()
	baseline.Executions = append(baseline.Executions, domain.CompletedExecution{ExecutionKey: "default-test"})

	report := diff.Compare(current, baseline)
	require.Len(t, report.Mismatches, 3)

	assert.Equal(t, "Baseline build contains excessive plugin default-test", report.Mismatches[0].Reason)
	assert.Equal(t, "Cached build doesn't contain plugin default-jar", report.Mismatches[1].Reason)

	tracked := report.Mismatches[2]
	assert.Equal(t, "release", tracked.Item)
	assert.Equal(t, "21", tracked.Current)
	assert.Equal(t, "17", tracked.Baseline)
	assert.Equal(t, "Plugin: "+compileKey+" has mismatch in tracked property and cannot be reused", tracked.Reason)
	assert.Equal(t, compileKey, tracked.Context)
}

func TestCompare_FingerprintOnly(t *testing.T) {
	t.Parallel()

	current := build()
	current.Executions = nil

	assert.Empty(t, diff.Compare(current, build()).Mismatches)
}
