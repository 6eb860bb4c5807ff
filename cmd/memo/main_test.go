package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	tests := []struct {
		name         string
		setup        func(t *testing.T, dir string)
		args         []string
		expectedExit int
	}{
		{
			name:         "version",
			args:         []string{"version"},
			expectedExit: 0,
		},
		{
			name:         "no reactor",
			args:         []string{"build", "compile"},
			expectedExit: 1,
		},
		{
			name: "unknown phase",
			setup: func(t *testing.T, dir string) {
				t.Helper()
				content := []byte("groupId: com.acme\nartifactId: tool\nversion: 1.0.0\n")
				require.NoError(t, os.WriteFile(filepath.Join(dir, "memo.yaml"), content, 0o600))
			},
			args:         []string{"build", "deploy-everything"},
			expectedExit: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if tt.setup != nil {
				tt.setup(t, dir)
			}
			t.Chdir(dir)

			assert.Equal(t, tt.expectedExit, run(tt.args))
		})
	}
}
