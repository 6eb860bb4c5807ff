package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/memo/internal/adapters/config"
	"go.trai.ch/memo/internal/core/domain"
	"gopkg.in/yaml.v3"
)

func TestScript_UnmarshalYAML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		want    config.Script
		wantErr error
	}{
		{name: "string", in: "run: make all\n", want: config.Script{"make all"}},
		{name: "list", in: "run:\n  - mkdir -p target\n  - make\n", want: config.Script{"mkdir -p target", "make"}},
		{name: "mapping", in: "run: {a: b}\n", wantErr: domain.ErrInvalidScript},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var dto config.ExecutionDTO
			err := yaml.Unmarshal([]byte(tt.in), &dto)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorContains(t, err, tt.wantErr.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, dto.Run)
		})
	}
}
