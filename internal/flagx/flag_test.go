package flagx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate value form",
			args:    []string{"-a", "http://localhost:8888", "-x", "other"},
			allowed: []string{"-a"},
			want:    []string{"-a", "http://localhost:8888"},
		},
		{
			name:    "equals form",
			args:    []string{"--config=conf.json", "-a=addr"},
			allowed: []string{"--config"},
			want:    []string{"--config=conf.json"},
		},
		{
			name:    "flag followed by another flag keeps no value",
			args:    []string{"-a", "-b"},
			allowed: []string{"-a"},
			want:    []string{"-a"},
		},
		{
			name:    "nothing allowed",
			args:    []string{"-a", "1"},
			allowed: nil,
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}
