package cmdutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapEnvToGinMode(t *testing.T) {
	tests := []struct {
		env  string
		want string
	}{
		{"production", "release"},
		{"prod", "release"},
		{"test", "test"},
		{"development", "debug"},
		{"", "debug"},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			assert.Equal(t, tt.want, MapEnvToGinMode(tt.env))
		})
	}
}

func TestOptions_ResolveEnv(t *testing.T) {
	opts := &Options{Env: "development"}

	t.Setenv(EnvVar, "")
	assert.Equal(t, "development", opts.ResolveEnv())

	t.Setenv(EnvVar, "production")
	assert.Equal(t, "production", opts.ResolveEnv())
}
