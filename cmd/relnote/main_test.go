package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scalar-labs/relnote/internal/domain"
)

func TestCanRunWithoutContainer(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want bool
	}{
		{name: "no args", args: nil, want: false},
		{name: "help flag", args: []string{"--help"}, want: true},
		{name: "short help flag", args: []string{"config", "-h"}, want: true},
		{name: "version flag", args: []string{"--version"}, want: true},
		{name: "help subcommand", args: []string{"help", "config"}, want: true},
		{name: "config template", args: []string{"config", "template"}, want: true},
		{name: "config show", args: []string{"config", "show"}, want: false},
		{name: "release note", args: []string{"scalar-labs", "ScalarDB", "3.13.0", "scalardb"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, canRunWithoutContainer(tt.args))
		})
	}
}

func TestRun_BrokenConfig(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	dir := filepath.Join(configHome, domain.AppDirName)
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.ConfigFileName), []byte("[board\n"), 0o600))

	err := run([]string{"config", "show"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to initialize")

	require.NoError(t, run([]string{"--version"}))
}
