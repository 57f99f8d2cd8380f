package domain

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	assert.Equal(t, "scalar-labs", cfg.Board.Owner)
	assert.Equal(t, "ScalarDB", cfg.Board.ProjectPrefix)
	assert.Equal(t, 200, cfg.Board.ItemLimit)
	assert.Equal(t, BackendGh, cfg.Source.Backend)
	assert.Equal(t, "gh", cfg.Source.GhPath)
	assert.Equal(t, "GITHUB_TOKEN", cfg.GitHub.TokenEnv)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Warnings)
}

func TestIsValidBackend(t *testing.T) {
	for _, b := range []string{BackendGh, BackendAPI, BackendFixture} {
		assert.True(t, IsValidBackend(b), b)
	}
	assert.False(t, IsValidBackend(""))
	assert.False(t, IsValidBackend("GH"))
}

func TestGitHubConfig_UsesApp(t *testing.T) {
	tests := []struct {
		name string
		cfg  GitHubConfig
		want bool
	}{
		{"token only", GitHubConfig{TokenEnv: "GITHUB_TOKEN"}, false},
		{"complete app", GitHubConfig{AppID: 1, InstallationID: 2, PrivateKeyPath: "key.pem"}, true},
		{"missing key", GitHubConfig{AppID: 1, InstallationID: 2}, false},
		{"missing installation", GitHubConfig{AppID: 1, PrivateKeyPath: "key.pem"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.UsesApp())
		})
	}
}

func TestRenderConfigTemplate(t *testing.T) {
	tmpl := RenderConfigTemplate()

	for _, section := range []string{"[board]", "[source]", "[github]", "[log]"} {
		assert.Contains(t, tmpl, "\n"+section+"\n")
	}
	// Every setting is commented out so the template changes nothing.
	for _, line := range strings.Split(tmpl, "\n") {
		if strings.Contains(line, "=") {
			assert.True(t, strings.HasPrefix(line, "#"), line)
		}
	}
}

func TestConfigPaths(t *testing.T) {
	assert.Equal(t, filepath.Join("/work/scalardb", ".relnote.toml"), RepoRootConfigPath("/work/scalardb"))
	assert.Equal(t, filepath.Join("/home/u/.config", "relnote"), GlobalAppDir("/home/u/.config"))
}
