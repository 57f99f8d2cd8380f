package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scalar-labs/relnote/internal/domain"
)

func TestManager_GetRepoConfigInfo(t *testing.T) {
	t.Run("returns info when file exists", func(t *testing.T) {
		repoRoot := t.TempDir()
		content := "[board]\nowner = \"example-org\"\n"
		writeFile(t, domain.RepoRootConfigPath(repoRoot), content)

		info := NewManagerWithGlobalDir(repoRoot, "").GetRepoConfigInfo()

		assert.Equal(t, domain.RepoRootConfigPath(repoRoot), info.Path)
		assert.Equal(t, content, info.Content)
		assert.True(t, info.Exists)
	})

	t.Run("returns info when file does not exist", func(t *testing.T) {
		repoRoot := t.TempDir()

		info := NewManagerWithGlobalDir(repoRoot, "").GetRepoConfigInfo()

		assert.Equal(t, domain.RepoRootConfigPath(repoRoot), info.Path)
		assert.Empty(t, info.Content)
		assert.False(t, info.Exists)
	})

	t.Run("outside a repository", func(t *testing.T) {
		info := NewManagerWithGlobalDir("", "").GetRepoConfigInfo()

		assert.Empty(t, info.Path)
		assert.False(t, info.Exists)
	})
}

func TestManager_GetGlobalConfigInfo(t *testing.T) {
	globalDir := t.TempDir()
	content := "[log]\nlevel = \"debug\""
	writeFile(t, filepath.Join(globalDir, domain.ConfigFileName), content)

	info := NewManagerWithGlobalDir("", globalDir).GetGlobalConfigInfo()

	assert.Equal(t, filepath.Join(globalDir, domain.ConfigFileName), info.Path)
	assert.Equal(t, content, info.Content)
	assert.True(t, info.Exists)
}

func TestManager_InitRepoConfig(t *testing.T) {
	t.Run("writes the template", func(t *testing.T) {
		repoRoot := t.TempDir()
		manager := NewManagerWithGlobalDir(repoRoot, "")

		require.NoError(t, manager.InitRepoConfig())

		content, err := os.ReadFile(domain.RepoRootConfigPath(repoRoot))
		require.NoError(t, err)
		assert.Equal(t, domain.RenderConfigTemplate(), string(content))
	})

	t.Run("refuses to overwrite", func(t *testing.T) {
		repoRoot := t.TempDir()
		writeFile(t, domain.RepoRootConfigPath(repoRoot), "# mine\n")

		err := NewManagerWithGlobalDir(repoRoot, "").InitRepoConfig()

		require.ErrorIs(t, err, domain.ErrConfigExists)
		content, readErr := os.ReadFile(domain.RepoRootConfigPath(repoRoot))
		require.NoError(t, readErr)
		assert.Equal(t, "# mine\n", string(content))
	})

	t.Run("outside a repository", func(t *testing.T) {
		err := NewManagerWithGlobalDir("", "").InitRepoConfig()

		require.Error(t, err)
	})
}

func TestManager_InitGlobalConfig(t *testing.T) {
	globalDir := filepath.Join(t.TempDir(), "nested", domain.AppDirName)
	manager := NewManagerWithGlobalDir("", globalDir)

	require.NoError(t, manager.InitGlobalConfig())

	info := manager.GetGlobalConfigInfo()
	assert.True(t, info.Exists)
	assert.Equal(t, domain.RenderConfigTemplate(), info.Content)

	require.ErrorIs(t, manager.InitGlobalConfig(), domain.ErrConfigExists)
}
