package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scalar-labs/relnote/internal/domain"
	"github.com/scalar-labs/relnote/internal/testutil"
	"github.com/scalar-labs/relnote/internal/usecase"
)

func TestInitConfig_Execute(t *testing.T) {
	t.Run("creates repo config", func(t *testing.T) {
		manager := testutil.NewMockConfigManager()
		manager.RepoConfigInfo = domain.ConfigInfo{Path: "/work/scalardb/.relnote.toml"}

		out, err := usecase.NewInitConfig(manager).Execute(context.Background(), usecase.InitConfigInput{})

		require.NoError(t, err)
		assert.Equal(t, "/work/scalardb/.relnote.toml", out.Path)
		assert.True(t, manager.InitRepoCalled)
		assert.False(t, manager.InitGlobalCalled)
	})

	t.Run("creates global config", func(t *testing.T) {
		manager := testutil.NewMockConfigManager()
		manager.GlobalConfigInfo = domain.ConfigInfo{Path: "/home/test/.config/relnote/config.toml"}

		out, err := usecase.NewInitConfig(manager).Execute(context.Background(), usecase.InitConfigInput{Global: true})

		require.NoError(t, err)
		assert.Equal(t, "/home/test/.config/relnote/config.toml", out.Path)
		assert.False(t, manager.InitRepoCalled)
		assert.True(t, manager.InitGlobalCalled)
	})

	t.Run("returns error when repo config already exists", func(t *testing.T) {
		manager := testutil.NewMockConfigManager()
		manager.InitRepoErr = domain.ErrConfigExists

		_, err := usecase.NewInitConfig(manager).Execute(context.Background(), usecase.InitConfigInput{})

		assert.ErrorIs(t, err, domain.ErrConfigExists)
	})

	t.Run("returns error when global config already exists", func(t *testing.T) {
		manager := testutil.NewMockConfigManager()
		manager.InitGlobalErr = domain.ErrConfigExists

		_, err := usecase.NewInitConfig(manager).Execute(context.Background(), usecase.InitConfigInput{Global: true})

		assert.ErrorIs(t, err, domain.ErrConfigExists)
	})
}
