// Package git provides repository discovery.
package git

import (
	"errors"
	"fmt"

	gogit "github.com/go-git/go-git/v5"
)

// ErrNotRepository is returned when no git repository encloses the directory.
var ErrNotRepository = errors.New("not a git repository")

// Client provides git operations.
type Client struct {
	repo     *gogit.Repository
	repoRoot string // Worktree root (parent of .git)
}

// NewClient opens the repository enclosing dir, walking up parent directories.
func NewClient(dir string) (*Client, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("%s: %w", dir, ErrNotRepository)
		}
		return nil, fmt.Errorf("open repository at %s: %w", dir, err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		// Bare repositories have no worktree to hold a config file.
		return nil, fmt.Errorf("%s: %w", dir, ErrNotRepository)
	}

	return &Client{
		repo:     repo,
		repoRoot: wt.Filesystem.Root(),
	}, nil
}

// RepoRoot returns the repository root directory.
func (c *Client) RepoRoot() string {
	return c.repoRoot
}

// FindRepoRoot returns the root of the repository enclosing dir, or an
// empty string when dir is not inside a repository.
func FindRepoRoot(dir string) string {
	c, err := NewClient(dir)
	if err != nil {
		return ""
	}
	return c.RepoRoot()
}
