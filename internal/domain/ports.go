package domain

import (
	"context"
)

// BoardQuerier answers the read-only queries the release-note pipeline
// needs from the project-management platform.
type BoardQuerier interface {
	// FindProjectID returns the identifier of the board whose title
	// contains both titlePrefix and version. Returns ErrProjectNotFound
	// if there is none.
	FindProjectID(ctx context.Context, owner, titlePrefix, version string) (string, error)

	// ListItemPullRequests returns the pull request numbers of the board
	// items that belong to repository.
	ListItemPullRequests(ctx context.Context, projectID, owner, repository string) ([]string, error)

	// GetState returns the state of a pull request (e.g. "MERGED").
	// Returns ErrPullRequestStateNotFound if the platform reports none.
	GetState(ctx context.Context, prNumber, owner, repository string) (string, error)

	// GetLabels returns the label names of a pull request.
	GetLabels(ctx context.Context, prNumber, owner, repository string) ([]string, error)

	// GetBody returns the description of a pull request split into lines.
	GetBody(ctx context.Context, prNumber, owner, repository string) ([]string, error)
}

// BoardRecorder is a BoardQuerier that remembers every answer it passed
// through so the session can be replayed later.
type BoardRecorder interface {
	BoardQuerier

	// Save writes the recorded answers to path.
	Save(path string) error
}

// CommandExecutor runs external commands.
type CommandExecutor interface {
	// Execute runs the command and returns its standard output.
	// A non-zero exit status is returned as an error that includes
	// the command's standard error.
	Execute(ctx context.Context, cmd *ExecCommand) ([]byte, error)
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the merged configuration (defaults + global + repo).
	Load() (*Config, error)

	// LoadWithOptions returns the merged configuration, skipping ignored sources.
	LoadWithOptions(opts LoadConfigOptions) (*Config, error)
}

// LoadConfigOptions selects which configuration sources to skip.
type LoadConfigOptions struct {
	IgnoreGlobal bool
	IgnoreRepo   bool
}

// ConfigManager manages configuration files.
type ConfigManager interface {
	// GetGlobalConfigInfo returns information about the global config file.
	GetGlobalConfigInfo() ConfigInfo

	// GetRepoConfigInfo returns information about the repository config file.
	GetRepoConfigInfo() ConfigInfo

	// InitGlobalConfig writes the config template to the global config path.
	InitGlobalConfig() error

	// InitRepoConfig writes the config template to the repository config path.
	InitRepoConfig() error
}

// ConfigInfo describes a configuration file.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}
