package domain

import (
	_ "embed"
	"path/filepath"
)

//go:embed config_template.toml
var configTemplateContent string

// Configuration file locations.
const (
	ConfigFileName     = "config.toml"
	RootConfigFileName = ".relnote.toml"
	AppDirName         = "relnote"
)

// Board backends.
const (
	BackendGh      = "gh"
	BackendAPI     = "api"
	BackendFixture = "fixture"
)

// Defaults for ScalarDB release boards.
const (
	DefaultOwner         = "scalar-labs"
	DefaultProjectPrefix = "ScalarDB"
	DefaultItemLimit     = 200
	DefaultGhPath        = "gh"
	DefaultTokenEnv      = "GITHUB_TOKEN"
	DefaultLogLevel      = "info"
)

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings []string     `toml:"-"`
	GitHub   GitHubConfig `toml:"github"`
	Source   SourceConfig `toml:"source"`
	Board    BoardConfig  `toml:"board"`
	Log      LogConfig    `toml:"log"`
}

// BoardConfig holds project board settings from the [board] section.
type BoardConfig struct {
	Owner         string `toml:"owner,omitempty"`          // Default board/repository owner
	ProjectPrefix string `toml:"project_prefix,omitempty"` // Default project title prefix
	ItemLimit     int    `toml:"item_limit,omitempty"`     // Maximum board items to list
}

// SourceConfig selects where board data comes from, from the [source] section.
type SourceConfig struct {
	Backend string `toml:"backend,omitempty"` // "gh" (default), "api" or "fixture"
	GhPath  string `toml:"gh_path,omitempty"` // Path to the gh executable
	Fixture string `toml:"fixture,omitempty"` // Fixture file for the fixture backend
}

// GitHubConfig holds GitHub API settings from the [github] section.
type GitHubConfig struct {
	TokenEnv       string `toml:"token_env,omitempty"`        // Environment variable holding the token
	BaseURL        string `toml:"base_url,omitempty"`         // GitHub Enterprise base URL
	PrivateKeyPath string `toml:"private_key_path,omitempty"` // GitHub App private key
	AppID          int64  `toml:"app_id,omitempty"`
	InstallationID int64  `toml:"installation_id,omitempty"`
}

// UsesApp reports whether GitHub App authentication is configured.
func (g GitHubConfig) UsesApp() bool {
	return g.AppID != 0 && g.InstallationID != 0 && g.PrivateKeyPath != ""
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty"` // debug, info, warn, error
}

// NewDefaultConfig returns a Config populated with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Board: BoardConfig{
			Owner:         DefaultOwner,
			ProjectPrefix: DefaultProjectPrefix,
			ItemLimit:     DefaultItemLimit,
		},
		Source: SourceConfig{
			Backend: BackendGh,
			GhPath:  DefaultGhPath,
		},
		GitHub: GitHubConfig{
			TokenEnv: DefaultTokenEnv,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// IsValidBackend returns true if name is a known board backend.
func IsValidBackend(name string) bool {
	switch name {
	case BackendGh, BackendAPI, BackendFixture:
		return true
	default:
		return false
	}
}

// RenderConfigTemplate returns the commented config file template.
func RenderConfigTemplate() string {
	return configTemplateContent
}

// RepoRootConfigPath returns the repository config path (.relnote.toml).
func RepoRootConfigPath(repoRoot string) string {
	return filepath.Join(repoRoot, RootConfigFileName)
}

// GlobalAppDir returns the global relnote directory path.
func GlobalAppDir(configHome string) string {
	return filepath.Join(configHome, AppDirName)
}
