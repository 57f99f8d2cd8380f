// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"

	"github.com/scalar-labs/relnote/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	repoRoot      string // Git repository root; empty outside a repository
	globalConfDir string // Path to global config directory (e.g., ~/.config/relnote)
}

// NewLoader creates a new Loader.
func NewLoader(repoRoot string) *Loader {
	return &Loader{
		repoRoot:      repoRoot,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(repoRoot, globalConfDir string) *Loader {
	return &Loader{
		repoRoot:      repoRoot,
		globalConfDir: globalConfDir,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalAppDir(configHome)
}

// Load returns the merged configuration (repo + global).
// Repository config takes precedence over global config.
func (l *Loader) Load() (*domain.Config, error) {
	return l.LoadWithOptions(domain.LoadConfigOptions{})
}

// LoadGlobal returns only the global configuration.
func (l *Loader) LoadGlobal() (*domain.Config, error) {
	if l.globalConfDir == "" {
		return nil, os.ErrNotExist
	}
	return l.loadFile(filepath.Join(l.globalConfDir, domain.ConfigFileName))
}

// LoadRepo returns only the repository configuration.
func (l *Loader) LoadRepo() (*domain.Config, error) {
	if l.repoRoot == "" {
		return nil, os.ErrNotExist
	}
	return l.loadFile(domain.RepoRootConfigPath(l.repoRoot))
}

// LoadWithOptions returns the merged configuration with options to ignore sources.
func (l *Loader) LoadWithOptions(opts domain.LoadConfigOptions) (*domain.Config, error) {
	var global, repo *domain.Config
	var err error

	if !opts.IgnoreGlobal {
		global, err = l.LoadGlobal()
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	if !opts.IgnoreRepo {
		repo, err = l.LoadRepo()
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	// Merge: default <- global <- repo (later takes precedence)
	base := domain.NewDefaultConfig()
	if global != nil {
		base = mergeConfigs(base, global)
	}
	if repo != nil {
		base = mergeConfigs(base, repo)
	}
	return base, nil
}

// loadFile loads a configuration from a file.
func (l *Loader) loadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return convertRawToDomainConfig(raw), nil
}

// sectionParser records warnings while reading one [section] table.
type sectionParser struct {
	warnings *[]string
	name     string
}

func (p sectionParser) unknown(key string) {
	*p.warnings = append(*p.warnings, fmt.Sprintf("unknown key in [%s]: %s", p.name, key))
}

func (p sectionParser) invalid(key string, v any) {
	*p.warnings = append(*p.warnings, fmt.Sprintf("invalid value for [%s].%s: %v", p.name, key, v))
}

func (p sectionParser) str(key string, v any, dst *string) {
	if s, ok := v.(string); ok {
		*dst = s
		return
	}
	p.invalid(key, v)
}

// integer accepts TOML integers, which go-toml decodes as int64.
func (p sectionParser) integer(key string, v any, dst *int64) {
	if n, ok := v.(int64); ok && n >= 0 {
		*dst = n
		return
	}
	p.invalid(key, v)
}

// convertRawToDomainConfig converts the raw map to domain config and collects warnings.
func convertRawToDomainConfig(raw map[string]any) *domain.Config {
	res := &domain.Config{}
	var warnings []string

	for section, value := range raw {
		m, ok := value.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
			continue
		}
		p := sectionParser{warnings: &warnings, name: section}

		switch section {
		case "board":
			for k, v := range m {
				switch k {
				case "owner":
					p.str(k, v, &res.Board.Owner)
				case "project_prefix":
					p.str(k, v, &res.Board.ProjectPrefix)
				case "item_limit":
					var n int64
					p.integer(k, v, &n)
					res.Board.ItemLimit = int(n)
				default:
					p.unknown(k)
				}
			}
		case "source":
			for k, v := range m {
				switch k {
				case "backend":
					var s string
					p.str(k, v, &s)
					if s != "" && !domain.IsValidBackend(s) {
						p.invalid(k, s)
						s = ""
					}
					res.Source.Backend = s
				case "gh_path":
					p.str(k, v, &res.Source.GhPath)
				case "fixture":
					p.str(k, v, &res.Source.Fixture)
				default:
					p.unknown(k)
				}
			}
		case "github":
			for k, v := range m {
				switch k {
				case "token_env":
					p.str(k, v, &res.GitHub.TokenEnv)
				case "base_url":
					p.str(k, v, &res.GitHub.BaseURL)
				case "private_key_path":
					p.str(k, v, &res.GitHub.PrivateKeyPath)
				case "app_id":
					p.integer(k, v, &res.GitHub.AppID)
				case "installation_id":
					p.integer(k, v, &res.GitHub.InstallationID)
				default:
					p.unknown(k)
				}
			}
		case "log":
			for k, v := range m {
				switch k {
				case "level":
					p.str(k, v, &res.Log.Level)
				default:
					p.unknown(k)
				}
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
		}
	}

	sort.Strings(warnings)
	res.Warnings = warnings
	return res
}

// mergeConfigs merges two configs, with override taking precedence.
// Zero values in override leave the base value in place.
func mergeConfigs(base, override *domain.Config) *domain.Config {
	result := *base
	result.Warnings = append(append([]string{}, base.Warnings...), override.Warnings...)

	overrideString(&result.Board.Owner, override.Board.Owner)
	overrideString(&result.Board.ProjectPrefix, override.Board.ProjectPrefix)
	if override.Board.ItemLimit > 0 {
		result.Board.ItemLimit = override.Board.ItemLimit
	}

	overrideString(&result.Source.Backend, override.Source.Backend)
	overrideString(&result.Source.GhPath, override.Source.GhPath)
	overrideString(&result.Source.Fixture, override.Source.Fixture)

	overrideString(&result.GitHub.TokenEnv, override.GitHub.TokenEnv)
	overrideString(&result.GitHub.BaseURL, override.GitHub.BaseURL)
	overrideString(&result.GitHub.PrivateKeyPath, override.GitHub.PrivateKeyPath)
	if override.GitHub.AppID != 0 {
		result.GitHub.AppID = override.GitHub.AppID
	}
	if override.GitHub.InstallationID != 0 {
		result.GitHub.InstallationID = override.GitHub.InstallationID
	}

	overrideString(&result.Log.Level, override.Log.Level)
	return &result
}

func overrideString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
