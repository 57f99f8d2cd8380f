// Package app provides the dependency injection container for the application.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/scalar-labs/relnote/internal/domain"
	"github.com/scalar-labs/relnote/internal/infra/config"
	"github.com/scalar-labs/relnote/internal/infra/executor"
	"github.com/scalar-labs/relnote/internal/infra/fixture"
	"github.com/scalar-labs/relnote/internal/infra/ghcli"
	"github.com/scalar-labs/relnote/internal/infra/git"
	"github.com/scalar-labs/relnote/internal/infra/githubapi"
	"github.com/scalar-labs/relnote/internal/infra/logging"
	"github.com/scalar-labs/relnote/internal/usecase"
)

// Config holds the application paths.
type Config struct {
	WorkDir  string // Directory relnote was started from
	RepoRoot string // Root of the enclosing git repository; empty outside one
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Executor      domain.CommandExecutor
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager

	// Pointer fields
	Logger    *slog.Logger
	LogLevel  *slog.LevelVar
	AppConfig *domain.Config

	// Configuration
	Config Config
}

// New creates a new Container rooted at dir. The enclosing git repository,
// if any, supplies the repository config file.
func New(dir string) (*Container, error) {
	cfg := Config{
		WorkDir:  dir,
		RepoRoot: git.FindRepoRoot(dir),
	}

	configLoader := config.NewLoader(cfg.RepoRoot)
	appConfig, err := configLoader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	level := new(slog.LevelVar)
	level.Set(logging.ResolveLevel(os.Getenv(logging.DebugEnv), appConfig.Log.Level))
	logger := logging.New(os.Stderr, level)

	return &Container{
		Executor:      executor.NewClient(logger),
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManager(cfg.RepoRoot),
		Logger:        logger,
		LogLevel:      level,
		AppConfig:     appConfig,
		Config:        cfg,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
// Logs are written to logOut.
func NewWithDeps(cfg Config, appConfig *domain.Config, exec domain.CommandExecutor, loader domain.ConfigLoader, manager domain.ConfigManager, logOut io.Writer) *Container {
	level := new(slog.LevelVar)
	level.Set(logging.ParseLevel(appConfig.Log.Level))
	return &Container{
		Executor:      exec,
		ConfigLoader:  loader,
		ConfigManager: manager,
		Logger:        logging.New(logOut, level),
		LogLevel:      level,
		AppConfig:     appConfig,
		Config:        cfg,
	}
}

// SetDebug raises the log level to debug.
func (c *Container) SetDebug() {
	c.LogLevel.Set(slog.LevelDebug)
}

// SourceOptions overrides the configured board source.
type SourceOptions struct {
	Backend string // Empty uses [source].backend
	Fixture string // Empty uses [source].fixture
}

// BoardQuerier returns the board backend selected by opts and the config.
func (c *Container) BoardQuerier(ctx context.Context, opts SourceOptions) (domain.BoardQuerier, error) {
	backend := opts.Backend
	if backend == "" {
		backend = c.AppConfig.Source.Backend
	}
	itemLimit := c.AppConfig.Board.ItemLimit

	switch backend {
	case "", domain.BackendGh:
		return ghcli.NewClient(c.Executor, c.AppConfig.Source.GhPath, itemLimit, c.Logger), nil
	case domain.BackendAPI:
		token := githubapi.TokenFromEnv(c.AppConfig.GitHub.TokenEnv)
		return githubapi.NewClient(ctx, c.AppConfig.GitHub, token, itemLimit, c.Logger)
	case domain.BackendFixture:
		path := opts.Fixture
		if path == "" {
			path = c.AppConfig.Source.Fixture
		}
		if path == "" {
			return nil, domain.ErrFixtureRequired
		}
		return fixture.Load(path)
	default:
		return nil, fmt.Errorf("%q: %w", backend, domain.ErrUnknownBackend)
	}
}

// RecordingBoard wraps board so that every answer can be saved as a fixture.
func (c *Container) RecordingBoard(board domain.BoardQuerier) domain.BoardRecorder {
	return fixture.NewRecorder(board)
}

// UseCase factory methods

// CreateReleaseNoteUseCase returns a new CreateReleaseNote use case.
func (c *Container) CreateReleaseNoteUseCase(board domain.BoardQuerier) *usecase.CreateReleaseNote {
	return usecase.NewCreateReleaseNote(board, c.AppConfig.Board, c.Logger)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}
