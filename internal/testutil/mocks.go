// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"fmt"
	"strings"

	"github.com/scalar-labs/relnote/internal/domain"
)

// MockCommandExecutor is a test double for domain.CommandExecutor.
// Outputs are keyed by the command's arguments joined with spaces.
type MockCommandExecutor struct {
	Outputs  map[string]string
	Errors   map[string]error
	Executed []*domain.ExecCommand
}

// NewMockCommandExecutor creates a new MockCommandExecutor with initialized maps.
func NewMockCommandExecutor() *MockCommandExecutor {
	return &MockCommandExecutor{
		Outputs: make(map[string]string),
		Errors:  make(map[string]error),
	}
}

// Ensure MockCommandExecutor implements domain.CommandExecutor.
var _ domain.CommandExecutor = (*MockCommandExecutor)(nil)

// Execute returns the configured output for the command's arguments.
func (m *MockCommandExecutor) Execute(_ context.Context, cmd *domain.ExecCommand) ([]byte, error) {
	m.Executed = append(m.Executed, cmd)
	key := strings.Join(cmd.Args, " ")
	if err, ok := m.Errors[key]; ok {
		return nil, err
	}
	out, ok := m.Outputs[key]
	if !ok {
		return nil, fmt.Errorf("unexpected command: %s", cmd)
	}
	return []byte(out), nil
}

// MockPullRequest is the data MockBoardQuerier serves for one pull request.
type MockPullRequest struct {
	State  string
	Labels []string
	Body   []string
}

// MockBoardQuerier is a test double for domain.BoardQuerier.
// Fields are ordered to minimize memory padding.
type MockBoardQuerier struct {
	PullRequests   map[string]MockPullRequest
	FindProjectErr error
	ListItemsErr   error
	ProjectID      string
	Items          []string
	Calls          []string
}

// NewMockBoardQuerier creates a new MockBoardQuerier with initialized maps.
func NewMockBoardQuerier() *MockBoardQuerier {
	return &MockBoardQuerier{
		ProjectID:    "1",
		PullRequests: make(map[string]MockPullRequest),
	}
}

// Ensure MockBoardQuerier implements domain.BoardQuerier.
var _ domain.BoardQuerier = (*MockBoardQuerier)(nil)

// AddPullRequest registers a pull request and appends it to the board items.
func (m *MockBoardQuerier) AddPullRequest(number, state string, labels []string, body ...string) {
	m.PullRequests[number] = MockPullRequest{State: state, Labels: labels, Body: body}
	m.Items = append(m.Items, number)
}

// FindProjectID returns the configured project ID.
func (m *MockBoardQuerier) FindProjectID(_ context.Context, owner, titlePrefix, version string) (string, error) {
	m.Calls = append(m.Calls, fmt.Sprintf("project %s %s %s", owner, titlePrefix, version))
	if m.FindProjectErr != nil {
		return "", m.FindProjectErr
	}
	if m.ProjectID == "" {
		return "", domain.ErrProjectNotFound
	}
	return m.ProjectID, nil
}

// ListItemPullRequests returns the configured items.
func (m *MockBoardQuerier) ListItemPullRequests(_ context.Context, projectID, _, repository string) ([]string, error) {
	m.Calls = append(m.Calls, fmt.Sprintf("items %s %s", projectID, repository))
	if m.ListItemsErr != nil {
		return nil, m.ListItemsErr
	}
	return m.Items, nil
}

// GetState returns the state of a registered pull request.
func (m *MockBoardQuerier) GetState(_ context.Context, prNumber, _, _ string) (string, error) {
	m.Calls = append(m.Calls, "state "+prNumber)
	pr, ok := m.PullRequests[prNumber]
	if !ok || pr.State == "" {
		return "", domain.ErrPullRequestStateNotFound
	}
	return pr.State, nil
}

// GetLabels returns the labels of a registered pull request.
func (m *MockBoardQuerier) GetLabels(_ context.Context, prNumber, _, _ string) ([]string, error) {
	m.Calls = append(m.Calls, "labels "+prNumber)
	pr, ok := m.PullRequests[prNumber]
	if !ok {
		return nil, domain.ErrPullRequestNotFound
	}
	return pr.Labels, nil
}

// GetBody returns the body of a registered pull request.
func (m *MockBoardQuerier) GetBody(_ context.Context, prNumber, _, _ string) ([]string, error) {
	m.Calls = append(m.Calls, "body "+prNumber)
	pr, ok := m.PullRequests[prNumber]
	if !ok {
		return nil, domain.ErrPullRequestNotFound
	}
	return pr.Body, nil
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config   *domain.Config
	Err      error
	LastOpts domain.LoadConfigOptions
}

// NewMockConfigLoader creates a MockConfigLoader returning the default config.
func NewMockConfigLoader() *MockConfigLoader {
	return &MockConfigLoader{Config: domain.NewDefaultConfig()}
}

// Ensure MockConfigLoader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*MockConfigLoader)(nil)

// Load returns the configured config.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	return m.LoadWithOptions(domain.LoadConfigOptions{})
}

// LoadWithOptions records opts and returns the configured config.
func (m *MockConfigLoader) LoadWithOptions(opts domain.LoadConfigOptions) (*domain.Config, error) {
	m.LastOpts = opts
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Config, nil
}

// MockConfigManager is a test double for domain.ConfigManager.
// Fields are ordered to minimize memory padding.
type MockConfigManager struct {
	InitRepoErr      error
	InitGlobalErr    error
	GlobalConfigInfo domain.ConfigInfo
	RepoConfigInfo   domain.ConfigInfo
	InitRepoCalled   bool
	InitGlobalCalled bool
}

// NewMockConfigManager creates a new MockConfigManager.
func NewMockConfigManager() *MockConfigManager {
	return &MockConfigManager{}
}

// Ensure MockConfigManager implements domain.ConfigManager.
var _ domain.ConfigManager = (*MockConfigManager)(nil)

// GetGlobalConfigInfo returns the configured global config info.
func (m *MockConfigManager) GetGlobalConfigInfo() domain.ConfigInfo {
	return m.GlobalConfigInfo
}

// GetRepoConfigInfo returns the configured repository config info.
func (m *MockConfigManager) GetRepoConfigInfo() domain.ConfigInfo {
	return m.RepoConfigInfo
}

// InitGlobalConfig records the call and returns InitGlobalErr.
func (m *MockConfigManager) InitGlobalConfig() error {
	m.InitGlobalCalled = true
	return m.InitGlobalErr
}

// InitRepoConfig records the call and returns InitRepoErr.
func (m *MockConfigManager) InitRepoConfig() error {
	m.InitRepoCalled = true
	return m.InitRepoErr
}
