package cli

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scalar-labs/relnote/internal/app"
	"github.com/scalar-labs/relnote/internal/domain"
	"github.com/scalar-labs/relnote/internal/infra/fixture"
	"github.com/scalar-labs/relnote/internal/testutil"
	"github.com/scalar-labs/relnote/internal/usecase"
)

const boardYAML = `
projects:
  - owner: scalar-labs
    id: "7"
    title: ScalarDB 3.13.0
    items:
      - repository: scalardb
        number: "10"
      - repository: scalardb
        number: "11"
      - repository: scalardb
        number: "12"
pull_requests:
  - owner: scalar-labs
    repository: scalardb
    number: "10"
    state: MERGED
    labels: [bugfix]
    body: |
      ## Release notes
      - Fixed a crash.
  - owner: scalar-labs
    repository: scalardb
    number: "11"
    state: MERGED
    labels: [bugfix]
    body: |
      ## Release notes
      - Same as #10
  - owner: scalar-labs
    repository: scalardb
    number: "12"
    state: MERGED
    labels: [Enhancement]
    body: |
      ## Release notes
      Added the foo API.
`

const wantMarkdown = `## Summary

## Enhancements
- Added the foo API. (#12)

## Bug fixes
- Fixed a crash. (#10 #11)
`

func writeBoard(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "board.yaml")
	require.NoError(t, os.WriteFile(path, []byte(boardYAML), 0o600))
	return path
}

func newTestContainer(appConfig *domain.Config) *app.Container {
	return app.NewWithDeps(app.Config{}, appConfig, testutil.NewMockCommandExecutor(),
		testutil.NewMockConfigLoader(), testutil.NewMockConfigManager(), io.Discard)
}

func executeRoot(t *testing.T, c *app.Container, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCommand(c, "test")
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCommand_GeneratesReleaseNote(t *testing.T) {
	board := writeBoard(t)
	c := newTestContainer(domain.NewDefaultConfig())

	stdout, _, err := executeRoot(t, c,
		"scalar-labs", "ScalarDB", "3.13.0", "scalardb", "--backend", "fixture", "--fixture", board)

	require.NoError(t, err)
	assert.Equal(t, wantMarkdown, stdout)
}

func TestRootCommand_EmptyArgumentsUseConfigDefaults(t *testing.T) {
	cfg := domain.NewDefaultConfig()
	cfg.Source.Backend = domain.BackendFixture
	cfg.Source.Fixture = writeBoard(t)
	c := newTestContainer(cfg)

	stdout, _, err := executeRoot(t, c, "", "", "3.13.0", "scalardb")

	require.NoError(t, err)
	assert.Equal(t, wantMarkdown, stdout)
}

func TestRootCommand_WrongArgumentCount(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no arguments", nil},
		{"three arguments", []string{"scalar-labs", "ScalarDB", "3.13.0"}},
		{"five arguments", []string{"scalar-labs", "ScalarDB", "3.13.0", "scalardb", "extra"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := executeRoot(t, newTestContainer(domain.NewDefaultConfig()), tt.args...)

			require.ErrorIs(t, err, domain.ErrInvalidArguments)
			assert.Contains(t, stdout, "Usage:")
			assert.NotContains(t, stdout, "## Summary")
		})
	}
}

func TestRootCommand_ProjectNotFoundWritesNothing(t *testing.T) {
	board := writeBoard(t)

	stdout, _, err := executeRoot(t, newTestContainer(domain.NewDefaultConfig()),
		"scalar-labs", "ScalarDB", "9.9.9", "scalardb", "--backend", "fixture", "--fixture", board)

	require.ErrorIs(t, err, domain.ErrProjectNotFound)
	assert.Empty(t, stdout)
}

func TestRootCommand_Record(t *testing.T) {
	board := writeBoard(t)
	recording := filepath.Join(t.TempDir(), "recorded.yaml")
	c := newTestContainer(domain.NewDefaultConfig())

	_, _, err := executeRoot(t, c,
		"scalar-labs", "ScalarDB", "3.13.0", "scalardb",
		"--backend", "fixture", "--fixture", board, "--record", recording)
	require.NoError(t, err)

	// The recording replays to the same output.
	replayed, err := fixture.Load(recording)
	require.NoError(t, err)
	out, err := c.CreateReleaseNoteUseCase(replayed).Execute(t.Context(), newReleaseNoteInput())
	require.NoError(t, err)
	assert.Equal(t, wantMarkdown, out.Markdown)
}

func TestRootCommand_Preview(t *testing.T) {
	board := writeBoard(t)

	stdout, _, err := executeRoot(t, newTestContainer(domain.NewDefaultConfig()),
		"scalar-labs", "ScalarDB", "3.13.0", "scalardb", "--backend", "fixture", "--fixture", board, "--preview")

	require.NoError(t, err)
	assert.Contains(t, stdout, "Summary")
	assert.Contains(t, stdout, "Fixed a crash. (#10 #11)")
}

func TestRootCommand_PrintsConfigWarnings(t *testing.T) {
	cfg := domain.NewDefaultConfig()
	cfg.Warnings = []string{"unknown section: tasks"}

	_, stderr, err := executeRoot(t, newTestContainer(cfg), "config", "template")

	require.NoError(t, err)
	assert.Contains(t, stderr, "Warning:")
	assert.Contains(t, stderr, "unknown section: tasks")
}

func TestRootCommand_DebugFlag(t *testing.T) {
	c := newTestContainer(domain.NewDefaultConfig())

	_, _, err := executeRoot(t, c, "config", "template", "--debug")

	require.NoError(t, err)
	assert.True(t, c.Logger.Enabled(t.Context(), slog.LevelDebug))
}

func TestRootCommand_WithoutContainer(t *testing.T) {
	_, _, err := executeRoot(t, nil, "scalar-labs", "ScalarDB", "3.13.0", "scalardb")

	require.ErrorIs(t, err, errNoContainer)
}

func newReleaseNoteInput() usecase.CreateReleaseNoteInput {
	return usecase.CreateReleaseNoteInput{
		Owner:         "scalar-labs",
		ProjectPrefix: "ScalarDB",
		Version:       "3.13.0",
		Repository:    "scalardb",
	}
}
