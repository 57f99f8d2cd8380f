// Package cli provides the command-line interface for relnote.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scalar-labs/relnote/internal/app"
	"github.com/scalar-labs/relnote/internal/domain"
	"github.com/scalar-labs/relnote/internal/usecase"
)

// errNoContainer is returned by commands that need configuration when the
// container could not be built.
var errNoContainer = errors.New("relnote is not initialized")

// rootOptions holds the flags of the root command.
type rootOptions struct {
	backend string
	fixture string
	record  string
	preview bool
	debug   bool
}

// NewRootCommand creates the root command for relnote.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	var opts rootOptions

	root := &cobra.Command{
		Use:   "relnote <owner> <project-prefix> <version> <repository>",
		Short: "Generate release notes from a project board",
		Long: `relnote collects the merged pull requests on the GitHub project board
titled "<project-prefix> <version>", extracts the "Release notes" section of
each pull request description and prints a categorized markdown summary.

An empty owner or project prefix ("") falls back to the [board] defaults
of the configuration file.

Each pull request description may contain:

  ## Release notes
  - A one-line note for users.      (the last such line wins)
  - Same as #1234                   (merge into the note of #1234)
  - N/A                             (no note for this pull request)`,
		Example: `  relnote scalar-labs ScalarDB 3.13.0 scalardb
  relnote "" "" 3.13.0 scalardb --preview
  relnote scalar-labs ScalarDB 3.13.0 scalardb --record board.yaml
  relnote scalar-labs ScalarDB 3.13.0 scalardb --backend fixture --fixture board.yaml`,
		Version: version,
		// Positional arguments are counted in RunE so usage is printed on mismatch
		Args: cobra.ArbitraryArgs,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if c == nil {
				return nil
			}
			if opts.debug {
				c.SetDebug()
			}
			for _, w := range c.AppConfig.Warnings {
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), formatWarning(w))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 4 {
				_ = cmd.Usage()
				return fmt.Errorf("expected 4 arguments, got %d: %w", len(args), domain.ErrInvalidArguments)
			}
			if c == nil {
				return errNoContainer
			}
			return runReleaseNote(cmd, c, opts, usecase.CreateReleaseNoteInput{
				Owner:         args[0],
				ProjectPrefix: args[1],
				Version:       args[2],
				Repository:    args[3],
			})
		},
	}

	root.Flags().StringVar(&opts.backend, "backend", "", `Board backend: "gh", "api" or "fixture" (default from config)`)
	root.Flags().StringVar(&opts.fixture, "fixture", "", "Fixture file for the fixture backend")
	root.Flags().StringVar(&opts.record, "record", "", "Write every board answer to this fixture file")
	root.Flags().BoolVar(&opts.preview, "preview", false, "Render the release note for the terminal")
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")

	root.AddCommand(newConfigCommand(c))

	return root
}

// runReleaseNote generates the release note and writes it to stdout.
// Nothing is written when any step fails.
func runReleaseNote(cmd *cobra.Command, c *app.Container, opts rootOptions, in usecase.CreateReleaseNoteInput) error {
	ctx := cmd.Context()

	board, err := c.BoardQuerier(ctx, app.SourceOptions{
		Backend: opts.backend,
		Fixture: opts.fixture,
	})
	if err != nil {
		return err
	}

	var recorder domain.BoardRecorder
	if opts.record != "" {
		recorder = c.RecordingBoard(board)
		board = recorder
	}

	out, err := c.CreateReleaseNoteUseCase(board).Execute(ctx, in)
	if err != nil {
		return err
	}
	c.Logger.Debug("release note created",
		"project", out.ProjectID, "scanned", out.Scanned, "entries", out.Groups.Len())

	if recorder != nil {
		if err := recorder.Save(opts.record); err != nil {
			return fmt.Errorf("save recording: %w", err)
		}
	}

	markdown := out.Markdown
	if opts.preview {
		if markdown, err = renderPreview(markdown); err != nil {
			return err
		}
	}

	_, _ = fmt.Fprint(cmd.OutOrStdout(), markdown)
	return nil
}
