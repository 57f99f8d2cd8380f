package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Masterminds/semver/v3"

	"github.com/scalar-labs/relnote/internal/domain"
)

// CreateReleaseNoteInput contains the input for the CreateReleaseNote use case.
// Empty Owner and ProjectPrefix fall back to the configured board defaults.
type CreateReleaseNoteInput struct {
	Owner         string
	ProjectPrefix string
	Version       string
	Repository    string
}

// CreateReleaseNoteOutput contains the output of the CreateReleaseNote use case.
type CreateReleaseNoteOutput struct {
	Groups     domain.CategoryGroups
	Markdown   string
	ProjectID  string
	Unresolved []domain.UnresolvedReference
	Scanned    int // Pull requests inspected
}

// CreateReleaseNote builds the release note of one project board.
type CreateReleaseNote struct {
	board    domain.BoardQuerier
	logger   *slog.Logger
	defaults domain.BoardConfig
}

// NewCreateReleaseNote creates a new CreateReleaseNote use case.
func NewCreateReleaseNote(board domain.BoardQuerier, defaults domain.BoardConfig, logger *slog.Logger) *CreateReleaseNote {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &CreateReleaseNote{
		board:    board,
		logger:   logger,
		defaults: defaults,
	}
}

// Execute scans every pull request on the board, resolves same-as
// references and renders the markdown summary.
// Any query failure aborts the run without output.
func (uc *CreateReleaseNote) Execute(ctx context.Context, in CreateReleaseNoteInput) (*CreateReleaseNoteOutput, error) {
	in = uc.withDefaults(in)
	if in.Owner == "" || in.ProjectPrefix == "" || in.Version == "" || in.Repository == "" {
		return nil, fmt.Errorf("owner, project prefix, version and repository are required: %w", domain.ErrInvalidArguments)
	}
	if _, err := semver.NewVersion(in.Version); err != nil {
		uc.logger.Warn("version is not a semantic version", "version", in.Version, "error", err)
	}

	projectID, err := uc.board.FindProjectID(ctx, in.Owner, in.ProjectPrefix, in.Version)
	if err != nil {
		return nil, fmt.Errorf("find project: %w", err)
	}
	uc.logger.Debug("using project", "id", projectID)

	prNumbers, err := uc.board.ListItemPullRequests(ctx, projectID, in.Owner, in.Repository)
	if err != nil {
		return nil, fmt.Errorf("list project items: %w", err)
	}

	extract := NewExtractEntry(uc.board, uc.logger)
	agg := domain.NewAggregator()
	for _, prNumber := range prNumbers {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		out, err := extract.Execute(ctx, ExtractEntryInput{
			PRNumber:   prNumber,
			Owner:      in.Owner,
			Repository: in.Repository,
		})
		if err != nil {
			return nil, err
		}
		if out.Entry == nil {
			continue
		}
		for _, ref := range out.SameAs {
			uc.logger.Debug("recorded same-as reference", "pr", prNumber, "same_as", ref)
			agg.AddReference(out.Entry, ref)
		}
		agg.Add(out.Entry)
	}

	unresolved := agg.Resolve()
	for _, u := range unresolved {
		owners := make([]string, 0, len(u.Entries))
		for _, e := range u.Entries {
			owners = append(owners, e.Owner())
		}
		uc.logger.Warn("dropping same-as reference without a target entry",
			"referenced_pr", u.ReferencedPR, "from", owners)
	}

	groups := agg.Groups()
	return &CreateReleaseNoteOutput{
		Groups:     groups,
		Markdown:   domain.Render(groups),
		ProjectID:  projectID,
		Unresolved: unresolved,
		Scanned:    len(prNumbers),
	}, nil
}

func (uc *CreateReleaseNote) withDefaults(in CreateReleaseNoteInput) CreateReleaseNoteInput {
	if in.Owner == "" {
		in.Owner = uc.defaults.Owner
	}
	if in.ProjectPrefix == "" {
		in.ProjectPrefix = uc.defaults.ProjectPrefix
	}
	return in
}
