// Package usecase contains the application use cases.
package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/scalar-labs/relnote/internal/domain"
)

// SkipReason explains why a pull request produced no release entry.
type SkipReason string

// Skip reasons.
const (
	SkipNone          SkipReason = ""
	SkipNotMerged     SkipReason = "not merged"
	SkipNoSection     SkipReason = "no release notes section"
	SkipNotApplicable SkipReason = "release notes marked N/A"
)

// ExtractEntryInput contains the input for the ExtractEntry use case.
type ExtractEntryInput struct {
	PRNumber   string
	Owner      string
	Repository string
}

// ExtractEntryOutput contains the output of the ExtractEntry use case.
type ExtractEntryOutput struct {
	Entry  *domain.ReleaseEntry // nil when Skip is set
	Skip   SkipReason
	SameAs []string // Pull requests the entry duplicates
}

// ExtractEntry turns one pull request into at most one release entry.
type ExtractEntry struct {
	board  domain.BoardQuerier
	logger *slog.Logger
}

// NewExtractEntry creates a new ExtractEntry use case.
func NewExtractEntry(board domain.BoardQuerier, logger *slog.Logger) *ExtractEntry {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ExtractEntry{
		board:  board,
		logger: logger,
	}
}

// Execute fetches the state, labels and body of the pull request and
// scans the body for its release-note section.
// Pull requests that are not merged are skipped before their labels or
// body are fetched.
func (uc *ExtractEntry) Execute(ctx context.Context, in ExtractEntryInput) (*ExtractEntryOutput, error) {
	state, err := uc.board.GetState(ctx, in.PRNumber, in.Owner, in.Repository)
	if err != nil {
		return nil, fmt.Errorf("get state of #%s: %w", in.PRNumber, err)
	}
	if !domain.IsMerged(state) {
		return uc.skip(in, SkipNotMerged), nil
	}

	labels, err := uc.board.GetLabels(ctx, in.PRNumber, in.Owner, in.Repository)
	if err != nil {
		return nil, fmt.Errorf("get labels of #%s: %w", in.PRNumber, err)
	}
	category := domain.CategoryFromLabels(labels)

	body, err := uc.board.GetBody(ctx, in.PRNumber, in.Owner, in.Repository)
	if err != nil {
		return nil, fmt.Errorf("get body of #%s: %w", in.PRNumber, err)
	}

	scan := domain.ScanReleaseNotes(body)
	switch {
	case !scan.Found:
		return uc.skip(in, SkipNoSection), nil
	case scan.NotApplicable:
		return uc.skip(in, SkipNotApplicable), nil
	}

	entry := domain.NewReleaseEntry(category, scan.Text, in.PRNumber)
	uc.logger.Debug("extracted release entry",
		"pr", in.PRNumber, "category", string(category), "text", scan.Text, "same_as", scan.SameAs)
	return &ExtractEntryOutput{Entry: entry, SameAs: scan.SameAs}, nil
}

func (uc *ExtractEntry) skip(in ExtractEntryInput, reason SkipReason) *ExtractEntryOutput {
	uc.logger.Debug("skipped pull request", "pr", in.PRNumber, "reason", string(reason))
	return &ExtractEntryOutput{Skip: reason}
}
