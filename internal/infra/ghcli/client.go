// Package ghcli implements domain.BoardQuerier on top of the GitHub CLI (gh).
package ghcli

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/scalar-labs/relnote/internal/domain"
)

// projectListLimit bounds how many projects "gh project list" returns.
const projectListLimit = 100

// Client answers board queries by running gh.
type Client struct {
	exec      domain.CommandExecutor
	logger    *slog.Logger
	ghPath    string
	itemLimit int
}

// Ensure Client implements domain.BoardQuerier.
var _ domain.BoardQuerier = (*Client)(nil)

// NewClient creates a new gh-backed client.
func NewClient(exec domain.CommandExecutor, ghPath string, itemLimit int, logger *slog.Logger) *Client {
	if ghPath == "" {
		ghPath = domain.DefaultGhPath
	}
	if itemLimit <= 0 {
		itemLimit = domain.DefaultItemLimit
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Client{
		exec:      exec,
		ghPath:    ghPath,
		itemLimit: itemLimit,
		logger:    logger,
	}
}

type projectList struct {
	Projects []struct {
		Title  string `json:"title"`
		Number int    `json:"number"`
		Closed bool   `json:"closed"`
	} `json:"projects"`
}

// FindProjectID returns the number of the first project whose title
// contains both titlePrefix and version.
func (c *Client) FindProjectID(ctx context.Context, owner, titlePrefix, version string) (string, error) {
	out, err := c.run(ctx, "project", "list",
		"--owner", owner,
		"--limit", strconv.Itoa(projectListLimit),
		"--format", "json",
	)
	if err != nil {
		return "", fmt.Errorf("list projects of %s: %w", owner, err)
	}

	var list projectList
	if err := json.Unmarshal(out, &list); err != nil {
		return "", fmt.Errorf("parse gh project list output: %w", err)
	}

	for _, p := range list.Projects {
		if domain.MatchesProject(p.Title, titlePrefix, version) {
			c.logger.Debug("found project", "number", p.Number, "title", p.Title)
			return strconv.Itoa(p.Number), nil
		}
	}
	return "", fmt.Errorf("%s %s (owner %s): %w", titlePrefix, version, owner, domain.ErrProjectNotFound)
}

type itemList struct {
	Items []struct {
		Content struct {
			Type       string `json:"type"`
			Repository string `json:"repository"`
			Number     int    `json:"number"`
		} `json:"content"`
	} `json:"items"`
}

// ListItemPullRequests returns the pull requests of repository on the board.
// Issues and draft issues are skipped.
func (c *Client) ListItemPullRequests(ctx context.Context, projectID, owner, repository string) ([]string, error) {
	out, err := c.run(ctx, "project", "item-list", projectID,
		"--owner", owner,
		"--limit", strconv.Itoa(c.itemLimit),
		"--format", "json",
	)
	if err != nil {
		return nil, fmt.Errorf("list items of project %s: %w", projectID, err)
	}

	var list itemList
	if err := json.Unmarshal(out, &list); err != nil {
		return nil, fmt.Errorf("parse gh project item-list output: %w", err)
	}

	var numbers []string
	for _, item := range list.Items {
		content := item.Content
		if !domain.MatchesRepository(content.Repository, owner, repository) {
			continue
		}
		if content.Type != "PullRequest" {
			c.logger.Debug("skipping board item", "type", content.Type, "number", content.Number)
			continue
		}
		numbers = append(numbers, strconv.Itoa(content.Number))
	}
	return numbers, nil
}

// GetState returns the pull request state, e.g. "MERGED".
func (c *Client) GetState(ctx context.Context, prNumber, owner, repository string) (string, error) {
	lines, err := c.viewField(ctx, prNumber, owner, repository, "state", ".state")
	if err != nil {
		return "", err
	}
	if len(lines) == 0 || strings.TrimSpace(lines[0]) == "" {
		return "", fmt.Errorf("pull request #%s: %w", prNumber, domain.ErrPullRequestStateNotFound)
	}
	return strings.TrimSpace(lines[0]), nil
}

// GetLabels returns the label names of the pull request.
func (c *Client) GetLabels(ctx context.Context, prNumber, owner, repository string) ([]string, error) {
	lines, err := c.viewField(ctx, prNumber, owner, repository, "labels", ".labels[].name")
	if err != nil {
		return nil, err
	}
	labels := make([]string, 0, len(lines))
	for _, line := range lines {
		if line != "" {
			labels = append(labels, line)
		}
	}
	return labels, nil
}

// GetBody returns the pull request description split into lines.
func (c *Client) GetBody(ctx context.Context, prNumber, owner, repository string) ([]string, error) {
	return c.viewField(ctx, prNumber, owner, repository, "body", ".body")
}

func (c *Client) viewField(ctx context.Context, prNumber, owner, repository, field, jq string) ([]string, error) {
	out, err := c.run(ctx, "pr", "view", prNumber,
		"--repo", owner+"/"+repository,
		"--json", field,
		"--jq", jq,
	)
	if err != nil {
		return nil, fmt.Errorf("view %s of pull request #%s: %w", field, prNumber, err)
	}
	return domain.SplitLines(string(out)), nil
}

func (c *Client) run(ctx context.Context, args ...string) ([]byte, error) {
	return c.exec.Execute(ctx, domain.NewCommand(c.ghPath, args, ""))
}
