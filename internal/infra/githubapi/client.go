// Package githubapi implements domain.BoardQuerier on top of the GitHub
// GraphQL API (project boards) and REST API (pull requests).
package githubapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/go-github/v58/github"
	"github.com/shurcooL/githubv4"

	"github.com/scalar-labs/relnote/internal/domain"
)

// maxPageSize is the largest page GitHub's GraphQL API serves.
const maxPageSize = 100

// Client answers board queries through the GitHub API.
type Client struct {
	rest      *github.Client
	graphql   *githubv4.Client
	logger    *slog.Logger
	pulls     map[string]*github.PullRequest // cache keyed by owner/repo#number
	itemLimit int
}

// Ensure Client implements domain.BoardQuerier.
var _ domain.BoardQuerier = (*Client)(nil)

// NewClient creates a client for github.com, or for the GitHub Enterprise
// host in cfg.BaseURL.
func NewClient(ctx context.Context, cfg domain.GitHubConfig, token string, itemLimit int, logger *slog.Logger) (*Client, error) {
	httpClient, err := newHTTPClient(ctx, cfg, token)
	if err != nil {
		return nil, err
	}

	if cfg.BaseURL == "" {
		return newClient(github.NewClient(httpClient), githubv4.NewClient(httpClient), itemLimit, logger), nil
	}

	rest, err := github.NewClient(httpClient).WithEnterpriseURLs(cfg.BaseURL, cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("configure GitHub Enterprise URL: %w", err)
	}
	return newClient(rest, githubv4.NewEnterpriseClient(graphQLURL(cfg.BaseURL), httpClient), itemLimit, logger), nil
}

// NewClientWithHTTPClient creates a client talking to explicit REST and
// GraphQL endpoints. This is useful for testing.
func NewClientWithHTTPClient(httpClient *http.Client, restURL, graphqlURL string, itemLimit int, logger *slog.Logger) (*Client, error) {
	base, err := url.Parse(strings.TrimSuffix(restURL, "/") + "/")
	if err != nil {
		return nil, fmt.Errorf("parse REST URL: %w", err)
	}
	rest := github.NewClient(httpClient)
	rest.BaseURL = base
	return newClient(rest, githubv4.NewEnterpriseClient(graphqlURL, httpClient), itemLimit, logger), nil
}

func newClient(rest *github.Client, gql *githubv4.Client, itemLimit int, logger *slog.Logger) *Client {
	if itemLimit <= 0 {
		itemLimit = domain.DefaultItemLimit
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Client{
		rest:      rest,
		graphql:   gql,
		logger:    logger,
		pulls:     make(map[string]*github.PullRequest),
		itemLimit: itemLimit,
	}
}

// FindProjectID returns the number of the first ProjectV2 of owner whose
// title contains both titlePrefix and version.
func (c *Client) FindProjectID(ctx context.Context, owner, titlePrefix, version string) (string, error) {
	vars := map[string]any{
		"login": githubv4.String(owner),
		"query": githubv4.String(titlePrefix),
	}

	var orgQ orgProjectsQuery
	var userQ userProjectsQuery
	isOrg, err := c.queryOwner(ctx, &orgQ, &userQ, vars)
	if err != nil {
		return "", fmt.Errorf("list projects of %s: %w", owner, err)
	}

	nodes := userQ.User.ProjectsV2.Nodes
	if isOrg {
		nodes = orgQ.Organization.ProjectsV2.Nodes
	}
	for _, p := range nodes {
		if domain.MatchesProject(string(p.Title), titlePrefix, version) {
			c.logger.Debug("found project", "number", int(p.Number), "title", string(p.Title))
			return strconv.Itoa(int(p.Number)), nil
		}
	}
	return "", fmt.Errorf("%s %s (owner %s): %w", titlePrefix, version, owner, domain.ErrProjectNotFound)
}

// ListItemPullRequests pages through the board items and returns the pull
// requests that belong to repository, up to the configured item limit.
func (c *Client) ListItemPullRequests(ctx context.Context, projectID, owner, repository string) ([]string, error) {
	number, err := strconv.Atoi(projectID)
	if err != nil {
		return nil, fmt.Errorf("project id %q is not a project number: %w", projectID, err)
	}

	var numbers []string
	var cursor *githubv4.String
	seen := 0
	for seen < c.itemLimit {
		vars := map[string]any{
			"login":  githubv4.String(owner),
			"number": githubv4.Int(number),
			"first":  githubv4.Int(min(maxPageSize, c.itemLimit-seen)),
			"cursor": cursor,
		}

		var orgQ orgItemsQuery
		var userQ userItemsQuery
		isOrg, err := c.queryOwner(ctx, &orgQ, &userQ, vars)
		if err != nil {
			return nil, fmt.Errorf("list items of project %s: %w", projectID, err)
		}
		page := userQ.User.ProjectV2.Items
		if isOrg {
			page = orgQ.Organization.ProjectV2.Items
		}

		for _, node := range page.Nodes {
			seen++
			pr := node.Content.PullRequest
			if pr.Number == 0 {
				continue
			}
			if !domain.MatchesRepository(string(pr.Repository.NameWithOwner), owner, repository) {
				continue
			}
			numbers = append(numbers, strconv.Itoa(int(pr.Number)))
		}

		if !page.PageInfo.HasNextPage || len(page.Nodes) == 0 {
			break
		}
		next := page.PageInfo.EndCursor
		cursor = &next
	}
	return numbers, nil
}

// queryOwner runs orgQ and falls back to userQ when owner is not an
// organization. It reports which of the two succeeded.
func (c *Client) queryOwner(ctx context.Context, orgQ, userQ any, vars map[string]any) (bool, error) {
	orgErr := c.graphql.Query(ctx, orgQ, vars)
	if orgErr == nil {
		return true, nil
	}
	c.logger.Debug("organization lookup failed, trying user", "error", orgErr)
	if userErr := c.graphql.Query(ctx, userQ, vars); userErr != nil {
		return false, errors.Join(orgErr, userErr)
	}
	return false, nil
}

// GetState returns "MERGED" for merged pull requests and the upper-cased
// REST state ("OPEN", "CLOSED") otherwise.
func (c *Client) GetState(ctx context.Context, prNumber, owner, repository string) (string, error) {
	pr, err := c.pullRequest(ctx, prNumber, owner, repository)
	if err != nil {
		return "", err
	}
	if pr.GetMerged() || pr.MergedAt != nil {
		return strings.ToUpper(domain.MergedState), nil
	}
	if pr.GetState() == "" {
		return "", fmt.Errorf("pull request #%s: %w", prNumber, domain.ErrPullRequestStateNotFound)
	}
	return strings.ToUpper(pr.GetState()), nil
}

// GetLabels returns the label names of the pull request.
func (c *Client) GetLabels(ctx context.Context, prNumber, owner, repository string) ([]string, error) {
	pr, err := c.pullRequest(ctx, prNumber, owner, repository)
	if err != nil {
		return nil, err
	}
	labels := make([]string, 0, len(pr.Labels))
	for _, l := range pr.Labels {
		labels = append(labels, l.GetName())
	}
	return labels, nil
}

// GetBody returns the pull request description split into lines.
func (c *Client) GetBody(ctx context.Context, prNumber, owner, repository string) ([]string, error) {
	pr, err := c.pullRequest(ctx, prNumber, owner, repository)
	if err != nil {
		return nil, err
	}
	return domain.SplitLines(pr.GetBody()), nil
}

func (c *Client) pullRequest(ctx context.Context, prNumber, owner, repository string) (*github.PullRequest, error) {
	key := fmt.Sprintf("%s/%s#%s", owner, repository, prNumber)
	if pr, ok := c.pulls[key]; ok {
		return pr, nil
	}

	number, err := strconv.Atoi(prNumber)
	if err != nil {
		return nil, fmt.Errorf("pull request number %q: %w", prNumber, err)
	}

	pr, resp, err := c.rest.PullRequests.Get(ctx, owner, repository, number)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("%s: %w", key, domain.ErrPullRequestNotFound)
		}
		return nil, fmt.Errorf("get pull request %s: %w", key, err)
	}
	c.pulls[key] = pr
	return pr, nil
}
