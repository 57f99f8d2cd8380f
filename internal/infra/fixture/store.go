// Package fixture implements domain.BoardQuerier on top of a YAML file.
//
// File layout:
//
//	projects:
//	  - owner: scalar-labs
//	    id: "7"
//	    title: ScalarDB 4.0.0
//	    items:
//	      - repository: scalardb
//	        number: "10"
//	pull_requests:
//	  - owner: scalar-labs
//	    repository: scalardb
//	    number: "10"
//	    state: MERGED
//	    labels: [bugfix]
//	    body: |
//	      ## Release notes
//	      - Fixed a crash.
package fixture

import (
	"context"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/scalar-labs/relnote/internal/domain"
)

// File is the on-disk fixture document.
type File struct {
	Projects     []Project     `yaml:"projects"`
	PullRequests []PullRequest `yaml:"pull_requests"`
}

// Project is a project board and its items.
type Project struct {
	Owner string `yaml:"owner"`
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
	Items []Item `yaml:"items,omitempty"`
}

// Item is a board item pointing at a pull request.
type Item struct {
	Repository string `yaml:"repository"`
	Number     string `yaml:"number"`
}

// PullRequest holds the data served for one pull request.
type PullRequest struct {
	Owner      string   `yaml:"owner"`
	Repository string   `yaml:"repository"`
	Number     string   `yaml:"number"`
	State      string   `yaml:"state"`
	Labels     []string `yaml:"labels,omitempty"`
	Body       string   `yaml:"body,omitempty"`
}

// Store serves board queries from a fixture File.
type Store struct {
	file File
}

// Ensure Store implements domain.BoardQuerier.
var _ domain.BoardQuerier = (*Store)(nil)

// New creates a Store serving file.
func New(file File) *Store {
	return &Store{file: file}
}

// Load reads a fixture file from path.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return New(file), nil
}

// FindProjectID returns the ID of the first matching project of owner.
func (s *Store) FindProjectID(_ context.Context, owner, titlePrefix, version string) (string, error) {
	for _, p := range s.file.Projects {
		if p.Owner == owner && domain.MatchesProject(p.Title, titlePrefix, version) {
			return p.ID, nil
		}
	}
	return "", fmt.Errorf("%s %s (owner %s): %w", titlePrefix, version, owner, domain.ErrProjectNotFound)
}

// ListItemPullRequests returns the items of the project that belong to repository.
func (s *Store) ListItemPullRequests(_ context.Context, projectID, owner, repository string) ([]string, error) {
	idx := slices.IndexFunc(s.file.Projects, func(p Project) bool {
		return p.Owner == owner && p.ID == projectID
	})
	if idx < 0 {
		return nil, fmt.Errorf("project %s (owner %s): %w", projectID, owner, domain.ErrProjectNotFound)
	}

	var numbers []string
	for _, item := range s.file.Projects[idx].Items {
		if domain.MatchesRepository(item.Repository, owner, repository) {
			numbers = append(numbers, item.Number)
		}
	}
	return numbers, nil
}

// GetState returns the state of the pull request.
func (s *Store) GetState(_ context.Context, prNumber, owner, repository string) (string, error) {
	pr, err := s.pullRequest(prNumber, owner, repository)
	if err != nil {
		return "", err
	}
	if pr.State == "" {
		return "", fmt.Errorf("pull request #%s: %w", prNumber, domain.ErrPullRequestStateNotFound)
	}
	return pr.State, nil
}

// GetLabels returns the labels of the pull request.
func (s *Store) GetLabels(_ context.Context, prNumber, owner, repository string) ([]string, error) {
	pr, err := s.pullRequest(prNumber, owner, repository)
	if err != nil {
		return nil, err
	}
	return pr.Labels, nil
}

// GetBody returns the body of the pull request split into lines.
func (s *Store) GetBody(_ context.Context, prNumber, owner, repository string) ([]string, error) {
	pr, err := s.pullRequest(prNumber, owner, repository)
	if err != nil {
		return nil, err
	}
	return domain.SplitLines(pr.Body), nil
}

func (s *Store) pullRequest(prNumber, owner, repository string) (*PullRequest, error) {
	for i := range s.file.PullRequests {
		pr := &s.file.PullRequests[i]
		if pr.Number == prNumber && pr.Owner == owner && pr.Repository == repository {
			return pr, nil
		}
	}
	return nil, fmt.Errorf("pull request %s/%s#%s: %w", owner, repository, prNumber, domain.ErrPullRequestNotFound)
}
