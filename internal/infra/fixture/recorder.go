package fixture

import (
	"context"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/scalar-labs/relnote/internal/domain"
)

// Recorder forwards queries to another BoardQuerier and keeps every answer
// so the run can be replayed from a fixture file.
type Recorder struct {
	next domain.BoardQuerier
	file File
}

// Ensure Recorder implements domain.BoardRecorder.
var _ domain.BoardRecorder = (*Recorder)(nil)

// NewRecorder creates a Recorder wrapping next.
func NewRecorder(next domain.BoardQuerier) *Recorder {
	return &Recorder{next: next}
}

// File returns the fixture document recorded so far.
func (r *Recorder) File() File {
	return r.file
}

// FindProjectID forwards the query and records the project.
func (r *Recorder) FindProjectID(ctx context.Context, owner, titlePrefix, version string) (string, error) {
	id, err := r.next.FindProjectID(ctx, owner, titlePrefix, version)
	if err != nil {
		return "", err
	}
	r.project(owner, id).Title = strings.TrimSpace(titlePrefix + " " + version)
	return id, nil
}

// ListItemPullRequests forwards the query and records the items.
func (r *Recorder) ListItemPullRequests(ctx context.Context, projectID, owner, repository string) ([]string, error) {
	numbers, err := r.next.ListItemPullRequests(ctx, projectID, owner, repository)
	if err != nil {
		return nil, err
	}
	p := r.project(owner, projectID)
	for _, n := range numbers {
		p.Items = append(p.Items, Item{Repository: repository, Number: n})
	}
	return numbers, nil
}

// GetState forwards the query and records the state.
func (r *Recorder) GetState(ctx context.Context, prNumber, owner, repository string) (string, error) {
	state, err := r.next.GetState(ctx, prNumber, owner, repository)
	if err != nil {
		return "", err
	}
	r.pullRequest(prNumber, owner, repository).State = state
	return state, nil
}

// GetLabels forwards the query and records the labels.
func (r *Recorder) GetLabels(ctx context.Context, prNumber, owner, repository string) ([]string, error) {
	labels, err := r.next.GetLabels(ctx, prNumber, owner, repository)
	if err != nil {
		return nil, err
	}
	r.pullRequest(prNumber, owner, repository).Labels = labels
	return labels, nil
}

// GetBody forwards the query and records the body.
func (r *Recorder) GetBody(ctx context.Context, prNumber, owner, repository string) ([]string, error) {
	body, err := r.next.GetBody(ctx, prNumber, owner, repository)
	if err != nil {
		return nil, err
	}
	r.pullRequest(prNumber, owner, repository).Body = strings.Join(body, "\n")
	return body, nil
}

// Save writes the recorded fixture to path.
func (r *Recorder) Save(path string) error {
	data, err := yaml.Marshal(r.file)
	if err != nil {
		return fmt.Errorf("encode fixture: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write fixture: %w", err)
	}
	return nil
}

func (r *Recorder) project(owner, id string) *Project {
	for i := range r.file.Projects {
		if p := &r.file.Projects[i]; p.Owner == owner && p.ID == id {
			return p
		}
	}
	r.file.Projects = append(r.file.Projects, Project{Owner: owner, ID: id})
	return &r.file.Projects[len(r.file.Projects)-1]
}

func (r *Recorder) pullRequest(prNumber, owner, repository string) *PullRequest {
	for i := range r.file.PullRequests {
		pr := &r.file.PullRequests[i]
		if pr.Number == prNumber && pr.Owner == owner && pr.Repository == repository {
			return pr
		}
	}
	r.file.PullRequests = append(r.file.PullRequests, PullRequest{
		Owner:      owner,
		Repository: repository,
		Number:     prNumber,
	})
	return &r.file.PullRequests[len(r.file.PullRequests)-1]
}
