// Package gitlab provides the GitLab implementation of the tracker interface.
package gitlab

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/lerenn/milestone-docs/pkg/tracker"
)

const (
	// Name is the name identifier for the GitLab tracker.
	Name = "gitlab"
	// DefaultBaseURL is the API endpoint used when none is configured.
	DefaultBaseURL = "https://gitlab.com/api/v4"
	// perPage is the page size requested on list endpoints. Listing
	// follows X-Next-Page until the server reports no further page.
	perPage = 100
)

// HTTPClient interface for HTTP operations (allows mocking in tests).
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config holds the connection parameters of a GitLab instance.
type Config struct {
	// BaseURL is the API root, e.g. "https://gitlab.com/api/v4".
	BaseURL string
	// Token is the private token sent on every request.
	Token string
}

// GitLab represents the GitLab tracker implementation.
type GitLab struct {
	baseURL    string
	token      string
	httpClient HTTPClient
}

// New creates a new GitLab tracker instance. A nil httpClient selects
// http.DefaultClient.
func New(cfg Config, httpClient HTTPClient) *GitLab {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &GitLab{
		baseURL:    baseURL,
		token:      cfg.Token,
		httpClient: httpClient,
	}
}

// Name returns the name of the tracker.
func (g *GitLab) Name() string {
	return Name
}

// ListProjects lists the projects the token is a member of.
func (g *GitLab) ListProjects(ctx context.Context) ([]tracker.Project, error) {
	var glProjects []gitlabProject
	endpoint := fmt.Sprintf("%s/projects?membership=true&per_page=%d", g.baseURL, perPage)
	if err := appendPages(ctx, g, endpoint, &glProjects); err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	projects := make([]tracker.Project, len(glProjects))
	for i, glp := range glProjects {
		projects[i] = tracker.Project{
			ID:                glp.ID,
			PathWithNamespace: glp.PathWithNamespace,
		}
	}
	return projects, nil
}

// GetProject resolves a numeric ID or a namespace path into a project.
func (g *GitLab) GetProject(ctx context.Context, ref string) (*tracker.Project, error) {
	var glp gitlabProject
	endpoint := fmt.Sprintf("%s/projects/%s", g.baseURL, url.PathEscape(ref))
	if _, err := g.getJSON(ctx, endpoint, &glp); err != nil {
		return nil, fmt.Errorf("failed to get project %s: %w", ref, err)
	}

	return &tracker.Project{
		ID:                glp.ID,
		PathWithNamespace: glp.PathWithNamespace,
	}, nil
}

// ListMilestones lists all milestones of a project.
func (g *GitLab) ListMilestones(ctx context.Context, project *tracker.Project) ([]tracker.Milestone, error) {
	var glMilestones []gitlabMilestone
	endpoint := fmt.Sprintf("%s/projects/%d/milestones?per_page=%d", g.baseURL, project.ID, perPage)
	if err := appendPages(ctx, g, endpoint, &glMilestones); err != nil {
		return nil, fmt.Errorf("failed to list milestones: %w", err)
	}

	milestones := make([]tracker.Milestone, len(glMilestones))
	for i, glm := range glMilestones {
		milestones[i] = tracker.Milestone{
			ID:          glm.ID,
			Title:       glm.Title,
			Description: glm.Description,
			State:       glm.State,
			StartDate:   glm.StartDate,
			DueDate:     glm.DueDate,
		}
	}
	return milestones, nil
}

// ListIssues lists the issues assigned to a milestone, in the order the
// server returns them.
func (g *GitLab) ListIssues(ctx context.Context, project *tracker.Project, milestoneTitle string) ([]tracker.Issue, error) {
	var glIssues []gitlabIssue
	endpoint := fmt.Sprintf("%s/projects/%d/issues?milestone=%s&per_page=%d",
		g.baseURL, project.ID, url.QueryEscape(milestoneTitle), perPage)
	if err := appendPages(ctx, g, endpoint, &glIssues); err != nil {
		return nil, fmt.Errorf("failed to list issues: %w", err)
	}

	issues := make([]tracker.Issue, len(glIssues))
	for i, gli := range glIssues {
		issues[i] = convertIssue(gli)
	}
	return issues, nil
}

// GetIssue fetches the full detail of one issue.
func (g *GitLab) GetIssue(ctx context.Context, project *tracker.Project, iid int) (*tracker.Issue, error) {
	var gli gitlabIssue
	endpoint := fmt.Sprintf("%s/projects/%d/issues/%d", g.baseURL, project.ID, iid)
	if _, err := g.getJSON(ctx, endpoint, &gli); err != nil {
		return nil, fmt.Errorf("failed to get issue #%d: %w", iid, err)
	}

	issue := convertIssue(gli)
	return &issue, nil
}

// ListComments lists the notes of an issue, excluding nothing: filtering
// of system notes happens at rendering time.
func (g *GitLab) ListComments(ctx context.Context, project *tracker.Project, iid int) ([]tracker.Comment, error) {
	var glNotes []gitlabNote
	endpoint := fmt.Sprintf("%s/projects/%d/issues/%d/notes?per_page=%d", g.baseURL, project.ID, iid, perPage)
	if err := appendPages(ctx, g, endpoint, &glNotes); err != nil {
		return nil, fmt.Errorf("failed to list comments of issue #%d: %w", iid, err)
	}

	comments := make([]tracker.Comment, len(glNotes))
	for i, gln := range glNotes {
		comments[i] = tracker.Comment{
			Author:    tracker.User{Name: gln.Author.Name},
			Body:      gln.Body,
			CreatedAt: gln.CreatedAt,
			System:    gln.System,
		}
	}
	return comments, nil
}

// FetchAsset opens a stream to an uploaded attachment of the project.
func (g *GitLab) FetchAsset(ctx context.Context, project *tracker.Project, secret, filename string) (io.ReadCloser, error) {
	endpoint := fmt.Sprintf("%s/projects/%d/uploads/%s/%s", g.baseURL, project.ID, secret, filename)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("PRIVATE-TOKEN", g.token)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", tracker.ErrAssetUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: %s returned status %d", tracker.ErrAssetUnavailable, filename, resp.StatusCode)
	}
	return resp.Body, nil
}

// appendPages fetches endpoint page by page, following the X-Next-Page
// header until exhausted.
func appendPages[T any](ctx context.Context, g *GitLab, endpoint string, dst *[]T) error {
	page := "1"
	for page != "" {
		var batch []T
		next, err := g.getJSON(ctx, endpoint+"&page="+page, &batch)
		if err != nil {
			return err
		}
		*dst = append(*dst, batch...)
		page = next
	}
	return nil
}

// getJSON performs an authenticated GET and decodes the JSON response
// into result. It returns the value of the X-Next-Page header, empty when
// there is no further page.
func (g *GitLab) getJSON(ctx context.Context, endpoint string, result interface{}) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("PRIVATE-TOKEN", g.token)
	req.Header.Set("Accept", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", g.statusError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	return resp.Header.Get("X-Next-Page"), nil
}

// statusError maps a non-OK response to a tracker error.
func (g *GitLab) statusError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	switch resp.StatusCode {
	case http.StatusNotFound:
		return fmt.Errorf("%w: API returned status 404", tracker.ErrNotFound)
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: check GITLAB_TOKEN", tracker.ErrUnauthorized)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: API returned status 429", tracker.ErrRateLimited)
	default:
		return fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}
}

// convertIssue converts a GitLab issue to the domain model.
func convertIssue(gli gitlabIssue) tracker.Issue {
	issue := tracker.Issue{
		IID:         gli.IID,
		Title:       gli.Title,
		Description: gli.Description,
		State:       gli.State,
		Author:      tracker.User{Name: gli.Author.Name},
		Labels:      gli.Labels,
		CreatedAt:   gli.CreatedAt,
		UpdatedAt:   gli.UpdatedAt,
	}
	if gli.Assignee != nil {
		issue.Assignee = &tracker.User{Name: gli.Assignee.Name}
	}
	return issue
}

// GitLab API response types.
type gitlabProject struct {
	ID                int    `json:"id"`
	PathWithNamespace string `json:"path_with_namespace"`
}

type gitlabMilestone struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	State       string `json:"state"`
	StartDate   string `json:"start_date"`
	DueDate     string `json:"due_date"`
}

type gitlabIssue struct {
	IID         int         `json:"iid"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	State       string      `json:"state"`
	Author      gitlabUser  `json:"author"`
	Assignee    *gitlabUser `json:"assignee"`
	Labels      []string    `json:"labels"`
	CreatedAt   string      `json:"created_at"`
	UpdatedAt   string      `json:"updated_at"`
}

type gitlabUser struct {
	Name string `json:"name"`
}

type gitlabNote struct {
	Author    gitlabUser `json:"author"`
	Body      string     `json:"body"`
	CreatedAt string     `json:"created_at"`
	System    bool       `json:"system"`
}
