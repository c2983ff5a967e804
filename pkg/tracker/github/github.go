// Package github provides the GitHub implementation of the tracker interface.
package github

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/go-github/v62/github"
	"github.com/lerenn/milestone-docs/pkg/tracker"
)

const (
	// Name is the name identifier for the GitHub tracker.
	Name = "github"
	// perPage is the page size requested on list endpoints. Listing
	// follows resp.NextPage until exhausted.
	perPage = 100
)

// ErrInvalidProjectRef is returned when a project reference is not in the
// "owner/repository" format GitHub requires.
var ErrInvalidProjectRef = errors.New("invalid project reference, expected owner/repository")

// GitHub represents the GitHub tracker implementation.
type GitHub struct {
	client *github.Client
}

// New creates a new GitHub tracker instance. An empty token selects an
// unauthenticated client.
func New(token string) *GitHub {
	var client *github.Client
	if token != "" {
		client = github.NewTokenClient(context.Background(), token)
	} else {
		client = github.NewClient(nil)
	}
	return &GitHub{client: client}
}

// Name returns the name of the tracker.
func (g *GitHub) Name() string {
	return Name
}

// ListProjects lists the repositories of the authenticated user.
func (g *GitHub) ListProjects(ctx context.Context) ([]tracker.Project, error) {
	opts := &github.RepositoryListByAuthenticatedUserOptions{
		ListOptions: github.ListOptions{PerPage: perPage},
	}

	var projects []tracker.Project
	for {
		repos, resp, err := g.client.Repositories.ListByAuthenticatedUser(ctx, opts)
		if err != nil {
			return nil, g.handleError(err, resp, "failed to list repositories")
		}
		for _, repo := range repos {
			projects = append(projects, tracker.Project{
				ID:                int(repo.GetID()),
				PathWithNamespace: repo.GetFullName(),
			})
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return projects, nil
}

// GetProject resolves an "owner/repository" reference into a project.
func (g *GitHub) GetProject(ctx context.Context, ref string) (*tracker.Project, error) {
	owner, name, err := splitRef(ref)
	if err != nil {
		return nil, err
	}

	repo, resp, err := g.client.Repositories.Get(ctx, owner, name)
	if err != nil {
		return nil, g.handleError(err, resp, fmt.Sprintf("failed to get repository %s", ref))
	}

	return &tracker.Project{
		ID:                int(repo.GetID()),
		PathWithNamespace: repo.GetFullName(),
	}, nil
}

// ListMilestones lists all milestones of a repository.
func (g *GitHub) ListMilestones(ctx context.Context, project *tracker.Project) ([]tracker.Milestone, error) {
	owner, name, err := splitRef(project.PathWithNamespace)
	if err != nil {
		return nil, err
	}

	opts := &github.MilestoneListOptions{
		State:       "all",
		ListOptions: github.ListOptions{PerPage: perPage},
	}

	var milestones []tracker.Milestone
	for {
		ghMilestones, resp, err := g.client.Issues.ListMilestones(ctx, owner, name, opts)
		if err != nil {
			return nil, g.handleError(err, resp, "failed to list milestones")
		}
		for _, ghm := range ghMilestones {
			milestones = append(milestones, convertMilestone(ghm))
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return milestones, nil
}

// ListIssues lists the issues grouped under a milestone title. GitHub
// filters by milestone number, so the title is resolved first.
func (g *GitHub) ListIssues(ctx context.Context, project *tracker.Project, milestoneTitle string) ([]tracker.Issue, error) {
	owner, name, err := splitRef(project.PathWithNamespace)
	if err != nil {
		return nil, err
	}

	number, err := g.findMilestoneNumber(ctx, owner, name, milestoneTitle)
	if err != nil {
		return nil, err
	}

	opts := &github.IssueListByRepoOptions{
		Milestone:   strconv.Itoa(number),
		State:       "all",
		ListOptions: github.ListOptions{PerPage: perPage},
	}

	var issues []tracker.Issue
	for {
		ghIssues, resp, err := g.client.Issues.ListByRepo(ctx, owner, name, opts)
		if err != nil {
			return nil, g.handleError(err, resp, "failed to list issues")
		}
		for _, ghi := range ghIssues {
			// Pull requests share the issue endpoint and are not
			// part of the documentation tree.
			if ghi.IsPullRequest() {
				continue
			}
			issues = append(issues, convertIssue(ghi))
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return issues, nil
}

// GetIssue fetches the full detail of one issue.
func (g *GitHub) GetIssue(ctx context.Context, project *tracker.Project, iid int) (*tracker.Issue, error) {
	owner, name, err := splitRef(project.PathWithNamespace)
	if err != nil {
		return nil, err
	}

	ghi, resp, err := g.client.Issues.Get(ctx, owner, name, iid)
	if err != nil {
		return nil, g.handleError(err, resp, fmt.Sprintf("failed to get issue #%d", iid))
	}

	issue := convertIssue(ghi)
	return &issue, nil
}

// ListComments lists the comments of an issue, oldest first.
func (g *GitHub) ListComments(ctx context.Context, project *tracker.Project, iid int) ([]tracker.Comment, error) {
	owner, name, err := splitRef(project.PathWithNamespace)
	if err != nil {
		return nil, err
	}

	opts := &github.IssueListCommentsOptions{
		ListOptions: github.ListOptions{PerPage: perPage},
	}

	var comments []tracker.Comment
	for {
		ghComments, resp, err := g.client.Issues.ListComments(ctx, owner, name, iid, opts)
		if err != nil {
			return nil, g.handleError(err, resp, fmt.Sprintf("failed to list comments of issue #%d", iid))
		}
		for _, ghc := range ghComments {
			comments = append(comments, tracker.Comment{
				Author:    tracker.User{Name: userName(ghc.GetUser())},
				Body:      ghc.GetBody(),
				CreatedAt: timestamp(ghc.CreatedAt),
			})
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return comments, nil
}

// FetchAsset is not supported on GitHub: issue attachments are absolute
// URLs outside the upload-reference scheme, so the localizer never finds
// a reference to fetch here.
func (g *GitHub) FetchAsset(_ context.Context, _ *tracker.Project, _, filename string) (io.ReadCloser, error) {
	return nil, fmt.Errorf("%w: %s", tracker.ErrAssetUnavailable, filename)
}

// findMilestoneNumber resolves a milestone title into its number.
func (g *GitHub) findMilestoneNumber(ctx context.Context, owner, name, title string) (int, error) {
	opts := &github.MilestoneListOptions{
		State:       "all",
		ListOptions: github.ListOptions{PerPage: perPage},
	}

	for {
		ghMilestones, resp, err := g.client.Issues.ListMilestones(ctx, owner, name, opts)
		if err != nil {
			return 0, g.handleError(err, resp, "failed to list milestones")
		}
		for _, ghm := range ghMilestones {
			if ghm.GetTitle() == title {
				return ghm.GetNumber(), nil
			}
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return 0, fmt.Errorf("%w: milestone %q", tracker.ErrNotFound, title)
}

// handleError maps go-github errors to tracker errors using the response
// status when available.
func (g *GitHub) handleError(err error, resp *github.Response, msg string) error {
	if resp != nil {
		switch resp.StatusCode {
		case http.StatusNotFound:
			return fmt.Errorf("%w: %s", tracker.ErrNotFound, msg)
		case http.StatusUnauthorized:
			return fmt.Errorf("%w: check GITHUB_TOKEN", tracker.ErrUnauthorized)
		case http.StatusForbidden:
			if resp.Header.Get("X-RateLimit-Remaining") == "0" {
				return fmt.Errorf("%w: GitHub API rate limit exceeded", tracker.ErrRateLimited)
			}
			return fmt.Errorf("%w: access forbidden", tracker.ErrUnauthorized)
		}
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// splitRef splits an "owner/repository" reference.
func splitRef(ref string) (string, string, error) {
	parts := strings.SplitN(ref, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidProjectRef, ref)
	}
	return parts[0], parts[1], nil
}

// convertMilestone converts a GitHub milestone to the domain model.
// GitHub milestones have no start date.
func convertMilestone(ghm *github.Milestone) tracker.Milestone {
	return tracker.Milestone{
		ID:          ghm.GetNumber(),
		Title:       ghm.GetTitle(),
		Description: ghm.GetDescription(),
		State:       ghm.GetState(),
		DueDate:     timestamp(ghm.DueOn),
	}
}

// convertIssue converts a GitHub issue to the domain model.
func convertIssue(ghi *github.Issue) tracker.Issue {
	issue := tracker.Issue{
		IID:         ghi.GetNumber(),
		Title:       ghi.GetTitle(),
		Description: ghi.GetBody(),
		State:       ghi.GetState(),
		Author:      tracker.User{Name: userName(ghi.GetUser())},
		CreatedAt:   timestamp(ghi.CreatedAt),
		UpdatedAt:   timestamp(ghi.UpdatedAt),
	}
	if ghi.Assignee != nil {
		issue.Assignee = &tracker.User{Name: userName(ghi.Assignee)}
	}
	for _, label := range ghi.Labels {
		issue.Labels = append(issue.Labels, label.GetName())
	}
	return issue
}

// userName prefers the display name and falls back to the login.
func userName(u *github.User) string {
	if u == nil {
		return ""
	}
	if name := u.GetName(); name != "" {
		return name
	}
	return u.GetLogin()
}

// timestamp renders a GitHub timestamp as the ISO string the renderer
// expects; nil means absent.
func timestamp(ts *github.Timestamp) string {
	if ts == nil || ts.IsZero() {
		return ""
	}
	return ts.UTC().Format("2006-01-02T15:04:05Z")
}
