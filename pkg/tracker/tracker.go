// Package tracker provides the data model and client interface for the
// project trackers that mdocs can mirror.
package tracker

import (
	"context"
	"fmt"
	"io"

	"github.com/lerenn/milestone-docs/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=tracker.go -destination=mocks/tracker.gen.go -package=mocks

// Issue and milestone states as reported by the trackers.
const (
	// StateClosed marks a finished issue or milestone.
	StateClosed = "closed"
	// StateOpened marks an issue still being worked on (GitLab wording).
	StateOpened = "opened"
)

// Project identifies one tracker project.
type Project struct {
	// ID is the numeric identifier used by API calls.
	ID int
	// PathWithNamespace is the full human-readable path, e.g. "group/repo".
	PathWithNamespace string
}

// Milestone is a read-only snapshot of one tracker milestone.
type Milestone struct {
	ID          int
	Title       string
	Description string
	State       string
	// StartDate and DueDate are the tracker's ISO-8601 strings; empty
	// means the date was not set.
	StartDate string
	DueDate   string
}

// Issue is a read-only snapshot of one tracker issue.
type Issue struct {
	IID         int
	Title       string
	Description string
	State       string
	Author      User
	// Assignee is nil when the issue is unassigned.
	Assignee  *User
	Labels    []string
	CreatedAt string
	UpdatedAt string
}

// Closed reports whether the issue has been closed.
func (i Issue) Closed() bool {
	return i.State == StateClosed
}

// Comment is one discussion entry on an issue.
type Comment struct {
	Author    User
	Body      string
	CreatedAt string
	// System marks tracker-generated entries (state changes, mentions)
	// which are excluded from rendering.
	System bool
}

// User is the author or assignee of a record.
type User struct {
	Name string
}

// Tracker interface defines the read operations the documentation
// pipeline depends on. All implementations must honor context
// cancellation on every call.
type Tracker interface {
	// Name returns the name of the tracker.
	Name() string

	// ListProjects lists the projects the credential has access to.
	ListProjects(ctx context.Context) ([]Project, error)

	// GetProject resolves a project reference (numeric ID or namespace
	// path, depending on the tracker) into a Project.
	GetProject(ctx context.Context, ref string) (*Project, error)

	// ListMilestones lists all milestones of a project.
	ListMilestones(ctx context.Context, project *Project) ([]Milestone, error)

	// ListIssues lists the issues grouped under a milestone title, in
	// the tracker's own order.
	ListIssues(ctx context.Context, project *Project, milestoneTitle string) ([]Issue, error)

	// GetIssue fetches the full detail of one issue.
	GetIssue(ctx context.Context, project *Project, iid int) (*Issue, error)

	// ListComments lists the comments of an issue, oldest first.
	ListComments(ctx context.Context, project *Project, iid int) ([]Comment, error)

	// FetchAsset opens a stream to an uploaded attachment. The caller
	// must close the returned reader.
	FetchAsset(ctx context.Context, project *Project, secret, filename string) (io.ReadCloser, error)
}

// ManagerInterface defines the interface for tracker selection.
type ManagerInterface interface {
	// GetTracker returns the tracker implementation for the given name.
	GetTracker(name string) (Tracker, error)
}

// Manager manages tracker implementations and provides a unified interface.
type Manager struct {
	trackers map[string]Tracker
	logger   logger.Logger
}

// NewManager creates a new tracker manager with the given implementations
// registered under their names.
func NewManager(log logger.Logger, trackers ...Tracker) *Manager {
	m := &Manager{
		trackers: make(map[string]Tracker),
		logger:   log,
	}
	for _, t := range trackers {
		m.trackers[t.Name()] = t
	}
	return m
}

// GetTracker returns the tracker implementation for the given name.
func (m *Manager) GetTracker(name string) (Tracker, error) {
	t, exists := m.trackers[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedTracker, name)
	}
	return t, nil
}
