//go:build unit

package render

import (
	"strings"
	"testing"

	"github.com/lerenn/milestone-docs/pkg/tracker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sprintMilestone() tracker.Milestone {
	return tracker.Milestone{
		ID:        1,
		Title:     "Sprint 1",
		State:     "active",
		StartDate: "2024-01-01",
		DueDate:   "2024-01-15",
	}
}

func TestMilestone_OpenAndClosedSections(t *testing.T) {
	issues := []tracker.Issue{
		{IID: 1, Title: "First open", State: tracker.StateOpened},
		{IID: 2, Title: "Second open", State: tracker.StateOpened},
		{IID: 3, Title: "Done", State: tracker.StateClosed},
	}

	doc, err := Milestone(sprintMilestone(), issues, "Ship the login flow")
	require.NoError(t, err)

	assert.Contains(t, doc, "# Milestone: Sprint 1")
	assert.Contains(t, doc, "Período: 01/01/2024 – 15/01/2024")
	assert.Contains(t, doc, "Status: Active")
	assert.Contains(t, doc, "Ship the login flow")
	assert.Contains(t, doc, "### 🔴 Abertas\n- [#1 First open](issue-1-first-open/README.md)\n- [#2 Second open](issue-2-second-open/README.md)")
	assert.Contains(t, doc, "### 🟢 Fechadas\n- [#3 Done](issue-3-done/README.md)")
	assert.Contains(t, doc, "- Total: 3 | Concluídas: 1 | Progresso: 33%")

	// Open section always precedes the closed section.
	assert.Less(t, strings.Index(doc, "🔴 Abertas"), strings.Index(doc, "🟢 Fechadas"))
}

func TestMilestone_NoIssues(t *testing.T) {
	doc, err := Milestone(sprintMilestone(), nil, "")
	require.NoError(t, err)

	assert.Contains(t, doc, NoIssues)
	assert.Contains(t, doc, NoDescription)
	assert.Contains(t, doc, "- Total: 0 | Concluídas: 0 | Progresso: 0%")
	assert.NotContains(t, doc, "Sumário de Issues")
}

func TestMilestone_ProgressFloors(t *testing.T) {
	issues := []tracker.Issue{
		{IID: 1, State: tracker.StateClosed},
		{IID: 2, State: tracker.StateClosed},
		{IID: 3, State: tracker.StateOpened},
	}

	doc, err := Milestone(sprintMilestone(), issues, "")
	require.NoError(t, err)

	// floor(2/3 * 100) = 66
	assert.Contains(t, doc, "Progresso: 66%")
}

func TestMilestone_AbsentDates(t *testing.T) {
	milestone := tracker.Milestone{Title: "Backlog", State: "active"}

	doc, err := Milestone(milestone, nil, "")
	require.NoError(t, err)

	assert.Contains(t, doc, "Período: — – —")
}

func TestMilestone_MalformedDate(t *testing.T) {
	milestone := tracker.Milestone{Title: "Broken", State: "active", StartDate: "junk"}

	_, err := Milestone(milestone, nil, "")

	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestIssue_FullDocument(t *testing.T) {
	issue := tracker.Issue{
		IID:         42,
		Title:       "Fix login",
		Description: "Steps to reproduce.",
		State:       tracker.StateOpened,
		Author:      tracker.User{Name: "Ana"},
		Assignee:    &tracker.User{Name: "Carla"},
		Labels:      []string{"bug", "auth"},
		CreatedAt:   "2024-01-02T10:00:00Z",
	}
	comments := []tracker.Comment{
		{Author: tracker.User{Name: "Bruno"}, Body: "LGTM", CreatedAt: "2024-01-03T09:00:00Z"},
	}

	doc, err := Issue(issue, comments, nil, nil)
	require.NoError(t, err)

	assert.Contains(t, doc, "# Issue #42 – Fix login")
	assert.Contains(t, doc, "**Status:** opened | **Autor:** Ana | **Responsável:** Carla")
	assert.Contains(t, doc, "**Labels:** bug, auth | **Criada em:** 02/01/2024")
	assert.Contains(t, doc, "Steps to reproduce.")
	assert.Contains(t, doc, "- **Bruno** (03/01/2024):\n  LGTM")
}

func TestIssue_AbsentAssigneeAndLabels(t *testing.T) {
	issue := tracker.Issue{
		IID:    7,
		Title:  "Orphan",
		State:  tracker.StateOpened,
		Author: tracker.User{Name: "Ana"},
	}

	doc, err := Issue(issue, nil, nil, nil)
	require.NoError(t, err)

	assert.Contains(t, doc, "**Responsável:** —")
	assert.Contains(t, doc, "**Labels:** — | **Criada em:** —")
	assert.Contains(t, doc, NoDescription)
	assert.Contains(t, doc, NoComments)
}

func TestIssue_SystemCommentsExcluded(t *testing.T) {
	issue := tracker.Issue{IID: 7, Title: "Orphan", State: tracker.StateOpened}
	comments := []tracker.Comment{
		{Author: tracker.User{Name: "bot"}, Body: "changed the milestone", System: true},
	}

	doc, err := Issue(issue, comments, nil, nil)
	require.NoError(t, err)

	assert.NotContains(t, doc, "changed the milestone")
	assert.Contains(t, doc, NoComments)
}

func TestIssue_NavigationBoundaries(t *testing.T) {
	issue := tracker.Issue{IID: 2, Title: "Middle", State: tracker.StateOpened}
	prev := &tracker.Issue{IID: 1, Title: "First"}
	next := &tracker.Issue{IID: 3, Title: "Last"}

	tests := []struct {
		name        string
		prev, next  *tracker.Issue
		wantLine    string
		notContains []string
	}{
		{
			name:     "first issue has no previous link",
			next:     next,
			wantLine: "↑ [Voltar para a milestone](../README.md) | → [Próxima issue](../issue-3-last/README.md)",
			notContains: []string{
				"Issue anterior",
			},
		},
		{
			name:     "last issue has no next link",
			prev:     prev,
			wantLine: "← [Issue anterior](../issue-1-first/README.md) | ↑ [Voltar para a milestone](../README.md)",
			notContains: []string{
				"Próxima issue",
			},
		},
		{
			name:     "middle issue has both",
			prev:     prev,
			next:     next,
			wantLine: "← [Issue anterior](../issue-1-first/README.md) | ↑ [Voltar para a milestone](../README.md) | → [Próxima issue](../issue-3-last/README.md)",
		},
		{
			name:     "single issue has only the milestone link",
			wantLine: "↑ [Voltar para a milestone](../README.md)",
			notContains: []string{
				"Issue anterior",
				"Próxima issue",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Issue(issue, nil, tt.prev, tt.next)
			require.NoError(t, err)
			assert.Contains(t, doc, tt.wantLine)
			for _, absent := range tt.notContains {
				assert.NotContains(t, doc, absent)
			}
		})
	}
}
