// Package render maps tracker records to markdown document bodies. The
// output layout is a stable textual contract consumed through relative
// links, so templates are fixed strings rather than a templating engine.
package render

import (
	"fmt"
	"strings"

	"github.com/lerenn/milestone-docs/pkg/slug"
	"github.com/lerenn/milestone-docs/pkg/tracker"
)

// Placeholder sentinels rendered when a field is absent.
const (
	// EmDash replaces absent dates, assignees and labels.
	EmDash = "—"
	// NoDescription replaces an empty description.
	NoDescription = "_Sem descrição_"
	// NoComments replaces an empty comment list.
	NoComments = "_Sem comentários_"
	// NoIssues replaces an empty issue summary.
	NoIssues = "_Nenhuma issue_"
)

// issueLink renders the relative link of an issue inside its milestone
// directory.
func issueLink(issue tracker.Issue) string {
	return fmt.Sprintf("[#%d %s](%s/README.md)", issue.IID, issue.Title, slug.ForIssue(issue.IID, issue.Title))
}

// capitalize upper-cases the first letter and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// Milestone renders the index document of a milestone. The description
// must already be localized; issues must already be ordered. Zero issues
// still produces a complete document with placeholder metrics.
func Milestone(milestone tracker.Milestone, issues []tracker.Issue, description string) (string, error) {
	total := len(issues)
	closed := 0
	for _, issue := range issues {
		if issue.Closed() {
			closed++
		}
	}
	progress := 0
	if total > 0 {
		progress = closed * 100 / total
	}

	start, err := FormatDate(milestone.StartDate)
	if err != nil {
		return "", err
	}
	due, err := FormatDate(milestone.DueDate)
	if err != nil {
		return "", err
	}

	if description == "" {
		description = NoDescription
	}

	// The two trailing spaces after the period line are a markdown hard
	// line break.
	return fmt.Sprintf("# Milestone: %s\nPeríodo: %s – %s  \nStatus: %s"+`

## Objetivo
%s

## Issues
%s

## Métricas
- Total: %d | Concluídas: %d | Progresso: %d%%
`,
		milestone.Title,
		start, due,
		capitalize(milestone.State),
		description,
		issueSummary(issues),
		total, closed, progress,
	), nil
}

// issueSummary renders the open/closed issue lists of a milestone.
func issueSummary(issues []tracker.Issue) string {
	if len(issues) == 0 {
		return NoIssues
	}

	var open, closed []string
	for _, issue := range issues {
		if issue.Closed() {
			closed = append(closed, "- "+issueLink(issue))
		} else {
			open = append(open, "- "+issueLink(issue))
		}
	}

	summary := "## Sumário de Issues\n\n"
	if len(open) > 0 {
		summary += "### 🔴 Abertas\n" + strings.Join(open, "\n") + "\n\n"
	}
	if len(closed) > 0 {
		summary += "### 🟢 Fechadas\n" + strings.Join(closed, "\n")
	}
	return summary
}

// Issue renders the index document of an issue. The issue description and
// comment bodies must already be localized. prev and next are the
// positional neighbors in the ordered sequence, nil at the boundaries.
func Issue(issue tracker.Issue, comments []tracker.Comment, prev, next *tracker.Issue) (string, error) {
	commentsBlock, err := commentList(comments)
	if err != nil {
		return "", err
	}

	created, err := FormatDate(issue.CreatedAt)
	if err != nil {
		return "", err
	}

	assignee := EmDash
	if issue.Assignee != nil {
		assignee = issue.Assignee.Name
	}

	labels := strings.Join(issue.Labels, ", ")
	if labels == "" {
		labels = EmDash
	}

	description := issue.Description
	if description == "" {
		description = NoDescription
	}

	return fmt.Sprintf(`# Issue #%d – %s
%s

---
**Status:** %s | **Autor:** %s | **Responsável:** %s
**Labels:** %s | **Criada em:** %s

---
## Descrição
%s

---
## Comentários
%s
`,
		issue.IID, issue.Title,
		navigationLine(prev, next),
		issue.State, issue.Author.Name, assignee,
		labels, created,
		description,
		commentsBlock,
	), nil
}

// navigationLine renders the prev/up/next links of an issue document as a
// single line.
func navigationLine(prev, next *tracker.Issue) string {
	nav := []string{"↑ [Voltar para a milestone](../README.md)"}
	if prev != nil {
		prevSlug := slug.ForIssue(prev.IID, prev.Title)
		nav = append([]string{fmt.Sprintf("← [Issue anterior](../%s/README.md)", prevSlug)}, nav...)
	}
	if next != nil {
		nextSlug := slug.ForIssue(next.IID, next.Title)
		nav = append(nav, fmt.Sprintf("→ [Próxima issue](../%s/README.md)", nextSlug))
	}
	return strings.Join(nav, " | ")
}

// commentList renders the non-system comments of an issue.
func commentList(comments []tracker.Comment) (string, error) {
	var rendered []string
	for _, comment := range comments {
		if comment.System {
			continue
		}
		date, err := FormatDate(comment.CreatedAt)
		if err != nil {
			return "", err
		}
		rendered = append(rendered, fmt.Sprintf("- **%s** (%s):\n  %s", comment.Author.Name, date, comment.Body))
	}
	if len(rendered) == 0 {
		return NoComments, nil
	}
	return strings.Join(rendered, "\n"), nil
}
