//go:build unit

package prompt

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProjectRefs(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "single reference",
			input: "42\n",
			want:  []string{"42"},
		},
		{
			name:  "multiple references with spaces",
			input: " 42, group/docs ,7\n",
			want:  []string{"42", "group/docs", "7"},
		},
		{
			name:  "empty entries dropped",
			input: "42,,,\n",
			want:  []string{"42"},
		},
		{
			name:  "empty input",
			input: "\n",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseProjectRefs(tt.input))
		})
	}
}

func testChoices() []ProjectChoice {
	return []ProjectChoice{
		{Ref: "1", Path: "group/alpha"},
		{Ref: "2", Path: "group/beta"},
		{Ref: "3", Path: "team/gamma"},
	}
}

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
}

func update(t *testing.T, m tea.Model, keys ...string) selectModel {
	t.Helper()
	for _, key := range keys {
		m, _ = m.Update(keyMsg(key))
	}
	model, ok := m.(selectModel)
	require.True(t, ok)
	return model
}

func TestSelectModel_EnterSelectsCursorChoice(t *testing.T) {
	model := update(t, initialSelectModel(testChoices()), "down", "enter")

	require.NotNil(t, model.selected)
	assert.Equal(t, "2", model.selected.Ref)
}

func TestSelectModel_NavigationStaysInBounds(t *testing.T) {
	model := update(t, initialSelectModel(testChoices()), "up", "up")
	assert.Equal(t, 0, model.cursor)

	model = update(t, initialSelectModel(testChoices()), "down", "down", "down", "down")
	assert.Equal(t, 2, model.cursor)
}

func TestSelectModel_FilterNarrowsChoices(t *testing.T) {
	model := update(t, initialSelectModel(testChoices()), "g", "r", "o", "u", "p")

	require.Len(t, model.filteredChoices, 2)
	assert.Equal(t, "group/alpha", model.filteredChoices[0].Path)

	// Esc clears the filter.
	model = update(t, model, "esc")
	assert.Len(t, model.filteredChoices, 3)
}

func TestSelectModel_FilteredSelection(t *testing.T) {
	model := update(t, initialSelectModel(testChoices()), "g", "a", "m", "m", "a", "enter")

	require.NotNil(t, model.selected)
	assert.Equal(t, "3", model.selected.Ref)
}

func TestSelectModel_QuitWithoutSelection(t *testing.T) {
	model := update(t, initialSelectModel(testChoices()), "q")

	assert.True(t, model.quitting)
	assert.Nil(t, model.selected)
}

func TestPromptSelectProject_EmptyChoices(t *testing.T) {
	p := NewPrompt()

	_, err := p.PromptSelectProject(nil)

	assert.ErrorIs(t, err, ErrNoProjectsAvailable)
}
