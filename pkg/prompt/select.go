package prompt

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// selectModel represents the Bubble Tea model for project selection.
type selectModel struct {
	choices         []ProjectChoice
	filteredChoices []ProjectChoice
	cursor          int
	filter          string
	selected        *ProjectChoice
	quitting        bool
}

// initialSelectModel creates a new select model.
func initialSelectModel(choices []ProjectChoice) selectModel {
	return selectModel{
		choices:         choices,
		filteredChoices: choices,
		cursor:          0,
		filter:          "",
		selected:        nil,
		quitting:        false,
	}
}

// Init initializes the model.
func (m selectModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKeyInput(msg)
	}

	return m, nil
}

// handleKeyInput processes key input and returns the updated model and command.
func (m *selectModel) handleKeyInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if m.handleSpecialKeys(key) {
		return *m, tea.Quit
	}

	m.handleNavigationKeys(key)
	m.handleFilterKeys(key)

	return *m, nil
}

// handleSpecialKeys handles special keys that cause the program to quit.
func (m *selectModel) handleSpecialKeys(key string) bool {
	switch key {
	case "ctrl+c", "q":
		m.quitting = true
		return true
	case "enter":
		if len(m.filteredChoices) > 0 && m.cursor < len(m.filteredChoices) {
			selected := m.filteredChoices[m.cursor]
			m.selected = &selected
			return true
		}
	}
	return false
}

// handleNavigationKeys handles navigation keys (up/down).
func (m *selectModel) handleNavigationKeys(key string) {
	switch key {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.filteredChoices)-1 {
			m.cursor++
		}
	}
}

// handleFilterKeys handles filter-related keys.
func (m *selectModel) handleFilterKeys(key string) {
	switch key {
	case "backspace":
		if len(m.filter) > 0 {
			m.filter = m.filter[:len(m.filter)-1]
			m.updateFilteredChoices()
		}
	case "esc":
		m.filter = ""
		m.updateFilteredChoices()
	default:
		// Handle regular character input for filtering
		if len(key) == 1 {
			m.filter += key
			m.updateFilteredChoices()
		}
	}
}

// updateFilteredChoices updates the filtered choices based on the current filter.
func (m *selectModel) updateFilteredChoices() {
	if m.filter == "" {
		m.filteredChoices = m.choices
	} else {
		m.filteredChoices = []ProjectChoice{}

		filterLower := strings.ToLower(m.filter)
		for _, choice := range m.choices {
			if strings.Contains(strings.ToLower(choice.Path), filterLower) {
				m.filteredChoices = append(m.filteredChoices, choice)
			}
		}
	}

	// Reset cursor if it's out of bounds
	if m.cursor >= len(m.filteredChoices) {
		m.cursor = 0
	}
}

// View renders the UI.
func (m selectModel) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder

	s.WriteString("? Choose a project:  [Use arrows to move, type to filter]\n\n")

	if m.filter != "" {
		s.WriteString(fmt.Sprintf("Filter: %s\n\n", m.filter))
	}

	for i, choice := range m.filteredChoices {
		cursor := " "
		if m.cursor == i {
			cursor = ">"
		}
		s.WriteString(fmt.Sprintf("%s %s\n", cursor, choice.Path))
	}

	s.WriteString("\nPress Enter to select, Ctrl+C or q to quit")
	if m.filter != "" {
		s.WriteString(", Esc to clear filter")
	}

	return s.String()
}

// PromptSelectProject prompts the user to select one project from a list.
func (p *realPrompt) PromptSelectProject(choices []ProjectChoice) (ProjectChoice, error) {
	if len(choices) == 0 {
		return ProjectChoice{}, ErrNoProjectsAvailable
	}

	program := tea.NewProgram(initialSelectModel(choices))
	finalModel, err := program.Run()
	if err != nil {
		return ProjectChoice{}, fmt.Errorf("failed to run selection prompt: %w", err)
	}

	model, ok := finalModel.(selectModel)
	if !ok || model.selected == nil {
		return ProjectChoice{}, ErrSelectionCancelled
	}
	return *model.selected, nil
}
