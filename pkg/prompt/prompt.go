// Package prompt provides interactive prompt functionality for mdocs.
package prompt

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=prompt.go -destination=mocks/prompt.gen.go -package=mocks

// ProjectChoice represents a selectable tracker project.
type ProjectChoice struct {
	// Ref is the reference passed back to the tracker (numeric ID or
	// namespace path).
	Ref string
	// Path is the human-readable namespace path shown in the list.
	Path string
}

// Prompter interface provides user interaction functionality.
type Prompter interface {
	// PromptForProjectRefs prompts the user for a comma-separated list
	// of project references.
	PromptForProjectRefs() ([]string, error)

	// PromptSelectProject prompts the user to select one project from a
	// list.
	PromptSelectProject(choices []ProjectChoice) (ProjectChoice, error)
}

type realPrompt struct {
	reader *bufio.Reader
}

// NewPrompt creates a new Prompt instance.
func NewPrompt() Prompter {
	return &realPrompt{
		reader: bufio.NewReader(os.Stdin),
	}
}

// PromptForProjectRefs prompts the user for a comma-separated list of
// project references.
func (p *realPrompt) PromptForProjectRefs() ([]string, error) {
	fmt.Print("Informe os IDs dos projetos (separados por vírgula): ")

	input, err := p.reader.ReadString('\n')
	if err != nil {
		return nil, fmt.Errorf("failed to read user input: %w", err)
	}

	return ParseProjectRefs(input), nil
}

// ParseProjectRefs splits a comma-separated list of project references,
// dropping empty entries.
func ParseProjectRefs(input string) []string {
	var refs []string
	for _, part := range strings.Split(input, ",") {
		if ref := strings.TrimSpace(part); ref != "" {
			refs = append(refs, ref)
		}
	}
	return refs
}
