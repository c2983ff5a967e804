// Package slug derives filesystem-safe identifiers from tracker titles.
package slug

import (
	"fmt"

	gosimple "github.com/gosimple/slug"
)

// Make normalizes a title into a lowercase ASCII slug. Whitespace and
// punctuation runs collapse into a single separator, leading and trailing
// separators are stripped. Pure and deterministic.
func Make(title string) string {
	return gosimple.Make(title)
}

// ForIssue builds the slug of an issue directory. The issue iid is part of
// the slug, which makes it unique within the project even when two issues
// share a title.
func ForIssue(iid int, title string) string {
	return fmt.Sprintf("issue-%d-%s", iid, Make(title))
}

// Scope tracks the slugs already claimed under one parent directory.
type Scope struct {
	claimed map[string]bool
}

// NewScope creates an empty sibling scope.
func NewScope() *Scope {
	return &Scope{claimed: make(map[string]bool)}
}

// Claim reserves a slug within the scope. When the slug is already taken
// by a sibling, the record identifier is appended to keep the directory
// unique. The returned slug is always reserved in the scope.
func (s *Scope) Claim(slug string, id int) string {
	if s.claimed[slug] {
		slug = fmt.Sprintf("%s-%d", slug, id)
	}
	s.claimed[slug] = true
	return slug
}
