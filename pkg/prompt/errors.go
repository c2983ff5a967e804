package prompt

import "errors"

// Error definitions for prompt package.
var (
	ErrNoProjectsAvailable = errors.New("no projects available to select from")
	ErrSelectionCancelled  = errors.New("selection cancelled")
)
