package generator

import "errors"

// Generator-specific errors.
var (
	ErrNilConfig  = errors.New("config cannot be nil")
	ErrNilTracker = errors.New("tracker cannot be nil")
	ErrNoProjects = errors.New("no projects to process")
)
