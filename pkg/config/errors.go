package config

import "errors"

// Error definitions for config package.
var (
	// Configuration file errors.
	ErrConfigFileParse = errors.New("failed to parse config file")
	// Configuration validation errors.
	ErrTrackerEmpty = errors.New("tracker cannot be empty")
	ErrTokenMissing = errors.New("tracker token is not set, define it in the config file or environment")
	ErrDocsDirEmpty = errors.New("docs_dir cannot be empty")
)
