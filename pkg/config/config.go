// Package config provides configuration management functionality for the
// mdocs application.
package config

import (
	"fmt"
	"os"
)

// Default values applied when the configuration file omits a field.
const (
	// DefaultTracker is the tracker used when none is configured.
	DefaultTracker = "gitlab"
	// DefaultBaseURL is the GitLab API endpoint used when none is
	// configured.
	DefaultBaseURL = "https://gitlab.com/api/v4"
	// DefaultDocsDir is the output directory used when none is
	// configured.
	DefaultDocsDir = "docs"
)

// Config represents the application configuration. A validated Config is
// built once at startup and passed into the generator explicitly; nothing
// reads ambient state afterwards.
type Config struct {
	// Tracker selects the tracker implementation ("gitlab" or "github").
	Tracker string `yaml:"tracker"`
	// Token is the bearer-style credential sent to the tracker.
	Token string `yaml:"token,omitempty"`
	// BaseURL is the tracker API endpoint (GitLab only).
	BaseURL string `yaml:"base_url,omitempty"`
	// DocsDir is the root directory of the generated tree.
	DocsDir string `yaml:"docs_dir"`
	// Projects are the project references to process. When empty the
	// CLI prompts for them.
	Projects []string `yaml:"projects,omitempty"`
}

// ApplyDefaults fills the fields the configuration file omitted.
func (c *Config) ApplyDefaults() {
	if c.Tracker == "" {
		c.Tracker = DefaultTracker
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.DocsDir == "" {
		c.DocsDir = DefaultDocsDir
	}
}

// ApplyEnv overrides credentials and endpoint from the environment. The
// token variable follows the selected tracker.
func (c *Config) ApplyEnv() {
	switch c.Tracker {
	case "github":
		if token := os.Getenv("GITHUB_TOKEN"); token != "" {
			c.Token = token
		}
	default:
		if token := os.Getenv("GITLAB_TOKEN"); token != "" {
			c.Token = token
		}
	}
	if baseURL := os.Getenv("GITLAB_BASE_URL"); baseURL != "" {
		c.BaseURL = baseURL
	}
}

// Validate validates the configuration values.
func (c *Config) Validate() error {
	if c.Tracker == "" {
		return ErrTrackerEmpty
	}
	if c.Token == "" {
		return fmt.Errorf("%w (tracker %s)", ErrTokenMissing, c.Tracker)
	}
	if c.DocsDir == "" {
		return ErrDocsDirEmpty
	}
	return nil
}
