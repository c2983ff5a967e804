// Package main provides the command-line interface for the mdocs application.
package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/lerenn/milestone-docs/pkg/config"
	"github.com/lerenn/milestone-docs/pkg/logger"
	"github.com/lerenn/milestone-docs/pkg/tracker"
	"github.com/lerenn/milestone-docs/pkg/tracker/github"
	"github.com/lerenn/milestone-docs/pkg/tracker/gitlab"
	"github.com/spf13/cobra"
)

var (
	quiet      bool
	configPath string
)

// loadConfig loads the configuration, falling back to defaults plus
// environment variables when no config file exists.
func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			homeDir = "."
		}
		path = filepath.Join(homeDir, ".mdocs", "config.yaml")
	}
	return config.LoadConfigWithFallback(path)
}

// newLogger returns the logger selected by the global flags.
func newLogger() logger.Logger {
	if quiet {
		return logger.NewNoopLogger()
	}
	return logger.NewDefaultLogger()
}

// buildTracker builds the tracker selected by the configuration.
func buildTracker(cfg *config.Config, log logger.Logger) (tracker.Tracker, error) {
	manager := tracker.NewManager(log,
		gitlab.New(gitlab.Config{BaseURL: cfg.BaseURL, Token: cfg.Token}, nil),
		github.New(cfg.Token),
	)
	return manager.GetTracker(cfg.Tracker)
}

func main() {
	// Load .env before any configuration is resolved.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "mdocs",
		Short: "Milestone Docs - Tracker documentation generator",
		Long: `A CLI tool that mirrors a tracker's milestones and issues into a ` +
			`versioned, navigable tree of markdown documents, browsable offline.`,
	}

	// Add global flags
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Specify a custom config file path")

	// Add subcommands
	rootCmd.AddCommand(createGenerateCmd(), createProjectsCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
