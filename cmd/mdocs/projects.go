package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// createProjectsCmd creates the projects command.
func createProjectsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "projects",
		Short: "List the projects available to the configured credential",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			tr, err := buildTracker(cfg, newLogger())
			if err != nil {
				return err
			}

			projects, err := tr.ListProjects(cmd.Context())
			if err != nil {
				return err
			}

			for _, project := range projects {
				fmt.Printf("%d\t%s\n", project.ID, project.PathWithNamespace)
			}
			return nil
		},
	}
}
