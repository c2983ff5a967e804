package main

import (
	"fmt"

	"github.com/lerenn/milestone-docs/pkg/assets"
	"github.com/lerenn/milestone-docs/pkg/generator"
	"github.com/lerenn/milestone-docs/pkg/logger"
	"github.com/lerenn/milestone-docs/pkg/prompt"
	"github.com/lerenn/milestone-docs/pkg/site"
	"github.com/spf13/cobra"
)

var (
	outputDir   string
	trackerName string
	pick        bool
)

// createGenerateCmd creates the generate command.
func createGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [project-ref...]",
		Short: "Generate the documentation tree for the given projects",
		Long: `Generate mirrors each project's milestones and issues into the docs ` +
			`directory. Project references are taken from the arguments, the ` +
			`configured project list, or an interactive prompt, in that order.`,
		RunE: runGenerate,
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Override the configured docs directory")
	cmd.Flags().StringVarP(&trackerName, "tracker", "t", "", "Override the configured tracker (gitlab or github)")
	cmd.Flags().BoolVarP(&pick, "pick", "p", false, "Pick a project interactively from the tracker")

	return cmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if trackerName != "" {
		cfg.Tracker = trackerName
		// The token variable follows the tracker, so re-resolve and
		// re-validate after the override.
		cfg.ApplyEnv()
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
	}
	if outputDir != "" {
		cfg.DocsDir = outputDir
	}

	log := newLogger()
	tr, err := buildTracker(cfg, log)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	prompter := prompt.NewPrompt()

	refs := args
	if len(refs) == 0 {
		refs = cfg.Projects
	}
	if pick {
		projects, err := tr.ListProjects(ctx)
		if err != nil {
			return err
		}
		choices := make([]prompt.ProjectChoice, len(projects))
		for i, project := range projects {
			choices[i] = prompt.ProjectChoice{
				Ref:  project.PathWithNamespace,
				Path: project.PathWithNamespace,
			}
		}
		choice, err := prompter.PromptSelectProject(choices)
		if err != nil {
			return err
		}
		refs = append(refs, choice.Ref)
	}
	if len(refs) == 0 {
		if refs, err = prompter.PromptForProjectRefs(); err != nil {
			return err
		}
	}

	writer := site.NewWriter()
	gen, err := generator.NewGenerator(generator.NewGeneratorParams{
		Config:    cfg,
		Tracker:   tr,
		Writer:    writer,
		Localizer: assets.NewLocalizer(tr, writer, logger.NewPrefixLogger("    ", log)),
		Logger:    log,
	})
	if err != nil {
		return err
	}
	return gen.Run(ctx, refs)
}
