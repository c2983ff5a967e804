// Package generator orchestrates the documentation pipeline: for each
// project, each milestone and each issue, it localizes assets, renders
// the document and writes it into the docs tree.
package generator

import (
	"context"
	"path/filepath"

	"github.com/lerenn/milestone-docs/pkg/assets"
	"github.com/lerenn/milestone-docs/pkg/config"
	"github.com/lerenn/milestone-docs/pkg/logger"
	"github.com/lerenn/milestone-docs/pkg/nav"
	"github.com/lerenn/milestone-docs/pkg/render"
	"github.com/lerenn/milestone-docs/pkg/site"
	"github.com/lerenn/milestone-docs/pkg/slug"
	"github.com/lerenn/milestone-docs/pkg/tracker"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=generator.go -destination=mocks/generator.gen.go -package=mocks

// Generator interface runs the documentation pipeline.
type Generator interface {
	// Run mirrors the given projects into the docs tree. Processing is
	// sequential and fail-fast: the first fetch or write error aborts
	// the run. Only asset fetches degrade gracefully per reference.
	Run(ctx context.Context, projectRefs []string) error
}

// NewGeneratorParams contains parameters for creating a new Generator
// instance.
type NewGeneratorParams struct {
	Config    *config.Config
	Tracker   tracker.Tracker
	Localizer assets.Localizer
	Writer    site.Writer
	Logger    logger.Logger
}

type realGenerator struct {
	config    *config.Config
	tracker   tracker.Tracker
	localizer assets.Localizer
	writer    site.Writer
	logger    logger.Logger
}

// NewGenerator creates a new Generator instance. Config and Tracker are
// required; the other collaborators default to working implementations.
func NewGenerator(params NewGeneratorParams) (Generator, error) {
	if params.Config == nil {
		return nil, ErrNilConfig
	}
	if params.Tracker == nil {
		return nil, ErrNilTracker
	}
	if params.Logger == nil {
		params.Logger = logger.NewNoopLogger()
	}
	if params.Writer == nil {
		params.Writer = site.NewWriter()
	}
	if params.Localizer == nil {
		params.Localizer = assets.NewLocalizer(params.Tracker, params.Writer, params.Logger)
	}

	return &realGenerator{
		config:    params.Config,
		tracker:   params.Tracker,
		localizer: params.Localizer,
		writer:    params.Writer,
		logger:    params.Logger,
	}, nil
}

// Run mirrors the given projects into the docs tree.
func (g *realGenerator) Run(ctx context.Context, projectRefs []string) error {
	if len(projectRefs) == 0 {
		return ErrNoProjects
	}

	for _, ref := range projectRefs {
		if err := g.processProject(ctx, ref); err != nil {
			return err
		}
	}

	g.logger.Logf("\n✅ Documentação gerada com sucesso.")
	return nil
}

// processProject mirrors one project: its milestones and their issues.
func (g *realGenerator) processProject(ctx context.Context, ref string) error {
	g.logger.Logf("\n📦 Projeto %s", ref)

	project, err := g.tracker.GetProject(ctx, ref)
	if err != nil {
		return err
	}
	projectDir := filepath.Join(g.config.DocsDir, slug.Make(project.PathWithNamespace))

	g.logger.Logf("📥 Processando milestones...")
	milestones, err := g.tracker.ListMilestones(ctx, project)
	if err != nil {
		return err
	}

	// Milestone slugs derive from titles alone, so same-titled
	// milestones are disambiguated at claim time.
	scope := slug.NewScope()
	for _, milestone := range milestones {
		milestoneDir := filepath.Join(projectDir, scope.Claim(slug.Make(milestone.Title), milestone.ID))
		if err := g.processMilestone(ctx, project, milestone, milestoneDir); err != nil {
			return err
		}
	}
	return nil
}

// processMilestone writes one milestone document and the documents of its
// issues.
func (g *realGenerator) processMilestone(ctx context.Context, project *tracker.Project, milestone tracker.Milestone, milestoneDir string) error {
	g.logger.Logf("  📁 Milestone: %s", milestone.Title)

	issues, err := g.tracker.ListIssues(ctx, project, milestone.Title)
	if err != nil {
		return err
	}
	ordered := nav.Order(issues)

	description := g.localizer.Localize(ctx, milestone.Description, milestoneDir, project)
	doc, err := render.Milestone(milestone, ordered, description)
	if err != nil {
		return err
	}
	if err := g.writer.WriteDocument(milestoneDir, doc); err != nil {
		return err
	}

	for i := range ordered {
		if err := g.processIssue(ctx, project, ordered, i, milestoneDir); err != nil {
			return err
		}
	}
	return nil
}

// processIssue writes the document of the issue at position i of the
// ordered sequence.
func (g *realGenerator) processIssue(ctx context.Context, project *tracker.Project, ordered []tracker.Issue, i int, milestoneDir string) error {
	g.logger.Logf("    📝 Issue #%d", ordered[i].IID)
	issueDir := filepath.Join(milestoneDir, slug.ForIssue(ordered[i].IID, ordered[i].Title))

	issue, err := g.tracker.GetIssue(ctx, project, ordered[i].IID)
	if err != nil {
		return err
	}
	comments, err := g.tracker.ListComments(ctx, project, ordered[i].IID)
	if err != nil {
		return err
	}

	issue.Description = g.localizer.Localize(ctx, issue.Description, issueDir, project)
	for c := range comments {
		if comments[c].System {
			continue
		}
		comments[c].Body = g.localizer.Localize(ctx, comments[c].Body, issueDir, project)
	}

	prev, next := nav.Neighbors(ordered, i)
	doc, err := render.Issue(*issue, comments, prev, next)
	if err != nil {
		return err
	}
	return g.writer.WriteDocument(issueDir, doc)
}
