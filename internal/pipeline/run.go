// Package pipeline provides the high-level orchestration for the prospect
// research process.
package pipeline

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/prospect-researcher/internal/enrichment"
	"github.com/jonathan/prospect-researcher/internal/icp"
	"github.com/jonathan/prospect-researcher/internal/messaging"
	"github.com/jonathan/prospect-researcher/internal/observability"
	"github.com/jonathan/prospect-researcher/internal/providers"
	"github.com/jonathan/prospect-researcher/internal/research"
	"github.com/jonathan/prospect-researcher/internal/types"
)

// Deps holds the provider implementations the pipeline runs against.
// Generator may be nil; hooks then come from templates.
type Deps struct {
	Scraper   providers.Scraper
	Searcher  providers.Searcher
	People    providers.PeopleSearcher
	Generator providers.TextGenerator
}

// Options holds per-run configuration.
type Options struct {
	Criteria *types.ICPCriteria // nil selects the built-in ICP
	Verbose  bool
}

// Pipeline runs the research stages in order: profile, parallel signal
// extraction, ICP gate, then enrichment and messaging for fits.
type Pipeline struct {
	deps      Deps
	evaluator *icp.Evaluator
	verbose   bool
}

// New creates a pipeline with the given providers.
func New(deps Deps, opts Options) *Pipeline {
	criteria := icp.DefaultCriteria()
	if opts.Criteria != nil {
		criteria = *opts.Criteria
	}
	return &Pipeline{
		deps:      deps,
		evaluator: icp.NewEvaluator(criteria),
		verbose:   opts.Verbose,
	}
}

// Run executes the research pipeline for one company. Profiling failures
// abort the run; the downstream extractors degrade to empty results on
// their own. Companies that fail the ICP gate get a result with empty
// personas, contacts, and messaging.
func (p *Pipeline) Run(ctx context.Context, req types.ResearchRequest) (*types.ResearchResult, error) {
	if err := req.Validate(); err != nil {
		return nil, &InvalidInputError{Message: "company_url must be a valid URL", Err: err}
	}

	runID := uuid.New().String()
	printer := observability.NewPrinter(os.Stdout)

	fmt.Printf("[%s] Starting research for: %s\n", runID, req.CompanyURL)

	// Step 1: Profile the company
	fmt.Printf("Step 1/6: Profiling company...\n")
	profiler := research.NewProfiler(p.deps.Scraper, p.deps.Searcher)
	company, err := profiler.Profile(ctx, req.CompanyURL)
	if err != nil {
		return nil, &UpstreamError{Stage: "company profiling", Err: err}
	}
	if p.verbose {
		printer.PrintCompanyProfile(company)
	}

	// Step 2: Extract signals in parallel. The extractors swallow their own
	// provider failures, so the group only propagates context cancellation.
	fmt.Printf("Step 2/6: Extracting signals (initiatives, tech stack, hiring)...\n")
	var (
		initiatives   []types.Initiative
		techStack     []types.TechSignal
		hiringSignals []types.HiringSignal
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		initiatives = research.NewInitiativeExtractor(p.deps.Searcher).Extract(gCtx, company.Name)
		return nil
	})
	g.Go(func() error {
		techStack = research.NewTechStackInferencer(p.deps.Scraper).Infer(gCtx, req.CompanyURL)
		return nil
	})
	g.Go(func() error {
		hiringSignals = research.NewHiringSignalDetector(p.deps.Scraper).Detect(gCtx, req.CompanyURL)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Step 3: Evaluate ICP fit
	fmt.Printf("Step 3/6: Evaluating ICP fit...\n")
	verdict := p.evaluator.Evaluate(*company, techStack, hiringSignals)
	if p.verbose {
		printer.PrintICPVerdict(verdict)
	}

	result := &types.ResearchResult{
		RunID:         runID,
		Company:       *company,
		Initiatives:   initiatives,
		TechStack:     techStack,
		HiringSignals: hiringSignals,
		ICPFit:        verdict,
		Personas:      []types.Persona{},
		Contacts:      []types.Contact{},
		Messaging: types.Messaging{
			Emails: []types.EmailDraft{},
			CallScript: types.CallScript{
				Opener:             "",
				DiscoveryQuestions: []string{},
				Objections:         []string{},
			},
			EmailHooks: []string{},
		},
	}

	if !verdict.Fit {
		fmt.Printf("Not an ICP fit. Stopping before enrichment.\n")
		return result, nil
	}

	// Step 4: Identify target personas
	fmt.Printf("Step 4/6: Identifying target personas...\n")
	personas := enrichment.IdentifyTargetPersonas(company.Industry, req.WhatWeSell, req.TargetPersona)
	result.Personas = personas

	// Step 5: Find and verify contacts
	fmt.Printf("Step 5/6: Finding and enriching contacts...\n")
	contacts := enrichment.NewContactFinder(p.deps.People).Find(ctx, req.CompanyURL, personas)
	result.Contacts = contacts

	// Step 6: Generate messaging
	fmt.Printf("Step 6/6: Generating personalized messaging...\n")
	result.Messaging.Emails = messaging.GenerateEmails(*company, contacts, initiatives, hiringSignals, req.WhatWeSell)
	result.Messaging.CallScript = messaging.GenerateCallScript(*company, initiatives, hiringSignals)

	hookGen := &messaging.HookGenerator{Generator: p.deps.Generator}
	result.Messaging.EmailHooks = hookGen.Generate(ctx, *company, contacts, initiatives, hiringSignals, req.WhatWeSell)

	if p.verbose {
		printer.PrintResearchResult(result)
	}

	fmt.Printf("[%s] Research complete.\n", runID)
	return result, nil
}
