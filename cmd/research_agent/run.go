package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/prospect-researcher/internal/config"
	"github.com/jonathan/prospect-researcher/internal/pipeline"
	"github.com/jonathan/prospect-researcher/internal/types"
)

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Research one company end-to-end and print the result as JSON",
	Long: `Runs the full research pipeline for a single company URL: profiling -> signal extraction -> ICP gate -> contact enrichment -> messaging.

The result is printed to stdout as JSON.`,
	RunE: runResearchCmd,
}

var (
	runCompanyURL    string
	runWhatWeSell    string
	runTargetPersona string
	runRegion        string
	runMock          bool
	runUseBrowser    bool
	runVerbose       bool
)

func init() {
	runCommand.Flags().StringVarP(&runCompanyURL, "url", "u", "", "Company website URL (required)")
	runCommand.Flags().StringVar(&runWhatWeSell, "what-we-sell", "", "Short description of your offering, used in messaging")
	runCommand.Flags().StringVar(&runTargetPersona, "target-persona", "", "Persona override (skips persona inference)")
	runCommand.Flags().StringVar(&runRegion, "region", "", "Region hint for the research")
	runCommand.Flags().BoolVar(&runMock, "mock", false, "Use deterministic simulated providers (no API keys needed)")
	runCommand.Flags().BoolVar(&runUseBrowser, "use-browser", false, "Use headless browser for JS-rendered sites (requires Chrome)")
	runCommand.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print detailed debug information")

	_ = runCommand.MarkFlagRequired("url")

	rootCmd.AddCommand(runCommand)
}

func runResearchCmd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg := config.FromEnv()
	if runMock {
		cfg.MockMode = true
	}
	if runUseBrowser {
		cfg.UseBrowser = true
	}
	if runVerbose {
		cfg.Verbose = true
	}

	deps, cleanup, err := cfg.BuildDeps(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	p := pipeline.New(deps, pipeline.Options{Verbose: cfg.Verbose})

	result, err := p.Run(ctx, types.ResearchRequest{
		CompanyURL:    runCompanyURL,
		WhatWeSell:    runWhatWeSell,
		TargetPersona: runTargetPersona,
		Region:        runRegion,
	})
	if err != nil {
		return fmt.Errorf("research failed: %w", err)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	return nil
}
