package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/prospect-researcher/internal/config"
	"github.com/jonathan/prospect-researcher/internal/pipeline"
	"github.com/jonathan/prospect-researcher/internal/server"
)

var (
	servePort string
	serveMock bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes POST /research for running the research pipeline.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "Port to listen on (defaults to PORT env var or 8080)")
	serveCmd.Flags().BoolVar(&serveMock, "mock", false, "Use deterministic simulated providers (no API keys needed)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := config.FromEnv()
	if serveMock {
		cfg.MockMode = true
	}
	if servePort != "" {
		cfg.Port = servePort
	}

	deps, cleanup, err := cfg.BuildDeps(context.Background())
	if err != nil {
		return fmt.Errorf("failed to initialize providers: %w", err)
	}

	srv := server.New(server.Config{
		Port:     cfg.Port,
		Pipeline: pipeline.New(deps, pipeline.Options{Verbose: cfg.Verbose}),
		Cleanup:  cleanup,
	})

	return srv.Start()
}
