// Package main provides the entry point for the Prospect Researcher CLI and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "research_agent",
	Short: "Prospect Researcher",
	Long:  "Prospect Researcher turns a company website URL into a sales-prep packet: company profile, buying signals, ICP fit, verified contacts, and personalized outreach messaging.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
