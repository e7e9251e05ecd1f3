// Package config provides environment-based configuration and provider
// construction for the CLI and server.
package config

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/prospect-researcher/internal/llm"
	"github.com/jonathan/prospect-researcher/internal/pipeline"
	"github.com/jonathan/prospect-researcher/internal/providers"
)

// Config represents runtime configuration. All values come from the
// environment; a .env file is loaded at the entrypoint before this runs.
type Config struct {
	GeminiAPIKey       string // Gemini API key for hook generation (optional)
	GeminiModel        string // Gemini model override
	GoogleSearchAPIKey string // Google Custom Search API key
	GoogleSearchCX     string // Google Custom Search engine ID
	ApolloAPIKey       string // Apollo people-search API key
	Port               string // HTTP server port
	MockMode           bool   // Use deterministic simulated providers
	UseBrowser         bool   // Headless browser fallback for JS-rendered sites
	Verbose            bool   // Print detailed debug information
}

// FromEnv reads configuration from environment variables.
func FromEnv() *Config {
	return &Config{
		GeminiAPIKey:       os.Getenv("GEMINI_API_KEY"),
		GeminiModel:        os.Getenv("GEMINI_MODEL"),
		GoogleSearchAPIKey: os.Getenv("GOOGLE_SEARCH_API_KEY"),
		GoogleSearchCX:     os.Getenv("GOOGLE_SEARCH_CX"),
		ApolloAPIKey:       os.Getenv("APOLLO_API_KEY"),
		Port:               envOr("PORT", "8080"),
		MockMode:           os.Getenv("MOCK_MODE") == "true",
		UseBrowser:         os.Getenv("USE_BROWSER") == "true",
		Verbose:            os.Getenv("VERBOSE") == "true",
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Validate checks that live mode has the credentials it needs. Mock mode
// needs none.
func (c *Config) Validate() error {
	if c.MockMode {
		return nil
	}
	if c.GoogleSearchAPIKey == "" || c.GoogleSearchCX == "" {
		return fmt.Errorf("GOOGLE_SEARCH_API_KEY and GOOGLE_SEARCH_CX are required (or set MOCK_MODE=true)")
	}
	if c.ApolloAPIKey == "" {
		return fmt.Errorf("APOLLO_API_KEY is required (or set MOCK_MODE=true)")
	}
	return nil
}

// BuildDeps constructs the provider set the pipeline runs against. The
// returned cleanup function releases provider resources and must be called
// when the deps are no longer needed. A missing Gemini key leaves the
// generator nil; hook generation then uses templates.
func (c *Config) BuildDeps(ctx context.Context) (pipeline.Deps, func(), error) {
	if c.MockMode {
		return pipeline.Deps{
			Scraper:   providers.NewSimulatedScraper(),
			Searcher:  providers.NewSimulatedSearcher(),
			People:    providers.NewSimulatedPeopleSearcher(),
			Generator: providers.NewSimulatedTextGenerator(),
		}, func() {}, nil
	}

	if err := c.Validate(); err != nil {
		return pipeline.Deps{}, nil, err
	}

	searcher, err := providers.NewGoogleSearcher(ctx, c.GoogleSearchAPIKey, c.GoogleSearchCX)
	if err != nil {
		return pipeline.Deps{}, nil, fmt.Errorf("initializing search provider: %w", err)
	}

	deps := pipeline.Deps{
		Scraper:  providers.NewWebScraper(c.UseBrowser, c.Verbose),
		Searcher: searcher,
		People:   providers.NewApolloClient(c.ApolloAPIKey),
	}

	cleanup := func() {}
	if c.GeminiAPIKey != "" {
		generator, err := llm.NewGeminiClient(ctx, c.GeminiAPIKey, c.GeminiModel)
		if err != nil {
			fmt.Printf("Warning: Failed to initialize Gemini client: %v\n", err)
			fmt.Printf("Continuing with template-based hooks...\n")
		} else {
			deps.Generator = generator
			cleanup = func() { _ = generator.Close() }
		}
	}

	return deps, cleanup, nil
}
