// Package providers defines the collaborator contracts for the external
// data services the research pipeline depends on, along with live and
// simulated implementations. Business logic only sees these interfaces;
// which implementation backs them is a configuration concern.
package providers

import (
	"context"
	"errors"
)

// ErrNoContent indicates a page was fetched successfully but had no usable
// content. Callers can distinguish it from transport or provider errors.
var ErrNoContent = errors.New("page has no content")

// Page is the scraped representation of a single web page.
type Page struct {
	URL         string `json:"url"`
	Markdown    string `json:"markdown"`
	HTML        string `json:"html,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

// SearchResult is one ranked web search hit.
type SearchResult struct {
	Title   string  `json:"title"`
	URL     string  `json:"url"`
	Content string  `json:"content"`
	Score   float64 `json:"score"`
}

// SearchResponse is the outcome of one search query.
type SearchResponse struct {
	Query   string         `json:"query"`
	Results []SearchResult `json:"results"`
}

// SearchOptions tunes a search call.
type SearchOptions struct {
	MaxResults int
	Depth      string // "basic" or "advanced"
}

// Person is one candidate from the people-search directory.
type Person struct {
	Name         string   `json:"name"`
	Title        string   `json:"title"`
	Email        string   `json:"email,omitempty"`
	LinkedInURL  string   `json:"linkedin_url,omitempty"`
	PhoneNumbers []string `json:"phone_numbers,omitempty"`
}

// PeopleQuery filters a people search to an organization and title list.
type PeopleQuery struct {
	Domain  string
	Titles  []string
	Page    int
	PerPage int
}

// Scraper fetches a web page and returns its rendered text content.
type Scraper interface {
	Scrape(ctx context.Context, url string) (*Page, error)
}

// Searcher runs a keyword web search and returns ranked snippets.
type Searcher interface {
	Search(ctx context.Context, query string, opts SearchOptions) (*SearchResponse, error)
}

// PeopleSearcher looks up people at an organization and verifies emails.
// VerifyEmail is best-effort: it returns false on any provider error and
// never fails the run.
type PeopleSearcher interface {
	SearchPeople(ctx context.Context, q PeopleQuery) ([]Person, error)
	VerifyEmail(ctx context.Context, email string) bool
}

// TextGenerator produces a free-form completion from a system and user prompt.
type TextGenerator interface {
	GenerateText(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
