package research

import (
	"context"
	"errors"

	"github.com/jonathan/prospect-researcher/internal/providers"
)

// stubScraper serves canned pages keyed by URL. URLs without an entry fail.
type stubScraper struct {
	pages map[string]*providers.Page
	err   error
}

func (s *stubScraper) Scrape(_ context.Context, url string) (*providers.Page, error) {
	if s.err != nil {
		return nil, s.err
	}
	if page, ok := s.pages[url]; ok {
		return page, nil
	}
	return nil, errors.New("no page for " + url)
}

// stubSearcher returns the same results for every query.
type stubSearcher struct {
	results []providers.SearchResult
	err     error
	queries []string
}

func (s *stubSearcher) Search(_ context.Context, query string, _ providers.SearchOptions) (*providers.SearchResponse, error) {
	s.queries = append(s.queries, query)
	if s.err != nil {
		return nil, s.err
	}
	return &providers.SearchResponse{Query: query, Results: s.results}, nil
}
