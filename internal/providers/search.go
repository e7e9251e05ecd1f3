package providers

import (
	"context"
	"fmt"

	"google.golang.org/api/customsearch/v1"
	"google.golang.org/api/option"
)

// GoogleSearcher implements Searcher over the Google Programmable Search API.
type GoogleSearcher struct {
	svc *customsearch.Service
	cx  string
}

// NewGoogleSearcher creates a searcher bound to a search engine ID (cx).
func NewGoogleSearcher(ctx context.Context, apiKey, cx string) (*GoogleSearcher, error) {
	svc, err := customsearch.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create customsearch service: %w", err)
	}
	return &GoogleSearcher{svc: svc, cx: cx}, nil
}

// Search runs a keyword query and maps the hits to SearchResults.
// The custom search API has no depth notion, so opts.Depth is ignored.
func (g *GoogleSearcher) Search(ctx context.Context, query string, opts SearchOptions) (*SearchResponse, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 || maxResults > 10 {
		maxResults = 5
	}

	resp, err := g.svc.Cse.List().Context(ctx).Cx(g.cx).Q(query).Num(int64(maxResults)).Do()
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	results := make([]SearchResult, 0, len(resp.Items))
	for i, item := range resp.Items {
		results = append(results, SearchResult{
			Title:   item.Title,
			URL:     item.Link,
			Content: item.Snippet,
			// The API returns rank order without scores; synthesize a
			// descending score so downstream ordering is explicit.
			Score: 1.0 - float64(i)*0.05,
		})
	}

	return &SearchResponse{Query: query, Results: results}, nil
}
