package research

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/jonathan/prospect-researcher/internal/providers"
	"github.com/jonathan/prospect-researcher/internal/types"
)

// initiativeTitleMaxLen caps an initiative title.
const initiativeTitleMaxLen = 150

// initiativeMinSnippetLen is the minimum snippet length for a keyword-less
// news item to still count as an initiative.
const initiativeMinSnippetLen = 200

// maxNewsResults is how many search hits are considered per run.
const maxNewsResults = 5

// InitiativeExtractor classifies recent company news into strategic
// initiatives.
type InitiativeExtractor struct {
	searcher providers.Searcher
}

// NewInitiativeExtractor creates an initiative extractor.
func NewInitiativeExtractor(searcher providers.Searcher) *InitiativeExtractor {
	return &InitiativeExtractor{searcher: searcher}
}

// initiativeRule maps a news keyword to its fixed sales rationale.
// Order matters: the first matching keyword wins.
type initiativeRule struct {
	keyword string
	why     string
}

var initiativeRules = []initiativeRule{
	{"funding", "Recent funding indicates growth plans and increased budget"},
	{"series", "Investment round suggests expansion and hiring"},
	{"launch", "New product launch shows innovation and market expansion"},
	{"partnership", "Strategic partnership indicates new market or capability"},
	{"acquisition", "Acquisition shows growth strategy and integration needs"},
	{"expansion", "Geographic or market expansion creates new opportunities"},
	{"hiring", "Hiring surge indicates growth and potential budget"},
	{"new feature", "Feature development shows product investment"},
	{"new hire", "Leadership hire often signals strategic shift"},
	{"executive", "Executive changes can create new buying opportunities"},
}

// genericRationale applies to substantive news with no classified keyword.
const genericRationale = "Recent company activity that may indicate strategic priorities"

// Extract searches recent news for the company and classifies the top
// results. A collaborator failure is non-fatal and yields an empty list.
func (e *InitiativeExtractor) Extract(ctx context.Context, companyName string) []types.Initiative {
	query := fmt.Sprintf("%s recent news funding launches", companyName)
	resp, err := e.searcher.Search(ctx, query, providers.SearchOptions{MaxResults: maxNewsResults, Depth: "basic"})
	if err != nil {
		log.Printf("Initiative extraction error: %v", err)
		return nil
	}

	var initiatives []types.Initiative
	for i, result := range resp.Results {
		if i >= maxNewsResults {
			break
		}
		if initiative, ok := analyzeForInitiative(result.Title, result.Content, result.URL); ok {
			initiatives = append(initiatives, initiative)
		}
	}
	return initiatives
}

// analyzeForInitiative classifies one news item. Keyword-less snippets under
// the substance threshold are dropped.
func analyzeForInitiative(title, content, sourceURL string) (types.Initiative, bool) {
	combined := strings.ToLower(title + " " + content)

	for _, rule := range initiativeRules {
		if strings.Contains(combined, rule.keyword) {
			return types.Initiative{
				Title:        truncate(title, initiativeTitleMaxLen),
				WhyItMatters: rule.why,
				SourceURL:    sourceURL,
			}, true
		}
	}

	if len(content) > initiativeMinSnippetLen {
		return types.Initiative{
			Title:        truncate(title, initiativeTitleMaxLen),
			WhyItMatters: genericRationale,
			SourceURL:    sourceURL,
		}, true
	}

	return types.Initiative{}, false
}
