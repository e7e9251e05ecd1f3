// Package research provides the signal extractors that turn raw provider
// output into typed research facts: company profile, strategic initiatives,
// tech stack, and hiring signals.
package research

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/prospect-researcher/internal/fetch"
	"github.com/jonathan/prospect-researcher/internal/providers"
	"github.com/jonathan/prospect-researcher/internal/types"
)

// summaryMaxLen caps the extracted company summary.
const summaryMaxLen = 300

// summaryMinLineLen is the minimum markdown line length considered a
// meaningful summary sentence.
const summaryMinLineLen = 50

// Profiler extracts a company's identity facts from its website and a
// topical web search.
type Profiler struct {
	scraper  providers.Scraper
	searcher providers.Searcher
}

// NewProfiler creates a company profiler.
func NewProfiler(scraper providers.Scraper, searcher providers.Searcher) *Profiler {
	return &Profiler{scraper: scraper, searcher: searcher}
}

// Profile scrapes the company URL, searches for company information, and
// assembles a CompanyProfile. A failure of either collaborator is fatal:
// nothing downstream is meaningful without a profile.
func (p *Profiler) Profile(ctx context.Context, companyURL string) (*types.CompanyProfile, error) {
	page, err := p.scraper.Scrape(ctx, companyURL)
	if err != nil {
		return nil, fmt.Errorf("failed to scrape company website: %w", err)
	}

	name := fetch.ExtractCompanyFromURL(companyURL)
	if name == "" {
		name = companyURL
	}

	query := fmt.Sprintf("%s company overview products services", name)
	search, err := p.searcher.Search(ctx, query, providers.SearchOptions{MaxResults: 5, Depth: "advanced"})
	if err != nil {
		return nil, fmt.Errorf("failed to search company info: %w", err)
	}

	evidence := []string{page.URL}
	for i, r := range search.Results {
		if i >= 3 {
			break
		}
		evidence = append(evidence, r.URL)
	}

	return &types.CompanyProfile{
		Name:         name,
		URL:          companyURL,
		Summary:      extractSummary(page.Markdown, search.Results),
		Industry:     extractIndustry(page.Markdown, search.Results),
		SizeEstimate: extractSizeEstimate(page.Markdown, search.Results),
		Evidence:     evidence,
	}, nil
}

// extractSummary picks the first substantive markdown line, falling back to
// the first search snippet, then to a fixed placeholder.
func extractSummary(markdown string, results []providers.SearchResult) string {
	for _, line := range strings.Split(markdown, "\n") {
		if len(strings.TrimSpace(line)) > summaryMinLineLen {
			return truncate(line, summaryMaxLen)
		}
	}
	if len(results) > 0 {
		return truncate(results[0].Content, summaryMaxLen)
	}
	return "No summary available"
}

// industryRule pairs an industry label with its detection keywords.
// Order matters: the first label with any matching keyword wins.
type industryRule struct {
	label    string
	keywords []string
}

var industryRules = []industryRule{
	{"Technology", []string{"software", "saas", "platform", "api", "cloud", "ai", "machine learning"}},
	{"SaaS", []string{"saas", "subscription", "cloud-based", "software as a service"}},
	{"Financial Services", []string{"fintech", "banking", "finance", "payment", "lending", "investment"}},
	{"E-commerce", []string{"ecommerce", "e-commerce", "online store", "marketplace", "retail"}},
	{"Healthcare", []string{"health", "medical", "healthcare", "hospital", "patient"}},
	{"Education", []string{"education", "learning", "school", "university", "training"}},
}

// extractIndustry scans combined page and snippet text against the ordered
// keyword table. "Technology" is the deliberate default when nothing matches.
func extractIndustry(markdown string, results []providers.SearchResult) string {
	lowerText := strings.ToLower(combineText(markdown, results))
	for _, rule := range industryRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lowerText, keyword) {
				return rule.label
			}
		}
	}
	return "Technology"
}

var employeePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+)\+?\s*employees?`),
	regexp.MustCompile(`(?i)team\s+of\s+(\d+)`),
	regexp.MustCompile(`(?i)(\d+)\s*people`),
}

var (
	startupCue    = regexp.MustCompile(`(?i)startup|early.?stage`)
	enterpriseCue = regexp.MustCompile(`(?i)enterprise|fortune|large.?company`)
)

// extractSizeEstimate buckets the first numeric employee-count mention, then
// falls back to textual cues, then to "Unknown".
func extractSizeEstimate(markdown string, results []providers.SearchResult) string {
	combined := combineText(markdown, results)

	for _, pattern := range employeePatterns {
		match := pattern.FindStringSubmatch(combined)
		if len(match) > 1 {
			count := 0
			fmt.Sscanf(match[1], "%d", &count)
			switch {
			case count < 50:
				return "1-50 employees"
			case count < 200:
				return "50-200 employees"
			case count < 1000:
				return "200-1000 employees"
			case count < 5000:
				return "1000-5000 employees"
			default:
				return "5000+ employees"
			}
		}
	}

	if startupCue.MatchString(combined) {
		return "1-50 employees"
	}
	if enterpriseCue.MatchString(combined) {
		return "1000+ employees"
	}
	return "Unknown"
}

func combineText(markdown string, results []providers.SearchResult) string {
	var sb strings.Builder
	sb.WriteString(markdown)
	for _, r := range results {
		sb.WriteString(" ")
		sb.WriteString(r.Content)
	}
	return sb.String()
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}
