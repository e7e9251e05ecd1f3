package research

import (
	"context"
	"log"
	"regexp"
	"strings"

	"github.com/jonathan/prospect-researcher/internal/providers"
	"github.com/jonathan/prospect-researcher/internal/types"
)

// maxRawPostings caps how many careers-page lines are treated as postings.
const maxRawPostings = 10

// maxHiringSignals caps the classified signal list.
const maxHiringSignals = 5

// maxPostingLineLen filters out prose lines that merely mention a role.
const maxPostingLineLen = 100

// careersPagePaths are probed in order until one yields content.
var careersPagePaths = []string{"/careers", "/jobs", "/about/careers"}

// jobTitlePattern is a broad net for lines that look like job titles.
var jobTitlePattern = regexp.MustCompile(`(?i)engineer|developer|manager|director|vp|sales|marketing|analyst`)

// HiringSignalDetector crawls likely careers pages and classifies open
// roles into department-level hiring signals.
type HiringSignalDetector struct {
	scraper providers.Scraper
}

// NewHiringSignalDetector creates a hiring signal detector.
func NewHiringSignalDetector(scraper providers.Scraper) *HiringSignalDetector {
	return &HiringSignalDetector{scraper: scraper}
}

// Detect probes careers paths, extracts posting titles, classifies them,
// and deduplicates by department (first seen wins). A collaborator failure
// is non-fatal and yields an empty list.
func (d *HiringSignalDetector) Detect(ctx context.Context, companyURL string) []types.HiringSignal {
	postings := d.crawlForPostings(ctx, companyURL)

	var signals []types.HiringSignal
	for _, posting := range postings {
		if signal, ok := analyzeJobForSignal(posting.title, posting.url); ok {
			signals = append(signals, signal)
		}
	}

	signals = deduplicateByDepartment(signals)
	if len(signals) > maxHiringSignals {
		signals = signals[:maxHiringSignals]
	}
	return signals
}

type jobPosting struct {
	title string
	url   string
}

// crawlForPostings tries each careers path until one yields postings.
func (d *HiringSignalDetector) crawlForPostings(ctx context.Context, companyURL string) []jobPosting {
	base := strings.TrimSuffix(companyURL, "/")

	for _, path := range careersPagePaths {
		pageURL := base + path
		page, err := d.scraper.Scrape(ctx, pageURL)
		if err != nil {
			log.Printf("Hiring signal crawl skipped %s: %v", pageURL, err)
			continue
		}

		var postings []jobPosting
		for _, line := range strings.Split(page.Markdown, "\n") {
			trimmed := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "- "))
			if trimmed == "" || len(line) >= maxPostingLineLen {
				continue
			}
			if jobTitlePattern.MatchString(trimmed) {
				postings = append(postings, jobPosting{title: trimmed, url: pageURL})
			}
			if len(postings) >= maxRawPostings {
				break
			}
		}

		if len(postings) > 0 {
			return postings
		}
	}
	return nil
}

// classificationRule maps title keywords to a department rationale.
// Checked in order: a "VP of Sales" matches the sales rule before the
// leadership rule.
type classificationRule struct {
	keywords []string
	signal   string
}

var classificationRules = []classificationRule{
	{
		keywords: []string{"sales", "revenue", "account executive", "business development"},
		signal:   "Sales team expansion indicates growth and potential budget for sales tools",
	},
	{
		keywords: []string{"engineer", "developer", "software"},
		signal:   "Engineering hiring suggests product development and tech stack growth",
	},
	{
		keywords: []string{"marketing", "growth", "demand gen"},
		signal:   "Marketing expansion indicates go-to-market investment",
	},
	{
		keywords: []string{"vp", "director", "head of", "chief"},
		signal:   "Leadership hire often signals strategic priorities and budget allocation",
	},
	{
		keywords: []string{"operations", "ops", "analyst"},
		signal:   "Ops team growth indicates scaling and process improvement focus",
	},
}

// analyzeJobForSignal classifies one posting title; unmatched titles drop.
func analyzeJobForSignal(title, sourceURL string) (types.HiringSignal, bool) {
	lower := strings.ToLower(title)
	for _, rule := range classificationRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				return types.HiringSignal{
					Role:      title,
					Signal:    rule.signal,
					SourceURL: sourceURL,
				}, true
			}
		}
	}
	return types.HiringSignal{}, false
}

// deduplicateByDepartment keeps the first signal seen per inferred
// department.
func deduplicateByDepartment(signals []types.HiringSignal) []types.HiringSignal {
	seen := make(map[string]bool)
	var unique []types.HiringSignal
	for _, signal := range signals {
		dept := inferDepartment(signal.Role)
		if !seen[dept] {
			seen[dept] = true
			unique = append(unique, signal)
		}
	}
	return unique
}

// inferDepartment buckets a title into a department. Titles that fit no
// bucket stay distinct by using the title itself as the key.
func inferDepartment(title string) string {
	lower := strings.ToLower(title)
	switch {
	case strings.Contains(lower, "sales") || strings.Contains(lower, "revenue"):
		return "sales"
	case strings.Contains(lower, "engineer") || strings.Contains(lower, "developer"):
		return "engineering"
	case strings.Contains(lower, "marketing") || strings.Contains(lower, "growth"):
		return "marketing"
	case strings.Contains(lower, "product"):
		return "product"
	case strings.Contains(lower, "operations") || strings.Contains(lower, "ops"):
		return "operations"
	}
	return title
}
