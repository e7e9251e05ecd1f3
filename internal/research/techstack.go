package research

import (
	"context"
	"log"
	"regexp"
	"strings"

	"github.com/jonathan/prospect-researcher/internal/providers"
	"github.com/jonathan/prospect-researcher/internal/types"
)

// maxTechSignals caps the detected technology list.
const maxTechSignals = 10

// TechStackInferencer detects technologies from a company's website markup
// and content.
type TechStackInferencer struct {
	scraper providers.Scraper
}

// NewTechStackInferencer creates a tech stack inferencer.
func NewTechStackInferencer(scraper providers.Scraper) *TechStackInferencer {
	return &TechStackInferencer{scraper: scraper}
}

// Infer scrapes the company page and fingerprints frontend, backend, and
// cloud technologies, in that detection order. A collaborator failure is
// non-fatal and yields an empty list.
func (t *TechStackInferencer) Infer(ctx context.Context, companyURL string) []types.TechSignal {
	page, err := t.scraper.Scrape(ctx, companyURL)
	if err != nil {
		log.Printf("Tech stack inference error: %v", err)
		return nil
	}

	combined := page.HTML + " " + page.Markdown

	var signals []types.TechSignal
	appendAll := func(detections []detection) {
		for _, d := range detections {
			signals = append(signals, types.TechSignal{
				Tech:       d.name,
				Confidence: d.confidence,
				SourceURL:  companyURL,
			})
		}
	}

	appendAll(detectFrontendTech(page.HTML))
	appendAll(detectBackendTech(combined))
	appendAll(detectCloudProviders(combined))

	if len(signals) > maxTechSignals {
		signals = signals[:maxTechSignals]
	}
	return signals
}

type detection struct {
	name       string
	confidence types.Confidence
}

// detectFrontendTech fingerprints framework markers in raw markup. Bundler
// path markers ("_next") are stronger evidence than the bare keyword, so
// both tiers can fire for the same framework.
func detectFrontendTech(html string) []detection {
	lower := strings.ToLower(html)
	var techs []detection

	if strings.Contains(lower, "react") {
		techs = append(techs, detection{"React", types.ConfidenceHigh})
	}
	if strings.Contains(lower, "vue") {
		techs = append(techs, detection{"Vue.js", types.ConfidenceMedium})
	}
	if strings.Contains(lower, "angular") {
		techs = append(techs, detection{"Angular", types.ConfidenceMedium})
	}
	if strings.Contains(lower, "next") {
		techs = append(techs, detection{"Next.js", types.ConfidenceMedium})
	}
	if strings.Contains(lower, "_next") || strings.Contains(lower, "__next") {
		techs = append(techs, detection{"Next.js", types.ConfidenceHigh})
	}
	if strings.Contains(lower, "gatsby") {
		techs = append(techs, detection{"Gatsby", types.ConfidenceMedium})
	}

	return techs
}

// backendPattern pairs a keyword pattern with its technology and tier.
type backendPattern struct {
	pattern    *regexp.Regexp
	name       string
	confidence types.Confidence
}

var backendPatterns = []backendPattern{
	{regexp.MustCompile(`(?i)\bnode\.?js\b`), "Node.js", types.ConfidenceMedium},
	{regexp.MustCompile(`(?i)\bpython\b`), "Python", types.ConfidenceLow},
	{regexp.MustCompile(`(?i)\bdjango\b`), "Django", types.ConfidenceMedium},
	{regexp.MustCompile(`(?i)\bruby\b.*\brails\b`), "Ruby on Rails", types.ConfidenceMedium},
	{regexp.MustCompile(`(?i)\bpostgres\b`), "PostgreSQL", types.ConfidenceMedium},
	{regexp.MustCompile(`(?i)\bmongo\b`), "MongoDB", types.ConfidenceMedium},
	{regexp.MustCompile(`(?i)\bredis\b`), "Redis", types.ConfidenceLow},
	{regexp.MustCompile(`(?i)\bgraphql\b`), "GraphQL", types.ConfidenceMedium},
	{regexp.MustCompile(`(?i)\bkubernetes\b`), "Kubernetes", types.ConfidenceMedium},
	{regexp.MustCompile(`(?i)\bdocker\b`), "Docker", types.ConfidenceLow},
}

func detectBackendTech(content string) []detection {
	var techs []detection
	for _, bp := range backendPatterns {
		if bp.pattern.MatchString(content) {
			techs = append(techs, detection{bp.name, bp.confidence})
		}
	}
	return techs
}

// cloudRule pairs a cloud provider with its detection keywords.
type cloudRule struct {
	name     string
	keywords []string
}

var cloudRules = []cloudRule{
	{"AWS", []string{"aws", "amazon web services"}},
	{"Azure", []string{"azure", "microsoft cloud"}},
	{"Google Cloud", []string{"google cloud", "gcp"}},
	{"Vercel", []string{"vercel"}},
	{"Netlify", []string{"netlify"}},
}

func detectCloudProviders(content string) []detection {
	lower := strings.ToLower(content)
	var techs []detection
	for _, rule := range cloudRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				techs = append(techs, detection{rule.name, types.ConfidenceMedium})
				break
			}
		}
	}
	return techs
}
