package providers

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/prospect-researcher/internal/fetch"
)

// The simulated providers are deterministic: the same inputs always produce
// the same outputs. Tests of the fallback paths rely on this.

// findFixtureCompany matches a domain against the fixture set, falling back
// to the first fixture so every URL resolves to something.
func findFixtureCompany(domain string) fixtureCompany {
	for _, c := range fixtureCompanies {
		if strings.Contains(domain, c.Domain) {
			return c
		}
	}
	return fixtureCompanies[0]
}

// SimulatedScraper implements Scraper from fixture data.
type SimulatedScraper struct{}

// NewSimulatedScraper creates a fixture-backed scraper.
func NewSimulatedScraper() *SimulatedScraper {
	return &SimulatedScraper{}
}

// careersPaths mirrors the paths the hiring detector probes.
var careersPaths = []string{"/careers", "/jobs", "/about/careers"}

// Scrape returns the fixture page for the URL's domain. Careers-style paths
// yield a job listing page; everything else yields the company home page.
func (s *SimulatedScraper) Scrape(_ context.Context, url string) (*Page, error) {
	domain := fetch.ExtractDomain(url)
	company := findFixtureCompany(domain)

	for _, path := range careersPaths {
		if strings.HasSuffix(url, path) {
			return &Page{
				URL:      url,
				Markdown: careersMarkdown(company),
				Title:    company.Name + " - Careers",
			}, nil
		}
	}

	html := fmt.Sprintf("<html><body><h1>%s</h1><p>%s</p><p>Built with %s</p></body></html>",
		company.Name, company.Summary, strings.Join(company.TechStack, ", "))
	return &Page{
		URL:         url,
		Markdown:    company.Markdown,
		HTML:        html,
		Title:       company.Name + " - " + company.Industry,
		Description: company.Summary,
	}, nil
}

func careersMarkdown(company fixtureCompany) string {
	var sb strings.Builder
	sb.WriteString("# Careers at " + company.Name + "\n\nOpen positions:\n")
	for _, title := range company.JobTitles {
		sb.WriteString("- " + title + "\n")
	}
	return sb.String()
}

// SimulatedSearcher implements Searcher from fixture data.
type SimulatedSearcher struct{}

// NewSimulatedSearcher creates a fixture-backed searcher.
func NewSimulatedSearcher() *SimulatedSearcher {
	return &SimulatedSearcher{}
}

// Search returns canned news results for news-style queries and canned
// company-overview results otherwise. The company name is taken as the
// query text before the first query keyword.
func (s *SimulatedSearcher) Search(_ context.Context, query string, opts SearchOptions) (*SearchResponse, error) {
	companyName := companyNameFromQuery(query)
	company := fixtureCompanies[0]
	for _, c := range fixtureCompanies {
		if strings.Contains(strings.ToLower(companyName), strings.ToLower(c.Name)) {
			company = c
			break
		}
	}

	var results []SearchResult
	if strings.Contains(query, "news") {
		for i, story := range fixtureNewsStories {
			results = append(results, SearchResult{
				Title:   fmt.Sprintf(story.Title, companyName),
				URL:     fmt.Sprintf("https://commercialobserver.com/%s-%s-%d", slugify(companyName), story.Category, i+1),
				Content: fmt.Sprintf(story.Content, companyName),
				Score:   0.9 - float64(i)*0.05,
			})
		}
	} else {
		results = []SearchResult{
			{
				Title:   companyName + " - Company Overview",
				URL:     company.URL,
				Content: company.Summary,
				Score:   0.95,
			},
			{
				Title:   "About " + companyName + " | " + company.Industry,
				URL:     company.URL + "/about",
				Content: companyName + " provides comprehensive commercial real estate services including acquisitions, asset management, and investment advisory. The company has a proven track record of value creation through strategic investments.",
				Score:   0.88,
			},
			{
				Title:   companyName + " - Investment Philosophy",
				URL:     company.URL + "/approach",
				Content: "Our investment approach focuses on identifying high-quality assets in growing markets with strong fundamentals.",
				Score:   0.82,
			},
		}
	}

	if opts.MaxResults > 0 && len(results) > opts.MaxResults {
		results = results[:opts.MaxResults]
	}
	return &SearchResponse{Query: query, Results: results}, nil
}

func companyNameFromQuery(query string) string {
	for _, marker := range []string{" company overview", " recent news"} {
		if idx := strings.Index(query, marker); idx > 0 {
			return query[:idx]
		}
	}
	if idx := strings.Index(query, " "); idx > 0 {
		return query[:idx]
	}
	return query
}

func slugify(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), " ", "-")
}

// SimulatedPeopleSearcher implements PeopleSearcher from fixture data.
// Every generated email verifies successfully.
type SimulatedPeopleSearcher struct{}

// NewSimulatedPeopleSearcher creates a fixture-backed people searcher.
func NewSimulatedPeopleSearcher() *SimulatedPeopleSearcher {
	return &SimulatedPeopleSearcher{}
}

// SearchPeople returns up to PerPage contacts built from the fixture
// templates, assigned the requested titles round-robin.
func (s *SimulatedPeopleSearcher) SearchPeople(_ context.Context, q PeopleQuery) ([]Person, error) {
	if len(q.Titles) == 0 {
		return nil, nil
	}
	count := q.PerPage
	if count <= 0 || count > len(fixtureContacts) {
		count = 3
	}

	people := make([]Person, 0, count)
	for i := 0; i < count; i++ {
		template := fixtureContacts[i%len(fixtureContacts)]
		title := q.Titles[i%len(q.Titles)]
		first := strings.ToLower(template.FirstName)
		last := strings.ToLower(template.LastName)
		people = append(people, Person{
			Name:         template.FirstName + " " + template.LastName,
			Title:        title,
			Email:        fmt.Sprintf("%c%s@%s", first[0], last, q.Domain),
			LinkedInURL:  fmt.Sprintf("https://linkedin.com/in/%s-%s-cre", first, last),
			PhoneNumbers: []string{fmt.Sprintf("+1 (212) 555-01%02d", i)},
		})
	}
	return people, nil
}

// VerifyEmail always verifies fixture emails.
func (s *SimulatedPeopleSearcher) VerifyEmail(_ context.Context, _ string) bool {
	return true
}

// SimulatedTextGenerator implements TextGenerator with a canned
// numbered-hooks completion.
type SimulatedTextGenerator struct{}

// NewSimulatedTextGenerator creates the canned-response generator.
func NewSimulatedTextGenerator() *SimulatedTextGenerator {
	return &SimulatedTextGenerator{}
}

// GenerateText returns the canned hooks response regardless of prompts.
func (s *SimulatedTextGenerator) GenerateText(_ context.Context, _, _ string) (string, error) {
	return fixtureHooksResponse, nil
}
