package providers

import (
	"context"
	"strings"

	"github.com/jonathan/prospect-researcher/internal/fetch"
)

// WebScraper implements Scraper with a plain HTTP fetch and an optional
// headless-browser fallback for JavaScript-rendered pages.
type WebScraper struct {
	UseBrowser bool
	Verbose    bool
}

// NewWebScraper creates a scraper. When useBrowser is set, pages whose
// extracted text is too short are re-rendered in a headless browser.
func NewWebScraper(useBrowser, verbose bool) *WebScraper {
	return &WebScraper{UseBrowser: useBrowser, Verbose: verbose}
}

// Scrape fetches a URL and converts it to markdown. A page that fetches
// cleanly but yields no text returns ErrNoContent so callers can tell it
// apart from transport failures.
func (s *WebScraper) Scrape(ctx context.Context, url string) (*Page, error) {
	result, err := fetch.URL(ctx, url, nil)
	if err != nil {
		return nil, err
	}

	html := result.HTML
	markdown, err := fetch.ToMarkdown(html)
	if err != nil {
		return nil, &fetch.Error{URL: url, Message: "content extraction failed", Cause: err}
	}

	if s.UseBrowser && fetch.ShouldUseBrowser(markdown) {
		rendered, berr := fetch.BrowserSimple(ctx, url, s.Verbose)
		if berr == nil {
			if md, merr := fetch.ToMarkdown(rendered); merr == nil && len(md) > len(markdown) {
				html = rendered
				markdown = md
			}
		}
	}

	if strings.TrimSpace(markdown) == "" {
		return nil, ErrNoContent
	}

	title, description := fetch.ExtractMetadata(html)
	return &Page{
		URL:         result.URL,
		Markdown:    markdown,
		HTML:        html,
		Title:       title,
		Description: description,
	}, nil
}
