package fetch

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// whitespaceRegex collapses runs of spaces and tabs inside a line.
var whitespaceRegex = regexp.MustCompile(`[ \t]+`)

// ToMarkdown parses HTML and renders the main content as lightweight
// markdown: headings become "#"-prefixed lines, paragraphs and list items
// become plain lines. Navigation, scripts, and other noise elements are
// removed first.
func ToMarkdown(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("nav, footer, header, script, style, noscript, .ad, .advertisement, .ads, .sidebar, .cookie-banner, .popup").Remove()

	root := doc.Find("main, article").First()
	if root.Length() == 0 {
		root = doc.Find("body")
	}

	var lines []string
	root.Find("h1, h2, h3, h4, h5, h6, p, li").Each(func(_ int, s *goquery.Selection) {
		text := cleanLine(s.Text())
		if text == "" {
			return
		}
		switch goquery.NodeName(s) {
		case "h1":
			lines = append(lines, "# "+text)
		case "h2":
			lines = append(lines, "## "+text)
		case "h3", "h4", "h5", "h6":
			lines = append(lines, "### "+text)
		case "li":
			lines = append(lines, "- "+text)
		default:
			lines = append(lines, text)
		}
	})

	// Pages without block structure still yield their bare text.
	if len(lines) == 0 {
		if text := cleanLine(root.Text()); text != "" {
			lines = append(lines, text)
		}
	}

	return strings.Join(lines, "\n"), nil
}

// ExtractMetadata pulls the document title and meta description from HTML.
func ExtractMetadata(html string) (title, description string) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", ""
	}
	title = cleanLine(doc.Find("title").First().Text())
	description, _ = doc.Find(`meta[name="description"]`).First().Attr("content")
	return title, cleanLine(description)
}

func cleanLine(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = whitespaceRegex.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
