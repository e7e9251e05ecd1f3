package fetch

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMarkdown_Headings(t *testing.T) {
	html := `<html><body>
		<h1>Acme</h1>
		<h2>Products</h2>
		<h3>Widgets</h3>
		<p>We build widgets for enterprises.</p>
		<ul><li>Fast</li><li>Reliable</li></ul>
	</body></html>`

	md, err := ToMarkdown(html)
	require.NoError(t, err)

	assert.Contains(t, md, "# Acme")
	assert.Contains(t, md, "## Products")
	assert.Contains(t, md, "### Widgets")
	assert.Contains(t, md, "We build widgets for enterprises.")
	assert.Contains(t, md, "- Fast")
	assert.Contains(t, md, "- Reliable")
}

func TestToMarkdown_RemovesNoise(t *testing.T) {
	html := `<html><body>
		<nav><a href="/">Home</a><a href="/pricing">Pricing</a></nav>
		<main><p>Real content here.</p></main>
		<footer>Copyright Acme</footer>
		<script>var x = 1;</script>
	</body></html>`

	md, err := ToMarkdown(html)
	require.NoError(t, err)

	assert.Contains(t, md, "Real content here.")
	assert.NotContains(t, md, "Pricing")
	assert.NotContains(t, md, "Copyright")
	assert.NotContains(t, md, "var x")
}

func TestToMarkdown_PrefersMainContent(t *testing.T) {
	html := `<html><body>
		<div><p>Outside content</p></div>
		<main><p>Inside main</p></main>
	</body></html>`

	md, err := ToMarkdown(html)
	require.NoError(t, err)

	assert.Contains(t, md, "Inside main")
	assert.NotContains(t, md, "Outside content")
}

func TestToMarkdown_BareTextFallback(t *testing.T) {
	html := `<html><body>Just some loose text with no block tags</body></html>`

	md, err := ToMarkdown(html)
	require.NoError(t, err)
	assert.Contains(t, md, "Just some loose text")
}

func TestToMarkdown_CollapsesWhitespace(t *testing.T) {
	html := "<html><body><p>spaced \t out\n text</p></body></html>"

	md, err := ToMarkdown(html)
	require.NoError(t, err)

	for _, line := range strings.Split(md, "\n") {
		assert.NotContains(t, line, "  ", "runs of spaces should be collapsed")
	}
}

func TestExtractMetadata(t *testing.T) {
	html := `<html><head>
		<title>Acme - Widgets</title>
		<meta name="description" content="Acme builds widgets.">
	</head><body></body></html>`

	title, description := ExtractMetadata(html)
	assert.Equal(t, "Acme - Widgets", title)
	assert.Equal(t, "Acme builds widgets.", description)
}

func TestExtractMetadata_Missing(t *testing.T) {
	title, description := ExtractMetadata("<html><body></body></html>")
	assert.Empty(t, title)
	assert.Empty(t, description)
}
