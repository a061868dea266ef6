package goquery_test

import (
	"strings"
	"testing"

	"github.com/pagebrief/pagebrief"
	"github.com/pagebrief/pagebrief/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements pagebrief.Extractor at compile time.
var _ pagebrief.Extractor = (*goquery.Extractor)(nil)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("keeps prose and drops boilerplate", func(t *testing.T) {
		t.Parallel()

		rawHTML := `<!DOCTYPE html>
<html>
<head><title>Test Page</title><style>body { color: red }</style></head>
<body>
<nav><a href="/">Home</a><a href="/about">About</a></nav>
<header>Site header</header>
<article>
<h1>The Heading</h1>
<p>First paragraph of actual content.</p>
<p>Second paragraph with <em>emphasis</em> inside.</p>
</article>
<script>console.log("tracking")</script>
<footer>Copyright 2025</footer>
</body>
</html>`

		ext := goquery.NewExtractor()
		text, err := ext.Extract(rawHTML)

		require.NoError(t, err)
		assert.Contains(t, text, "The Heading")
		assert.Contains(t, text, "First paragraph of actual content.")
		assert.Contains(t, text, "emphasis")
		assert.NotContains(t, text, "Home")
		assert.NotContains(t, text, "Site header")
		assert.NotContains(t, text, "console.log")
		assert.NotContains(t, text, "Copyright")
		assert.NotContains(t, text, "color: red")
	})

	t.Run("contains no markup tags", func(t *testing.T) {
		t.Parallel()

		rawHTML := `<html><body><p>Hello <strong>world</strong></p><ul><li>one</li><li>two</li></ul></body></html>`

		ext := goquery.NewExtractor()
		text, err := ext.Extract(rawHTML)

		require.NoError(t, err)
		assert.NotContains(t, text, "<")
		assert.NotContains(t, text, ">")
	})

	t.Run("separates block elements with newlines", func(t *testing.T) {
		t.Parallel()

		rawHTML := `<html><body><p>first block</p><p>second block</p></body></html>`

		ext := goquery.NewExtractor()
		text, err := ext.Extract(rawHTML)

		require.NoError(t, err)
		assert.Equal(t, "first block\nsecond block", text)
	})

	t.Run("drops comments", func(t *testing.T) {
		t.Parallel()

		rawHTML := `<html><body><p>visible</p><!-- hidden comment --></body></html>`

		ext := goquery.NewExtractor()
		text, err := ext.Extract(rawHTML)

		require.NoError(t, err)
		assert.Equal(t, "visible", text)
	})

	t.Run("drops forms", func(t *testing.T) {
		t.Parallel()

		rawHTML := `<html><body><form><input name="q"><button>Search</button></form><p>content</p></body></html>`

		ext := goquery.NewExtractor()
		text, err := ext.Extract(rawHTML)

		require.NoError(t, err)
		assert.Equal(t, "content", text)
	})

	t.Run("collapses whitespace runs", func(t *testing.T) {
		t.Parallel()

		rawHTML := "<html><body><p>lots    of\t\tspace</p>\n\n\n<p>next</p></body></html>"

		ext := goquery.NewExtractor()
		text, err := ext.Extract(rawHTML)

		require.NoError(t, err)
		assert.Equal(t, "lots of space\nnext", text)
		assert.False(t, strings.HasPrefix(text, " "))
		assert.False(t, strings.HasSuffix(text, " "))
	})

	t.Run("page with no prose returns empty text without error", func(t *testing.T) {
		t.Parallel()

		rawHTML := `<html><body><nav>menu</nav><script>var x = 1</script></body></html>`

		ext := goquery.NewExtractor()
		text, err := ext.Extract(rawHTML)

		require.NoError(t, err)
		assert.Empty(t, text)
	})

	t.Run("empty input is an extraction error", func(t *testing.T) {
		t.Parallel()

		ext := goquery.NewExtractor()
		_, err := ext.Extract("   ")

		require.Error(t, err)
		assert.Equal(t, pagebrief.EEXTRACT, pagebrief.ErrorCode(err))
	})

	t.Run("extraction is deterministic", func(t *testing.T) {
		t.Parallel()

		// A page touching every traversal branch: skipped boilerplate,
		// nested blocks, inline elements, and collapsible whitespace.
		rawHTML := `<!DOCTYPE html>
<html>
<head><title>Guide</title><style>p { margin: 0 }</style></head>
<body>
<nav><a href="/">Home</a></nav>
<header>Masthead</header>
<main>
<article>
<h1>Title</h1>
<p>Some   content
here with <em>emphasis</em> and <a href="#x">a link</a>.</p>
<blockquote><p>Quoted words.</p></blockquote>
<ul><li>first item</li><li>second <strong>item</strong></li></ul>
<table><tr><th>k</th><td>v</td></tr></table>
<figure><img src="x.png"><figcaption>A caption</figcaption></figure>
</article>
</main>
<aside>Related links</aside>
<script>track()</script>
<footer>Fine print</footer>
</body>
</html>`

		ext := goquery.NewExtractor()
		first, err := ext.Extract(rawHTML)
		require.NoError(t, err)
		second, err := ext.Extract(rawHTML)
		require.NoError(t, err)

		assert.NotEmpty(t, first)
		assert.Equal(t, first, second)
	})
}
