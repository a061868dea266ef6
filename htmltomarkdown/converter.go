// Package htmltomarkdown provides a pagebrief.Converter that renders a
// fetched page as Markdown for the content preview.
package htmltomarkdown

import (
	"regexp"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/PuerkitoBio/goquery"
	"github.com/pagebrief/pagebrief"
)

// Ensure Converter implements pagebrief.Converter at compile time.
var _ pagebrief.Converter = (*Converter)(nil)

// chrome matches the page furniture that has no place in a reading view.
const chrome = "script, style, nav, header, footer, aside, form, iframe, noscript, button, svg"

// blankRuns matches three or more consecutive newlines left behind by
// removed elements.
var blankRuns = regexp.MustCompile(`\n{3,}`)

// Converter renders whole pages as Markdown. Unlike a generic HTML
// converter it receives raw fetched pages, so it strips non-content
// elements before converting and compacts the result for display in a
// terminal viewport.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms a fetched page into preview Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", pagebrief.Errorf(pagebrief.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", pagebrief.Errorf(pagebrief.EEXTRACT, "parse HTML: %v", err)
	}
	doc.Find(chrome).Remove()

	cleaned, err := doc.Html()
	if err != nil {
		return "", pagebrief.Errorf(pagebrief.EEXTRACT, "serialize HTML: %v", err)
	}

	markdown, err := c.conv.ConvertString(cleaned)
	if err != nil {
		return "", err
	}

	markdown = blankRuns.ReplaceAllString(markdown, "\n\n")
	return strings.TrimSpace(markdown), nil
}
