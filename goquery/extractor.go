// Package goquery provides the default pagebrief.Extractor. It parses the
// markup into a node tree, drops node kinds that never carry readable
// content, and flattens the rest to whitespace-normalized plain text.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pagebrief/pagebrief"
	"golang.org/x/net/html"
)

// Ensure Extractor implements pagebrief.Extractor at compile time.
var _ pagebrief.Extractor = (*Extractor)(nil)

// skipped are element kinds removed wholesale: they never contain prose.
var skipped = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"template": true,
	"head":     true,
	"nav":      true,
	"header":   true,
	"footer":   true,
	"aside":    true,
	"form":     true,
	"button":   true,
	"select":   true,
	"option":   true,
	"label":    true,
	"iframe":   true,
	"object":   true,
	"svg":      true,
	"canvas":   true,
	"audio":    true,
	"video":    true,
}

// blocks are element kinds whose text is separated from neighbors by a
// newline. Everything else is treated as inline and joined by a space.
var blocks = map[string]bool{
	"address":    true,
	"article":    true,
	"blockquote": true,
	"br":         true,
	"caption":    true,
	"dd":         true,
	"div":        true,
	"dl":         true,
	"dt":         true,
	"figcaption": true,
	"figure":     true,
	"h1":         true,
	"h2":         true,
	"h3":         true,
	"h4":         true,
	"h5":         true,
	"h6":         true,
	"hr":         true,
	"li":         true,
	"main":       true,
	"ol":         true,
	"p":          true,
	"pre":        true,
	"section":    true,
	"table":      true,
	"td":         true,
	"th":         true,
	"tr":         true,
	"ul":         true,
}

// Extractor flattens HTML to readable plain text.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses the markup and returns its readable text in document
// order. A parseable page with no prose returns "" and a nil error.
func (e *Extractor) Extract(rawHTML string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", pagebrief.Errorf(pagebrief.EEXTRACT, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return "", pagebrief.Errorf(pagebrief.EEXTRACT, "failed to parse HTML: %v", err)
	}

	body := doc.Find("body")
	if body.Length() == 0 {
		return "", nil
	}

	var sb strings.Builder
	for _, n := range body.Nodes {
		flatten(n, &sb)
	}

	return pagebrief.NormalizeWhitespace(sb.String()), nil
}

// flatten walks the node tree in document order, writing text nodes and
// separators into sb. Comments and skipped elements contribute nothing.
func flatten(n *html.Node, sb *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		sb.WriteString(n.Data)
		return
	case html.CommentNode, html.DoctypeNode:
		return
	case html.ElementNode:
		if skipped[n.Data] {
			return
		}
	}

	block := n.Type == html.ElementNode && blocks[n.Data]
	if block {
		sb.WriteByte('\n')
	} else if n.Type == html.ElementNode {
		sb.WriteByte(' ')
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		flatten(c, sb)
	}

	if block {
		sb.WriteByte('\n')
	}
}
