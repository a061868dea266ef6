package pagebrief

// Extractor turns raw HTML markup into normalized plain text.
type Extractor interface {
	// Extract parses the markup, drops non-content nodes (scripts, styles,
	// navigation, forms, comments), and returns the remaining text in
	// document order with whitespace collapsed. A page with no readable
	// prose returns "" with a nil error; the pipeline turns that into a
	// user-visible no-content condition. Unparseable markup returns
	// EEXTRACT.
	Extract(html string) (string, error)
}
