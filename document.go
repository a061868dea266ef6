package pagebrief

// Document is one web page handed to the pipeline: raw rendered markup plus
// its source URL. Documents are immutable and live for a single invocation.
type Document struct {
	URL  string
	HTML string
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.URL == "" {
		return Errorf(EINVALID, "document URL required")
	}
	if d.HTML == "" {
		return Errorf(EINVALID, "document HTML required")
	}
	return nil
}

// Summary is the final result of one pipeline invocation.
type Summary struct {
	// ID uniquely identifies the invocation that produced this summary.
	ID string

	// URL is the source page.
	URL string

	// Text is the final summary handed to the caller for display.
	Text string

	// ContentHash is the xxhash of the normalized page text, hex-encoded.
	// Identical page content always produces an identical hash.
	ContentHash string

	// Chunks is the number of chunks the page text was split into.
	Chunks int

	// LLMCalls is the number of successful backend calls made.
	LLMCalls int

	// Reduced reports whether a second-level reduce call was needed to
	// bound the output size.
	Reduced bool
}
