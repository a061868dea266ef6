package pagebrief

import "context"

// Fetcher retrieves rendered HTML from URLs. It is an external collaborator
// of the pipeline: implementations may use browser automation to handle
// JavaScript-rendered content, or plain HTTP for static pages.
type Fetcher interface {
	// Fetch navigates to the URL and returns the rendered HTML.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases underlying resources (e.g. a browser process).
	Close() error
}
