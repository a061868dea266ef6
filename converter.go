package pagebrief

// Converter converts HTML to Markdown. Used to render extracted page
// content for human inspection (the content preview in the UI and the
// extract command); the summarization path itself works on plain text.
type Converter interface {
	Convert(html string) (string, error)
}
