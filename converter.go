package jobtailor

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input should be a cleaned content region; the output keeps
	// list and heading structure for the LLM prompt.
	Convert(html string) (string, error)
}
