package jobtailor

// Article holds the main content extracted from an HTML page.
type Article struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML.
	// Boilerplate (nav, footer, sidebar, ads) has been removed.
	ContentHTML string
}

// ArticleExtractor extracts main content from HTML pages, removing
// boilerplate. The full-page extraction fallback uses it to narrow a whole
// document before section scanning.
type ArticleExtractor interface {
	Extract(html string) (*Article, error)
}

// ArticleExtractors tries each extractor in order and returns the first
// result with content. Job boards defeat individual boilerplate removers
// often enough that the full-page pass runs a chain instead of one.
type ArticleExtractors []ArticleExtractor

// Extract implements ArticleExtractor.
func (e ArticleExtractors) Extract(html string) (*Article, error) {
	var firstErr error
	for _, extractor := range e {
		article, err := extractor.Extract(html)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if article != nil && article.ContentHTML != "" {
			return article, nil
		}
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return nil, Errorf(ENOTFOUND, "no main content found")
}
