package mock

import "github.com/fwojciec/jobtailor"

var _ jobtailor.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of jobtailor.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*jobtailor.Extraction, error)
}

func (e *Extractor) Extract(html string) (*jobtailor.Extraction, error) {
	return e.ExtractFn(html)
}

var _ jobtailor.ArticleExtractor = (*ArticleExtractor)(nil)

// ArticleExtractor is a mock implementation of jobtailor.ArticleExtractor.
type ArticleExtractor struct {
	ExtractFn func(html string) (*jobtailor.Article, error)
}

func (e *ArticleExtractor) Extract(html string) (*jobtailor.Article, error) {
	return e.ExtractFn(html)
}
