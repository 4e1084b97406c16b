package readability

import (
	"strings"

	"github.com/fwojciec/jobtailor"
	"github.com/go-shiori/go-readability"
)

// Extractor wraps go-readability to pull the main content region out of a
// job-posting page before full-page analysis.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*jobtailor.Article, error) {
	if rawHTML == "" {
		return nil, jobtailor.Errorf(jobtailor.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &jobtailor.Article{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
