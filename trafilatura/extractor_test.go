package trafilatura_test

import (
	"testing"

	"github.com/fwojciec/jobtailor"
	"github.com/fwojciec/jobtailor/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements jobtailor.ArticleExtractor at compile time.
var _ jobtailor.ArticleExtractor = (*trafilatura.Extractor)(nil)

func TestExtractor_RejectsEmptyInput(t *testing.T) {
	t.Parallel()

	ext := trafilatura.NewExtractor()
	_, err := ext.Extract("")

	require.Error(t, err)
	assert.Equal(t, jobtailor.EINVALID, jobtailor.ErrorCode(err))
}

func TestExtractor_KeepsPostingContent(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Backend Engineer - Acme</title></head>
<body>
<nav><a href="/jobs">All openings</a><a href="/about">About Acme</a></nav>
<main>
<h1>Backend Engineer</h1>
<p>Responsibilities include designing and operating backend services in Go.</p>
<p>Requirements: five years of production experience with distributed systems.</p>
</main>
<footer><p>Footer copyright text 2026</p></footer>
</body>
</html>`

	ext := trafilatura.NewExtractor()
	article, err := ext.Extract(html)

	require.NoError(t, err)
	assert.Contains(t, article.ContentHTML, "Responsibilities include designing")
	assert.Contains(t, article.ContentHTML, "distributed systems")
	assert.NotContains(t, article.ContentHTML, "Footer copyright text")
}
