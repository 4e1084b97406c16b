package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/jobtailor"
	"github.com/fwojciec/jobtailor/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Converter implements jobtailor.Converter at compile time.
var _ jobtailor.Converter = (*htmltomarkdown.Converter)(nil)

func TestConverter_RejectsEmptyInput(t *testing.T) {
	t.Parallel()

	c := htmltomarkdown.NewConverter()
	_, err := c.Convert("   ")

	require.Error(t, err)
	assert.Equal(t, jobtailor.EINVALID, jobtailor.ErrorCode(err))
}

func TestConverter_ConvertsPostingStructure(t *testing.T) {
	t.Parallel()

	html := `<div>
<h2>Responsibilities</h2>
<ul>
<li>Design backend services</li>
<li>Review code</li>
</ul>
<p>Requirements: <strong>5+ years</strong> of experience.</p>
</div>`

	c := htmltomarkdown.NewConverter()
	md, err := c.Convert(html)

	require.NoError(t, err)
	assert.Contains(t, md, "## Responsibilities")
	assert.Contains(t, md, "- Design backend services")
	assert.Contains(t, md, "**5+ years**")
}
