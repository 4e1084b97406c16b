package jobtailor_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/jobtailor"
	"github.com/stretchr/testify/assert"
)

func TestExtractJobSection_NoTrigger(t *testing.T) {
	t.Parallel()

	text := "Welcome to our blog\nGardening tips for spring\nHow to plant tomatoes"

	got := jobtailor.ExtractJobSection(text, jobtailor.DefaultSectionConfig())

	assert.Empty(t, got)
}

func TestExtractJobSection_AccumulatesMatchingLines(t *testing.T) {
	t.Parallel()

	text := strings.Join([]string{
		"About our company",
		"Responsibilities:",
		"• Build and maintain services",
		"• Review code from the team",
		"Strong communication skills",
		"Unrelated footer text",
	}, "\n")

	got := jobtailor.ExtractJobSection(text, jobtailor.DefaultSectionConfig())

	assert.Contains(t, got, "Responsibilities:")
	assert.Contains(t, got, "Build and maintain services")
	assert.Contains(t, got, "communication skills")
	assert.NotContains(t, got, "About our company")
	assert.NotContains(t, got, "Unrelated footer text")
}

func TestExtractJobSection_StopsAfterMissRun(t *testing.T) {
	t.Parallel()

	lines := []string{"Requirements:", "5 years of experience in the role"}
	for i := 0; i < 12; i++ {
		lines = append(lines, "plain unrelated filler line")
	}
	lines = append(lines, "skills that should never appear")

	got := jobtailor.ExtractJobSection(strings.Join(lines, "\n"), jobtailor.DefaultSectionConfig())

	assert.Contains(t, got, "Requirements:")
	assert.Contains(t, got, "5 years of experience")
	assert.NotContains(t, got, "filler")
	assert.NotContains(t, got, "never appear")
}

func TestExtractJobSection_LaterTriggerRestartsSection(t *testing.T) {
	t.Parallel()

	text := strings.Join([]string{
		"Responsibilities:",
		"Work on the product",
		"Qualifications:",
		"Experience with distributed systems",
	}, "\n")

	got := jobtailor.ExtractJobSection(text, jobtailor.DefaultSectionConfig())

	assert.True(t, strings.HasPrefix(got, "Qualifications:"))
	assert.Contains(t, got, "distributed systems")
	assert.NotContains(t, got, "Responsibilities:")
}
