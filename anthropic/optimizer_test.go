package anthropic_test

import (
	"testing"

	"github.com/fwojciec/jobtailor"
	"github.com/fwojciec/jobtailor/anthropic"
	"github.com/stretchr/testify/assert"
)

// Ensure Optimizer implements jobtailor.Optimizer at compile time.
var _ jobtailor.Optimizer = (*anthropic.Optimizer)(nil)

const jobDescription = `Senior Backend Engineer. We use Go, PostgreSQL and Kubernetes.
Responsibilities include code review and mentoring. Requires 7+ years of experience.`

const template = `\documentclass{article}
\begin{document}
% Summary
A backend engineer.
% Technical Skills
Go, SQL
% Experience
\resumeSubheading{Acme}{2020}
Built services.
% Projects
Side projects.
\end{document}`

func TestBuildEfficientPrompt(t *testing.T) {
	t.Parallel()

	analysis := jobtailor.AnalyzeJobRequirements(jobDescription)
	prompt := anthropic.BuildEfficientPrompt(analysis, jobDescription, template)

	assert.Contains(t, prompt, "JOB DESCRIPTION:\n"+jobDescription)
	assert.Contains(t, prompt, "CURRENT RESUME TEMPLATE:\n"+template)
	assert.Contains(t, prompt, "- Experience Level: senior")
	assert.Contains(t, prompt, "go")
	assert.Contains(t, prompt, "Output ONLY the complete optimized LaTeX code")
}

func TestBuildSectionsPrompt(t *testing.T) {
	t.Parallel()

	analysis := jobtailor.AnalyzeJobRequirements(jobDescription)
	sections := jobtailor.ExtractResumeSections(template)
	prompt := anthropic.BuildSectionsPrompt(analysis, jobDescription, sections)

	assert.Contains(t, prompt, "A backend engineer.")
	assert.Contains(t, prompt, "Go, SQL")
	assert.Contains(t, prompt, "Target senior level role")
	assert.Contains(t, prompt, "Return ONLY the optimized LaTeX code")
}

func TestMergeSections_SplicesMarkedSections(t *testing.T) {
	t.Parallel()

	optimized := `% Summary
A senior Go engineer focused on distributed systems.
% Technical Skills
Go, PostgreSQL, Kubernetes
% Experience`

	merged := anthropic.MergeSections(template, optimized)

	assert.Contains(t, merged, "A senior Go engineer focused on distributed systems.")
	assert.Contains(t, merged, "Go, PostgreSQL, Kubernetes")
	assert.NotContains(t, merged, "A backend engineer.")
	assert.NotContains(t, merged, "Go, SQL\n")
	assert.Contains(t, merged, `\resumeSubheading{Acme}{2020}`)
	assert.True(t, jobtailor.IsValidLatexTemplate(merged))
}

func TestMergeSections_UnrecognizedOutputKeepsTemplate(t *testing.T) {
	t.Parallel()

	merged := anthropic.MergeSections(template, "Here are your optimized sections!")

	assert.Contains(t, merged, "A backend engineer.")
	assert.Contains(t, merged, "% Optimized with section-based approach")
	assert.True(t, jobtailor.IsValidLatexTemplate(merged))
}

func TestMergeSections_PreservesLatexDollarSigns(t *testing.T) {
	t.Parallel()

	optimized := `% Summary
Delivered $1M savings with 99.9% uptime across $k$ services.
% Technical Skills
Go
% Experience`

	merged := anthropic.MergeSections(template, optimized)

	assert.Contains(t, merged, `$1M savings`)
	assert.Contains(t, merged, `$k$ services`)
}
