package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/jobtailor"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// Optimizer implements jobtailor.Optimizer using Google Gemini. It runs
// the single-prompt efficient path only; the section-based fallback is an
// anthropic-specific recovery mode.
type Optimizer struct {
	client *genai.Client
}

// NewOptimizer creates a new Optimizer.
func NewOptimizer(client *genai.Client) *Optimizer {
	return &Optimizer{client: client}
}

// Optimize rewrites the template against the job description.
func (o *Optimizer) Optimize(ctx context.Context, jobDescription, template string) (*jobtailor.TailoredResume, error) {
	if jobDescription == "" {
		return nil, jobtailor.Errorf(jobtailor.EINVALID, "job description required")
	}
	if template == "" {
		return nil, jobtailor.Errorf(jobtailor.EINVALID, "template required")
	}

	analysis := jobtailor.AnalyzeJobRequirements(jobDescription)
	prompt := BuildUserPrompt(analysis, jobDescription, template)
	config := BuildConfig()

	result, err := o.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, jobtailor.Errorf(jobtailor.EINTERNAL, "gemini returned nil result")
	}

	return &jobtailor.TailoredResume{
		Resume: result.Text(),
		Method: jobtailor.MethodEfficient,
	}, nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a resume optimization expert. You rewrite LaTeX resumes to target specific job descriptions while preserving the exact LaTeX structure and formatting. Output only complete LaTeX documents.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildUserPrompt builds the optimization prompt containing the job
// description, the template, and the extracted requirement summary.
func BuildUserPrompt(analysis *jobtailor.JobAnalysis, jobDescription, template string) string {
	var sb strings.Builder
	sb.WriteString("Optimize this resume for the specific job below.\n\n")
	fmt.Fprintf(&sb, "<job_description>\n%s\n</job_description>\n\n", jobDescription)
	fmt.Fprintf(&sb, "<resume_template>\n%s\n</resume_template>\n\n", template)
	sb.WriteString("Key requirements identified:\n")
	fmt.Fprintf(&sb, "- Technologies: %s\n", strings.Join(analysis.Technologies, ", "))
	fmt.Fprintf(&sb, "- Skills: %s\n", strings.Join(analysis.Skills, ", "))
	fmt.Fprintf(&sb, "- Experience level: %s\n", analysis.ExperienceLevel)
	fmt.Fprintf(&sb, "- Industry: %s\n\n", analysis.Industry)
	sb.WriteString("Rework the Summary, reorder Technical Skills by job relevance, and emphasize matching experience bullets. ")
	sb.WriteString("Keep the LaTeX structure exactly as given. Output only the complete optimized LaTeX document.")
	return sb.String()
}
