package anthropic

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/fwojciec/jobtailor"
)

const model = "claude-sonnet-4-5-20250929"

const (
	efficientMaxTokens = 6000
	sectionsMaxTokens  = 4000
	temperature        = 0.2
)

// DefaultRetryDelays returns the backoff delays between API attempts:
// 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// Optimizer implements jobtailor.Optimizer using the Claude Messages API.
// It first tries the efficient single-prompt path; if that fails after
// retries it falls back to section-based optimization, which sends only
// the template regions worth rewriting.
type Optimizer struct {
	client sdk.Client
	delays []time.Duration
}

// Option configures an Optimizer.
type Option func(*Optimizer)

// WithRetryDelays replaces the default backoff delays. Useful for tests.
func WithRetryDelays(delays []time.Duration) Option {
	return func(o *Optimizer) { o.delays = delays }
}

// NewOptimizer creates an Optimizer backed by the official SDK.
func NewOptimizer(apiKey string, opts ...Option) *Optimizer {
	o := &Optimizer{
		client: sdk.NewClient(option.WithAPIKey(apiKey)),
		delays: DefaultRetryDelays(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
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

	resume, err := o.createWithRetry(ctx, BuildEfficientPrompt(analysis, jobDescription, template), efficientMaxTokens)
	if err == nil {
		return &jobtailor.TailoredResume{Resume: resume, Method: jobtailor.MethodEfficient}, nil
	}
	if ctx.Err() != nil {
		return nil, err
	}

	sections := jobtailor.ExtractResumeSections(template)
	optimized, sectionsErr := o.createWithRetry(ctx, BuildSectionsPrompt(analysis, jobDescription, sections), sectionsMaxTokens)
	if sectionsErr != nil {
		// Surface the efficient path's failure; it ran first.
		return nil, err
	}

	return &jobtailor.TailoredResume{
		Resume: MergeSections(template, optimized),
		Method: jobtailor.MethodSections,
	}, nil
}

// createWithRetry calls the Messages API with exponential backoff.
func (o *Optimizer) createWithRetry(ctx context.Context, prompt string, maxTokens int64) (string, error) {
	maxAttempts := len(o.delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		text, err := o.create(ctx, prompt, maxTokens)
		if err == nil {
			return text, nil
		}
		lastErr = err

		if attempt >= maxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(o.delays[attempt]):
		}
	}

	return "", lastErr
}

func (o *Optimizer) create(ctx context.Context, prompt string, maxTokens int64) (string, error) {
	msg, err := o.client.Messages.New(ctx, sdk.MessageNewParams{
		Model:       sdk.Model(model),
		MaxTokens:   maxTokens,
		Temperature: sdk.Float(temperature),
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		sb.WriteString(block.Text)
	}
	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", jobtailor.Errorf(jobtailor.EINTERNAL, "anthropic returned empty response")
	}
	return text, nil
}

// BuildEfficientPrompt builds the single full-template optimization prompt.
func BuildEfficientPrompt(analysis *jobtailor.JobAnalysis, jobDescription, template string) string {
	var sb strings.Builder
	sb.WriteString("You are a resume optimization expert. Optimize this resume for the specific job below.\n\n")
	fmt.Fprintf(&sb, "JOB DESCRIPTION:\n%s\n\n", jobDescription)
	fmt.Fprintf(&sb, "CURRENT RESUME TEMPLATE:\n%s\n\n", template)
	sb.WriteString("KEY JOB REQUIREMENTS IDENTIFIED:\n")
	fmt.Fprintf(&sb, "- Primary Technologies: %s\n", joinHead(analysis.Technologies, 5))
	fmt.Fprintf(&sb, "- Required Skills: %s\n", joinHead(analysis.Skills, 5))
	fmt.Fprintf(&sb, "- Experience Level: %s\n", analysis.ExperienceLevel)
	fmt.Fprintf(&sb, "- Industry Focus: %s\n\n", analysis.Industry)
	sb.WriteString("OPTIMIZATION INSTRUCTIONS:\n")
	sb.WriteString("1. Analyze the job description for key requirements, technologies, and skills\n")
	sb.WriteString("2. Optimize Summary section to highlight relevant experience for this role\n")
	sb.WriteString("3. Reorder Technical Skills section to prioritize job-relevant technologies\n")
	sb.WriteString("4. Emphasize experience bullets that match job requirements\n")
	fmt.Fprintf(&sb, "5. Naturally incorporate key job keywords: %s\n", joinHead(analysis.Keywords, 8))
	sb.WriteString("6. Maintain exact LaTeX structure and formatting\n")
	sb.WriteString("7. Focus optimization on Summary, Technical Skills, and top 2 Experience entries\n")
	sb.WriteString("8. Output ONLY the complete optimized LaTeX code - no explanations\n\n")
	sb.WriteString("OPTIMIZED LATEX CODE:")
	return sb.String()
}

// BuildSectionsPrompt builds the fallback prompt that rewrites only the
// extracted template sections.
func BuildSectionsPrompt(analysis *jobtailor.JobAnalysis, jobDescription string, sections *jobtailor.ResumeSections) string {
	var sb strings.Builder
	sb.WriteString("Optimize these key resume sections for the job below. Return ONLY the optimized LaTeX code for each section.\n\n")
	fmt.Fprintf(&sb, "JOB DESCRIPTION:\n%s\n\n", jobDescription)
	sb.WriteString("SECTIONS TO OPTIMIZE:\n\n")
	fmt.Fprintf(&sb, "1. SUMMARY SECTION (optimize for relevance):\n%s\n\n", sections.Summary)
	fmt.Fprintf(&sb, "2. TECHNICAL SKILLS (reorder by importance):\n%s\n\n", sections.TechnicalSkills)
	fmt.Fprintf(&sb, "3. TOP EXPERIENCE ENTRIES (emphasize relevant points):\n%s\n\n", sections.TopExperience)
	sb.WriteString("OPTIMIZATION FOCUS:\n")
	fmt.Fprintf(&sb, "- Emphasize: %s\n", strings.Join(analysis.Technologies, ", "))
	fmt.Fprintf(&sb, "- Include keywords: %s\n", joinHead(analysis.Keywords, 10))
	fmt.Fprintf(&sb, "- Target %s level role\n\n", analysis.ExperienceLevel)
	sb.WriteString("INSTRUCTIONS:\n")
	sb.WriteString("1. Return optimized LaTeX code for each section\n")
	sb.WriteString("2. Maintain exact formatting and structure\n")
	sb.WriteString("3. Label each section with its % Section comment marker\n")
	sb.WriteString("4. Focus on job relevance and keyword integration\n\n")
	sb.WriteString("OPTIMIZED SECTIONS:")
	return sb.String()
}

var (
	summaryRegionPattern = regexp.MustCompile(`(?s)(% Summary)(.*?)(% Technical Skills)`)
	skillsRegionPattern  = regexp.MustCompile(`(?s)(% Technical Skills)(.*?)(% Experience)`)
)

// MergeSections splices section rewrites back into the template. The
// rewrite must carry the same % Section comment markers as the template;
// unrecognized output leaves the template unchanged apart from a trailing
// note so the caller still gets a compilable document.
func MergeSections(template, optimized string) string {
	merged := template
	replaced := false

	for _, pattern := range []*regexp.Regexp{summaryRegionPattern, skillsRegionPattern} {
		m := pattern.FindStringSubmatch(optimized)
		if m == nil {
			continue
		}
		// Splice by index; the rewrite is LaTeX and must not go through
		// regexp replacement expansion.
		loc := pattern.FindStringSubmatchIndex(merged)
		if loc == nil {
			continue
		}
		merged = merged[:loc[3]] + "\n" + strings.TrimSpace(m[2]) + "\n" + merged[loc[6]:]
		replaced = true
	}

	if !replaced {
		return template + "\n% Optimized with section-based approach"
	}
	return merged
}

func joinHead(items []string, n int) string {
	if len(items) > n {
		items = items[:n]
	}
	return strings.Join(items, ", ")
}
