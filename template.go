package jobtailor

import (
	"context"
	"regexp"
	"strings"
	"time"
)

// Template is the master LaTeX résumé the optimizer rewrites. Hash is a
// content hash assigned by the store on save and used for registration
// change detection.
type Template struct {
	Content   string    `json:"content"`
	Hash      string    `json:"hash"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate returns an error if the template is empty or not valid LaTeX.
func (t *Template) Validate() error {
	if t.Content == "" {
		return Errorf(EINVALID, "template content required")
	}
	if !IsValidLatexTemplate(t.Content) {
		return Errorf(EINVALID, "template must be a complete LaTeX document")
	}
	return nil
}

// latexRequiredElements must all appear for a string to pass as a LaTeX
// document.
var latexRequiredElements = []string{
	`\documentclass`,
	`\begin{document}`,
	`\end{document}`,
}

// IsValidLatexTemplate reports whether template contains the essential
// LaTeX document elements.
func IsValidLatexTemplate(template string) bool {
	for _, element := range latexRequiredElements {
		if !strings.Contains(template, element) {
			return false
		}
	}
	return true
}

// TemplateService manages the stored master template.
type TemplateService interface {
	// GetCurrent returns the stored template.
	// Returns ENOTFOUND if no template has been saved.
	GetCurrent(ctx context.Context) (*Template, error)

	// Save validates and stores the template, replacing any previous one.
	Save(ctx context.Context, template *Template) error
}

// RegistrationTTL is how long a registration stays valid before the
// template must be re-registered.
const RegistrationTTL = 30 * 24 * time.Hour

// Registration re-registration reasons.
const (
	RegistrationReasonMissing = "not_registered"
	RegistrationReasonChanged = "template_changed"
	RegistrationReasonExpired = "registration_expired"
)

// Registration records that a template was registered for efficient
// optimization. TemplateHash pins the registration to the exact template
// content.
type Registration struct {
	TemplateHash string    `json:"templateHash"`
	RegisteredAt time.Time `json:"registeredAt"`
	Version      string    `json:"version"`
}

// RegistrationStatus reports whether a template needs (re-)registration
// and why.
type RegistrationStatus struct {
	NeedsRegistration bool   `json:"needsRegistration"`
	Reason            string `json:"reason,omitempty"`
}

// RegistrationService manages the template registration lifecycle.
type RegistrationService interface {
	// Status compares the current registration against templateHash.
	// A missing registration, a hash mismatch, or a registration older
	// than RegistrationTTL all report NeedsRegistration.
	Status(ctx context.Context, templateHash string) (*RegistrationStatus, error)

	// Register records templateHash as registered now.
	Register(ctx context.Context, templateHash string) error

	// Clear removes the registration, forcing re-registration on the
	// next status check.
	Clear(ctx context.Context) error
}

// ResumeSections are the template regions the section-based optimization
// fallback rewrites individually.
type ResumeSections struct {
	Summary         string `json:"summary"`
	TechnicalSkills string `json:"technicalSkills"`
	TopExperience   string `json:"topExperience"`
}

var (
	summarySectionPattern = regexp.MustCompile(`(?s)% Summary(.*?)% Technical Skills`)
	skillsSectionPattern  = regexp.MustCompile(`(?s)% Technical Skills(.*?)% Experience`)
	expSectionPattern     = regexp.MustCompile(`(?s)% Experience(.*?)% Projects`)
)

// ExtractResumeSections pulls the summary, technical skills, and top two
// experience entries from a template laid out with % Section comment
// markers. Missing sections come back empty.
func ExtractResumeSections(template string) *ResumeSections {
	sections := &ResumeSections{}

	if m := summarySectionPattern.FindStringSubmatch(template); m != nil {
		sections.Summary = strings.TrimSpace(m[1])
	}
	if m := skillsSectionPattern.FindStringSubmatch(template); m != nil {
		sections.TechnicalSkills = strings.TrimSpace(m[1])
	}
	if m := expSectionPattern.FindStringSubmatch(template); m != nil {
		entries := strings.Split(m[1], `\resumeSubheading`)
		if len(entries) > 1 {
			top := entries[1:]
			if len(top) > 2 {
				top = top[:2]
			}
			for i, entry := range top {
				top[i] = `\resumeSubheading` + entry
			}
			sections.TopExperience = strings.TrimSpace(strings.Join(top, "\n\n"))
		}
	}

	return sections
}
