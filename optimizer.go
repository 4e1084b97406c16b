package jobtailor

import "context"

// Method identifies which optimization path produced a résumé. Efficient
// runs send a single full-template prompt against a registered template;
// the sections path rewrites individual template sections and is used as a
// fallback.
type Method string

// Method constants.
const (
	MethodEfficient Method = "efficient"
	MethodSections  Method = "sections"
)

// TailoredResume is the optimizer's output.
type TailoredResume struct {
	Resume string `json:"resume"`
	Method Method `json:"method"`
}

// Optimizer rewrites a LaTeX résumé template against a job description.
// Implementations preserve the template's LaTeX structure and return only
// the complete document.
type Optimizer interface {
	Optimize(ctx context.Context, jobDescription, template string) (*TailoredResume, error)
}
