package jobtailor

import (
	"regexp"
	"strings"
)

// JobAnalysis summarizes the requirements found in a job description. It
// feeds prompt construction so the LLM can prioritize relevant skills.
type JobAnalysis struct {
	Technologies    []string `json:"technologies"`
	Skills          []string `json:"skills"`
	Keywords        []string `json:"keywords"`
	ExperienceLevel string   `json:"experienceLevel"`
	Industry        string   `json:"industry"`
}

// technologyTerms are matched with dots and spaces stripped so "node.js"
// also matches "nodejs".
var technologyTerms = []string{
	"react", "angular", "vue", "svelte",
	"node.js", "express", "fastapi",
	"python", "java", "javascript", "typescript", "c#", "go", "rust",
	"aws", "azure", "gcp", "docker", "kubernetes", "terraform",
	"mongodb", "postgresql", "mysql", "redis", "elasticsearch",
	"microservices", "graphql", "rest api", "grpc",
	"spring boot", "django", "flask", "laravel", "rails",
}

var skillTerms = []string{
	"agile", "scrum", "kanban", "ci/cd", "devops",
	"testing", "tdd", "bdd",
	"leadership", "mentoring", "code review", "debugging",
	"optimization", "scalability", "performance", "security",
	"monitoring", "logging",
}

var (
	seniorPattern   = regexp.MustCompile(`senior|lead|principal|staff|architect|5\+?\s*years|6\+?\s*years|7\+?\s*years`)
	juniorPattern   = regexp.MustCompile(`junior|entry|graduate|intern|1[-\s]?2\s*years|0[-\s]?2\s*years`)
	fintechPattern  = regexp.MustCompile(`fintech|finance|banking|trading`)
	healthPattern   = regexp.MustCompile(`healthcare|medical|pharma`)
	commercePattern = regexp.MustCompile(`ecommerce|retail|marketplace`)
	gamingPattern   = regexp.MustCompile(`gaming|game`)
)

// AnalyzeJobRequirements extracts technologies, skills, experience level,
// and industry from a job description. Matching is case-insensitive;
// Keywords is the union of Technologies and Skills in match order.
func AnalyzeJobRequirements(jobDescription string) *JobAnalysis {
	lower := strings.ToLower(jobDescription)
	normalized := strings.NewReplacer(".", "", " ", "").Replace(lower)

	analysis := &JobAnalysis{
		ExperienceLevel: "mid-level",
		Industry:        "technology",
	}

	for _, tech := range technologyTerms {
		needle := strings.NewReplacer(".", "", " ", "").Replace(tech)
		if strings.Contains(normalized, needle) {
			analysis.Technologies = append(analysis.Technologies, tech)
		}
	}
	for _, skill := range skillTerms {
		if strings.Contains(lower, skill) {
			analysis.Skills = append(analysis.Skills, skill)
		}
	}
	analysis.Keywords = append(append([]string{}, analysis.Technologies...), analysis.Skills...)

	if seniorPattern.MatchString(lower) {
		analysis.ExperienceLevel = "senior"
	} else if juniorPattern.MatchString(lower) {
		analysis.ExperienceLevel = "junior"
	}

	switch {
	case fintechPattern.MatchString(lower):
		analysis.Industry = "fintech"
	case healthPattern.MatchString(lower):
		analysis.Industry = "healthcare"
	case commercePattern.MatchString(lower):
		analysis.Industry = "ecommerce"
	case gamingPattern.MatchString(lower):
		analysis.Industry = "gaming"
	}

	return analysis
}
