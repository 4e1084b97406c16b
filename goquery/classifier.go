package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/jobtailor"
)

// structurePatterns probe page text for job-description structure: section
// headers followed by a colon, dash, or bullet within a bounded window,
// experience and degree requirements, and application calls to action.
var structurePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)responsibilities?[\s\S]{0,100}[:\-•]`),
	regexp.MustCompile(`(?i)requirements?[\s\S]{0,100}[:\-•]`),
	regexp.MustCompile(`(?i)qualifications?[\s\S]{0,100}[:\-•]`),
	regexp.MustCompile(`(?i)experience[\s\S]{0,100}[:\-•]`),
	regexp.MustCompile(`(?i)skills[\s\S]{0,100}[:\-•]`),
	regexp.MustCompile(`(?i)education[\s\S]{0,100}[:\-•]`),
	regexp.MustCompile(`(?i)\d+\+?\s*years?\s+of\s+experience`),
	regexp.MustCompile(`(?i)bachelor'?s?\s+degree`),
	regexp.MustCompile(`(?i)master'?s?\s+degree`),
	regexp.MustCompile(`(?i)apply\s+now`),
	regexp.MustCompile(`(?i)join\s+our\s+team`),
}

// elementSelectors match elements whose class or id names suggest job
// content. Selector density across these is the elements layer's signal.
var elementSelectors = []string{
	`[class*="job"]`,
	`[class*="position"]`,
	`[class*="career"]`,
	`[class*="vacancy"]`,
	`[class*="opening"]`,
	`[class*="posting"]`,
	`[class*="apply"]`,
	`[class*="recruit"]`,
	`[class*="hiring"]`,
	`[id*="job"]`,
	`[id*="position"]`,
	`[id*="apply"]`,
	`button[class*="apply"]`,
	`a[class*="apply"]`,
	`.salary`,
	`.benefits`,
	`.requirements`,
	`.qualifications`,
}

// Classifier decides whether a page is a job posting by running six
// independent detection layers and OR-ing their results.
type Classifier struct {
	keywordFloor   int
	structureFloor int
	elementFloor   int
}

// ClassifierOption configures a Classifier.
type ClassifierOption func(*Classifier)

// WithKeywordFloor sets the minimum keyword-vocabulary match count for the
// keywords layer to fire.
func WithKeywordFloor(n int) ClassifierOption {
	return func(c *Classifier) { c.keywordFloor = n }
}

// WithStructureFloor sets the minimum structural-pattern match count for
// the structure layer to fire.
func WithStructureFloor(n int) ClassifierOption {
	return func(c *Classifier) { c.structureFloor = n }
}

// WithElementFloor sets the minimum job-element count for the elements
// layer to fire.
func WithElementFloor(n int) ClassifierOption {
	return func(c *Classifier) { c.elementFloor = n }
}

// NewClassifier creates a Classifier with permissive default floors. A
// single matching layer classifies positive; over-triggering is preferred
// over missing a posting.
func NewClassifier(opts ...ClassifierOption) *Classifier {
	c := &Classifier{
		keywordFloor:   1,
		structureFloor: 1,
		elementFloor:   1,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify runs all detection layers against the signal. Matched lists
// every layer that fired in evaluation order.
func (c *Classifier) Classify(signal *jobtailor.PageSignal) (*jobtailor.Classification, error) {
	if err := signal.Validate(); err != nil {
		return nil, err
	}

	url := strings.ToLower(signal.URL)
	title := strings.ToLower(signal.Title)
	body := strings.ToLower(signal.BodyText)

	result := &jobtailor.Classification{}

	if containsAny(url, jobtailor.JobURLTokens) {
		result.Matched = append(result.Matched, jobtailor.SignalURL)
	}
	if containsAny(title, jobtailor.JobTitleWords) {
		result.Matched = append(result.Matched, jobtailor.SignalTitle)
	}
	if c.countKeywords(body, title) >= c.keywordFloor {
		result.Matched = append(result.Matched, jobtailor.SignalKeywords)
	}
	if countPatternMatches(signal.BodyText) >= c.structureFloor {
		result.Matched = append(result.Matched, jobtailor.SignalStructure)
	}
	if c.countJobElements(signal.HTML) >= c.elementFloor {
		result.Matched = append(result.Matched, jobtailor.SignalElements)
	}
	if containsAny(url, jobtailor.KnownJobSites) {
		result.Matched = append(result.Matched, jobtailor.SignalKnownSite)
	}

	result.IsJobPage = len(result.Matched) > 0
	return result, nil
}

// countKeywords counts vocabulary terms found in either body text or
// title. Each term counts at most once.
func (c *Classifier) countKeywords(body, title string) int {
	count := 0
	for _, kw := range jobtailor.JobKeywords {
		if strings.Contains(body, kw) || strings.Contains(title, kw) {
			count++
		}
	}
	return count
}

// countJobElements counts elements matching the job selectors. Selectors
// that fail to compile and unparseable HTML contribute zero; element
// detection is best effort.
func (c *Classifier) countJobElements(html string) int {
	if html == "" {
		return 0
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return 0
	}

	count := 0
	for _, selector := range elementSelectors {
		matcher, err := cascadia.Compile(selector)
		if err != nil {
			continue
		}
		count += doc.FindMatcher(matcher).Length()
	}
	return count
}

func countPatternMatches(text string) int {
	count := 0
	for _, pattern := range structurePatterns {
		if pattern.MatchString(text) {
			count++
		}
	}
	return count
}

func containsAny(s string, substrings []string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
