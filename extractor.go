package jobtailor

import "strings"

// Strategy identifies which extraction pass produced a result.
type Strategy string

// Strategy constants in escalation order. StrategyNone marks sentinel
// results produced when gating or every pass failed.
const (
	StrategySelector   Strategy = "selector"
	StrategyStructural Strategy = "structural"
	StrategyFullPage   Strategy = "fullpage"
	StrategyNone       Strategy = "none"
)

// Extraction is the result of an extractor pass. A sentinel result carries
// one of the No*Text messages in Text, a zero Score, and StrategyNone; it is
// distinguishable from a real extraction by content, not by an error.
type Extraction struct {
	Text     string   `json:"text"`
	HTML     string   `json:"html,omitempty"`
	Score    float64  `json:"score"`
	Strategy Strategy `json:"strategy"`
}

// Sentinel messages returned in place of extracted text. Callers match on
// substrings via IsNoJobContent rather than on a separate error channel.
const (
	NoJobContentText = "This page doesn't appear to contain job-related content."
	NoExtractionText = "Could not extract meaningful job content from this page."
)

// noJobContentMarkers are the substrings that identify a sentinel message.
var noJobContentMarkers = []string{
	"could not extract",
	"no job-related content",
	"doesn't appear to contain",
}

// IsNoJobContent reports whether text is a sentinel message rather than a
// real extraction.
func IsNoJobContent(text string) bool {
	lower := strings.ToLower(text)
	for _, marker := range noJobContentMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// Extractor extracts job-description text from an HTML document. It never
// returns an error for pages without job content; it returns a sentinel
// Extraction instead. Errors are reserved for unusable input.
type Extractor interface {
	Extract(html string) (*Extraction, error)
}
