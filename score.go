package jobtailor

import (
	"regexp"
	"strings"
)

// ScoreConfig controls the candidate scoring heuristic. The zero value
// scores everything 0; use DefaultScoreConfig.
type ScoreConfig struct {
	// MinLength is the floor below which text scores 0.
	MinLength int

	// HighWeight, MediumWeight, and LowWeight are the per-keyword
	// contributions of the three vocabulary tiers.
	HighWeight   float64
	MediumWeight float64
	LowWeight    float64

	// IncludeLowTier enables the fractional low-value tier.
	IncludeLowTier bool

	// BulletBonus, YearsBonus, and DegreeBonus reward structural markers
	// of job-description prose.
	BulletBonus float64
	YearsBonus  float64
	DegreeBonus float64

	// ShortPenalty multiplies the score when text is shorter than
	// ShortLength; LongPenalty when longer than LongLength.
	ShortPenalty float64
	ShortLength  int
	LongPenalty  float64
	LongLength   int
}

// DefaultScoreConfig returns the scoring configuration used in production.
// The defaults guarantee the relative ordering the extractor's thresholds
// assume: a section-header region outranks generic prose.
func DefaultScoreConfig() ScoreConfig {
	return ScoreConfig{
		MinLength:      50,
		HighWeight:     3,
		MediumWeight:   1,
		LowWeight:      0.5,
		IncludeLowTier: true,
		BulletBonus:    2,
		YearsBonus:     2,
		DegreeBonus:    2,
		ShortPenalty:   0.7,
		ShortLength:    500,
		LongPenalty:    0.8,
		LongLength:     10000,
	}
}

var (
	yearsPattern  = regexp.MustCompile(`\d+\+?\s*years?`)
	degreePattern = regexp.MustCompile(`bachelor|master`)
)

// ScoreJobContent rates how job-description-like a piece of text is.
// Matching is case-insensitive and substring-based; each keyword counts at
// most once.
func ScoreJobContent(text string, cfg ScoreConfig) float64 {
	if len(text) < cfg.MinLength {
		return 0
	}

	lower := strings.ToLower(text)
	var score float64

	for _, kw := range HighValueKeywords {
		if strings.Contains(lower, kw) {
			score += cfg.HighWeight
		}
	}
	for _, kw := range MediumValueKeywords {
		if strings.Contains(lower, kw) {
			score += cfg.MediumWeight
		}
	}
	if cfg.IncludeLowTier {
		for _, kw := range LowValueKeywords {
			if strings.Contains(lower, kw) {
				score += cfg.LowWeight
			}
		}
	}

	if strings.Contains(lower, "•") || strings.Contains(lower, "- ") {
		score += cfg.BulletBonus
	}
	if yearsPattern.MatchString(lower) {
		score += cfg.YearsBonus
	}
	if degreePattern.MatchString(lower) {
		score += cfg.DegreeBonus
	}

	if cfg.ShortLength > 0 && len(text) < cfg.ShortLength {
		score *= cfg.ShortPenalty
	} else if cfg.LongLength > 0 && len(text) > cfg.LongLength {
		score *= cfg.LongPenalty
	}

	return score
}

// CountJobWords counts how many GateWords appear in text. Each word counts
// at most once regardless of repetition.
func CountJobWords(text string) int {
	lower := strings.ToLower(text)
	count := 0
	for _, word := range GateWords {
		if strings.Contains(lower, word) {
			count++
		}
	}
	return count
}
