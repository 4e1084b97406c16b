package jobtailor_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/jobtailor"
	"github.com/stretchr/testify/assert"
)

func TestScoreJobContent_BelowMinLength(t *testing.T) {
	t.Parallel()

	score := jobtailor.ScoreJobContent("responsibilities", jobtailor.DefaultScoreConfig())

	assert.Zero(t, score)
}

func TestScoreJobContent_SectionHeaders(t *testing.T) {
	t.Parallel()

	text := "Responsibilities: build services. Requirements: Go experience. " +
		"Qualifications: a strong candidate with relevant skills and knowledge."

	score := jobtailor.ScoreJobContent(text, jobtailor.DefaultScoreConfig())

	// Three high-value keywords alone contribute 9 before penalties.
	assert.Greater(t, score, 6.0)
}

func TestScoreJobContent_StructuralBonuses(t *testing.T) {
	t.Parallel()

	cfg := jobtailor.DefaultScoreConfig()
	base := strings.Repeat("plain filler text without vocabulary ", 20)

	plain := jobtailor.ScoreJobContent(base, cfg)
	bullets := jobtailor.ScoreJobContent(base+"• item one • item two", cfg)
	years := jobtailor.ScoreJobContent(base+"5+ years", cfg)
	degree := jobtailor.ScoreJobContent(base+"bachelor degree", cfg)

	assert.Greater(t, bullets, plain)
	assert.Greater(t, years, plain)
	assert.Greater(t, degree, plain)
}

func TestScoreJobContent_LengthPenalties(t *testing.T) {
	t.Parallel()

	cfg := jobtailor.DefaultScoreConfig()
	keywords := "responsibilities requirements qualifications "

	short := keywords + strings.Repeat("x ", 50)
	medium := keywords + strings.Repeat("x ", 400)
	long := keywords + strings.Repeat("x ", 6000)

	shortScore := jobtailor.ScoreJobContent(short, cfg)
	mediumScore := jobtailor.ScoreJobContent(medium, cfg)
	longScore := jobtailor.ScoreJobContent(long, cfg)

	assert.Less(t, shortScore, mediumScore)
	assert.Less(t, longScore, mediumScore)
}

func TestScoreJobContent_LowTierToggle(t *testing.T) {
	t.Parallel()

	text := "a job posting for a great career, apply today " + strings.Repeat("filler ", 100)

	on := jobtailor.DefaultScoreConfig()
	off := jobtailor.DefaultScoreConfig()
	off.IncludeLowTier = false

	assert.Greater(t, jobtailor.ScoreJobContent(text, on), jobtailor.ScoreJobContent(text, off))
}

func TestCountJobWords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want int
	}{
		{
			name: "no matches",
			text: "gardening tips for spring",
			want: 0,
		},
		{
			name: "several matches",
			text: "the candidate will take on responsibilities matching their skills and experience",
			want: 4,
		},
		{
			name: "repeated word counts once",
			text: "skills skills skills",
			want: 1,
		},
		{
			name: "case insensitive",
			text: "REQUIREMENTS and Qualifications",
			want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, jobtailor.CountJobWords(tt.text))
		})
	}
}
