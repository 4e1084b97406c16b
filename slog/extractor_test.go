package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fwojciec/jobtailor"
	"github.com/fwojciec/jobtailor/mock"
	jobslog "github.com/fwojciec/jobtailor/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingExtractor_Extract(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.Extractor{
		ExtractFn: func(html string) (*jobtailor.Extraction, error) {
			return &jobtailor.Extraction{
				Text:     "Requirements: 5+ years of experience.",
				Score:    9.5,
				Strategy: jobtailor.StrategySelector,
			}, nil
		},
	}

	extractor := jobslog.NewLoggingExtractor(inner, logger)
	extraction, err := extractor.Extract("<html></html>")

	require.NoError(t, err)
	assert.Equal(t, jobtailor.StrategySelector, extraction.Strategy)
	output := buf.String()
	assert.Contains(t, output, "job extraction")
	assert.Contains(t, output, "strategy=selector")
	assert.Contains(t, output, "score=9.5")
	assert.Contains(t, output, "chars=37")
	assert.Contains(t, output, "duration=")
}
