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

func TestLoggingClassifier_Classify(t *testing.T) {
	t.Parallel()

	t.Run("logs decision with matched layers", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Classifier{
			ClassifyFn: func(signal *jobtailor.PageSignal) (*jobtailor.Classification, error) {
				return &jobtailor.Classification{
					IsJobPage: true,
					Matched:   []jobtailor.Signal{jobtailor.SignalURL, jobtailor.SignalKeywords},
				}, nil
			},
		}

		classifier := jobslog.NewLoggingClassifier(inner, logger)
		classification, err := classifier.Classify(&jobtailor.PageSignal{URL: "https://example.com/careers/sre"})

		require.NoError(t, err)
		assert.True(t, classification.IsJobPage)
		output := buf.String()
		assert.Contains(t, output, "page classification")
		assert.Contains(t, output, "url=https://example.com/careers/sre")
		assert.Contains(t, output, "is_job_page=true")
		assert.Contains(t, output, "keywords")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Classifier{
			ClassifyFn: func(signal *jobtailor.PageSignal) (*jobtailor.Classification, error) {
				return nil, jobtailor.Errorf(jobtailor.EINVALID, "empty signal")
			},
		}

		classifier := jobslog.NewLoggingClassifier(inner, logger)
		_, err := classifier.Classify(&jobtailor.PageSignal{})

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=")
	})
}
