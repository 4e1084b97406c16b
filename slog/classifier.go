// Package slog provides logging decorators for jobtailor services using
// the standard library's structured logger.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/jobtailor"
)

// Ensure LoggingClassifier implements jobtailor.Classifier.
var _ jobtailor.Classifier = (*LoggingClassifier)(nil)

// LoggingClassifier wraps a Classifier with decision logging.
type LoggingClassifier struct {
	next   jobtailor.Classifier
	logger *slog.Logger
}

// NewLoggingClassifier creates a new LoggingClassifier.
func NewLoggingClassifier(next jobtailor.Classifier, logger *slog.Logger) *LoggingClassifier {
	return &LoggingClassifier{next: next, logger: logger}
}

// Classify delegates to the wrapped classifier and logs the decision with
// the layers that fired.
func (c *LoggingClassifier) Classify(signal *jobtailor.PageSignal) (*jobtailor.Classification, error) {
	begin := time.Now()
	classification, err := c.next.Classify(signal)

	attrs := []any{
		"url", signal.URL,
		"duration", time.Since(begin),
	}
	if classification != nil {
		attrs = append(attrs,
			"is_job_page", classification.IsJobPage,
			"matched", signalNames(classification.Matched),
		)
	}
	if err != nil {
		attrs = append(attrs, "err", err)
	}
	c.logger.Info("page classification", attrs...)

	return classification, err
}

func signalNames(signals []jobtailor.Signal) []string {
	names := make([]string, len(signals))
	for i, s := range signals {
		names[i] = string(s)
	}
	return names
}
