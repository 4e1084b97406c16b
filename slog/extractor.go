package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/jobtailor"
)

// Ensure LoggingExtractor implements jobtailor.Extractor.
var _ jobtailor.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with strategy and score logging.
type LoggingExtractor struct {
	next   jobtailor.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next jobtailor.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs which pass won.
func (e *LoggingExtractor) Extract(html string) (*jobtailor.Extraction, error) {
	begin := time.Now()
	extraction, err := e.next.Extract(html)

	attrs := []any{
		"duration", time.Since(begin),
	}
	if extraction != nil {
		attrs = append(attrs,
			"strategy", string(extraction.Strategy),
			"score", extraction.Score,
			"chars", len(extraction.Text),
		)
	}
	if err != nil {
		attrs = append(attrs, "err", err)
	}
	e.logger.Info("job extraction", attrs...)

	return extraction, err
}
