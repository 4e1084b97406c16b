package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/jobtailor"
)

// Ensure LoggingOptimizer implements jobtailor.Optimizer.
var _ jobtailor.Optimizer = (*LoggingOptimizer)(nil)

// LoggingOptimizer wraps an Optimizer with run logging.
type LoggingOptimizer struct {
	next   jobtailor.Optimizer
	logger *slog.Logger
}

// NewLoggingOptimizer creates a new LoggingOptimizer.
func NewLoggingOptimizer(next jobtailor.Optimizer, logger *slog.Logger) *LoggingOptimizer {
	return &LoggingOptimizer{next: next, logger: logger}
}

// Optimize delegates to the wrapped optimizer and logs which method
// produced the résumé.
func (o *LoggingOptimizer) Optimize(ctx context.Context, jobDescription, template string) (*jobtailor.TailoredResume, error) {
	begin := time.Now()
	result, err := o.next.Optimize(ctx, jobDescription, template)

	attrs := []any{
		"job_chars", len(jobDescription),
		"duration", time.Since(begin),
	}
	if result != nil {
		attrs = append(attrs, "method", string(result.Method))
	}
	if err != nil {
		attrs = append(attrs, "err", err)
	}
	o.logger.Info("resume optimization", attrs...)

	return result, err
}
