package jobtailor

import (
	"context"
	"time"
)

// Optimization records one résumé-tailoring run.
type Optimization struct {
	ID        string    `json:"id"`
	JobURL    string    `json:"jobUrl"`
	Score     float64   `json:"score"`
	Strategy  Strategy  `json:"strategy"`
	Method    Method    `json:"method"`
	CreatedAt time.Time `json:"createdAt"`
}

// Validate returns an error if the record contains invalid fields.
func (o *Optimization) Validate() error {
	if o.JobURL == "" {
		return Errorf(EINVALID, "optimization job URL required")
	}
	if o.Method != MethodEfficient && o.Method != MethodSections {
		return Errorf(EINVALID, "unknown optimization method %q", o.Method)
	}
	return nil
}

// OptimizationFilter filters FindOptimizations results.
type OptimizationFilter struct {
	ID     *string `json:"id"`
	JobURL *string `json:"jobUrl"`
	Method *Method `json:"method"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// HistoryService records and queries past optimization runs.
type HistoryService interface {
	// CreateOptimization stores a new record, assigning ID and
	// CreatedAt.
	CreateOptimization(ctx context.Context, opt *Optimization) error

	// FindOptimizationByID retrieves a record by ID.
	// Returns ENOTFOUND if it does not exist.
	FindOptimizationByID(ctx context.Context, id string) (*Optimization, error)

	// FindOptimizations retrieves records matching the filter, newest
	// first.
	FindOptimizations(ctx context.Context, filter OptimizationFilter) ([]*Optimization, error)
}
