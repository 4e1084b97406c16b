package mock

import (
	"context"

	"github.com/fwojciec/jobtailor"
)

var _ jobtailor.Optimizer = (*Optimizer)(nil)

// Optimizer is a mock implementation of jobtailor.Optimizer.
type Optimizer struct {
	OptimizeFn func(ctx context.Context, jobDescription, template string) (*jobtailor.TailoredResume, error)
}

func (o *Optimizer) Optimize(ctx context.Context, jobDescription, template string) (*jobtailor.TailoredResume, error) {
	return o.OptimizeFn(ctx, jobDescription, template)
}
