package mock

import (
	"context"

	"github.com/fwojciec/jobtailor"
)

var _ jobtailor.HistoryService = (*HistoryService)(nil)

// HistoryService is a mock implementation of jobtailor.HistoryService.
type HistoryService struct {
	CreateOptimizationFn   func(ctx context.Context, opt *jobtailor.Optimization) error
	FindOptimizationByIDFn func(ctx context.Context, id string) (*jobtailor.Optimization, error)
	FindOptimizationsFn    func(ctx context.Context, filter jobtailor.OptimizationFilter) ([]*jobtailor.Optimization, error)
}

func (s *HistoryService) CreateOptimization(ctx context.Context, opt *jobtailor.Optimization) error {
	return s.CreateOptimizationFn(ctx, opt)
}

func (s *HistoryService) FindOptimizationByID(ctx context.Context, id string) (*jobtailor.Optimization, error) {
	return s.FindOptimizationByIDFn(ctx, id)
}

func (s *HistoryService) FindOptimizations(ctx context.Context, filter jobtailor.OptimizationFilter) ([]*jobtailor.Optimization, error) {
	return s.FindOptimizationsFn(ctx, filter)
}
