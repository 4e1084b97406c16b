package mock

import (
	"context"

	"github.com/fwojciec/jobtailor"
)

var _ jobtailor.StatsService = (*StatsService)(nil)

// StatsService is a mock implementation of jobtailor.StatsService.
type StatsService struct {
	GetFn    func(ctx context.Context) (*jobtailor.UsageStats, error)
	RecordFn func(ctx context.Context, efficient bool) error
	ResetFn  func(ctx context.Context) error
}

func (s *StatsService) Get(ctx context.Context) (*jobtailor.UsageStats, error) {
	return s.GetFn(ctx)
}

func (s *StatsService) Record(ctx context.Context, efficient bool) error {
	return s.RecordFn(ctx, efficient)
}

func (s *StatsService) Reset(ctx context.Context) error {
	return s.ResetFn(ctx)
}
