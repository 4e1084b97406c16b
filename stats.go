package jobtailor

import (
	"context"
	"time"
)

// TokensSavedPerEfficientRun is the estimated token saving of an efficient
// optimization over re-sending the full template.
const TokensSavedPerEfficientRun = 13000

// UsageStats aggregates optimization runs.
type UsageStats struct {
	TotalOptimizations     int       `json:"totalOptimizations"`
	EfficientOptimizations int       `json:"efficientOptimizations"`
	TokensSaved            int       `json:"tokensSaved"`
	FirstUsed              time.Time `json:"firstUsed"`
	LastUsed               time.Time `json:"lastUsed"`
}

// EfficiencyRate returns the fraction of runs that used the efficient
// path, in [0, 1]. Returns 0 before any runs.
func (s *UsageStats) EfficiencyRate() float64 {
	if s.TotalOptimizations == 0 {
		return 0
	}
	return float64(s.EfficientOptimizations) / float64(s.TotalOptimizations)
}

// StatsService tracks usage statistics.
type StatsService interface {
	// Get returns aggregate stats. A fresh store returns zero counts,
	// not ENOTFOUND.
	Get(ctx context.Context) (*UsageStats, error)

	// Record counts one optimization run. Efficient runs also add
	// TokensSavedPerEfficientRun to the saved-token total.
	Record(ctx context.Context, efficient bool) error

	// Reset zeroes all counters.
	Reset(ctx context.Context) error
}
