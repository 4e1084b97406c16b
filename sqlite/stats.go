package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/fwojciec/jobtailor"
)

// Compile-time interface verification.
var _ jobtailor.StatsService = (*StatsService)(nil)

// StatsService implements jobtailor.StatsService backed by SQLite.
// A single counters row (id = 1) accumulates across runs.
type StatsService struct {
	db *DB
}

// NewStatsService creates a new StatsService.
func NewStatsService(db *DB) *StatsService {
	return &StatsService{db: db}
}

// Get returns aggregate stats. A fresh store returns zero counts.
func (s *StatsService) Get(ctx context.Context) (*jobtailor.UsageStats, error) {
	stats := &jobtailor.UsageStats{}
	var firstUsed, lastUsed string

	err := s.db.QueryRowContext(ctx, `
		SELECT total_optimizations, efficient_optimizations, tokens_saved,
			first_used, last_used
		FROM usage_stats WHERE id = 1
	`).Scan(&stats.TotalOptimizations, &stats.EfficientOptimizations,
		&stats.TokensSaved, &firstUsed, &lastUsed)
	if err == sql.ErrNoRows {
		return stats, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query usage stats: %w", err)
	}

	stats.FirstUsed, err = parseRFC3339(firstUsed)
	if err != nil {
		return nil, err
	}
	stats.LastUsed, err = parseRFC3339(lastUsed)
	if err != nil {
		return nil, err
	}

	return stats, nil
}

// Record counts one optimization run. Efficient runs also add
// jobtailor.TokensSavedPerEfficientRun to the saved-token total.
func (s *StatsService) Record(ctx context.Context, efficient bool) error {
	efficientInc := 0
	tokensInc := 0
	if efficient {
		efficientInc = 1
		tokensInc = jobtailor.TokensSavedPerEfficientRun
	}
	now := time.Now().UTC().Format(time.RFC3339)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO usage_stats (id, total_optimizations, efficient_optimizations,
			tokens_saved, first_used, last_used)
		VALUES (1, 1, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			total_optimizations = total_optimizations + 1,
			efficient_optimizations = efficient_optimizations + excluded.efficient_optimizations,
			tokens_saved = tokens_saved + excluded.tokens_saved,
			last_used = excluded.last_used
	`, efficientInc, tokensInc, now, now)
	if err != nil {
		return fmt.Errorf("failed to record optimization: %w", err)
	}

	return nil
}

// Reset zeroes all counters.
func (s *StatsService) Reset(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM usage_stats WHERE id = 1`)
	if err != nil {
		return fmt.Errorf("failed to reset usage stats: %w", err)
	}
	return nil
}
