package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/jobtailor"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ jobtailor.HistoryService = (*HistoryService)(nil)

// HistoryService implements jobtailor.HistoryService using SQLite.
type HistoryService struct {
	db *DB
}

// NewHistoryService creates a new HistoryService.
func NewHistoryService(db *DB) *HistoryService {
	return &HistoryService{db: db}
}

// CreateOptimization stores a new optimization record.
func (s *HistoryService) CreateOptimization(ctx context.Context, opt *jobtailor.Optimization) error {
	if err := opt.Validate(); err != nil {
		return err
	}

	opt.ID = uuid.New().String()
	opt.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO optimizations (id, job_url, score, strategy, method, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, opt.ID, opt.JobURL, opt.Score, string(opt.Strategy), string(opt.Method),
		opt.CreatedAt.Format(time.RFC3339))

	return err
}

// FindOptimizationByID retrieves an optimization record by ID.
func (s *HistoryService) FindOptimizationByID(ctx context.Context, id string) (*jobtailor.Optimization, error) {
	var opt jobtailor.Optimization
	var createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, job_url, score, strategy, method, created_at
		FROM optimizations
		WHERE id = ?
	`, id).Scan(&opt.ID, &opt.JobURL, &opt.Score, &opt.Strategy, &opt.Method, &createdAt)

	if err == sql.ErrNoRows {
		return nil, jobtailor.Errorf(jobtailor.ENOTFOUND, "optimization not found")
	}
	if err != nil {
		return nil, err
	}

	opt.CreatedAt, err = parseRFC3339(createdAt)
	if err != nil {
		return nil, err
	}

	return &opt, nil
}

// FindOptimizations retrieves records matching the filter, newest first.
func (s *HistoryService) FindOptimizations(ctx context.Context, filter jobtailor.OptimizationFilter) ([]*jobtailor.Optimization, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, job_url, score, strategy, method, created_at FROM optimizations WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.JobURL != nil {
		query.WriteString(" AND job_url = ?")
		args = append(args, *filter.JobURL)
	}
	if filter.Method != nil {
		query.WriteString(" AND method = ?")
		args = append(args, string(*filter.Method))
	}

	query.WriteString(" ORDER BY created_at DESC")

	args = appendPagination(&query, args, filter.Offset, filter.Limit)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var opts []*jobtailor.Optimization
	for rows.Next() {
		var opt jobtailor.Optimization
		var createdAt string

		if err := rows.Scan(&opt.ID, &opt.JobURL, &opt.Score, &opt.Strategy, &opt.Method, &createdAt); err != nil {
			return nil, err
		}

		opt.CreatedAt, err = parseRFC3339(createdAt)
		if err != nil {
			return nil, err
		}

		opts = append(opts, &opt)
	}

	return opts, rows.Err()
}
