package repository

import (
	"context"
	"fmt"

	"github.com/etharaai/workforce-api/internal/model"
	"github.com/etharaai/workforce-api/internal/server"
	"github.com/jackc/pgx/v5/pgxpool"
)

// StatsRepository reads the dashboard counters.
type StatsRepository struct {
	pool *pgxpool.Pool
}

// NewStatsRepository constructs a StatsRepository on the shared pool.
func NewStatsRepository(s *server.Server) *StatsRepository {
	return &StatsRepository{pool: s.DB.Pool}
}

// Counts returns the three dashboard counters. The reads are independent
// and deliberately not wrapped in a transaction: this is an approximate
// dashboard figure, not an accounting-grade total. "Today" is the server's
// local calendar date (CURRENT_DATE).
func (r *StatsRepository) Counts(ctx context.Context) (model.Stats, error) {
	var stats model.Stats

	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM employees`,
	).Scan(&stats.TotalEmployees); err != nil {
		return model.Stats{}, fmt.Errorf("counting employees: %w", err)
	}

	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM attendance
		 WHERE attendance_date = CURRENT_DATE AND status = 'Present'`,
	).Scan(&stats.PresentToday); err != nil {
		return model.Stats{}, fmt.Errorf("counting present today: %w", err)
	}

	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM attendance`,
	).Scan(&stats.TotalRecords); err != nil {
		return model.Stats{}, fmt.Errorf("counting attendance records: %w", err)
	}

	return stats, nil
}
