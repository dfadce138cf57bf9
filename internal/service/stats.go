package service

import (
	"context"

	"github.com/etharaai/workforce-api/internal/model"
	"github.com/etharaai/workforce-api/internal/sqlerr"
)

// StatsStore is the persistence surface the stats service needs.
// *repository.StatsRepository implements it.
type StatsStore interface {
	Counts(ctx context.Context) (model.Stats, error)
}

// StatsService exposes the dashboard counters.
type StatsService struct {
	stats StatsStore
}

// NewStatsService constructs a StatsService.
func NewStatsService(stats StatsStore) *StatsService {
	return &StatsService{stats: stats}
}

// GetStats returns the dashboard counters.
func (s *StatsService) GetStats(ctx context.Context) (model.Stats, error) {
	stats, err := s.stats.Counts(ctx)
	if err != nil {
		return model.Stats{}, sqlerr.HandleError(err)
	}
	return stats, nil
}
