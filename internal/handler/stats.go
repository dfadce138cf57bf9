package handler

import (
	"github.com/etharaai/workforce-api/internal/model"
	"github.com/etharaai/workforce-api/internal/server"
	"github.com/etharaai/workforce-api/internal/service"
	"github.com/labstack/echo/v4"
)

// StatsHandler exposes the aggregate-statistics endpoint.
type StatsHandler struct {
	Handler
	stats *service.StatsService
}

// NewStatsHandler constructs a StatsHandler.
func NewStatsHandler(s *server.Server, stats *service.StatsService) *StatsHandler {
	return &StatsHandler{
		Handler: NewHandler(s),
		stats:   stats,
	}
}

// GetStats handles GET /api/stats.
func (h *StatsHandler) GetStats(c echo.Context, _ *emptyRequest) (model.Stats, error) {
	return h.stats.GetStats(c.Request().Context())
}
