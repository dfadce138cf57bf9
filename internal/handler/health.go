package handler

// HealthHandler exposes the endpoint external systems use to verify the
// service is alive and its store is reachable. Load balancers and uptime
// monitors poll it, so it always answers 200; unhealthiness is reported in
// the body rather than as a 5xx that a proxy might retry or mask.
import (
	"context"
	"net/http"
	"time"

	"github.com/etharaai/workforce-api/internal/middleware"
	"github.com/etharaai/workforce-api/internal/server"
	"github.com/labstack/echo/v4"
)

// StorePinger is the connectivity probe surface the health endpoint needs.
// *database.Database implements it.
type StorePinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler probes the store through StorePinger.
type HealthHandler struct {
	Handler
	store StorePinger
}

// NewHealthHandler constructs a HealthHandler.
func NewHealthHandler(s *server.Server, store StorePinger) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
		store:   store,
	}
}

// healthPingTimeout bounds the connectivity probe so a wedged store cannot
// hang the health endpoint.
const healthPingTimeout = 5 * time.Second

// HealthResponse is the body of GET /api/health. Database holds "connected"
// when healthy and the underlying error text otherwise.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// CheckHealth handles GET /api/health with a trivial connectivity probe
// against the store.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	ctx, cancel := context.WithTimeout(c.Request().Context(), healthPingTimeout)
	defer cancel()

	start := time.Now()
	if err := h.store.Ping(ctx); err != nil {
		logger.Error().
			Err(err).
			Dur("response_time", time.Since(start)).
			Msg("database health check failed")

		return c.JSON(http.StatusOK, HealthResponse{
			Status:   "unhealthy",
			Database: err.Error(),
		})
	}

	logger.Debug().
		Dur("response_time", time.Since(start)).
		Msg("database health check passed")

	return c.JSON(http.StatusOK, HealthResponse{
		Status:   "healthy",
		Database: "connected",
	})
}
