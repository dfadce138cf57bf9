package router

import (
	"github.com/etharaai/workforce-api/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers endpoints that are not part of the
// business API: the root signpost and the health probe.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/", h.Root.Welcome)

	// Health endpoint used by load balancers and uptime monitors.
	r.GET("/api/health", h.Health.CheckHealth)
}
