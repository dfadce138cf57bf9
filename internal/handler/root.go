package handler

import (
	"net/http"

	"github.com/etharaai/workforce-api/internal/server"
	"github.com/labstack/echo/v4"
)

// RootHandler serves the bare root endpoint, a human-readable signpost that
// the API is up.
type RootHandler struct {
	Handler
}

// NewRootHandler constructs a RootHandler.
func NewRootHandler(s *server.Server) *RootHandler {
	return &RootHandler{
		Handler: NewHandler(s),
	}
}

// Welcome handles GET /.
func (h *RootHandler) Welcome(c echo.Context) error {
	return c.JSON(http.StatusOK, MessageResponse{Message: "Workforce API running"})
}
