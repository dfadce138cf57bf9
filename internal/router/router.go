// Package router initializes the HTTP router (using Echo).
//
// It registers the middleware stack in order and maps the API route groups
// to their corresponding handlers.
package router

import (
	"github.com/etharaai/workforce-api/internal/handler"
	"github.com/etharaai/workforce-api/internal/middleware"
	"github.com/labstack/echo/v4"
)

// New builds the Echo instance with the full middleware stack and all
// routes registered. The returned value is handed to the server as its
// http.Handler.
//
// Middleware order matters: Recover first so later panics become 500s,
// RequestID before the ContextEnhancer so the request-scoped logger can
// carry the correlation ID, and the request logger after both so its one
// log line per request includes them.
func New(middlewares *middleware.Middlewares, handlers *handler.Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	e.Use(middlewares.Global.Recover())
	e.Use(middleware.RequestID())
	e.Use(middlewares.ContextEnhancer.EnhanceContext())
	e.Use(middlewares.Global.RequestLogger())
	e.Use(middlewares.Global.CORS())
	e.Use(middlewares.Global.Secure())

	registerSystemRoutes(e, handlers)
	registerAPIRoutes(e, handlers)

	return e
}
