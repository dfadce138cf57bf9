package middleware

import (
	"context"

	"github.com/etharaai/workforce-api/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// LoggerKey is the key under which the request-scoped logger is stored in
// both the Echo context and the request's context.Context.
const LoggerKey = "logger"

// ContextEnhancer enriches each request with a request-scoped logger that
// carries correlation fields (request_id, method, path, ip). The logger is
// stored in the Echo context for handlers and in the Go request context for
// code further down the stack that only sees context.Context.
type ContextEnhancer struct {
	server *server.Server
}

// NewContextEnhancer constructs the enhancer with access to the app logger.
func NewContextEnhancer(s *server.Server) *ContextEnhancer {
	return &ContextEnhancer{server: s}
}

// EnhanceContext returns the middleware function. It must run after
// RequestID so the correlation ID is available.
func (ce *ContextEnhancer) EnhanceContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := GetRequestID(c)

			contextLogger := ce.server.Logger.With().
				Str("request_id", requestID).
				Str("method", c.Request().Method).
				Str("path", c.Path()). // route template (e.g. "/api/employees/:employee_id"), not raw URL
				Str("ip", c.RealIP()).
				Logger()

			c.Set(LoggerKey, &contextLogger)

			ctx := context.WithValue(c.Request().Context(), LoggerKey, &contextLogger)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// GetLogger retrieves the request-scoped logger from Echo context.
//
// If EnhanceContext did not run, it returns a no-op logger instead of nil
// so callers never have to guard.
func GetLogger(c echo.Context) *zerolog.Logger {
	if logger, ok := c.Get(LoggerKey).(*zerolog.Logger); ok {
		return logger
	}

	logger := zerolog.Nop()
	return &logger
}
