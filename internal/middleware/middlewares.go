// Package middleware contains the HTTP middleware stack: CORS, request
// logging, panic recovery, security headers, request correlation IDs, a
// request-scoped logger, and the global error handler that funnels every
// failure into the shared JSON error schema.
package middleware

import (
	"github.com/etharaai/workforce-api/internal/server"
)

// Middlewares is a lightweight container that groups all middleware
// components used by the HTTP server, so router setup receives one object
// instead of a pile of loose functions.
type Middlewares struct {
	// Global holds common middleware used across the whole API:
	// CORS, request logging, recovery, secure headers, and the global
	// error handler.
	Global *GlobalMiddlewares

	// ContextEnhancer enriches each request with a request-scoped logger
	// (request_id, method, path, ip).
	ContextEnhancer *ContextEnhancer
}

// NewMiddlewares constructs all middleware components using the application
// container. Build once, reuse everywhere.
func NewMiddlewares(s *server.Server) *Middlewares {
	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		ContextEnhancer: NewContextEnhancer(s),
	}
}
