// Package handler is the HTTP layer: the first entry point for business
// logic after the router.
//
// It binds and validates request payloads via the validation package, calls
// the appropriate service, and serializes results. All endpoints flow
// through one generic pipeline so binding, validation, logging, and
// response writing are implemented exactly once.
package handler

import (
	"time"

	"github.com/etharaai/workforce-api/internal/middleware"
	"github.com/etharaai/workforce-api/internal/server"
	"github.com/etharaai/workforce-api/internal/validation"
	"github.com/labstack/echo/v4"
)

// Handler is the base handler type that holds shared application
// dependencies. Concrete handlers embed it to reach config, logger, and DB
// via *server.Server.
type Handler struct {
	server *server.Server
}

// NewHandler constructs a base Handler. Returning by value is fine: the
// struct only holds a pointer, so copies share the same Server.
func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// validatablePtr constrains PReq to be *Req and to implement
// validation.Validatable, which lets the pipeline allocate a fresh request
// value per call. Handlers must never share request state between
// concurrent calls.
type validatablePtr[Req any] interface {
	*Req
	validation.Validatable
}

// HandlerFunc represents a typed endpoint function: it receives a bound and
// validated request payload and returns a response or an error.
type HandlerFunc[PReq validation.Validatable, Res any] func(c echo.Context, req PReq) (Res, error)

// ResponseHandler defines how a successful handler result is written to the
// HTTP response.
type ResponseHandler interface {
	// Handle writes the HTTP response for the given result.
	Handle(c echo.Context, result interface{}) error

	// GetOperation returns an operation name used for structured logging.
	GetOperation() string
}

// JSONResponseHandler writes JSON responses with a given status code.
type JSONResponseHandler struct {
	status int
}

func (h JSONResponseHandler) Handle(c echo.Context, result interface{}) error {
	return c.JSON(h.status, result)
}

func (h JSONResponseHandler) GetOperation() string {
	return "handler"
}

// handleRequest is the shared execution pipeline for all endpoints.
//
// It centralizes:
//   - request binding + validation
//   - structured logging with the request-scoped logger
//   - timing (validation duration, handler duration, total duration)
//   - response writing
func handleRequest[Req any, PReq validatablePtr[Req]](
	c echo.Context,
	handler func(c echo.Context, req PReq) (interface{}, error),
	responseHandler ResponseHandler,
) error {
	start := time.Now()
	method := c.Request().Method
	path := c.Path()

	logger := middleware.GetLogger(c).With().
		Str("operation", responseHandler.GetOperation()).
		Str("method", method).
		Str("route", path).
		Logger()

	logger.Debug().Msg("handling request")

	// Fresh request value per call; binding mutates it.
	req := PReq(new(Req))

	validationStart := time.Now()
	if err := validation.BindAndValidate(c, req); err != nil {
		logger.Warn().
			Err(err).
			Dur("validation_duration", time.Since(validationStart)).
			Msg("request validation failed")
		return err
	}
	validationDuration := time.Since(validationStart)

	handlerStart := time.Now()
	result, err := handler(c, req)
	handlerDuration := time.Since(handlerStart)

	if err != nil {
		logger.Debug().
			Err(err).
			Dur("handler_duration", handlerDuration).
			Dur("total_duration", time.Since(start)).
			Msg("handler execution failed")
		// The global error handler formats the response.
		return err
	}

	logger.Debug().
		Dur("handler_duration", handlerDuration).
		Dur("validation_duration", validationDuration).
		Dur("total_duration", time.Since(start)).
		Msg("request completed successfully")

	return responseHandler.Handle(c, result)
}

// Handle wraps a typed handler with binding, validation, error handling,
// and logging, and returns an echo.HandlerFunc ready to register on a
// route.
//
// Usage:
//
//	api.POST("/employees", handler.Handle(h.Employee.Create, http.StatusCreated))
func Handle[Req any, PReq validatablePtr[Req], Res any](
	handler HandlerFunc[PReq, Res],
	status int,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest[Req, PReq](c, func(c echo.Context, req PReq) (interface{}, error) {
			return handler(c, req)
		}, JSONResponseHandler{status: status})
	}
}

// emptyRequest is the payload type for endpoints that take no input.
type emptyRequest struct{}

func (r *emptyRequest) Validate() error { return nil }

// MessageResponse is the plain acknowledgment body shared by write
// endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}
