package handler

import (
	"time"

	"github.com/arkanhaq/contenthub/internal/middleware"
	"github.com/arkanhaq/contenthub/internal/server"
	"github.com/arkanhaq/contenthub/internal/validation"

	"github.com/labstack/echo/v4"
)

// Handler is the base type that holds shared application dependencies. It
// is embedded by concrete handlers so they can reach config, logger, and
// the database through *server.Server.
type Handler struct {
	server *server.Server
}

// NewHandler constructs a base Handler. Returning by value is fine; the
// struct only holds a pointer.
func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// ResponseHandler defines how a successful handler result is written to
// the HTTP response.
type ResponseHandler interface {
	Handle(c echo.Context, result any) error

	// GetOperation returns an operation name used in structured logs.
	GetOperation() string
}

// JSONResponseHandler writes JSON responses with a fixed status code.
type JSONResponseHandler struct {
	status int
}

func (h JSONResponseHandler) Handle(c echo.Context, result any) error {
	return c.JSON(h.status, result)
}

func (h JSONResponseHandler) GetOperation() string {
	return "handler"
}

// NoContentResponseHandler writes responses with no body, typically 204.
type NoContentResponseHandler struct {
	status int
}

func (h NoContentResponseHandler) Handle(c echo.Context, result any) error {
	return c.NoContent(h.status)
}

func (h NoContentResponseHandler) GetOperation() string {
	return "handler_no_content"
}

// handleRequest is the shared execution pipeline for all endpoints. It
// centralizes request binding and validation, structured logging with the
// request-scoped logger, timing, and response writing.
func handleRequest[Req validation.Validatable](
	c echo.Context,
	req Req,
	handler func(c echo.Context, req Req) (any, error),
	responseHandler ResponseHandler,
) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", responseHandler.GetOperation()).
		Str("method", c.Request().Method).
		Str("route", c.Path()).
		Logger()

	if err := validation.BindAndValidate(c, req); err != nil {
		logger.Warn().
			Err(err).
			Dur("total_duration", time.Since(start)).
			Msg("request validation failed")
		return err
	}

	result, err := handler(c, req)
	if err != nil {
		logger.Error().
			Err(err).
			Dur("total_duration", time.Since(start)).
			Msg("handler execution failed")
		return err
	}

	logger.Debug().
		Dur("total_duration", time.Since(start)).
		Msg("request completed")

	return responseHandler.Handle(c, result)
}

// Handle wraps a typed endpoint function into an echo.HandlerFunc with
// binding, validation, logging, and JSON response writing. A fresh request
// value is allocated per request, so handlers are safe under concurrency.
func Handle[Req any, PReq interface {
	*Req
	validation.Validatable
}, Res any](
	handler func(c echo.Context, req PReq) (Res, error),
	status int,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := PReq(new(Req))
		return handleRequest(c, req, func(c echo.Context, req PReq) (any, error) {
			return handler(c, req)
		}, JSONResponseHandler{status: status})
	}
}

// HandleNoContent is Handle for endpoints that return no body.
func HandleNoContent[Req any, PReq interface {
	*Req
	validation.Validatable
}](
	handler func(c echo.Context, req PReq) error,
	status int,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := PReq(new(Req))
		return handleRequest(c, req, func(c echo.Context, req PReq) (any, error) {
			return nil, handler(c, req)
		}, NoContentResponseHandler{status: status})
	}
}
