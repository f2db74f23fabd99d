package middleware

import (
	"context"

	"github.com/arkanhaq/contenthub/internal/server"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// LoggerKey is the key the request-scoped logger is stored under, in both
// Echo context and the request's Go context.
const LoggerKey = "logger"

// ContextEnhancer builds a request-scoped logger carrying correlation
// fields (request_id, method, path, ip) and stores it where both handlers
// and non-Echo code can reach it.
type ContextEnhancer struct {
	server *server.Server
}

func NewContextEnhancer(s *server.Server) *ContextEnhancer {
	return &ContextEnhancer{server: s}
}

// EnhanceContext returns the middleware. It must run after RequestID so
// the correlation ID is available.
func (ce *ContextEnhancer) EnhanceContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			contextLogger := ce.server.Logger.With().
				Str("request_id", GetRequestID(c)).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Str("ip", c.RealIP()).
				Logger()

			c.Set(LoggerKey, &contextLogger)

			ctx := context.WithValue(c.Request().Context(), LoggerKey, &contextLogger)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// GetLogger retrieves the request-scoped logger from Echo context. When
// the enhancer has not run it returns a no-op logger rather than nil.
func GetLogger(c echo.Context) *zerolog.Logger {
	if logger, ok := c.Get(LoggerKey).(*zerolog.Logger); ok {
		return logger
	}

	logger := zerolog.Nop()
	return &logger
}
