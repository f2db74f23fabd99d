package middleware

import (
	"github.com/arkanhaq/contenthub/internal/server"
)

// Middlewares groups the middleware components used by the HTTP server,
// built once and reused during router setup.
type Middlewares struct {
	// Global holds middleware applied across the whole API: CORS, request
	// logging, recovery, secure headers, and the global error handler.
	Global *GlobalMiddlewares

	// ContextEnhancer enriches each request with a request-scoped logger
	// carrying correlation fields.
	ContextEnhancer *ContextEnhancer
}

// NewMiddlewares constructs all middleware components from the
// application container.
func NewMiddlewares(s *server.Server) *Middlewares {
	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		ContextEnhancer: NewContextEnhancer(s),
	}
}
