package router

import (
	"github.com/arkanhaq/contenthub/internal/handler"

	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers endpoints that are not business logic,
// kept in their own file so API route changes don't touch them.
func registerSystemRoutes(e *echo.Echo, h *handler.Handlers) {
	// Health status endpoint, used by load balancers and monitors.
	e.GET("/status", h.Health.CheckHealth)
}
