package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/arkanhaq/contenthub/internal/middleware"
	"github.com/arkanhaq/contenthub/internal/server"

	"github.com/labstack/echo/v4"
)

// HealthHandler exposes the endpoint load balancers and uptime monitors
// use to verify the service is alive and its store is reachable.
type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// CheckHealth reports overall status plus a per-dependency check map.
// It returns 200 when all checks pass and 503 otherwise.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	response := map[string]any{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks":      make(map[string]any),
	}
	checks := response["checks"].(map[string]any)
	isHealthy := true

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	dbStart := time.Now()
	if err := h.server.DB.Pool.Ping(ctx); err != nil {
		checks["database"] = map[string]any{
			"status":        "unhealthy",
			"response_time": time.Since(dbStart).String(),
			"error":         err.Error(),
		}
		isHealthy = false

		logger.Error().
			Err(err).
			Dur("response_time", time.Since(dbStart)).
			Msg("database health check failed")
	} else {
		checks["database"] = map[string]any{
			"status":        "healthy",
			"response_time": time.Since(dbStart).String(),
		}
	}

	if !isHealthy {
		response["status"] = "unhealthy"
		return c.JSON(http.StatusServiceUnavailable, response)
	}

	return c.JSON(http.StatusOK, response)
}
