package handler

import (
	"net/http"

	"github.com/arkanhaq/contenthub/internal/server"
	"github.com/arkanhaq/contenthub/internal/service"

	"github.com/labstack/echo/v4"
)

// NotificationHandler serves per-user notifications.
type NotificationHandler struct {
	Handler
	svc *service.NotificationService
}

func NewNotificationHandler(s *server.Server, svc *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		Handler: NewHandler(s),
		svc:     svc,
	}
}

func (h *NotificationHandler) ListByUser() echo.HandlerFunc {
	return Handle(func(c echo.Context, req *userIDRequest) ([]map[string]any, error) {
		return h.svc.ListByUser(c.Request().Context(), req.UserID)
	}, http.StatusOK)
}

func (h *NotificationHandler) Create() echo.HandlerFunc {
	return Handle(func(c echo.Context, req *createRequest) (map[string]any, error) {
		return h.svc.Create(c.Request().Context(), req.Fields)
	}, http.StatusCreated)
}

func (h *NotificationHandler) MarkRead() echo.HandlerFunc {
	return HandleNoContent(func(c echo.Context, req *idRequest) error {
		return h.svc.MarkRead(c.Request().Context(), req.ID)
	}, http.StatusNoContent)
}

func (h *NotificationHandler) MarkAllRead() echo.HandlerFunc {
	return HandleNoContent(func(c echo.Context, req *userIDRequest) error {
		return h.svc.MarkAllRead(c.Request().Context(), req.UserID)
	}, http.StatusNoContent)
}

func (h *NotificationHandler) Delete() echo.HandlerFunc {
	return HandleNoContent(func(c echo.Context, req *idRequest) error {
		return h.svc.Delete(c.Request().Context(), req.ID)
	}, http.StatusNoContent)
}
