package handler

import (
	"net/http"

	"github.com/arkanhaq/contenthub/internal/server"
	"github.com/arkanhaq/contenthub/internal/service"

	"github.com/labstack/echo/v4"
)

// LegalHandler serves the legal pages, addressed by page key.
type LegalHandler struct {
	Handler
	svc *service.LegalService
}

func NewLegalHandler(s *server.Server, svc *service.LegalService) *LegalHandler {
	return &LegalHandler{
		Handler: NewHandler(s),
		svc:     svc,
	}
}

func (h *LegalHandler) List() echo.HandlerFunc {
	return Handle(func(c echo.Context, _ *emptyRequest) ([]map[string]any, error) {
		return h.svc.List(c.Request().Context())
	}, http.StatusOK)
}

func (h *LegalHandler) GetByKey() echo.HandlerFunc {
	return Handle(func(c echo.Context, req *pageKeyRequest) (map[string]any, error) {
		return h.svc.GetByKey(c.Request().Context(), req.Key)
	}, http.StatusOK)
}

func (h *LegalHandler) UpsertByKey() echo.HandlerFunc {
	return Handle(func(c echo.Context, req *pageKeyPayloadRequest) (map[string]any, error) {
		return h.svc.UpsertByKey(c.Request().Context(), req.Key, req.Fields)
	}, http.StatusOK)
}
