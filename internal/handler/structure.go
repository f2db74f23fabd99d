package handler

import (
	"net/http"

	"github.com/arkanhaq/contenthub/internal/server"
	"github.com/arkanhaq/contenthub/internal/service"

	"github.com/labstack/echo/v4"
)

// StructureHandler serves the organizational chart.
type StructureHandler struct {
	Handler
	svc *service.StructureService
}

func NewStructureHandler(s *server.Server, svc *service.StructureService) *StructureHandler {
	return &StructureHandler{
		Handler: NewHandler(s),
		svc:     svc,
	}
}

func (h *StructureHandler) List() echo.HandlerFunc {
	return Handle(func(c echo.Context, _ *emptyRequest) ([]map[string]any, error) {
		return h.svc.List(c.Request().Context())
	}, http.StatusOK)
}

func (h *StructureHandler) Get() echo.HandlerFunc {
	return Handle(func(c echo.Context, req *idRequest) (map[string]any, error) {
		return h.svc.Get(c.Request().Context(), req.ID)
	}, http.StatusOK)
}

func (h *StructureHandler) Create() echo.HandlerFunc {
	return Handle(func(c echo.Context, req *createRequest) (map[string]any, error) {
		return h.svc.Create(c.Request().Context(), req.Fields)
	}, http.StatusCreated)
}

func (h *StructureHandler) Update() echo.HandlerFunc {
	return Handle(func(c echo.Context, req *updateRequest) (map[string]any, error) {
		return h.svc.Update(c.Request().Context(), req.ID, req.Fields)
	}, http.StatusOK)
}

func (h *StructureHandler) Delete() echo.HandlerFunc {
	return HandleNoContent(func(c echo.Context, req *idRequest) error {
		return h.svc.Delete(c.Request().Context(), req.ID)
	}, http.StatusNoContent)
}

// Replace swaps the whole chart for the posted entries, preserving the
// posted order as the display order.
func (h *StructureHandler) Replace() echo.HandlerFunc {
	return Handle(func(c echo.Context, req *entriesRequest) ([]map[string]any, error) {
		return h.svc.Replace(c.Request().Context(), req.Entries)
	}, http.StatusOK)
}
