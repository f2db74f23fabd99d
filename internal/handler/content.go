package handler

import (
	"net/http"

	"github.com/arkanhaq/contenthub/internal/server"
	"github.com/arkanhaq/contenthub/internal/service"

	"github.com/labstack/echo/v4"
)

// ContentHandler serves the flat content collections (users, programs,
// announcements, gallery, inspiration notes, partners) whose endpoints
// are uniform CRUD.
type ContentHandler struct {
	Handler
	svc *service.ContentService
}

func NewContentHandler(s *server.Server, svc *service.ContentService) *ContentHandler {
	return &ContentHandler{
		Handler: NewHandler(s),
		svc:     svc,
	}
}

func (h *ContentHandler) List() echo.HandlerFunc {
	return Handle(func(c echo.Context, _ *emptyRequest) ([]map[string]any, error) {
		return h.svc.List(c.Request().Context())
	}, http.StatusOK)
}

func (h *ContentHandler) Get() echo.HandlerFunc {
	return Handle(func(c echo.Context, req *idRequest) (map[string]any, error) {
		return h.svc.Get(c.Request().Context(), req.ID)
	}, http.StatusOK)
}

func (h *ContentHandler) Create() echo.HandlerFunc {
	return Handle(func(c echo.Context, req *createRequest) (map[string]any, error) {
		return h.svc.Create(c.Request().Context(), req.Fields)
	}, http.StatusCreated)
}

func (h *ContentHandler) Update() echo.HandlerFunc {
	return Handle(func(c echo.Context, req *updateRequest) (map[string]any, error) {
		return h.svc.Update(c.Request().Context(), req.ID, req.Fields)
	}, http.StatusOK)
}

func (h *ContentHandler) Delete() echo.HandlerFunc {
	return HandleNoContent(func(c echo.Context, req *idRequest) error {
		return h.svc.Delete(c.Request().Context(), req.ID)
	}, http.StatusNoContent)
}
