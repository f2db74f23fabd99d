package handler

import (
	"net/http"

	"github.com/arkanhaq/contenthub/internal/server"
	"github.com/arkanhaq/contenthub/internal/service"

	"github.com/labstack/echo/v4"
)

// SiteHandler serves the site configuration singletons and the public
// aggregate endpoint.
type SiteHandler struct {
	Handler
	svc *service.SiteService
}

func NewSiteHandler(s *server.Server, svc *service.SiteService) *SiteHandler {
	return &SiteHandler{
		Handler: NewHandler(s),
		svc:     svc,
	}
}

// Aggregate returns the composite payload the public site renders its
// landing pages from.
func (h *SiteHandler) Aggregate() echo.HandlerFunc {
	return Handle(func(c echo.Context, _ *emptyRequest) (map[string]any, error) {
		return h.svc.Aggregate(c.Request().Context())
	}, http.StatusOK)
}

func (h *SiteHandler) GetProfile() echo.HandlerFunc {
	return Handle(func(c echo.Context, _ *emptyRequest) (map[string]any, error) {
		return h.svc.Profile(c.Request().Context())
	}, http.StatusOK)
}

func (h *SiteHandler) UpdateProfile() echo.HandlerFunc {
	return Handle(func(c echo.Context, req *createRequest) (map[string]any, error) {
		return h.svc.UpdateProfile(c.Request().Context(), req.Fields)
	}, http.StatusOK)
}

func (h *SiteHandler) GetContact() echo.HandlerFunc {
	return Handle(func(c echo.Context, _ *emptyRequest) (map[string]any, error) {
		return h.svc.Contact(c.Request().Context())
	}, http.StatusOK)
}

func (h *SiteHandler) UpdateContact() echo.HandlerFunc {
	return Handle(func(c echo.Context, req *createRequest) (map[string]any, error) {
		return h.svc.UpdateContact(c.Request().Context(), req.Fields)
	}, http.StatusOK)
}
