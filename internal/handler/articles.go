package handler

import (
	"net/http"

	"github.com/arkanhaq/contenthub/internal/server"
	"github.com/arkanhaq/contenthub/internal/service"

	"github.com/labstack/echo/v4"
)

// ArticleHandler serves articles and their comments.
type ArticleHandler struct {
	Handler
	svc *service.ArticleService
}

func NewArticleHandler(s *server.Server, svc *service.ArticleService) *ArticleHandler {
	return &ArticleHandler{
		Handler: NewHandler(s),
		svc:     svc,
	}
}

func (h *ArticleHandler) List() echo.HandlerFunc {
	return Handle(func(c echo.Context, _ *emptyRequest) ([]map[string]any, error) {
		return h.svc.List(c.Request().Context())
	}, http.StatusOK)
}

func (h *ArticleHandler) Get() echo.HandlerFunc {
	return Handle(func(c echo.Context, req *idRequest) (map[string]any, error) {
		return h.svc.Get(c.Request().Context(), req.ID)
	}, http.StatusOK)
}

func (h *ArticleHandler) GetBySlug() echo.HandlerFunc {
	return Handle(func(c echo.Context, req *slugRequest) (map[string]any, error) {
		return h.svc.GetBySlug(c.Request().Context(), req.Slug)
	}, http.StatusOK)
}

func (h *ArticleHandler) Create() echo.HandlerFunc {
	return Handle(func(c echo.Context, req *createRequest) (map[string]any, error) {
		return h.svc.Create(c.Request().Context(), req.Fields)
	}, http.StatusCreated)
}

func (h *ArticleHandler) Update() echo.HandlerFunc {
	return Handle(func(c echo.Context, req *updateRequest) (map[string]any, error) {
		return h.svc.Update(c.Request().Context(), req.ID, req.Fields)
	}, http.StatusOK)
}

func (h *ArticleHandler) Delete() echo.HandlerFunc {
	return HandleNoContent(func(c echo.Context, req *idRequest) error {
		return h.svc.Delete(c.Request().Context(), req.ID)
	}, http.StatusNoContent)
}

func (h *ArticleHandler) ListComments() echo.HandlerFunc {
	return Handle(func(c echo.Context, req *idRequest) ([]map[string]any, error) {
		return h.svc.ListComments(c.Request().Context(), req.ID)
	}, http.StatusOK)
}

func (h *ArticleHandler) AddComment() echo.HandlerFunc {
	return Handle(func(c echo.Context, req *updateRequest) (map[string]any, error) {
		return h.svc.AddComment(c.Request().Context(), req.ID, req.Fields)
	}, http.StatusCreated)
}

func (h *ArticleHandler) DeleteComment() echo.HandlerFunc {
	return HandleNoContent(func(c echo.Context, req *commentIDRequest) error {
		return h.svc.DeleteComment(c.Request().Context(), req.CommentID)
	}, http.StatusNoContent)
}
