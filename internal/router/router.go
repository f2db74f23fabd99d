// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups, mapping
// specific paths to their corresponding handlers.
package router

import (
	"github.com/arkanhaq/contenthub/internal/handler"
	"github.com/arkanhaq/contenthub/internal/middleware"

	"github.com/labstack/echo/v4"
)

// New builds the Echo instance: global middleware first, then the system
// routes and the versioned API groups.
func New(middlewares *middleware.Middlewares, handlers *handler.Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	e.Use(middlewares.Global.Recover())
	e.Use(middlewares.Global.Secure())
	e.Use(middlewares.Global.CORS())
	e.Use(middleware.RequestID())
	e.Use(middlewares.ContextEnhancer.EnhanceContext())
	e.Use(middlewares.Global.RequestLogger())

	registerSystemRoutes(e, handlers)
	registerAPIRoutes(e, handlers)

	return e
}

func registerAPIRoutes(e *echo.Echo, h *handler.Handlers) {
	api := e.Group("/api")

	// Composite payload the public site renders its landing pages from.
	api.GET("/site", h.Site.Aggregate())

	api.GET("/site/profile", h.Site.GetProfile())
	api.PUT("/site/profile", h.Site.UpdateProfile())
	api.GET("/site/contact", h.Site.GetContact())
	api.PUT("/site/contact", h.Site.UpdateContact())

	articles := api.Group("/articles")
	articles.GET("", h.Articles.List())
	articles.POST("", h.Articles.Create())
	articles.GET("/slug/:slug", h.Articles.GetBySlug())
	articles.GET("/:id", h.Articles.Get())
	articles.PUT("/:id", h.Articles.Update())
	articles.DELETE("/:id", h.Articles.Delete())
	articles.GET("/:id/comments", h.Articles.ListComments())
	articles.POST("/:id/comments", h.Articles.AddComment())
	articles.DELETE("/comments/:commentId", h.Articles.DeleteComment())

	registerCRUDRoutes(api.Group("/users"), h.Users)
	registerCRUDRoutes(api.Group("/programs"), h.Programs)
	registerCRUDRoutes(api.Group("/announcements"), h.Announcements)
	registerCRUDRoutes(api.Group("/gallery"), h.Gallery)
	registerCRUDRoutes(api.Group("/inspiration-notes"), h.InspirationNotes)
	registerCRUDRoutes(api.Group("/partners"), h.Partners)

	structure := api.Group("/structure")
	structure.GET("", h.Structure.List())
	structure.POST("", h.Structure.Create())
	structure.PUT("", h.Structure.Replace())
	structure.GET("/:id", h.Structure.Get())
	structure.PUT("/:id", h.Structure.Update())
	structure.DELETE("/:id", h.Structure.Delete())

	notifications := api.Group("/notifications")
	notifications.POST("", h.Notifications.Create())
	notifications.GET("/user/:userId", h.Notifications.ListByUser())
	notifications.PUT("/user/:userId/read", h.Notifications.MarkAllRead())
	notifications.PUT("/:id/read", h.Notifications.MarkRead())
	notifications.DELETE("/:id", h.Notifications.Delete())

	legal := api.Group("/legal")
	legal.GET("", h.Legal.List())
	legal.GET("/:key", h.Legal.GetByKey())
	legal.PUT("/:key", h.Legal.UpsertByKey())
}

func registerCRUDRoutes(g *echo.Group, h *handler.ContentHandler) {
	g.GET("", h.List())
	g.POST("", h.Create())
	g.GET("/:id", h.Get())
	g.PUT("/:id", h.Update())
	g.DELETE("/:id", h.Delete())
}
