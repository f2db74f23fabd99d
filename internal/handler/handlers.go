package handler

import (
	"github.com/arkanhaq/contenthub/internal/server"
	"github.com/arkanhaq/contenthub/internal/service"
)

// Handlers groups all HTTP handlers so router setup passes one object
// around instead of many.
type Handlers struct {
	Health           *HealthHandler
	Site             *SiteHandler
	Articles         *ArticleHandler
	Users            *ContentHandler
	Programs         *ContentHandler
	Structure        *StructureHandler
	Announcements    *ContentHandler
	Gallery          *ContentHandler
	Notifications    *NotificationHandler
	InspirationNotes *ContentHandler
	Partners         *ContentHandler
	Legal            *LegalHandler
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:           NewHealthHandler(s),
		Site:             NewSiteHandler(s, services.Site),
		Articles:         NewArticleHandler(s, services.Articles),
		Users:            NewContentHandler(s, services.Users),
		Programs:         NewContentHandler(s, services.Programs),
		Structure:        NewStructureHandler(s, services.Structure),
		Announcements:    NewContentHandler(s, services.Announcements),
		Gallery:          NewContentHandler(s, services.Gallery),
		Notifications:    NewNotificationHandler(s, services.Notifications),
		InspirationNotes: NewContentHandler(s, services.InspirationNotes),
		Partners:         NewContentHandler(s, services.Partners),
		Legal:            NewLegalHandler(s, services.Legal),
	}
}
