package service

import (
	"github.com/arkanhaq/contenthub/internal/repository"
	"github.com/arkanhaq/contenthub/internal/server"
)

// Services is the container for all service instances, handed to the
// handler layer.
type Services struct {
	Site             *SiteService
	Articles         *ArticleService
	Users            *ContentService
	Programs         *ContentService
	Structure        *StructureService
	Announcements    *ContentService
	Gallery          *ContentService
	Notifications    *NotificationService
	InspirationNotes *ContentService
	Partners         *ContentService
	Legal            *LegalService
}

// NewService constructs every service over the repository container.
func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Site:             NewSiteService(s, repos),
		Articles:         NewArticleService(repos),
		Users:            NewContentService(repos.Users),
		Programs:         NewContentService(repos.Programs),
		Structure:        NewStructureService(repos),
		Announcements:    NewContentService(repos.Announcements),
		Gallery:          NewContentService(repos.Gallery),
		Notifications:    NewNotificationService(repos),
		InspirationNotes: NewContentService(repos.InspirationNotes),
		Partners:         NewContentService(repos.Partners),
		Legal:            NewLegalService(repos),
	}, nil
}
