package repository

import (
	"github.com/arkanhaq/contenthub/internal/mapper"
	"github.com/arkanhaq/contenthub/internal/server"
)

// Repositories is the container for all repository instances, built once
// at startup and handed to the service layer.
type Repositories struct {
	Users            *EntityRepo
	Articles         *ArticleRepo
	SiteProfile      *SingletonRepo
	ContactInfo      *SingletonRepo
	Programs         *EntityRepo
	Structure        *StructureRepo
	Announcements    *EntityRepo
	Gallery          *EntityRepo
	Comments         *CommentRepo
	Notifications    *NotificationRepo
	InspirationNotes *EntityRepo
	Partners         *EntityRepo
	Legal            *LegalRepo
}

// NewRepositories constructs every repository over the server's pool.
func NewRepositories(s *server.Server) *Repositories {
	db := s.DB.Pool
	return &Repositories{
		Users:            NewEntityRepo(db, "users", mapper.Users, "created_at"),
		Articles:         NewArticleRepo(db),
		SiteProfile:      NewSingletonRepo(db, "site_profile", mapper.SiteProfile),
		ContactInfo:      NewSingletonRepo(db, "contact_info", mapper.ContactInfo),
		Programs:         NewEntityRepo(db, "programs", mapper.Programs, "title"),
		Structure:        NewStructureRepo(db),
		Announcements:    NewEntityRepo(db, "announcements", mapper.Announcements, "published_at"),
		Gallery:          NewEntityRepo(db, "gallery", mapper.Gallery, "created_at"),
		Comments:         NewCommentRepo(db),
		Notifications:    NewNotificationRepo(db),
		InspirationNotes: NewEntityRepo(db, "inspiration_notes", mapper.InspirationNotes, "created_at"),
		Partners:         NewEntityRepo(db, "partners", mapper.Partners, "name"),
		Legal:            NewLegalRepo(db),
	}
}
