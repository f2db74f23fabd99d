package mapper

// Entity mappings, one per persisted table. Alias chains carry every legacy
// column name a deployment may still hold; source chains carry the write
// payload fields accepted for a column, explicit override first.

// Users maps the users table.
var Users = Mapping{
	Entity: "users",
	Fields: []Field{
		{API: "id", Column: "id", Kind: KindInt, Identifier: true},
		{API: "name", Column: "name", Kind: KindText},
		{API: "email", Column: "email", Kind: KindText},
		{API: "password", Column: "password", Kind: KindText, WriteOnly: true},
		{API: "role", Column: "role", Kind: KindText},
		{API: "avatarUrl", Column: "avatar_url", Aliases: []string{"avatarUrl"}, Sources: []string{"avatarUrl", "photo"}, Kind: KindText},
		{API: "verified", Column: "is_verified", Aliases: []string{"verified"}, Kind: KindFlag},
		{API: "createdAt", Column: "created_at", Kind: KindRaw},
	},
}

// Articles maps the articles table. The cover image has carried three names
// across schema versions, hence the long alias chain.
var Articles = Mapping{
	Entity: "articles",
	Fields: []Field{
		{API: "id", Column: "id", Kind: KindInt, Identifier: true},
		{API: "title", Column: "title", Kind: KindText},
		{API: "slug", Column: "slug", Kind: KindText},
		{API: "content", Column: "content", Kind: KindText},
		{API: "coverImage", Column: "cover_image", Aliases: []string{"coverImage", "imageUrl", "thumbnail"}, Sources: []string{"coverImage", "image"}, Kind: KindText},
		{API: "authorId", Column: "author_id", Kind: KindRaw},
		{API: "published", Column: "published", Kind: KindFlag},
		{API: "createdAt", Column: "created_at", Kind: KindRaw},
		{API: "updatedAt", Column: "updated_at", Kind: KindRaw},
	},
}

// SiteProfile maps the singleton site_profile table. The mission column
// stores a JSON-encoded list; decoding happens in the aggregate shaping,
// not here.
var SiteProfile = Mapping{
	Entity: "site_profile",
	Fields: []Field{
		{API: "id", Column: "id", Kind: KindInt, Identifier: true},
		{API: "name", Column: "name", Kind: KindText},
		{API: "tagline", Column: "tagline", Kind: KindText},
		{API: "about", Column: "about", Kind: KindText},
		{API: "mission", Column: "mission", Kind: KindText},
		{API: "vision", Column: "vision", Kind: KindText},
		{API: "logoUrl", Column: "logo_url", Aliases: []string{"logoUrl"}, Sources: []string{"logoUrl", "logo"}, Kind: KindText},
		{API: "history", Column: "history", Kind: KindText},
	},
}

// ContactInfo maps the singleton contact_info table.
var ContactInfo = Mapping{
	Entity: "contact_info",
	Fields: []Field{
		{API: "id", Column: "id", Kind: KindInt, Identifier: true},
		{API: "address", Column: "address", Kind: KindText},
		{API: "phone", Column: "phone", Kind: KindText},
		{API: "email", Column: "email", Kind: KindText},
		{API: "whatsapp", Column: "whatsapp", Kind: KindText},
		{API: "mapsUrl", Column: "maps_url", Kind: KindText},
		{API: "facebook", Column: "facebook", Kind: KindText},
		{API: "instagram", Column: "instagram", Kind: KindText},
		{API: "youtube", Column: "youtube", Kind: KindText},
	},
}

// Programs maps the programs table.
var Programs = Mapping{
	Entity: "programs",
	Fields: []Field{
		{API: "id", Column: "id", Kind: KindInt, Identifier: true},
		{API: "title", Column: "title", Kind: KindText},
		{API: "description", Column: "description", Kind: KindText},
		{API: "imageUrl", Column: "image_url", Aliases: []string{"imageUrl"}, Kind: KindText},
		{API: "category", Column: "category", Kind: KindText},
	},
}

// Structure maps the structure table (organizational chart entries).
var Structure = Mapping{
	Entity: "structure",
	Fields: []Field{
		{API: "id", Column: "id", Kind: KindInt, Identifier: true},
		{API: "name", Column: "name", Kind: KindText},
		{API: "position", Column: "position", Kind: KindText},
		{API: "photoUrl", Column: "photo_url", Aliases: []string{"photoUrl"}, Kind: KindText},
		{API: "ordinal", Column: "ordinal", Kind: KindInt},
	},
}

// Announcements maps the announcements table.
var Announcements = Mapping{
	Entity: "announcements",
	Fields: []Field{
		{API: "id", Column: "id", Kind: KindInt, Identifier: true},
		{API: "title", Column: "title", Kind: KindText},
		{API: "content", Column: "content", Kind: KindText},
		{API: "attachmentUrl", Column: "attachment_url", Kind: KindText},
		{API: "publishedAt", Column: "published_at", Kind: KindRaw},
	},
}

// Gallery maps the gallery table.
var Gallery = Mapping{
	Entity: "gallery",
	Fields: []Field{
		{API: "id", Column: "id", Kind: KindInt, Identifier: true},
		{API: "title", Column: "title", Kind: KindText},
		{API: "caption", Column: "caption", Kind: KindText},
		{API: "imageUrl", Column: "image_url", Aliases: []string{"imageUrl"}, Kind: KindText},
		{API: "createdAt", Column: "created_at", Kind: KindRaw},
	},
}

// Comments maps the comments table.
var Comments = Mapping{
	Entity: "comments",
	Fields: []Field{
		{API: "id", Column: "id", Kind: KindInt, Identifier: true},
		{API: "articleId", Column: "article_id", Kind: KindInt},
		{API: "authorName", Column: "author_name", Kind: KindText},
		{API: "content", Column: "content", Kind: KindText},
		{API: "createdAt", Column: "created_at", Kind: KindRaw},
	},
}

// Notifications maps the notifications table.
var Notifications = Mapping{
	Entity: "notifications",
	Fields: []Field{
		{API: "id", Column: "id", Kind: KindInt, Identifier: true},
		{API: "userId", Column: "user_id", Kind: KindRaw},
		{API: "title", Column: "title", Kind: KindText},
		{API: "body", Column: "body", Kind: KindText},
		{API: "isRead", Column: "is_read", Aliases: []string{"read"}, Kind: KindFlag},
		{API: "createdAt", Column: "created_at", Kind: KindRaw},
	},
}

// InspirationNotes maps the inspiration_notes table.
var InspirationNotes = Mapping{
	Entity: "inspiration_notes",
	Fields: []Field{
		{API: "id", Column: "id", Kind: KindInt, Identifier: true},
		{API: "author", Column: "author", Kind: KindText},
		{API: "quote", Column: "quote", Kind: KindText},
		{API: "imageUrl", Column: "image_url", Aliases: []string{"imageUrl"}, Kind: KindText},
		{API: "createdAt", Column: "created_at", Kind: KindRaw},
	},
}

// Partners maps the partners table.
var Partners = Mapping{
	Entity: "partners",
	Fields: []Field{
		{API: "id", Column: "id", Kind: KindInt, Identifier: true},
		{API: "name", Column: "name", Kind: KindText},
		{API: "logoUrl", Column: "logo_url", Aliases: []string{"logoUrl"}, Kind: KindText},
		{API: "websiteUrl", Column: "website_url", Kind: KindText},
	},
}

// LegalContent maps the legal_content table, a keyed-content table whose
// rows fold into a map by page key in the aggregate response.
var LegalContent = Mapping{
	Entity: "legal_content",
	Fields: []Field{
		{API: "id", Column: "id", Kind: KindInt, Identifier: true},
		{API: "pageKey", Column: "page_key", Kind: KindText},
		{API: "title", Column: "title", Kind: KindText},
		{API: "content", Column: "content", Kind: KindText},
	},
}

var registry = map[string]Mapping{}

func init() {
	for _, m := range []Mapping{
		Users, Articles, SiteProfile, ContactInfo, Programs, Structure,
		Announcements, Gallery, Comments, Notifications, InspirationNotes,
		Partners, LegalContent,
	} {
		registry[m.Entity] = m
	}
}

// ForEntity returns the mapping registered for an entity kind.
func ForEntity(kind string) (Mapping, bool) {
	m, ok := registry[kind]
	return m, ok
}
