package schema

// Directives is this deployment's reconciliation set: every legacy column
// name still found in the wild, paired with its current name. Evaluated
// once per process start, after the bootstrap migrations guarantee the
// tables exist.
//
// The articles cover image is known under three legacy names; the
// rename-only chain tries them in priority order and the closing add-only
// directive creates the column when no alias held data.
func Directives() []Directive {
	return []Directive{
		{Table: "users", Legacy: "avatarUrl", Current: "avatar_url", Definition: "VARCHAR(255)"},
		{Table: "users", Legacy: "verified", Current: "is_verified", Definition: "SMALLINT NOT NULL DEFAULT 0"},
		{Table: "articles", Legacy: "coverImage", Current: "cover_image"},
		{Table: "articles", Legacy: "imageUrl", Current: "cover_image"},
		{Table: "articles", Legacy: "thumbnail", Current: "cover_image"},
		{Table: "articles", Current: "cover_image", Definition: "VARCHAR(255)"},
		{Table: "site_profile", Legacy: "logoUrl", Current: "logo_url", Definition: "VARCHAR(255)"},
		{Table: "programs", Legacy: "imageUrl", Current: "image_url", Definition: "VARCHAR(255)"},
		{Table: "structure", Legacy: "photoUrl", Current: "photo_url", Definition: "VARCHAR(255)"},
		{Table: "gallery", Legacy: "imageUrl", Current: "image_url", Definition: "VARCHAR(255)"},
		{Table: "notifications", Legacy: "read", Current: "is_read", Definition: "SMALLINT NOT NULL DEFAULT 0"},
		{Table: "inspiration_notes", Legacy: "imageUrl", Current: "image_url", Definition: "VARCHAR(255)"},
		{Table: "partners", Legacy: "logoUrl", Current: "logo_url", Definition: "VARCHAR(255)"},
	}
}
