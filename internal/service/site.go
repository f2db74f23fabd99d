package service

import (
	"context"

	"github.com/arkanhaq/contenthub/internal/errs"
	"github.com/arkanhaq/contenthub/internal/fetch"
	"github.com/arkanhaq/contenthub/internal/mapper"
	"github.com/arkanhaq/contenthub/internal/repository"
	"github.com/arkanhaq/contenthub/internal/server"
	"github.com/arkanhaq/contenthub/internal/sqlerr"

	"github.com/rs/zerolog"
)

// aggregateSection describes one slot of the public aggregate: the query
// that feeds it, the mapping that translates its rows, and the shaping
// applied to the mapped rows.
type aggregateSection struct {
	name    string
	query   fetch.Query
	mapping mapper.Mapping
	shape   func(rows []map[string]any) any
}

// SiteService serves the site configuration singletons and the public
// aggregate endpoint that feeds the site's landing pages in one request.
type SiteService struct {
	db       fetch.Querier
	logger   *zerolog.Logger
	profile  *repository.SingletonRepo
	contact  *repository.SingletonRepo
	sections []aggregateSection
}

func NewSiteService(s *server.Server, repos *repository.Repositories) *SiteService {
	return &SiteService{
		db:       s.DB.Pool,
		logger:   s.Logger,
		profile:  repos.SiteProfile,
		contact:  repos.ContactInfo,
		sections: aggregateSections(),
	}
}

// Profile returns the site profile, or nil when none has been stored.
func (s *SiteService) Profile(ctx context.Context) (map[string]any, error) {
	return s.profile.Get(ctx)
}

func (s *SiteService) UpdateProfile(ctx context.Context, payload map[string]any) (map[string]any, error) {
	return s.profile.Upsert(ctx, payload)
}

// Contact returns the contact info, or nil when none has been stored.
func (s *SiteService) Contact(ctx context.Context) (map[string]any, error) {
	return s.contact.Get(ctx)
}

func (s *SiteService) UpdateContact(ctx context.Context, payload map[string]any) (map[string]any, error) {
	return s.contact.Upsert(ctx, payload)
}

// Aggregate assembles the composite site payload. All section reads run
// concurrently; a failed section degrades to its neutral value (nil for
// singletons, empty list or map otherwise) and is named in the response's
// "degraded" list. Only a fully degraded batch with at least one failure
// that is not a missing-schema condition, meaning the store itself is
// unreachable, surfaces as an error; a store whose tables simply have not
// been migrated yet serves the fully-empty payload.
func (s *SiteService) Aggregate(ctx context.Context) (map[string]any, error) {
	queries := make([]fetch.Query, len(s.sections))
	for i, section := range s.sections {
		queries[i] = section.query
	}

	results := fetch.FetchAll(ctx, s.db, queries)

	response := make(map[string]any, len(s.sections)+1)
	degraded := make([]string, 0)
	unreachable := false
	for i, section := range s.sections {
		result := results[i]
		if result.Degraded() {
			degraded = append(degraded, section.name)
			if !sqlerr.IsMissingSchema(result.Err) {
				unreachable = true
			}
			s.logger.Warn().
				Err(result.Err).
				Str("section", section.name).
				Msg("aggregate section degraded")
		}

		mapped := make([]map[string]any, 0, len(result.Rows))
		for _, row := range result.Rows {
			mapped = append(mapped, section.mapping.ToAPI(row))
		}
		response[section.name] = section.shape(mapped)
	}

	if unreachable && len(degraded) == len(s.sections) {
		return nil, errs.NewServiceUnavailableError("Content store is unreachable")
	}

	response["degraded"] = degraded
	return response, nil
}

func aggregateSections() []aggregateSection {
	listShape := func(rows []map[string]any) any { return rows }

	return []aggregateSection{
		{
			name:    "profile",
			query:   fetch.Query{Statement: "SELECT * FROM site_profile WHERE id = 1"},
			mapping: mapper.SiteProfile,
			shape: func(rows []map[string]any) any {
				profile := fetch.Singleton(rows)
				if profile == nil {
					return nil
				}
				profile["mission"] = fetch.DecodeJSONList(profile["mission"])
				return profile
			},
		},
		{
			name:    "contact",
			query:   fetch.Query{Statement: "SELECT * FROM contact_info WHERE id = 1"},
			mapping: mapper.ContactInfo,
			shape: func(rows []map[string]any) any {
				contact := fetch.Singleton(rows)
				if contact == nil {
					return nil
				}
				return contact
			},
		},
		{
			name:    "programs",
			query:   fetch.Query{Statement: "SELECT * FROM programs ORDER BY title"},
			mapping: mapper.Programs,
			shape:   listShape,
		},
		{
			name:    "structure",
			query:   fetch.Query{Statement: "SELECT * FROM structure ORDER BY ordinal"},
			mapping: mapper.Structure,
			shape:   listShape,
		},
		{
			name:    "announcements",
			query:   fetch.Query{Statement: "SELECT * FROM announcements ORDER BY published_at DESC"},
			mapping: mapper.Announcements,
			shape:   listShape,
		},
		{
			name:    "gallery",
			query:   fetch.Query{Statement: "SELECT * FROM gallery ORDER BY created_at DESC"},
			mapping: mapper.Gallery,
			shape:   listShape,
		},
		{
			name:    "partners",
			query:   fetch.Query{Statement: "SELECT * FROM partners ORDER BY name"},
			mapping: mapper.Partners,
			shape:   listShape,
		},
		{
			name:    "inspirationNotes",
			query:   fetch.Query{Statement: "SELECT * FROM inspiration_notes ORDER BY created_at DESC"},
			mapping: mapper.InspirationNotes,
			shape:   listShape,
		},
		{
			name:    "legal",
			query:   fetch.Query{Statement: "SELECT * FROM legal_content ORDER BY page_key"},
			mapping: mapper.LegalContent,
			shape: func(rows []map[string]any) any {
				return fetch.FoldKeyed(rows, "pageKey", "title", "content")
			},
		},
	}
}
