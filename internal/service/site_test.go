package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/arkanhaq/contenthub/internal/errs"
	"github.com/arkanhaq/contenthub/internal/testkit"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func siteServiceOver(db *testkit.DB) *SiteService {
	logger := zerolog.Nop()
	return &SiteService{
		db:       db,
		logger:   &logger,
		sections: aggregateSections(),
	}
}

func undefinedTable(name string) error {
	return &pgconn.PgError{Code: "42P01", Message: `relation "` + name + `" does not exist`}
}

// Scripts a populated store; tables not listed answer with no rows.
func populatedStore() *testkit.DB {
	return &testkit.DB{
		QueryFn: func(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
			switch {
			case strings.Contains(sql, "site_profile"):
				return testkit.NewRows(
					[]string{"id", "name", "mission", "logoUrl"},
					[]any{int64(1), "Yayasan", `["teach","feed"]`, "/img/logo.png"},
				), nil
			case strings.Contains(sql, "legal_content"):
				return testkit.NewRows(
					[]string{"id", "page_key", "title", "content"},
					[]any{int64(1), "privacy", "Privacy", "p-body"},
					[]any{int64(2), "terms", "Terms", "t-body"},
				), nil
			case strings.Contains(sql, "programs"):
				return testkit.NewRows(
					[]string{"id", "title", "imageUrl"},
					[]any{int64(1), "Literacy", "/img/lit.png"},
				), nil
			default:
				return testkit.NewRows(nil), nil
			}
		},
	}
}

func TestAggregateShapesSections(t *testing.T) {
	svc := siteServiceOver(populatedStore())

	out, err := svc.Aggregate(context.Background())
	require.NoError(t, err)

	profile, ok := out["profile"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Yayasan", profile["name"])
	assert.Equal(t, []any{"teach", "feed"}, profile["mission"])
	assert.Equal(t, "/img/logo.png", profile["logoUrl"])

	assert.Nil(t, out["contact"])

	legal, ok := out["legal"].(map[string]any)
	require.True(t, ok)
	privacy := legal["privacy"].(map[string]any)
	assert.Equal(t, "Privacy", privacy["title"])
	assert.Equal(t, "p-body", privacy["content"])
	assert.NotContains(t, privacy, "id")

	programs := out["programs"].([]map[string]any)
	require.Len(t, programs, 1)
	assert.Equal(t, "/img/lit.png", programs[0]["imageUrl"])

	assert.Empty(t, out["degraded"])
}

func TestAggregateIsolatesFailedSection(t *testing.T) {
	db := &testkit.DB{
		QueryFn: func(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
			if strings.Contains(sql, "gallery") {
				return nil, undefinedTable("gallery")
			}
			return testkit.NewRows(nil), nil
		},
	}
	svc := siteServiceOver(db)

	out, err := svc.Aggregate(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"gallery"}, out["degraded"])
	assert.Equal(t, []map[string]any{}, out["gallery"])
	assert.Equal(t, []map[string]any{}, out["programs"])
}

func TestAggregateUnreachableStore(t *testing.T) {
	db := &testkit.DB{
		QueryFn: func(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
			return nil, fmt.Errorf("dial tcp 127.0.0.1:5432: connect: connection refused")
		},
	}
	svc := siteServiceOver(db)

	_, err := svc.Aggregate(context.Background())
	require.Error(t, err)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 503, httpErr.Status)
}

func TestAggregateUnmigratedStoreServesEmptyPayload(t *testing.T) {
	db := &testkit.DB{
		QueryFn: func(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
			return nil, undefinedTable("any")
		},
	}
	svc := siteServiceOver(db)

	out, err := svc.Aggregate(context.Background())
	require.NoError(t, err, "missing tables must never be user-visible as an error")

	assert.Len(t, out["degraded"], len(svc.sections))
	assert.Nil(t, out["profile"])
	assert.Nil(t, out["contact"])
	assert.Equal(t, []map[string]any{}, out["programs"])
	assert.Equal(t, map[string]any{}, out["legal"])
}

func TestAggregateMixedUnmigratedAndConnectivityFailure(t *testing.T) {
	db := &testkit.DB{
		QueryFn: func(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
			if strings.Contains(sql, "gallery") {
				return nil, fmt.Errorf("read tcp: connection reset")
			}
			return nil, undefinedTable("any")
		},
	}
	svc := siteServiceOver(db)

	_, err := svc.Aggregate(context.Background())

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 503, httpErr.Status)
}
