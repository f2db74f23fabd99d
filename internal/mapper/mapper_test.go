package mapper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToAPIPrefersCurrentColumn(t *testing.T) {
	row := map[string]any{
		"id":         int64(1),
		"avatar_url": "current.png",
		"avatarUrl":  "legacy.png",
	}

	api := Users.ToAPI(row)

	assert.Equal(t, "current.png", api["avatarUrl"])
}

func TestToAPIFallsBackToLegacyAlias(t *testing.T) {
	row := map[string]any{
		"id":        int64(1),
		"avatarUrl": "x",
	}

	api := Users.ToAPI(row)

	assert.Equal(t, "x", api["avatarUrl"])
}

func TestToAPITreatsStoredNullAsMissing(t *testing.T) {
	row := map[string]any{
		"avatar_url": nil,
		"avatarUrl":  "legacy.png",
	}

	api := Users.ToAPI(row)

	assert.Equal(t, "legacy.png", api["avatarUrl"])
}

func TestToAPICompoundAliasChain(t *testing.T) {
	assert.Equal(t, "a.png", Articles.ToAPI(map[string]any{"cover_image": "a.png"})["coverImage"])
	assert.Equal(t, "b.png", Articles.ToAPI(map[string]any{"coverImage": "b.png"})["coverImage"])
	assert.Equal(t, "c.png", Articles.ToAPI(map[string]any{"imageUrl": "c.png"})["coverImage"])
	assert.Equal(t, "d.png", Articles.ToAPI(map[string]any{"thumbnail": "d.png"})["coverImage"])
	assert.Equal(t, "b.png", Articles.ToAPI(map[string]any{"thumbnail": "d.png", "coverImage": "b.png"})["coverImage"])
}

func TestToAPIDefaultsOnEmptyRow(t *testing.T) {
	api := Users.ToAPI(map[string]any{})

	assert.Equal(t, "", api["name"])
	assert.Equal(t, "", api["avatarUrl"])
	assert.Equal(t, int64(0), api["id"])
	assert.Equal(t, int64(0), api["verified"])
	assert.Nil(t, api["createdAt"])
}

func TestToAPINeverPanicsOnArbitraryRows(t *testing.T) {
	rows := []map[string]any{
		nil,
		{},
		{"unknown_column": "ignored"},
		{"name": 42, "is_verified": "not-a-number", "created_at": struct{}{}},
	}

	for _, row := range rows {
		assert.NotPanics(t, func() { Users.ToAPI(row) })
	}
}

func TestToAPIFlagNormalization(t *testing.T) {
	tests := []struct {
		stored any
		want   int64
	}{
		{int64(1), 1},
		{int64(7), 1},
		{int16(1), 1},
		{int64(0), 0},
		{true, 1},
		{false, 0},
		{"1", 1},
		{"true", 1},
		{"no", 0},
		{float64(1), 1},
	}

	for _, tt := range tests {
		api := Users.ToAPI(map[string]any{"is_verified": tt.stored})
		assert.Equal(t, tt.want, api["verified"], "stored %#v", tt.stored)
	}
}

func TestToAPIOmitsWriteOnlyFields(t *testing.T) {
	api := Users.ToAPI(map[string]any{"password": "hash"})

	_, present := api["password"]
	assert.False(t, present)
}

func TestToDBOmitsAbsentFields(t *testing.T) {
	cols := Articles.ToDB(map[string]any{"title": "New title"})

	assert.Equal(t, map[string]any{"title": "New title"}, cols)
}

func TestToDBKeepsExplicitNull(t *testing.T) {
	cols := Articles.ToDB(map[string]any{"coverImage": nil})

	require.Contains(t, cols, "cover_image")
	assert.Nil(t, cols["cover_image"])
}

func TestToDBExplicitOverrideBeatsGeneralSource(t *testing.T) {
	cols := Articles.ToDB(map[string]any{
		"image":      "general.png",
		"coverImage": "explicit.png",
	})

	assert.Equal(t, "explicit.png", cols["cover_image"])

	cols = Articles.ToDB(map[string]any{"image": "general.png"})
	assert.Equal(t, "general.png", cols["cover_image"])
}

func TestToDBIdentifierPassthrough(t *testing.T) {
	cols := Users.ToDB(map[string]any{"id": int64(42), "name": "A"})

	assert.Equal(t, int64(42), cols["id"])

	cols = Users.ToDB(map[string]any{"name": "A"})
	_, present := cols["id"]
	assert.False(t, present)
}

func TestToDBTranslatesToCurrentColumns(t *testing.T) {
	cols := Users.ToDB(map[string]any{
		"avatarUrl": "x.png",
		"verified":  true,
		"password":  "hash",
	})

	assert.Equal(t, map[string]any{
		"avatar_url":  "x.png",
		"is_verified": int64(1),
		"password":    "hash",
	}, cols)
}

func TestReconciledScenarioRoundTrip(t *testing.T) {
	// After the (users, avatarUrl, avatar_url) directive runs, reads hit the
	// current column and the API shape carries the preserved value.
	row := map[string]any{"id": int64(1), "avatar_url": "x"}

	api := Users.ToAPI(row)

	assert.Equal(t, "x", api["avatarUrl"])
}

func TestToAPIIdempotentThroughToDB(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	rows := []map[string]any{
		{},
		{"id": int64(3), "name": "Ed", "avatarUrl": "legacy.png", "verified": true, "created_at": now},
		{"id": int64(4), "avatar_url": nil, "avatarUrl": "fallback.png", "is_verified": int16(1)},
	}

	for i, row := range rows {
		first := Users.ToAPI(row)
		second := Users.ToAPI(Users.ToDB(first))
		assert.Equal(t, first, second, "row %d", i)
	}
}

func TestForEntity(t *testing.T) {
	m, ok := ForEntity("articles")
	require.True(t, ok)
	assert.Equal(t, "articles", m.Entity)

	_, ok = ForEntity("nope")
	assert.False(t, ok)
}
