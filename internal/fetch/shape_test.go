package fetch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFoldKeyed(t *testing.T) {
	rows := []map[string]any{
		{"id": int64(1), "pageKey": "privacy-policy", "title": "Privacy", "content": "..."},
		{"id": int64(2), "pageKey": "terms", "title": "Terms", "content": "..."},
	}

	folded := FoldKeyed(rows, "pageKey", "title", "content")

	require.Len(t, folded, 2)
	entry, ok := folded["privacy-policy"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Privacy", entry["title"])
	_, hasID := entry["id"]
	assert.False(t, hasID, "only the listed value fields are kept")
}

func TestFoldKeyedDuplicateKeysLastWins(t *testing.T) {
	rows := []map[string]any{
		{"pageKey": "terms", "title": "Old"},
		{"pageKey": "terms", "title": "New"},
	}

	folded := FoldKeyed(rows, "pageKey", "title")

	entry := folded["terms"].(map[string]any)
	assert.Equal(t, "New", entry["title"])
}

func TestFoldKeyedSkipsRowsWithoutKey(t *testing.T) {
	rows := []map[string]any{
		{"title": "No key"},
		{"pageKey": "", "title": "Empty key"},
		{"pageKey": 3, "title": "Non-string key"},
	}

	assert.Empty(t, FoldKeyed(rows, "pageKey", "title"))
}

func TestDecodeJSONList(t *testing.T) {
	assert.Equal(t, []any{"a", "b"}, DecodeJSONList(`["a","b"]`))
	assert.Equal(t, []any{}, DecodeJSONList("not-json"))
	assert.Equal(t, []any{}, DecodeJSONList(""))
	assert.Equal(t, []any{}, DecodeJSONList(nil))
	assert.Equal(t, []any{}, DecodeJSONList(`{"a":1}`))
	assert.Equal(t, []any{}, DecodeJSONList(`null`))
	assert.Equal(t, []any{}, DecodeJSONList(42))
}

func TestSingleton(t *testing.T) {
	row := map[string]any{"address": "Main St"}

	assert.Equal(t, row, Singleton([]map[string]any{row}))
	assert.Nil(t, Singleton(nil), "zero rows must project to an explicit absence, not an empty object")
	assert.Nil(t, Singleton([]map[string]any{}))
}
