package fetch

import "encoding/json"

// FoldKeyed folds API-shaped rows into a map keyed by one field, keeping
// only the listed value fields per entry. Rows missing the key field are
// skipped; duplicate keys resolve last-write-wins in row order.
func FoldKeyed(rows []map[string]any, keyField string, valueFields ...string) map[string]any {
	folded := make(map[string]any, len(rows))
	for _, row := range rows {
		key, ok := row[keyField].(string)
		if !ok || key == "" {
			continue
		}
		entry := make(map[string]any, len(valueFields))
		for _, field := range valueFields {
			entry[field] = row[field]
		}
		folded[key] = entry
	}
	return folded
}

// DecodeJSONList decodes a JSON-encoded list stored in a text column.
// Malformed or absent JSON resolves to an empty list rather than an error;
// persisted garbage must not break the aggregate response.
func DecodeJSONList(value any) []any {
	text, ok := value.(string)
	if !ok || text == "" {
		return []any{}
	}

	var list []any
	if err := json.Unmarshal([]byte(text), &list); err != nil || list == nil {
		return []any{}
	}
	return list
}

// Singleton projects a singleton-row result into either the row or nil.
// Zero rows means an explicit absence marker for the API (null), never a
// fabricated object with empty fields.
func Singleton(rows []map[string]any) map[string]any {
	if len(rows) == 0 {
		return nil
	}
	return rows[0]
}
