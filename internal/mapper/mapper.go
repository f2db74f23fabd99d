// Package mapper translates between the persisted column representation and
// the stable API representation of each entity.
//
// The persisted schema carries history: several attributes existed under
// legacy column names before the current convention, and reconciliation may
// not have run yet against a given deployment. Each entity therefore gets a
// declarative mapping: per field, the current column, the legacy aliases to
// fall back to, and how values normalize. The API side only ever sees
// current-convention field names.
package mapper

// Kind controls how a field's value normalizes and what its default is when
// no source column holds a value.
type Kind int

const (
	// KindText defaults to the empty string.
	KindText Kind = iota

	// KindInt coerces numeric representations to int64 and defaults to 0.
	KindInt

	// KindFlag normalizes boolean-like values through integer coercion and
	// is always emitted as 0 or 1, regardless of how it was stored.
	KindFlag

	// KindRaw passes values through untouched and defaults to nil.
	KindRaw
)

// Field maps one semantic attribute.
//
// On reads the value resolves from Column first, then each alias in order;
// the first non-missing value wins. On writes the payload may offer the
// value under several API field names (an explicit override before a
// general-purpose field); Sources lists them in priority order and defaults
// to just the API name.
type Field struct {
	API     string
	Column  string
	Aliases []string
	Sources []string
	Kind    Kind

	// Identifier marks the record identifier, which passes through
	// unchanged when present.
	Identifier bool

	// WriteOnly fields (credentials) are accepted on writes but never
	// emitted in the API shape.
	WriteOnly bool
}

// Mapping is the full field set for one entity kind.
type Mapping struct {
	Entity string
	Fields []Field
}

// ToAPI converts a raw persisted row into the API shape.
//
// Every non-write-only field is present in the result: fields without a
// value in any source column resolve to their kind's default. The function
// is pure and never panics; arbitrarily shaped rows degrade to defaults.
func (m Mapping) ToAPI(row map[string]any) map[string]any {
	out := make(map[string]any, len(m.Fields))
	for _, f := range m.Fields {
		if f.WriteOnly {
			continue
		}

		value, ok := lookup(row, f.Column)
		for i := 0; !ok && i < len(f.Aliases); i++ {
			value, ok = lookup(row, f.Aliases[i])
		}

		if !ok {
			out[f.API] = defaultFor(f.Kind)
			continue
		}
		out[f.API] = normalize(f.Kind, value)
	}
	return out
}

// ToDB converts an API payload into persisted column assignments.
//
// Only fields present in the payload appear in the result; absent fields
// are omitted entirely, not defaulted, which is the partial-update contract
// used by update endpoints. An explicit null in the payload is present and
// maps to a NULL assignment. When several source fields target the same
// column, the first present source in priority order wins.
func (m Mapping) ToDB(payload map[string]any) map[string]any {
	out := make(map[string]any)
	for _, f := range m.Fields {
		sources := f.Sources
		if len(sources) == 0 {
			sources = []string{f.API}
		}

		for _, source := range sources {
			value, present := payload[source]
			if !present {
				continue
			}
			switch {
			case value == nil:
				out[f.Column] = nil
			case f.Identifier:
				out[f.Column] = value
			default:
				out[f.Column] = normalize(f.Kind, value)
			}
			break
		}
	}
	return out
}

// lookup treats both an absent key and a stored NULL as missing, so a NULL
// current column falls back to a populated legacy alias.
func lookup(row map[string]any, column string) (any, bool) {
	if column == "" {
		return nil, false
	}
	value, ok := row[column]
	if !ok || value == nil {
		return nil, false
	}
	return value, true
}

func defaultFor(kind Kind) any {
	switch kind {
	case KindText:
		return ""
	case KindInt, KindFlag:
		return int64(0)
	default:
		return nil
	}
}

func normalize(kind Kind, value any) any {
	switch kind {
	case KindText:
		if s, ok := value.(string); ok {
			return s
		}
		return defaultFor(kind)
	case KindInt:
		return coerceInt(value)
	case KindFlag:
		if coerceInt(value) != 0 {
			return int64(1)
		}
		return int64(0)
	default:
		return value
	}
}

func coerceInt(value any) int64 {
	switch v := value.(type) {
	case int64:
		return v
	case int32:
		return int64(v)
	case int16:
		return int64(v)
	case int:
		return int64(v)
	case float64:
		return int64(v)
	case bool:
		if v {
			return 1
		}
		return 0
	case string:
		if v == "1" || v == "true" {
			return 1
		}
		return 0
	default:
		return 0
	}
}
