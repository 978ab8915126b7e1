// Package record maps between raw rentdetails rows, API payloads and the
// denormalized response form served to clients.
package record

import (
	"strings"
	"time"

	"github.com/akash247777/Rental-Management-System/internal/datemath"
	"github.com/akash247777/Rental-Management-System/internal/schema"
)

// Normalize turns one raw persisted row into a complete API-facing record.
// Columns may arrive in any order and any case; fields missing from the row
// fall back to a type-appropriate default instead of failing, so a list or
// report always gets a value for every field. The two derived display slots
// are recomputed from the stored dates against ref, and every field is
// emitted under both its canonical name and all of its aliases, because two
// generations of clients read different conventions from the same response.
func Normalize(values []any, columns []string, ref time.Time) map[string]any {
	// Case-insensitive column name → positional index
	index := make(map[string]int, len(columns))
	for i, col := range columns {
		index[strings.ToUpper(col)] = i
	}

	out := make(map[string]any, len(schema.Fields())*2)

	for _, f := range schema.Fields() {
		raw, ok := valueAt(values, index, f.Canonical)
		out[f.Canonical] = fieldValue(raw, ok, f.Type)
	}

	// Recompute the derived slots, overwriting whatever the row carried
	if src, ok := dateAt(values, index, schema.ElapsedSourceField); ok {
		out[schema.ElapsedField] = datemath.Elapsed(ref, src)
	}
	if src, ok := dateAt(values, index, schema.RemainingSourceField); ok {
		out[schema.RemainingField] = datemath.Remaining(ref, src)
	}

	// Mirror every canonical value under its aliases
	for _, f := range schema.Fields() {
		for _, alias := range f.Aliases {
			out[alias] = out[f.Canonical]
		}
	}

	return out
}

func valueAt(values []any, index map[string]int, canonical string) (any, bool) {
	i, ok := index[strings.ToUpper(canonical)]
	if !ok || i >= len(values) {
		return nil, false
	}
	return values[i], true
}

// dateAt reads a stored date slot as a time.Time, accepting either a scanned
// time value or an ISO string
func dateAt(values []any, index map[string]int, canonical string) (time.Time, bool) {
	raw, ok := valueAt(values, index, canonical)
	if !ok || raw == nil {
		return time.Time{}, false
	}
	switch v := raw.(type) {
	case time.Time:
		return v, true
	case *time.Time:
		if v == nil {
			return time.Time{}, false
		}
		return *v, true
	case string:
		return ParseDate(v)
	case []byte:
		return ParseDate(string(v))
	default:
		return time.Time{}, false
	}
}

// fieldValue converts one raw cell to its response form, degrading to the
// type default on anything missing or malformed
func fieldValue(raw any, ok bool, ftype schema.FieldType) any {
	if !ok || raw == nil {
		switch ftype {
		case schema.Integer:
			return 0
		case schema.Decimal:
			return float64(0)
		default:
			return ""
		}
	}

	switch ftype {
	case schema.Date:
		// time values are formatted as ISO; strings pass through unchanged
		if t, isTime := raw.(time.Time); isTime {
			return t.Format(ISODateFormat)
		}
		if t, isTime := raw.(*time.Time); isTime {
			if t == nil {
				return ""
			}
			return t.Format(ISODateFormat)
		}
		return asString(raw)
	case schema.Integer:
		if n, valid := parseInt(raw); valid {
			return n
		}
		return 0
	case schema.Decimal:
		if f, valid := parseDecimal(raw); valid {
			return f
		}
		return float64(0)
	default:
		return asString(raw)
	}
}
