package record

import (
	"errors"
	"sort"

	"github.com/akash247777/Rental-Management-System/internal/schema"
)

// ErrNothingToUpdate means every payload field was filtered out, which is a
// client error distinct from the site not existing
var ErrNothingToUpdate = errors.New("no fields to update")

// Patch is a typed partial update: coerced values keyed by canonical column
// name, plus the payload keys that were dropped along the way (unrecognized
// names, unparseable dates, uncoercible numbers). Dropped keys are not an
// error, since partial payloads from older clients must keep working, but
// they are surfaced so the caller can log and count them.
type Patch struct {
	SiteID  string
	Fields  map[string]any
	Dropped []string
}

// BuildPatch filters an update payload down to the fields that resolve in
// the catalog and coerce cleanly. The site identifier always comes from the
// URL path: any site_id/SITE key in the payload is ignored.
func BuildPatch(siteID string, payload map[string]any) (*Patch, error) {
	patch := &Patch{
		SiteID: siteID,
		Fields: make(map[string]any),
	}

	// Deterministic iteration keeps logs and tests stable
	keys := make([]string, 0, len(payload))
	for k := range payload {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := payload[key]

		field, ok := schema.Lookup(key)
		if !ok {
			patch.Dropped = append(patch.Dropped, key)
			continue
		}

		// The identifier is immutable after creation
		if field.Canonical == schema.SiteIDField {
			continue
		}

		if value == nil {
			patch.Dropped = append(patch.Dropped, key)
			continue
		}

		switch field.Type {
		case schema.Date:
			s := asString(value)
			if s == "" || s == "N/A" {
				patch.Dropped = append(patch.Dropped, key)
				continue
			}
			t, valid := ParseDate(s)
			if !valid {
				patch.Dropped = append(patch.Dropped, key)
				continue
			}
			patch.Fields[field.Canonical] = t
		case schema.Integer:
			n, valid := parseInt(value)
			if !valid {
				patch.Dropped = append(patch.Dropped, key)
				continue
			}
			patch.Fields[field.Canonical] = n
		case schema.Decimal:
			f, valid := parseDecimal(value)
			if !valid {
				patch.Dropped = append(patch.Dropped, key)
				continue
			}
			patch.Fields[field.Canonical] = f
		default:
			patch.Fields[field.Canonical] = asString(value)
		}
	}

	if len(patch.Fields) == 0 {
		return nil, ErrNothingToUpdate
	}
	return patch, nil
}
