// Package schema holds the single authoritative table describing every
// rentdetails column: its canonical display name, the alias names accepted
// from API clients, and its value type. Both naming conventions resolve to
// the same field, so callers never need the old pair of parallel maps.
package schema

// FieldType classifies how a field's values are parsed and defaulted
type FieldType string

const (
	Text    FieldType = "text"
	Date    FieldType = "date"
	Integer FieldType = "integer"
	Decimal FieldType = "decimal"
)

// Field describes one rentdetails attribute
type Field struct {
	Canonical string    // display-form name, also the persisted column name
	Aliases   []string  // legacy snake_case names accepted from clients
	Type      FieldType
}

// Derived display slots recomputed on every read (never meaningfully stored)
const (
	ElapsedField         = "CURRENT DATE 1" // time since RENT POSITION DATE
	RemainingField       = "VALIDITY DATE"  // time until AGREEMENT VALID UPTO
	ElapsedSourceField   = "RENT POSITION DATE"
	RemainingSourceField = "AGREEMENT VALID UPTO"
)

// SiteIDField is the immutable primary identifier column
const SiteIDField = "SITE"

var fields = []Field{
	{Canonical: "SITE", Aliases: []string{"site_id", "site"}, Type: Text},
	{Canonical: "STORE NAME", Aliases: []string{"store_name"}, Type: Text},
	{Canonical: "REGION", Aliases: []string{"region"}, Type: Text},
	{Canonical: "DIV", Aliases: []string{"div"}, Type: Text},
	{Canonical: "MANAGER", Aliases: []string{"manager"}, Type: Text},
	{Canonical: "ASST MANAGER", Aliases: []string{"asst_manager"}, Type: Text},
	{Canonical: "EXECUTIVE", Aliases: []string{"executive"}, Type: Text},
	{Canonical: "D.O.O", Aliases: []string{"doo"}, Type: Date},
	{Canonical: "SQ.FT", Aliases: []string{"sqft"}, Type: Integer},
	{Canonical: "AGREEMENT DATE", Aliases: []string{"agreement_date"}, Type: Date},
	{Canonical: "RENT POSITION DATE", Aliases: []string{"rent_position_date"}, Type: Date},
	{Canonical: "RENT EFFECTIVE DATE", Aliases: []string{"rent_effective_date"}, Type: Date},
	{Canonical: "AGREEMENT VALID UPTO", Aliases: []string{"agreement_valid_upto"}, Type: Date},
	{Canonical: "CURRENT DATE", Aliases: []string{"current_date"}, Type: Date},
	{Canonical: "LEASE PERIOD", Aliases: []string{"lease_period"}, Type: Integer},
	{Canonical: "RENT FREE PERIOD DAYS", Aliases: []string{"rent_free_period_days"}, Type: Integer},
	{Canonical: "RENT EFFECTIVE AMOUNT", Aliases: []string{"rent_effective_amount"}, Type: Decimal},
	{Canonical: "PRESENT RENT", Aliases: []string{"present_rent"}, Type: Decimal},
	{Canonical: "HIKE %", Aliases: []string{"hike_percentage"}, Type: Decimal},
	{Canonical: "HIKE YEAR", Aliases: []string{"hike_year"}, Type: Integer},
	{Canonical: "RENT DEPOSIT", Aliases: []string{"rent_deposit"}, Type: Decimal},
	{Canonical: "OWNER NAME-1", Aliases: []string{"owner_name1"}, Type: Text},
	{Canonical: "OWNER NAME-2", Aliases: []string{"owner_name2"}, Type: Text},
	{Canonical: "OWNER NAME-3", Aliases: []string{"owner_name3"}, Type: Text},
	{Canonical: "OWNER NAME-4", Aliases: []string{"owner_name4"}, Type: Text},
	{Canonical: "OWNER NAME-5", Aliases: []string{"owner_name5"}, Type: Text},
	{Canonical: "OWNER NAME-6", Aliases: []string{"owner_name6"}, Type: Text},
	{Canonical: "OWNER MOBILE", Aliases: []string{"owner_mobile"}, Type: Text},
	{Canonical: "CURRENT DATE 1", Aliases: []string{"current_date1"}, Type: Date},
	{Canonical: "VALIDITY DATE", Aliases: []string{"validity_date"}, Type: Date},
	{Canonical: "GST NUMBER", Aliases: []string{"gst_number"}, Type: Text},
	{Canonical: "PAN NUMBER", Aliases: []string{"pan_number"}, Type: Text},
	{Canonical: "TDS PERCENTAGE", Aliases: []string{"tds_percentage"}, Type: Decimal},
	{Canonical: "MATURE", Aliases: []string{"mature"}, Type: Text},
	{Canonical: "STATUS", Aliases: []string{"status"}, Type: Text},
	{Canonical: "REMARKS", Aliases: []string{"remarks"}, Type: Text},
}

// byName maps every canonical name and alias to its field
var byName map[string]Field

func init() {
	byName = make(map[string]Field, len(fields)*2)
	for _, f := range fields {
		byName[f.Canonical] = f
		for _, alias := range f.Aliases {
			byName[alias] = f
		}
	}
}

// Lookup resolves a canonical name or alias to its field. Unknown names
// return ok=false; callers decide whether that is an error or a field to
// drop (the update path drops them silently).
func Lookup(name string) (Field, bool) {
	f, ok := byName[name]
	return f, ok
}

// Fields returns all fields in persisted column order
func Fields() []Field {
	return fields
}

// DateFields returns the date-typed fields in column order
func DateFields() []Field {
	return fieldsOfType(Date)
}

// NumericFields returns the integer and decimal fields in column order
func NumericFields() []Field {
	out := make([]Field, 0, len(fields))
	for _, f := range fields {
		if f.Type == Integer || f.Type == Decimal {
			out = append(out, f)
		}
	}
	return out
}

func fieldsOfType(t FieldType) []Field {
	out := make([]Field, 0, len(fields))
	for _, f := range fields {
		if f.Type == t {
			out = append(out, f)
		}
	}
	return out
}

// IsDerived reports whether the canonical name is one of the two display
// slots recomputed from stored dates at read time
func IsDerived(canonical string) bool {
	return canonical == ElapsedField || canonical == RemainingField
}
