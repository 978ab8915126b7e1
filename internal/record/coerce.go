package record

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ISODateFormat is the canonical storage and response form for dates
const ISODateFormat = "2006-01-02"

// dateFormats are tried in order when the positional heuristic does not
// settle the layout. First successful parse wins. The two-digit-year
// layouts at the end are what excelize renders native date cells as when a
// workbook is read row-wise, so spreadsheet imports must accept them.
var dateFormats = []string{
	"02-01-2006", // DD-MM-YYYY
	"2006-01-02", // YYYY-MM-DD
	"02/01/2006", // DD/MM/YYYY
	"01/02/2006", // MM/DD/YYYY
	"2006/01/02", // YYYY/MM/DD
	"01-02-06",   // MM-DD-YY, Excel date cell rendering
	"01/02/06",   // MM/DD/YY, Excel date cell rendering
}

// ParseDate parses the flexible date forms accepted from clients and
// spreadsheets. Empty strings and the "N/A" placeholder are not dates.
func ParseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" || value == "N/A" {
		return time.Time{}, false
	}

	// Positional heuristic for dashed dates: a 4-digit leading segment means
	// year-first, a 1-2 digit one means day-first
	if parts := strings.Split(value, "-"); len(parts) == 3 {
		if len(parts[0]) <= 2 && len(parts[2]) == 4 {
			if t, err := time.Parse("2-1-2006", value); err == nil {
				return t, true
			}
		} else if len(parts[0]) == 4 {
			if t, err := time.Parse("2006-1-2", value); err == nil {
				return t, true
			}
		}
	}

	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// CleanNumeric strips the currency symbol, thousands separators and percent
// sign from a stringly-typed numeric value
func CleanNumeric(value string) string {
	return strings.TrimSpace(strings.NewReplacer("₹", "", ",", "", "%", "").Replace(value))
}

// parseInt coerces a cleaned payload value to an integer. Fractional input
// is truncated, matching the old int(float(x)) behavior.
func parseInt(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	case string:
		f, err := strconv.ParseFloat(CleanNumeric(v), 64)
		if err != nil {
			return 0, false
		}
		return int(f), true
	case []byte:
		f, err := strconv.ParseFloat(CleanNumeric(string(v)), 64)
		if err != nil {
			return 0, false
		}
		return int(f), true
	default:
		return 0, false
	}
}

// parseDecimal coerces a cleaned payload value to a float
func parseDecimal(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case float64:
		return v, true
	case string:
		f, err := strconv.ParseFloat(CleanNumeric(v), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	case []byte:
		f, err := strconv.ParseFloat(CleanNumeric(string(v)), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// asString renders any scanned or payload value as a string; nil is empty
func asString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case time.Time:
		return v.Format(ISODateFormat)
	default:
		return fmt.Sprint(v)
	}
}
