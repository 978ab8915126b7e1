package record

import (
	"fmt"
	"time"

	"github.com/akash247777/Rental-Management-System/internal/model"
	"github.com/akash247777/Rental-Management-System/internal/schema"
)

// MissingFieldError reports the first required field absent from a create
// payload. Validation stops at the first gap, matching the wire contract
// clients already depend on.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("Missing required field: %s", e.Field)
}

// InvalidFieldError reports a required field whose value could not be
// coerced to the declared type
type InvalidFieldError struct {
	Field string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("Invalid value for field: %s", e.Field)
}

// requiredCreateFields is the enumerated required set for site creation, in
// reporting order. Names are the snake_case aliases the clients send.
var requiredCreateFields = []string{
	"site_id", "store_name", "region", "div", "manager", "asst_manager",
	"executive", "doo", "sqft", "agreement_date", "rent_position_date",
	"rent_effective_date", "lease_period", "rent_free_period_days",
	"rent_effective_amount", "present_rent", "hike_percentage", "hike_year",
	"rent_deposit", "owner_name1", "gst_number", "pan_number",
	"tds_percentage", "mature", "status",
}

// ValidateForCreate checks a create payload against the required field set
// and coerces it into a typed site row. The payload may use canonical
// display names, snake_case aliases, or a mix; "site" is accepted as a
// synonym for "site_id".
func ValidateForCreate(payload map[string]any) (*model.RentalSite, error) {
	for _, name := range requiredCreateFields {
		if _, ok := lookupValue(payload, name); !ok {
			return nil, &MissingFieldError{Field: name}
		}
	}

	site := &model.RentalSite{
		SiteID:      textValue(payload, "site_id"),
		StoreName:   textValue(payload, "store_name"),
		Region:      textValue(payload, "region"),
		Div:         textValue(payload, "div"),
		Manager:     textValue(payload, "manager"),
		AsstManager: textValue(payload, "asst_manager"),
		Executive:   textValue(payload, "executive"),
		OwnerName1:  textValue(payload, "owner_name1"),
		OwnerName2:  textValue(payload, "owner_name2"),
		OwnerName3:  textValue(payload, "owner_name3"),
		OwnerName4:  textValue(payload, "owner_name4"),
		OwnerName5:  textValue(payload, "owner_name5"),
		OwnerName6:  textValue(payload, "owner_name6"),
		OwnerMobile: textValue(payload, "owner_mobile"),
		GSTNumber:   textValue(payload, "gst_number"),
		PANNumber:   textValue(payload, "pan_number"),
		Mature:      textValue(payload, "mature"),
		Status:      textValue(payload, "status"),
		Remarks:     textValue(payload, "remarks"),
	}

	// Required numeric fields
	var ok bool
	if site.SqFt, ok = intValue(payload, "sqft"); !ok {
		return nil, &InvalidFieldError{Field: "sqft"}
	}
	if site.LeasePeriod, ok = intValue(payload, "lease_period"); !ok {
		return nil, &InvalidFieldError{Field: "lease_period"}
	}
	if site.RentFreePeriodDays, ok = intValue(payload, "rent_free_period_days"); !ok {
		return nil, &InvalidFieldError{Field: "rent_free_period_days"}
	}
	if site.HikeYear, ok = intValue(payload, "hike_year"); !ok {
		return nil, &InvalidFieldError{Field: "hike_year"}
	}
	if site.RentEffectiveAmt, ok = decimalValue(payload, "rent_effective_amount"); !ok {
		return nil, &InvalidFieldError{Field: "rent_effective_amount"}
	}
	if site.PresentRent, ok = decimalValue(payload, "present_rent"); !ok {
		return nil, &InvalidFieldError{Field: "present_rent"}
	}
	if site.HikePercentage, ok = decimalValue(payload, "hike_percentage"); !ok {
		return nil, &InvalidFieldError{Field: "hike_percentage"}
	}
	if site.RentDeposit, ok = decimalValue(payload, "rent_deposit"); !ok {
		return nil, &InvalidFieldError{Field: "rent_deposit"}
	}
	if site.TDSPercentage, ok = decimalValue(payload, "tds_percentage"); !ok {
		return nil, &InvalidFieldError{Field: "tds_percentage"}
	}

	// Required date fields
	if site.DateOfOpening, ok = dateValue(payload, "doo"); !ok {
		return nil, &InvalidFieldError{Field: "doo"}
	}
	if site.AgreementDate, ok = dateValue(payload, "agreement_date"); !ok {
		return nil, &InvalidFieldError{Field: "agreement_date"}
	}
	if site.RentPositionDate, ok = dateValue(payload, "rent_position_date"); !ok {
		return nil, &InvalidFieldError{Field: "rent_position_date"}
	}
	if site.RentEffectiveDate, ok = dateValue(payload, "rent_effective_date"); !ok {
		return nil, &InvalidFieldError{Field: "rent_effective_date"}
	}

	// Optional date fields: absent or blank is fine, garbage is not
	optionalDates := []struct {
		name string
		dst  **time.Time
	}{
		{"agreement_valid_upto", &site.AgreementValidUpto},
		{"current_date", &site.CurrentDate},
		{"current_date1", &site.CurrentDate1},
		{"validity_date", &site.ValidityDate},
	}
	for _, od := range optionalDates {
		raw, ok := lookupValue(payload, od.name)
		if !ok || raw == nil || asString(raw) == "" {
			continue
		}
		t, valid := ParseDate(asString(raw))
		if !valid {
			return nil, &InvalidFieldError{Field: od.name}
		}
		*od.dst = &t
	}

	return site, nil
}

// lookupValue finds a payload value by any recognized name for the field:
// the given alias, its siblings, or the canonical display name
func lookupValue(payload map[string]any, name string) (any, bool) {
	f, known := schema.Lookup(name)
	if !known {
		v, ok := payload[name]
		return v, ok
	}
	if v, ok := payload[f.Canonical]; ok {
		return v, true
	}
	for _, alias := range f.Aliases {
		if v, ok := payload[alias]; ok {
			return v, true
		}
	}
	return nil, false
}

func textValue(payload map[string]any, name string) string {
	raw, ok := lookupValue(payload, name)
	if !ok || raw == nil {
		return ""
	}
	return asString(raw)
}

func intValue(payload map[string]any, name string) (int, bool) {
	raw, ok := lookupValue(payload, name)
	if !ok {
		return 0, false
	}
	return parseInt(raw)
}

func decimalValue(payload map[string]any, name string) (float64, bool) {
	raw, ok := lookupValue(payload, name)
	if !ok {
		return 0, false
	}
	return parseDecimal(raw)
}

func dateValue(payload map[string]any, name string) (*time.Time, bool) {
	raw, ok := lookupValue(payload, name)
	if !ok || raw == nil {
		return nil, false
	}
	t, valid := ParseDate(asString(raw))
	if !valid {
		return nil, false
	}
	return &t, true
}
