package record

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreatePayload() map[string]any {
	return map[string]any{
		"site_id":               "S001",
		"store_name":            "MAIN STREET STORE",
		"region":                "SOUTH",
		"div":                   "RETAIL",
		"manager":               "A MANAGER",
		"asst_manager":          "AN ASSISTANT",
		"executive":             "AN EXECUTIVE",
		"doo":                   "15-06-2020",
		"sqft":                  2400,
		"agreement_date":        "01-06-2020",
		"rent_position_date":    "01-07-2020",
		"rent_effective_date":   "01-07-2020",
		"lease_period":          9,
		"rent_free_period_days": 30,
		"rent_effective_amount": 85000.0,
		"present_rent":          "₹95,000",
		"hike_percentage":       "10%",
		"hike_year":             3,
		"rent_deposit":          500000,
		"owner_name1":           "FIRST OWNER",
		"gst_number":            "29ABCDE1234F1Z5",
		"pan_number":            "ABCDE1234F",
		"tds_percentage":        10,
		"mature":                "NO",
		"status":                "ACTIVE",
	}
}

func TestValidateForCreate(t *testing.T) {
	site, err := ValidateForCreate(validCreatePayload())
	require.NoError(t, err)

	assert.Equal(t, "S001", site.SiteID)
	assert.Equal(t, "MAIN STREET STORE", site.StoreName)
	assert.Equal(t, 2400, site.SqFt)
	assert.Equal(t, 95000.0, site.PresentRent, "currency formatting is stripped")
	assert.Equal(t, 10.0, site.HikePercentage, "percent sign is stripped")
	assert.Equal(t, 500000.0, site.RentDeposit)

	require.NotNil(t, site.AgreementDate)
	assert.True(t, site.AgreementDate.Equal(time.Date(2020, time.June, 1, 0, 0, 0, 0, time.UTC)))

	assert.Nil(t, site.AgreementValidUpto, "optional dates stay unset when absent")
}

func TestValidateForCreateAcceptsCanonicalNames(t *testing.T) {
	payload := validCreatePayload()
	delete(payload, "site_id")
	delete(payload, "hike_percentage")
	payload["SITE"] = "S002"
	payload["HIKE %"] = 12.5

	site, err := ValidateForCreate(payload)
	require.NoError(t, err)
	assert.Equal(t, "S002", site.SiteID)
	assert.Equal(t, 12.5, site.HikePercentage)
}

func TestValidateForCreateReportsFirstMissingField(t *testing.T) {
	payload := validCreatePayload()
	delete(payload, "region")
	delete(payload, "status")

	_, err := ValidateForCreate(payload)
	require.Error(t, err)

	var missing *MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "region", missing.Field)
	assert.Equal(t, "Missing required field: region", err.Error())
}

func TestValidateForCreateRejectsBadNumeric(t *testing.T) {
	payload := validCreatePayload()
	payload["sqft"] = "large"

	_, err := ValidateForCreate(payload)
	require.Error(t, err)

	var invalid *InvalidFieldError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "sqft", invalid.Field)
}

func TestValidateForCreateRejectsBadRequiredDate(t *testing.T) {
	payload := validCreatePayload()
	payload["agreement_date"] = "sometime in june"

	_, err := ValidateForCreate(payload)
	require.Error(t, err)

	var invalid *InvalidFieldError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "agreement_date", invalid.Field)
}

func TestValidateForCreateOptionalDates(t *testing.T) {
	payload := validCreatePayload()
	payload["agreement_valid_upto"] = "01-06-2029"

	site, err := ValidateForCreate(payload)
	require.NoError(t, err)
	require.NotNil(t, site.AgreementValidUpto)
	assert.True(t, site.AgreementValidUpto.Equal(time.Date(2029, time.June, 1, 0, 0, 0, 0, time.UTC)))

	payload["validity_date"] = "garbage"
	_, err = ValidateForCreate(payload)
	require.Error(t, err)

	var invalid *InvalidFieldError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "validity_date", invalid.Field)
}
