package model

import "time"

// RentalSite represents one leased site row in the legacy rentdetails table.
// The column names are inherited from the spreadsheet the table was first
// loaded from, so most of them carry spaces and punctuation.
type RentalSite struct {
	SiteID             string     `json:"site_id" gorm:"column:SITE;type:varchar(10);primaryKey"`
	StoreName          string     `json:"store_name" gorm:"column:STORE NAME;type:varchar(100);not null"`
	Region             string     `json:"region" gorm:"column:REGION;type:varchar(100);not null"`
	Div                string     `json:"div" gorm:"column:DIV;type:varchar(10);not null"`
	Manager            string     `json:"manager" gorm:"column:MANAGER;type:varchar(100);not null"`
	AsstManager        string     `json:"asst_manager" gorm:"column:ASST MANAGER;type:varchar(100);not null"`
	Executive          string     `json:"executive" gorm:"column:EXECUTIVE;type:varchar(100);not null"`
	DateOfOpening      *time.Time `json:"doo" gorm:"column:D.O.O;type:date"`
	SqFt               int        `json:"sqft" gorm:"column:SQ.FT;not null"`
	AgreementDate      *time.Time `json:"agreement_date" gorm:"column:AGREEMENT DATE;type:date"`
	RentPositionDate   *time.Time `json:"rent_position_date" gorm:"column:RENT POSITION DATE;type:date"`
	RentEffectiveDate  *time.Time `json:"rent_effective_date" gorm:"column:RENT EFFECTIVE DATE;type:date"`
	AgreementValidUpto *time.Time `json:"agreement_valid_upto" gorm:"column:AGREEMENT VALID UPTO;type:date"`
	CurrentDate        *time.Time `json:"current_date" gorm:"column:CURRENT DATE;type:date"`
	LeasePeriod        int        `json:"lease_period" gorm:"column:LEASE PERIOD;not null"`
	RentFreePeriodDays int        `json:"rent_free_period_days" gorm:"column:RENT FREE PERIOD DAYS;not null"`
	RentEffectiveAmt   float64    `json:"rent_effective_amount" gorm:"column:RENT EFFECTIVE AMOUNT;not null"`
	PresentRent        float64    `json:"present_rent" gorm:"column:PRESENT RENT;not null"`
	HikePercentage     float64    `json:"hike_percentage" gorm:"column:HIKE %;not null"`
	HikeYear           int        `json:"hike_year" gorm:"column:HIKE YEAR;not null"`
	RentDeposit        float64    `json:"rent_deposit" gorm:"column:RENT DEPOSIT;not null"`
	OwnerName1         string     `json:"owner_name1" gorm:"column:OWNER NAME-1;type:varchar(100);not null"`
	OwnerName2         string     `json:"owner_name2" gorm:"column:OWNER NAME-2;type:varchar(100)"`
	OwnerName3         string     `json:"owner_name3" gorm:"column:OWNER NAME-3;type:varchar(100)"`
	OwnerName4         string     `json:"owner_name4" gorm:"column:OWNER NAME-4;type:varchar(100)"`
	OwnerName5         string     `json:"owner_name5" gorm:"column:OWNER NAME-5;type:varchar(100)"`
	OwnerName6         string     `json:"owner_name6" gorm:"column:OWNER NAME-6;type:varchar(100)"`
	OwnerMobile        string     `json:"owner_mobile" gorm:"column:OWNER MOBILE;type:varchar(20)"`
	CurrentDate1       *time.Time `json:"current_date1" gorm:"column:CURRENT DATE 1;type:date"` // display slot, recomputed at read time
	ValidityDate       *time.Time `json:"validity_date" gorm:"column:VALIDITY DATE;type:date"`  // display slot, recomputed at read time
	GSTNumber          string     `json:"gst_number" gorm:"column:GST NUMBER;type:varchar(20);not null"`
	PANNumber          string     `json:"pan_number" gorm:"column:PAN NUMBER;type:varchar(20);not null"`
	TDSPercentage      float64    `json:"tds_percentage" gorm:"column:TDS PERCENTAGE;not null"`
	Mature             string     `json:"mature" gorm:"column:MATURE;type:varchar(3);not null"`
	Status             string     `json:"status" gorm:"column:STATUS;type:varchar(10);not null"`
	Remarks            string     `json:"remarks" gorm:"column:REMARKS;type:text"`
}

// TableName overrides the default table name
func (RentalSite) TableName() string {
	return "rentdetails"
}
