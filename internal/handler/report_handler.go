package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/akash247777/Rental-Management-System/internal/record"
	"github.com/akash247777/Rental-Management-System/pkg/database"
	"github.com/akash247777/Rental-Management-System/pkg/logger"
	"github.com/akash247777/Rental-Management-System/prometheus"
)

// allSitesReportType is the one report currently recognized
const allSitesReportType = "ALL SITES DATA REPORTS"

// reportFields is the fixed projection every report row is reduced to
var reportFields = []string{
	"site_id", "store_name", "region", "div", "manager", "asst_manager",
	"executive", "doo", "sqft", "agreement_date", "rent_position_date",
	"rent_effective_date", "lease_period", "rent_free_period_days",
	"rent_effective_amount", "present_rent", "hike_percentage", "hike_year",
	"rent_deposit", "owner_name1", "gst_number", "pan_number",
	"tds_percentage", "mature", "status", "remarks",
}

// GetReport returns a filtered bulk export of site rows
func GetReport(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordSiteOperation("report")

	reportType := c.QueryParam("type")
	if reportType == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Report type is required"})
	}
	if reportType != allSitesReportType {
		log.Warn("Unknown report type", zap.String("type", reportType))
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Unknown report type"})
	}

	db := database.GetDB()
	if db == nil {
		log.Error("Database unavailable")
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"message": "Database connection failed"})
	}

	// Build the filter set; "ALL" disables a filter
	query := `SELECT * FROM rentdetails WHERE 1=1`
	args := []any{}

	if div := c.QueryParam("div"); div != "" && div != "ALL" {
		query += ` AND "DIV" = ?`
		args = append(args, div)
		log.Info("Filtering report by division", zap.String("div", div))
	}
	if status := c.QueryParam("status"); status != "" && status != "ALL" {
		query += ` AND "STATUS" = ?`
		args = append(args, status)
		log.Info("Filtering report by status", zap.String("status", status))
	}
	fromDate := c.QueryParam("from_date")
	toDate := c.QueryParam("to_date")
	if fromDate != "" && toDate != "" {
		query += ` AND "AGREEMENT DATE" BETWEEN ? AND ?`
		args = append(args, fromDate, toDate)
	}

	defer prometheus.TrackDBOperation("query")(time.Now())

	rows, err := db.Raw(query, args...).Rows()
	if err != nil {
		log.Error("Report query failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error generating report"})
	}
	defer rows.Close()

	now := time.Now()
	data := make([]echo.Map, 0)
	for rows.Next() {
		values, columns, err := scanRow(rows)
		if err != nil {
			// One bad row never aborts the whole report
			log.Warn("Failed to scan report row", zap.Error(err))
			continue
		}

		site := record.Normalize(values, columns, now)
		row := make(echo.Map, len(reportFields))
		for _, field := range reportFields {
			row[field] = site[field]
		}
		data = append(data, row)
	}
	if err := rows.Err(); err != nil {
		log.Error("Failed reading report rows", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error generating report"})
	}

	log.Info("Report generated", zap.Int("rows", len(data)))
	return c.JSON(http.StatusOK, echo.Map{"data": data})
}
