package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/akash247777/Rental-Management-System/internal/record"
	"github.com/akash247777/Rental-Management-System/internal/schema"
	"github.com/akash247777/Rental-Management-System/pkg/database"
	"github.com/akash247777/Rental-Management-System/pkg/logger"
	"github.com/akash247777/Rental-Management-System/prometheus"
)

const searchResultsLimit = 50

// searchColumns is the subset fetched for search results: the identifying
// fields plus the stored dates the derived durations are computed from
const searchColumns = `"SITE", "STORE NAME", "REGION", "DIV", "RENT POSITION DATE", "AGREEMENT VALID UPTO", "CURRENT DATE", "GST NUMBER", "PAN NUMBER"`

// SearchSites matches sites by exact identifier or by substring over
// identifier, store name and region
func SearchSites(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordSiteOperation("search")

	term := strings.ToUpper(strings.TrimSpace(c.QueryParam("term")))
	if term == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Search term is required"})
	}
	siteIDSearch := c.QueryParam("site_id_search") == "true"

	db := database.GetDB()
	if db == nil {
		log.Error("Database unavailable")
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"message": "Database connection failed"})
	}

	log.Info("Searching sites",
		zap.String("term", term),
		zap.Bool("site_id_search", siteIDSearch))

	defer prometheus.TrackDBOperation("query")(time.Now())

	var query string
	var args []any
	if siteIDSearch {
		query = `SELECT ` + searchColumns + ` FROM rentdetails WHERE "SITE" = ? LIMIT 1`
		args = []any{term}
	} else {
		pattern := "%" + term + "%"
		query = `SELECT ` + searchColumns + ` FROM rentdetails WHERE "SITE" ILIKE ? OR "STORE NAME" ILIKE ? OR "REGION" ILIKE ? LIMIT ?`
		args = []any{pattern, pattern, pattern, searchResultsLimit}
	}

	rows, err := db.Raw(query, args...).Rows()
	if err != nil {
		log.Error("Search query failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error during search"})
	}
	defer rows.Close()

	now := time.Now()
	results := make([]echo.Map, 0)
	for rows.Next() {
		values, columns, err := scanRow(rows)
		if err != nil {
			log.Warn("Failed to scan search row", zap.Error(err))
			continue
		}

		site := record.Normalize(values, columns, now)
		results = append(results, echo.Map{
			"site_id":             site["site_id"],
			"SITE":                site["SITE"],
			"STORE NAME":          site["STORE NAME"],
			"REGION":              site["REGION"],
			"DIV":                 site["DIV"],
			"GST NUMBER":          site["GST NUMBER"],
			"PAN NUMBER":          site["PAN NUMBER"],
			schema.ElapsedField:   site[schema.ElapsedField],
			schema.RemainingField: site[schema.RemainingField],
		})
	}
	if err := rows.Err(); err != nil {
		log.Error("Failed reading search rows", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error during search"})
	}

	if len(results) == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "No results found"})
	}

	log.Info("Search completed", zap.Int("results", len(results)))
	return c.JSON(http.StatusOK, echo.Map{"results": results})
}
