package handler

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/akash247777/Rental-Management-System/internal/model"
	"github.com/akash247777/Rental-Management-System/internal/record"
	"github.com/akash247777/Rental-Management-System/pkg/database"
	"github.com/akash247777/Rental-Management-System/pkg/logger"
	"github.com/akash247777/Rental-Management-System/prometheus"
)

const listSitesLimit = 100

// GetSites returns either one full normalized record (?site_id=) or an
// abbreviated listing of up to 100 sites
func GetSites(c echo.Context) error {
	log := logger.FromContext(c)

	db := database.GetDB()
	if db == nil {
		log.Error("Database unavailable")
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"message": "Database connection failed. Please try again later."})
	}

	siteID := c.QueryParam("site_id")
	if siteID != "" {
		prometheus.RecordSiteOperation("get")
		return getSiteByID(c, db, siteID)
	}

	prometheus.RecordSiteOperation("list")
	defer prometheus.TrackDBOperation("query")(time.Now())

	rows, err := db.Raw(`SELECT "SITE", "STORE NAME", "REGION", "DIV", "GST NUMBER", "PAN NUMBER" FROM rentdetails LIMIT ?`, listSitesLimit).Rows()
	if err != nil {
		log.Error("Failed to list sites", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error fetching site data"})
	}
	defer rows.Close()

	sites := make([]echo.Map, 0, listSitesLimit)
	for rows.Next() {
		values, _, err := scanRow(rows)
		if err != nil {
			log.Warn("Failed to scan site row", zap.Error(err))
			continue
		}
		sites = append(sites, echo.Map{
			"site_id":    stringAt(values, 0),
			"store_name": stringAt(values, 1),
			"region":     stringAt(values, 2),
			"div":        stringAt(values, 3),
			"gst_number": stringAt(values, 4),
			"pan_number": stringAt(values, 5),
		})
	}
	if err := rows.Err(); err != nil {
		log.Error("Failed reading site rows", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error fetching site data"})
	}

	log.Info("Returning site listing", zap.Int("count", len(sites)))
	return c.JSON(http.StatusOK, echo.Map{"sites": sites})
}

func getSiteByID(c echo.Context, db *gorm.DB, siteID string) error {
	log := logger.FromContext(c)
	log.Info("Fetching site", zap.String("site_id", siteID))

	defer prometheus.TrackDBOperation("query")(time.Now())

	// Exact match first, then a case-insensitive retry
	values, columns, err := querySiteRow(db, `SELECT * FROM rentdetails WHERE "SITE" = ?`, siteID)
	if err != nil {
		log.Error("Failed to fetch site", zap.String("site_id", siteID), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error fetching site data"})
	}
	if values == nil {
		values, columns, err = querySiteRow(db, `SELECT * FROM rentdetails WHERE UPPER("SITE") = UPPER(?)`, siteID)
		if err != nil {
			log.Error("Failed to fetch site", zap.String("site_id", siteID), zap.Error(err))
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error fetching site data"})
		}
	}
	if values == nil {
		log.Info("Site not found", zap.String("site_id", siteID))
		return c.JSON(http.StatusNotFound, echo.Map{"message": fmt.Sprintf("Site ID %q not found", siteID)})
	}

	site := record.Normalize(values, columns, time.Now())
	return c.JSON(http.StatusOK, site)
}

// CreateSite validates a create payload and inserts a new rentdetails row
func CreateSite(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordSiteOperation("create")

	var payload map[string]any
	if err := c.Bind(&payload); err != nil {
		log.Error("Failed to parse create payload", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request"})
	}

	site, err := record.ValidateForCreate(payload)
	if err != nil {
		log.Warn("Create payload rejected", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	}

	db := database.GetDB()
	if db == nil {
		log.Error("Database unavailable")
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"message": "Database connection failed. Please try again later."})
	}

	// Fast user-facing duplicate check; the primary key constraint on SITE
	// is the authoritative backstop under concurrent creates
	var count int64
	if err := db.Model(&model.RentalSite{}).Where(`"SITE" = ?`, site.SiteID).Count(&count).Error; err != nil {
		log.Error("Failed to check for duplicate site", zap.String("site_id", site.SiteID), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error creating site"})
	}
	if count > 0 {
		log.Warn("Duplicate site id", zap.String("site_id", site.SiteID))
		return c.JSON(http.StatusBadRequest, echo.Map{"message": fmt.Sprintf("Site ID %s already exists", site.SiteID)})
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())

	if err := db.Create(site).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the race to another creator with the same id
			log.Warn("Duplicate site id on insert", zap.String("site_id", site.SiteID))
			return c.JSON(http.StatusBadRequest, echo.Map{"message": fmt.Sprintf("Site ID %s already exists", site.SiteID)})
		}
		log.Error("Failed to create site", zap.String("site_id", site.SiteID), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Error creating site"})
	}

	log.Info("Site created", zap.String("site_id", site.SiteID))
	return c.JSON(http.StatusCreated, echo.Map{"message": "Site created successfully"})
}

// UpdateSite applies a partial update to an existing site. The identifier
// always comes from the URL path, never the body.
func UpdateSite(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordSiteOperation("update")

	siteID := c.Param("site_id")

	var payload map[string]any
	if err := c.Bind(&payload); err != nil {
		log.Error("Failed to parse update payload", zap.String("site_id", siteID), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request"})
	}

	patch, err := record.BuildPatch(siteID, payload)
	if err != nil {
		if errors.Is(err, record.ErrNothingToUpdate) {
			log.Warn("Update payload had no usable fields", zap.String("site_id", siteID))
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "No fields to update"})
		}
		log.Error("Failed to build update patch", zap.String("site_id", siteID), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request"})
	}

	if len(patch.Dropped) > 0 {
		// Dropped keys are tolerated but worth knowing about
		log.Warn("Dropped unusable update fields",
			zap.String("site_id", siteID),
			zap.Strings("dropped", patch.Dropped))
		prometheus.PatchDroppedFieldsCounter.Add(float64(len(patch.Dropped)))
	}

	db := database.GetDB()
	if db == nil {
		log.Error("Database unavailable")
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"message": "Database connection failed. Please try again later."})
	}

	defer prometheus.TrackDBOperation("update")(time.Now())

	// Updates writes absolute column values, so replaying the same patch
	// leaves the row unchanged
	result := db.Model(&model.RentalSite{}).Where(`"SITE" = ?`, siteID).Updates(patch.Fields)
	if result.Error != nil {
		log.Error("Failed to update site", zap.String("site_id", siteID), zap.Error(result.Error))
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Error updating site"})
	}
	if result.RowsAffected == 0 {
		log.Info("No site matched update", zap.String("site_id", siteID))
		return c.JSON(http.StatusNotFound, echo.Map{"message": "No records were updated"})
	}

	log.Info("Site updated",
		zap.String("site_id", siteID),
		zap.Int("fields", len(patch.Fields)))
	return c.JSON(http.StatusOK, echo.Map{"message": "Site updated successfully"})
}

// querySiteRow runs a single-row query and scans it into positional values.
// A nil values slice means no row matched.
func querySiteRow(db *gorm.DB, query string, args ...any) ([]any, []string, error) {
	rows, err := db.Raw(query, args...).Rows()
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, nil, rows.Err()
	}
	values, columns, err := scanRow(rows)
	if err != nil {
		return nil, nil, err
	}
	return values, columns, nil
}

// scanRow scans the current row into a positional value slice alongside the
// result set's column names
func scanRow(rows *sql.Rows) ([]any, []string, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, nil, err
	}

	values := make([]any, len(columns))
	ptrs := make([]any, len(columns))
	for i := range values {
		ptrs[i] = &values[i]
	}
	if err := rows.Scan(ptrs...); err != nil {
		return nil, nil, err
	}
	return values, columns, nil
}

func stringAt(values []any, i int) string {
	if i >= len(values) || values[i] == nil {
		return ""
	}
	switch v := values[i].(type) {
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return fmt.Sprint(v)
	}
}
