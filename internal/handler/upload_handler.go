package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/akash247777/Rental-Management-System/internal/model"
	"github.com/akash247777/Rental-Management-System/internal/record"
	"github.com/akash247777/Rental-Management-System/pkg/database"
	"github.com/akash247777/Rental-Management-System/pkg/logger"
	"github.com/akash247777/Rental-Management-System/prometheus"
)

// uploadDefaults drives the per-row default filling for bulk imports, in
// insertion order. A nil default means the spreadsheet must provide the
// value or the row is rejected. Defaulting GST/PAN to "NA" can mask missing
// compliance data, so every defaulted compliance cell is logged.
var uploadDefaults = []struct {
	Field   string
	Default any
}{
	{"SITE", nil},
	{"STORE NAME", nil},
	{"REGION", nil},
	{"DIV", nil},
	{"MANAGER", nil},
	{"ASST MANAGER", nil},
	{"EXECUTIVE", nil},
	{"D.O.O", nil},
	{"SQ.FT", 0},
	{"AGREEMENT DATE", nil},
	{"RENT POSITION DATE", nil},
	{"RENT EFFECTIVE DATE", nil},
	{"LEASE PERIOD", 0},
	{"RENT FREE PERIOD DAYS", 0},
	{"RENT EFFECTIVE AMOUNT", 0},
	{"PRESENT RENT", 0},
	{"HIKE %", 0},
	{"HIKE YEAR", 0},
	{"RENT DEPOSIT", 0},
	{"OWNER NAME-1", nil},
	{"GST NUMBER", "NA"},
	{"PAN NUMBER", "NA"},
	{"TDS PERCENTAGE", 0},
	{"MATURE", "NO"},
	{"STATUS", "ACTIVE"},
}

// UploadSpreadsheet ingests an .xlsx/.xls workbook, creating one site per
// row. Rows whose SITE already exists are skipped, and one malformed row
// never aborts the rest of the import.
func UploadSpreadsheet(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordSiteOperation("upload")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "No file uploaded"})
	}
	if fileHeader.Filename == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "No file selected"})
	}
	name := strings.ToLower(fileHeader.Filename)
	if !strings.HasSuffix(name, ".xlsx") && !strings.HasSuffix(name, ".xls") {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid file format"})
	}

	db := database.GetDB()
	if db == nil {
		log.Error("Database unavailable")
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"message": "Database connection failed. Please try again later."})
	}

	src, err := fileHeader.Open()
	if err != nil {
		log.Error("Failed to open uploaded file", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Error uploading data"})
	}
	defer src.Close()

	workbook, err := excelize.OpenReader(src)
	if err != nil {
		log.Error("Failed to parse workbook", zap.String("filename", fileHeader.Filename), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Error uploading data"})
	}
	defer workbook.Close()

	sheet := workbook.GetSheetName(0)
	rows, err := workbook.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		log.Error("Workbook has no data rows", zap.String("sheet", sheet), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Error uploading data"})
	}

	// Header row gives the column positions; comparison is case-insensitive
	header := make(map[string]int, len(rows[0]))
	for i, col := range rows[0] {
		header[strings.ToUpper(strings.TrimSpace(col))] = i
	}

	log.Info("Processing spreadsheet",
		zap.String("filename", fileHeader.Filename),
		zap.String("sheet", sheet),
		zap.Int("rows", len(rows)-1))

	inserted := 0
	for rowNum, row := range rows[1:] {
		payload, err := buildRowPayload(log, header, row)
		if err != nil {
			prometheus.RecordUploadRow("rejected")
			log.Warn("Skipped spreadsheet row", zap.Int("row", rowNum+2), zap.Error(err))
			continue
		}

		site, err := record.ValidateForCreate(payload)
		if err != nil {
			prometheus.RecordUploadRow("rejected")
			log.Warn("Skipped malformed spreadsheet row", zap.Int("row", rowNum+2), zap.Error(err))
			continue
		}

		// Rows whose SITE already exists are skipped, not errored
		var count int64
		if err := db.Model(&model.RentalSite{}).Where(`"SITE" = ?`, site.SiteID).Count(&count).Error; err != nil {
			prometheus.RecordUploadRow("failed")
			log.Warn("Failed duplicate check for spreadsheet row",
				zap.Int("row", rowNum+2),
				zap.String("site_id", site.SiteID),
				zap.Error(err))
			continue
		}
		if count > 0 {
			prometheus.RecordUploadRow("duplicate")
			continue
		}

		if err := db.Create(site).Error; err != nil {
			prometheus.RecordUploadRow("failed")
			log.Warn("Failed to insert spreadsheet row",
				zap.Int("row", rowNum+2),
				zap.String("site_id", site.SiteID),
				zap.Error(err))
			continue
		}
		prometheus.RecordUploadRow("inserted")
		inserted++
	}

	log.Info("Upload completed", zap.Int("inserted", inserted))
	return c.JSON(http.StatusOK, echo.Map{
		"message": fmt.Sprintf("Data uploaded successfully. %d new records inserted.", inserted),
	})
}

// buildRowPayload maps one spreadsheet row onto a create payload, filling
// blank cells with the import defaults
func buildRowPayload(log *zap.Logger, header map[string]int, row []string) (map[string]any, error) {
	payload := make(map[string]any, len(uploadDefaults))

	for _, d := range uploadDefaults {
		var value any
		if i, ok := header[d.Field]; ok && i < len(row) {
			if cell := strings.TrimSpace(row[i]); cell != "" {
				value = cell
			}
		}
		if value == nil {
			if d.Default == nil {
				return nil, fmt.Errorf("missing required field: %s", d.Field)
			}
			value = d.Default
			if d.Field == "GST NUMBER" || d.Field == "PAN NUMBER" {
				log.Warn("Compliance field defaulted during import", zap.String("field", d.Field))
			}
		}
		payload[d.Field] = value
	}

	return payload, nil
}
