package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/akash247777/Rental-Management-System/pkg/database"
	"github.com/akash247777/Rental-Management-System/pkg/logger"
)

// Status is the public liveness probe used by the dashboard
func Status(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"status":    "ok",
		"message":   "API is running",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// HealthCheck handles the health check endpoint
func HealthCheck(c echo.Context) error {
	log := logger.FromContext(c)

	// Basic response
	response := map[string]interface{}{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	}

	// Check database connection if requested
	if c.QueryParam("check") == "db" {
		db := database.GetDB()
		if db == nil {
			response["status"] = "error"
			response["db_status"] = "error"
			response["db_error"] = "Database connection not initialized"
			return c.JSON(http.StatusInternalServerError, response)
		}

		sqlDB, err := db.DB()
		if err != nil {
			log.Error("Database connection error", zap.Error(err))
			response["status"] = "error"
			response["db_status"] = "error"
			response["db_error"] = "Failed to get database connection"
			return c.JSON(http.StatusInternalServerError, response)
		}

		// Ping database to check connection
		if err := sqlDB.Ping(); err != nil {
			log.Error("Database ping error", zap.Error(err))
			response["status"] = "error"
			response["db_status"] = "error"
			response["db_error"] = "Failed to ping database"
			return c.JSON(http.StatusInternalServerError, response)
		}

		// Database is healthy
		response["db_status"] = "ok"
	}

	return c.JSON(http.StatusOK, response)
}
