package main

import (
	"github.com/akash247777/Rental-Management-System/internal/handler"
	"github.com/akash247777/Rental-Management-System/internal/middleware"
	"github.com/akash247777/Rental-Management-System/pkg/config"
	"github.com/akash247777/Rental-Management-System/pkg/database"
	"github.com/akash247777/Rental-Management-System/pkg/jwtutil"
	"github.com/akash247777/Rental-Management-System/pkg/logger"
	"github.com/akash247777/Rental-Management-System/prometheus"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	// Load configuration from .env file and environment variables
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger with config
	logger.InitLogger(cfg)
	log := logger.GetLogger()
	log.Info("Starting rental management service...", zap.String("environment", cfg.Server.Env))

	// Initialize database (includes migrations automatically). The service
	// still starts without one so the fallback login keeps working; data
	// endpoints report the outage per request instead.
	if err := database.InitDB(cfg); err != nil {
		log.Warn("Database unavailable, continuing with fallback authentication only", zap.Error(err))
	} else {
		log.Info("Database connection established and migrations completed")
		if err := database.SeedDefaultUsers(log); err != nil {
			log.Warn("Failed to seed default users", zap.Error(err))
		}
	}

	// Initialize JWT signing with configuration
	jwtutil.Initialize(&cfg.JWT)

	// Initialize Prometheus metrics
	prometheus.InitMetrics(cfg)
	log.Info("Prometheus metrics initialized")

	// Initialize Echo framework
	e := echo.New()

	// Apply global middleware - order matters
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	e.Use(middleware.RequestIDMiddleware)
	e.Use(logger.Middleware(log))
	e.Use(prometheus.MetricsMiddleware())

	// Public routes - no authentication required
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/api/status", handler.Status)
	e.POST("/api/auth/login", handler.Login)

	// Site data routes all require a valid access token
	api := e.Group("/api", middleware.AuthMiddleware)
	api.GET("/sites", handler.GetSites)
	api.POST("/sites", handler.CreateSite)
	api.PUT("/sites/:site_id", handler.UpdateSite)
	api.GET("/reports", handler.GetReport)
	api.POST("/upload", handler.UploadSpreadsheet)
	api.GET("/search", handler.SearchSites)

	// Start server
	port := cfg.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Failed to start server", zap.Error(err))
	}
}
