package prometheus

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/akash247777/Rental-Management-System/pkg/config"
)

var (
	// HTTP request metrics
	HttpRequestsTotal   *prometheus.CounterVec
	HttpRequestDuration *prometheus.HistogramVec

	// Authentication metrics
	AuthAttemptsCounter prometheus.Counter
	AuthSuccessCounter  prometheus.Counter
	AuthErrorsCounter   *prometheus.CounterVec

	// Database operation metrics
	DbOperationDuration *prometheus.HistogramVec

	// Site record metrics
	SiteOperationsCounter *prometheus.CounterVec

	// Bulk upload metrics
	UploadRowsCounter *prometheus.CounterVec

	// Update-path fields dropped because they did not resolve in the catalog
	PatchDroppedFieldsCounter prometheus.Counter
)

// InitMetrics initializes Prometheus metrics with configuration
func InitMetrics(config *config.Config) {
	// Use metric prefix from configuration
	prefix := config.Metrics.Prefix

	// HTTP request metrics
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTP request duration
	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// Authentication metrics
	AuthAttemptsCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_auth_attempts_total",
			Help: "Total number of authentication attempts",
		},
	)

	AuthSuccessCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_auth_success_total",
			Help: "Total number of successful authentications",
		},
	)

	AuthErrorsCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_auth_errors_total",
			Help: "Total number of authentication errors",
		},
		[]string{"reason"},
	)

	// Database operation metrics
	DbOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_db_operation_duration_seconds",
			Help:    "Duration of database operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation_type"},
	)

	// Site record metrics
	SiteOperationsCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_site_operations_total",
			Help: "Total number of site record operations",
		},
		[]string{"operation"},
	)

	// Bulk upload metrics
	UploadRowsCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_upload_rows_total",
			Help: "Total number of spreadsheet rows processed by outcome",
		},
		[]string{"outcome"},
	)

	PatchDroppedFieldsCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_patch_dropped_fields_total",
			Help: "Total number of update payload fields dropped as unrecognized or malformed",
		},
	)
}

// MetricsMiddleware adds prometheus metrics to track HTTP requests
func MetricsMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Start timer for request duration
			start := time.Now()

			// Process request
			err := next(c)

			// Calculate request duration
			duration := time.Since(start).Seconds()

			// Get request details
			method := c.Request().Method
			path := c.Path()
			status := strconv.Itoa(c.Response().Status)

			// Record metrics
			HttpRequestsTotal.WithLabelValues(method, path, status).Inc()
			HttpRequestDuration.WithLabelValues(method, path, status).Observe(duration)

			return err
		}
	}
}

// TrackDBOperation returns a function that records the duration of a database operation
func TrackDBOperation(operationType string) func(startTime time.Time) {
	return func(startTime time.Time) {
		duration := time.Since(startTime).Seconds()
		DbOperationDuration.WithLabelValues(operationType).Observe(duration)
	}
}

// RecordSiteOperation increments the counter for site record operations
func RecordSiteOperation(operation string) {
	SiteOperationsCounter.WithLabelValues(operation).Inc()
}

// RecordAuthError increments the counter for a failed authentication
func RecordAuthError(reason string) {
	AuthErrorsCounter.WithLabelValues(reason).Inc()
}

// RecordUploadRow increments the counter for one processed spreadsheet row
func RecordUploadRow(outcome string) {
	UploadRowsCounter.WithLabelValues(outcome).Inc()
}
