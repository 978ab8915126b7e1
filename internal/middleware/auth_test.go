package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akash247777/Rental-Management-System/pkg/config"
	"github.com/akash247777/Rental-Management-System/pkg/jwtutil"
	"github.com/akash247777/Rental-Management-System/prometheus"
)

func TestMain(m *testing.M) {
	cfg := &config.Config{
		JWT:     config.JWTConfig{SigningKey: "test-signing-key", ExpirationTime: time.Hour},
		Metrics: config.MetricsConfig{Prefix: "rental_mw_test"},
	}
	jwtutil.Initialize(&cfg.JWT)
	prometheus.InitMetrics(cfg)
	os.Exit(m.Run())
}

func invokeAuth(t *testing.T, authorization string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/sites", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := AuthMiddleware(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	return rec, c
}

func TestAuthMiddlewareAcceptsBearerToken(t *testing.T) {
	token, err := jwtutil.GenerateToken("krishna", "admin")
	require.NoError(t, err)

	rec, c := invokeAuth(t, "Bearer "+token)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "krishna", c.Get("username"))
	assert.Equal(t, "admin", c.Get("role"))
}

func TestAuthMiddlewareAcceptsRawToken(t *testing.T) {
	token, err := jwtutil.GenerateToken("kuber", "admin")
	require.NoError(t, err)

	rec, _ := invokeAuth(t, token)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	rec, _ := invokeAuth(t, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "authentication required")
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	rec, _ := invokeAuth(t, "Bearer not-a-real-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid or expired token")
}
