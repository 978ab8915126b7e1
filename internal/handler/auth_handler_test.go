package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akash247777/Rental-Management-System/pkg/jwtutil"
)

func postLogin(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, Login(c))
	return rec
}

// The built-in accounts authenticate even though no database is configured
// in this package's tests
func TestLoginFallbackCredentials(t *testing.T) {
	rec := postLogin(t, `{"username":"krishna","password":"krishna@123"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		AccessToken string `json:"access_token"`
		User        struct {
			Username string `json:"username"`
			Role     string `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "krishna", resp.User.Username)
	assert.Equal(t, "admin", resp.User.Role)

	claims, err := jwtutil.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "krishna", claims.Username)
	assert.Equal(t, "admin", claims.Role)
}

func TestLoginSecondFallbackAccount(t *testing.T) {
	rec := postLogin(t, `{"username":"kuber","password":"kuber@123"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

// A fallback username with the wrong password must not fall through to a
// successful login
func TestLoginFallbackWrongPassword(t *testing.T) {
	rec := postLogin(t, `{"username":"krishna","password":"kuber@123"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "fallback credentials only")
}

func TestLoginMissingFields(t *testing.T) {
	for _, body := range []string{`{}`, `{"username":"krishna"}`, `{"password":"x"}`} {
		rec := postLogin(t, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)
		assert.Contains(t, rec.Body.String(), "username and password are required")
	}
}

func TestLoginUnknownUserWithoutDatabase(t *testing.T) {
	rec := postLogin(t, `{"username":"nobody","password":"whatever"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Database connection failed")
}
