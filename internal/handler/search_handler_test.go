package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// An empty or whitespace-only term is rejected before any store access
func TestSearchSitesRequiresTerm(t *testing.T) {
	for _, target := range []string{"/api/search", "/api/search?term=", "/api/search?term=%20%20"} {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()

		require.NoError(t, SearchSites(e.NewContext(req, rec)))

		assert.Equal(t, http.StatusBadRequest, rec.Code, "target %s", target)
		assert.Contains(t, rec.Body.String(), "Search term is required")
	}
}

func TestSearchSitesWithoutDatabase(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/search?term=S001", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, SearchSites(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
