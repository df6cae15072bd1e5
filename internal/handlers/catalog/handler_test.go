// internal/handlers/catalog/handler_test.go
package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"edupath-server/internal/common/cache"
	"edupath-server/internal/common/database"
	"edupath-server/internal/common/logger"
	"edupath-server/internal/referencedata"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

func createTestHandler(t *testing.T) *Handler {
	testLogger := logger.NewTestLogger(t)
	return NewHandler(referencedata.NewProvider(), cache.New(nil, time.Minute, testLogger), testLogger)
}

func get(t *testing.T, fn http.HandlerFunc, url string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	fn(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	return rec
}

// ==========================
// Listing Tests
// ==========================

func TestUniversities_Unfiltered(t *testing.T) {
	h := createTestHandler(t)
	rec := get(t, h.Universities, "/api/universities")

	var resp universitiesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, len(referencedata.NewProvider().Universities()), resp.Total)
}

func TestUniversities_CountryAndFieldFilter(t *testing.T) {
	h := createTestHandler(t)
	rec := get(t, h.Universities, "/api/universities?country=Canada&field=Medicine")

	var resp universitiesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Universities)
	for _, u := range resp.Universities {
		assert.Equal(t, "Canada", u.Country)
	}
}

func TestUniversities_SearchAndLimit(t *testing.T) {
	h := createTestHandler(t)
	rec := get(t, h.Universities, "/api/universities?search=university&limit=3")

	var resp universitiesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Universities, 3)
}

func TestUniversities_NoHitsIsEmptyArray(t *testing.T) {
	h := createTestHandler(t)
	rec := get(t, h.Universities, "/api/universities?search=zzzzz")

	// The JSON must carry [] rather than null for frontend consumers.
	assert.Contains(t, rec.Body.String(), `"universities":[]`)
}

func TestUniversities_CachedSecondRead(t *testing.T) {
	mr := miniredis.RunT(t)
	redisClient := &database.RedisClient{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
	testLogger := logger.NewTestLogger(t)
	h := NewHandler(referencedata.NewProvider(), cache.New(redisClient, time.Minute, testLogger), testLogger)

	first := get(t, h.Universities, "/api/universities?country=UK")
	require.True(t, len(mr.Keys()) > 0)
	second := get(t, h.Universities, "/api/universities?country=UK")

	assert.JSONEq(t, first.Body.String(), second.Body.String())
}

func TestCourses_LevelFilter(t *testing.T) {
	h := createTestHandler(t)
	rec := get(t, h.Courses, "/api/courses?level=Masters")

	var resp coursesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Courses)
	for _, c := range resp.Courses {
		assert.Equal(t, "Masters", c.Level)
	}
}

func TestCountries_Search(t *testing.T) {
	h := createTestHandler(t)
	rec := get(t, h.Countries, "/api/countries?search=canada")

	var resp countriesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Countries, 1)
	assert.Equal(t, "Canada", resp.Countries[0].Name)
}
