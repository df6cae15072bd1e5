// internal/handlers/admin/leadsearch/handler_test.go
package leadsearch

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"edupath-server/internal/common/logger"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Query Builder Tests
// ==========================

func TestBuildLeadQuery(t *testing.T) {
	tests := []struct {
		name     string
		params   Params
		validate func(t *testing.T, body map[string]interface{})
	}{
		{
			name:   "empty params fall back to match_all",
			params: Params{},
			validate: func(t *testing.T, body map[string]interface{}) {
				query := body["query"].(map[string]interface{})
				assert.Contains(t, query, "match_all")
			},
		},
		{
			name:   "keyword query builds multi_match",
			params: Params{Query: "priya"},
			validate: func(t *testing.T, body map[string]interface{}) {
				boolQuery := body["query"].(map[string]interface{})["bool"].(map[string]interface{})
				must := boolQuery["must"].([]interface{})
				require.Len(t, must, 1)
				mm := must[0].(map[string]interface{})["multi_match"].(map[string]interface{})
				assert.Equal(t, "priya", mm["query"])
			},
		},
		{
			name:   "priority and source become term filters",
			params: Params{Priority: "high", Source: "contact-form"},
			validate: func(t *testing.T, body map[string]interface{}) {
				boolQuery := body["query"].(map[string]interface{})["bool"].(map[string]interface{})
				filters := boolQuery["filter"].([]interface{})
				assert.Len(t, filters, 2)
				assert.NotContains(t, boolQuery, "must")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Round-trip through JSON so assertions see the wire shape.
			raw, err := json.Marshal(buildLeadQuery(&tt.params))
			require.NoError(t, err)
			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(raw, &body))
			tt.validate(t, body)
		})
	}
}

// ==========================
// Postgres Fallback Tests
// ==========================

func leadRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "email", "phone", "country_interest",
		"field_of_study", "message", "source", "priority", "created_at",
	}).AddRow("lead-1", "Priya Sharma", "priya@example.com", "", "Canada",
		"Computer Science", "call me", "contact-form", "high", time.Now())
}

func TestHandler_NoElasticsearch_UsesPostgres(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT (.+) FROM leads WHERE 1=1 AND \(name ILIKE`).
		WithArgs("%priya%", 20).
		WillReturnRows(leadRows())

	h := NewHandler(nil, db, logger.NewTestLogger(t))
	req := httptest.NewRequest(http.MethodGet, "/api/admin/leads/search?q=priya", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "postgres", resp.Engine)
	require.Len(t, resp.Leads, 1)
	assert.Equal(t, "Priya Sharma", resp.Leads[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandler_PostgresFilters(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT (.+) FROM leads WHERE 1=1 AND priority = \$1 AND source = \$2`).
		WithArgs("high", "contact-form", 5).
		WillReturnRows(leadRows())

	h := NewHandler(nil, db, logger.NewTestLogger(t))
	req := httptest.NewRequest(http.MethodGet, "/api/admin/leads/search?priority=high&source=contact-form&limit=5", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandler_LimitClamped(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/admin/leads/search?limit=5000", nil)
	params := parseParams(req)
	assert.Equal(t, maxLimit, params.Limit)

	req = httptest.NewRequest(http.MethodGet, "/api/admin/leads/search?limit=bogus", nil)
	params = parseParams(req)
	assert.Equal(t, defaultLimit, params.Limit)
}

func TestHandler_QueryFailure_Returns500(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT (.+) FROM leads`).WillReturnError(assert.AnError)

	h := NewHandler(nil, db, logger.NewTestLogger(t))
	req := httptest.NewRequest(http.MethodGet, "/api/admin/leads/search", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
