// internal/handlers/admin/bulkimport/handler_test.go
package bulkimport

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"edupath-server/internal/common/logger"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

func postImport(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/colleges/import", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeImport(t *testing.T, rec *httptest.ResponseRecorder) *Response {
	t.Helper()
	require.Equal(t, http.StatusOK, rec.Code)
	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return &resp
}

// ==========================
// Import Tests
// ==========================

func TestHandler_TwoValidRecords(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	prep := mock.ExpectPrepare("INSERT INTO colleges")
	prep.ExpectExec().WillReturnResult(sqlmock.NewResult(0, 1))
	prep.ExpectExec().WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	h := NewHandler(db, logger.NewTestLogger(t))
	body := `[
		{"name": "Example University", "country": "USA", "ranking": 120, "programs": ["Physics"]},
		{"name": "Sample College", "country": "Canada", "tuition": "CAD 20,000 per year"}
	]`

	resp := decodeImport(t, postImport(t, h, body))

	assert.True(t, resp.Success)
	assert.Equal(t, 2, resp.Details.Successful)
	assert.Equal(t, 0, resp.Details.Failed)
	assert.Empty(t, resp.Details.Errors)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandler_MixedValidity(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	prep := mock.ExpectPrepare("INSERT INTO colleges")
	prep.ExpectExec().WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	h := NewHandler(db, logger.NewTestLogger(t))
	body := `[
		{"name": "Example University", "country": "USA"},
		{"name": "", "country": "USA"},
		{"country": "UK"},
		{"name": "Bad Ranking", "country": "UK", "ranking": "first"}
	]`

	resp := decodeImport(t, postImport(t, h, body))

	assert.False(t, resp.Success)
	assert.Equal(t, 1, resp.Details.Successful)
	assert.Equal(t, 3, resp.Details.Failed)
	require.Len(t, resp.Details.Errors, 3)
	assert.Equal(t, 1, resp.Details.Errors[0].Index)
	assert.Equal(t, 2, resp.Details.Errors[1].Index)
	assert.Equal(t, 3, resp.Details.Errors[2].Index)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandler_DatabaseFailure_FailsWholeBatch(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	prep := mock.ExpectPrepare("INSERT INTO colleges")
	prep.ExpectExec().WillReturnError(assert.AnError)
	mock.ExpectRollback()

	h := NewHandler(db, logger.NewTestLogger(t))
	body := `[{"name": "Example University", "country": "USA"}]`

	resp := decodeImport(t, postImport(t, h, body))

	assert.False(t, resp.Success)
	assert.Equal(t, 0, resp.Details.Successful)
	assert.Equal(t, 1, resp.Details.Failed)
}

func TestHandler_BadInput(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not an array", `{"name": "x"}`},
		{"empty array", `[]`},
		{"malformed json", `[{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, _, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			h := NewHandler(db, logger.NewTestLogger(t))
			rec := postImport(t, h, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
