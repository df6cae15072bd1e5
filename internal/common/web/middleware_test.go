// internal/common/web/middleware_test.go
package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"edupath-server/internal/common/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

type recordedRequest struct {
	route  string
	status string
}

type mockRecorder struct {
	requests  []recordedRequest
	durations []string
}

func (m *mockRecorder) RecordRequest(_ context.Context, route, status string) {
	m.requests = append(m.requests, recordedRequest{route: route, status: status})
}

func (m *mockRecorder) RecordDuration(_ context.Context, route string, _ time.Duration) {
	m.durations = append(m.durations, route)
}

// ==========================
// Middleware Tests
// ==========================

func TestRequireMethod_RejectsWrongMethod(t *testing.T) {
	h := RequireMethod(http.MethodPost, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/enquiries", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	var body ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
}

func TestInstrument_RecordsStatusClass(t *testing.T) {
	obs := &mockRecorder{}
	h := Instrument("/api/blog", logger.NewTestLogger(t), obs, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/blog/missing", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.Len(t, obs.requests, 1)
	assert.Equal(t, "/api/blog", obs.requests[0].route)
	assert.Equal(t, "4xx", obs.requests[0].status)
	assert.Equal(t, []string{"/api/blog"}, obs.durations)
}

func TestInstrument_RecoversPanic(t *testing.T) {
	h := Instrument("/api/ai-match", logger.NewTestLogger(t), nil, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/ai-match", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var body ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "internal server error", body.Error)
}
