// internal/common/errors/errors_test.go
package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Normalization Tests
// ==========================

func TestNormalize_PassesStandardErrorThrough(t *testing.T) {
	stdErr := NewNotFoundError("no such post")

	assert.Same(t, stdErr, Normalize(stdErr))
}

func TestNormalize_WrapsPlainError(t *testing.T) {
	norm := Normalize(errors.New("connection reset"))

	require.NotNil(t, norm)
	assert.Equal(t, ErrorCode("INTERNAL_ERROR"), norm.Code)
	assert.Equal(t, "connection reset", norm.Details)
	assert.False(t, norm.Retryable)
	assert.False(t, norm.Timestamp.IsZero())
}

// ==========================
// Status Mapping Tests
// ==========================

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		code   ErrorCode
		status int
	}{
		{ErrCodeMissingQuery, http.StatusBadRequest},
		{ErrCodeInvalidPayload, http.StatusBadRequest},
		{ErrCodeValidationFailed, http.StatusBadRequest},
		{ErrCodeUnauthorized, http.StatusUnauthorized},
		{ErrCodeNotFound, http.StatusNotFound},
		{ErrCodeCompletionUnavailable, http.StatusServiceUnavailable},
		{ErrCodeCompletionRateLimit, http.StatusServiceUnavailable},
		{ErrCodeDatabaseInsertFailed, http.StatusInternalServerError},
		{ErrCodeQueryExecutionFailed, http.StatusInternalServerError},
		{ErrorCode("SOMETHING_NEW"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.status, HTTPStatus(tt.code))
		})
	}
}
