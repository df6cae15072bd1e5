// internal/common/errors/handler.go
package errors

import (
	"net/http"
	"time"
)

// Normalize ensures we always have a StandardError.
func Normalize(err error) *StandardError {
	if stdErr, ok := err.(*StandardError); ok {
		return stdErr
	}
	return &StandardError{
		Code:      "INTERNAL_ERROR",
		Message:   "Unexpected error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// HTTPStatus maps an error code to the status the API surface documents.
// Completion-path failures never reach this mapping on the match endpoint;
// its handler answers 200 from the fallback path instead.
func HTTPStatus(code ErrorCode) int {
	switch code {
	case ErrCodeMissingQuery, ErrCodeInvalidPayload, ErrCodeValidationFailed:
		return http.StatusBadRequest
	case ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeCompletionUnavailable, ErrCodeCompletionRateLimit:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
