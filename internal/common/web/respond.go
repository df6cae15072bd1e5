// internal/common/web/respond.go
package web

import (
	"encoding/json"
	"net/http"

	apperrors "edupath-server/internal/common/errors"
)

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ErrorBody is the uniform error payload for non-2xx responses.
type ErrorBody struct {
	Error        string `json:"error"`
	Code         string `json:"code,omitempty"`
	Success      bool   `json:"success"`
	FallbackMode bool   `json:"fallbackMode,omitempty"`
}

// WriteError normalizes err and writes the documented error payload.
func WriteError(w http.ResponseWriter, err error) {
	stdErr := apperrors.Normalize(err)
	status := apperrors.HTTPStatus(stdErr.Code)
	body := ErrorBody{
		Error:   stdErr.Message,
		Code:    string(stdErr.Code),
		Success: false,
	}
	if status == http.StatusServiceUnavailable {
		body.FallbackMode = true
	}
	WriteJSON(w, status, body)
}

// DecodeJSON reads the request body into v without strict field checking.
func DecodeJSON(r *http.Request, v interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}
