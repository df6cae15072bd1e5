// internal/common/auth/middleware.go
package auth

import (
	"context"
	"net/http"
	"strings"

	apperrors "edupath-server/internal/common/errors"
	"edupath-server/internal/common/logger"
	"edupath-server/internal/common/web"
)

// TokenValidator is the slice of KeycloakClient the middleware needs.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (*IntrospectionResult, error)
}

// RequireAdmin guards admin routes with bearer-token validation. A nil
// validator means Keycloak is not configured; the routes stay open, which is
// the expected development-mode behavior.
func RequireAdmin(validator TokenValidator, log logger.Logger, next http.Handler) http.Handler {
	if validator == nil {
		log.Warn("admin auth not configured, admin routes are unprotected", nil)
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token := strings.TrimPrefix(header, "Bearer ")
		if token == "" || token == header {
			web.WriteError(w, apperrors.NewUnauthorizedError("missing bearer token"))
			return
		}

		result, err := validator.ValidateToken(r.Context(), token)
		if err != nil {
			log.Warn("token introspection failed", map[string]interface{}{"error": err.Error()})
			web.WriteError(w, apperrors.NewUnauthorizedError("token validation failed"))
			return
		}
		if !result.Active {
			web.WriteError(w, apperrors.NewUnauthorizedError("token inactive"))
			return
		}

		next.ServeHTTP(w, r)
	})
}
