// internal/common/web/middleware.go
package web

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"edupath-server/internal/common/logger"
	"edupath-server/internal/common/metrics"
)

// RequestRecorder is the slice of the observability layer the middleware
// reports to.
type RequestRecorder interface {
	RecordRequest(ctx context.Context, route, status string)
	RecordDuration(ctx context.Context, route string, duration time.Duration)
}

// statusRecorder captures the status written by the wrapped handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Instrument wraps a handler with request logging, prometheus and otel
// metrics and panic recovery. Panics become a 500 with a generic body;
// nothing throws past the handler boundary.
func Instrument(route string, log logger.Logger, obs RequestRecorder, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		defer func() {
			if p := recover(); p != nil {
				log.Error("handler panic", map[string]interface{}{
					"route": route,
					"panic": fmt.Sprintf("%v", p),
				})
				WriteJSON(rec, http.StatusInternalServerError, ErrorBody{
					Error:   "internal server error",
					Success: false,
				})
			}

			elapsed := time.Since(start)
			statusClass := fmt.Sprintf("%dxx", rec.status/100)
			metrics.HTTPRequestsTotal.WithLabelValues(route, statusClass).Inc()
			metrics.HTTPRequestDuration.WithLabelValues(route).Observe(elapsed.Seconds())
			if obs != nil {
				obs.RecordRequest(r.Context(), route, statusClass)
				obs.RecordDuration(r.Context(), route, elapsed)
			}

			log.Info("request handled", map[string]interface{}{
				"route":    route,
				"method":   r.Method,
				"status":   rec.status,
				"duration": elapsed.String(),
			})
		}()

		next.ServeHTTP(rec, r)
	})
}

// RequireMethod rejects requests with the wrong HTTP method before the
// handler runs.
func RequireMethod(method string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			WriteJSON(w, http.StatusMethodNotAllowed, ErrorBody{
				Error:   "method not allowed",
				Success: false,
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}
