// internal/handlers/essayreview/handler.go
package essayreview

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"edupath-server/internal/common/completion"
	apperrors "edupath-server/internal/common/errors"
	"edupath-server/internal/common/logger"
	"edupath-server/internal/common/metrics"
	"edupath-server/internal/common/web"
)

const featureName = "essay-review"

// Handler serves the essay-review endpoint. An empty essay is the caller's
// error; everything past validation always answers 200.
type Handler struct {
	config     *Config
	completion *completion.Client
	logger     logger.Logger
}

func NewHandler(cfg *Config, client *completion.Client, log logger.Logger) *Handler {
	return &Handler{
		config:     cfg,
		completion: client,
		logger:     log.WithFields(map[string]interface{}{"handler": "essayreview"}),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := web.DecodeJSON(r, &req); err != nil {
		web.WriteError(w, apperrors.NewInvalidPayloadError(err.Error()))
		return
	}

	req.Essay = strings.TrimSpace(req.Essay)
	if req.Essay == "" {
		web.WriteError(w, apperrors.NewValidationFailedError("essay must not be empty"))
		return
	}
	if len(req.Essay) > h.config.MaxEssayLength {
		web.WriteError(w, apperrors.NewValidationFailedError(
			fmt.Sprintf("essay exceeds the %d character limit", h.config.MaxEssayLength)))
		return
	}

	web.WriteJSON(w, http.StatusOK, h.execute(r.Context(), &req))
}

func (h *Handler) execute(ctx context.Context, req *Request) *Response {
	stats := computeStats(req.Essay)

	if feedback, ok := h.tryCompletion(ctx, req); ok {
		metrics.AIRequestsTotal.WithLabelValues(featureName, "ai").Inc()
		return &Response{
			Success:   true,
			Feedback:  clampFeedback(feedback),
			Stats:     stats,
			AIPowered: true,
		}
	}

	metrics.AIRequestsTotal.WithLabelValues(featureName, "fallback").Inc()
	return &Response{
		Success:   true,
		Feedback:  fallbackFeedback(stats),
		Stats:     stats,
		AIPowered: false,
	}
}

func (h *Handler) tryCompletion(ctx context.Context, req *Request) (Feedback, bool) {
	if !h.completion.Enabled() {
		metrics.CompletionFailuresTotal.WithLabelValues(string(completion.ReasonDisabled)).Inc()
		return Feedback{}, false
	}

	var result modelResult
	failure := h.completion.CompleteJSON(ctx, completion.Request{
		System:      systemInstruction,
		User:        buildUserPrompt(req),
		Temperature: h.config.Temperature,
		MaxTokens:   h.config.MaxTokens,
	}, &result)
	if failure != nil {
		metrics.CompletionFailuresTotal.WithLabelValues(string(failure.Reason)).Inc()
		h.logger.Warn("essay review completion failed, using structural review", map[string]interface{}{
			"reason": string(failure.Reason),
		})
		return Feedback{}, false
	}
	return result.Feedback, true
}

func clampFeedback(f Feedback) Feedback {
	if f.OverallScore > 100 {
		f.OverallScore = 100
	}
	if f.OverallScore < 0 {
		f.OverallScore = 0
	}
	return f
}
