// internal/handlers/aisearch/handler.go
package aisearch

import (
	"context"
	"net/http"
	"strings"

	"edupath-server/internal/common/completion"
	apperrors "edupath-server/internal/common/errors"
	"edupath-server/internal/common/logger"
	"edupath-server/internal/common/metrics"
	"edupath-server/internal/common/web"
	"edupath-server/internal/referencedata"
)

const featureName = "search"

// Handler serves the intelligent-search endpoint. The completion API
// interprets the query when available; otherwise a plain substring search
// answers with fallbackMode set.
type Handler struct {
	config     *Config
	completion *completion.Client
	data       *referencedata.Provider
	logger     logger.Logger
}

func NewHandler(cfg *Config, client *completion.Client, data *referencedata.Provider, log logger.Logger) *Handler {
	return &Handler{
		config:     cfg,
		completion: client,
		data:       data,
		logger:     log.WithFields(map[string]interface{}{"handler": "aisearch"}),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := web.DecodeJSON(r, &req); err != nil {
		web.WriteError(w, apperrors.NewInvalidPayloadError(err.Error()))
		return
	}

	// Missing query is the caller's error; no interpretation or network
	// call is attempted.
	req.Query = strings.TrimSpace(req.Query)
	if req.Query == "" {
		web.WriteError(w, apperrors.NewMissingQueryError("query must not be empty"))
		return
	}

	web.WriteJSON(w, http.StatusOK, h.execute(r.Context(), &req))
}

func (h *Handler) execute(ctx context.Context, req *Request) *Response {
	if result, ok := h.tryCompletion(ctx, req); ok {
		metrics.AIRequestsTotal.WithLabelValues(featureName, "ai").Inc()
		return h.assemble(req, result, false)
	}

	metrics.AIRequestsTotal.WithLabelValues(featureName, "fallback").Inc()
	return h.assemble(req, &modelResult{}, true)
}

func (h *Handler) tryCompletion(ctx context.Context, req *Request) (*modelResult, bool) {
	if !h.completion.Enabled() {
		metrics.CompletionFailuresTotal.WithLabelValues(string(completion.ReasonDisabled)).Inc()
		return nil, false
	}

	var result modelResult
	failure := h.completion.CompleteJSON(ctx, completion.Request{
		System:      systemInstruction,
		User:        buildUserPrompt(req, h.data.Universities(), h.data.Countries(), h.config.ContextLimit),
		Temperature: h.config.Temperature,
		MaxTokens:   h.config.MaxTokens,
	}, &result)
	if failure != nil {
		metrics.CompletionFailuresTotal.WithLabelValues(string(failure.Reason)).Inc()
		h.logger.Warn("search completion failed, using keyword search", map[string]interface{}{
			"reason": string(failure.Reason),
		})
		return nil, false
	}
	return &result, true
}

// assemble builds the response envelope. Results always come from the local
// reference data; the completion path contributes the interpretation and the
// conversational answer, using the interpreted term to drive the search.
func (h *Handler) assemble(req *Request, result *modelResult, fallback bool) *Response {
	interp := result.Interpretation
	if interp.SearchTerm == "" {
		interp = fallbackInterpretation(req.Query)
	}
	if !queryTypes[interp.Type] {
		interp.Type = "mixed"
	}

	results := fallbackSearch(interp.SearchTerm, h.data, h.config.MaxPerCategory)
	total := len(results.Universities) + len(results.Courses) + len(results.Countries)

	natural := result.NaturalResponse
	if natural == "" {
		natural = fallbackNaturalResponse(req.Query, results)
	}

	return &Response{
		Success:         true,
		Query:           req.Query,
		Interpretation:  interp,
		Results:         results,
		NaturalResponse: natural,
		TotalResults:    total,
		FallbackMode:    fallback,
	}
}
