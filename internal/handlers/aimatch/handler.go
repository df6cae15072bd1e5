// internal/handlers/aimatch/handler.go
package aimatch

import (
	"context"
	"net/http"

	"edupath-server/internal/common/completion"
	"edupath-server/internal/common/logger"
	"edupath-server/internal/common/metrics"
	"edupath-server/internal/common/web"
	"edupath-server/internal/models"
	"edupath-server/internal/referencedata"
)

const featureName = "match"

// Handler serves the university-match endpoint. It always answers 200 with a
// populated envelope: either the AI-ranked matches or the deterministic
// rule-based ranking, with AIPowered reflecting which path ran.
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
		logger:     log.WithFields(map[string]interface{}{"handler": "aimatch"}),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Missing or malformed bodies are tolerated: an empty profile still
	// produces a ranked list from the rule-based criteria.
	var profile StudentProfile
	if err := web.DecodeJSON(r, &profile); err != nil {
		h.logger.Warn("match request body unreadable, proceeding with empty profile", map[string]interface{}{
			"error": err.Error(),
		})
		profile = StudentProfile{}
	}

	web.WriteJSON(w, http.StatusOK, h.execute(r.Context(), &profile))
}

func (h *Handler) execute(ctx context.Context, profile *StudentProfile) *Response {
	if result, ok := h.tryCompletion(ctx, profile, h.promptCandidates(profile)); ok {
		metrics.AIRequestsTotal.WithLabelValues(featureName, "ai").Inc()
		matches := reconcile(profile, result.Matches, h.data)
		if len(matches) > h.config.MaxMatches {
			matches = matches[:h.config.MaxMatches]
		}
		return &Response{
			Success:   true,
			Matches:   matches,
			Analysis:  result.Analysis,
			Profile:   *profile,
			AIPowered: true,
		}
	}

	// The rule-based ranking scores the whole catalog: non-preferred
	// countries are penalized, not excluded.
	metrics.AIRequestsTotal.WithLabelValues(featureName, "fallback").Inc()
	matches := fallbackMatch(profile, h.data.Universities(), h.config.MaxMatches)
	return &Response{
		Success:   true,
		Matches:   matches,
		Analysis:  fallbackAnalysis(profile, matches),
		Profile:   *profile,
		AIPowered: false,
	}
}

// tryCompletion runs the single completion attempt. Any tagged failure sends
// the caller down the rule-based path.
func (h *Handler) tryCompletion(ctx context.Context, profile *StudentProfile, candidates []models.University) (*modelResult, bool) {
	if !h.completion.Enabled() {
		metrics.CompletionFailuresTotal.WithLabelValues(string(completion.ReasonDisabled)).Inc()
		return nil, false
	}

	var result modelResult
	failure := h.completion.CompleteJSON(ctx, completion.Request{
		System:      systemInstruction,
		User:        buildUserPrompt(profile, candidates, h.config.ContextLimit),
		Temperature: h.config.Temperature,
		MaxTokens:   h.config.MaxTokens,
	}, &result)
	if failure != nil {
		metrics.CompletionFailuresTotal.WithLabelValues(string(failure.Reason)).Inc()
		h.logger.Warn("match completion failed, using rule-based ranking", map[string]interface{}{
			"reason": string(failure.Reason),
		})
		return nil, false
	}
	return &result, true
}

// promptCandidates narrows the reference set by stated preferences so the
// bounded prompt context favours relevant institutions. An empty filter
// result falls back to the full catalog.
func (h *Handler) promptCandidates(profile *StudentProfile) []models.University {
	if len(profile.PreferredCountries) == 0 && profile.FieldOfStudy == "" {
		return h.data.Universities()
	}

	seen := make(map[string]bool)
	var out []models.University
	countries := profile.PreferredCountries
	if len(countries) == 0 {
		countries = []string{""}
	}
	for _, country := range countries {
		for _, u := range h.data.FilterUniversities(country, profile.FieldOfStudy) {
			if !seen[u.ID] {
				seen[u.ID] = true
				out = append(out, u)
			}
		}
	}
	if len(out) == 0 {
		return h.data.Universities()
	}
	return out
}
