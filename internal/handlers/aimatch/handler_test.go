// internal/handlers/aimatch/handler_test.go
package aimatch

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"edupath-server/internal/common/completion"
	"edupath-server/internal/common/logger"
	"edupath-server/internal/referencedata"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

// stubChatClient returns a canned payload or error for every call and counts
// attempts so tests can assert the single-attempt contract.
type stubChatClient struct {
	payload string
	err     error
	calls   int
}

func (s *stubChatClient) CreateChatCompletion(_ context.Context, _ openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	s.calls++
	if s.err != nil {
		return openai.ChatCompletionResponse{}, s.err
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: s.payload}},
		},
	}, nil
}

func createTestHandler(t *testing.T, stub *stubChatClient) *Handler {
	testLogger := logger.NewTestLogger(t)
	var client *completion.Client
	if stub != nil {
		client = completion.NewWithChatClient(completion.Config{Model: "gpt-4o-mini"}, stub, testLogger)
	} else {
		// A short key never passes the credential gate, so the client is
		// permanently disabled.
		client = completion.New(completion.Config{APIKey: "sk-short"}, testLogger)
	}
	return NewHandler(LoadConfig(), client, referencedata.NewProvider(), testLogger)
}

func postMatch(t *testing.T, h *Handler, body string) *Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/ai-match", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return &resp
}

const validProfileBody = `{
	"academicScore": 85,
	"preferredCountries": ["USA"],
	"fieldOfStudy": "Computer Science",
	"degreeLevel": "Masters",
	"budget": "$40,000 - $60,000"
}`

// ==========================
// Fallback Path Tests
// ==========================

func TestHandler_NoCredential_UsesFallback(t *testing.T) {
	h := createTestHandler(t, nil)

	resp := postMatch(t, h, validProfileBody)

	assert.True(t, resp.Success)
	assert.False(t, resp.AIPowered)
	assert.NotEmpty(t, resp.Matches)
	assert.LessOrEqual(t, len(resp.Matches), 10)
	for _, m := range resp.Matches {
		assert.GreaterOrEqual(t, m.MatchScore, 0)
		assert.LessOrEqual(t, m.MatchScore, 100)
	}
	assert.NotEmpty(t, resp.Analysis.OverallSummary)
	assert.Equal(t, 85.0, resp.Profile.AcademicScore)
}

func TestHandler_CompletionError_UsesFallback(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{"auth rejected", http.StatusUnauthorized},
		{"rate limited", http.StatusTooManyRequests},
		{"server error", http.StatusInternalServerError},
		{"unavailable", http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubChatClient{err: &openai.APIError{HTTPStatusCode: tt.status}}
			h := createTestHandler(t, stub)

			resp := postMatch(t, h, validProfileBody)

			assert.False(t, resp.AIPowered)
			assert.NotEmpty(t, resp.Matches)
			// One attempt, no retry.
			assert.Equal(t, 1, stub.calls)
		})
	}
}

func TestHandler_MalformedBody_StillRanks(t *testing.T) {
	h := createTestHandler(t, nil)

	resp := postMatch(t, h, `{"academicScore": "not a number"`)

	assert.True(t, resp.Success)
	assert.False(t, resp.AIPowered)
	assert.NotEmpty(t, resp.Matches)
}

// ==========================
// AI Path Tests
// ==========================

func TestHandler_AIPath_ReconcilesKnownNames(t *testing.T) {
	payload := `{
		"matches": [
			{"name": "Harvard University", "matchScore": 92, "admissionChance": "High",
			 "reasons": ["Top CS program"], "recommendation": "Apply early."}
		],
		"analysis": {"overallSummary": "Strong profile for US admissions."}
	}`
	h := createTestHandler(t, &stubChatClient{payload: payload})

	resp := postMatch(t, h, validProfileBody)

	assert.True(t, resp.AIPowered)
	require.Len(t, resp.Matches, 1)
	m := resp.Matches[0]
	// Canonical record fields overlay the model's answer.
	assert.Equal(t, "harvard", m.ID)
	assert.Equal(t, "USA", m.Country)
	assert.Equal(t, 1, m.Ranking)
	assert.NotEmpty(t, m.Location)
	assert.NotEmpty(t, m.Programs)
	// Model-provided scoring fields survive.
	assert.Equal(t, 92, m.MatchScore)
	assert.Equal(t, "High", m.AdmissionChance)
	assert.Equal(t, "Strong profile for US admissions.", resp.Analysis.OverallSummary)
}

func TestHandler_AIPath_SynthesizesPlaceholder(t *testing.T) {
	payload := `{
		"matches": [
			{"name": "Atlantis Institute of Technology", "matchScore": 150}
		]
	}`
	h := createTestHandler(t, &stubChatClient{payload: payload})

	resp := postMatch(t, h, validProfileBody)

	assert.True(t, resp.AIPowered)
	require.Len(t, resp.Matches, 1)
	m := resp.Matches[0]
	assert.NotEmpty(t, m.ID)
	assert.Equal(t, "Atlantis Institute of Technology", m.Name)
	// First preferred country stands in for the unknown location.
	assert.Equal(t, "USA", m.Country)
	assert.Equal(t, 0, m.Ranking)
	assert.Equal(t, referencedata.DefaultImage, m.Image)
	assert.Equal(t, []string{"Computer Science"}, m.Programs)
	// Out-of-range model scores are clamped.
	assert.Equal(t, 100, m.MatchScore)
}

func TestHandler_AIPath_PlaceholderWithoutPreferences(t *testing.T) {
	payload := `{"matches": [{"name": "Atlantis Institute of Technology", "matchScore": 70}]}`
	h := createTestHandler(t, &stubChatClient{payload: payload})

	resp := postMatch(t, h, `{}`)

	require.Len(t, resp.Matches, 1)
	assert.Equal(t, "International", resp.Matches[0].Country)
	assert.Empty(t, resp.Matches[0].Programs)
}

func TestHandler_AIPath_GarbagePayloadIsEmptyResult(t *testing.T) {
	h := createTestHandler(t, &stubChatClient{payload: "certainly! here are your matches"})

	resp := postMatch(t, h, validProfileBody)

	// An unparsable payload counts as a successful empty answer, not a
	// failure, so the rule-based path does not run.
	assert.True(t, resp.AIPowered)
	assert.Empty(t, resp.Matches)
}

func TestHandler_AIPath_TruncatesToMaxMatches(t *testing.T) {
	var names []string
	for i := 0; i < 15; i++ {
		names = append(names, `{"name": "Institute `+string(rune('A'+i))+`", "matchScore": 80}`)
	}
	payload := `{"matches": [` + strings.Join(names, ",") + `]}`
	h := createTestHandler(t, &stubChatClient{payload: payload})

	resp := postMatch(t, h, validProfileBody)

	assert.Len(t, resp.Matches, 10)
}
