// internal/common/completion/client.go
package completion

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"edupath-server/internal/common/logger"

	openai "github.com/sashabaranov/go-openai"
)

const (
	// credentialPrefix is the fixed prefix every valid API key carries.
	credentialPrefix = "sk-"
	// credentialMinLength guards against obviously truncated keys.
	credentialMinLength = 20
)

// FailureReason tags why the completion path could not produce a result.
// Callers branch on it into the deterministic fallback path.
type FailureReason string

const (
	ReasonDisabled    FailureReason = "CREDENTIAL_MISSING"
	ReasonAuth        FailureReason = "AUTH_FAILED"
	ReasonRateLimited FailureReason = "RATE_LIMITED"
	ReasonUnavailable FailureReason = "SERVICE_UNAVAILABLE"
	ReasonTransport   FailureReason = "TRANSPORT_ERROR"
)

// Failure is the tagged error result of a completion attempt.
type Failure struct {
	Reason FailureReason
	Status int
	Err    error
}

func (f *Failure) Error() string {
	if f.Err != nil {
		return fmt.Sprintf("completion failure [%s]: %v", f.Reason, f.Err)
	}
	return fmt.Sprintf("completion failure [%s]", f.Reason)
}

// ChatClient is the slice of the OpenAI client the adapter needs. Tests swap
// in a stub; production uses *openai.Client.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Config carries the adapter settings.
type Config struct {
	APIKey       string
	Organization string
	Model        string
	Timeout      time.Duration
}

// Client wraps the hosted completion API behind a JSON-object contract.
// A Client built from a missing or malformed credential is permanently
// disabled and never attempts a network call.
type Client struct {
	config Config
	inner  ChatClient
	logger logger.Logger
}

// CredentialValid reports whether the key looks like a usable credential.
func CredentialValid(key string) bool {
	return len(key) >= credentialMinLength && strings.HasPrefix(key, credentialPrefix)
}

// New builds a Client. When the credential is absent or malformed the Client
// is disabled rather than failing, so the process always starts.
func New(cfg Config, log logger.Logger) *Client {
	c := &Client{
		config: cfg,
		logger: log.WithFields(map[string]interface{}{"component": "completion"}),
	}

	if !CredentialValid(cfg.APIKey) {
		c.logger.Warn("completion API credential missing or malformed, AI path disabled", map[string]interface{}{
			"keyPresent": cfg.APIKey != "",
		})
		return c
	}

	oaCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.Organization != "" {
		oaCfg.OrgID = cfg.Organization
	}
	if cfg.Timeout > 0 {
		oaCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}
	c.inner = openai.NewClientWithConfig(oaCfg)
	return c
}

// NewWithChatClient builds a Client over an injected ChatClient. Used in tests.
func NewWithChatClient(cfg Config, inner ChatClient, log logger.Logger) *Client {
	return &Client{
		config: cfg,
		inner:  inner,
		logger: log.WithFields(map[string]interface{}{"component": "completion"}),
	}
}

// Enabled reports whether the completion path may attempt a network call.
func (c *Client) Enabled() bool {
	return c.inner != nil
}

// Request is one structured completion exchange: a fixed system instruction
// plus a single user message, tuned per use case.
type Request struct {
	System      string
	User        string
	Temperature float32
	MaxTokens   int
}

// CompleteJSON performs a single completion attempt requesting a JSON object
// payload and unmarshals it into out. Malformed or empty payloads are treated
// as an empty object, not a failure — downstream code tolerates missing
// fields. Transport, auth and rate-limit errors return a tagged Failure after
// one attempt; there is no retry or backoff.
func (c *Client) CompleteJSON(ctx context.Context, req Request, out interface{}) *Failure {
	if !c.Enabled() {
		return &Failure{Reason: ReasonDisabled}
	}

	resp, err := c.inner.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.config.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.System},
			{Role: openai.ChatMessageRoleUser, Content: req.User},
		},
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		N:           1,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return c.classify(err)
	}

	if len(resp.Choices) == 0 {
		c.logger.Warn("completion returned no choices, treating as empty object", nil)
		return nil
	}

	raw := strings.TrimSpace(resp.Choices[0].Message.Content)
	if raw == "" {
		c.logger.Warn("completion returned empty payload, treating as empty object", nil)
		return nil
	}

	if err := json.Unmarshal([]byte(raw), out); err != nil {
		c.logger.Warn("completion payload is not valid JSON, treating as empty object", map[string]interface{}{
			"error":      err.Error(),
			"payloadLen": len(raw),
		})
	}
	return nil
}

// classify maps a transport error onto a tagged Failure with a
// status-specific log message. All reasons route to the same fallback.
func (c *Client) classify(err error) *Failure {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.HTTPStatusCode {
		case http.StatusUnauthorized:
			c.logger.Error("completion API rejected the credential", map[string]interface{}{"status": 401})
			return &Failure{Reason: ReasonAuth, Status: 401, Err: err}
		case http.StatusTooManyRequests:
			c.logger.Warn("completion API rate limit hit", map[string]interface{}{"status": 429})
			return &Failure{Reason: ReasonRateLimited, Status: 429, Err: err}
		case http.StatusInternalServerError, http.StatusServiceUnavailable:
			c.logger.Error("completion API is unavailable", map[string]interface{}{"status": apiErr.HTTPStatusCode})
			return &Failure{Reason: ReasonUnavailable, Status: apiErr.HTTPStatusCode, Err: err}
		default:
			c.logger.Error("completion API request failed", map[string]interface{}{"status": apiErr.HTTPStatusCode})
			return &Failure{Reason: ReasonTransport, Status: apiErr.HTTPStatusCode, Err: err}
		}
	}

	c.logger.Error("completion API transport error", map[string]interface{}{"error": err.Error()})
	return &Failure{Reason: ReasonTransport, Err: err}
}
