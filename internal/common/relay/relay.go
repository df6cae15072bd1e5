// internal/common/relay/relay.go
package relay

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// Client posts form submissions to the third-party forms-relay service as a
// best-effort secondary sink. Callers own the error handling; the lead
// notifier logs relay failures and never surfaces them to the primary
// request.
type Client struct {
	url        string
	accessKey  string
	httpClient *http.Client
}

// NewClient creates a relay client. An empty URL disables the sink.
func NewClient(url, accessKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		url:       url,
		accessKey: accessKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Enabled reports whether a relay endpoint is configured.
func (c *Client) Enabled() bool {
	return c.url != ""
}

// Submit posts the fields as multipart form data and waits for the result.
func (c *Client) Submit(ctx context.Context, fields map[string]string) error {
	if !c.Enabled() {
		return fmt.Errorf("forms relay not configured")
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if c.accessKey != "" {
		if err := w.WriteField("access_key", c.accessKey); err != nil {
			return fmt.Errorf("failed to write access key field: %w", err)
		}
	}
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return fmt.Errorf("failed to write field %s: %w", k, err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finalize form body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, &buf)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("relay returned status %d: %s", resp.StatusCode, string(body))
	}

	return nil
}
