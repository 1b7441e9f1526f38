package agentbackend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client calls the conversational agent backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a backend client. A zero timeout uses 120s.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// BaseURL returns the configured backend URL.
func (c *Client) BaseURL() string { return c.baseURL }

// Run sends one user turn to the backend.
func (c *Client) Run(ctx context.Context, req RunRequest) (RunResponse, error) {
	if c.baseURL == "" {
		return RunResponse{}, ErrNotConfigured
	}
	if req.ConversationHistory == nil {
		req.ConversationHistory = []HistoryMessage{}
	}

	body, err := json.Marshal(req)
	if err != nil {
		return RunResponse{}, fmt.Errorf("failed to marshal run request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+runPath, bytes.NewReader(body))
	if err != nil {
		return RunResponse{}, fmt.Errorf("failed to build run request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if isTimeout(err) {
			return RunResponse{}, fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return RunResponse{}, fmt.Errorf("failed to call agent backend: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return RunResponse{}, fmt.Errorf("%w: %d: %s", ErrStatus, resp.StatusCode, string(raw))
	}

	var out RunResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return RunResponse{}, fmt.Errorf("failed to decode run response: %w", err)
	}
	if !out.Success {
		return out, ErrUnsuccessful
	}
	if strings.TrimSpace(out.Response) == "" {
		return out, ErrEmptyResponse
	}
	return out, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var te interface{ Timeout() bool }
	return errors.As(err, &te) && te.Timeout()
}

// StringPtr returns nil for an empty string.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
