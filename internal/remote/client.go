package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tanmay/wordtrail/internal/progression"
	"github.com/tanmay/wordtrail/internal/store"
)

// authHeader is the header carrying the session token.
const authHeader = "x-auth-token"

// StatusError indicates the server answered with a non-2xx status.
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d for %s", e.Code, e.URL)
}

// Client is the HTTP client for the learning API. Calls carry a fixed
// timeout and are never retried; the reconciler decides whether a
// failure is surfaced or swallowed.
type Client struct {
	baseURL string
	token   string
	http    *http.Client

	now func() time.Time
}

// NewClient creates a Client from cfg.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.Token,
		http:    &http.Client{Timeout: timeout},
		now:     time.Now,
	}
}

// FetchProgress pulls the learner's categories and aggregate progress.
// The response is schema-validated before decoding so a malformed
// payload can never overwrite local state.
func (c *Client) FetchProgress(ctx context.Context, userID string) (*ProgressPayload, error) {
	raw, err := c.get(ctx, "/api/learning/progress/"+url.PathEscape(userID))
	if err != nil {
		return nil, err
	}

	if err := validatePayload(raw); err != nil {
		return nil, fmt.Errorf("progress payload: %w", err)
	}

	var body struct {
		Categories []wireCategory `json:"categories"`
		Progress   *wireProgress  `json:"progress"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, fmt.Errorf("decode progress payload: %w", err)
	}

	return &ProgressPayload{
		Categories: wireToCategories(body.Categories),
		Progress:   wireToProgress(body.Progress),
	}, nil
}

// PushCategories mirrors the local category tree to the server.
func (c *Client) PushCategories(ctx context.Context, cats []store.Category) error {
	body := map[string]any{"categories": categoriesToWire(cats)}
	_, err := c.post(ctx, "/api/learning/sync", body)
	return err
}

// PushLessonCompletion reports a lesson completion. The completion's
// idempotency key rides along so the server can drop replays.
func (c *Client) PushLessonCompletion(ctx context.Context, completion progression.LessonCompletion) error {
	body := map[string]any{
		"categoryId":     completion.CategoryID,
		"lessonId":       completion.LessonID,
		"score":          completion.Score,
		"progress":       progressToWire(completion.Progress),
		"idempotencyKey": completion.IdempotencyKey,
	}
	_, err := c.post(ctx, "/api/learning/complete-lesson", body)
	return err
}

// FetchStats pulls the server-side aggregate stats.
func (c *Client) FetchStats(ctx context.Context) (*RemoteStats, error) {
	raw, err := c.get(ctx, "/api/learning/stats")
	if err != nil {
		return nil, err
	}
	var stats RemoteStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil, fmt.Errorf("decode stats: %w", err)
	}
	return &stats, nil
}

// Usable reports whether the client's token is worth sending at all.
func (c *Client) Usable() bool {
	return TokenUsable(c.token, c.now())
}

func (c *Client) get(ctx context.Context, path string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, path, nil)
}

func (c *Client) post(ctx context.Context, path string, body any) (json.RawMessage, error) {
	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}
	return c.do(ctx, http.MethodPost, path, encoded)
}

func (c *Client) do(ctx context.Context, method, path string, body []byte) (json.RawMessage, error) {
	fullURL := c.baseURL + path

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set(authHeader, c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{Code: resp.StatusCode, URL: fullURL}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	return raw, nil
}
