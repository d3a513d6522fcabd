// Package memoryapi implements the MemoryGateway port against the hosted
// memory service's HTTP/JSON API.
package memoryapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"devflow.ai/cli/internal/application/ports"
)

// DefaultBaseURL is the hosted memory service endpoint.
const DefaultBaseURL = "https://api.devflow.ai"

// DefaultTimeout bounds every outbound call unless overridden.
const DefaultTimeout = 30 * time.Second

// Client talks to the memory service. All calls send JSON, attach the bearer
// token when configured, and abort when the per-call timeout elapses; a
// timeout is reported as an ordinary error, never retried.
type Client struct {
	baseURL    string
	authToken  string
	userID     string
	timeout    time.Duration
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout overrides the default per-call timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithHTTPClient substitutes the underlying HTTP client (used by tests).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates a memory service client. An empty baseURL falls back to
// the hosted endpoint; an empty authToken sends unauthenticated requests.
func NewClient(baseURL, authToken, userID string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:   baseURL,
		authToken: authToken,
		userID:    userID,
		timeout:   DefaultTimeout,
		// Transport-level timeout is intentionally absent: cancellation is
		// scoped per call through the request context.
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Search performs semantic search over stored memories.
func (c *Client) Search(ctx context.Context, req ports.SearchRequest) (*ports.SearchResult, error) {
	var result ports.SearchResult
	if err := c.do(ctx, http.MethodPost, "/api/v1/memory/search", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Create stores a new memory.
func (c *Client) Create(ctx context.Context, req ports.CreateRequest) (*ports.Memory, error) {
	var memory ports.Memory
	if err := c.do(ctx, http.MethodPost, "/api/v1/memory", req, &memory); err != nil {
		return nil, err
	}
	return &memory, nil
}

// List returns up to limit recent memories.
func (c *Client) List(ctx context.Context, limit int) ([]ports.Memory, error) {
	path := "/api/v1/memory?limit=" + strconv.Itoa(limit)
	var memories []ports.Memory
	if err := c.do(ctx, http.MethodGet, path, nil, &memories); err != nil {
		return nil, err
	}
	return memories, nil
}

// Get fetches a single memory by id.
func (c *Client) Get(ctx context.Context, id string) (*ports.Memory, error) {
	var memory ports.Memory
	if err := c.do(ctx, http.MethodGet, "/api/v1/memory/"+url.PathEscape(id), nil, &memory); err != nil {
		return nil, err
	}
	return &memory, nil
}

// Delete removes a memory by id.
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/memory/"+url.PathEscape(id), nil, nil)
}

// SuggestTags asks the intelligence service for tags for a memory.
func (c *Client) SuggestTags(ctx context.Context, memoryID string) (*ports.TagSuggestions, error) {
	body := struct {
		MemoryID string `json:"memory_id"`
		UserID   string `json:"user_id"`
	}{MemoryID: memoryID, UserID: c.userID}

	var suggestions ports.TagSuggestions
	if err := c.do(ctx, http.MethodPost, "/api/v1/intelligence/suggest-tags", body, &suggestions); err != nil {
		return nil, err
	}
	return &suggestions, nil
}

// FindRelated returns memories related to the given one.
func (c *Client) FindRelated(ctx context.Context, memoryID string, limit int) ([]ports.Memory, error) {
	body := struct {
		MemoryID string `json:"memory_id"`
		UserID   string `json:"user_id"`
		Limit    int    `json:"limit"`
	}{MemoryID: memoryID, UserID: c.userID, Limit: limit}

	var memories []ports.Memory
	if err := c.do(ctx, http.MethodPost, "/api/v1/intelligence/find-related", body, &memories); err != nil {
		return nil, err
	}
	return memories, nil
}

// DetectDuplicates finds near-duplicate memory pairs.
func (c *Client) DetectDuplicates(ctx context.Context, threshold float64, maxPairs int) ([]ports.DuplicatePair, error) {
	body := struct {
		UserID              string  `json:"user_id"`
		SimilarityThreshold float64 `json:"similarity_threshold"`
		MaxPairs            int     `json:"max_pairs"`
	}{UserID: c.userID, SimilarityThreshold: threshold, MaxPairs: maxPairs}

	var pairs []ports.DuplicatePair
	if err := c.do(ctx, http.MethodPost, "/api/v1/intelligence/detect-duplicates", body, &pairs); err != nil {
		return nil, err
	}
	return pairs, nil
}

// Recall retrieves behavior patterns matching a context description.
func (c *Client) Recall(ctx context.Context, contextDesc string, limit int) ([]ports.BehaviorPattern, error) {
	body := struct {
		UserID  string `json:"user_id"`
		Context string `json:"context"`
		Limit   int    `json:"limit"`
	}{UserID: c.userID, Context: contextDesc, Limit: limit}

	var patterns []ports.BehaviorPattern
	if err := c.do(ctx, http.MethodPost, "/api/v1/behavior/recall", body, &patterns); err != nil {
		return nil, err
	}
	return patterns, nil
}

// SuggestNext proposes next actions given the current state.
func (c *Client) SuggestNext(ctx context.Context, currentState string) ([]ports.Suggestion, error) {
	body := struct {
		UserID       string `json:"user_id"`
		CurrentState string `json:"current_state"`
	}{UserID: c.userID, CurrentState: currentState}

	var suggestions []ports.Suggestion
	if err := c.do(ctx, http.MethodPost, "/api/v1/behavior/suggest", body, &suggestions); err != nil {
		return nil, err
	}
	return suggestions, nil
}

// RecordPattern records a completed workflow.
func (c *Client) RecordPattern(ctx context.Context, req ports.RecordPatternRequest) error {
	body := struct {
		UserID string `json:"user_id"`
		ports.RecordPatternRequest
	}{UserID: c.userID, RecordPatternRequest: req}

	return c.do(ctx, http.MethodPost, "/api/v1/behavior/record", body, nil)
}

// do performs one HTTP call: JSON body, auth header, per-call deadline,
// non-2xx converted into an error carrying the response body text.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return fmt.Errorf("memory service request timed out after %s: %w", c.timeout, err)
		}
		return fmt.Errorf("memory service request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("memory service returned status %d: %s", resp.StatusCode, string(text))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

var _ ports.MemoryGateway = (*Client)(nil)
