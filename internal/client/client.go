// Package client is the Go SDK for the FitnessPr API. A Client bundles the
// base URL, HTTP transport and token store; the per-resource services hang
// off it and add the derived reads the dashboards consume (current program,
// today's workout and meals, dashboard overview).
package client

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
)

const defaultTimeout = 30 * time.Second

// Client is the API client every resource service goes through.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenStore
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTokenStore replaces the default in-memory token store.
func WithTokenStore(ts TokenStore) Option {
	return func(c *Client) { c.tokens = ts }
}

// New creates a Client for the API at baseURL (e.g.
// "http://localhost:8080/api/v1").
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
		tokens:     NewMemoryTokenStore(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// --- Resource service accessors ---

func (c *Client) Auth() *AuthService             { return &AuthService{c: c} }
func (c *Client) Clients() *ClientsService       { return &ClientsService{c: c} }
func (c *Client) Programs() *ProgramsService     { return &ProgramsService{c: c} }
func (c *Client) Meals() *MealsService           { return &MealsService{c: c} }
func (c *Client) Progress() *ProgressService     { return &ProgressService{c: c} }
func (c *Client) Sessions() *SessionsService     { return &SessionsService{c: c} }
func (c *Client) Statistics() *StatisticsService { return &StatisticsService{c: c} }

// do sends one API request. body may be nil, url.Values (sent form-encoded)
// or any JSON-marshalable value; out may be nil for empty responses. Every
// non-2xx response becomes an *APIError so callers can branch on status.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	contentType := ""
	switch b := body.(type) {
	case nil:
	case url.Values:
		reader = strings.NewReader(b.Encode())
		contentType = "application/x-www-form-urlencoded"
	default:
		buf, err := json.Marshal(b)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(buf)
		contentType = "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newAPIError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response body: %w", err)
	}
	return nil
}

// newAPIError extracts the error message from a failed response body,
// falling back to the HTTP status text.
func newAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{
		Status:  resp.StatusCode,
		Message: http.StatusText(resp.StatusCode),
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil || len(data) == 0 {
		return apiErr
	}

	var payload struct {
		Error  string `json:"error"`
		Detail string `json:"detail"`
	}
	if json.Unmarshal(data, &payload) == nil {
		if payload.Error != "" {
			apiErr.Message = payload.Error
		} else if payload.Detail != "" {
			apiErr.Message = payload.Detail
		}
	}
	return apiErr
}
