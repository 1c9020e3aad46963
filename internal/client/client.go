// Package client talks to the training API on behalf of the CLI and the
// login form.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/hashicorp/go-cleanhttp"

	"github.com/shindakun/ethicstraining/internal/auth"
	"github.com/shindakun/ethicstraining/internal/models"
)

// maxResponseBytes bounds how much of a response body is read
const maxResponseBytes = 4 << 20

// TransportError reports that a request did not produce a usable answer:
// the server was unreachable, answered 5xx, or sent an undecodable body.
type TransportError struct {
	Op         string
	StatusCode int // zero when no response was received
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: unexpected status %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ErrUnauthorized is returned by endpoints other than login on HTTP 401
var ErrUnauthorized = errors.New("unauthorized")

// ErrNotFound is returned when the API answers 404
var ErrNotFound = errors.New("endpoint not found")

// Client is an HTTP client for the mock API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the pooled cleanhttp client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New creates a client for the API at baseURL (scheme optional)
func New(baseURL string, opts ...Option) (*Client, error) {
	normalized, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid API URL: %w", err)
	}

	c := &Client{
		baseURL:    normalized,
		httpClient: cleanhttp.DefaultPooledClient(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the normalized API root
func (c *Client) BaseURL() string {
	return c.baseURL
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty URL")
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Host == "" {
		return "", fmt.Errorf("missing host in %q", raw)
	}
	return strings.TrimRight(u.String(), "/"), nil
}

// Login submits credentials once. Authentication failures come back as an
// Outcome, not an error; only transport problems are errors.
func (c *Client) Login(ctx context.Context, req models.LoginRequest) (auth.Outcome, error) {
	const op = "login"

	body, err := json.Marshal(req)
	if err != nil {
		return auth.Outcome{}, &TransportError{Op: op, Err: err}
	}

	resp, err := c.do(ctx, http.MethodPost, "/api/auth/login", bytes.NewReader(body), "")
	if err != nil {
		return auth.Outcome{}, &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusUnauthorized {
		return auth.Outcome{}, &TransportError{Op: op, StatusCode: resp.StatusCode, Err: errors.New(http.StatusText(resp.StatusCode))}
	}

	var lr models.LoginResponse
	if err := decode(resp.Body, &lr); err != nil {
		return auth.Outcome{}, &TransportError{Op: op, StatusCode: resp.StatusCode, Err: err}
	}

	outcome, ok := auth.OutcomeFromResponse(lr)
	if !ok || (resp.StatusCode == http.StatusUnauthorized && outcome.Err() == nil) {
		return auth.Outcome{}, &TransportError{Op: op, StatusCode: resp.StatusCode, Err: errors.New("malformed login response")}
	}
	return outcome, nil
}

// Content fetches one static collection as raw JSON items
func (c *Client) Content(ctx context.Context, kind models.ContentKind) ([]json.RawMessage, error) {
	var items []json.RawMessage
	if err := c.getList(ctx, "content", "/api/content/"+string(kind), "", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// AdminUsers fetches the admin user table. token is sent as a bearer token.
func (c *Client) AdminUsers(ctx context.Context, token string) ([]models.AdminUser, error) {
	var users []models.AdminUser
	if err := c.getList(ctx, "admin users", "/api/admin/users", token, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Health fetches the health document
func (c *Client) Health(ctx context.Context) (*models.Health, error) {
	const op = "health"

	resp, err := c.do(ctx, http.MethodGet, "/api/health", nil, "")
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &TransportError{Op: op, StatusCode: resp.StatusCode, Err: errors.New(http.StatusText(resp.StatusCode))}
	}

	var h models.Health
	if err := decode(resp.Body, &h); err != nil {
		return nil, &TransportError{Op: op, StatusCode: resp.StatusCode, Err: err}
	}
	return &h, nil
}

func (c *Client) getList(ctx context.Context, op, path, token string, out interface{}) error {
	resp, err := c.do(ctx, http.MethodGet, path, nil, token)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return fmt.Errorf("%s: %w", op, ErrUnauthorized)
	case http.StatusNotFound:
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	default:
		return &TransportError{Op: op, StatusCode: resp.StatusCode, Err: errors.New(http.StatusText(resp.StatusCode))}
	}

	var envelope struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	if err := decode(resp.Body, &envelope); err != nil {
		return &TransportError{Op: op, StatusCode: resp.StatusCode, Err: err}
	}
	if !envelope.Success {
		return &TransportError{Op: op, StatusCode: resp.StatusCode, Err: errors.New("server reported failure")}
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return &TransportError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to decode data: %w", err)}
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, token string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return c.httpClient.Do(req)
}

func decode(r io.Reader, v interface{}) error {
	if err := json.NewDecoder(io.LimitReader(r, maxResponseBytes)).Decode(v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
