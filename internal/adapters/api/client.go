package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"libfront/internal/adapters/token"
	"libfront/internal/core/domain/ports"
)

// ErrTokenMissing is returned by Login when the backend response has
// none of the recognized token fields.
var ErrTokenMissing = errors.New("login response contained no token")

// tokenFields are the response keys a login token may arrive under,
// tried in order; backends disagree on the name.
var tokenFields = []string{"token", "accessToken", "access_token"}

// Error is the typed failure for any non-2xx response. Callers match
// on Status rather than parsing message text.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api: HTTP %d: %s", e.Status, e.Message)
}

// IsUnauthorized reports whether err is an API error with status 401.
// Callers treat that as an expired session.
func IsUnauthorized(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

// TokenProvider supplies a per-call bearer token. A non-empty return
// value takes precedence over the token store.
type TokenProvider func() string

// Query holds request query parameters. Blank values are dropped when
// the URL is built.
type Query map[string]string

// Client is the single choke point for calls to the library backend.
// It owns URL construction, auth header attachment and response
// normalization; it never retries and never caches.
type Client struct {
	baseURL  string
	http     *http.Client
	tokens   ports.TokenStore
	provider TokenProvider
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

func WithTokenStore(s ports.TokenStore) Option {
	return func(c *Client) {
		if s != nil {
			c.tokens = s
		}
	}
}

func WithTokenProvider(p TokenProvider) Option {
	return func(c *Client) { c.provider = p }
}

func New(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("baseURL must not be empty")
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		tokens:  token.NewMemory(),
	}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

func (c *Client) Get(ctx context.Context, path string, query Query, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, nil, body, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// Login exchanges credentials for a bearer token, stores it and
// returns it. The stored token is untouched when no token field is
// found in the response.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	body := map[string]string{"email": email, "password": password}

	var resp map[string]any
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, body, &resp); err != nil {
		return "", err
	}

	for _, field := range tokenFields {
		tok, ok := resp[field].(string)
		if !ok || strings.TrimSpace(tok) == "" {
			continue
		}
		if err := c.tokens.SetToken(tok); err != nil {
			return "", fmt.Errorf("failed to store token: %w", err)
		}
		return tok, nil
	}
	return "", ErrTokenMissing
}

// Logout clears the stored token. It is a purely local operation.
func (c *Client) Logout() error {
	return c.tokens.Clear()
}

func (c *Client) do(ctx context.Context, method, path string, query Query, body, out any) error {
	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.buildURL(path, query), payload)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	// The UI must always reflect server truth, so no response may ever
	// come from a cache.
	req.Header.Set("Cache-Control", "no-store")
	req.Header.Set("Pragma", "no-cache")

	if tok := c.currentToken(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	// The body is read exactly once; everything downstream works on
	// the raw bytes.
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return normalizeError(resp.StatusCode, raw)
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		// Empty body on success resolves to the caller's zero value.
		return nil
	}

	if s, ok := out.(*string); ok && !isJSON(resp.Header.Get("Content-Type")) {
		*s = string(raw)
		return nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}
	return nil
}

// buildURL joins the base address, the path and the encoded query.
// Blank parameter values are omitted; encoding is standard
// percent-encoding via net/url.
func (c *Client) buildURL(path string, query Query) string {
	u := c.baseURL + "/" + strings.TrimLeft(path, "/")

	values := url.Values{}
	for k, v := range query {
		if strings.TrimSpace(v) == "" {
			continue
		}
		values.Set(k, v)
	}
	if len(values) > 0 {
		u += "?" + values.Encode()
	}
	return u
}

// currentToken resolves the bearer token for one call: a provider
// result wins when non-empty, otherwise the stored token is used.
func (c *Client) currentToken() string {
	if c.provider != nil {
		if tok := strings.TrimSpace(c.provider()); tok != "" {
			return tok
		}
	}
	return c.tokens.Token()
}

// normalizeError extracts the best available message from an error
// body: a JSON "message" field, else the trimmed raw text, else a
// plain status line.
func normalizeError(status int, raw []byte) *Error {
	msg := ""

	var body struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(raw, &body) == nil {
		msg = strings.TrimSpace(body.Message)
	}
	if msg == "" {
		msg = strings.TrimSpace(string(raw))
	}
	if msg == "" {
		msg = fmt.Sprintf("HTTP %d", status)
	}
	return &Error{Status: status, Message: msg}
}

func isJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}
