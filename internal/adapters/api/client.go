package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/learnhub/learnhub-cli/internal/domain"
	"github.com/rs/zerolog"
)

const maxBodyBytes = 1 << 20

// Client is the single point of egress for backend calls. Two
// cross-cutting behaviors live here instead of at every call site: the
// bearer token is attached by reading the token source at call time, and
// any 401 response purges the persisted credentials exactly once before
// the rejection is propagated.
type Client struct {
	baseURL        string
	http           *http.Client
	log            zerolog.Logger
	userAgent      string
	tokenSource    func(ctx context.Context) string
	onUnauthorized func(ctx context.Context)
}

// Response carries the raw status and body; callers interpret the body
// shape per endpoint since the backend has no uniform envelope.
type Response struct {
	Status int
	Body   []byte
}

func (r Response) OK() bool {
	return r.Status >= 200 && r.Status <= 299
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.http = httpClient
	}
}

func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithTokenSource installs the call-time credential lookup. An empty
// return means no Authorization header.
func WithTokenSource(source func(ctx context.Context) string) Option {
	return func(c *Client) {
		c.tokenSource = source
	}
}

// WithUnauthorizedHook installs the global 401 reaction, typically the
// session store's credential purge.
func WithUnauthorizedHook(hook func(ctx context.Context)) Option {
	return func(c *Client) {
		c.onUnauthorized = hook
	}
}

func NewClient(baseURL string, opts ...Option) *Client {
	client := &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		http:      http.DefaultClient,
		log:       zerolog.Nop(),
		userAgent: "lh",
	}
	for _, opt := range opts {
		opt(client)
	}

	return client
}

func (c *Client) Get(ctx context.Context, path string) (Response, error) {
	return c.do(ctx, http.MethodGet, path, nil, true)
}

func (c *Client) Post(ctx context.Context, path string, body any) (Response, error) {
	return c.do(ctx, http.MethodPost, path, body, true)
}

// Exchange performs the credential-exchange call. It bypasses both
// session hooks: no stale bearer token is attached, and a rejection is
// surfaced inline instead of triggering the global purge.
func (c *Client) Exchange(ctx context.Context, path string, body any) (Response, error) {
	return c.do(ctx, http.MethodPost, path, body, false)
}

func (c *Client) do(ctx context.Context, method, path string, body any, sessionHooks bool) (Response, error) {
	var payload io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return Response{}, fmt.Errorf("encode request body: %w", err)
		}
		payload = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return Response{}, fmt.Errorf("create request: %w", err)
	}

	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("User-Agent", c.userAgent)
	request.Header.Set("X-Request-ID", uuid.NewString())
	if sessionHooks && c.tokenSource != nil {
		if token := c.tokenSource(ctx); token != "" {
			request.Header.Set("Authorization", "Bearer "+token)
		}
	}

	started := time.Now()
	response, err := c.http.Do(request)
	if err != nil {
		return Response{}, fmt.Errorf("perform request: %w", err)
	}
	defer response.Body.Close()

	data, err := io.ReadAll(io.LimitReader(response.Body, maxBodyBytes))
	if err != nil {
		return Response{}, fmt.Errorf("read response: %w", err)
	}

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", response.StatusCode).
		Dur("elapsed", time.Since(started)).
		Msg("gateway request")

	if sessionHooks && response.StatusCode == http.StatusUnauthorized {
		if c.onUnauthorized != nil {
			c.onUnauthorized(ctx)
		}
		return Response{Status: response.StatusCode, Body: data},
			fmt.Errorf("%w: %s", domain.ErrSessionExpired, ServerMessage(data, "unauthorized"))
	}

	return Response{Status: response.StatusCode, Body: data}, nil
}

// ServerMessage extracts the human-readable failure reason the backend
// puts in "msg" or "Error", inconsistently by endpoint.
func ServerMessage(body []byte, fallback string) string {
	var envelope struct {
		Msg   string `json:"msg"`
		Error string `json:"Error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		if strings.TrimSpace(envelope.Msg) != "" {
			return envelope.Msg
		}
		if strings.TrimSpace(envelope.Error) != "" {
			return envelope.Error
		}
	}

	return fallback
}

// DecodeList enforces the caller's structural expectation that a list
// endpoint returned a JSON array. Anything else is a shape violation,
// never rendered as-is.
func DecodeList[T any](response Response) ([]T, error) {
	if !response.OK() {
		return nil, fmt.Errorf("status %d: %s", response.Status, ServerMessage(response.Body, "request failed"))
	}

	trimmed := bytes.TrimLeft(response.Body, " \t\r\n")
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: expected array", domain.ErrUnexpectedShape)
	}

	var items []T
	if err := json.Unmarshal(response.Body, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnexpectedShape, err)
	}

	return items, nil
}

// DecodeObject enforces that an endpoint returned a JSON object.
func DecodeObject[T any](response Response) (T, error) {
	var value T
	if !response.OK() {
		return value, fmt.Errorf("status %d: %s", response.Status, ServerMessage(response.Body, "request failed"))
	}

	trimmed := bytes.TrimLeft(response.Body, " \t\r\n")
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return value, fmt.Errorf("%w: expected object", domain.ErrUnexpectedShape)
	}

	if err := json.Unmarshal(response.Body, &value); err != nil {
		return value, fmt.Errorf("%w: %v", domain.ErrUnexpectedShape, err)
	}

	return value, nil
}
