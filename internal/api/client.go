package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	// DefaultBaseURL is the production gateway endpoint.
	DefaultBaseURL = "https://msgapi.threema.ch"
	// DefaultTimeout bounds each HTTP request.
	DefaultTimeout = 30 * time.Second
	// DefaultUserAgent is sent with every request.
	DefaultUserAgent = "threema-gateway-go/1"

	// maxResponseSize caps how much of a response body is read.
	maxResponseSize = 1 << 20
)

// Client is the HTTP client for the gateway API. It authenticates every
// request with the API identity and secret.
type Client struct {
	baseURL    string
	identity   string
	secret     string
	userAgent  string
	httpClient *http.Client
	timeout    time.Duration
	logger     zerolog.Logger
}

// Option configures the API client.
type Option func(*Client)

// WithBaseURL sets the base URL.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(url, "/")
	}
}

// WithTimeout sets the HTTP client timeout. It applies to a copy of the
// HTTP client, never to one passed in with WithHTTPClient.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithLogger sets the request logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// New creates a new API client using functional options.
func New(identity, secret string, opts ...Option) (*Client, error) {
	if identity == "" {
		return nil, ErrMissingIdentity
	}
	if secret == "" {
		return nil, ErrMissingSecret
	}

	c := &Client{
		baseURL:    DefaultBaseURL,
		identity:   identity,
		secret:     secret,
		userAgent:  DefaultUserAgent,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		logger:     zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.baseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	if c.timeout > 0 {
		hc := *c.httpClient
		hc.Timeout = c.timeout
		c.httpClient = &hc
	}

	return c, nil
}

// Identity returns the API identity the client authenticates as.
func (c *Client) Identity() string {
	return c.identity
}

// Do performs an authenticated request and returns the trimmed response
// body. GET parameters travel in the query string; POST parameters travel as
// a form-encoded body. Non-200 responses are returned as *APIError.
func (c *Client) Do(ctx context.Context, method, path string, params url.Values) (string, error) {
	form := url.Values{}
	for k, v := range params {
		form[k] = v
	}
	form.Set("from", c.identity)
	form.Set("secret", c.secret)

	endpoint := c.baseURL + path
	var body io.Reader
	if method == http.MethodGet {
		endpoint += "?" + form.Encode()
	} else {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset=utf-8")
	}
	req.Header.Set("Accept", "*/*")
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug().Str("method", method).Str("path", path).Err(redact(err)).Msg("gateway request failed")
		return "", &NetworkError{Err: redact(err), Path: path}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return "", &NetworkError{Err: err, Path: path}
	}

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("gateway request")

	text := strings.TrimSpace(string(data))
	if resp.StatusCode != http.StatusOK {
		return "", &APIError{StatusCode: resp.StatusCode, Body: text}
	}
	return text, nil
}

// redact drops the request URL from transport errors because GET requests
// carry the API secret in the query string.
func redact(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}
	return err
}
