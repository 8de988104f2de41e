package gateway

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/threema-gateway/client-go/internal/api"
)

const (
	// DefaultBaseURL is the production gateway endpoint.
	DefaultBaseURL = api.DefaultBaseURL

	defaultKeyCacheSize = 256
)

// clientConfig holds configuration for the client.
type clientConfig struct {
	baseURL      string
	httpClient   *http.Client
	timeout      time.Duration
	userAgent    string
	keyCacheSize int
	logger       zerolog.Logger
	privateKey   *PrivateKey
}

// Option configures the client.
type Option func(*clientConfig)

// WithBaseURL sets the gateway base URL.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *clientConfig) {
		c.userAgent = ua
	}
}

// WithKeyCacheSize sets how many fetched public keys are cached.
// A size of 0 disables the cache.
func WithKeyCacheSize(size int) Option {
	return func(c *clientConfig) {
		c.keyCacheSize = size
	}
}

// WithLogger sets the logger for request diagnostics. Secrets, keys and
// message text are never logged.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

// WithPrivateKey sets the private key used by the end-to-end helpers on
// Client.
func WithPrivateKey(key PrivateKey) Option {
	return func(c *clientConfig) {
		c.privateKey = &key
	}
}
