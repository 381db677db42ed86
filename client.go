package krakentoken

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/lubluniky/kraken-ws-token-go/internal/transport"
)

// Client requests WebSockets tokens from the Kraken REST API. A Client holds
// no credentials and no mutable state, so one value may be shared by any
// number of goroutines.
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	userAgent  string
	now        func() time.Time
	logger     *zap.Logger

	http *transport.HTTPClient
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API origin. Used for testing against a mock
// endpoint.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithHTTPClient injects the *http.Client used for requests, letting callers
// share a connection pool or set TLS, proxy and timeout policy.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout bounds each request. Zero means no bound.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithUserAgent overrides DefaultUserAgent.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithClock replaces the wall clock nonces are derived from.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		c.now = now
	}
}

// WithLogger sets the logger. Credentials and signatures are never logged.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewClient creates a Client. Without options it talks to DefaultHost with
// a fresh *http.Client and no timeout.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:   DefaultHost,
		userAgent: DefaultUserAgent,
		now:       time.Now,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	var topts []transport.Option
	if c.httpClient != nil {
		// WithTimeout must not leak into the caller's client.
		hc := *c.httpClient
		topts = append(topts, transport.WithHTTPClient(&hc))
	}
	if c.timeout > 0 {
		topts = append(topts, transport.WithTimeout(c.timeout))
	}
	c.http = transport.NewHTTPClient(c.baseURL, topts...)
	return c
}
