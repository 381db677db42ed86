package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// HTTPClient sends signed requests to the Kraken REST API. It performs
// exactly one round trip per call and never retries.
type HTTPClient struct {
	client  *http.Client
	baseURL string
}

// Option is a functional option for configuring HTTPClient.
type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying *http.Client. A nil client is ignored.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) {
		if hc != nil {
			c.client = hc
		}
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) {
		c.client.Timeout = d
	}
}

// NewHTTPClient creates a new HTTPClient with the given base URL and options.
// The default *http.Client has no timeout; callers bound calls through the
// request context or WithTimeout.
func NewHTTPClient(baseURL string, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		client:  &http.Client{},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// URL returns the absolute URL for path.
func (c *HTTPClient) URL(path string) string {
	if path != "" && path[0] != '/' {
		path = "/" + path
	}
	return c.baseURL + path
}

// PostRaw performs an HTTP POST with body sent verbatim. No Content-Type is
// added; whatever the caller put in headers is sent as is.
func (c *HTTPClient) PostRaw(ctx context.Context, path string, headers http.Header, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL(path), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	for key, vals := range headers {
		for _, val := range vals {
			req.Header.Add(key, val)
		}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}
	return resp, nil
}

// ReadBody reads and closes the response body. The status code is not
// interpreted: the API reports failures inside the JSON envelope.
func ReadBody(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	return body, nil
}
