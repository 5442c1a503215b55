// Package http provides a JSON client for the upstream REST APIs that
// corpus sources read from.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/corpus"
)

// DefaultTimeout is the per-request timeout applied to every call.
const DefaultTimeout = 30 * time.Second

// Client issues GET requests against a single API base URL and decodes
// JSON responses. It does not retry.
type Client struct {
	client  *http.Client
	base    string
	header  http.Header
	timeout time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultTimeout (30s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithHeader adds a header sent with every request.
func WithHeader(key, value string) Option {
	return func(c *Client) {
		c.header.Set(key, value)
	}
}

// WithHTTPClient replaces the underlying http.Client. The timeout option is
// ignored when a client is supplied.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.client = hc
	}
}

// NewClient creates a Client rooted at base. A trailing slash on base is ignored.
func NewClient(base string, opts ...Option) *Client {
	c := &Client{
		base:    strings.TrimRight(base, "/"),
		header:  http.Header{},
		timeout: DefaultTimeout,
	}
	c.header.Set("Accept", "application/json")
	for _, opt := range opts {
		opt(c)
	}

	if c.client == nil {
		c.client = &http.Client{
			Timeout: c.timeout,
		}
	}

	return c
}

// Base returns the base URL without a trailing slash.
func (c *Client) Base() string {
	return c.base
}

// GetJSON fetches base+path with the given query parameters and decodes the
// response body into v. Any non-2xx status is returned as an EUPSTREAM error.
func (c *Client) GetJSON(ctx context.Context, path string, params url.Values, v any) error {
	u := c.base + "/" + strings.TrimLeft(path, "/")
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	for k, vals := range c.header {
		for _, val := range vals {
			req.Header.Add(k, val)
		}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return corpus.Errorf(corpus.EUPSTREAM, "HTTP %d for %s", resp.StatusCode, u)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode %s: %w", u, err)
	}
	return nil
}
