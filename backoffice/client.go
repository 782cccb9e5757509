// Package backoffice is the client for the hotel back-office REST API.
package backoffice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/jrsteele09/go-backoffice/internal/config"
	"github.com/jrsteele09/go-backoffice/internal/errors"
	"golang.org/x/oauth2"
)

// API routes relative to the configured base URL
const (
	PathLogin           = "/api/hotels/backoffice/login"
	PathHealth          = "/api/hotels/backoffice/health"
	PathProfile         = "/api/hotels/backoffice/profile/"
	PathOrders          = "/api/hotels/backoffice/order/"
	PathOrdersConfirm   = "/api/hotels/backoffice/orderconfirm/"
	PathOrdersCancelled = "/api/hotels/backoffice/ordercancelled/"

	maxBodyBytes = 1 << 20
)

type Client struct {
	baseURL string
	http    *http.Client
	config  config.BackendConfig
}

type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client (tests, custom transports)
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

func New(baseURL string, cfg config.BackendConfig, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{},
		config:  cfg,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type response struct {
	status int
	body   []byte
}

func (r response) ok() bool {
	return okStatus(r.status)
}

func okStatus(status int) bool {
	return status >= 200 && status < 300
}

// do performs one request bounded by timeout and buffers the answer. Bodies larger than
// maxBodyBytes fail with errors.ErrPayloadTooLarge.
func (c *Client) do(ctx context.Context, timeout time.Duration, op, method, path, token string, payload any) (response, error) {
	var out response
	err := c.stream(ctx, timeout, op, method, path, token, payload, func(status int, body io.Reader) error {
		raw, err := io.ReadAll(io.LimitReader(body, maxBodyBytes+1))
		if err != nil {
			return fmt.Errorf("[backoffice %s] %w: %v", op, errors.ErrUnavailable, err)
		}
		if len(raw) > maxBodyBytes {
			return fmt.Errorf("[backoffice %s] %w: more than %d bytes", op, errors.ErrPayloadTooLarge, maxBodyBytes)
		}
		out = response{status: status, body: raw}
		return nil
	})
	return out, err
}

// stream performs one request bounded by timeout and hands the response body to read while
// the deadline still applies. A non-empty token is sent as a bearer credential. Timeouts
// surface as errors.ErrTimeout and transport failures as errors.ErrUnavailable; the HTTP
// status is left to read.
func (c *Client) stream(ctx context.Context, timeout time.Duration, op, method, path, token string, payload any, read func(status int, body io.Reader) error) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("[backoffice %s] encode request: %w", op, err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("[backoffice %s] %w: %v", op, errors.ErrInternal, err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client(ctx, token).Do(req)
	if err != nil {
		return transportError(ctx, op, err)
	}
	defer resp.Body.Close()

	if err := read(resp.StatusCode, resp.Body); err != nil {
		if ctx.Err() != nil {
			return transportError(ctx, op, err)
		}
		return err
	}
	return nil
}

func (c *Client) client(ctx context.Context, token string) *http.Client {
	if token == "" {
		return c.http
	}
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.http)
	return oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: token,
		TokenType:   "Bearer",
	}))
}

func transportError(ctx context.Context, op string, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("[backoffice %s] %w: %v", op, errors.ErrTimeout, err)
	}
	return fmt.Errorf("[backoffice %s] %w: %v", op, errors.ErrUnavailable, err)
}

func statusError(op string, status int) error {
	return fmt.Errorf("[backoffice %s] %w: %d", op, errors.ErrUnexpectedStatus, status)
}

// Health probes the backend liveness endpoint; any 2xx is healthy.
func (c *Client) Health(ctx context.Context) error {
	resp, err := c.do(ctx, c.config.GetHealthTimeout(), "Health", http.MethodGet, PathHealth, "", nil)
	if err != nil {
		return err
	}
	if !resp.ok() {
		return fmt.Errorf("[backoffice Health] %w: %w", errors.ErrUnhealthy, statusError("Health", resp.status))
	}
	return nil
}

// Profile fetches the profile fields of a hotel. The backend answers {"data": {...}}.
func (c *Client) Profile(ctx context.Context, token, hotelID string) (map[string]any, error) {
	resp, err := c.do(ctx, c.config.GetProfileTimeout(), "Profile", http.MethodGet, PathProfile+url.PathEscape(hotelID), token, nil)
	if err != nil {
		return nil, err
	}
	if !resp.ok() {
		return nil, statusError("Profile", resp.status)
	}

	var envelope struct {
		Data map[string]any `json:"data"`
	}
	dec := json.NewDecoder(bytes.NewReader(resp.body))
	dec.UseNumber()
	if err := dec.Decode(&envelope); err != nil {
		return nil, fmt.Errorf("[backoffice Profile] %w: %v", errors.ErrMalformedPayload, err)
	}
	if envelope.Data == nil {
		return nil, fmt.Errorf("[backoffice Profile] %w: missing data", errors.ErrMalformedPayload)
	}
	return envelope.Data, nil
}
