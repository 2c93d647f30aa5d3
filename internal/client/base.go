// Package client talks to the storefront API on behalf of a signed-in user.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	headerRequestID = "X-Request-ID"
	headerUserID    = "X-User-Id"
)

// Session supplies the credentials of the signed-in user.
type Session interface {
	Token() string
	UserID() string
}

type requestIDKey struct{}

// WithRequestID attaches a request id that every call made with ctx forwards as X-Request-ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromContext returns the id set by WithRequestID.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// Client is the shared transport of the typed API clients.
type Client struct {
	BaseURL *url.URL
	HTTP    *http.Client
	Session Session
}

// New builds a Client whose transport is traced with otelhttp.
func New(baseURL string, timeout time.Duration, session Session) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", baseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base url %q: scheme and host are required", baseURL)
	}
	return &Client{
		BaseURL: u,
		HTTP: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		Session: session,
	}, nil
}

// Do sends in as JSON (when non-nil) and decodes a 2xx body into out (when non-nil).
// Any other status is returned as *APIError.
func (c *Client) Do(ctx context.Context, method, path string, in, out any) error {
	// Joined, not resolved, so a base path such as /storefront is kept.
	u := c.BaseURL.JoinPath(path)

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Session != nil {
		if tok := c.Session.Token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
		if uid := c.Session.UserID(); uid != "" {
			req.Header.Set(headerUserID, uid)
		}
	}
	if rid := RequestIDFromContext(ctx); rid != "" {
		req.Header.Set(headerRequestID, rid)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}
