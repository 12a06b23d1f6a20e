// ABOUTME: HTTP client wrapper for the mokom backend API
// ABOUTME: Attaches the bearer token to every request and clears it on 401

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/mokom/mokom-client/internal/auth"
	"github.com/mokom/mokom-client/internal/config"
)

// ErrUnauthorized means the backend rejected the bearer token. The stored
// token has already been cleared; the caller should prompt for re-login.
var ErrUnauthorized = errors.New("unauthorized")

// Client calls the backend HTTP API. All methods are safe for concurrent
// use and respect the context passed to them.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  *auth.TokenStore
	logger  *slog.Logger
	now     func() time.Time
}

// New creates a client for the configured endpoint.
func New(cfg config.APIConfig, tokens *auth.TokenStore, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: cfg.Timeout},
		tokens:  tokens,
		logger:  logger.With("component", "api"),
		now:     time.Now,
	}
}

// do sends a JSON request and decodes a JSON response into out (skipped
// when out is nil). A 401 clears the stored token and returns
// ErrUnauthorized; other non-2xx statuses become plain errors.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	return c.decode(resp, out)
}

// decode handles the response status and body shared by all operations.
func (c *Client) decode(resp *http.Response, out any) error {
	if resp.StatusCode == http.StatusUnauthorized {
		if err := c.tokens.Clear(); err != nil {
			c.logger.Warn("clearing rejected token failed", "error", err)
		}
		return ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("server returned status %d", resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("parsing response: %w", err)
	}
	return nil
}

// authorize attaches the bearer token when one is configured. A token whose
// exp claim has already passed is not attached; the request would only come
// back 401 and clear it anyway.
func (c *Client) authorize(req *http.Request) {
	token, err := c.tokens.Load()
	if err != nil {
		return
	}
	if auth.Expired(token, c.now()) {
		c.logger.Warn("stored token is expired, sending request unauthenticated")
		return
	}
	req.Header.Set("Authorization", "Bearer "+token)
}
