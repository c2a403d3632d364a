// Package supabase implements the data-store repositories on top of the
// Supabase PostgREST API, authenticated with the service role key.
package supabase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultTimeout = 10 * time.Second

// Config captures the settings required to reach the PostgREST endpoint.
type Config struct {
	URL            string
	ServiceRoleKey string
	Timeout        time.Duration
}

// Client wraps a resty client pointed at <url>/rest/v1 with the service
// role credentials attached to every request. Read-only after construction,
// safe for concurrent use.
type Client struct {
	http *resty.Client
}

// NewClient builds a PostgREST client. A default timeout is applied when
// none is provided.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	http := resty.New().
		SetBaseURL(strings.TrimRight(cfg.URL, "/") + "/rest/v1").
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetHeader("apikey", cfg.ServiceRoleKey).
		SetHeader("Authorization", "Bearer "+cfg.ServiceRoleKey)

	return &Client{http: http}
}

// Ping verifies the PostgREST endpoint is reachable and accepts our
// credentials. Used by the readiness probe.
func (c *Client) Ping(ctx context.Context) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("limit", "1").
		Head("/profiles")
	if err != nil {
		return fmt.Errorf("supabase ping: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("supabase ping: status %d", resp.StatusCode())
	}
	return nil
}

// apiError converts a non-2xx PostgREST response into an error carrying the
// status code and whatever error body the server returned.
func apiError(op string, resp *resty.Response) error {
	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		return fmt.Errorf("%s: status %d", op, resp.StatusCode())
	}
	return fmt.Errorf("%s: status %d: %s", op, resp.StatusCode(), body)
}
