// Package crm provides a thin account-scoped client for the Chatwoot API,
// used by the /crm pass-through routes.
package crm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultTimeout = 15 * time.Second

// ChatwootConfig captures the settings for one Chatwoot account.
type ChatwootConfig struct {
	APIURL      string
	AccountID   string
	AccessToken string
	Timeout     time.Duration
}

// Chatwoot forwards requests to a single Chatwoot account. All calls are
// scoped under /api/v1/accounts/<account id>.
type Chatwoot struct {
	http    *resty.Client
	account string
}

// NewChatwoot builds a Chatwoot client for the configured account.
func NewChatwoot(cfg ChatwootConfig) *Chatwoot {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	http := resty.New().
		SetBaseURL(strings.TrimRight(cfg.APIURL, "/")).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("api_access_token", cfg.AccessToken)

	return &Chatwoot{http: http, account: cfg.AccountID}
}

// ProxyResponse is the relayed upstream response.
type ProxyResponse struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

// Forward relays one request to the Chatwoot account API and returns the
// upstream response verbatim. Only GET and POST are supported, matching the
// operations the dashboard needs.
func (c *Chatwoot) Forward(ctx context.Context, method, subpath, rawQuery string, body []byte) (*ProxyResponse, error) {
	url := fmt.Sprintf("/api/v1/accounts/%s/%s", c.account, strings.TrimLeft(subpath, "/"))
	if rawQuery != "" {
		url += "?" + rawQuery
	}

	req := c.http.R().SetContext(ctx)
	if len(body) > 0 {
		req.SetBody(body)
	}

	var resp *resty.Response
	var err error
	switch method {
	case "GET":
		resp, err = req.Get(url)
	case "POST":
		resp, err = req.Post(url)
	default:
		return nil, fmt.Errorf("chatwoot forward: unsupported method %s", method)
	}
	if err != nil {
		return nil, fmt.Errorf("chatwoot forward %s %s: %w", method, subpath, err)
	}

	contentType := resp.Header().Get("Content-Type")
	if contentType == "" {
		contentType = "application/json"
	}
	return &ProxyResponse{
		StatusCode:  resp.StatusCode(),
		ContentType: contentType,
		Body:        resp.Body(),
	}, nil
}
