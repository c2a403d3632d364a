package handler

import (
	"context"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smarteros/conductor/internal/infrastructure/crm"
)

// CRMForwarder is the handler's view of the Chatwoot client.
type CRMForwarder interface {
	Forward(ctx context.Context, method, subpath, rawQuery string, body []byte) (*crm.ProxyResponse, error)
}

// CRMHandler relays dashboard requests to the configured Chatwoot account so
// the access token never reaches the browser.
type CRMHandler struct {
	crm CRMForwarder
}

// NewCRMHandler creates a CRMHandler backed by the given forwarder.
func NewCRMHandler(forwarder CRMForwarder) *CRMHandler {
	return &CRMHandler{crm: forwarder}
}

// Proxy handles GET and POST /crm/* — forwards the request to the account
// API and relays status, content type and body verbatim.
func (h *CRMHandler) Proxy(c echo.Context) error {
	req := c.Request()

	var body []byte
	if req.Body != nil {
		b, err := io.ReadAll(req.Body)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "unreadable body")
		}
		body = b
	}

	resp, err := h.crm.Forward(req.Context(), req.Method, c.Param("*"), req.URL.RawQuery, body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, "crm upstream unavailable")
	}

	return c.Blob(resp.StatusCode, resp.ContentType, resp.Body)
}
