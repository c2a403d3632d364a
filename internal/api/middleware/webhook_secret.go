package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smarteros/conductor/internal/api/metrics"
)

// SecretHeader is the header the auth provider is configured to send with
// every webhook delivery.
const SecretHeader = "X-Webhook-Secret"

// WebhookSecret rejects deliveries whose secret header does not exactly
// match the configured secret. An empty configured secret disables the
// check entirely and leaves the endpoint open.
func WebhookSecret(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if secret == "" {
				return next(c)
			}
			if c.Request().Header.Get(SecretHeader) != secret {
				metrics.WebhookAuthRejectedTotal.Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid webhook signature")
			}
			return next(c)
		}
	}
}
