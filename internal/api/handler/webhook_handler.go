package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/smarteros/conductor/internal/api/metrics"
	"github.com/smarteros/conductor/internal/core/ports"
)

// WebhookHandler handles signup notifications pushed by the auth provider.
type WebhookHandler struct {
	onboarding ports.OnboardingService
	log        zerolog.Logger
}

// NewWebhookHandler creates a WebhookHandler backed by the given service.
func NewWebhookHandler(onboarding ports.OnboardingService, log zerolog.Logger) *WebhookHandler {
	return &WebhookHandler{onboarding: onboarding, log: log}
}

// HandleSignup handles POST /webhooks/auth/signup.
//
// Orchestration failures are reported inside a 200 envelope on purpose: the
// auth provider treats non-2xx responses as a signal to redeliver, and a
// persistent downstream outage would otherwise turn into a retry storm.
// Only authentication and payload validation may produce an error status.
func (h *WebhookHandler) HandleSignup(c echo.Context) error {
	var req signupEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	metrics.SignupEventsReceivedTotal.Inc()
	h.log.Info().Str("user_id", req.ID).Str("email", req.Email).Msg("signup event received")

	start := time.Now()
	result, err := h.onboarding.Onboard(c.Request().Context(), toEventInput(req))
	metrics.OnboardingDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.OnboardingRunsTotal.WithLabelValues(metrics.OutcomeFailed).Inc()
		h.log.Error().Err(err).Str("user_id", req.ID).Msg("onboarding failed")
		return c.JSON(http.StatusOK, webhookErrorResponse{
			Status:  "error",
			Message: err.Error(),
		})
	}

	outcome := metrics.OutcomeProvisioned
	if result.TenantID == nil {
		outcome = metrics.OutcomeDegraded
	}
	metrics.OnboardingRunsTotal.WithLabelValues(outcome).Inc()

	return c.JSON(http.StatusOK, webhookOKResponse{
		Status:  "ok",
		Details: result,
	})
}
