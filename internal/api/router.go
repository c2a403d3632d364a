package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/smarteros/conductor/internal/api/handler"
	"github.com/smarteros/conductor/internal/api/middleware"
	"github.com/smarteros/conductor/internal/core/service"
	"github.com/smarteros/conductor/internal/infrastructure/config"
	"github.com/smarteros/conductor/internal/infrastructure/crm"
	"github.com/smarteros/conductor/internal/infrastructure/db/supabase"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, store *supabase.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS()) // webhook + dashboard callers, any origin

	// Per-router registry for the HTTP metrics; the custom onboarding
	// metrics live in the default registry, so /metrics gathers both.
	registry := prometheus.NewRegistry()
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "conductor",
		Registerer: registry,
	}))

	// --- Dependencies ---
	profileRepo := supabase.NewProfileRepository(store)
	tenantRepo := supabase.NewTenantRepository(store)
	onboarding := service.NewOnboardingService(profileRepo, tenantRepo, log)
	webhookHandler := handler.NewWebhookHandler(onboarding, log)

	// --- Webhook routes ---
	e.POST("/webhooks/auth/signup", webhookHandler.HandleSignup,
		middleware.WebhookSecret(cfg.WebhookSecret))

	// --- CRM proxy (only when Chatwoot is configured) ---
	if cfg.Chatwoot.Enabled() {
		chatwoot := crm.NewChatwoot(crm.ChatwootConfig{
			APIURL:      cfg.Chatwoot.APIURL,
			AccountID:   cfg.Chatwoot.AccountID,
			AccessToken: cfg.Chatwoot.AccessToken,
		})
		crmHandler := handler.NewCRMHandler(chatwoot)
		e.GET("/crm/*", crmHandler.Proxy)
		e.POST("/crm/*", crmHandler.Proxy)
	}

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler(cfg.Version)
	readinessHandler := handler.NewReadinessHandler(store)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – is the data store up?
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: prometheus.Gatherers{registry, prometheus.DefaultGatherer},
	}))

	return e
}
