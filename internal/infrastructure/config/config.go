package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Config holds every runtime setting the conductor reads from the
// environment. Unknown environment variables are ignored, so the service can
// share an env file with the frontend without choking on its keys.
type Config struct {
	Port        string `env:"PORT,         default=8080"`
	Env         string `env:"ENV,          default=development"`
	LogLevel    string `env:"LOG_LEVEL,    default=info"`
	ProjectName string `env:"PROJECT_NAME, default=SmarterOS Conductor"`
	Version     string `env:"VERSION,      default=0.1.0"`

	// WebhookSecret guards the signup webhook. Empty means the endpoint is
	// open and the header check is skipped entirely.
	WebhookSecret string `env:"WEBHOOK_SECRET"`

	Supabase SupabaseConfig
	Chatwoot ChatwootConfig
}

// SupabaseConfig captures the connection settings for the external data store.
type SupabaseConfig struct {
	URL            string `env:"SUPABASE_URL, required"`
	ServiceRoleKey string `env:"SUPABASE_SERVICE_ROLE_KEY, required"`
}

// ChatwootConfig captures the optional CRM settings. The /crm proxy routes
// are only registered when Enabled reports true.
type ChatwootConfig struct {
	APIURL      string `env:"CHATWOOT_API_URL"`
	AccountID   string `env:"CHATWOOT_ACCOUNT_ID"`
	AccessToken string `env:"CHATWOOT_ACCESS_TOKEN"`
}

// Enabled reports whether every setting required by the CRM proxy is present.
func (c ChatwootConfig) Enabled() bool {
	return c.APIURL != "" && c.AccountID != "" && c.AccessToken != ""
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
