package ports

import "context"

// SignupEventInput is the DTO passed from the transport layer to the
// OnboardingService. Metadata carries the provider's raw_user_meta_data map
// verbatim; it may be nil or missing any expected key.
type SignupEventInput struct {
	ID        string
	Email     string
	Metadata  map[string]any
	Phone     string
	CreatedAt string
	Role      string
}

// OnboardingResult summarises one provisioning run.
//
// TenantID is nil when workspace provisioning failed; the run still reports
// StatusCompleted in that case because tenant creation is best-effort.
type OnboardingResult struct {
	Status         string  `json:"status"`
	UserID         string  `json:"user_id"`
	TenantID       *string `json:"tenant_id"`
	ProfileCreated bool    `json:"profile_created"`
}

// StatusCompleted is the terminal status of a finished onboarding run.
const StatusCompleted = "completed"

// OnboardingService provisions a newly signed-up user.
type OnboardingService interface {
	// Onboard runs the provisioning sequence for one signup event. A non-nil
	// error means the profile write failed and nothing useful was persisted;
	// degraded outcomes (no tenant) are reported through the result instead.
	Onboard(ctx context.Context, event SignupEventInput) (OnboardingResult, error)
}
