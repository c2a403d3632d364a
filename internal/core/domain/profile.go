package domain

// StatusActive is the lifecycle status stamped on every record the
// onboarding flow creates.
const StatusActive = "active"

// UpdatedAtNow is the marker PostgREST resolves to the server's current time.
// Using the store's clock keeps replayed webhook deliveries from racing the
// client clock.
const UpdatedAtNow = "now()"

// Profile is the stored account record derived from a signup event, keyed by
// the auth provider's user id. Separate from the provider's own user row.
type Profile struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	FullName  string  `json:"full_name"`
	AvatarURL *string `json:"avatar_url"`
	Status    string  `json:"status"`
	UpdatedAt string  `json:"updated_at"`
}
