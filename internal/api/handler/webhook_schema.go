package handler

import "github.com/smarteros/conductor/internal/core/ports"

// signupEventRequest mirrors the auth provider's webhook payload for a
// user-created event. RawUserMetaData is free-form and may be absent.
type signupEventRequest struct {
	ID              string         `json:"id"                 validate:"required"`
	Email           string         `json:"email"              validate:"required,email"`
	RawUserMetaData map[string]any `json:"raw_user_meta_data"`
	Phone           string         `json:"phone"`
	CreatedAt       string         `json:"created_at"         validate:"required"`
	Role            string         `json:"role"`
}

// webhookOKResponse is the 200 envelope for a finished orchestration run.
type webhookOKResponse struct {
	Status  string                 `json:"status"`
	Details ports.OnboardingResult `json:"details"`
}

// webhookErrorResponse is the 200 envelope for a failed orchestration run.
// Still a success status code on the wire, so the sender does not retry.
type webhookErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// toEventInput maps the HTTP request to the service DTO, applying the
// provider's default role when the payload omits it.
func toEventInput(r signupEventRequest) ports.SignupEventInput {
	role := r.Role
	if role == "" {
		role = "authenticated"
	}
	return ports.SignupEventInput{
		ID:        r.ID,
		Email:     r.Email,
		Metadata:  r.RawUserMetaData,
		Phone:     r.Phone,
		CreatedAt: r.CreatedAt,
		Role:      role,
	}
}
