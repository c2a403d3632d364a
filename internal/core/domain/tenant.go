package domain

const (
	// PlanFree is the plan every freshly provisioned workspace starts on.
	PlanFree = "free"

	// RoleOwner is the membership role granted to the user who triggered
	// the workspace creation.
	RoleOwner = "owner"
)

// Tenant is an isolated workspace grouping users and their data. ID is
// assigned by the data store on insert, never by the client.
type Tenant struct {
	ID     string `json:"id,omitempty"`
	Name   string `json:"name"`
	Status string `json:"status"`
	Plan   string `json:"plan"`
}

// TenantMembership links a user to a tenant with a role.
type TenantMembership struct {
	TenantID string `json:"tenant_id"`
	UserID   string `json:"user_id"`
	Role     string `json:"role"`
}
