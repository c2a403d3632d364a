package ports

import (
	"context"

	"github.com/smarteros/conductor/internal/core/domain"
)

// TenantRepository persists workspaces and their membership links.
type TenantRepository interface {
	// Insert creates a new tenant row and returns the id the data store
	// assigned to it.
	Insert(ctx context.Context, tenant *domain.Tenant) (string, error)

	// InsertMember creates a membership row linking a user to a tenant.
	InsertMember(ctx context.Context, member *domain.TenantMembership) error
}
