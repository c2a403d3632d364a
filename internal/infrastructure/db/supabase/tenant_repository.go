package supabase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/smarteros/conductor/internal/core/domain"
	"github.com/smarteros/conductor/internal/core/ports"
)

// TenantRepository implements ports.TenantRepository against the tenants and
// tenant_members tables.
type TenantRepository struct {
	client *Client
}

// NewTenantRepository creates a TenantRepository using the given client.
func NewTenantRepository(client *Client) ports.TenantRepository {
	return &TenantRepository{client: client}
}

// Insert creates the tenant row and asks PostgREST to return the inserted
// representation so we can pick up the store-generated id.
func (r *TenantRepository) Insert(ctx context.Context, tenant *domain.Tenant) (string, error) {
	resp, err := r.client.http.R().
		SetContext(ctx).
		SetHeader("Prefer", "return=representation").
		SetBody(tenant).
		Post("/tenants")
	if err != nil {
		return "", fmt.Errorf("insert tenant: %w", err)
	}
	if resp.IsError() {
		return "", apiError("insert tenant", resp)
	}

	var rows []domain.Tenant
	if err := json.Unmarshal(resp.Body(), &rows); err != nil {
		return "", fmt.Errorf("insert tenant: decode response: %w", err)
	}
	if len(rows) == 0 || rows[0].ID == "" {
		return "", domain.ErrTenantNotCreated
	}
	return rows[0].ID, nil
}

// InsertMember creates the membership row linking a user to a tenant.
func (r *TenantRepository) InsertMember(ctx context.Context, member *domain.TenantMembership) error {
	resp, err := r.client.http.R().
		SetContext(ctx).
		SetHeader("Prefer", "return=minimal").
		SetBody(member).
		Post("/tenant_members")
	if err != nil {
		return fmt.Errorf("insert tenant member: %w", err)
	}
	if resp.IsError() {
		return apiError("insert tenant member", resp)
	}
	return nil
}
