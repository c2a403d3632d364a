package supabase

import (
	"context"
	"fmt"

	"github.com/smarteros/conductor/internal/core/domain"
	"github.com/smarteros/conductor/internal/core/ports"
)

// ProfileRepository implements ports.ProfileRepository against the profiles
// table.
type ProfileRepository struct {
	client *Client
}

// NewProfileRepository creates a ProfileRepository using the given client.
func NewProfileRepository(client *Client) ports.ProfileRepository {
	return &ProfileRepository{client: client}
}

// Upsert writes the profile with merge-duplicates resolution, so a replayed
// event overwrites the existing row instead of failing on the primary key.
func (r *ProfileRepository) Upsert(ctx context.Context, profile *domain.Profile) error {
	resp, err := r.client.http.R().
		SetContext(ctx).
		SetHeader("Prefer", "resolution=merge-duplicates,return=minimal").
		SetBody(profile).
		Post("/profiles")
	if err != nil {
		return fmt.Errorf("upsert profile %s: %w", profile.ID, err)
	}
	if resp.IsError() {
		return apiError(fmt.Sprintf("upsert profile %s", profile.ID), resp)
	}
	return nil
}
