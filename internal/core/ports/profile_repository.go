package ports

import (
	"context"

	"github.com/smarteros/conductor/internal/core/domain"
)

// ProfileRepository persists user profiles in the external data store.
type ProfileRepository interface {
	// Upsert writes the profile keyed by its id, replacing any existing row
	// with the same id. Safe to replay with identical input.
	Upsert(ctx context.Context, profile *domain.Profile) error
}
