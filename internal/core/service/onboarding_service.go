package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/smarteros/conductor/internal/core/domain"
	"github.com/smarteros/conductor/internal/core/ports"
)

const fallbackOrgName = "My Organization"

type onboardingService struct {
	profiles ports.ProfileRepository
	tenants  ports.TenantRepository
	log      zerolog.Logger
}

// NewOnboardingService returns an OnboardingService implementation.
func NewOnboardingService(
	profiles ports.ProfileRepository,
	tenants ports.TenantRepository,
	log zerolog.Logger,
) ports.OnboardingService {
	return &onboardingService{
		profiles: profiles,
		tenants:  tenants,
		log:      log,
	}
}

// Onboard provisions a new user: profile upsert, default workspace, owner
// membership. The profile write is the only hard requirement; workspace
// provisioning is best-effort and a failure there degrades the result
// (tenant_id null) without failing the run.
//
// Replaying the same event re-upserts the profile safely but creates another
// workspace: there is no existence check against prior tenants for the user.
func (s *onboardingService) Onboard(ctx context.Context, event ports.SignupEventInput) (ports.OnboardingResult, error) {
	s.log.Info().
		Str("user_id", event.ID).
		Str("email", event.Email).
		Msg("starting onboarding")

	// 1. Derive the profile from the event metadata.
	profile := buildProfile(event)

	// 2. Upsert the profile. Overwrite-by-id keeps duplicate webhook
	// deliveries from producing duplicate rows. Failure here is fatal.
	if err := s.profiles.Upsert(ctx, profile); err != nil {
		return ports.OnboardingResult{}, fmt.Errorf("onboard %s: upsert profile: %w", event.ID, err)
	}

	// 3. Create the default workspace and link the owner. Non-fatal.
	var tenantID *string
	id, err := s.provisionWorkspace(ctx, event.ID, profile.FullName)
	if err != nil {
		s.log.Error().Err(err).
			Str("user_id", event.ID).
			Msg("workspace provisioning failed, onboarding continues")
	} else {
		tenantID = &id
	}

	result := ports.OnboardingResult{
		Status:         ports.StatusCompleted,
		UserID:         event.ID,
		TenantID:       tenantID,
		ProfileCreated: true,
	}

	s.log.Info().
		Str("user_id", event.ID).
		Bool("tenant_created", tenantID != nil).
		Msg("onboarding completed")

	return result, nil
}

// provisionWorkspace creates the tenant and the owner membership. It returns
// the tenant id as soon as the tenant row exists: a failed membership insert
// is logged but does not undo or hide the already-created tenant, so the
// caller still reports that id even though the user is not linked to it.
func (s *onboardingService) provisionWorkspace(ctx context.Context, userID, fullName string) (string, error) {
	tenant := &domain.Tenant{
		Name:   deriveTenantName(fullName),
		Status: domain.StatusActive,
		Plan:   domain.PlanFree,
	}

	tenantID, err := s.tenants.Insert(ctx, tenant)
	if err != nil {
		return "", fmt.Errorf("create tenant: %w", err)
	}
	if tenantID == "" {
		return "", domain.ErrTenantNotCreated
	}
	s.log.Info().Str("tenant_id", tenantID).Str("name", tenant.Name).Msg("tenant created")

	member := &domain.TenantMembership{
		TenantID: tenantID,
		UserID:   userID,
		Role:     domain.RoleOwner,
	}
	if err := s.tenants.InsertMember(ctx, member); err != nil {
		s.log.Warn().Err(err).
			Str("tenant_id", tenantID).
			Str("user_id", userID).
			Msg("owner membership insert failed, tenant left unlinked")
	}

	return tenantID, nil
}

// buildProfile extracts the profile fields from a signup event.
// Display-name precedence: metadata full_name, then metadata name, then the
// local part of the email address.
func buildProfile(event ports.SignupEventInput) *domain.Profile {
	fullName := metaString(event.Metadata, "full_name")
	if fullName == "" {
		fullName = metaString(event.Metadata, "name")
	}
	if fullName == "" {
		fullName, _, _ = strings.Cut(event.Email, "@")
	}

	var avatarURL *string
	if v := metaString(event.Metadata, "avatar_url"); v != "" {
		avatarURL = &v
	}

	return &domain.Profile{
		ID:        event.ID,
		Email:     event.Email,
		FullName:  fullName,
		AvatarURL: avatarURL,
		Status:    domain.StatusActive,
		UpdatedAt: domain.UpdatedAtNow,
	}
}

// deriveTenantName builds the default workspace name from the profile's
// display name, falling back to a generic organisation label.
func deriveTenantName(fullName string) string {
	if fullName == "" {
		fullName = fallbackOrgName
	}
	return fullName + "'s Workspace"
}

func metaString(meta map[string]any, key string) string {
	if meta == nil {
		return ""
	}
	v, _ := meta[key].(string)
	return v
}
