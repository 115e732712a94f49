package handler

import (
	"context"

	"loyalty-server/internal/profiles/processor"
	"loyalty-server/internal/store"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=mocks_test.go -package=handler

// ProfileService is the profile processor as seen by the HTTP layer
type ProfileService interface {
	CreateProfile(ctx context.Context, req processor.CreateProfileRequest) (store.Profile, error)
	GetProfile(ctx context.Context, id uuid.UUID) (store.Profile, error)
	GetProfileStats(ctx context.Context, id uuid.UUID) (processor.ProfileStats, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, req processor.UpdateProfileRequest) (store.Profile, error)
	AddRole(ctx context.Context, profileID uuid.UUID, role string, grantedBy uuid.UUID) (store.Profile, error)
	RemoveRole(ctx context.Context, profileID uuid.UUID, role string, revokedBy uuid.UUID) (store.Profile, error)
	ListProfiles(ctx context.Context, page, limit int) ([]store.Profile, error)
}
