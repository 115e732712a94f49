package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"

	"loyalty-server/internal/events"
	referralProcessor "loyalty-server/internal/referral/processor"
	"loyalty-server/internal/settings"
	"loyalty-server/internal/store"

	"github.com/google/uuid"
)

// ProfileStore defines the database operations required by ProfileProcessor
type ProfileStore interface {
	InTx(ctx context.Context, fn func(q store.LoyaltyQueries) error) error
	GetProfileByID(ctx context.Context, id uuid.UUID) (store.Profile, error)
	GetCustomerStats(ctx context.Context, customerID uuid.UUID) (store.CustomerStats, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, params store.UpdateProfileParams) (store.Profile, error)
	AddProfileRole(ctx context.Context, id uuid.UUID, role string) (store.Profile, error)
	RemoveProfileRole(ctx context.Context, id uuid.UUID, role string) (store.Profile, error)
	ListProfiles(ctx context.Context, limit, offset int) ([]store.Profile, error)
}

// ReferralResolver resolves a signup referral code on the signup transaction
type ReferralResolver interface {
	ResolveTx(ctx context.Context, q store.LoyaltyQueries, cfg settings.Settings, referred store.Profile, code string) (*referralProcessor.Resolution, error)
}

// SettingsLoader returns the effective program settings
type SettingsLoader interface {
	Load(ctx context.Context) (settings.Settings, error)
}

// EventPublisher publishes committed domain events
type EventPublisher interface {
	Publish(ctx context.Context, evts ...events.Event)
}
