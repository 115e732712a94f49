package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"

	"loyalty-server/internal/events"
	"loyalty-server/internal/settings"
	"loyalty-server/internal/store"

	"github.com/google/uuid"
)

// LoyaltyStore defines the database operations required by Engine
type LoyaltyStore interface {
	InTx(ctx context.Context, fn func(q store.LoyaltyQueries) error) error
	GetCustomerStats(ctx context.Context, customerID uuid.UUID) (store.CustomerStats, error)
	ListVisitsByCustomer(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]store.Visit, error)
}

// SettingsLoader returns the effective program settings
type SettingsLoader interface {
	Load(ctx context.Context) (settings.Settings, error)
}

// EventPublisher publishes committed domain events
type EventPublisher interface {
	Publish(ctx context.Context, evts ...events.Event)
}
