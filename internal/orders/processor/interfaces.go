package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"
	"time"

	"loyalty-server/internal/events"
	loyaltyProcessor "loyalty-server/internal/loyalty/processor"
	rewardsProcessor "loyalty-server/internal/rewards/processor"
	"loyalty-server/internal/settings"
	"loyalty-server/internal/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStore defines the database operations required by OrderProcessor
type OrderStore interface {
	InTx(ctx context.Context, fn func(q store.LoyaltyQueries) error) error
	GetOrderByID(ctx context.Context, orderID uuid.UUID) (store.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, from, to string, now time.Time) (store.Order, error)
	ListOrdersByCustomer(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]store.Order, error)
	ListOrdersByStatus(ctx context.Context, statuses []string, limit, offset int) ([]store.Order, error)
}

// VisitRecorder runs the visit cascade on an open transaction
type VisitRecorder interface {
	RecordVisitTx(ctx context.Context, q store.LoyaltyQueries, cfg settings.Settings, in loyaltyProcessor.VisitInput) (loyaltyProcessor.VisitOutcome, error)
}

// DiscountQuoter computes a reward discount without claiming it
type DiscountQuoter interface {
	PreviewDiscount(ctx context.Context, rewardID uuid.UUID, customerID *uuid.UUID, subtotal decimal.Decimal) (rewardsProcessor.Quote, error)
}

// SettingsLoader returns the effective program settings
type SettingsLoader interface {
	Load(ctx context.Context) (settings.Settings, error)
}

// EventPublisher publishes committed domain events
type EventPublisher interface {
	Publish(ctx context.Context, evts ...events.Event)
}
