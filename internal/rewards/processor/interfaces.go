package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"
	"time"

	"loyalty-server/internal/events"
	"loyalty-server/internal/store"

	"github.com/google/uuid"
)

// RewardStore defines the database operations required by RewardProcessor
type RewardStore interface {
	GetRewardByID(ctx context.Context, rewardID uuid.UUID) (store.Reward, error)
	ListRewardsByCustomer(ctx context.Context, customerID uuid.UUID) ([]store.Reward, error)
	ListAvailableRewards(ctx context.Context, customerID uuid.UUID, now time.Time) ([]store.Reward, error)
	ClaimReward(ctx context.Context, rewardID uuid.UUID, orderID *uuid.UUID, now time.Time) (bool, error)
}

// EventPublisher publishes committed domain events
type EventPublisher interface {
	Publish(ctx context.Context, evts ...events.Event)
}
