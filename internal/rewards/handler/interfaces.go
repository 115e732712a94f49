package handler

import (
	"context"

	"loyalty-server/internal/rewards/processor"
	"loyalty-server/internal/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=interfaces.go -destination=mocks_test.go -package=handler

// RewardService is the reward processor as seen by the HTTP layer
type RewardService interface {
	GetReward(ctx context.Context, rewardID uuid.UUID) (store.Reward, error)
	ListAvailable(ctx context.Context, customerID uuid.UUID) ([]store.Reward, error)
	ListRewards(ctx context.Context, customerID uuid.UUID) ([]store.Reward, error)
	PreviewDiscount(ctx context.Context, rewardID uuid.UUID, customerID *uuid.UUID, subtotal decimal.Decimal) (processor.Quote, error)
	Redeem(ctx context.Context, rewardID uuid.UUID) (store.Reward, error)
}
