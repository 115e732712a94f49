package processor

import (
	"context"
	"errors"
	"time"

	"loyalty-server/internal/events"
	"loyalty-server/internal/loyalty"
	"loyalty-server/internal/observability"
	"loyalty-server/internal/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrRewardNotFound = errors.New("reward not found")
	ErrRewardNotOwned = errors.New("reward belongs to another customer")
)

type RewardProcessor struct {
	store  RewardStore
	events EventPublisher
	logger *observability.Logger
	now    func() time.Time
}

func New(rewardStore RewardStore, publisher EventPublisher, logger *observability.Logger) RewardProcessor {
	return RewardProcessor{
		store:  rewardStore,
		events: publisher,
		logger: logger,
		now:    time.Now,
	}
}

// TermsOf extracts the discount terms of a stored reward
func TermsOf(r store.Reward) loyalty.Terms {
	return loyalty.Terms{
		Available:          r.Status == store.RewardStatusAvailable,
		ExpiresAt:          r.ExpirationDate,
		MinimumOrderValue:  r.MinimumOrderValue,
		RewardValue:        r.RewardValue,
		DiscountPercentage: r.DiscountPercentage,
	}
}

// Quote is a discount computed for a subtotal without claiming the reward
type Quote struct {
	Reward   store.Reward    `json:"reward"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Discount decimal.Decimal `json:"discount_amount"`
	Total    decimal.Decimal `json:"total_amount"`
}

// PreviewDiscount computes what rewardID takes off subtotal. When customerID
// is set the reward must belong to that customer. Nothing is written.
func (p *RewardProcessor) PreviewDiscount(ctx context.Context, rewardID uuid.UUID, customerID *uuid.UUID, subtotal decimal.Decimal) (Quote, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "reward_id", Value: rewardID.String()},
		observability.Field{Key: "subtotal", Value: subtotal.StringFixed(2)},
	)

	reward, err := p.store.GetRewardByID(ctx, rewardID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// A missing reward is reported the same way as a used one.
			return Quote{}, loyalty.ErrRewardUnavailable
		}
		p.logger.Error(ctx, "failed to get reward", err)
		return Quote{}, err
	}
	if customerID != nil && reward.CustomerID != *customerID {
		return Quote{}, ErrRewardNotOwned
	}

	discount, err := loyalty.ComputeDiscount(TermsOf(reward), subtotal, p.now())
	if err != nil {
		p.logger.Debug(observability.WithFields(ctx, observability.Field{Key: "reason", Value: err.Error()}), "reward not applicable")
		return Quote{}, err
	}

	return Quote{
		Reward:   reward,
		Subtotal: subtotal,
		Discount: discount,
		Total:    subtotal.Sub(discount),
	}, nil
}

// GetReward retrieves a reward by id
func (p *RewardProcessor) GetReward(ctx context.Context, rewardID uuid.UUID) (store.Reward, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "reward_id", Value: rewardID.String()})

	reward, err := p.store.GetRewardByID(ctx, rewardID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Reward{}, ErrRewardNotFound
		}
		p.logger.Error(ctx, "failed to get reward", err)
		return store.Reward{}, err
	}
	return reward, nil
}

// ListAvailable returns the customer's redeemable rewards, most valuable first
func (p *RewardProcessor) ListAvailable(ctx context.Context, customerID uuid.UUID) ([]store.Reward, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "customer_id", Value: customerID.String()})

	rewards, err := p.store.ListAvailableRewards(ctx, customerID, p.now())
	if err != nil {
		p.logger.Error(ctx, "failed to list available rewards", err)
		return nil, err
	}
	if rewards == nil {
		rewards = []store.Reward{}
	}
	return rewards, nil
}

// ListRewards returns every reward the customer ever earned
func (p *RewardProcessor) ListRewards(ctx context.Context, customerID uuid.UUID) ([]store.Reward, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "customer_id", Value: customerID.String()})

	rewards, err := p.store.ListRewardsByCustomer(ctx, customerID)
	if err != nil {
		p.logger.Error(ctx, "failed to list rewards", err)
		return nil, err
	}
	if rewards == nil {
		rewards = []store.Reward{}
	}
	return rewards, nil
}

// Redeem claims a reward outside of an order. Only one of any number of
// concurrent redemptions succeeds; the others get ErrRewardUnavailable.
func (p *RewardProcessor) Redeem(ctx context.Context, rewardID uuid.UUID) (store.Reward, error) {
	reward, err := p.GetReward(ctx, rewardID)
	if err != nil {
		return store.Reward{}, err
	}
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "reward_id", Value: rewardID.String()},
		observability.Field{Key: "customer_id", Value: reward.CustomerID.String()},
	)

	now := p.now()
	won, err := p.store.ClaimReward(ctx, rewardID, nil, now)
	if err != nil {
		p.logger.Error(ctx, "failed to claim reward", err)
		return store.Reward{}, err
	}
	if !won {
		p.logger.Info(ctx, "reward claim lost")
		return store.Reward{}, loyalty.ErrRewardUnavailable
	}

	p.logger.Info(ctx, "reward redeemed")
	p.events.Publish(ctx, events.RewardClaimed(rewardID, reward.CustomerID, nil))

	reward.Status = store.RewardStatusClaimed
	reward.ClaimedAt = &now
	return reward, nil
}
