package processor

import (
	"context"
	"fmt"

	"loyalty-server/internal/loyalty"
	"loyalty-server/internal/observability"
	"loyalty-server/internal/settings"
	"loyalty-server/internal/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Grant describes a reward to emit
type Grant struct {
	Source      loyalty.Source
	Benefit     loyalty.Benefit
	Title       string
	Description string
	// MinimumOrderValue defaults to zero
	MinimumOrderValue decimal.Decimal
}

// GrantTx creates an available reward on q. The expiration comes from
// cfg and the source-specific columns from g.Source.
func (e *Engine) GrantTx(ctx context.Context, q store.LoyaltyQueries, cfg settings.Settings, customerID uuid.UUID, g Grant) (store.Reward, error) {
	if g.Source == nil {
		return store.Reward{}, fmt.Errorf("reward source is required")
	}
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "customer_id", Value: customerID.String()},
		observability.Field{Key: "reward_kind", Value: string(g.Source.Kind())},
	)

	value, pct := g.Benefit.Columns()
	params := store.CreateRewardParams{
		CustomerID:         customerID,
		Title:              g.Title,
		Description:        g.Description,
		Kind:               string(g.Source.Kind()),
		RewardValue:        value,
		DiscountPercentage: pct,
		MinimumOrderValue:  g.MinimumOrderValue,
		ExpirationDate:     cfg.ExpiresAt(e.now()),
	}

	switch src := g.Source.(type) {
	case loyalty.Milestone:
		visits := src.Visits
		params.MilestoneVisits = &visits
	case loyalty.TierUpgrade:
		from, to := string(src.From), string(src.To)
		params.FromTier = &from
		params.ToTier = &to
	case loyalty.Referral:
		referred := src.ReferredID
		params.ReferredID = &referred
	case loyalty.Birthday:
		year := src.Year
		params.BirthdayYear = &year
	}

	reward, err := q.CreateReward(ctx, params)
	if err != nil {
		e.logger.Error(ctx, "failed to create reward", err)
		return store.Reward{}, err
	}

	e.logger.Info(observability.WithFields(ctx, observability.Field{Key: "reward_id", Value: reward.ID.String()}), "reward granted")
	return reward, nil
}
