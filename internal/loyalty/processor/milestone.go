package processor

import (
	"context"
	"fmt"

	"loyalty-server/internal/events"
	"loyalty-server/internal/loyalty"
	"loyalty-server/internal/observability"
	"loyalty-server/internal/settings"
	"loyalty-server/internal/store"

	"github.com/google/uuid"
)

// evaluateMilestone grants a milestone reward when the visit count is an
// exact multiple of the configured frequency and no reward exists yet for
// that count. Running it twice for the same count grants at most one.
func (e *Engine) evaluateMilestone(ctx context.Context, q store.LoyaltyQueries, cfg settings.Settings, stats store.CustomerStats) (*store.Reward, error) {
	if !cfg.Features.Milestones || !loyalty.IsMilestone(stats.TotalVisits, cfg.Milestone.EveryVisits) {
		return nil, nil
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "milestone_visits", Value: stats.TotalVisits})

	exists, err := q.MilestoneRewardExists(ctx, stats.CustomerID, stats.TotalVisits)
	if err != nil {
		e.logger.Error(ctx, "failed to check milestone reward", err)
		return nil, err
	}
	if exists {
		e.logger.Debug(ctx, "milestone reward already granted")
		return nil, nil
	}

	value := cfg.Milestone.RewardValue
	reward, err := e.GrantTx(ctx, q, cfg, stats.CustomerID, Grant{
		Source:      loyalty.Milestone{Visits: stats.TotalVisits},
		Benefit:     loyalty.Fixed(value),
		Title:       fmt.Sprintf("%d Visit Milestone", stats.TotalVisits),
		Description: fmt.Sprintf("Thanks for visiting %d times! Enjoy %s off your next order.", stats.TotalVisits, value.StringFixed(2)),
	})
	if err != nil {
		return nil, err
	}
	return &reward, nil
}

// EvaluateMilestone re-runs the milestone step for a customer's current visit
// count. It is safe to call repeatedly.
func (e *Engine) EvaluateMilestone(ctx context.Context, customerID uuid.UUID) (*store.Reward, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "customer_id", Value: customerID.String()})

	cfg, err := e.settings.Load(ctx)
	if err != nil {
		e.logger.Error(ctx, "failed to load settings", err)
		return nil, err
	}

	var reward *store.Reward
	err = e.store.InTx(ctx, func(q store.LoyaltyQueries) error {
		stats, err := q.LockCustomerStats(ctx, customerID)
		if err != nil {
			return err
		}
		reward, err = e.evaluateMilestone(ctx, q, cfg, stats)
		return err
	})
	if err != nil {
		return nil, err
	}

	if reward != nil {
		e.events.Publish(ctx, events.RewardEarned(*reward))
	}
	return reward, nil
}
