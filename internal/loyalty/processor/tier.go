package processor

import (
	"context"
	"fmt"

	"loyalty-server/internal/loyalty"
	"loyalty-server/internal/observability"
	"loyalty-server/internal/settings"
	"loyalty-server/internal/store"
)

type tierResult struct {
	stats   store.CustomerStats
	changed bool
	from    loyalty.Tier
	reward  *store.Reward
}

// evaluateTier reconciles the stored tier with the visit count. On a change it
// persists the new tier and grants the graduation reward configured for that
// exact transition, if any. The comparison has no direction, so a downgrade
// updates the tier the same way but never has a configured reward.
func (e *Engine) evaluateTier(ctx context.Context, q store.LoyaltyQueries, cfg settings.Settings, stats store.CustomerStats) (tierResult, error) {
	from := storedTier(stats)
	to := loyalty.TierOf(stats.TotalVisits, cfg.TierThresholds)
	if from == to && stats.CurrentTier == string(to) {
		return tierResult{stats: stats}, nil
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "from_tier", Value: string(from)},
		observability.Field{Key: "to_tier", Value: string(to)},
	)

	updated, err := q.UpdateCustomerTier(ctx, stats.CustomerID, string(to))
	if err != nil {
		e.logger.Error(ctx, "failed to update customer tier", err)
		return tierResult{}, err
	}
	if from == to {
		// Stored value was not a valid tier; corrected without a transition.
		return tierResult{stats: updated}, nil
	}

	e.logger.Info(ctx, fmt.Sprintf("customer moved from %s to %s at %d visits", from, to, updated.TotalVisits))
	result := tierResult{stats: updated, changed: true, from: from}

	tr := loyalty.Transition{From: from, To: to}
	def, ok := cfg.GraduationReward(tr)
	if !ok {
		return result, nil
	}

	title, description := def.Render(to)
	reward, err := e.GrantTx(ctx, q, cfg, stats.CustomerID, Grant{
		Source:      loyalty.TierUpgrade{From: from, To: to},
		Benefit:     def.Benefit(),
		Title:       title,
		Description: description,
	})
	if err != nil {
		return tierResult{}, err
	}
	result.reward = &reward
	return result, nil
}
