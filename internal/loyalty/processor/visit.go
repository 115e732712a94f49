package processor

import (
	"context"
	"errors"

	"loyalty-server/internal/loyalty"
	"loyalty-server/internal/observability"
	"loyalty-server/internal/settings"
	"loyalty-server/internal/store"

	"github.com/google/uuid"
)

// RecordVisit logs a visit and runs the tier and milestone steps in one
// transaction, then publishes the resulting events.
func (e *Engine) RecordVisit(ctx context.Context, in VisitInput) (VisitOutcome, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "customer_id", Value: in.CustomerID.String()})

	cfg, err := e.settings.Load(ctx)
	if err != nil {
		e.logger.Error(ctx, "failed to load settings", err)
		return VisitOutcome{}, err
	}

	var outcome VisitOutcome
	err = e.store.InTx(ctx, func(q store.LoyaltyQueries) error {
		var err error
		outcome, err = e.RecordVisitTx(ctx, q, cfg, in)
		return err
	})
	if err != nil {
		return VisitOutcome{}, err
	}

	e.PublishOutcome(ctx, outcome)
	return outcome, nil
}

// RecordVisitTx is the single path every visit takes, whether logged by staff
// or derived from an order. q must be transaction-bound: the stats upsert
// locks the customer's row so concurrent visits are evaluated one at a time.
func (e *Engine) RecordVisitTx(ctx context.Context, q store.LoyaltyQueries, cfg settings.Settings, in VisitInput) (VisitOutcome, error) {
	if in.CustomerID == uuid.Nil {
		return VisitOutcome{}, ErrInvalidCustomer
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "customer_id", Value: in.CustomerID.String()})

	if _, err := q.GetProfileByID(ctx, in.CustomerID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return VisitOutcome{}, ErrCustomerNotFound
		}
		e.logger.Error(ctx, "failed to get customer profile", err)
		return VisitOutcome{}, err
	}

	visit, err := q.CreateVisit(ctx, store.CreateVisitParams{
		CustomerID: in.CustomerID,
		StaffID:    in.StaffID,
		OrderID:    in.OrderID,
		Notes:      in.Notes,
	})
	if err != nil {
		e.logger.Error(ctx, "failed to create visit", err)
		return VisitOutcome{}, err
	}

	stats, err := q.IncrementVisits(ctx, in.CustomerID)
	if err != nil {
		e.logger.Error(ctx, "failed to increment visits", err)
		return VisitOutcome{}, err
	}

	outcome := VisitOutcome{Visit: visit, Stats: stats}

	tierStep, err := e.evaluateTier(ctx, q, cfg, stats)
	if err != nil {
		return VisitOutcome{}, err
	}
	outcome.Stats = tierStep.stats
	if tierStep.changed {
		outcome.TierChanged = true
		outcome.PreviousTier = tierStep.from
	}
	if tierStep.reward != nil {
		outcome.Rewards = append(outcome.Rewards, *tierStep.reward)
	}

	milestone, err := e.evaluateMilestone(ctx, q, cfg, outcome.Stats)
	if err != nil {
		return VisitOutcome{}, err
	}
	if milestone != nil {
		outcome.Rewards = append(outcome.Rewards, *milestone)
	}

	return outcome, nil
}

// storedTier reads the persisted tier, treating unknown values as bronze so a
// bad row is corrected by the next evaluation.
func storedTier(stats store.CustomerStats) loyalty.Tier {
	tier, err := loyalty.ParseTier(stats.CurrentTier)
	if err != nil {
		return loyalty.TierBronze
	}
	return tier
}
