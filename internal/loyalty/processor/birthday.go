package processor

import (
	"context"
	"errors"
	"fmt"

	"loyalty-server/internal/events"
	"loyalty-server/internal/loyalty"
	"loyalty-server/internal/observability"
	"loyalty-server/internal/store"

	"github.com/google/uuid"
)

// GrantBirthday grants the yearly birthday reward. It reports false when
// birthday rewards are disabled or the reward for year already exists.
func (e *Engine) GrantBirthday(ctx context.Context, customerID uuid.UUID, year int) (bool, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "customer_id", Value: customerID.String()},
		observability.Field{Key: "birthday_year", Value: year},
	)

	cfg, err := e.settings.Load(ctx)
	if err != nil {
		e.logger.Error(ctx, "failed to load settings", err)
		return false, err
	}
	if !cfg.Features.BirthdayRewards || !cfg.Birthday.Enabled {
		return false, nil
	}

	var reward *store.Reward
	err = e.store.InTx(ctx, func(q store.LoyaltyQueries) error {
		exists, err := q.BirthdayRewardExists(ctx, customerID, year)
		if err != nil {
			return err
		}
		if exists {
			return nil
		}

		value := cfg.Birthday.Value
		r, err := e.GrantTx(ctx, q, cfg, customerID, Grant{
			Source:      loyalty.Birthday{Year: year},
			Benefit:     loyalty.Fixed(value),
			Title:       "Happy Birthday!",
			Description: fmt.Sprintf("Celebrate with %s off your next order.", value.StringFixed(2)),
		})
		if err != nil {
			return err
		}
		reward = &r
		return nil
	})
	if err != nil {
		// A concurrent task won the unique (customer, year) slot.
		if errors.Is(err, store.ErrDuplicate) {
			return false, nil
		}
		return false, err
	}
	if reward == nil {
		e.logger.Debug(ctx, "birthday reward already granted")
		return false, nil
	}

	e.events.Publish(ctx, events.RewardEarned(*reward))
	return true, nil
}
