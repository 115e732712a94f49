package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const rewardColumns = `id, customer_id, title, description, kind, reward_value, discount_percentage, minimum_order_value, applicable_to, expiration_date, status, milestone_visits, from_tier, to_tier, referred_id, birthday_year, order_id, claimed_at, created_at, updated_at`

// CreateRewardParams represents parameters for creating a reward. Exactly one
// of RewardValue and DiscountPercentage is set. The source columns that
// apply to Kind are set and the others are nil.
type CreateRewardParams struct {
	CustomerID         uuid.UUID
	Title              string
	Description        string
	Kind               string
	RewardValue        *decimal.Decimal
	DiscountPercentage *decimal.Decimal
	MinimumOrderValue  decimal.Decimal
	ExpirationDate     *time.Time
	MilestoneVisits    *int
	FromTier           *string
	ToTier             *string
	ReferredID         *uuid.UUID
	BirthdayYear       *int
}

const sqlCreateReward = `
INSERT INTO rewards (customer_id, title, description, kind, reward_value, discount_percentage, minimum_order_value, applicable_to, expiration_date, milestone_visits, from_tier, to_tier, referred_id, birthday_year)
VALUES ($1, $2, $3, $4, $5, $6, $7, 'all', $8, $9, $10, $11, $12, $13)
RETURNING ` + rewardColumns

// CreateReward inserts an available reward. Returns ErrDuplicate when the
// customer already holds the milestone or birthday reward being created.
func (s *Store) CreateReward(ctx context.Context, params CreateRewardParams) (Reward, error) {
	var reward Reward
	err := s.db.GetContext(ctx, &reward, sqlCreateReward,
		params.CustomerID,
		params.Title,
		params.Description,
		params.Kind,
		params.RewardValue,
		params.DiscountPercentage,
		params.MinimumOrderValue,
		params.ExpirationDate,
		params.MilestoneVisits,
		params.FromTier,
		params.ToTier,
		params.ReferredID,
		params.BirthdayYear)
	if err != nil {
		if isUniqueViolation(err) {
			return Reward{}, ErrDuplicate
		}
		return Reward{}, fmt.Errorf("failed to create reward: %w", err)
	}
	return reward, nil
}

const sqlGetRewardByID = `SELECT ` + rewardColumns + ` FROM rewards WHERE id = $1`

// GetRewardByID retrieves a reward by ID
func (s *Store) GetRewardByID(ctx context.Context, rewardID uuid.UUID) (Reward, error) {
	var reward Reward
	err := s.db.GetContext(ctx, &reward, sqlGetRewardByID, rewardID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Reward{}, ErrNotFound
		}
		return Reward{}, fmt.Errorf("failed to get reward by id: %w", err)
	}
	return reward, nil
}

const sqlListRewardsByCustomer = `
SELECT ` + rewardColumns + `
FROM rewards
WHERE customer_id = $1
ORDER BY created_at DESC
`

// ListRewardsByCustomer returns every reward a customer holds, newest first
func (s *Store) ListRewardsByCustomer(ctx context.Context, customerID uuid.UUID) ([]Reward, error) {
	var rewards []Reward
	if err := s.db.SelectContext(ctx, &rewards, sqlListRewardsByCustomer, customerID); err != nil {
		return nil, fmt.Errorf("failed to list rewards: %w", err)
	}
	return rewards, nil
}

const sqlListAvailableRewards = `
SELECT ` + rewardColumns + `
FROM rewards
WHERE customer_id = $1
  AND status = 'available'
  AND (expiration_date IS NULL OR expiration_date > $2)
ORDER BY COALESCE(reward_value, 0) DESC, COALESCE(discount_percentage, 0) DESC, created_at
`

// ListAvailableRewards returns unclaimed, unexpired rewards, highest value first
func (s *Store) ListAvailableRewards(ctx context.Context, customerID uuid.UUID, now time.Time) ([]Reward, error) {
	var rewards []Reward
	if err := s.db.SelectContext(ctx, &rewards, sqlListAvailableRewards, customerID, now); err != nil {
		return nil, fmt.Errorf("failed to list available rewards: %w", err)
	}
	return rewards, nil
}

const sqlMilestoneRewardExists = `
SELECT EXISTS(
    SELECT 1 FROM rewards
    WHERE customer_id = $1
      AND kind NOT IN ('birthday', 'referral')
      AND milestone_visits = $2
)`

// MilestoneRewardExists reports whether a visit-count reward was already
// granted for the given count
func (s *Store) MilestoneRewardExists(ctx context.Context, customerID uuid.UUID, visits int) (bool, error) {
	var exists bool
	if err := s.db.GetContext(ctx, &exists, sqlMilestoneRewardExists, customerID, visits); err != nil {
		return false, fmt.Errorf("failed to check milestone reward: %w", err)
	}
	return exists, nil
}

const sqlBirthdayRewardExists = `
SELECT EXISTS(SELECT 1 FROM rewards WHERE customer_id = $1 AND kind = 'birthday' AND birthday_year = $2)`

// BirthdayRewardExists reports whether the year's birthday reward was granted
func (s *Store) BirthdayRewardExists(ctx context.Context, customerID uuid.UUID, year int) (bool, error) {
	var exists bool
	if err := s.db.GetContext(ctx, &exists, sqlBirthdayRewardExists, customerID, year); err != nil {
		return false, fmt.Errorf("failed to check birthday reward: %w", err)
	}
	return exists, nil
}

const sqlClaimReward = `
UPDATE rewards
SET status = 'claimed', claimed_at = $3, order_id = $2, updated_at = $3
WHERE id = $1
  AND status = 'available'
  AND (expiration_date IS NULL OR expiration_date > $3)
`

// ClaimReward marks a reward claimed if it is still available and
// unexpired. It reports false when another claim won or the reward expired.
func (s *Store) ClaimReward(ctx context.Context, rewardID uuid.UUID, orderID *uuid.UUID, now time.Time) (bool, error) {
	res, err := s.db.ExecContext(ctx, sqlClaimReward, rewardID, orderID, now)
	if err != nil {
		return false, fmt.Errorf("failed to claim reward: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows == 1, nil
}
