package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const customerStatsColumns = `customer_id, total_visits, current_tier, tier_updated_at, created_at, updated_at`

const sqlEnsureCustomerStats = `
INSERT INTO customer_stats (customer_id, total_visits, current_tier)
VALUES ($1, 0, 'bronze')
ON CONFLICT (customer_id) DO NOTHING
`

// EnsureCustomerStats creates a zeroed stats row if none exists
func (s *Store) EnsureCustomerStats(ctx context.Context, customerID uuid.UUID) error {
	if _, err := s.db.ExecContext(ctx, sqlEnsureCustomerStats, customerID); err != nil {
		return fmt.Errorf("failed to ensure customer stats: %w", err)
	}
	return nil
}

// The upsert takes a row lock on the customer's stats, which serializes
// concurrent visits for the same customer until the transaction ends.
const sqlIncrementVisits = `
INSERT INTO customer_stats (customer_id, total_visits, current_tier)
VALUES ($1, 1, 'bronze')
ON CONFLICT (customer_id) DO UPDATE
SET total_visits = customer_stats.total_visits + 1, updated_at = CURRENT_TIMESTAMP
RETURNING ` + customerStatsColumns

// IncrementVisits adds one visit and returns the updated stats
func (s *Store) IncrementVisits(ctx context.Context, customerID uuid.UUID) (CustomerStats, error) {
	var stats CustomerStats
	if err := s.db.GetContext(ctx, &stats, sqlIncrementVisits, customerID); err != nil {
		return CustomerStats{}, fmt.Errorf("failed to increment visits: %w", err)
	}
	return stats, nil
}

const sqlGetCustomerStats = `SELECT ` + customerStatsColumns + ` FROM customer_stats WHERE customer_id = $1`

// GetCustomerStats retrieves a customer's stats
func (s *Store) GetCustomerStats(ctx context.Context, customerID uuid.UUID) (CustomerStats, error) {
	var stats CustomerStats
	err := s.db.GetContext(ctx, &stats, sqlGetCustomerStats, customerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CustomerStats{}, ErrNotFound
		}
		return CustomerStats{}, fmt.Errorf("failed to get customer stats: %w", err)
	}
	return stats, nil
}

const sqlUpdateCustomerTier = `
UPDATE customer_stats
SET current_tier = $2, tier_updated_at = CURRENT_TIMESTAMP, updated_at = CURRENT_TIMESTAMP
WHERE customer_id = $1
RETURNING ` + customerStatsColumns

// UpdateCustomerTier records a tier change
func (s *Store) UpdateCustomerTier(ctx context.Context, customerID uuid.UUID, tier string) (CustomerStats, error) {
	var stats CustomerStats
	err := s.db.GetContext(ctx, &stats, sqlUpdateCustomerTier, customerID, tier)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CustomerStats{}, ErrNotFound
		}
		return CustomerStats{}, fmt.Errorf("failed to update customer tier: %w", err)
	}
	return stats, nil
}

const sqlLockCustomerStats = `SELECT ` + customerStatsColumns + ` FROM customer_stats WHERE customer_id = $1 FOR UPDATE`

// LockCustomerStats reads a customer's stats and holds the row lock until the
// surrounding transaction ends
func (s *Store) LockCustomerStats(ctx context.Context, customerID uuid.UUID) (CustomerStats, error) {
	var stats CustomerStats
	err := s.db.GetContext(ctx, &stats, sqlLockCustomerStats, customerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CustomerStats{}, ErrNotFound
		}
		return CustomerStats{}, fmt.Errorf("failed to lock customer stats: %w", err)
	}
	return stats, nil
}
