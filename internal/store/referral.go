package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// CreateReferralParams represents parameters for recording a referral
type CreateReferralParams struct {
	ReferrerID    uuid.UUID
	ReferredID    uuid.UUID
	ReferralCode  string
	RewardGranted bool
}

const sqlCreateReferral = `
INSERT INTO referrals (referrer_id, referred_id, referral_code, reward_granted)
VALUES ($1, $2, $3, $4)
RETURNING id, referrer_id, referred_id, referral_code, reward_granted, created_at
`

// CreateReferral records a referrer/referred link. Returns ErrDuplicate if the
// pair already exists.
func (s *Store) CreateReferral(ctx context.Context, params CreateReferralParams) (Referral, error) {
	var referral Referral
	err := s.db.GetContext(ctx, &referral, sqlCreateReferral,
		params.ReferrerID,
		params.ReferredID,
		params.ReferralCode,
		params.RewardGranted)
	if err != nil {
		if isUniqueViolation(err) {
			return Referral{}, ErrDuplicate
		}
		return Referral{}, fmt.Errorf("failed to create referral: %w", err)
	}
	return referral, nil
}

const sqlListReferralsByReferrer = `
SELECT id, referrer_id, referred_id, referral_code, reward_granted, created_at
FROM referrals
WHERE referrer_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3
`

// ListReferralsByReferrer returns the referrals a customer made
func (s *Store) ListReferralsByReferrer(ctx context.Context, referrerID uuid.UUID, limit, offset int) ([]Referral, error) {
	var referrals []Referral
	if err := s.db.SelectContext(ctx, &referrals, sqlListReferralsByReferrer, referrerID, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to get referrals by referrer: %w", err)
	}
	return referrals, nil
}

const sqlCountReferralsByReferrer = `SELECT COUNT(*) FROM referrals WHERE referrer_id = $1`

// CountReferralsByReferrer counts the referrals a customer made
func (s *Store) CountReferralsByReferrer(ctx context.Context, referrerID uuid.UUID) (int, error) {
	var count int
	if err := s.db.GetContext(ctx, &count, sqlCountReferralsByReferrer, referrerID); err != nil {
		return 0, fmt.Errorf("failed to count referrals by referrer: %w", err)
	}
	return count, nil
}
