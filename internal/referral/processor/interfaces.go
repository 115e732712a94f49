package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"

	loyaltyProcessor "loyalty-server/internal/loyalty/processor"
	"loyalty-server/internal/settings"
	"loyalty-server/internal/store"

	"github.com/google/uuid"
)

// ReferralStore defines the database operations required by ReferralProcessor
type ReferralStore interface {
	GetProfileByID(ctx context.Context, id uuid.UUID) (store.Profile, error)
	ListReferralsByReferrer(ctx context.Context, referrerID uuid.UUID, limit, offset int) ([]store.Referral, error)
	CountReferralsByReferrer(ctx context.Context, referrerID uuid.UUID) (int, error)
}

// RewardGranter emits rewards on a transaction handle
type RewardGranter interface {
	GrantTx(ctx context.Context, q store.LoyaltyQueries, cfg settings.Settings, customerID uuid.UUID, g loyaltyProcessor.Grant) (store.Reward, error)
}

// CodeChecker reports whether a referral code is already taken
type CodeChecker interface {
	ReferralCodeExists(ctx context.Context, code string) (bool, error)
}
