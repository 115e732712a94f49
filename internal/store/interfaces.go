package store

//go:generate go run go.uber.org/mock/mockgen@latest -destination=storemock/queries.go -package=storemock . LoyaltyQueries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// LoyaltyQueries is every query the store runs. Both the pooled Store and the
// transaction-bound store handed to InTx callbacks implement it.
type LoyaltyQueries interface {
	// Profile operations
	CreateProfile(ctx context.Context, params CreateProfileParams) (Profile, error)
	GetProfileByID(ctx context.Context, id uuid.UUID) (Profile, error)
	GetProfileByEmail(ctx context.Context, email string) (Profile, error)
	GetProfileByReferralCode(ctx context.Context, code string) (Profile, error)
	ReferralCodeExists(ctx context.Context, code string) (bool, error)
	AddProfileRole(ctx context.Context, id uuid.UUID, role string) (Profile, error)
	RemoveProfileRole(ctx context.Context, id uuid.UUID, role string) (Profile, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, params UpdateProfileParams) (Profile, error)
	SetProfileReferredBy(ctx context.Context, id uuid.UUID, code string) (Profile, error)
	ListProfiles(ctx context.Context, limit, offset int) ([]Profile, error)
	ListProfilesWithBirthday(ctx context.Context, month, day int) ([]Profile, error)

	// Customer stats operations
	EnsureCustomerStats(ctx context.Context, customerID uuid.UUID) error
	IncrementVisits(ctx context.Context, customerID uuid.UUID) (CustomerStats, error)
	GetCustomerStats(ctx context.Context, customerID uuid.UUID) (CustomerStats, error)
	LockCustomerStats(ctx context.Context, customerID uuid.UUID) (CustomerStats, error)
	UpdateCustomerTier(ctx context.Context, customerID uuid.UUID, tier string) (CustomerStats, error)

	// Visit operations
	CreateVisit(ctx context.Context, params CreateVisitParams) (Visit, error)
	ListVisitsByCustomer(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]Visit, error)

	// Reward operations
	CreateReward(ctx context.Context, params CreateRewardParams) (Reward, error)
	GetRewardByID(ctx context.Context, rewardID uuid.UUID) (Reward, error)
	ListRewardsByCustomer(ctx context.Context, customerID uuid.UUID) ([]Reward, error)
	ListAvailableRewards(ctx context.Context, customerID uuid.UUID, now time.Time) ([]Reward, error)
	MilestoneRewardExists(ctx context.Context, customerID uuid.UUID, visits int) (bool, error)
	BirthdayRewardExists(ctx context.Context, customerID uuid.UUID, year int) (bool, error)
	ClaimReward(ctx context.Context, rewardID uuid.UUID, orderID *uuid.UUID, now time.Time) (bool, error)

	// Referral operations
	CreateReferral(ctx context.Context, params CreateReferralParams) (Referral, error)
	ListReferralsByReferrer(ctx context.Context, referrerID uuid.UUID, limit, offset int) ([]Referral, error)
	CountReferralsByReferrer(ctx context.Context, referrerID uuid.UUID) (int, error)

	// Order operations
	CreateOrder(ctx context.Context, params CreateOrderParams) (Order, error)
	GetOrderByID(ctx context.Context, orderID uuid.UUID) (Order, error)
	ClearOrderDiscount(ctx context.Context, orderID uuid.UUID) (Order, error)
	UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, from, to string, now time.Time) (Order, error)
	ListOrdersByCustomer(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]Order, error)
	ListOrdersByStatus(ctx context.Context, statuses []string, limit, offset int) ([]Order, error)

	// Setting operations
	ListSettings(ctx context.Context) ([]Setting, error)
	GetSetting(ctx context.Context, key string) (Setting, error)
	UpsertSetting(ctx context.Context, key string, value RawJSON, updatedBy *uuid.UUID) (Setting, error)
	DeleteSetting(ctx context.Context, key string) error
}

// Storer is LoyaltyQueries plus transaction control
type Storer interface {
	LoyaltyQueries
	InTx(ctx context.Context, fn func(q LoyaltyQueries) error) error
	Ping(ctx context.Context) error
}

var (
	_ Storer         = (*Store)(nil)
	_ LoyaltyQueries = (*Store)(nil)
)
