//go:build integration

package store

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// Fixtures provides factory functions for creating test data.
// All factory methods use testify/require to fail fast on errors.
type Fixtures struct {
	t      *testing.T
	testDB *TestDB
	ctx    context.Context
}

// NewFixtures creates a new Fixtures instance for test data generation.
func NewFixtures(t *testing.T, testDB *TestDB) *Fixtures {
	t.Helper()
	return &Fixtures{
		t:      t,
		testDB: testDB,
		ctx:    context.Background(),
	}
}

// ProfileOpts customizes profile creation.
type ProfileOpts struct {
	Email string
	Roles StringArray
}

// CreateProfile creates a customer profile with a unique email and code.
func (f *Fixtures) CreateProfile(opts ...func(*ProfileOpts)) Profile {
	f.t.Helper()
	id := uuid.New()
	o := ProfileOpts{Email: id.String() + "@example.com"}
	for _, fn := range opts {
		fn(&o)
	}

	profile, err := f.testDB.Store.CreateProfile(f.ctx, CreateProfileParams{
		ID:           id,
		Email:        o.Email,
		ReferralCode: strings.ToUpper(strings.ReplaceAll(id.String(), "-", ""))[:12],
		Roles:        o.Roles,
	})
	require.NoError(f.t, err, "failed to create test profile")
	require.NoError(f.t, f.testDB.Store.EnsureCustomerStats(f.ctx, id), "failed to create test stats")
	return profile
}

// CreateFixedReward creates an available fixed-value milestone reward.
func (f *Fixtures) CreateFixedReward(customerID uuid.UUID, value string, visits int) Reward {
	f.t.Helper()
	v := decimal.RequireFromString(value)
	reward, err := f.testDB.Store.CreateReward(f.ctx, CreateRewardParams{
		CustomerID:      customerID,
		Title:           "Test reward",
		Kind:            RewardKindMilestone,
		RewardValue:     &v,
		MilestoneVisits: Ptr(visits),
	})
	require.NoError(f.t, err, "failed to create test reward")
	return reward
}

func Ptr[T any](v T) *T {
	return &v
}
