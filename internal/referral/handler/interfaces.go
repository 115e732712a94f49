package handler

import (
	"context"

	"loyalty-server/internal/referral/processor"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=mocks_test.go -package=handler

// ReferralService is the referral processor as seen by the HTTP layer
type ReferralService interface {
	ListReferrals(ctx context.Context, referrerID uuid.UUID, req processor.ListReferralsRequest) (processor.ListReferralsResponse, error)
	GetReferralLink(ctx context.Context, userID uuid.UUID, baseURL string) (processor.ReferralLink, error)
}
