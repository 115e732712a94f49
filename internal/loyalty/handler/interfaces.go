package handler

import (
	"context"

	loyaltyProcessor "loyalty-server/internal/loyalty/processor"
	"loyalty-server/internal/store"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=mocks_test.go -package=handler

// VisitService is the loyalty engine as seen by the HTTP layer
type VisitService interface {
	RecordVisit(ctx context.Context, in loyaltyProcessor.VisitInput) (loyaltyProcessor.VisitOutcome, error)
	ListVisits(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]store.Visit, error)
	EvaluateMilestone(ctx context.Context, customerID uuid.UUID) (*store.Reward, error)
}
