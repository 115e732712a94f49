package processor

import (
	"context"
	"errors"
	"time"

	"loyalty-server/internal/events"
	"loyalty-server/internal/loyalty"
	"loyalty-server/internal/observability"
	"loyalty-server/internal/store"

	"github.com/google/uuid"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrInvalidCustomer  = errors.New("customer id is required")
)

// Engine records visits and runs the tier and milestone steps that follow
// each one. All steps of one visit share a single transaction.
type Engine struct {
	store    LoyaltyStore
	settings SettingsLoader
	events   EventPublisher
	logger   *observability.Logger
	now      func() time.Time
}

func New(loyaltyStore LoyaltyStore, settingsLoader SettingsLoader, publisher EventPublisher, logger *observability.Logger) *Engine {
	return &Engine{
		store:    loyaltyStore,
		settings: settingsLoader,
		events:   publisher,
		logger:   logger,
		now:      time.Now,
	}
}

// VisitInput describes one visit to record
type VisitInput struct {
	CustomerID uuid.UUID
	StaffID    *uuid.UUID
	OrderID    *uuid.UUID
	Notes      *string
}

// VisitOutcome is everything one visit changed
type VisitOutcome struct {
	Visit        store.Visit
	Stats        store.CustomerStats
	TierChanged  bool
	PreviousTier loyalty.Tier
	Rewards      []store.Reward
}

// Events returns the domain events describing the outcome
func (o VisitOutcome) Events() []events.Event {
	evts := []events.Event{events.VisitRecorded(o.Visit, o.Stats)}
	if o.TierChanged {
		evts = append(evts, events.TierUpgraded(o.Stats.CustomerID, string(o.PreviousTier), o.Stats.CurrentTier, o.Stats.TotalVisits))
	}
	for _, r := range o.Rewards {
		evts = append(evts, events.RewardEarned(r))
	}
	return evts
}

// PublishOutcome publishes the events of a committed visit
func (e *Engine) PublishOutcome(ctx context.Context, outcome VisitOutcome) {
	e.events.Publish(ctx, outcome.Events()...)
}

// ListVisits returns a customer's visit history, newest first
func (e *Engine) ListVisits(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]store.Visit, error) {
	visits, err := e.store.ListVisitsByCustomer(ctx, customerID, limit, offset)
	if err != nil {
		e.logger.Error(observability.WithFields(ctx, observability.Field{Key: "customer_id", Value: customerID.String()}),
			"failed to list visits", err)
		return nil, err
	}
	return visits, nil
}
