package workers

//go:generate mockgen -source=birthday_worker.go -destination=mocks_test.go -package=workers

import (
	"context"
	"fmt"

	"loyalty-server/internal/jobs"
	"loyalty-server/internal/observability"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// BirthdayGranter grants the yearly birthday reward
type BirthdayGranter interface {
	GrantBirthday(ctx context.Context, customerID uuid.UUID, year int) (bool, error)
}

// BirthdayWorker handles birthday reward jobs
type BirthdayWorker struct {
	granter BirthdayGranter
	logger  *observability.Logger
}

// NewBirthdayWorker creates a new birthday worker
func NewBirthdayWorker(granter BirthdayGranter, logger *observability.Logger) *BirthdayWorker {
	return &BirthdayWorker{
		granter: granter,
		logger:  logger,
	}
}

// ProcessBirthdayRewardTask processes a birthday reward task (for Asynq)
func (w *BirthdayWorker) ProcessBirthdayRewardTask(ctx context.Context, task *asynq.Task) error {
	payload, err := jobs.ParseBirthdayRewardPayload(task.Payload())
	if err != nil {
		w.logger.Error(ctx, "failed to parse birthday reward payload", err)
		// A malformed payload never succeeds.
		return fmt.Errorf("invalid birthday reward payload: %v: %w", err, asynq.SkipRetry)
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "customer_id", Value: payload.CustomerID.String()},
		observability.Field{Key: "birthday_year", Value: payload.Year},
	)

	granted, err := w.granter.GrantBirthday(ctx, payload.CustomerID, payload.Year)
	if err != nil {
		w.logger.Error(ctx, "failed to grant birthday reward", err)
		return fmt.Errorf("failed to grant birthday reward: %w", err)
	}

	if granted {
		w.logger.Info(ctx, "birthday reward granted")
	} else {
		w.logger.Info(ctx, "birthday reward skipped")
	}
	return nil
}
