package jobs

//go:generate mockgen -source=client.go -destination=mocks_test.go -package=jobs

import (
	"context"
	"errors"
	"fmt"

	"loyalty-server/internal/config"
	"loyalty-server/internal/observability"

	"github.com/hibiken/asynq"
)

// Enqueuer is the part of the asynq client used to submit tasks
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
	Close() error
}

// Client handles enqueueing background jobs
type Client struct {
	client Enqueuer
	logger *observability.Logger
}

// RedisOpt returns the asynq connection options for cfg
func RedisOpt(cfg config.RedisConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	}
}

// NewClient creates a new job client
func NewClient(cfg config.RedisConfig, logger *observability.Logger) *Client {
	return &Client{
		client: asynq.NewClient(RedisOpt(cfg)),
		logger: logger,
	}
}

// Close closes the client connection
func (c *Client) Close() error {
	return c.client.Close()
}

// EnqueueBirthdayReward enqueues a birthday reward job. A task already queued
// for the same customer and year is not an error.
func (c *Client) EnqueueBirthdayReward(ctx context.Context, payload BirthdayRewardPayload) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "customer_id", Value: payload.CustomerID.String()},
		observability.Field{Key: "birthday_year", Value: payload.Year},
	)

	task, err := NewBirthdayRewardTask(payload)
	if err != nil {
		c.logger.Error(ctx, "failed to create birthday reward task", err)
		return fmt.Errorf("failed to create birthday reward task: %w", err)
	}

	info, err := c.client.EnqueueContext(ctx, task)
	if err != nil {
		if errors.Is(err, asynq.ErrTaskIDConflict) || errors.Is(err, asynq.ErrDuplicateTask) {
			c.logger.Debug(ctx, "birthday reward task already enqueued")
			return nil
		}
		c.logger.Error(ctx, "failed to enqueue birthday reward task", err)
		return fmt.Errorf("failed to enqueue birthday reward task: %w", err)
	}

	c.logger.Info(ctx, fmt.Sprintf("enqueued birthday reward task: %s (queue: %s)", info.ID, info.Queue))
	return nil
}
