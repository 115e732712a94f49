package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"loyalty-server/internal/bootstrap"
	"loyalty-server/internal/config"
	"loyalty-server/internal/jobs"
	"loyalty-server/internal/jobs/scheduler"
	scheduledJobs "loyalty-server/internal/jobs/scheduler/jobs"
	"loyalty-server/internal/jobs/workers"
	"loyalty-server/internal/observability"

	"github.com/hibiken/asynq"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %s", err)
	}

	// Initialize logger
	logger := observability.NewLogger()
	defer func() { _ = logger.Sync() }()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger.Info(ctx, "Starting background worker server...")

	deps, err := bootstrap.InitializeCore(ctx, cfg, logger)
	if err != nil {
		logger.Fatal(ctx, "failed to initialize dependencies", err)
	}
	defer deps.Cleanup()

	// Initialize job client for the scheduler
	jobClient := jobs.NewClient(cfg.Redis, logger)
	defer jobClient.Close()

	birthdayWorker := workers.NewBirthdayWorker(deps.Engine, logger)

	// Create Asynq server with queue configuration
	srv := asynq.NewServer(
		jobs.RedisOpt(cfg.Redis),
		asynq.Config{
			Concurrency: cfg.Worker.Concurrency,
			Queues: map[string]int{
				jobs.QueueHigh:   6,
				jobs.QueueMedium: 3,
				jobs.QueueLow:    1,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				logger.Error(ctx, fmt.Sprintf("task %s failed", task.Type()), err)
			}),
			RetryDelayFunc: asynq.DefaultRetryDelayFunc,
			Logger:         &asynqLogger{logger: logger},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(jobs.TypeBirthdayReward, birthdayWorker.ProcessBirthdayRewardTask)

	// Schedule the daily birthday scan
	sched := scheduler.New(logger)
	sched.Register(scheduledJobs.NewBirthdayJob(&deps.Store, jobClient, logger, cfg.Worker.BirthdayInterval, cfg.Worker.Location))
	go func() {
		if err := sched.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error(ctx, "scheduler stopped with error", err)
		}
	}()

	if err := srv.Start(mux); err != nil {
		logger.Fatal(ctx, "failed to start worker server", err)
	}
	logger.Info(ctx, fmt.Sprintf("Worker server started on Redis: %s", cfg.Redis.Addr()))

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan
	logger.Info(ctx, "Shutting down worker server...")

	cancel()
	srv.Shutdown()
	logger.Info(ctx, "Worker server stopped")
}

// asynqLogger adapts observability.Logger to asynq.Logger interface
type asynqLogger struct {
	logger *observability.Logger
}

func (l *asynqLogger) Debug(args ...interface{}) {
	l.logger.Debug(context.Background(), fmt.Sprint(args...))
}

func (l *asynqLogger) Info(args ...interface{}) {
	l.logger.Info(context.Background(), fmt.Sprint(args...))
}

func (l *asynqLogger) Warn(args ...interface{}) {
	l.logger.Warn(context.Background(), fmt.Sprint(args...))
}

func (l *asynqLogger) Error(args ...interface{}) {
	l.logger.Error(context.Background(), fmt.Sprint(args...), nil)
}

func (l *asynqLogger) Fatal(args ...interface{}) {
	l.logger.Error(context.Background(), fmt.Sprint(args...), nil)
	os.Exit(1)
}
