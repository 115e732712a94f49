package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"loyalty-server/internal/observability"
)

// Job represents a scheduled job
type Job interface {
	// Name returns the job name for logging
	Name() string
	// Run executes the job
	Run(ctx context.Context) error
	// Schedule returns the interval between runs
	Schedule() time.Duration
}

// Aligned is implemented by jobs that pick their next run time themselves,
// such as a daily job pinned to local midnight. Schedule is then only used
// for logging.
type Aligned interface {
	NextRun(after time.Time) time.Time
}

// Scheduler runs registered jobs in the worker process. Every job also runs
// once when the scheduler starts so a restart never skips a day.
type Scheduler struct {
	jobs   []Job
	logger *observability.Logger
	wg     sync.WaitGroup
	now    func() time.Time
}

// New creates a new scheduler
func New(logger *observability.Logger) *Scheduler {
	return &Scheduler{
		jobs:   make([]Job, 0),
		logger: logger,
		now:    time.Now,
	}
}

// Register adds a job to the scheduler. Jobs must be registered before Start.
func (s *Scheduler) Register(job Job) {
	s.jobs = append(s.jobs, job)
	s.logger.Info(context.Background(), fmt.Sprintf("Registered scheduled job: %s (interval: %s)",
		job.Name(), job.Schedule()))
}

// Start runs every job until ctx is cancelled, then waits for runs in
// flight to return
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info(ctx, fmt.Sprintf("Starting scheduler with %d jobs", len(s.jobs)))

	for _, job := range s.jobs {
		s.wg.Add(1)
		go func(job Job) {
			defer s.wg.Done()
			s.runJob(ctx, job)
		}(job)
	}

	<-ctx.Done()
	s.wg.Wait()
	s.logger.Info(ctx, "Scheduler stopped")
	return ctx.Err()
}

// wait returns how long job sleeps before its next run
func (s *Scheduler) wait(job Job) time.Duration {
	if aligned, ok := job.(Aligned); ok {
		now := s.now()
		if d := aligned.NextRun(now).Sub(now); d > 0 {
			return d
		}
		return 0
	}
	return job.Schedule()
}

func (s *Scheduler) runJob(ctx context.Context, job Job) {
	jobCtx := observability.WithFields(ctx, observability.Field{Key: "scheduled_job", Value: job.Name()})

	s.executeJob(jobCtx, job)

	timer := time.NewTimer(s.wait(job))
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info(jobCtx, fmt.Sprintf("Stopping scheduled job: %s", job.Name()))
			return
		case <-timer.C:
			s.executeJob(jobCtx, job)
			timer.Reset(s.wait(job))
		}
	}
}

// executeJob runs a job once and logs its duration. A failed run is retried
// on the next tick.
func (s *Scheduler) executeJob(ctx context.Context, job Job) {
	start := time.Now()
	err := job.Run(ctx)
	duration := time.Since(start)

	if err != nil {
		s.logger.Error(ctx, fmt.Sprintf("Job %s failed after %v", job.Name(), duration), err)
		return
	}
	s.logger.Info(ctx, fmt.Sprintf("Job %s completed in %v", job.Name(), duration))
}
