package ratelimit

//go:generate mockgen -source=service.go -destination=mocks_test.go -package=ratelimit

import (
	"context"
	"fmt"
	"time"

	"loyalty-server/internal/observability"

	"github.com/google/uuid"
)

const window = time.Minute

// Window is a sliding window of timestamps kept in Redis. WindowAcquire
// trims entries before since and records member only while fewer than limit
// remain, in one atomic step. It returns whether member was recorded, the
// count before recording and the oldest entry's time.
type Window interface {
	WindowAcquire(ctx context.Context, key, member string, at, since time.Time, limit int64, ttl time.Duration) (bool, int64, time.Time, error)
}

// Result represents the result of a rate limit check
type Result struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetAt    time.Time
	RetryAfter time.Duration
}

// Service limits how many requests a caller makes per minute
type Service struct {
	window Window
	limit  int
	logger *observability.Logger
	now    func() time.Time
}

// NewService creates a rate limiter allowing limit requests per minute. It
// returns nil, which allows everything, when window is nil or limit is not
// positive.
func NewService(w Window, limit int, logger *observability.Logger) *Service {
	if w == nil || limit <= 0 {
		return nil
	}
	return &Service{
		window: w,
		limit:  limit,
		logger: logger,
		now:    time.Now,
	}
}

// Check counts a request against key. Denied requests are not recorded, so a
// caller that backs off regains capacity as old requests age out.
func (s *Service) Check(ctx context.Context, key string) (Result, error) {
	now := s.now()
	member := fmt.Sprintf("%d-%s", now.UnixMilli(), uuid.NewString())

	allowed, count, oldest, err := s.window.WindowAcquire(ctx, "rl:"+key, member, now, now.Add(-window), int64(s.limit), 2*window)
	if err != nil {
		return Result{}, err
	}

	if !allowed {
		resetAt := now.Add(window)
		if !oldest.IsZero() {
			resetAt = oldest.Add(window)
		}
		return Result{
			Allowed:    false,
			Limit:      s.limit,
			Remaining:  0,
			ResetAt:    resetAt,
			RetryAfter: resetAt.Sub(now),
		}, nil
	}

	return Result{
		Allowed:   true,
		Limit:     s.limit,
		Remaining: s.limit - int(count) - 1,
		ResetAt:   now.Add(window),
	}, nil
}
