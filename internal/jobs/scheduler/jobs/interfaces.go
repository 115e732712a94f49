package jobs

import (
	"context"

	tasks "loyalty-server/internal/jobs"
	"loyalty-server/internal/store"
)

//go:generate mockgen -source=interfaces.go -destination=mocks_test.go -package=jobs

// BirthdayFinder lists the profiles born on a month and day
type BirthdayFinder interface {
	ListProfilesWithBirthday(ctx context.Context, month, day int) ([]store.Profile, error)
}

// BirthdayEnqueuer submits one birthday reward task
type BirthdayEnqueuer interface {
	EnqueueBirthdayReward(ctx context.Context, payload tasks.BirthdayRewardPayload) error
}
