package jobs

import (
	"context"
	"fmt"
	"time"

	tasks "loyalty-server/internal/jobs"
	"loyalty-server/internal/observability"
)

// BirthdayJob enqueues a birthday reward task for every customer whose
// birthday is today
type BirthdayJob struct {
	profiles BirthdayFinder
	enqueuer BirthdayEnqueuer
	logger   *observability.Logger
	interval time.Duration
	location *time.Location
	now      func() time.Time
}

// NewBirthdayJob creates a birthday job that decides "today" in loc (UTC when
// nil). A zero interval means daily.
func NewBirthdayJob(profiles BirthdayFinder, enqueuer BirthdayEnqueuer, logger *observability.Logger, interval time.Duration, loc *time.Location) *BirthdayJob {
	if interval == 0 {
		interval = 24 * time.Hour
	}
	if loc == nil {
		loc = time.UTC
	}

	return &BirthdayJob{
		profiles: profiles,
		enqueuer: enqueuer,
		logger:   logger,
		interval: interval,
		location: loc,
		now:      time.Now,
	}
}

// Name returns the job name
func (j *BirthdayJob) Name() string {
	return "birthday_rewards"
}

// Schedule returns how often the job should run
func (j *BirthdayJob) Schedule() time.Duration {
	return j.interval
}

// runOffset keeps the daily run clear of midnight clock skew
const runOffset = 5 * time.Minute

// NextRun places a daily job just after the next local midnight so a
// birthday is granted early on the day itself. Other intervals run relative
// to after.
func (j *BirthdayJob) NextRun(after time.Time) time.Time {
	if j.interval != 24*time.Hour {
		return after.Add(j.interval)
	}
	y, m, d := after.In(j.location).Date()
	next := time.Date(y, m, d, 0, 0, 0, 0, j.location).Add(runOffset)
	if !next.After(after) {
		next = time.Date(y, m, d+1, 0, 0, 0, 0, j.location).Add(runOffset)
	}
	return next
}

type monthDay struct {
	month time.Month
	day   int
}

// birthdaysOn returns the calendar days whose birthdays are celebrated on
// date. Outside leap years February 29 birthdays fall on February 28.
func birthdaysOn(date time.Time) []monthDay {
	days := []monthDay{{month: date.Month(), day: date.Day()}}
	if date.Month() == time.February && date.Day() == 28 && !isLeap(date.Year()) {
		days = append(days, monthDay{month: time.February, day: 29})
	}
	return days
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// Run enqueues today's birthday rewards. Tasks are deduplicated per customer
// and year, so running more than once a day is harmless.
func (j *BirthdayJob) Run(ctx context.Context) error {
	today := j.now().In(j.location)
	ctx = observability.WithFields(ctx, observability.Field{Key: "date", Value: today.Format("2006-01-02")})

	successCount := 0
	errorCount := 0
	for _, md := range birthdaysOn(today) {
		profiles, err := j.profiles.ListProfilesWithBirthday(ctx, int(md.month), md.day)
		if err != nil {
			return fmt.Errorf("failed to list birthdays for %s %d: %w", md.month, md.day, err)
		}

		for _, profile := range profiles {
			err := j.enqueuer.EnqueueBirthdayReward(ctx, tasks.BirthdayRewardPayload{
				CustomerID: profile.ID,
				Year:       today.Year(),
			})
			if err != nil {
				j.logger.WarnWithError(observability.WithFields(ctx,
					observability.Field{Key: "customer_id", Value: profile.ID.String()}),
					"failed to enqueue birthday reward", err)
				errorCount++
				continue
			}
			successCount++
		}
	}

	j.logger.Info(ctx, fmt.Sprintf("Birthday job enqueued %d rewards (%d errors)", successCount, errorCount))
	if errorCount > 0 {
		return fmt.Errorf("failed to enqueue %d birthday rewards", errorCount)
	}
	return nil
}
