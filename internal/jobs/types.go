package jobs

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// Job type constants
const (
	TypeBirthdayReward = "reward:birthday"
)

// Queue names
const (
	QueueHigh   = "high"
	QueueMedium = "medium"
	QueueLow    = "low"
)

// birthdayRetention keeps a finished birthday task id reserved long enough
// that a second scheduler pass on the same day cannot enqueue it again.
const birthdayRetention = 48 * time.Hour

// BirthdayRewardPayload asks for the birthday reward of one customer for one
// calendar year
type BirthdayRewardPayload struct {
	CustomerID uuid.UUID `json:"customer_id"`
	Year       int       `json:"year"`
}

// TaskID is the deduplication key of the payload
func (p BirthdayRewardPayload) TaskID() string {
	return fmt.Sprintf("birthday:%s:%d", p.CustomerID, p.Year)
}

// NewBirthdayRewardTask creates a birthday reward task
func NewBirthdayRewardTask(payload BirthdayRewardPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeBirthdayReward, data,
		asynq.Queue(QueueMedium),
		asynq.MaxRetry(5),
		asynq.TaskID(payload.TaskID()),
		asynq.Retention(birthdayRetention),
	), nil
}

// ParseBirthdayRewardPayload decodes and validates a task payload
func ParseBirthdayRewardPayload(data []byte) (BirthdayRewardPayload, error) {
	var payload BirthdayRewardPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return BirthdayRewardPayload{}, err
	}
	if payload.CustomerID == uuid.Nil {
		return BirthdayRewardPayload{}, fmt.Errorf("birthday payload has no customer id")
	}
	if payload.Year < 1 {
		return BirthdayRewardPayload{}, fmt.Errorf("birthday payload has invalid year %d", payload.Year)
	}
	return payload, nil
}
