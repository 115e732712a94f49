package settings

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=settings

import (
	"context"
	"time"

	"loyalty-server/internal/store"

	"github.com/google/uuid"
)

// SettingStore defines the database operations required by Service
type SettingStore interface {
	ListSettings(ctx context.Context) ([]store.Setting, error)
	UpsertSetting(ctx context.Context, key string, value store.RawJSON, updatedBy *uuid.UUID) (store.Setting, error)
	DeleteSetting(ctx context.Context, key string) error
}

// Cache is the key/value cache holding the stored entries between reads
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, expiration time.Duration) error
	Del(ctx context.Context, keys ...string) error
}
